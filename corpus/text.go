package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Utterance is one parsed transcript line.
type Utterance struct {
	ID    string
	Words []string
}

// Text returns the words joined by single spaces.
func (u Utterance) Text() string {
	return strings.Join(u.Words, " ")
}

// ParseLine splits a transcript line into utterance id and words.
// Runs of whitespace count as one separator. Each word is cut at its first
// '+', the CSJ convention for attaching part-of-speech tags; a word that
// starts with '+' is kept as the empty string. ok is false for blank lines.
func ParseLine(line string) (u Utterance, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Utterance{}, false
	}
	u.ID = fields[0]
	u.Words = make([]string, len(fields)-1)
	for i, w := range fields[1:] {
		if j := strings.IndexByte(w, '+'); j >= 0 {
			w = w[:j]
		}
		u.Words[i] = w
	}
	return u, true
}

// TextReader streams utterances from a transcript file in file order.
type TextReader struct {
	scanner *bufio.Scanner
	lineNum int
	cur     Utterance
}

// NewTextReader creates a TextReader over r.
func NewTextReader(r io.Reader) *TextReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)
	return &TextReader{scanner: scanner}
}

// Next advances to the next non-blank line. It returns false at end of input
// or on error; check Err afterwards.
func (t *TextReader) Next() bool {
	for t.scanner.Scan() {
		t.lineNum++
		if u, ok := ParseLine(t.scanner.Text()); ok {
			t.cur = u
			return true
		}
	}
	return false
}

// Utterance returns the utterance read by the last call to Next.
func (t *TextReader) Utterance() Utterance { return t.cur }

// Line returns the 1-based line number of the current utterance.
func (t *TextReader) Line() int { return t.lineNum }

// Err returns the first read error, if any.
func (t *TextReader) Err() error {
	if err := t.scanner.Err(); err != nil {
		return fmt.Errorf("line %d: %w", t.lineNum+1, err)
	}
	return nil
}

// CountLines returns the number of lines in r, counting a final line
// without a trailing newline.
func CountLines(r io.Reader) (int, error) {
	br := bufio.NewReader(r)
	n := 0
	partial := false
	for {
		line, err := br.ReadSlice('\n')
		switch {
		case err == nil:
			n++
			partial = false
		case err == bufio.ErrBufferFull:
			partial = true
		case err == io.EOF:
			if len(line) > 0 || partial {
				n++
			}
			return n, nil
		default:
			return n, err
		}
	}
}

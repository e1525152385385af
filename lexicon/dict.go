package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ieee0824/makecsv-go/corpus"
)

// Dictionary maps tokens of one unit (word, char, phone) to their ids.
// Ids are kept as the strings read from the file; nothing downstream
// does arithmetic on them.
type Dictionary struct {
	Entries map[string]string // token -> id
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		Entries: make(map[string]string),
	}
}

// Add registers token with id. A later Add for the same token overwrites it.
func (d *Dictionary) Add(token, id string) {
	d.Entries[token] = id
}

// Load reads a dictionary in "<token> <id>" format, one entry per line.
func Load(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 space-separated fields, got %d", lineNum, len(parts))
		}
		d.Add(parts[0], parts[1])
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := corpus.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Lookup returns the id of token.
func (d *Dictionary) Lookup(token string) (string, bool) {
	id, ok := d.Entries[token]
	return id, ok
}

// Len returns the vocabulary size.
func (d *Dictionary) Len() int {
	return len(d.Entries)
}

// Tokens returns all tokens in the dictionary.
func (d *Dictionary) Tokens() []string {
	tokens := make([]string, 0, len(d.Entries))
	for t := range d.Entries {
		tokens = append(tokens, t)
	}
	return tokens
}

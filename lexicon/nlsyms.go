package lexicon

import (
	"bufio"
	"io"
	"strings"

	"github.com/ieee0824/makecsv-go/corpus"
)

// SymbolSet holds non-linguistic symbols such as <NOISE> that character
// tokenization must keep whole.
type SymbolSet map[string]struct{}

// Contains reports whether s is a registered symbol. A nil set contains nothing.
func (s SymbolSet) Contains(sym string) bool {
	_, ok := s[sym]
	return ok
}

// LoadSymbols reads one symbol per line. Surrounding whitespace is trimmed
// and blank lines are ignored.
func LoadSymbols(r io.Reader) (SymbolSet, error) {
	set := make(SymbolSet)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		sym := strings.TrimSpace(scanner.Text())
		if sym == "" {
			continue
		}
		set[sym] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

// LoadSymbolsFile is a convenience wrapper that opens a file path.
// An empty path yields an empty set.
func LoadSymbolsFile(path string) (SymbolSet, error) {
	if path == "" {
		return SymbolSet{}, nil
	}
	f, err := corpus.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadSymbols(f)
}

// CharTokens splits word into character units. A word listed in nlsyms is
// returned whole.
func CharTokens(word string, nlsyms SymbolSet) []string {
	if nlsyms.Contains(word) {
		return []string{word}
	}
	tokens := make([]string, 0, len(word))
	for _, c := range word {
		tokens = append(tokens, string(c))
	}
	return tokens
}

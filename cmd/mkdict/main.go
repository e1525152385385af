package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ieee0824/makecsv-go"
	"github.com/ieee0824/makecsv-go/corpus"
	"github.com/ieee0824/makecsv-go/lexicon"
)

func main() {
	text := pflag.String("text", "", "text file (required)")
	unit := pflag.String("unit", "word", "token units {word,char,phone}")
	nlsymsPath := pflag.String("nlsyms", "", "path to non-linguistic symbols kept whole in char units")
	reserved := pflag.StringSlice("reserved", []string{"<blank>", "<unk>", "<eos>", "<pad>"}, "tokens given the first ids, in order")
	space := pflag.String("space", "<space>", "word boundary token, reserved after the others in char units")
	minCount := pflag.Int("min-count", 1, "drop tokens seen fewer times")

	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: mkdict --text TEXT [--unit UNIT]")
		fmt.Fprintln(os.Stderr, "  Builds a '<token> <id>' dictionary from a Kaldi text file.")
		fmt.Fprintln(os.Stderr, "  Output goes to stdout.")
		fmt.Fprintln(os.Stderr)
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *text == "" {
		fmt.Fprintln(os.Stderr, "error: --text is required")
		pflag.Usage()
		os.Exit(2)
	}
	u, err := makecsv.ParseUnit(*unit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if u == makecsv.UnitBPE {
		fmt.Fprintln(os.Stderr, "error: bpe units: not implemented")
		os.Exit(1)
	}

	nlsyms, err := lexicon.LoadSymbolsFile(*nlsymsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading nlsyms: %v\n", err)
		os.Exit(1)
	}

	f, err := corpus.Open(*text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	counts, utts, err := countTokens(f, u, nlsyms)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", *text, err)
		os.Exit(1)
	}

	head := append([]string{}, *reserved...)
	if u == makecsv.UnitChar {
		head = append(head, *space)
	}
	tokens := vocabulary(counts, head, *minCount)

	w := bufio.NewWriter(os.Stdout)
	if err := writeDict(w, tokens); err != nil {
		fmt.Fprintf(os.Stderr, "error writing: %v\n", err)
		os.Exit(1)
	}
	w.Flush()

	fmt.Fprintf(os.Stderr, "Utterances: %d, tokens: %d (%d reserved)\n", utts, len(tokens), len(head))
}

// countTokens counts how often each unit occurs in the transcript.
func countTokens(r io.Reader, unit makecsv.Unit, nlsyms lexicon.SymbolSet) (map[string]int, int, error) {
	counts := make(map[string]int)
	utts := 0
	tr := corpus.NewTextReader(r)
	for tr.Next() {
		utts++
		for _, w := range tr.Utterance().Words {
			if unit == makecsv.UnitChar {
				for _, c := range lexicon.CharTokens(w, nlsyms) {
					counts[c]++
				}
				continue
			}
			if w != "" {
				counts[w]++
			}
		}
	}
	return counts, utts, tr.Err()
}

// vocabulary returns head followed by the remaining tokens sorted for
// stable output. Tokens in head are not repeated.
func vocabulary(counts map[string]int, head []string, minCount int) []string {
	seen := make(map[string]bool, len(head))
	tokens := make([]string, 0, len(head)+len(counts))
	for _, t := range head {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tokens = append(tokens, t)
	}

	var rest []string
	for t, n := range counts {
		if n >= minCount && !seen[t] {
			rest = append(rest, t)
		}
	}
	sort.Strings(rest)
	return append(tokens, rest...)
}

func writeDict(w io.Writer, tokens []string) error {
	for i, t := range tokens {
		if strings.ContainsAny(t, " \t") {
			return fmt.Errorf("token %q contains whitespace", t)
		}
		if _, err := fmt.Fprintf(w, "%s %d\n", t, i); err != nil {
			return err
		}
	}
	return nil
}

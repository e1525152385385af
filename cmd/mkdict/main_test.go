package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ieee0824/makecsv-go"
	"github.com/ieee0824/makecsv-go/lexicon"
)

const testText = `u1 b a+x a
u2 <NOISE> ab

u3 c
`

func TestCountTokens(t *testing.T) {
	nlsyms := lexicon.SymbolSet{"<NOISE>": {}}

	tests := []struct {
		unit makecsv.Unit
		want map[string]int
	}{
		{makecsv.UnitWord, map[string]int{"a": 2, "b": 1, "<NOISE>": 1, "ab": 1, "c": 1}},
		{makecsv.UnitPhone, map[string]int{"a": 2, "b": 1, "<NOISE>": 1, "ab": 1, "c": 1}},
		{makecsv.UnitChar, map[string]int{"a": 3, "b": 2, "<NOISE>": 1, "c": 1}},
	}
	for _, tt := range tests {
		t.Run(string(tt.unit), func(t *testing.T) {
			counts, utts, err := countTokens(strings.NewReader(testText), tt.unit, nlsyms)
			require.NoError(t, err)
			assert.Equal(t, 3, utts)
			assert.Equal(t, tt.want, counts)
		})
	}
}

func TestVocabulary(t *testing.T) {
	counts := map[string]int{"b": 3, "a": 1, "<unk>": 2, "c": 5}

	got := vocabulary(counts, []string{"<blank>", "<unk>", "<unk>", ""}, 1)
	assert.Equal(t, []string{"<blank>", "<unk>", "a", "b", "c"}, got)

	got = vocabulary(counts, nil, 3)
	assert.Equal(t, []string{"b", "c"}, got)
}

func TestWriteDictRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDict(&buf, []string{"<unk>", "a", "東"}))
	assert.Equal(t, "<unk> 0\na 1\n東 2\n", buf.String())

	d, err := lexicon.Load(&buf)
	require.NoError(t, err)
	id, ok := d.Lookup("東")
	assert.True(t, ok)
	assert.Equal(t, "2", id)

	assert.Error(t, writeDict(&bytes.Buffer{}, []string{"a b"}))
}

package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTable(t *testing.T) {
	tbl, err := LoadTable(strings.NewReader("u1 /data/raw.1.ark:12\n\nu2  /data/raw.1.ark:4096\n"))
	require.NoError(t, err)
	assert.Equal(t, Table{
		"u1": "/data/raw.1.ark:12",
		"u2": "/data/raw.1.ark:4096",
	}, tbl)
}

func TestLoadTable_Malformed(t *testing.T) {
	_, err := LoadTable(strings.NewReader("u1 a\nu2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadFrameCounts(t *testing.T) {
	fc, err := LoadFrameCounts(strings.NewReader("u1 120\nu2 7\n"))
	require.NoError(t, err)
	assert.Equal(t, FrameCounts{"u1": 120, "u2": 7}, fc)

	_, err = LoadFrameCounts(strings.NewReader("u1 120\nu2 seven\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "u2")
}

func TestLoadTableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feats.scp")
	require.NoError(t, os.WriteFile(path, []byte("u1 a.ark:1\n"), 0644))

	tbl, err := LoadTableFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a.ark:1", tbl["u1"])

	_, err = LoadTableFile(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_UTF16WithBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text")
	units := utf16.Encode([]rune("u1 東京\n"))
	data := []byte{0xFF, 0xFE}
	for _, u := range units {
		data = append(data, byte(u), byte(u>>8))
	}
	require.NoError(t, os.WriteFile(path, data, 0644))

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	r := NewTextReader(f)
	require.True(t, r.Next())
	assert.Equal(t, Utterance{ID: "u1", Words: []string{"東京"}}, r.Utterance())
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Utterance
		wantOK bool
	}{
		{"simple", "u1 a b", Utterance{ID: "u1", Words: []string{"a", "b"}}, true},
		{"collapse_whitespace", "  u1\t a   b \n", Utterance{ID: "u1", Words: []string{"a", "b"}}, true},
		{"csj_tag", "u1 えー+感動詞 東京+名詞", Utterance{ID: "u1", Words: []string{"えー", "東京"}}, true},
		{"leading_plus", "u1 +x", Utterance{ID: "u1", Words: []string{""}}, true},
		{"no_words", "u1", Utterance{ID: "u1", Words: []string{}}, true},
		{"blank", "   ", Utterance{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUtteranceText(t *testing.T) {
	u, _ := ParseLine("u1  a+x   b")
	assert.Equal(t, "a b", u.Text())
}

func TestTextReader(t *testing.T) {
	r := NewTextReader(strings.NewReader("u1 a\n\nu2 b c\nu3"))

	var ids []string
	var lines []int
	for r.Next() {
		ids = append(ids, r.Utterance().ID)
		lines = append(lines, r.Line())
	}
	require.NoError(t, r.Err())
	assert.Equal(t, []string{"u1", "u2", "u3"}, ids)
	assert.Equal(t, []int{1, 3, 4}, lines)
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"a\n", 1},
		{"a\nb", 2},
		{"a\n\nb\n", 3},
		{strings.Repeat("x", 10000) + "\n" + strings.Repeat("y", 5000), 2},
		{strings.Repeat("z", 4096), 1},
	}
	for _, tt := range tests {
		got, err := CountLines(strings.NewReader(tt.input))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "len(input)=%d", len(tt.input))
	}
}

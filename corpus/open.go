// Package corpus loads the Kaldi-style data directory tables a manifest is
// built from: feats.scp, utt2num_frames and text.
package corpus

import (
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type textFile struct {
	io.Reader
	f *os.File
}

func (t *textFile) Close() error { return t.f.Close() }

// Open opens a text file for line-oriented reading. Content is decoded as
// UTF-8; a leading byte-order mark is consumed (UTF-16 files carrying one are
// transcoded) and invalid byte sequences are replaced with U+FFFD.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return &textFile{Reader: transform.NewReader(f, dec), f: f}, nil
}

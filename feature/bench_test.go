package feature

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func BenchmarkReadHeader_FM(b *testing.B) {
	data := buildFM("utt1", 500, 83)
	r := bytes.NewReader(data)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Reset(data)
		if _, err := ReadHeader(r); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReadDim_Offset(b *testing.B) {
	path := filepath.Join(b.TempDir(), "raw.ark")
	if err := os.WriteFile(path, buildFM("utt1", 500, 83), 0644); err != nil {
		b.Fatal(err)
	}
	ref := ParseRef(path + ":5")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ReadDim(ref); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseRef(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ParseRef("/export/data/fbank/raw_fbank_pitch_train.12.ark:1234567")
	}
}

package feature

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Ref locates one feature matrix: a file path, optionally followed by
// ":<byte offset>" into a Kaldi archive, as written in feats.scp.
type Ref struct {
	Path      string
	Offset    int64
	HasOffset bool
}

// ParseRef splits a feats.scp value into path and offset.
func ParseRef(s string) Ref {
	if i := strings.LastIndexByte(s, ':'); i > 0 && i < len(s)-1 {
		if off, err := strconv.ParseInt(s[i+1:], 10, 64); err == nil && off >= 0 {
			return Ref{Path: s[:i], Offset: off, HasOffset: true}
		}
	}
	return Ref{Path: s}
}

func (r Ref) String() string {
	if r.HasOffset {
		return fmt.Sprintf("%s:%d", r.Path, r.Offset)
	}
	return r.Path
}

// Exists reports whether the referenced file is a regular file on disk.
func (r Ref) Exists() bool {
	info, err := os.Stat(r.Path)
	return err == nil && info.Mode().IsRegular()
}

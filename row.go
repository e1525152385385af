package makecsv

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Header is the first line of every manifest. The leading empty column
// holds the running row index.
const Header = ",utt_id,feat_path,x_len,x_dim,text,token_id,y_len,y_dim"

// Row is one manifest line.
type Row struct {
	Index    int
	UttID    string
	FeatPath string
	XLen     int
	XDim     int
	Text     string
	TokenIDs []string
	YLen     int
	YDim     int
}

// TokenID returns the space-joined token id sequence.
func (r Row) TokenID() string {
	return strings.Join(r.TokenIDs, " ")
}

// String formats the row as a manifest line without trailing newline.
// Fields are not quoted; text and ids must not contain commas.
func (r Row) String() string {
	return fmt.Sprintf("%d,%s,%s,%d,%d,%s,%s,%d,%d",
		r.Index, r.UttID, r.FeatPath, r.XLen, r.XDim, r.Text, r.TokenID(), r.YLen, r.YDim)
}

// RowWriter writes the header followed by rows.
type RowWriter struct {
	w       *bufio.Writer
	started bool
	n       int
}

// NewRowWriter creates a RowWriter on w.
func NewRowWriter(w io.Writer) *RowWriter {
	return &RowWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the header line once.
func (rw *RowWriter) WriteHeader() error {
	if rw.started {
		return nil
	}
	rw.started = true
	_, err := fmt.Fprintln(rw.w, Header)
	return err
}

// Write writes one row, emitting the header first if needed.
func (rw *RowWriter) Write(r Row) error {
	if err := rw.WriteHeader(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(rw.w, r.String()); err != nil {
		return err
	}
	rw.n++
	return nil
}

// Rows returns the number of data rows written.
func (rw *RowWriter) Rows() int { return rw.n }

// Flush writes buffered lines to the underlying writer.
func (rw *RowWriter) Flush() error {
	return rw.w.Flush()
}

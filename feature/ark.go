package feature

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Header describes a matrix (or vector) stored in a Kaldi archive.
// Vectors report Rows == 1.
type Header struct {
	Format string // FM, DM, CM, CM2, CM3, FV, DV or "text"
	Rows   int
	Cols   int
}

// ReadHeader reads the header of the matrix starting at r's current position.
// If r starts with an archive key ("<key> ") instead of a matrix, the key is
// skipped first.
func ReadHeader(r io.Reader) (Header, error) {
	br := bufio.NewReader(r)

	lead, err := br.Peek(2)
	if err != nil {
		return Header{}, fmt.Errorf("read header: %w", err)
	}
	if !isMatrixStart(lead) {
		if _, err := br.ReadString(' '); err != nil {
			return Header{}, fmt.Errorf("read archive key: %w", err)
		}
		if lead, err = br.Peek(2); err != nil {
			return Header{}, fmt.Errorf("read header: %w", err)
		}
		if !isMatrixStart(lead) {
			return Header{}, errors.New("no matrix after archive key")
		}
	}

	if lead[0] == 0 {
		br.Discard(2)
		return readBinaryHeader(br)
	}
	return readTextHeader(br)
}

func isMatrixStart(b []byte) bool {
	return (b[0] == 0 && b[1] == 'B') || b[0] == '[' || (b[0] == ' ' && b[1] == '[')
}

func readBinaryHeader(r *bufio.Reader) (Header, error) {
	tok, err := r.ReadString(' ')
	if err != nil {
		return Header{}, fmt.Errorf("read matrix type: %w", err)
	}
	h := Header{Format: strings.TrimSuffix(tok, " ")}

	switch h.Format {
	case "FM", "DM":
		rows, err := readInt32(r)
		if err != nil {
			return h, fmt.Errorf("read rows: %w", err)
		}
		cols, err := readInt32(r)
		if err != nil {
			return h, fmt.Errorf("read cols: %w", err)
		}
		h.Rows, h.Cols = int(rows), int(cols)

	case "FV", "DV":
		dim, err := readInt32(r)
		if err != nil {
			return h, fmt.Errorf("read dim: %w", err)
		}
		h.Rows, h.Cols = 1, int(dim)

	case "CM", "CM2", "CM3":
		// global header: min_value, range (float32), num_rows, num_cols (int32)
		var gh struct {
			Min, Range float32
			Rows, Cols int32
		}
		if err := binary.Read(r, binary.LittleEndian, &gh); err != nil {
			return h, fmt.Errorf("read compressed header: %w", err)
		}
		h.Rows, h.Cols = int(gh.Rows), int(gh.Cols)

	default:
		return h, fmt.Errorf("unsupported matrix type %q", h.Format)
	}

	if h.Rows < 0 || h.Cols < 0 {
		return h, fmt.Errorf("invalid shape %dx%d", h.Rows, h.Cols)
	}
	return h, nil
}

// readInt32 reads a Kaldi basic type: one size byte followed by the value.
func readInt32(r io.Reader) (int32, error) {
	var size byte
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return 0, err
	}
	if size != 4 {
		return 0, fmt.Errorf("unexpected int size %d (only 4 supported)", size)
	}
	var v int32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// readTextHeader counts the columns of the first row of a text matrix.
// Rows is left at 0 since it would require reading the whole matrix.
func readTextHeader(r *bufio.Reader) (Header, error) {
	h := Header{Format: "text"}
	if _, err := r.ReadString('['); err != nil {
		return h, fmt.Errorf("read text matrix: %w", err)
	}
	for {
		line, err := r.ReadString('\n')
		end := strings.IndexByte(line, ']')
		if end >= 0 {
			line = line[:end]
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			h.Cols = len(fields)
			return h, nil
		}
		if end >= 0 || err != nil {
			if err != nil && !errors.Is(err, io.EOF) {
				return h, fmt.Errorf("read text matrix: %w", err)
			}
			// empty matrix
			return h, nil
		}
	}
}

// ReadDim returns the trailing dimension of the matrix at ref.
func ReadDim(ref Ref) (int, error) {
	f, err := os.Open(ref.Path)
	if err != nil {
		return 0, fmt.Errorf("read dim %s: %w", ref, err)
	}
	defer f.Close()

	if ref.HasOffset {
		if _, err := f.Seek(ref.Offset, io.SeekStart); err != nil {
			return 0, fmt.Errorf("read dim %s: %w", ref, err)
		}
	}
	h, err := ReadHeader(f)
	if err != nil {
		return 0, fmt.Errorf("read dim %s: %w", ref, err)
	}
	return h.Cols, nil
}

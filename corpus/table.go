package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Table maps an utterance id to the second column of a two-column file.
type Table map[string]string

// LoadTable reads "<utt_id> <value>" lines. Blank lines are skipped; any
// other line that does not split into exactly two fields is an error.
func LoadTable(r io.Reader) (Table, error) {
	t := make(Table)
	err := scanPairs(r, func(key, value string) error {
		t[key] = value
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// LoadTableFile is a convenience wrapper that opens a file path.
func LoadTableFile(path string) (Table, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := LoadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// FrameCounts maps an utterance id to its number of feature frames.
type FrameCounts map[string]int

// LoadFrameCounts reads an utt2num_frames file.
func LoadFrameCounts(r io.Reader) (FrameCounts, error) {
	fc := make(FrameCounts)
	err := scanPairs(r, func(key, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("frame count for %s: %w", key, err)
		}
		fc[key] = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// LoadFrameCountsFile is a convenience wrapper that opens a file path.
func LoadFrameCountsFile(path string) (FrameCounts, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fc, err := LoadFrameCounts(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fc, nil
}

func scanPairs(r io.Reader, fn func(key, value string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return fmt.Errorf("line %d: expected 2 fields, got %d", lineNum, len(fields))
		}
		if err := fn(fields[0], fields[1]); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	return scanner.Err()
}

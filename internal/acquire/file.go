package acquire

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// FileSource reads one whitespace-separated integer sample per token from a
// plain-text ECG file, matching PanTompkinsCMD's fscanf_s(fptr, "%ld", &c)
// loop: samples may be newline- or space-separated, and any amount of
// surrounding whitespace is skipped.
type FileSource struct {
	f  *os.File
	sc *bufio.Scanner
}

// OpenFile opens path for reading and returns a FileSource over it.
func OpenFile(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	return &FileSource{f: f, sc: sc}, nil
}

// Next returns the next sample parsed from the file.
func (s *FileSource) Next() (int16, bool, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil && err != io.EOF {
			return 0, false, err
		}
		return 0, false, nil
	}
	v, err := strconv.ParseInt(s.sc.Text(), 10, 16)
	if err != nil {
		return 0, false, fmt.Errorf("parse sample %q: %w", s.sc.Text(), err)
	}
	return int16(v), true, nil
}

// Close releases the underlying file handle.
func (s *FileSource) Close() error {
	return s.f.Close()
}

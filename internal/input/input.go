// Package input provides source reading operations;
// handles retrieving text from local files and standard input.
package input

import (
	"fmt"
	"io"
	"os"
)

// Size limit to prevent memory overload
// TODO: make this configurable via command-line flags
const MaxInputSizeBytes = 50 * 1024 * 1024 // 50MB limit per source

// limitedReadCloser wraps an io.ReadCloser to enforce size limits
type limitedReadCloser struct {
	io.ReadCloser
	N      int64  // max bytes remaining
	source string // for error messages
}

func (l *limitedReadCloser) Read(p []byte) (n int, err error) {
	if l.N <= 0 {
		return 0, fmt.Errorf("content from %q exceeds size limit", l.source)
	}
	if int64(len(p)) > l.N {
		p = p[0:l.N]
	}
	n, err = l.ReadCloser.Read(p)
	l.N -= int64(n)
	return
}

// Open returns a reader for the named source.
// It supports two types of sources:
//   - "-" reads from standard input
//   - everything else is treated as a local file path
func Open(source string) (io.ReadCloser, error) {
	if source == "-" {
		// Wrap stdin with size limit to prevent memory overload
		// This is useful for piping content directly into the program
		return &limitedReadCloser{
			ReadCloser: os.Stdin,
			N:          MaxInputSizeBytes,
			source:     "stdin",
		}, nil
	}
	return openFile(source)
}

// openFile opens a local file for reading with better error messages
func openFile(path string) (io.ReadCloser, error) {
	// check if file exists and get size
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file %q does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access file %q: %w", path, err)
	}

	// check file size before opening to prevent memory overload
	if fileInfo.Size() > MaxInputSizeBytes {
		return nil, fmt.Errorf("file %q is too large (%d bytes > %d bytes limit)",
			path, fileInfo.Size(), MaxInputSizeBytes)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}

	// wrap with the same size limit; the stat result may be stale by read time
	return &limitedReadCloser{
		ReadCloser: file,
		N:          MaxInputSizeBytes,
		source:     path,
	}, nil
}

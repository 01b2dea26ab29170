// File: pkg/cat/copy.go
package cat

import (
	"errors"
	"io"
	"os"

	"go.uber.org/multierr"
)

var errIsDirectory = errors.New("is a directory")

// openSource opens a named file for reading. Directories are rejected
// before any byte is read from them.
func openSource(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Op: OpOpen, Path: path, Err: err}
	}

	info, err := f.Stat()
	if err != nil {
		return nil, &SourceError{Op: OpOpen, Path: path, Err: multierr.Append(err, f.Close())}
	}
	if info.IsDir() {
		return nil, &SourceError{Op: OpOpen, Path: path, Err: multierr.Append(errIsDirectory, f.Close())}
	}
	return f, nil
}

// FastCopy writes the bytes of the file at path to w unchanged and returns
// the number of bytes copied. Partial output may remain in w on error.
func FastCopy(path string, w io.Writer) (n int64, err error) {
	f, err := openSource(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, &SourceError{Op: OpClose, Path: path, Err: cerr})
		}
	}()

	n, err = io.Copy(w, f)
	if err != nil {
		return n, &SourceError{Op: OpCopy, Path: path, Err: err}
	}
	return n, nil
}

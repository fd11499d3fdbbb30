package merger

import "fmt"

// ValidationError reports why an input file was rejected before any
// decoding was attempted.
type ValidationError struct {
	FileName string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid file %q: %s", e.FileName, e.Reason)
}

// FileError wraps a per-file processing failure with the originating
// file name.
type FileError struct {
	FileName string
	Err      error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file %q: %v", e.FileName, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

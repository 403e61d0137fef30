// Package notiferror defines typed errors for the file and CLI boundary.
// The parsing engine itself never returns errors; these cover CSV input
// handling around it.
package notiferror

import "fmt"

// InvalidFormatError indicates an input file that does not conform to the
// expected notification CSV layout.
type InvalidFormatError struct {
	FilePath string
	Reason   string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s", e.FilePath, e.Reason)
}

// ReadError wraps a failure to read or decode an input file.
type ReadError struct {
	FilePath string
	Err      error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read '%s': %v", e.FilePath, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

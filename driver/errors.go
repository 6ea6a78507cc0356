/*
File    : jackc/driver/errors.go
Author  : Rajat Verma
Contact : rajatverma27(@outlook.com)
*/
package driver

import "fmt"

// IoError reports a filesystem-level failure: a path that does not
// exist, a file that cannot be opened or written, a rename that fails.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}

func newIoError(path string, err error) *IoError {
	return &IoError{Path: path, Err: err}
}

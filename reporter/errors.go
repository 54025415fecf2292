// Package reporter contains the types used for reporting errors and
// warnings observed while processing tiny source files. The parser and
// the build driver funnel every failure through a *Handler, so calling
// programs decide in one place whether a problem aborts the build or
// is collected and reported in bulk.
package reporter

import (
	"errors"
	"fmt"

	"github.com/tinylang/tinycompile/ast"
)

// ErrInvalidSource is a sentinel error returned by Handler.Error when
// errors were reported but the configured ErrorReporter swallowed all
// of them by returning nil.
var ErrInvalidSource = errors.New("parse failed: invalid tiny source")

// ErrorWithPos is an error about a tiny source file that includes
// information about the location in the file that caused the error.
//
// The value of Error() will contain both the SourcePos and Underlying
// error. The value of Unwrap() will only be the Underlying error.
type ErrorWithPos interface {
	error
	GetPosition() ast.SourcePos
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and source
// position.
func Error(pos ast.SourcePos, err error) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: err}
}

// Errorf creates a new ErrorWithPos whose underlying error is created
// using the given message format and arguments (via fmt.Errorf).
func Errorf(pos ast.SourcePos, format string, args ...any) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithSourcePos struct {
	underlying error
	pos        ast.SourcePos
}

func (e errorWithSourcePos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

// GetPosition implements the ErrorWithPos interface, supplying a
// location in tiny source that caused the error.
func (e errorWithSourcePos) GetPosition() ast.SourcePos {
	return e.pos
}

// Unwrap implements the ErrorWithPos interface, supplying the
// underlying error. This error will not include location information.
func (e errorWithSourcePos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSourcePos{}

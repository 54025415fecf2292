package reporter

import (
	"sync"

	"github.com/tinylang/tinycompile/ast"
)

// ErrorReporter is responsible for reporting the given error. If the
// reporter returns a non-nil error, the build of that file aborts with
// that error. If the reporter returns nil, processing continues,
// allowing the caller to collect as many errors as can be found.
type ErrorReporter func(err ErrorWithPos) error

// WarningReporter is responsible for reporting the given warning. This
// is used for indicating non-error messages to the calling program for
// things that do not cause the build to fail but are considered bad
// practice. Though they are just warnings, the details are supplied to
// the reporter via an error type.
type WarningReporter func(ErrorWithPos)

// Reporter is a collector of errors and warnings.
type Reporter interface {
	// Error is called when the given error is encountered and needs to
	// be reported to the calling program. If it returns non-nil, the
	// operation aborts with the returned error.
	Error(ErrorWithPos) error
	// Warning is called when the given warning is encountered and needs
	// to be reported to the calling program.
	Warning(ErrorWithPos)
}

// NewReporter creates a new reporter that invokes the given functions
// on error or warning. Either may be nil: a nil error function aborts
// on the first error, and a nil warning function drops warnings.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithPos) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler is used by the parser and the build driver to handle errors
// and warnings. It is thread-safe. After an error is reported and the
// underlying reporter aborts, the handler is latched: subsequent
// reports return the abort error without invoking the reporter again.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler creates a new Handler that reports errors and warnings to
// the given reporter. If rep is nil, the handler aborts on the first
// error and drops warnings.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorf handles an error with the given source position and
// message format. It returns the error the handler is latched with,
// nil if processing should continue.
func (h *Handler) HandleErrorf(pos ast.SourcePos, format string, args ...any) error {
	return h.HandleError(Errorf(pos, format, args...))
}

// HandleError handles the given error. If the handler has already
// aborted, the abort error is returned and err is not reported.
//
// Errors that carry a position (ErrorWithPos) go through the
// configured reporter, which may choose to continue; other errors
// abort unconditionally since there is no way to collect them.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	if ewp, ok := err.(ErrorWithPos); ok {
		h.errsReported = true
		err = h.reporter.Error(ewp)
	}
	h.err = err
	return err
}

// HandleWarning handles the given warning, attributed to the given
// source position. Warnings never abort.
func (h *Handler) HandleWarning(pos ast.SourcePos, err error) {
	// no need for lock; warnings don't interact with mutable fields
	h.reporter.Warning(Error(pos, err))
}

// Error returns the handler result. If any errors were reported, this
// returns a non-nil error: the latched abort error, or ErrInvalidSource
// when the reporter swallowed every reported error.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}

// ReporterError returns the error the handler is latched with, i.e.
// the non-nil error returned by the underlying reporter, if any.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}

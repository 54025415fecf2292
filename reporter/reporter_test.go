package reporter_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinylang/tinycompile/ast"
	"github.com/tinylang/tinycompile/reporter"
)

func testPos(line, col int) ast.SourcePos {
	return ast.SourcePos{Filename: "test.ty", Line: line, Col: col}
}

func TestErrorWithPos(t *testing.T) {
	t.Parallel()

	underlying := errors.New("unexpected token")
	err := reporter.Error(testPos(3, 7), underlying)

	assert.Equal(t, "test.ty:3:7: unexpected token", err.Error())
	assert.Equal(t, testPos(3, 7), err.GetPosition())
	assert.Same(t, underlying, err.Unwrap())
	assert.ErrorIs(t, err, underlying)

	errf := reporter.Errorf(testPos(1, 1), "expected %q", "{")
	assert.Equal(t, `test.ty:1:1: expected "{"`, errf.Error())
}

func TestHandlerFailFast(t *testing.T) {
	t.Parallel()

	h := reporter.NewHandler(nil)
	err := h.HandleErrorf(testPos(2, 5), "unexpected %s", "token")
	require.Error(t, err)
	assert.Equal(t, "test.ty:2:5: unexpected token", err.Error())

	// Latched: later reports come back with the first error.
	err2 := h.HandleErrorf(testPos(9, 1), "another")
	assert.Equal(t, err, err2)

	assert.Equal(t, err, h.Error())
	assert.Equal(t, err, h.ReporterError())
}

func TestHandlerCollects(t *testing.T) {
	t.Parallel()

	var errs []reporter.ErrorWithPos
	rep := reporter.NewReporter(
		func(err reporter.ErrorWithPos) error {
			errs = append(errs, err)
			return nil
		},
		nil,
	)

	h := reporter.NewHandler(rep)
	require.NoError(t, h.HandleErrorf(testPos(1, 1), "first"))
	require.NoError(t, h.HandleErrorf(testPos(2, 1), "second"))

	require.Len(t, errs, 2)
	assert.Equal(t, 1, errs[0].GetPosition().Line)
	assert.Equal(t, 2, errs[1].GetPosition().Line)

	// Errors were reported, so the build failed even though the
	// reporter swallowed them all.
	assert.ErrorIs(t, h.Error(), reporter.ErrInvalidSource)
	assert.NoError(t, h.ReporterError())
}

func TestHandlerAborts(t *testing.T) {
	t.Parallel()

	tooMany := errors.New("too many errors")
	count := 0
	rep := reporter.NewReporter(
		func(err reporter.ErrorWithPos) error {
			count++
			if count > 1 {
				return tooMany
			}
			return nil
		},
		nil,
	)

	h := reporter.NewHandler(rep)
	require.NoError(t, h.HandleErrorf(testPos(1, 1), "first"))
	assert.Same(t, tooMany, h.HandleErrorf(testPos(2, 1), "second"))

	// Once aborted, the reporter is not invoked again.
	assert.Same(t, tooMany, h.HandleErrorf(testPos(3, 1), "third"))
	assert.Equal(t, 2, count)

	assert.Same(t, tooMany, h.Error())
	assert.Same(t, tooMany, h.ReporterError())
}

func TestHandlerPlainError(t *testing.T) {
	t.Parallel()

	reported := 0
	rep := reporter.NewReporter(
		func(err reporter.ErrorWithPos) error {
			reported++
			return nil
		},
		nil,
	)

	// Errors without a position can't be collected; they abort as is.
	h := reporter.NewHandler(rep)
	ioErr := errors.New("read failed")
	assert.Same(t, ioErr, h.HandleError(ioErr))
	assert.Zero(t, reported)
	assert.Same(t, ioErr, h.Error())
}

func TestHandlerWarnings(t *testing.T) {
	t.Parallel()

	var warnings []reporter.ErrorWithPos
	rep := reporter.NewReporter(
		nil,
		func(err reporter.ErrorWithPos) {
			warnings = append(warnings, err)
		},
	)

	h := reporter.NewHandler(rep)
	h.HandleWarning(testPos(4, 2), errors.New("unused variable"))

	require.Len(t, warnings, 1)
	assert.Equal(t, "test.ty:4:2: unused variable", warnings[0].Error())
	// Warnings never fail the build.
	assert.NoError(t, h.Error())
}

func TestHandlerNilWarningReporter(t *testing.T) {
	t.Parallel()

	h := reporter.NewHandler(nil)
	assert.NotPanics(t, func() {
		h.HandleWarning(testPos(1, 1), errors.New("dropped"))
	})
	assert.NoError(t, h.Error())
}

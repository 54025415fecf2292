package ast

import "errors"

// Sentinel errors reported by node and parameter accessors. Callers
// match them with errors.Is; the errors actually returned wrap these
// with the position and type of the node that failed the lookup.
var (
	// ErrParameterNotFound indicates a node has no parameter of the
	// requested role.
	ErrParameterNotFound = errors.New("parameter not found")
	// ErrChildNotFound indicates a node has no child of the requested
	// type, or fewer children than the requested position.
	ErrChildNotFound = errors.New("child not found")
	// ErrWrongValueKind indicates a value is absent or holds a
	// different variant than the accessor requested.
	ErrWrongValueKind = errors.New("wrong value kind")
)

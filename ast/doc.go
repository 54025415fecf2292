// Package ast defines types for modeling the AST (Abstract Syntax
// Tree) for the tiny source language.
//
// Unlike ASTs that model each construct with its own struct or
// interface, this package uses a single concrete node type, *Node,
// tagged with a NodeType that identifies the construct it represents.
// The parser emits whatever mix of parameters, children, and literal
// value a construct calls for; later phases branch on the tag. The
// root for a tiny source file is a *File, which holds the file's
// module declaration, imports, and top-level statements.
//
// Position information is tracked using a *FileInfo, calling its
// AddLine method as the file is scanned. Each node carries a Metadata
// with its start and end positions, computed by the *FileInfo that
// observed the file's contents. Metadata exists to make error messages
// and diagnostic output precise; consumers should not branch on it.
//
// Creation of AST nodes should use the factory functions in this
// package instead of struct literals. A tree is assembled by the
// parser and then read-only: later phases query it via the accessor
// methods (GetParam, GetChild, GetStringVal, and friends), which
// report absent or mismatched data as errors rather than returning
// zero values.
//
// Trees can be exported to a JSON form via MarshalJSON or
// File.WriteJSON for debugging and external tooling. The JSON form is
// write-only; nothing in this module reads it back.
package ast

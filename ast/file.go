package ast

import (
	"encoding/json"
	"os"
)

// Import records a single import declaration: the name of the imported
// module and the optional alias it is bound to.
type Import struct {
	Module string
	Alias  string
}

// NewImport returns a standard (non-aliased) import of the given
// module.
func NewImport(module string) Import {
	return Import{Module: module}
}

// NewAliasedImport returns an import of the given module bound to the
// given alias.
func NewAliasedImport(module, alias string) Import {
	return Import{Module: module, Alias: alias}
}

// String renders the import as "module" or "module as alias".
func (i Import) String() string {
	if i.Alias == "" {
		return i.Module
	}
	return i.Module + " as " + i.Alias
}

// File is the root of the syntax tree for a single tiny source file:
// the file's identity, its module declaration, its imports, and its
// top-level statements in source order.
//
// A File is constructed once, by the parser that consumed the file,
// and is read-only afterward. Independent Files share nothing, so they
// can be built and consumed concurrently.
type File struct {
	Info       *FileInfo
	Module     string
	Imports    []Import
	Statements []*Node
}

// NewFile returns the tree root for a parsed source file. info must be
// the FileInfo that observed the file's contents.
func NewFile(info *FileInfo, module string, imports []Import, statements []*Node) *File {
	return &File{
		Info:       info,
		Module:     module,
		Imports:    imports,
		Statements: statements,
	}
}

// Name returns the name of the source file.
func (f *File) Name() string {
	return f.Info.Name()
}

// WriteJSON writes the file's JSON form to a file at the given path,
// creating or truncating it. The destination is closed on every exit
// path; a close failure is reported if nothing failed before it.
func (f *File) WriteJSON(path string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}

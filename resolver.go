package tinycompile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tinylang/tinycompile/ast"
)

// ErrNotFound is returned by resolvers when they have no result for
// the requested path.
var ErrNotFound = errors.New("file not found")

// Resolver is used by the builder to locate its inputs: it resolves a
// file path into source code or an already-built syntax tree.
type Resolver interface {
	FindFileByPath(path string) (SearchResult, error)
}

// SearchResult is the result of a resolver query.
type SearchResult struct {
	// Only one of the following must be set, based on what the resolver
	// is able to find or produce. If both are set, the builder uses the
	// tree and ignores the source.

	// Source is the file's source code to be parsed. If it implements
	// io.Closer, the builder closes it when the file's build finishes.
	Source io.Reader
	// AST is an already-built syntax tree for the file, which short
	// circuits parsing.
	AST *ast.File
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(string) (SearchResult, error)

var _ Resolver = ResolverFunc(nil)

func (f ResolverFunc) FindFileByPath(path string) (SearchResult, error) {
	return f(path)
}

// CompositeResolver queries each of its resolvers in order and returns
// the first successful result. If all fail, it returns the first
// error.
type CompositeResolver []Resolver

var _ Resolver = CompositeResolver(nil)

func (f CompositeResolver) FindFileByPath(path string) (SearchResult, error) {
	if len(f) == 0 {
		return SearchResult{}, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	var firstErr error
	for _, res := range f {
		r, err := res.FindFileByPath(path)
		if err == nil {
			return r, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return SearchResult{}, firstErr
}

// SourceResolver resolves paths into source code from the file system.
type SourceResolver struct {
	// Optional list of directories to search for the given path. If
	// empty, the path is accessed as given.
	ImportPaths []string
	// Optional function for how to load source. If nil, os.Open is
	// used.
	Accessor func(path string) (io.ReadCloser, error)
}

var _ Resolver = (*SourceResolver)(nil)

func (r *SourceResolver) FindFileByPath(path string) (SearchResult, error) {
	accessor := r.Accessor
	if accessor == nil {
		accessor = func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		}
	}

	if len(r.ImportPaths) == 0 {
		reader, err := accessor(path)
		if err != nil {
			return SearchResult{}, err
		}
		return SearchResult{Source: reader}, nil
	}

	var e error
	for _, importPath := range r.ImportPaths {
		reader, err := accessor(filepath.Join(importPath, path))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				e = err
				continue
			}
			return SearchResult{}, err
		}
		return SearchResult{Source: reader}, nil
	}
	return SearchResult{}, e
}

// SourceAccessorFromMap returns a function that can be used as the
// Accessor field of a SourceResolver that uses the given map to load
// source. The map keys are file paths and the values are the
// corresponding file contents.
//
// The given map is used directly and not copied. Since accessor
// functions must be thread-safe, the map must not be modified while
// the accessor is in use.
func SourceAccessorFromMap(srcs map[string]string) func(string) (io.ReadCloser, error) {
	return func(path string) (io.ReadCloser, error) {
		src, ok := srcs[path]
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, fs.ErrNotExist)
		}
		return io.NopCloser(strings.NewReader(src)), nil
	}
}

package tinycompile

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/tinylang/tinycompile/ast"
	"github.com/tinylang/tinycompile/reporter"
)

// Parser turns the source code of a single tiny file into its syntax
// tree. The lexer and parser live outside this module; the builder
// only depends on this contract.
//
// Parse reports syntax problems through the given handler, which
// decides whether to abort or collect them. On failure the returned
// tree may be nil or partial; the error is authoritative.
type Parser interface {
	Parse(filename string, source io.Reader, handler *reporter.Handler) (*ast.File, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(string, io.Reader, *reporter.Handler) (*ast.File, error)

var _ Parser = ParserFunc(nil)

func (f ParserFunc) Parse(filename string, source io.Reader, handler *reporter.Handler) (*ast.File, error) {
	return f(filename, source, handler)
}

// Builder produces syntax trees for tiny source files. It resolves
// each requested path to source code, hands the source to its Parser,
// and collects the resulting per-file trees. Files are independent of
// one another, so they are processed in parallel.
type Builder struct {
	// Resolves file paths into source code or already-built syntax
	// trees. This is how the builder loads the files to be built. This
	// field is required.
	Resolver Resolver
	// Parses resolved source code. This field is required unless the
	// resolver only ever returns already-built trees.
	Parser Parser
	// The maximum parallelism to use when building. If unspecified or
	// set to a non-positive value, then min(runtime.NumCPU(),
	// runtime.GOMAXPROCS(-1)) will be used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified a default
	// reporter is used. A default reporter fails the build after
	// encountering any error and ignores all warnings.
	Reporter reporter.Reporter
}

// Build builds the given file paths into syntax trees. The returned
// slice has one tree per path, in the same order as the paths. Each
// path is built at most once per call: duplicate paths share a result.
//
// If the context is cancelled, Build returns ctx.Err(). Otherwise, if
// any file fails, Build returns the first failure in path order.
func (b *Builder) Build(ctx context.Context, paths ...string) ([]*ast.File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := b.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		cpus := runtime.NumCPU()
		if par > cpus {
			par = cpus
		}
	}

	h := reporter.NewHandler(b.Reporter)

	e := executor{
		b:       b,
		h:       h,
		s:       semaphore.NewWeighted(int64(par)),
		cancel:  cancel,
		results: map[string]*result{},
	}

	results := make([]*result, len(paths))
	for i, path := range paths {
		results[i] = e.build(ctx, path)
	}

	files := make([]*ast.File, len(paths))
	for i, r := range results {
		select {
		case <-r.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if r.err != nil {
			return nil, r.err
		}
		files[i] = r.file
	}

	return files, nil
}

type result struct {
	ready chan struct{}
	file  *ast.File
	err   error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(f *ast.File) {
	r.file = f
	close(r.ready)
}

type executor struct {
	b      *Builder
	h      *reporter.Handler
	s      *semaphore.Weighted
	cancel context.CancelFunc

	mu      sync.Mutex
	results map[string]*result
}

func (e *executor) build(ctx context.Context, path string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.results[path]
	if r != nil {
		return r
	}

	r = &result{
		ready: make(chan struct{}),
	}
	e.results[path] = r
	go func() {
		e.doBuild(ctx, path, r)
	}()
	return r
}

// doBuild builds a single file. The executor's semaphore limits the
// number of builds running at once.
func (e *executor) doBuild(ctx context.Context, path string, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	sr, err := e.b.Resolver.FindFileByPath(path)
	if err != nil {
		r.fail(err)
		return
	}

	defer func() {
		// don't leave the source open if it can be closed
		if c, ok := sr.Source.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	file, err := e.asFile(path, sr)
	if err != nil {
		r.fail(err)
		return
	}
	r.complete(file)
}

func (e *executor) asFile(path string, sr SearchResult) (*ast.File, error) {
	if sr.AST != nil {
		if sr.AST.Name() != path {
			return nil, fmt.Errorf("search result for %q returned file %q", path, sr.AST.Name())
		}
		return sr.AST, nil
	}
	if e.b.Parser == nil {
		return nil, fmt.Errorf("search result for %q returned source but builder has no parser", path)
	}
	file, err := e.b.Parser.Parse(path, sr.Source, e.h)
	if err != nil {
		return nil, err
	}
	// The handler may hold collected errors even when the parser
	// returned a tree.
	if err := e.h.Error(); err != nil {
		return nil, err
	}
	return file, nil
}

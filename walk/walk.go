// Package walk provides helpers for traversing syntax trees. Later
// compiler phases use it to visit every node of a parsed file without
// writing the recursion by hand.
package walk

import (
	"github.com/tinylang/tinycompile/ast"
)

// Nodes walks the tree rooted at n in depth-first order, invoking fn
// for n and then for each of its descendants in child order. If fn
// returns an error, the walk aborts and returns that error.
func Nodes(n *ast.Node, fn func(*ast.Node) error) error {
	return NodesEnterAndExit(n, fn, nil)
}

// NodesEnterAndExit walks the tree rooted at n, invoking enter before
// a node's children are visited and exit after. The exit function may
// be nil. If either returns an error, the walk aborts and returns that
// error.
func NodesEnterAndExit(n *ast.Node, enter, exit func(*ast.Node) error) error {
	if err := enter(n); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := NodesEnterAndExit(child, enter, exit); err != nil {
			return err
		}
	}
	if exit != nil {
		if err := exit(n); err != nil {
			return err
		}
	}
	return nil
}

// File walks every statement tree of f in source order. See Nodes.
func File(f *ast.File, fn func(*ast.Node) error) error {
	return FileEnterAndExit(f, fn, nil)
}

// FileEnterAndExit walks every statement tree of f in source order.
// See NodesEnterAndExit.
func FileEnterAndExit(f *ast.File, enter, exit func(*ast.Node) error) error {
	for _, stmt := range f.Statements {
		if err := NodesEnterAndExit(stmt, enter, exit); err != nil {
			return err
		}
	}
	return nil
}

package ast

import "fmt"

// Node is a node of the syntax tree. It holds the type of construct it
// represents, the parameters and literal value attached to it, and its
// children in source order. Children are exclusively owned by their
// parent; nodes hold no reference back to it.
//
// The parser appends parameters and children while it assembles a
// node. Once the node's tree is handed off, it is read-only, which is
// what makes independent trees safe to build and consume in parallel.
type Node struct {
	Type     NodeType
	Params   []Parameter
	Children []*Node
	Meta     Metadata
	Val      Value
}

// NewNode returns a node of the given type with the given initial
// children, appended in argument order. More children and parameters
// can be added with AddChildren and AddParam.
func NewNode(meta Metadata, t NodeType, children ...*Node) *Node {
	return &Node{Type: t, Meta: meta, Children: children}
}

// NewValueNode returns a childless node of the given type holding the
// given literal value, as used for literals and identifiers.
func NewValueNode(meta Metadata, t NodeType, v Value) *Node {
	return &Node{Type: t, Meta: meta, Val: v}
}

// HasParam reports whether the node has a parameter with the given
// role.
func (n *Node) HasParam(t ParameterType) bool {
	for _, p := range n.Params {
		if p.Type == t {
			return true
		}
	}
	return false
}

// GetParam returns the node's parameter with the given role. If
// several parameters share the role, the first added wins. It returns
// an error wrapping ErrParameterNotFound if there is none.
func (n *Node) GetParam(t ParameterType) (Parameter, error) {
	for _, p := range n.Params {
		if p.Type == t {
			return p, nil
		}
	}
	return Parameter{}, fmt.Errorf("%s: %s node has no %s parameter: %w", n.Meta, n.Type, t, ErrParameterNotFound)
}

// AddParam appends a parameter to the node. No uniqueness check is
// performed; the producer is responsible for not attaching ambiguous
// duplicates.
func (n *Node) AddParam(p Parameter) {
	n.Params = append(n.Params, p)
}

// GetChild returns the node's first child of the given type, in child
// order. It returns an error wrapping ErrChildNotFound if there is
// none.
func (n *Node) GetChild(t NodeType) (*Node, error) {
	for _, c := range n.Children {
		if c.Type == t {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%s: %s node has no %s child: %w", n.Meta, n.Type, t, ErrChildNotFound)
}

// GetFirstChild returns the node's first child. It returns an error
// wrapping ErrChildNotFound if the node has no children.
func (n *Node) GetFirstChild() (*Node, error) {
	if len(n.Children) < 1 {
		return nil, fmt.Errorf("%s: %s node has no children: %w", n.Meta, n.Type, ErrChildNotFound)
	}
	return n.Children[0], nil
}

// GetSecondChild returns the node's second child. It returns an error
// wrapping ErrChildNotFound if the node has fewer than two children.
func (n *Node) GetSecondChild() (*Node, error) {
	if len(n.Children) < 2 {
		return nil, fmt.Errorf("%s: %s node has fewer than two children: %w", n.Meta, n.Type, ErrChildNotFound)
	}
	return n.Children[1], nil
}

// AddChildren appends the given nodes to the node's children,
// preserving order. Ownership of each appended node transfers to n.
func (n *Node) AddChildren(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// GetStringVal returns the node's literal value as text. It returns an
// error wrapping ErrWrongValueKind if the value is absent or not text.
func (n *Node) GetStringVal() (string, error) {
	s, ok := n.Val.AsString()
	if !ok {
		return "", fmt.Errorf("%s: %s node holds %s, not string: %w", n.Meta, n.Type, n.Val.Kind(), ErrWrongValueKind)
	}
	return s, nil
}

// IsOperation returns whether the node's type is an operator type. See
// NodeType.IsOperation.
func (n *Node) IsOperation() bool {
	return n.Type.IsOperation()
}

// String renders a one-line summary of the node for logs and error
// messages: the node type, plus the literal value if one is present.
// It does not descend into children.
func (n *Node) String() string {
	if n.Val.IsAbsent() {
		return n.Type.String()
	}
	return fmt.Sprintf("%s(%s)", n.Type, n.Val)
}

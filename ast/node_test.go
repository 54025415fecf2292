package ast_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinylang/tinycompile/ast"
)

var testMeta = ast.UnknownMetadata("test.ty")

func TestNewNodeChildren(t *testing.T) {
	t.Parallel()

	a := ast.NewValueNode(testMeta, ast.LiteralInt, ast.IntValue(1))
	b := ast.NewValueNode(testMeta, ast.LiteralInt, ast.IntValue(2))
	c := ast.NewValueNode(testMeta, ast.LiteralInt, ast.IntValue(3))

	tests := []struct {
		name     string
		n        *ast.Node
		children []*ast.Node
	}{
		{name: "none", n: ast.NewNode(testMeta, ast.BlockStatement), children: nil},
		{name: "one", n: ast.NewNode(testMeta, ast.ExpressionStatement, a), children: []*ast.Node{a}},
		{name: "two", n: ast.NewNode(testMeta, ast.OpAddition, a, b), children: []*ast.Node{a, b}},
		{name: "three", n: ast.NewNode(testMeta, ast.RangeExpression, a, b, c), children: []*ast.Node{a, b, c}},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.children, test.n.Children)
			assert.True(t, test.n.Val.IsAbsent())
		})
	}
}

func TestNewValueNode(t *testing.T) {
	t.Parallel()

	n := ast.NewValueNode(testMeta, ast.Identifier, ast.StringValue("count"))
	assert.Equal(t, ast.Identifier, n.Type)
	assert.Empty(t, n.Children)

	s, err := n.GetStringVal()
	require.NoError(t, err)
	assert.Equal(t, "count", s)
}

func TestParams(t *testing.T) {
	t.Parallel()

	n := ast.NewNode(testMeta, ast.FunctionDeclaration)
	assert.False(t, n.HasParam(ast.ParamName))
	_, err := n.GetParam(ast.ParamName)
	assert.ErrorIs(t, err, ast.ErrParameterNotFound)

	n.AddParam(ast.NewValueParameter(ast.ParamName, ast.StringValue("add")))
	n.AddParam(ast.NewParameter(ast.ParamConst))

	// hasParam is true exactly when getParam succeeds.
	for _, pt := range parameterTypes {
		p, err := n.GetParam(pt)
		if n.HasParam(pt) {
			require.NoError(t, err, "%s", pt)
			assert.Equal(t, pt, p.Type)
		} else {
			assert.ErrorIs(t, err, ast.ErrParameterNotFound, "%s", pt)
		}
	}
}

func TestGetParamFirstWins(t *testing.T) {
	t.Parallel()

	n := ast.NewNode(testMeta, ast.FunctionDeclaration)
	n.AddParam(ast.NewValueParameter(ast.ParamName, ast.StringValue("first")))
	n.AddParam(ast.NewValueParameter(ast.ParamName, ast.StringValue("second")))

	p, err := n.GetParam(ast.ParamName)
	require.NoError(t, err)
	s, err := p.GetStringVal(n.Meta)
	require.NoError(t, err)
	assert.Equal(t, "first", s)
}

func TestGetParamError(t *testing.T) {
	t.Parallel()

	n := ast.NewNode(ast.UnknownMetadata("lib.ty"), ast.StructDeclaration)
	_, err := n.GetParam(ast.ParamName)
	require.Error(t, err)
	assert.ErrorIs(t, err, ast.ErrParameterNotFound)
	assert.Contains(t, err.Error(), "lib.ty")
	assert.Contains(t, err.Error(), "StructDeclaration")
	assert.Contains(t, err.Error(), "Name")
}

func TestGetChild(t *testing.T) {
	t.Parallel()

	cond := ast.NewNode(testMeta, ast.BranchCondition)
	cons := ast.NewNode(testMeta, ast.BranchConsequent)
	n := ast.NewNode(testMeta, ast.IfStatement, cond, cons)

	got, err := n.GetChild(ast.BranchCondition)
	require.NoError(t, err)
	assert.Same(t, cond, got)

	got, err = n.GetChild(ast.BranchConsequent)
	require.NoError(t, err)
	assert.Same(t, cons, got)

	_, err = n.GetChild(ast.BranchAlternative)
	require.Error(t, err)
	assert.ErrorIs(t, err, ast.ErrChildNotFound)
	assert.Contains(t, err.Error(), "IfStatement")
	assert.Contains(t, err.Error(), "BranchAlternative")
}

func TestGetChildFirstWins(t *testing.T) {
	t.Parallel()

	first := ast.NewValueNode(testMeta, ast.Identifier, ast.StringValue("first"))
	second := ast.NewValueNode(testMeta, ast.Identifier, ast.StringValue("second"))
	n := ast.NewNode(testMeta, ast.ExpressionList, first, second)

	got, err := n.GetChild(ast.Identifier)
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestPositionalChildren(t *testing.T) {
	t.Parallel()

	n := ast.NewNode(testMeta, ast.Assignment)
	_, err := n.GetFirstChild()
	assert.ErrorIs(t, err, ast.ErrChildNotFound)
	_, err = n.GetSecondChild()
	assert.ErrorIs(t, err, ast.ErrChildNotFound)

	lhs := ast.NewValueNode(testMeta, ast.Identifier, ast.StringValue("x"))
	n.AddChildren(lhs)
	got, err := n.GetFirstChild()
	require.NoError(t, err)
	assert.Same(t, lhs, got)
	_, err = n.GetSecondChild()
	assert.ErrorIs(t, err, ast.ErrChildNotFound)

	rhs := ast.NewValueNode(testMeta, ast.LiteralInt, ast.IntValue(1))
	n.AddChildren(rhs)
	got, err = n.GetSecondChild()
	require.NoError(t, err)
	assert.Same(t, rhs, got)

	// Positional accessors ignore the child's type.
	assert.Equal(t, ast.Identifier, lhs.Type)
}

func TestAddChildrenOrder(t *testing.T) {
	t.Parallel()

	n := ast.NewNode(testMeta, ast.BlockStatement)
	a := ast.NewNode(testMeta, ast.ExpressionStatement)
	b := ast.NewNode(testMeta, ast.ExpressionStatement)
	c := ast.NewNode(testMeta, ast.FunctionReturn)

	n.AddChildren(a)
	n.AddChildren(b, c)
	assert.Equal(t, []*ast.Node{a, b, c}, n.Children)
}

func TestGetStringVal(t *testing.T) {
	t.Parallel()

	n := ast.NewValueNode(testMeta, ast.LiteralString, ast.StringValue("hello"))
	s, err := n.GetStringVal()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	_, err = ast.NewNode(testMeta, ast.BlockStatement).GetStringVal()
	require.Error(t, err)
	assert.ErrorIs(t, err, ast.ErrWrongValueKind)

	_, err = ast.NewValueNode(testMeta, ast.LiteralInt, ast.IntValue(3)).GetStringVal()
	require.Error(t, err)
	assert.ErrorIs(t, err, ast.ErrWrongValueKind)
	assert.Contains(t, err.Error(), "int")
}

func TestNodeIsOperation(t *testing.T) {
	t.Parallel()

	assert.True(t, ast.NewNode(testMeta, ast.OpAddition).IsOperation())
	assert.True(t, ast.NewNode(testMeta, ast.UnaryNot).IsOperation())
	assert.False(t, ast.NewNode(testMeta, ast.IfStatement).IsOperation())
	assert.False(t, ast.NewValueNode(testMeta, ast.LiteralInt, ast.IntValue(1)).IsOperation())
}

func TestNodeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BlockStatement", ast.NewNode(testMeta, ast.BlockStatement).String())
	assert.Equal(t, "Identifier(x)", ast.NewValueNode(testMeta, ast.Identifier, ast.StringValue("x")).String())
	assert.Equal(t, "LiteralBool(True)", ast.NewValueNode(testMeta, ast.LiteralBool, ast.BoolValue(true)).String())
}

func TestIfStatementShape(t *testing.T) {
	t.Parallel()

	cond := ast.NewNode(testMeta, ast.BranchCondition,
		ast.NewValueNode(testMeta, ast.LiteralBool, ast.BoolValue(true)))
	cons := ast.NewNode(testMeta, ast.BranchConsequent,
		ast.NewNode(testMeta, ast.BlockStatement))
	ifStmt := ast.NewNode(testMeta, ast.IfStatement, cond, cons)

	got, err := ifStmt.GetChild(ast.BranchCondition)
	require.NoError(t, err)
	assert.Same(t, cond, got)

	_, err = ifStmt.GetChild(ast.BranchAlternative)
	assert.ErrorIs(t, err, ast.ErrChildNotFound)

	assert.False(t, ifStmt.IsOperation())
}

func TestNodeJSONChildOrder(t *testing.T) {
	t.Parallel()

	// Child order must survive the projection recursively.
	leaf := func(i int64) *ast.Node {
		return ast.NewValueNode(testMeta, ast.LiteralInt, ast.IntValue(i))
	}
	inner := ast.NewNode(testMeta, ast.ExpressionList, leaf(1), leaf(2), leaf(3))
	root := ast.NewNode(testMeta, ast.FunctionCallArgumentList, inner, leaf(4))

	data, err := json.Marshal(root)
	require.NoError(t, err)

	var decoded struct {
		Type     string `json:"type"`
		Children []struct {
			Type     string `json:"type"`
			Children []struct {
				Type  string `json:"type"`
				Value int64  `json:"value"`
			} `json:"children"`
			Value int64 `json:"value"`
		} `json:"children"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "FunctionCallArgumentList", decoded.Type)
	require.Len(t, decoded.Children, 2)
	assert.Equal(t, "ExpressionList", decoded.Children[0].Type)
	require.Len(t, decoded.Children[0].Children, 3)
	for i, c := range decoded.Children[0].Children {
		assert.Equal(t, "LiteralInt", c.Type)
		assert.Equal(t, int64(i+1), c.Value)
	}
	assert.Equal(t, int64(4), decoded.Children[1].Value)
}

func TestNodeJSONOmitsAbsent(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(ast.NewNode(ast.UnknownMetadata(""), ast.BlockStatement))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"BlockStatement"}`, string(data))

	n := ast.NewValueNode(ast.UnknownMetadata(""), ast.LiteralBool, ast.BoolValue(false))
	n.AddParam(ast.NewParameter(ast.ParamConst))
	data, err = json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"LiteralBool","params":[{"type":"Const"}],"value":false}`, string(data))
}

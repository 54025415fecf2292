package ast

import "fmt"

// NodeType identifies the language construct a Node represents. It is a
// single flat enumeration covering every construct the parser can emit;
// later phases branch on it rather than on Go types.
//
// The operator types form contiguous runs, which IsOperation depends
// on. New types must be appended within the group they belong to.
type NodeType int

const (
	// None is the type of the zero Node. The parser never emits it.
	None NodeType = iota

	// ExpressionList is a comma-separated list of expressions, as found
	// in function call arguments.
	ExpressionList
	// ExpressionStatement is a bare expression in statement position.
	ExpressionStatement
	// BlockStatement holds the statements of a braced block.
	BlockStatement

	// Literal values. Each carries its literal as the node's Value.
	LiteralInt
	LiteralDecimal
	LiteralBool
	LiteralNone
	LiteralChar
	LiteralString

	// Arithmetic operators.
	OpAddition
	OpSubtraction
	OpMultiplication
	OpDivision
	OpExponentiate

	// Identifier names a function, variable, or custom type. The name
	// is the node's Value.
	Identifier
	// Initialization declares a new variable and assigns its first value.
	Initialization
	// Assignment stores a value into an existing variable.
	Assignment
	// Compound assignments, e.g. x += e for AssignmentSum.
	AssignmentSum
	AssignmentSub
	AssignmentMulti
	AssignmentDiv
	// VarDeclaration declares a variable without assigning it.
	VarDeclaration

	// For loops and their range clauses.
	ForStatement
	RangeExpression
	RangeFromExpression
	RangeToExpression
	RangeStepExpression
	ForEachExpression

	// If branches. BranchConsequent holds the true arm and
	// BranchAlternative the optional else arm.
	IfStatement
	BranchCondition
	BranchConsequent
	BranchAlternative

	// Comparison operators.
	CompareEq
	CompareNeq
	CompareGt
	CompareGteq
	CompareLt
	CompareLteq

	// Logical operators.
	LogicalAnd
	LogicalOr

	// Unary operators.
	UnaryNot
	UnaryNegative

	// ErrorHandle is the error handler operator.
	ErrorHandle

	// Function and method declarations.
	FunctionDeclaration
	FunctionArgumentDeclList
	FunctionArgumentDecl
	FunctionReturnDeclList
	FunctionReturnDecl
	FunctionBody
	FunctionReturn
	MethodDeclaration
	// MethodType is the receiver type a method operates over.
	MethodType

	// Function calls.
	FunctionCall
	FunctionCallArgumentList

	// Type names a type; TypedExpression binds a type to a value, as in
	// a variable declaration or function argument.
	Type
	TypedExpression

	// MemberAccess is foo.bar; IndexedAccess is foo[0].
	MemberAccess
	IndexedAccess

	// Trait and struct declarations.
	TraitDeclaration
	TraitFieldList
	TraitList
	Trait
	StructDeclaration
	StructField
	StructFieldList
	// Composition is a composing object inside a struct definition.
	Composition
)

// IsOperation returns whether t is one of the operator types:
// arithmetic, comparison, logical, or unary. The classification is a
// property of the type alone, independent of any node's content.
func (t NodeType) IsOperation() bool {
	return (t >= OpAddition && t <= OpExponentiate) ||
		(t >= CompareEq && t <= UnaryNegative)
}

func (t NodeType) String() string {
	switch t {
	case None:
		return "None"
	case ExpressionList:
		return "ExpressionList"
	case ExpressionStatement:
		return "ExpressionStatement"
	case BlockStatement:
		return "BlockStatement"
	case LiteralInt:
		return "LiteralInt"
	case LiteralDecimal:
		return "LiteralDecimal"
	case LiteralBool:
		return "LiteralBool"
	case LiteralNone:
		return "LiteralNone"
	case LiteralChar:
		return "LiteralChar"
	case LiteralString:
		return "LiteralString"
	case OpAddition:
		return "OpAddition"
	case OpSubtraction:
		return "OpSubtraction"
	case OpMultiplication:
		return "OpMultiplication"
	case OpDivision:
		return "OpDivision"
	case OpExponentiate:
		return "OpExponentiate"
	case Identifier:
		return "Identifier"
	case Initialization:
		return "Initialization"
	case Assignment:
		return "Assignment"
	case AssignmentSum:
		return "AssignmentSum"
	case AssignmentSub:
		return "AssignmentSub"
	case AssignmentMulti:
		return "AssignmentMulti"
	case AssignmentDiv:
		return "AssignmentDiv"
	case VarDeclaration:
		return "VarDeclaration"
	case ForStatement:
		return "ForStatement"
	case RangeExpression:
		return "RangeExpression"
	case RangeFromExpression:
		return "RangeFromExpression"
	case RangeToExpression:
		return "RangeToExpression"
	case RangeStepExpression:
		return "RangeStepExpression"
	case ForEachExpression:
		return "ForEachExpression"
	case IfStatement:
		return "IfStatement"
	case BranchCondition:
		return "BranchCondition"
	case BranchConsequent:
		return "BranchConsequent"
	case BranchAlternative:
		return "BranchAlternative"
	case CompareEq:
		return "CompareEq"
	case CompareNeq:
		return "CompareNeq"
	case CompareGt:
		return "CompareGt"
	case CompareGteq:
		return "CompareGteq"
	case CompareLt:
		return "CompareLt"
	case CompareLteq:
		return "CompareLteq"
	case LogicalAnd:
		return "LogicalAnd"
	case LogicalOr:
		return "LogicalOr"
	case UnaryNot:
		return "UnaryNot"
	case UnaryNegative:
		return "UnaryNegative"
	case ErrorHandle:
		return "ErrorHandle"
	case FunctionDeclaration:
		return "FunctionDeclaration"
	case FunctionArgumentDeclList:
		return "FunctionArgumentDeclList"
	case FunctionArgumentDecl:
		return "FunctionArgumentDecl"
	case FunctionReturnDeclList:
		return "FunctionReturnDeclList"
	case FunctionReturnDecl:
		return "FunctionReturnDecl"
	case FunctionBody:
		return "FunctionBody"
	case FunctionReturn:
		return "FunctionReturn"
	case MethodDeclaration:
		return "MethodDeclaration"
	case MethodType:
		return "MethodType"
	case FunctionCall:
		return "FunctionCall"
	case FunctionCallArgumentList:
		return "FunctionCallArgumentList"
	case Type:
		return "Type"
	case TypedExpression:
		return "TypedExpression"
	case MemberAccess:
		return "MemberAccess"
	case IndexedAccess:
		return "IndexedAccess"
	case TraitDeclaration:
		return "TraitDeclaration"
	case TraitFieldList:
		return "TraitFieldList"
	case TraitList:
		return "TraitList"
	case Trait:
		return "Trait"
	case StructDeclaration:
		return "StructDeclaration"
	case StructField:
		return "StructField"
	case StructFieldList:
		return "StructFieldList"
	case Composition:
		return "Composition"
	default:
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
}

// nodeTypeCount is the number of declared node types, for exhaustive
// tests over the enumeration.
const nodeTypeCount = int(Composition) + 1

var nodeTypesByName = func() map[string]NodeType {
	m := make(map[string]NodeType, nodeTypeCount)
	for i := 0; i < nodeTypeCount; i++ {
		t := NodeType(i)
		m[t.String()] = t
	}
	return m
}()

// NodeTypeByName looks up a node type by the name String returns for
// it. If name does not name a node type, it returns false.
func NodeTypeByName(name string) (NodeType, bool) {
	t, ok := nodeTypesByName[name]
	return t, ok
}

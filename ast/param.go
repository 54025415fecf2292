package ast

import "fmt"

// ParameterType identifies the role a Parameter plays on its node.
type ParameterType int

const (
	// ParamNone is the role of the zero Parameter. The parser never
	// emits it.
	ParamNone ParameterType = iota
	// ParamType records the type of the node's value.
	ParamType
	// ParamConst marks the node's value as constant.
	ParamConst
	// ParamPointer marks the node's value as a pointer.
	ParamPointer
	// ParamDereference marks a dereference of the node's value.
	ParamDereference
	// ParamValueAt marks a value-at access of the node's value.
	ParamValueAt
	// ParamRangeIdentifier names the identifier a range binds.
	ParamRangeIdentifier
	// ParamErrorCallback marks an error handler that uses a callback
	// function.
	ParamErrorCallback
	// ParamErrorVarName names the error value of an inlined error
	// handler.
	ParamErrorVarName
	// ParamName names a function, method, or similar procedure.
	ParamName
	// ParamComputedAccess marks use of a collection access operator.
	ParamComputedAccess
)

func (t ParameterType) String() string {
	switch t {
	case ParamNone:
		return "None"
	case ParamType:
		return "Type"
	case ParamConst:
		return "Const"
	case ParamPointer:
		return "Pointer"
	case ParamDereference:
		return "Dereference"
	case ParamValueAt:
		return "ValueAt"
	case ParamRangeIdentifier:
		return "RangeIdentifier"
	case ParamErrorCallback:
		return "ErrorCallback"
	case ParamErrorVarName:
		return "ErrorVarName"
	case ParamName:
		return "Name"
	case ParamComputedAccess:
		return "ComputedAccess"
	default:
		return fmt.Sprintf("ParameterType(%d)", int(t))
	}
}

// parameterTypeCount is the number of declared parameter roles, for
// exhaustive tests over the enumeration.
const parameterTypeCount = int(ParamComputedAccess) + 1

var parameterTypesByName = func() map[string]ParameterType {
	m := make(map[string]ParameterType, parameterTypeCount)
	for i := 0; i < parameterTypeCount; i++ {
		t := ParameterType(i)
		m[t.String()] = t
	}
	return m
}()

// ParameterTypeByName looks up a parameter role by the name String
// returns for it. If name does not name a role, it returns false.
func ParameterTypeByName(name string) (ParameterType, bool) {
	t, ok := parameterTypesByName[name]
	return t, ok
}

// Parameter annotates a Node with information complementary to its
// children, such as modifiers and names. A Parameter has a role and an
// optional literal value; whether a value is present depends on the
// role and the construct, so absence is not an error at this level.
type Parameter struct {
	Type ParameterType
	Val  Value
}

// NewParameter returns a valueless Parameter with the given role.
func NewParameter(t ParameterType) Parameter {
	return Parameter{Type: t}
}

// NewValueParameter returns a Parameter with the given role and value.
func NewValueParameter(t ParameterType, v Value) Parameter {
	return Parameter{Type: t, Val: v}
}

// GetStringVal returns the parameter's value as text. It returns an
// error wrapping ErrWrongValueKind if the value is absent or not text;
// meta locates the owning node in the failure message.
func (p Parameter) GetStringVal(meta Metadata) (string, error) {
	s, ok := p.Val.AsString()
	if !ok {
		return "", fmt.Errorf("%s: %s parameter holds %s, not string: %w", meta, p.Type, p.Val.Kind(), ErrWrongValueKind)
	}
	return s, nil
}

// String renders the parameter as "Role" or "Role: value" for display
// in diagnostics and tree dumps.
func (p Parameter) String() string {
	if p.Val.IsAbsent() {
		return p.Type.String()
	}
	return fmt.Sprintf("%s: %s", p.Type, p.Val)
}

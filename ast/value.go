package ast

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind identifies which variant a Value holds.
type ValueKind int

const (
	// ValueUnknown is the kind of the zero Value, which represents the
	// absence of a literal value.
	ValueUnknown ValueKind = iota
	// ValueString is a string of text.
	ValueString
	// ValueInt is a signed integer.
	ValueInt
	// ValueUint is an unsigned integer.
	ValueUint
	// ValueFloat is a floating-point number.
	ValueFloat
	// ValueBool is a boolean.
	ValueBool
)

func (k ValueKind) String() string {
	switch k {
	case ValueUnknown:
		return "unknown"
	case ValueString:
		return "string"
	case ValueInt:
		return "int"
	case ValueUint:
		return "uint"
	case ValueFloat:
		return "float"
	case ValueBool:
		return "bool"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is the literal payload a node may carry, such as the text of an
// identifier or the number in an integer literal. It is a tagged union
// over the closed set of kinds above. The zero Value is the absent
// value: most node types carry none.
//
// Values are created with the *Value factory functions and read back
// with the As* accessors, which report whether the requested variant is
// the one present.
type Value struct {
	kind ValueKind
	str  string
	i    int64
	u    uint64
	f    float64
	b    bool
}

// StringValue returns a Value holding the given text.
func StringValue(s string) Value {
	return Value{kind: ValueString, str: s}
}

// IntValue returns a Value holding the given signed integer.
func IntValue(i int64) Value {
	return Value{kind: ValueInt, i: i}
}

// UintValue returns a Value holding the given unsigned integer.
func UintValue(u uint64) Value {
	return Value{kind: ValueUint, u: u}
}

// FloatValue returns a Value holding the given floating-point number.
func FloatValue(f float64) Value {
	return Value{kind: ValueFloat, f: f}
}

// BoolValue returns a Value holding the given boolean.
func BoolValue(b bool) Value {
	return Value{kind: ValueBool, b: b}
}

// Kind returns which variant v holds. It returns ValueUnknown for the
// zero Value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsAbsent reports whether v is the zero Value, i.e. holds nothing.
func (v Value) IsAbsent() bool {
	return v.kind == ValueUnknown
}

// AsString returns v's text, or false if v does not hold text.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == ValueString
}

// AsInt returns v's signed integer, or false if v does not hold one.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == ValueInt
}

// AsUint returns v's unsigned integer, or false if v does not hold one.
func (v Value) AsUint() (uint64, bool) {
	return v.u, v.kind == ValueUint
}

// AsFloat returns v's floating-point number, or false if v does not
// hold one.
func (v Value) AsFloat() (float64, bool) {
	return v.f, v.kind == ValueFloat
}

// AsBool returns v's boolean, or false if v does not hold one.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == ValueBool
}

// String renders v for display in diagnostics and tree dumps. Text is
// rendered verbatim, numbers in decimal, and booleans as "True" or
// "False". The zero Value renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case ValueString:
		return v.str
	case ValueInt:
		return strconv.FormatInt(v.i, 10)
	case ValueUint:
		return strconv.FormatUint(v.u, 10)
	case ValueFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case ValueBool:
		if v.b {
			return "True"
		}
		return "False"
	default:
		return ""
	}
}

// MarshalJSON renders v as the native JSON scalar of the variant it
// holds: a JSON string, number, or boolean. The zero Value marshals as
// null, though marshalers of enclosing types omit absent values
// entirely.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValueString:
		return json.Marshal(v.str)
	case ValueInt:
		return json.Marshal(v.i)
	case ValueUint:
		return json.Marshal(v.u)
	case ValueFloat:
		return json.Marshal(v.f)
	case ValueBool:
		return json.Marshal(v.b)
	default:
		return []byte("null"), nil
	}
}

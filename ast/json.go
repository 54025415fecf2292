package ast

import "encoding/json"

// The JSON form of a tree is a write-only projection for debugging and
// external tooling: node type names as strings, positions in
// "file:line:col" form, and absent data omitted rather than rendered
// as zero values. Nothing in this module reads the form back, and it
// is not a stable wire protocol.

// MarshalJSON renders the parameter as {"type", "value"}, omitting
// "value" when absent.
func (p Parameter) MarshalJSON() ([]byte, error) {
	var val *Value
	if !p.Val.IsAbsent() {
		val = &p.Val
	}
	return json.Marshal(struct {
		Type  string `json:"type"`
		Value *Value `json:"value,omitempty"`
	}{
		Type:  p.Type.String(),
		Value: val,
	})
}

// MarshalJSON renders the node as {"type", "pos", "params", "value",
// "children"}, with children recursively rendered in child order.
// Everything but "type" is omitted when absent or empty.
func (n *Node) MarshalJSON() ([]byte, error) {
	var val *Value
	if !n.Val.IsAbsent() {
		val = &n.Val
	}
	return json.Marshal(struct {
		Type     string      `json:"type"`
		Pos      string      `json:"pos,omitempty"`
		Params   []Parameter `json:"params,omitempty"`
		Value    *Value      `json:"value,omitempty"`
		Children []*Node     `json:"children,omitempty"`
	}{
		Type:     n.Type.String(),
		Pos:      n.Meta.Pos.String(),
		Params:   n.Params,
		Value:    val,
		Children: n.Children,
	})
}

// MarshalJSON renders the import as {"module", "alias"}, omitting
// "alias" when the import is not aliased.
func (i Import) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Module string `json:"module"`
		Alias  string `json:"alias,omitempty"`
	}{
		Module: i.Module,
		Alias:  i.Alias,
	})
}

// MarshalJSON renders the file as {"file", "module", "imports",
// "statements"}, omitting empty import and statement lists.
func (f *File) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		File       string   `json:"file"`
		Module     string   `json:"module"`
		Imports    []Import `json:"imports,omitempty"`
		Statements []*Node  `json:"statements,omitempty"`
	}{
		File:       f.Name(),
		Module:     f.Module,
		Imports:    f.Imports,
		Statements: f.Statements,
	})
}

// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package asttest provides helpers for tests that need syntax trees
// without running a parser: trees are described in YAML fixtures and
// decoded into the real ast types through the package's public
// constructors.
//
// A file fixture looks like:
//
//	module: main
//	imports:
//	  - module: io
//	    alias: stdio
//	statements:
//	  - type: FunctionDeclaration
//	    params:
//	      - type: Name
//	        value: main
//	    children:
//	      - type: FunctionBody
//
// Node and parameter types are named as their String forms. Values are
// plain YAML scalars and map to the value kind YAML infers; integers
// too large for int64 become unsigned. Fixture nodes carry no source
// positions, so position fields stay out of golden outputs.
package asttest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/tinylang/tinycompile/ast"
)

type fileDoc struct {
	Module     string      `yaml:"module"`
	Imports    []importDoc `yaml:"imports"`
	Statements []nodeDoc   `yaml:"statements"`
}

type importDoc struct {
	Module string `yaml:"module"`
	Alias  string `yaml:"alias"`
}

type nodeDoc struct {
	Type     string     `yaml:"type"`
	Params   []paramDoc `yaml:"params"`
	Value    *yaml.Node `yaml:"value"`
	Children []nodeDoc  `yaml:"children"`
}

type paramDoc struct {
	Type  string     `yaml:"type"`
	Value *yaml.Node `yaml:"value"`
}

// UnmarshalFile decodes a YAML file fixture into a tree rooted at an
// *ast.File named filename. Unknown fields, type names, and value
// kinds are errors.
func UnmarshalFile(filename string, data []byte) (*ast.File, error) {
	var doc fileDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("asttest: decoding %s: %w", filename, err)
	}

	imports := make([]ast.Import, len(doc.Imports))
	for i, imp := range doc.Imports {
		if imp.Alias == "" {
			imports[i] = ast.NewImport(imp.Module)
		} else {
			imports[i] = ast.NewAliasedImport(imp.Module, imp.Alias)
		}
	}

	statements := make([]*ast.Node, len(doc.Statements))
	for i, nd := range doc.Statements {
		n, err := buildNode(nd)
		if err != nil {
			return nil, fmt.Errorf("asttest: decoding %s: %w", filename, err)
		}
		statements[i] = n
	}

	return ast.NewFile(ast.NewFileInfo(filename, nil), doc.Module, imports, statements), nil
}

// UnmarshalNode decodes a YAML node fixture into a single tree.
func UnmarshalNode(data []byte) (*ast.Node, error) {
	var doc nodeDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("asttest: decoding node: %w", err)
	}
	return buildNode(doc)
}

func buildNode(doc nodeDoc) (*ast.Node, error) {
	t, ok := ast.NodeTypeByName(doc.Type)
	if !ok {
		return nil, fmt.Errorf("unknown node type %q", doc.Type)
	}

	meta := ast.UnknownMetadata("")
	var n *ast.Node
	if doc.Value != nil {
		v, err := buildValue(doc.Value)
		if err != nil {
			return nil, fmt.Errorf("%s node: %w", doc.Type, err)
		}
		n = ast.NewValueNode(meta, t, v)
	} else {
		n = ast.NewNode(meta, t)
	}

	for _, pd := range doc.Params {
		pt, ok := ast.ParameterTypeByName(pd.Type)
		if !ok {
			return nil, fmt.Errorf("%s node: unknown parameter type %q", doc.Type, pd.Type)
		}
		if pd.Value == nil {
			n.AddParam(ast.NewParameter(pt))
			continue
		}
		v, err := buildValue(pd.Value)
		if err != nil {
			return nil, fmt.Errorf("%s node, %s parameter: %w", doc.Type, pd.Type, err)
		}
		n.AddParam(ast.NewValueParameter(pt, v))
	}

	for _, cd := range doc.Children {
		child, err := buildNode(cd)
		if err != nil {
			return nil, err
		}
		n.AddChildren(child)
	}

	return n, nil
}

func buildValue(node *yaml.Node) (ast.Value, error) {
	var v any
	if err := node.Decode(&v); err != nil {
		return ast.Value{}, err
	}
	switch x := v.(type) {
	case string:
		return ast.StringValue(x), nil
	case int:
		return ast.IntValue(int64(x)), nil
	case int64:
		return ast.IntValue(x), nil
	case uint64:
		return ast.UintValue(x), nil
	case float64:
		return ast.FloatValue(x), nil
	case bool:
		return ast.BoolValue(x), nil
	default:
		return ast.Value{}, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}

// MarshalJSON renders v as indented JSON with a trailing newline, the
// same form ast.File.WriteJSON produces, for use in golden outputs.
func MarshalJSON(v any) (string, error) {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// DiffJSON compares the JSON forms of want and got structurally,
// ignoring formatting. It returns an empty string if they are
// equivalent and a human-readable diff otherwise.
func DiffJSON(want, got any) (string, error) {
	w, err := jsonValue(want)
	if err != nil {
		return "", fmt.Errorf("asttest: marshaling want: %w", err)
	}
	g, err := jsonValue(got)
	if err != nil {
		return "", fmt.Errorf("asttest: marshaling got: %w", err)
	}
	return cmp.Diff(w, g), nil
}

func jsonValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

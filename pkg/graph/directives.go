// Copyright 2026 The graphql-codegen Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package graph

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cadbuildr/graphql-codegen/pkg/schema"
)

// ErrInvalidDirective is returned when a recognized directive carries
// malformed arguments (empty function name, non-JSON expand payload, ...).
var ErrInvalidDirective = errors.New("invalid directive")

// resolveDirectives converts the raw directive usages of one declaration
// into typed metadata on the already-registered node, enforces the
// single-entry rule per field and marks the node computable/expandable.
//
// Existence of referenced function names is deliberately not checked here:
// registration may legitimately happen after generation but before first
// use, so a missing function surfaces at first dispatch.
func resolveDirectives(node *TypeNode, decl schema.Declaration) error {
	for _, d := range decl.Directives {
		switch d.Name {
		case schema.DirectiveExpand:
			if node.Expand != nil {
				return buildErrf(node.Name, "", d.Pos, ErrConflictingDirective, "type carries @expand twice")
			}
			md, err := resolveExpand(node.Name, "", d)
			if err != nil {
				return err
			}
			node.Expand = md
			node.Expandable = true
		case schema.DirectiveStaticMethod:
			name, _ := d.Args["name"].(string)
			expr, _ := d.Args["expr"].(string)
			if name == "" || expr == "" {
				return buildErrf(node.Name, "", d.Pos, ErrInvalidDirective,
					"@static_method requires non-empty name and expr")
			}
			node.StaticMethods = append(node.StaticMethods, StaticMethod{Name: name, Expr: expr})
			node.Computable = true
		case schema.DirectiveCompute, schema.DirectiveDefault, schema.DirectiveMethod:
			// Field directives placed on the type itself.
			return buildErrf(node.Name, "", d.Pos, ErrInvalidDirective,
				"@%s applies to fields, not types", d.Name)
		}
	}

	for i, f := range decl.Fields {
		md, err := resolveFieldDirectives(node.Name, f)
		if err != nil {
			return err
		}
		if md == nil {
			continue
		}
		node.Fields[i].Metadata = md
		switch md.Kind {
		case DirectiveCompute, DirectiveDefault, DirectiveMethod:
			node.Computable = true
		case DirectiveExpand:
			node.Expandable = true
		}
	}
	return nil
}

// resolveFieldDirectives returns the single metadata entry for a field, or
// nil. More than one of {compute, expand, default, method} is a conflict.
func resolveFieldDirectives(typeName string, f schema.Field) (*DirectiveMetadata, error) {
	var md *DirectiveMetadata
	for _, d := range f.Directives {
		var resolved *DirectiveMetadata
		var err error

		switch d.Name {
		case schema.DirectiveCompute:
			fn, _ := d.Args["fn"].(string)
			if fn == "" {
				return nil, buildErrf(typeName, f.Name, d.Pos, ErrInvalidDirective,
					"@compute requires a non-empty fn")
			}
			resolved = &DirectiveMetadata{Kind: DirectiveCompute, FnName: fn, Raw: d.Args}
		case schema.DirectiveExpand:
			resolved, err = resolveExpand(typeName, f.Name, d)
			if err != nil {
				return nil, err
			}
		case schema.DirectiveDefault:
			resolved, err = exprDirective(typeName, f.Name, d, DirectiveDefault)
			if err != nil {
				return nil, err
			}
		case schema.DirectiveMethod:
			resolved, err = exprDirective(typeName, f.Name, d, DirectiveMethod)
			if err != nil {
				return nil, err
			}
		case schema.DirectiveStaticMethod:
			return nil, buildErrf(typeName, f.Name, d.Pos, ErrInvalidDirective,
				"@static_method applies to types, not fields")
		default:
			// Directives outside this generator's vocabulary are someone
			// else's concern.
			continue
		}

		if md != nil {
			return nil, buildErrf(typeName, f.Name, d.Pos, ErrConflictingDirective,
				"@%s conflicts with @%s", d.Name, md.Kind)
		}
		md = resolved
	}
	return md, nil
}

func exprDirective(typeName, field string, d schema.Directive, kind DirectiveKind) (*DirectiveMetadata, error) {
	expr, _ := d.Args["expr"].(string)
	if expr == "" {
		return nil, buildErrf(typeName, field, d.Pos, ErrInvalidDirective,
			"@%s requires a non-empty expr", d.Name)
	}
	return &DirectiveMetadata{Kind: kind, Expr: expr, Raw: d.Args}, nil
}

// resolveExpand parses the @expand(into:) JSON payload. A top-level object
// with exactly the single key "fn" (string) selects custom dispatch; any
// other tree is stored generically.
func resolveExpand(typeName, field string, d schema.Directive) (*DirectiveMetadata, error) {
	raw, _ := d.Args["into"].(string)
	if raw == "" {
		return nil, buildErrf(typeName, field, d.Pos, ErrInvalidDirective,
			"@expand requires a non-empty into payload")
	}

	var tree any
	if err := json.Unmarshal([]byte(raw), &tree); err != nil {
		return nil, buildErr(typeName, field, d.Pos,
			fmt.Errorf("%w: @expand payload is not valid JSON: %v", ErrInvalidDirective, err))
	}

	tmpl := &TemplateNode{Generic: tree}
	if obj, ok := tree.(map[string]any); ok && len(obj) == 1 {
		if fn, ok := obj["fn"].(string); ok {
			tmpl = &TemplateNode{FnName: fn}
		}
	}
	return &DirectiveMetadata{Kind: DirectiveExpand, Template: tmpl, Raw: d.Args}, nil
}

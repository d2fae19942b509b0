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
	"github.com/cadbuildr/graphql-codegen/pkg/schema"
)

// builtinScalars are always present in a graph, whether or not the document
// declares them.
var builtinScalars = []string{"String", "Int", "Float", "Boolean", "ID"}

// IsBuiltinScalar reports whether name is one of the built-in scalar types.
func IsBuiltinScalar(name string) bool {
	for _, s := range builtinScalars {
		if s == name {
			return true
		}
	}
	return false
}

// Build resolves a schema document into a validated TypeGraph.
//
//  1. First pass: register every declared type name with its variant,
//     without resolving field references.
//  2. Second pass: resolve every field's TypeRef against the registry.
//  3. Validate unions, interface restatement and name collisions.
//  4. Resolve directive arguments into typed metadata and mark
//     computable/expandable types.
func Build(doc *schema.Document) (*TypeGraph, error) {
	g := &TypeGraph{types: map[string]*TypeNode{}}

	for _, s := range builtinScalars {
		g.register(&TypeNode{Kind: KindScalar, Name: s})
	}

	// First pass: names and variants only, so forward references and
	// cycles resolve in the second pass.
	for _, decl := range doc.Declarations {
		node, err := newNode(decl)
		if err != nil {
			return nil, err
		}
		if _, dup := g.types[node.Name]; dup {
			return nil, buildErrf(node.Name, "", node.Pos, ErrDuplicateDeclaration, "type %q declared twice", node.Name)
		}
		g.register(node)
	}

	// Second pass: every referenced name must now be known.
	for _, name := range g.order {
		node := g.types[name]
		for _, f := range node.Fields {
			if _, ok := g.types[f.Type.Leaf()]; !ok {
				return nil, buildErrf(node.Name, f.Name, f.Pos, ErrUnknownType, "%q", f.Type.Leaf())
			}
		}
	}

	if err := validate(g); err != nil {
		return nil, err
	}

	for _, decl := range doc.Declarations {
		if err := resolveDirectives(g.types[decl.Name], decl); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func (g *TypeGraph) register(n *TypeNode) {
	n.order = len(g.order)
	g.types[n.Name] = n
	g.order = append(g.order, n.Name)
}

// newNode converts a declaration to its node, checking field-name
// uniqueness. Directive resolution happens later, once types exist.
func newNode(decl schema.Declaration) (*TypeNode, error) {
	node := &TypeNode{
		Name:       decl.Name,
		Interfaces: decl.Interfaces,
		Members:    decl.Members,
		EnumValues: decl.EnumValues,
		Pos:        decl.Pos,
	}

	switch decl.Kind {
	case schema.KindScalar:
		node.Kind = KindScalar
	case schema.KindEnum:
		node.Kind = KindEnum
	case schema.KindObject:
		node.Kind = KindObject
	case schema.KindInterface:
		node.Kind = KindInterface
	case schema.KindUnion:
		node.Kind = KindUnion
	}

	seen := map[string]struct{}{}
	for _, f := range decl.Fields {
		if _, dup := seen[f.Name]; dup {
			return nil, buildErrf(decl.Name, f.Name, f.Pos, ErrDuplicateDeclaration, "field %q declared twice", f.Name)
		}
		seen[f.Name] = struct{}{}
		node.Fields = append(node.Fields, &FieldDef{
			Name: f.Name,
			Type: toTypeRef(f.Type),
			Pos:  f.Pos,
		})
	}
	return node, nil
}

func toTypeRef(t schema.TypeExpr) TypeRef {
	if t.Elem != nil {
		elem := toTypeRef(*t.Elem)
		return TypeRef{Elem: &elem, NonNull: t.NonNull}
	}
	return TypeRef{Name: t.Name, NonNull: t.NonNull}
}

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
	"k8s.io/apimachinery/pkg/util/sets"
)

// validate runs the cross-reference checks that need the full registry:
// union membership and interface restatement. Duplicate names are caught
// during registration.
func validate(g *TypeGraph) error {
	for _, name := range g.order {
		node := g.types[name]
		switch node.Kind {
		case KindUnion:
			if err := validateUnion(g, node); err != nil {
				return err
			}
		case KindObject, KindInterface:
			if err := validateInterfaces(g, node); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateUnion checks that every member resolves to an object type.
func validateUnion(g *TypeGraph, union *TypeNode) error {
	seen := sets.New[string]()
	for _, m := range union.Members {
		member, ok := g.types[m]
		if !ok {
			return buildErrf(union.Name, "", union.Pos, ErrUnknownType, "union member %q", m)
		}
		if member.Kind != KindObject {
			return buildErrf(union.Name, "", union.Pos, ErrInvalidUnionMember,
				"member %q is a %s, not an Object", m, member.Kind)
		}
		if seen.Has(m) {
			return buildErrf(union.Name, "", union.Pos, ErrDuplicateDeclaration, "union member %q listed twice", m)
		}
		seen.Insert(m)
	}
	return nil
}

// validateInterfaces checks the restatement contract: every field required
// by a declared interface must be restated in the implementer with an
// identical TypeRef. The schema format requires explicit restatement; there
// is no field inheritance at the data level.
func validateInterfaces(g *TypeGraph, node *TypeNode) error {
	declared := sets.New[string]()
	for _, f := range node.Fields {
		declared.Insert(f.Name)
	}

	for _, ifaceName := range node.Interfaces {
		iface, ok := g.types[ifaceName]
		if !ok {
			return buildErrf(node.Name, "", node.Pos, ErrUnknownType, "interface %q", ifaceName)
		}
		if iface.Kind != KindInterface {
			return buildErrf(node.Name, "", node.Pos, ErrInterfaceFieldMismatch,
				"%q is a %s, not an Interface", ifaceName, iface.Kind)
		}
		for _, required := range iface.Fields {
			if !declared.Has(required.Name) {
				return buildErrf(node.Name, required.Name, node.Pos, ErrInterfaceFieldMismatch,
					"field required by interface %q is not restated", ifaceName)
			}
			own := node.Field(required.Name)
			if !own.Type.Equal(required.Type) {
				return buildErrf(node.Name, required.Name, own.Pos, ErrInterfaceFieldMismatch,
					"declared as %s, interface %q requires %s", own.Type, ifaceName, required.Type)
			}
		}
	}
	return nil
}

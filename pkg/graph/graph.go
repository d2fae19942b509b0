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

// Package graph builds a validated, cross-referenced TypeGraph from a parsed
// schema document and resolves directive arguments into typed metadata.
//
// The build runs in two passes: the first registers every declared type name
// (so forward references and cycles resolve), the second resolves field type
// references and validates unions, interface restatement and directive
// conflicts. The builder aborts on the first fatal error; no partial graph
// is exposed.
package graph

// TypeGraph owns all TypeNodes produced from one schema document. It is
// built once, immutable after validation succeeds, and safe for unlimited
// concurrent read-only access.
type TypeGraph struct {
	types map[string]*TypeNode
	order []string
}

// Type returns the named type node, or false if the graph does not know it.
func (g *TypeGraph) Type(name string) (*TypeNode, bool) {
	n, ok := g.types[name]
	return n, ok
}

// Types returns all type nodes in declaration order. Built-in scalars come
// first, in a fixed order, followed by declared types in document order.
// The returned slice is a copy; the nodes themselves must not be mutated.
func (g *TypeGraph) Types() []*TypeNode {
	out := make([]*TypeNode, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.types[name])
	}
	return out
}

// Len returns the number of types in the graph.
func (g *TypeGraph) Len() int { return len(g.order) }

// Implementers returns the object and interface types declaring the named
// interface, in declaration order.
func (g *TypeGraph) Implementers(iface string) []*TypeNode {
	var out []*TypeNode
	for _, name := range g.order {
		n := g.types[name]
		for _, i := range n.Interfaces {
			if i == iface {
				out = append(out, n)
				break
			}
		}
	}
	return out
}

// UnionMembers resolves a union's member names to their object nodes, in
// member declaration order. The graph is validated, so lookups cannot miss.
func (g *TypeGraph) UnionMembers(union *TypeNode) []*TypeNode {
	out := make([]*TypeNode, 0, len(union.Members))
	for _, m := range union.Members {
		out = append(out, g.types[m])
	}
	return out
}

// ConcreteCandidates returns the admissible concrete types for a target
// node: the node itself for objects, the members for unions, and the known
// object implementers for interfaces. Order is the declaration order that
// the expansion tie-break relies on.
func (g *TypeGraph) ConcreteCandidates(target *TypeNode) []*TypeNode {
	switch target.Kind {
	case KindObject:
		return []*TypeNode{target}
	case KindUnion:
		return g.UnionMembers(target)
	case KindInterface:
		var out []*TypeNode
		for _, n := range g.Implementers(target.Name) {
			if n.Kind == KindObject {
				out = append(out, n)
			}
		}
		return out
	default:
		return nil
	}
}

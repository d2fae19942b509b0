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

package schema

// Position locates a declaration in the schema source for error reporting.
type Position struct {
	Line   int
	Column int
}

// Kind identifies the variant of a schema declaration.
type Kind string

const (
	// KindScalar is a scalar type declaration.
	KindScalar Kind = "scalar"
	// KindEnum is an enum type declaration.
	KindEnum Kind = "enum"
	// KindObject is an object type declaration.
	KindObject Kind = "object"
	// KindInterface is an interface type declaration.
	KindInterface Kind = "interface"
	// KindUnion is a union type declaration.
	KindUnion Kind = "union"
)

// TypeExpr is the syntactic form of a field type reference.
// A TypeExpr is either a named reference (Name set, Elem nil) or a list
// (Elem set, Name empty). NonNull applies to the outermost wrapper, so
// wrapper flags compose: [Fruit!]! is Elem={Name:Fruit,NonNull:true},
// NonNull=true.
type TypeExpr struct {
	Name    string
	Elem    *TypeExpr
	NonNull bool
}

// IsList reports whether the expression is a list wrapper.
func (t TypeExpr) IsList() bool { return t.Elem != nil }

// Directive is a directive usage with its raw argument values.
// Argument values are JSON-like: string, int64, float64, bool, nil,
// []any and map[string]any.
type Directive struct {
	Name string
	Args map[string]any
	Pos  Position
}

// Field is a single field declaration on an object or interface.
type Field struct {
	Name       string
	Type       TypeExpr
	Directives []Directive
	Pos        Position
}

// Declaration is one type declaration from the schema document.
type Declaration struct {
	Kind       Kind
	Name       string
	Fields     []Field  // object, interface
	Interfaces []string // object, interface: names of implemented interfaces
	Members    []string // union: member type names, declaration order
	EnumValues []string // enum
	Directives []Directive
	Pos        Position
}

// Document is the parsed schema: an ordered sequence of declarations.
// Declaration order is preserved from the source text; it drives code
// emission order and the earliest-declared tie-break during expansion.
type Document struct {
	Declarations []Declaration
}

// Directive names understood by the metadata resolver.
const (
	DirectiveCompute      = "compute"
	DirectiveExpand       = "expand"
	DirectiveDefault      = "default"
	DirectiveMethod       = "method"
	DirectiveStaticMethod = "static_method"
)

// operational root types and input types are parsed but not emitted.
var operationalRoots = map[string]struct{}{
	"Query":        {},
	"Mutation":     {},
	"Subscription": {},
}

// IsOperationalRoot reports whether name is one of the GraphQL operation
// root types (Query, Mutation, Subscription).
func IsOperationalRoot(name string) bool {
	_, ok := operationalRoots[name]
	return ok
}

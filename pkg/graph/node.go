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
	"strings"

	"github.com/cadbuildr/graphql-codegen/pkg/schema"
)

// TypeKind identifies the variant of a TypeNode.
type TypeKind int

const (
	// KindScalar is a scalar type (built-in or declared).
	KindScalar TypeKind = iota
	// KindEnum is an enum type.
	KindEnum
	// KindObject is a concrete object type.
	KindObject
	// KindInterface is an interface type.
	KindInterface
	// KindUnion is a union type.
	KindUnion
)

// String returns a human-readable name for the type kind.
func (k TypeKind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindEnum:
		return "Enum"
	case KindObject:
		return "Object"
	case KindInterface:
		return "Interface"
	case KindUnion:
		return "Union"
	default:
		return "Unknown"
	}
}

// TypeRef is a resolved reference to a named type plus wrapper flags.
// A TypeRef is either a named reference (Name set) or a list (Elem set).
// Wrapper flags compose: a list of non-null T is distinct from a nullable
// list of nullable T.
type TypeRef struct {
	Name    string
	Elem    *TypeRef
	NonNull bool
}

// IsList reports whether the reference is a list wrapper.
func (r TypeRef) IsList() bool { return r.Elem != nil }

// Leaf returns the innermost named type of the reference.
func (r TypeRef) Leaf() string {
	cur := &r
	for cur.Elem != nil {
		cur = cur.Elem
	}
	return cur.Name
}

// Equal reports structural equality, including wrapper flags at every level.
func (r TypeRef) Equal(o TypeRef) bool {
	if r.NonNull != o.NonNull || r.Name != o.Name || (r.Elem == nil) != (o.Elem == nil) {
		return false
	}
	if r.Elem != nil {
		return r.Elem.Equal(*o.Elem)
	}
	return true
}

// String renders the reference in GraphQL syntax, e.g. "[Fruit!]!".
func (r TypeRef) String() string {
	var b strings.Builder
	if r.Elem != nil {
		b.WriteByte('[')
		b.WriteString(r.Elem.String())
		b.WriteByte(']')
	} else {
		b.WriteString(r.Name)
	}
	if r.NonNull {
		b.WriteByte('!')
	}
	return b.String()
}

// DirectiveKind identifies the variant of a DirectiveMetadata entry.
type DirectiveKind int

const (
	// DirectiveCompute marks a field whose value is always produced by a
	// registered function.
	DirectiveCompute DirectiveKind = iota
	// DirectiveExpand marks a field (or type) carrying an expansion template.
	DirectiveExpand
	// DirectiveDefault marks a field with a lazily evaluated default expression.
	DirectiveDefault
	// DirectiveMethod exposes an expression as an instance method.
	DirectiveMethod
)

// String returns the schema-level directive name.
func (k DirectiveKind) String() string {
	switch k {
	case DirectiveCompute:
		return "compute"
	case DirectiveExpand:
		return "expand"
	case DirectiveDefault:
		return "default"
	case DirectiveMethod:
		return "method"
	default:
		return "unknown"
	}
}

// TemplateNode is the payload of an @expand directive: either a custom
// registered-function reference or a generic JSON-like template tree.
type TemplateNode struct {
	// FnName is set for Custom templates ({"fn": "name"}).
	FnName string
	// Generic holds the JSON tree for generic templates; nil when FnName
	// is set.
	Generic any
}

// IsCustom reports whether the template dispatches to a registered function.
func (t TemplateNode) IsCustom() bool { return t.FnName != "" }

// DirectiveMetadata is the typed form of a resolved directive.
// Only the payload fields relevant to Kind are populated.
type DirectiveMetadata struct {
	Kind DirectiveKind
	// FnName is the registered function name for Compute.
	FnName string
	// Template is the expansion template for Expand.
	Template *TemplateNode
	// Expr is the raw expression string for Default and Method; compilation
	// is deferred to first use.
	Expr string
	// Raw preserves the original directive arguments for registered-function
	// dispatch.
	Raw map[string]any
}

// StaticMethod is a type-level @static_method directive: an expression
// exposed as a callable that receives no instance.
type StaticMethod struct {
	Name string
	Expr string
}

// FieldDef is a single field of an object or interface type.
type FieldDef struct {
	Name string
	Type TypeRef
	// Metadata is the field's directive metadata, if any. A field carries
	// at most one entry.
	Metadata *DirectiveMetadata
	Pos      schema.Position
}

// IsComputed reports whether the field carries @compute metadata.
func (f *FieldDef) IsComputed() bool {
	return f.Metadata != nil && f.Metadata.Kind == DirectiveCompute
}

// IsMethod reports whether the field is exposed as a method rather than data.
func (f *FieldDef) IsMethod() bool {
	return f.Metadata != nil && f.Metadata.Kind == DirectiveMethod
}

// HasDefault reports whether the field carries @default metadata.
func (f *FieldDef) HasDefault() bool {
	return f.Metadata != nil && f.Metadata.Kind == DirectiveDefault
}

// TypeNode is one named type in the TypeGraph. Identity is the declared
// name; names are unique within a graph. Field order is preserved from the
// declaration (significant for emission, not for semantics).
type TypeNode struct {
	Kind TypeKind
	Name string

	// Fields is set for Object and Interface variants.
	Fields []*FieldDef
	// Interfaces lists the interfaces this Object/Interface declares.
	Interfaces []string
	// Members lists the union member type names in declaration order.
	Members []string
	// EnumValues lists enum values in declaration order.
	EnumValues []string

	// Expand is the type-level @expand metadata, if any.
	Expand *DirectiveMetadata
	// StaticMethods holds type-level @static_method declarations.
	StaticMethods []StaticMethod

	// Computable marks types with Compute, Default or Method metadata on
	// any field, or any static method. Expandable marks types carrying
	// Expand metadata on the type or any field. These determine which
	// runtime dispatch paths are valid for the type.
	Computable bool
	Expandable bool

	Pos schema.Position

	// order is the declaration index within the graph; it drives the
	// earliest-declared tie-break during expansion.
	order int
}

// Field returns the named field, or nil if the type does not declare it.
func (n *TypeNode) Field(name string) *FieldDef {
	for _, f := range n.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// HasEnumValue reports whether v is a declared value of this enum.
func (n *TypeNode) HasEnumValue(v string) bool {
	for _, ev := range n.EnumValues {
		if ev == v {
			return true
		}
	}
	return false
}

// RequiredFields returns the names of data fields that must be supplied
// when an instance is materialized: non-null fields without directive
// metadata. Computed, defaulted and method fields are never required.
func (n *TypeNode) RequiredFields() []string {
	var out []string
	for _, f := range n.Fields {
		if !f.Type.NonNull || f.Metadata != nil {
			continue
		}
		out = append(out, f.Name)
	}
	return out
}

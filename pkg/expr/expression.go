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

// Package expr compiles the expression mini-language used by @compute,
// @method, @static_method and @default metadata and by template variable
// substitution.
//
// An expression is one of:
//
//   - a path expression: dot-separated segments, each an identifier with an
//     optional variant filter "[is TypeName]" applied to sequence values;
//   - a numeric or quoted string literal;
//   - a general fallback expression, evaluated by CEL against a restricted
//     environment containing only whitelisted bindings.
//
// Compilation happens once per distinct expression string; the resulting
// Expression is immutable and safe for concurrent evaluation.
package expr

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Scope is what an expression evaluates against: an instance (for compute,
// methods and path expressions) or a global namespace (for static methods
// and defaults evaluated without an instance).
type Scope interface {
	// ResolveName resolves the leading identifier of a path expression.
	// A failed lookup wraps ErrUnknownField.
	ResolveName(name string) (any, error)
	// Bindings returns the variable bindings handed to fallback
	// expressions. Only names whitelisted in the environment are visible.
	Bindings() map[string]any
}

// GlobalScope is a Scope backed by a plain name→value map.
type GlobalScope map[string]any

// ResolveName implements Scope.
func (s GlobalScope) ResolveName(name string) (any, error) {
	v, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not bound in the global scope", ErrUnknownField, name)
	}
	return v, nil
}

// Bindings implements Scope.
func (s GlobalScope) Bindings() map[string]any { return s }

// FieldGetter is implemented by values that expose named fields to path
// evaluation. Lookup of a computed field triggers its compute dispatch.
type FieldGetter interface {
	GetField(name string) (any, error)
}

// Variant is implemented by values with a runtime type name, used by
// "[is TypeName]" filters.
type Variant interface {
	VariantName() string
}

type exprKind int

const (
	kindLiteral exprKind = iota
	kindPath
	kindFallback
)

// Segment is one step of a compiled path expression.
type Segment struct {
	Name string
	// Filter is the variant filter type name, or "" when absent.
	Filter string
}

// Expression is a compiled expression. It is immutable after compilation
// and holds no references into any TypeGraph: names resolve dynamically
// against the scope at evaluation time.
type Expression struct {
	// Original is the raw expression string, preserved for error messages.
	Original string

	kind    exprKind
	literal any
	path    []Segment
	program cel.Program
}

// IsPath reports whether the expression compiled as a path expression.
func (e *Expression) IsPath() bool { return e.kind == kindPath }

// Eval evaluates the expression against the scope.
func (e *Expression) Eval(scope Scope) (any, error) {
	switch e.kind {
	case kindLiteral:
		return e.literal, nil
	case kindPath:
		return e.evalPath(scope)
	default:
		return e.evalFallback(scope)
	}
}

func (e *Expression) evalPath(scope Scope) (any, error) {
	cur, err := scope.ResolveName(e.path[0].Name)
	if err != nil {
		return nil, err
	}
	if cur, err = applyFilter(cur, e.path[0]); err != nil {
		return nil, err
	}

	for _, seg := range e.path[1:] {
		if cur, err = getField(cur, seg.Name); err != nil {
			return nil, err
		}
		if cur, err = applyFilter(cur, seg); err != nil {
			return nil, err
		}
	}
	return cur, nil
}

// getField reads one named field. Sequences map the access over their
// elements, so "parts.ingredient" over a list yields a list.
func getField(v any, name string) (any, error) {
	switch val := v.(type) {
	case FieldGetter:
		return val.GetField(name)
	case map[string]any:
		out, ok := val[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		return out, nil
	case []any:
		out := make([]any, 0, len(val))
		for _, elem := range val {
			ev, err := getField(elem, name)
			if err != nil {
				return nil, err
			}
			out = append(out, ev)
		}
		return out, nil
	case nil:
		return nil, fmt.Errorf("%w: %q on null value", ErrUnknownField, name)
	default:
		return nil, fmt.Errorf("%w: %q on %T", ErrUnknownField, name, v)
	}
}

// applyFilter keeps the elements of a sequence whose runtime variant equals
// the filter's type name. Filtering to zero elements yields an empty
// sequence, never an error: filters are existence-agnostic.
func applyFilter(v any, seg Segment) (any, error) {
	if seg.Filter == "" {
		return v, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: filter [is %s] on non-sequence %T", ErrEvaluation, seg.Filter, v)
	}
	out := make([]any, 0, len(list))
	for _, elem := range list {
		if variant, ok := elem.(Variant); ok && variant.VariantName() == seg.Filter {
			out = append(out, elem)
		}
	}
	return out, nil
}

func (e *Expression) evalFallback(scope Scope) (any, error) {
	out, _, err := e.program.Eval(scope.Bindings())
	if err != nil {
		return nil, fmt.Errorf("%w: eval %q: %v", ErrEvaluation, e.Original, err)
	}
	native, err := nativeValue(out)
	if err != nil {
		return nil, fmt.Errorf("%w: convert %q: %v", ErrEvaluation, e.Original, err)
	}
	return native, nil
}

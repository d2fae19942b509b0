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

// Package expand materializes macro instances into concrete instances from
// their @expand templates. Generic templates are JSON trees with "$field"
// substitution markers; custom templates dispatch to a registered function.
// Expansion never mutates the source instance.
package expand

import (
	"fmt"
	"sort"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/cadbuildr/graphql-codegen/pkg/expr"
	"github.com/cadbuildr/graphql-codegen/pkg/graph"
	"github.com/cadbuildr/graphql-codegen/pkg/runtime"
)

// DefaultMaxDepth bounds template recursion. Real templates are shallow;
// the ceiling guards against self-referential templates.
const DefaultMaxDepth = 32

// subMarker prefixes a template string that substitutes a source field.
const subMarker = "$"

// Engine materializes expansion templates against a Runtime's type graph.
// It is stateless apart from its configuration and safe for concurrent use.
type Engine struct {
	rt       *runtime.Runtime
	maxDepth int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxDepth overrides the recursion depth ceiling.
func WithMaxDepth(n int) Option {
	return func(e *Engine) { e.maxDepth = n }
}

// New builds an expansion engine over a runtime.
func New(rt *runtime.Runtime, opts ...Option) *Engine {
	e := &Engine{rt: rt, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Expand expands a macro instance. Type-level @expand metadata is used when
// present; otherwise the first field carrying @expand metadata supplies both
// the template and the target type. A generic type-level template targets
// the first interface the type declares.
func (e *Engine) Expand(src *runtime.Instance) (any, error) {
	node := src.Type()
	if meta := node.Expand; meta != nil {
		if meta.Template.IsCustom() {
			return e.dispatchCustom(src, meta)
		}
		if len(node.Interfaces) == 0 {
			return nil, fmt.Errorf("%w: type %s has a generic type-level template but implements no interface to target", ErrNoMatchingType, node.Name)
		}
		target := graph.TypeRef{Name: node.Interfaces[0], NonNull: true}
		return e.expand(src, meta, target)
	}

	for _, fd := range node.Fields {
		if fd.Metadata != nil && fd.Metadata.Kind == graph.DirectiveExpand {
			return e.expandField(src, fd)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotExpandable, node.Name)
}

// ExpandField expands one field's @expand template against the field's
// declared type.
func (e *Engine) ExpandField(src *runtime.Instance, field string) (any, error) {
	fd := src.Type().Field(field)
	if fd == nil {
		return nil, fmt.Errorf("%w: %q on type %s", expr.ErrUnknownField, field, src.Type().Name)
	}
	if fd.Metadata == nil || fd.Metadata.Kind != graph.DirectiveExpand {
		return nil, fmt.Errorf("%w: field %s.%s", ErrNotExpandable, src.Type().Name, field)
	}
	return e.expandField(src, fd)
}

func (e *Engine) expandField(src *runtime.Instance, fd *graph.FieldDef) (any, error) {
	if fd.Metadata.Template.IsCustom() {
		return e.dispatchCustom(src, fd.Metadata)
	}
	return e.expand(src, fd.Metadata, fd.Type)
}

// dispatchCustom hands the source instance and raw directive arguments to
// the registered expand function. The return value is trusted as-is.
func (e *Engine) dispatchCustom(src *runtime.Instance, meta *graph.DirectiveMetadata) (any, error) {
	fn, ok := e.rt.Registry().Expand(meta.Template.FnName)
	if !ok {
		return nil, fmt.Errorf("%w: expand %q for type %s", runtime.ErrUnregisteredFunction, meta.Template.FnName, src.Type().Name)
	}
	out, err := fn(src, meta.Raw)
	if err != nil {
		return nil, fmt.Errorf("%w: expand %q: %v", expr.ErrEvaluation, meta.Template.FnName, err)
	}
	return out, nil
}

func (e *Engine) expand(src *runtime.Instance, meta *graph.DirectiveMetadata, target graph.TypeRef) (any, error) {
	return e.materialize(meta.Template.Generic, target, src, 0)
}

// materialize recursively builds a value of the target type from a template
// node. Strings beginning with "$" that name a source field substitute that
// field's current value.
func (e *Engine) materialize(tpl any, target graph.TypeRef, src *runtime.Instance, depth int) (any, error) {
	if depth > e.maxDepth {
		return nil, fmt.Errorf("%w: ceiling %d at %s", ErrDepthExceeded, e.maxDepth, target)
	}

	substituted := false
	if s, ok := tpl.(string); ok && strings.HasPrefix(s, subMarker) {
		name := strings.TrimPrefix(s, subMarker)
		if src.Type().Field(name) != nil {
			v, err := src.GetField(name)
			if err != nil {
				return nil, err
			}
			tpl = v
			substituted = true
		}
	}

	if tpl == nil {
		if target.NonNull {
			return nil, fmt.Errorf("%w: null template for non-null %s", expr.ErrEvaluation, target)
		}
		return nil, nil
	}

	if target.IsList() {
		seq, ok := tpl.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s expects a sequence, template holds %T", expr.ErrEvaluation, target, tpl)
		}
		out := make([]any, len(seq))
		for i, elem := range seq {
			v, err := e.materialize(elem, *target.Elem, src, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	node, ok := e.rt.Graph().Type(target.Name)
	if !ok {
		return nil, fmt.Errorf("%w: target %q", graph.ErrUnknownType, target.Name)
	}

	switch node.Kind {
	case graph.KindScalar:
		return coerceScalar(node.Name, tpl)
	case graph.KindEnum:
		s, ok := tpl.(string)
		if !ok || !node.HasEnumValue(s) {
			return nil, fmt.Errorf("%w: %v is not a value of enum %s", expr.ErrEvaluation, tpl, node.Name)
		}
		return s, nil
	case graph.KindObject:
		if substituted {
			// A substituted object value is already materialized data.
			return tpl, nil
		}
		return e.materializeObject(node, tpl, src, depth)
	case graph.KindInterface, graph.KindUnion:
		if substituted {
			return tpl, nil
		}
		tplMap, ok := tpl.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s expects a keyed mapping, template holds %T", expr.ErrEvaluation, node.Name, tpl)
		}
		concrete, err := e.resolveConcrete(node, tplMap)
		if err != nil {
			return nil, err
		}
		// Keys belonging to unselected members are dropped once a member is
		// chosen; keys no member declares are still unknown fields.
		own := map[string]any{}
		for _, k := range sortedKeys(tplMap) {
			if fd := concrete.Field(k); fd != nil && !fd.IsMethod() && !fd.IsComputed() {
				own[k] = tplMap[k]
				continue
			}
			if !e.declaredBySomeCandidate(node, k) {
				return nil, fmt.Errorf("%w: %q on %s: no member declares it", ErrUnknownTemplateField, k, node.Name)
			}
		}
		return e.materializeObject(concrete, own, src, depth)
	default:
		return nil, fmt.Errorf("%w: cannot materialize %s target %s", expr.ErrEvaluation, node.Kind, node.Name)
	}
}

// materializeObject builds an instance of a concrete type from a keyed
// template. Absent fields fall back to their defaults; absent non-null data
// fields are an error.
func (e *Engine) materializeObject(node *graph.TypeNode, tpl any, src *runtime.Instance, depth int) (any, error) {
	tplMap, ok := tpl.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s expects a keyed mapping, template holds %T", expr.ErrEvaluation, node.Name, tpl)
	}

	for _, key := range sortedKeys(tplMap) {
		fd := node.Field(key)
		if fd == nil || fd.IsMethod() || fd.IsComputed() {
			return nil, fmt.Errorf("%w: %q on type %s", ErrUnknownTemplateField, key, node.Name)
		}
	}

	fields := map[string]any{}
	for _, fd := range node.Fields {
		tplVal, present := tplMap[fd.Name]
		if present {
			v, err := e.materialize(tplVal, fd.Type, src, depth+1)
			if err != nil {
				return nil, err
			}
			fields[fd.Name] = v
			continue
		}
		if fd.IsComputed() || fd.IsMethod() {
			continue
		}
		if fd.HasDefault() {
			v, err := e.rt.DefaultValue(fd)
			if err != nil {
				return nil, err
			}
			fields[fd.Name] = v
			continue
		}
		if fd.Type.NonNull {
			return nil, fmt.Errorf("%w: %s.%s", ErrMissingRequiredField, node.Name, fd.Name)
		}
	}
	return e.rt.NewInstance(node.Name, fields)
}

// resolveConcrete picks the concrete member of an interface or union target
// whose required fields are all present as template keys. Ties go to the
// earliest declared candidate.
func (e *Engine) resolveConcrete(node *graph.TypeNode, tplMap map[string]any) (*graph.TypeNode, error) {
	keys := sets.New[string]()
	for k := range tplMap {
		keys.Insert(k)
	}

	for _, cand := range e.rt.Graph().ConcreteCandidates(node) {
		if keys.HasAll(cand.RequiredFields()...) {
			return cand, nil
		}
	}
	return nil, fmt.Errorf("%w: no member of %s matches template keys %v", ErrNoMatchingType, node.Name, sortedKeys(tplMap))
}

// declaredBySomeCandidate reports whether any concrete member of target
// declares key as a data field.
func (e *Engine) declaredBySomeCandidate(target *graph.TypeNode, key string) bool {
	for _, cand := range e.rt.Graph().ConcreteCandidates(target) {
		if fd := cand.Field(key); fd != nil && !fd.IsMethod() && !fd.IsComputed() {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// coerceScalar converts a template value to the Go representation of a
// built-in scalar. Declared custom scalars pass through unchanged.
func coerceScalar(name string, v any) (any, error) {
	switch name {
	case "String", "ID":
		s, ok := v.(string)
		if !ok {
			return nil, coerceErr(name, v)
		}
		return s, nil
	case "Int":
		switch n := v.(type) {
		case int64:
			return n, nil
		case int:
			return int64(n), nil
		case float64:
			if n != float64(int64(n)) {
				return nil, coerceErr(name, v)
			}
			return int64(n), nil
		default:
			return nil, coerceErr(name, v)
		}
	case "Float":
		switch n := v.(type) {
		case float64:
			return n, nil
		case int64:
			return float64(n), nil
		case int:
			return float64(n), nil
		default:
			return nil, coerceErr(name, v)
		}
	case "Boolean":
		b, ok := v.(bool)
		if !ok {
			return nil, coerceErr(name, v)
		}
		return b, nil
	default:
		return v, nil
	}
}

func coerceErr(name string, v any) error {
	return fmt.Errorf("%w: cannot coerce %T (%v) to %s", expr.ErrEvaluation, v, v, name)
}

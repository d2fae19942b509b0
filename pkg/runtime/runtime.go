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

// Package runtime hosts instances of generated model types and dispatches
// their directive-driven behavior: compute functions, lazy defaults, and
// expression-backed methods. It owns the expression compiler cache and the
// registered-function table for one generation run.
package runtime

import (
	"fmt"

	"github.com/cadbuildr/graphql-codegen/pkg/expr"
	"github.com/cadbuildr/graphql-codegen/pkg/graph"
)

// Runtime binds a built TypeGraph to a function registry and an expression
// compiler. It is safe for concurrent use: the graph is immutable, the
// compiler deduplicates work, and the registry is populated before first use.
type Runtime struct {
	graph    *graph.TypeGraph
	registry *Registry
	compiler *expr.Compiler
	globals  map[string]any
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithRegistry supplies the registered-function table. Without it the
// runtime starts with an empty registry.
func WithRegistry(r *Registry) Option {
	return func(rt *Runtime) { rt.registry = r }
}

// WithGlobals whitelists name→value bindings visible to static methods,
// defaults and fallback expressions. Nothing outside this map (and the
// instance's "self") is reachable from schema-authored expressions.
func WithGlobals(globals map[string]any) Option {
	return func(rt *Runtime) { rt.globals = globals }
}

// New builds a Runtime over a validated TypeGraph.
func New(g *graph.TypeGraph, opts ...Option) (*Runtime, error) {
	rt := &Runtime{
		graph:   g,
		globals: map[string]any{},
	}
	for _, opt := range opts {
		opt(rt)
	}
	if rt.registry == nil {
		rt.registry = NewRegistry()
	}

	names := make([]string, 0, len(rt.globals)+1)
	names = append(names, SelfBinding)
	for name := range rt.globals {
		names = append(names, name)
	}
	compiler, err := expr.NewCompiler(expr.WithVariables(names...))
	if err != nil {
		return nil, fmt.Errorf("build expression environment: %w", err)
	}
	rt.compiler = compiler
	return rt, nil
}

// Graph returns the runtime's type graph.
func (rt *Runtime) Graph() *graph.TypeGraph { return rt.graph }

// Registry returns the registered-function table.
func (rt *Runtime) Registry() *Registry { return rt.registry }

// NewInstance creates an instance of a concrete object type. fields may be
// nil; values are stored as given (object-typed values hold *Instance).
func (rt *Runtime) NewInstance(typeName string, fields map[string]any) (*Instance, error) {
	node, ok := rt.graph.Type(typeName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstanceType, typeName)
	}
	if node.Kind != graph.KindObject {
		return nil, fmt.Errorf("%w: %q is a %s, instances need a concrete Object", ErrUnknownInstanceType, typeName, node.Kind)
	}

	in := &Instance{rt: rt, node: node, fields: map[string]any{}}
	for name, v := range fields {
		if err := in.Set(name, v); err != nil {
			return nil, err
		}
	}
	return in, nil
}

// Compute resolves one field through its @compute or @default metadata.
func (rt *Runtime) Compute(inst *Instance, field string) (any, error) {
	fd := inst.node.Field(field)
	if fd == nil {
		return nil, fmt.Errorf("%w: %q on type %s", expr.ErrUnknownField, field, inst.node.Name)
	}
	switch {
	case fd.IsComputed():
		return rt.dispatchCompute(inst, fd)
	case fd.HasDefault():
		return rt.evalDefault(fd)
	default:
		return nil, fmt.Errorf("%w: %s.%s has no @compute or @default metadata", ErrNotComputable, inst.node.Name, field)
	}
}

// CallMethod evaluates a @method field's expression against the instance.
func (rt *Runtime) CallMethod(inst *Instance, method string) (any, error) {
	fd := inst.node.Field(method)
	if fd == nil || !fd.IsMethod() {
		return nil, fmt.Errorf("%w: type %s has no method %q", expr.ErrUnknownField, inst.node.Name, method)
	}
	return rt.Eval(inst, fd.Metadata.Expr)
}

// CallStatic evaluates a type's @static_method expression in the global
// scope; no instance is involved.
func (rt *Runtime) CallStatic(typeName, method string) (any, error) {
	node, ok := rt.graph.Type(typeName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstanceType, typeName)
	}
	for _, sm := range node.StaticMethods {
		if sm.Name != method {
			continue
		}
		compiled, err := rt.compiler.Compile(sm.Expr)
		if err != nil {
			return nil, err
		}
		return compiled.Eval(expr.GlobalScope(rt.globals))
	}
	return nil, fmt.Errorf("%w: type %s has no static method %q", expr.ErrUnknownField, typeName, method)
}

// Eval compiles (or reuses) an expression and evaluates it against an
// instance scope.
func (rt *Runtime) Eval(inst *Instance, src string) (any, error) {
	compiled, err := rt.compiler.Compile(src)
	if err != nil {
		return nil, err
	}
	return compiled.Eval(instanceScope{inst: inst, globals: rt.globals})
}

// DefaultValue evaluates a field's @default expression. The expansion
// engine uses it for template keys resolved by default.
func (rt *Runtime) DefaultValue(fd *graph.FieldDef) (any, error) {
	if !fd.HasDefault() {
		return nil, fmt.Errorf("%w: field %q has no default", ErrNotComputable, fd.Name)
	}
	return rt.evalDefault(fd)
}

func (rt *Runtime) dispatchCompute(inst *Instance, fd *graph.FieldDef) (any, error) {
	fn, ok := rt.registry.Compute(fd.Metadata.FnName)
	if !ok {
		return nil, fmt.Errorf("%w: compute %q for %s.%s", ErrUnregisteredFunction, fd.Metadata.FnName, inst.node.Name, fd.Name)
	}
	out, err := fn(inst, fd.Name, fd.Metadata.Raw)
	if err != nil {
		return nil, fmt.Errorf("%w: compute %q: %v", expr.ErrEvaluation, fd.Metadata.FnName, err)
	}
	return out, nil
}

// evalDefault evaluates a default expression in the global scope: defaults
// are usable before any instance exists.
func (rt *Runtime) evalDefault(fd *graph.FieldDef) (any, error) {
	compiled, err := rt.compiler.Compile(fd.Metadata.Expr)
	if err != nil {
		return nil, err
	}
	return compiled.Eval(expr.GlobalScope(rt.globals))
}

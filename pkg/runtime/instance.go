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

package runtime

import (
	"fmt"

	"github.com/cadbuildr/graphql-codegen/pkg/expr"
	"github.com/cadbuildr/graphql-codegen/pkg/graph"
)

// Instance is one runtime value of a concrete object type. Field values are
// JSON-like Go values; object-typed fields hold *Instance. Instances are
// independent of the TypeGraph's build but read it (through the Runtime)
// for field definitions and compute/default metadata.
type Instance struct {
	rt     *Runtime
	node   *graph.TypeNode
	fields map[string]any
}

// Type returns the instance's type node.
func (in *Instance) Type() *graph.TypeNode { return in.node }

// VariantName implements expr.Variant for "[is TypeName]" filters.
func (in *Instance) VariantName() string { return in.node.Name }

// GetField implements expr.FieldGetter.
//
// A computed field always dispatches its registered function; a stored
// value is returned otherwise; an unset field with @default metadata
// evaluates its default lazily. Unset plain fields read as nil.
func (in *Instance) GetField(name string) (any, error) {
	fd := in.node.Field(name)
	if fd == nil || fd.IsMethod() {
		return nil, fmt.Errorf("%w: %q on type %s", expr.ErrUnknownField, name, in.node.Name)
	}

	if fd.IsComputed() {
		return in.rt.dispatchCompute(in, fd)
	}
	if v, ok := in.fields[name]; ok {
		return v, nil
	}
	if fd.HasDefault() {
		return in.rt.evalDefault(fd)
	}
	return nil, nil
}

// Set stores a field value. Method and computed fields hold no data.
func (in *Instance) Set(name string, value any) error {
	fd := in.node.Field(name)
	if fd == nil || fd.IsMethod() {
		return fmt.Errorf("%w: %q on type %s", expr.ErrUnknownField, name, in.node.Name)
	}
	if fd.IsComputed() {
		return fmt.Errorf("field %s.%s is computed and cannot be set", in.node.Name, name)
	}
	in.fields[name] = value
	return nil
}

// Has reports whether the field currently holds a stored value.
func (in *Instance) Has(name string) bool {
	_, ok := in.fields[name]
	return ok
}

// AsMap converts the instance's stored fields to a plain JSON-like tree for
// fallback expression bindings. Computed fields are not triggered: fallback
// expressions see stored data only.
func (in *Instance) AsMap() map[string]any {
	out := make(map[string]any, len(in.fields))
	for k, v := range in.fields {
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v any) any {
	switch val := v.(type) {
	case *Instance:
		return val.AsMap()
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = plainValue(elem)
		}
		return out
	default:
		return v
	}
}

// instanceScope evaluates expressions against one instance: path heads
// resolve as field names (or "self"), fallback expressions see the instance
// as the whitelisted "self" binding.
type instanceScope struct {
	inst    *Instance
	globals map[string]any
}

// SelfBinding is the variable name under which fallback expressions see the
// instance.
const SelfBinding = "self"

func (s instanceScope) ResolveName(name string) (any, error) {
	if name == SelfBinding {
		return s.inst, nil
	}
	return s.inst.GetField(name)
}

func (s instanceScope) Bindings() map[string]any {
	out := make(map[string]any, len(s.globals)+1)
	for k, v := range s.globals {
		out[k] = v
	}
	out[SelfBinding] = s.inst.AsMap()
	return out
}

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
	"sync"
)

// ComputeFunc produces the value of a @compute field. It receives the
// instance, the field name and the raw directive arguments, and must return
// a value matching the field's declared type (a caller contract, not
// enforced here).
type ComputeFunc func(inst *Instance, field string, meta map[string]any) (any, error)

// ExpandFunc materializes a custom @expand template. Its return value is
// trusted as-is by the expansion engine.
type ExpandFunc func(inst *Instance, meta map[string]any) (any, error)

// Registry is the explicit registered-function table referenced by name
// from @compute and custom @expand metadata. It is caller-constructed and
// passed into the runtime; there is no implicit process-wide table.
//
// Registration is expected to complete before first use. The table is still
// locked so that late registration is a caller error rather than a data race.
type Registry struct {
	mu      sync.RWMutex
	compute map[string]ComputeFunc
	expand  map[string]ExpandFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		compute: map[string]ComputeFunc{},
		expand:  map[string]ExpandFunc{},
	}
}

// RegisterCompute binds name to a compute function. Rebinding a name is an
// error: the schema references functions by name and silent replacement
// hides wiring mistakes.
func (r *Registry) RegisterCompute(name string, fn ComputeFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.compute[name]; dup {
		return fmt.Errorf("compute function %q already registered", name)
	}
	r.compute[name] = fn
	return nil
}

// RegisterExpand binds name to an expand function.
func (r *Registry) RegisterExpand(name string, fn ExpandFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.expand[name]; dup {
		return fmt.Errorf("expand function %q already registered", name)
	}
	r.expand[name] = fn
	return nil
}

// Compute looks up a compute function by name.
func (r *Registry) Compute(name string) (ComputeFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.compute[name]
	return fn, ok
}

// Expand looks up an expand function by name.
func (r *Registry) Expand(name string) (ExpandFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.expand[name]
	return fn, ok
}

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

package expr

import (
	"sync"

	"github.com/google/cel-go/cel"
	"golang.org/x/sync/singleflight"
)

// Compiler compiles expression strings and caches the results.
//
// Compilation is lazy (first use) and callers may race on the same string:
// singleflight deduplicates the work and LoadOrStore guarantees a single
// visible Expression per string. Duplicate compilation work is permitted,
// duplicate visible ASTs are not.
type Compiler struct {
	env   *cel.Env
	cache sync.Map // expression string -> *Expression
	group singleflight.Group
}

// NewCompiler builds a Compiler over the restricted fallback environment.
func NewCompiler(opts ...EnvOption) (*Compiler, error) {
	env, err := DefaultEnvironment(opts...)
	if err != nil {
		return nil, err
	}
	return &Compiler{env: env}, nil
}

// Compile returns the compiled form of src, compiling at most logically
// once per distinct string.
func (c *Compiler) Compile(src string) (*Expression, error) {
	if cached, ok := c.cache.Load(src); ok {
		return cached.(*Expression), nil
	}

	v, err, _ := c.group.Do(src, func() (any, error) {
		if cached, ok := c.cache.Load(src); ok {
			return cached, nil
		}
		compiled, err := compile(c.env, src)
		if err != nil {
			return nil, err
		}
		actual, _ := c.cache.LoadOrStore(src, compiled)
		return actual, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Expression), nil
}

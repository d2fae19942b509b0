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
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"
)

// EnvOption is a function that modifies the environment options.
type EnvOption func(*envOptions)

// envOptions holds the configuration for the fallback CEL environment.
type envOptions struct {
	// variables will be declared as CEL variables of dynamic type. Only
	// these names are visible to fallback expressions; there is no other
	// way into the process.
	variables []string
	// customDeclarations will be added to the CEL environment.
	customDeclarations []cel.EnvOption
}

// WithVariables whitelists names that fallback expressions may reference.
func WithVariables(names ...string) EnvOption {
	return func(opts *envOptions) {
		opts.variables = append(opts.variables, names...)
	}
}

// WithCustomDeclarations adds custom declarations to the CEL environment.
func WithCustomDeclarations(declarations ...cel.EnvOption) EnvOption {
	return func(opts *envOptions) {
		opts.customDeclarations = append(opts.customDeclarations, declarations...)
	}
}

// DefaultEnvironment returns the restricted CEL environment used for
// fallback expressions: list and string extensions, optional types, and the
// explicitly whitelisted variables. Schema-authored expressions get nothing
// else: no loops, no user-defined functions, no ambient state.
func DefaultEnvironment(options ...EnvOption) (*cel.Env, error) {
	declarations := []cel.EnvOption{
		ext.Lists(),
		ext.Strings(),
		cel.OptionalTypes(),
	}

	opts := &envOptions{}
	for _, opt := range options {
		opt(opts)
	}

	declarations = append(declarations, opts.customDeclarations...)
	for _, name := range opts.variables {
		declarations = append(declarations, cel.Variable(name, cel.DynType))
	}

	return cel.NewEnv(declarations...)
}

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

import "errors"

var (
	// ErrUnknownField is returned when a path segment does not exist on the
	// current value.
	ErrUnknownField = errors.New("unknown field")

	// ErrEvaluation wraps failures raised while evaluating an expression,
	// including errors propagated out of helper functions. It is fatal to
	// the single call and recoverable by the caller.
	ErrEvaluation = errors.New("expression evaluation failed")

	// ErrCompile is returned when an expression string cannot be compiled.
	ErrCompile = errors.New("expression compilation failed")
)

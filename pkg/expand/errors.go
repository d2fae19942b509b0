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

package expand

import "errors"

var (
	// ErrUnknownTemplateField is returned when a template key does not name
	// a settable field of the target type.
	ErrUnknownTemplateField = errors.New("unknown template field")

	// ErrMissingRequiredField is returned when a non-null data field of the
	// target type is absent from the template and has no default.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrNoMatchingType is returned when no concrete member of an interface
	// or union target matches the template's key set.
	ErrNoMatchingType = errors.New("no matching concrete type")

	// ErrDepthExceeded is returned when template materialization recurses
	// past the engine's depth ceiling.
	ErrDepthExceeded = errors.New("expansion depth exceeded")

	// ErrNotExpandable is returned when Expand is called on an instance
	// whose type carries no expansion metadata.
	ErrNotExpandable = errors.New("type is not expandable")
)

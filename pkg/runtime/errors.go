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

import "errors"

var (
	// ErrUnregisteredFunction is returned at first dispatch when metadata
	// references a function name absent from the registry. Registration may
	// legitimately happen after generation, so this is never a build-time
	// failure.
	ErrUnregisteredFunction = errors.New("unregistered function")

	// ErrNotComputable is returned when compute is requested for a field
	// that carries neither @compute nor @default metadata.
	ErrNotComputable = errors.New("field is not computable")

	// ErrUnknownInstanceType is returned when an instance is created with a
	// type name the graph does not know or that is not a concrete object.
	ErrUnknownInstanceType = errors.New("unknown instance type")
)

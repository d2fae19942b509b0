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

package graph

import (
	"errors"
	"fmt"

	"github.com/cadbuildr/graphql-codegen/pkg/schema"
)

// Build-time failure kinds. All are fatal: the builder aborts on the first
// one and exposes no partial TypeGraph.
var (
	// ErrUnknownType is returned when a field references an undeclared type.
	ErrUnknownType = errors.New("unknown type")
	// ErrInvalidUnionMember is returned when a union member does not resolve
	// to an object type.
	ErrInvalidUnionMember = errors.New("invalid union member")
	// ErrInterfaceFieldMismatch is returned when an implementer does not
	// restate an interface field with an identical type reference.
	ErrInterfaceFieldMismatch = errors.New("interface field mismatch")
	// ErrDuplicateDeclaration is returned for duplicate type names in a
	// document or duplicate field names within one type.
	ErrDuplicateDeclaration = errors.New("duplicate declaration")
	// ErrConflictingDirective is returned when a field carries more than one
	// of @compute, @expand, @default and @method.
	ErrConflictingDirective = errors.New("conflicting directives")
)

// BuildError wraps a build-time failure with the offending declaration's
// name and source position.
type BuildError struct {
	TypeName string
	Field    string
	Pos      schema.Position
	Err      error
}

func (e *BuildError) Error() string {
	loc := e.TypeName
	if e.Field != "" {
		loc += "." + e.Field
	}
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%s (line %d, col %d): %v", loc, e.Pos.Line, e.Pos.Column, e.Err)
	}
	return fmt.Sprintf("%s: %v", loc, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

func buildErr(typeName, field string, pos schema.Position, err error) error {
	return &BuildError{TypeName: typeName, Field: field, Pos: pos, Err: err}
}

func buildErrf(typeName, field string, pos schema.Position, sentinel error, format string, a ...any) error {
	return buildErr(typeName, field, pos, fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, a...)))
}

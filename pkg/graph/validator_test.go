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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUnion(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr error
	}{
		{
			name: "valid union",
			src: `
type Circle { radius: Float! }
type Square { side: Float! }
union Shape = Circle | Square
`,
		},
		{
			name: "unknown member",
			src: `
type Circle { radius: Float! }
union Shape = Circle | Hexagon
`,
			wantErr: ErrUnknownType,
		},
		{
			name: "interface member",
			src: `
interface Ingredient { name: String! }
type Circle { radius: Float! }
union Shape = Circle | Ingredient
`,
			wantErr: ErrInvalidUnionMember,
		},
		{
			name: "scalar member",
			src: `
type Circle { radius: Float! }
union Shape = Circle | String
`,
			wantErr: ErrInvalidUnionMember,
		},
		{
			name: "duplicate member",
			src: `
type Circle { radius: Float! }
union Shape = Circle | Circle
`,
			wantErr: ErrDuplicateDeclaration,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.wantErr == nil {
				mustBuild(t, tc.src)
				return
			}
			err := buildErrFrom(t, tc.src)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateInterfaceRestatement(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr error
	}{
		{
			name: "restated exactly",
			src: `
interface Ingredient { name: String! }
type Fruit implements Ingredient { name: String! sweetness: Float }
`,
		},
		{
			name: "field not restated",
			src: `
interface Ingredient { name: String! }
type Fruit implements Ingredient { sweetness: Float }
`,
			wantErr: ErrInterfaceFieldMismatch,
		},
		{
			name: "wrapper flags differ",
			src: `
interface Ingredient { name: String! }
type Fruit implements Ingredient { name: String }
`,
			wantErr: ErrInterfaceFieldMismatch,
		},
		{
			name: "list depth differs",
			src: `
interface Tagged { tags: [String!]! }
type Fruit implements Tagged { tags: [[String!]]! }
`,
			wantErr: ErrInterfaceFieldMismatch,
		},
		{
			name: "implements a non-interface",
			src: `
type Base { name: String! }
type Fruit implements Base { name: String! }
`,
			wantErr: ErrInterfaceFieldMismatch,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.wantErr == nil {
				mustBuild(t, tc.src)
				return
			}
			err := buildErrFrom(t, tc.src)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

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

package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadbuildr/graphql-codegen/pkg/config"
	"github.com/cadbuildr/graphql-codegen/pkg/graph"
	"github.com/cadbuildr/graphql-codegen/pkg/schema"
)

func emit(t *testing.T, src string, cfg *config.Config) string {
	t.Helper()
	doc, err := schema.Parse("test.graphql", src)
	require.NoError(t, err)
	g, err := graph.Build(doc)
	require.NoError(t, err)
	out, err := New(g, cfg).Emit()
	require.NoError(t, err)
	return string(out)
}

func TestEmitModels(t *testing.T) {
	got := emit(t, `
enum Size {
  SMALL
  LARGE
}

interface Ingredient {
  name: String!
}

type Fruit implements Ingredient {
  name: String!
  calories_per_gram: Float!
  sweetness: Float
}

type Addon implements Ingredient {
  name: String!
}

union Part = Fruit | Addon

type Query {
  fruit: Fruit
}
`, &config.Config{Package: "smoothies", CodegenVersion: "0.1"})

	assert.Contains(t, got, "package smoothies")
	assert.Contains(t, got, "// Code generated by graphql-codegen. DO NOT EDIT.")

	// Enum as string constants.
	assert.Contains(t, got, "type Size string")
	assert.Contains(t, got, `SizeSmall Size = "SMALL"`)
	assert.Contains(t, got, `SizeLarge Size = "LARGE"`)

	// Struct fields: pascal names, json tags, pointer for nullable.
	assert.Contains(t, got, "type Fruit struct")
	assert.Regexp(t, "Name\\s+string\\s+`json:\"name\"`", got)
	assert.Regexp(t, "CaloriesPerGram\\s+float64\\s+`json:\"calories_per_gram\"`", got)
	assert.Regexp(t, "Sweetness\\s+\\*float64\\s+`json:\"sweetness,omitempty\"`", got)

	// Interface and union markers.
	assert.Contains(t, got, "type Ingredient interface")
	assert.Contains(t, got, "type Part interface")
	assert.Contains(t, got, "func (fruit *Fruit) isIngredient()")
	assert.Contains(t, got, "func (fruit *Fruit) isPart()")
	assert.Contains(t, got, "func (addon *Addon) isPart()")

	// Operational roots never reach the model set.
	assert.NotContains(t, got, "type Query struct")
}

func TestEmitSkipsInputTypes(t *testing.T) {
	got := emit(t, `
type Fruit { name: String! }
`, &config.Config{Package: "p", CodegenVersion: "0.1"})
	assert.Contains(t, got, "type Fruit struct")

	got = emit(t, `
type Fruit { name: String! }
type FruitInput { name: String! }
`, &config.Config{Package: "p", CodegenVersion: "0.1"})
	assert.NotContains(t, got, "FruitInput")
}

func TestEmitSkipsMethodFields(t *testing.T) {
	got := emit(t, `
type Smoothie {
  name: String!
  loudness: Float @method(expr: "self.name")
}
`, &config.Config{Package: "p", CodegenVersion: "0.1"})

	assert.Regexp(t, "Name\\s+string", got)
	assert.NotContains(t, got, "Loudness")
}

func TestEmitScalarMapping(t *testing.T) {
	cfg := &config.Config{
		Package:        "p",
		CodegenVersion: "0.1",
		Scalars:        map[string]string{"Decimal": "float64"},
	}
	got := emit(t, `
scalar Decimal
scalar Blob

type Price {
  amount: Decimal!
  raw: Blob
}
`, cfg)

	assert.Regexp(t, "Amount\\s+float64", got)
	// Unmapped declared scalars get an any alias.
	assert.Contains(t, got, "type Blob = any")
	assert.Regexp(t, "Raw\\s+Blob", got)
	assert.NotContains(t, got, "type Decimal")
}

func TestEmitListTypes(t *testing.T) {
	got := emit(t, `
type Part { name: String! }
type Smoothie {
  parts: [Part!]!
  tags: [String!]
}
`, &config.Config{Package: "p", CodegenVersion: "0.1"})

	assert.Regexp(t, `Parts\s+\[\]Part`, got)
	assert.Regexp(t, `Tags\s+\[\]string`, got)
}

func TestEmitDeterministic(t *testing.T) {
	src := `
type B { x: Int }
type A { x: Int }
`
	cfg := &config.Config{Package: "p", CodegenVersion: "0.1"}
	first := emit(t, src, cfg)
	second := emit(t, src, cfg)
	assert.Equal(t, first, second)

	// Declaration order survives into the output.
	assert.Less(t, indexOf(first, "type B struct"), indexOf(first, "type A struct"))
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

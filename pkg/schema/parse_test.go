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

package schema

import (
	"reflect"
	"testing"
)

const fruitSchema = `
enum Size {
  SMALL
  MEDIUM
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

type IngredientAmount {
  ingredient: Ingredient!
  grams: Float!
  calories: Float! @compute(fn: "calcCalories")
}

input FruitInput {
  name: String!
}
`

func TestParseDeclarations(t *testing.T) {
	doc, err := Parse("fruit.graphql", fruitSchema)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	// FruitInput must be dropped.
	wantNames := []string{"Size", "Ingredient", "Fruit", "Addon", "Part", "IngredientAmount"}
	var gotNames []string
	for _, d := range doc.Declarations {
		gotNames = append(gotNames, d.Name)
	}
	if !reflect.DeepEqual(gotNames, wantNames) {
		t.Fatalf("declaration order = %v, want %v", gotNames, wantNames)
	}

	byName := map[string]Declaration{}
	for _, d := range doc.Declarations {
		byName[d.Name] = d
	}

	if got := byName["Size"].EnumValues; !reflect.DeepEqual(got, []string{"SMALL", "MEDIUM", "LARGE"}) {
		t.Errorf("Size enum values = %v", got)
	}
	if got := byName["Part"].Members; !reflect.DeepEqual(got, []string{"Fruit", "Addon"}) {
		t.Errorf("Part members = %v", got)
	}
	if got := byName["Fruit"].Interfaces; !reflect.DeepEqual(got, []string{"Ingredient"}) {
		t.Errorf("Fruit interfaces = %v", got)
	}
	if byName["Size"].Kind != KindEnum || byName["Part"].Kind != KindUnion || byName["Ingredient"].Kind != KindInterface {
		t.Errorf("unexpected kinds: %v %v %v", byName["Size"].Kind, byName["Part"].Kind, byName["Ingredient"].Kind)
	}
}

func TestParseDirectiveArguments(t *testing.T) {
	doc, err := Parse("t.graphql", `
type Smoothie {
  calories: Float! @compute(fn: "calcCalories")
  size: String @default(expr: "'MEDIUM'")
  blend: String @expand(into: "{\"fn\": \"blendFn\"}")
}
`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	fields := doc.Declarations[0].Fields
	cases := []struct {
		field    int
		name     string
		argKey   string
		argValue any
	}{
		{0, DirectiveCompute, "fn", "calcCalories"},
		{1, DirectiveDefault, "expr", "'MEDIUM'"},
		{2, DirectiveExpand, "into", `{"fn": "blendFn"}`},
	}
	for _, tc := range cases {
		d := fields[tc.field].Directives[0]
		if d.Name != tc.name {
			t.Errorf("field %d directive = %q, want %q", tc.field, d.Name, tc.name)
		}
		if got := d.Args[tc.argKey]; got != tc.argValue {
			t.Errorf("field %d arg %s = %v, want %v", tc.field, tc.argKey, got, tc.argValue)
		}
		if d.Pos.Line == 0 {
			t.Errorf("field %d directive has no position", tc.field)
		}
	}
}

func TestParseTypeExpr(t *testing.T) {
	doc, err := Parse("t.graphql", `
type Box {
  a: String!
  b: [Int!]!
  c: [[Float]]
}
`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	fields := doc.Declarations[0].Fields

	a := fields[0].Type
	if a.Name != "String" || !a.NonNull || a.Elem != nil {
		t.Errorf("a = %+v", a)
	}

	b := fields[1].Type
	if !b.NonNull || b.Elem == nil || b.Elem.Name != "Int" || !b.Elem.NonNull {
		t.Errorf("b = %+v", b)
	}

	c := fields[2].Type
	if c.NonNull || c.Elem == nil || c.Elem.Elem == nil || c.Elem.Elem.Name != "Float" {
		t.Errorf("c = %+v", c)
	}
}

func TestParseDeterminism(t *testing.T) {
	a, err := Parse("a.graphql", fruitSchema)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	b, err := Parse("a.graphql", fruitSchema)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("parsing the same source twice produced different documents")
	}
}

func TestIsOperationalRoot(t *testing.T) {
	for _, name := range []string{"Query", "Mutation", "Subscription"} {
		if !IsOperationalRoot(name) {
			t.Errorf("IsOperationalRoot(%q) = false", name)
		}
	}
	if IsOperationalRoot("Fruit") {
		t.Error("IsOperationalRoot(Fruit) = true")
	}
}

func TestExtractLines(t *testing.T) {
	src := "one\ntwo\nthree\nfour\nfive\n"

	cases := []struct {
		ranges  string
		want    string
		wantErr bool
	}{
		{ranges: "1-2", want: "one\ntwo\n"},
		{ranges: "1-2,4", want: "one\ntwo\nfour\n"},
		{ranges: "3", want: "three\n"},
		{ranges: "2-100", wantErr: true},
		{ranges: "0-2", wantErr: true},
		{ranges: "x", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ExtractLines(src, tc.ranges)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ExtractLines(%q) expected error", tc.ranges)
			}
			continue
		}
		if err != nil {
			t.Errorf("ExtractLines(%q) error: %v", tc.ranges, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ExtractLines(%q) = %q, want %q", tc.ranges, got, tc.want)
		}
	}
}

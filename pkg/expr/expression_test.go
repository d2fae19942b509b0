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
	"errors"
	"testing"
)

// fakeItem is a Variant-carrying value for filter tests.
type fakeItem struct {
	variant string
	fields  map[string]any
}

func (f fakeItem) VariantName() string { return f.variant }

func (f fakeItem) GetField(name string) (any, error) {
	v, ok := f.fields[name]
	if !ok {
		return nil, ErrUnknownField
	}
	return v, nil
}

func mustCompile(t *testing.T, src string) *Expression {
	t.Helper()
	c, err := NewCompiler(WithVariables("self", "items"))
	if err != nil {
		t.Fatalf("NewCompiler() error: %v", err)
	}
	e, err := c.Compile(src)
	if err != nil {
		t.Fatalf("Compile(%q) error: %v", src, err)
	}
	return e
}

func TestLiteralExpressions(t *testing.T) {
	cases := []struct {
		src  string
		want any
	}{
		{"42", int64(42)},
		{"-7", int64(-7)},
		{"2.5", 2.5},
		{`"hello"`, "hello"},
		{"'MEDIUM'", "MEDIUM"},
		{"  15  ", int64(15)},
	}
	for _, tc := range cases {
		e := mustCompile(t, tc.src)
		got, err := e.Eval(GlobalScope{})
		if err != nil {
			t.Errorf("Eval(%q) error: %v", tc.src, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Eval(%q) = %v (%T), want %v (%T)", tc.src, got, got, tc.want, tc.want)
		}
	}
}

func TestPathClassification(t *testing.T) {
	cases := []struct {
		src    string
		isPath bool
	}{
		{"name", true},
		{"parts.ingredient.name", true},
		{"items[is Fruit].name", true},
		{"items[is  Fruit]", true},
		{"1 + 2", false},
		{"size(name)", false},
		{"items[0]", false},
		{"items[isFruit]", false},
		{"a..b", false},
	}
	for _, tc := range cases {
		e := mustCompile(t, tc.src)
		if e.IsPath() != tc.isPath {
			t.Errorf("IsPath(%q) = %v, want %v", tc.src, e.IsPath(), tc.isPath)
		}
	}
}

func TestPathEvaluation(t *testing.T) {
	scope := GlobalScope{
		"smoothie": map[string]any{
			"name": "Banana-Strawberry",
			"parts": []any{
				map[string]any{"grams": 100.0},
				map[string]any{"grams": 150.0},
			},
		},
	}

	e := mustCompile(t, "smoothie.name")
	got, err := e.Eval(scope)
	if err != nil {
		t.Fatalf("Eval() error: %v", err)
	}
	if got != "Banana-Strawberry" {
		t.Fatalf("Eval() = %v", got)
	}

	// Field access maps over sequences.
	e = mustCompile(t, "smoothie.parts.grams")
	got, err = e.Eval(scope)
	if err != nil {
		t.Fatalf("Eval() error: %v", err)
	}
	grams, ok := got.([]any)
	if !ok || len(grams) != 2 || grams[0] != 100.0 || grams[1] != 150.0 {
		t.Fatalf("Eval() = %v", got)
	}
}

func TestVariantFilter(t *testing.T) {
	banana := fakeItem{variant: "Fruit", fields: map[string]any{"name": "Banana"}}
	strawberry := fakeItem{variant: "Fruit", fields: map[string]any{"name": "Strawberry"}}
	powder := fakeItem{variant: "Addon", fields: map[string]any{"name": "Protein Powder"}}

	scope := GlobalScope{"items": []any{banana, powder, strawberry}}

	e := mustCompile(t, "items[is Fruit].name")
	got, err := e.Eval(scope)
	if err != nil {
		t.Fatalf("Eval() error: %v", err)
	}
	names, ok := got.([]any)
	if !ok || len(names) != 2 {
		t.Fatalf("Eval() = %v", got)
	}
	// Order must be preserved.
	if names[0] != "Banana" || names[1] != "Strawberry" {
		t.Fatalf("filtered names = %v", names)
	}
}

func TestVariantFilterNeverErrorsOnEmpty(t *testing.T) {
	scope := GlobalScope{"items": []any{
		fakeItem{variant: "Addon", fields: map[string]any{}},
	}}

	e := mustCompile(t, "items[is Hexagon]")
	got, err := e.Eval(scope)
	if err != nil {
		t.Fatalf("Eval() error: %v", err)
	}
	if list, ok := got.([]any); !ok || len(list) != 0 {
		t.Fatalf("Eval() = %v, want empty sequence", got)
	}
}

func TestVariantFilterOnNonSequence(t *testing.T) {
	e := mustCompile(t, "items[is Fruit]")
	_, err := e.Eval(GlobalScope{"items": "not a list"})
	if !errors.Is(err, ErrEvaluation) {
		t.Fatalf("err = %v, want ErrEvaluation", err)
	}
}

func TestUnknownFieldErrors(t *testing.T) {
	e := mustCompile(t, "smoothie.nope")
	_, err := e.Eval(GlobalScope{"smoothie": map[string]any{"name": "x"}})
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("err = %v, want ErrUnknownField", err)
	}

	_, err = e.Eval(GlobalScope{})
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("unbound head err = %v, want ErrUnknownField", err)
	}
}

func TestFallbackExpression(t *testing.T) {
	c, err := NewCompiler(WithVariables("self"))
	if err != nil {
		t.Fatalf("NewCompiler() error: %v", err)
	}

	e, err := c.Compile(`self.grams * 2.0`)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if e.IsPath() {
		t.Fatal("arithmetic expression classified as path")
	}

	got, err := e.Eval(GlobalScope{"self": map[string]any{"grams": 100.0}})
	if err != nil {
		t.Fatalf("Eval() error: %v", err)
	}
	if got != 200.0 {
		t.Fatalf("Eval() = %v, want 200.0", got)
	}
}

func TestFallbackResultLowering(t *testing.T) {
	c, err := NewCompiler(WithVariables("self"))
	if err != nil {
		t.Fatalf("NewCompiler() error: %v", err)
	}
	scope := GlobalScope{"self": map[string]any{"grams": 100.0}}

	e, err := c.Compile(`[self.grams, 2.0]`)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	got, err := e.Eval(scope)
	if err != nil {
		t.Fatalf("Eval() error: %v", err)
	}
	list, ok := got.([]any)
	if !ok || len(list) != 2 || list[0] != 100.0 || list[1] != 2.0 {
		t.Fatalf("Eval() = %#v, want [100.0, 2.0]", got)
	}

	e, err = c.Compile(`{"total": self.grams + 1.0}`)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	got, err = e.Eval(scope)
	if err != nil {
		t.Fatalf("Eval() error: %v", err)
	}
	m, ok := got.(map[string]any)
	if !ok || m["total"] != 101.0 {
		t.Fatalf("Eval() = %#v, want map with total=101.0", got)
	}

	// Uint results have no field representation.
	e, err = c.Compile(`2u + 1u`)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if _, err = e.Eval(scope); !errors.Is(err, ErrEvaluation) {
		t.Fatalf("err = %v, want ErrEvaluation", err)
	}
}

func TestFallbackRejectsUnboundNames(t *testing.T) {
	c, err := NewCompiler(WithVariables("self"))
	if err != nil {
		t.Fatalf("NewCompiler() error: %v", err)
	}
	// "os" is not whitelisted; compilation must fail, not resolve lazily.
	_, err = c.Compile(`os.getenv("HOME") + ""`)
	if !errors.Is(err, ErrCompile) {
		t.Fatalf("err = %v, want ErrCompile", err)
	}
}

func TestEmptyExpression(t *testing.T) {
	c, err := NewCompiler()
	if err != nil {
		t.Fatalf("NewCompiler() error: %v", err)
	}
	if _, err := c.Compile("   "); !errors.Is(err, ErrCompile) {
		t.Fatalf("err = %v, want ErrCompile", err)
	}
}

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
	"fmt"
	"strconv"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Parse parses GraphQL IDL source text into an ordered Document.
// name is used in error messages only.
func Parse(name, input string) (*Document, error) {
	src, err := parser.ParseSchema(&ast.Source{Name: name, Input: input})
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}

	doc := &Document{}
	for _, def := range src.Definitions {
		decl, ok, err := convertDefinition(def)
		if err != nil {
			return nil, err
		}
		if ok {
			doc.Declarations = append(doc.Declarations, decl)
		}
	}
	return doc, nil
}

func convertDefinition(def *ast.Definition) (Declaration, bool, error) {
	decl := Declaration{
		Name:       def.Name,
		Interfaces: def.Interfaces,
		Members:    def.Types,
		Pos:        convertPos(def.Position),
	}

	switch def.Kind {
	case ast.Scalar:
		decl.Kind = KindScalar
	case ast.Enum:
		decl.Kind = KindEnum
		for _, v := range def.EnumValues {
			decl.EnumValues = append(decl.EnumValues, v.Name)
		}
	case ast.Object:
		decl.Kind = KindObject
	case ast.Interface:
		decl.Kind = KindInterface
	case ast.Union:
		decl.Kind = KindUnion
	case ast.InputObject:
		// Input types carry no runtime behavior and are not emitted.
		return Declaration{}, false, nil
	default:
		return Declaration{}, false, fmt.Errorf("declaration %s: unsupported kind %s", def.Name, def.Kind)
	}

	dirs, err := convertDirectives(def.Directives)
	if err != nil {
		return Declaration{}, false, fmt.Errorf("declaration %s: %w", def.Name, err)
	}
	decl.Directives = dirs

	for _, f := range def.Fields {
		fd, err := convertField(f)
		if err != nil {
			return Declaration{}, false, fmt.Errorf("declaration %s: %w", def.Name, err)
		}
		decl.Fields = append(decl.Fields, fd)
	}

	return decl, true, nil
}

func convertField(f *ast.FieldDefinition) (Field, error) {
	dirs, err := convertDirectives(f.Directives)
	if err != nil {
		return Field{}, fmt.Errorf("field %s: %w", f.Name, err)
	}
	return Field{
		Name:       f.Name,
		Type:       convertType(f.Type),
		Directives: dirs,
		Pos:        convertPos(f.Position),
	}, nil
}

func convertType(t *ast.Type) TypeExpr {
	if t.Elem != nil {
		elem := convertType(t.Elem)
		return TypeExpr{Elem: &elem, NonNull: t.NonNull}
	}
	return TypeExpr{Name: t.NamedType, NonNull: t.NonNull}
}

func convertDirectives(list ast.DirectiveList) ([]Directive, error) {
	var out []Directive
	for _, d := range list {
		args := make(map[string]any, len(d.Arguments))
		for _, a := range d.Arguments {
			v, err := convertValue(a.Value)
			if err != nil {
				return nil, fmt.Errorf("directive @%s argument %s: %w", d.Name, a.Name, err)
			}
			args[a.Name] = v
		}
		out = append(out, Directive{Name: d.Name, Args: args, Pos: convertPos(d.Position)})
	}
	return out, nil
}

func convertValue(v *ast.Value) (any, error) {
	switch v.Kind {
	case ast.StringValue, ast.BlockValue, ast.EnumValue:
		return v.Raw, nil
	case ast.IntValue:
		n, err := strconv.ParseInt(v.Raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid int literal %q", v.Raw)
		}
		return n, nil
	case ast.FloatValue:
		f, err := strconv.ParseFloat(v.Raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float literal %q", v.Raw)
		}
		return f, nil
	case ast.BooleanValue:
		return v.Raw == "true", nil
	case ast.NullValue:
		return nil, nil
	case ast.ListValue:
		out := make([]any, 0, len(v.Children))
		for _, c := range v.Children {
			cv, err := convertValue(c.Value)
			if err != nil {
				return nil, err
			}
			out = append(out, cv)
		}
		return out, nil
	case ast.ObjectValue:
		out := make(map[string]any, len(v.Children))
		for _, c := range v.Children {
			cv, err := convertValue(c.Value)
			if err != nil {
				return nil, err
			}
			out[c.Name] = cv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value kind for %q", v.Raw)
	}
}

func convertPos(p *ast.Position) Position {
	if p == nil {
		return Position{}
	}
	return Position{Line: p.Line, Column: p.Column}
}

// ExtractLines returns the lines of src selected by ranges, a comma-separated
// list of 1-based line numbers and inclusive spans like "1-10,15-20,25".
func ExtractLines(src, ranges string) (string, error) {
	lines := strings.SplitAfter(src, "\n")
	var b strings.Builder

	for _, spec := range strings.Split(ranges, ",") {
		spec = strings.TrimSpace(spec)
		start, end := 0, 0
		if lo, hi, found := strings.Cut(spec, "-"); found {
			var err error
			if start, err = strconv.Atoi(strings.TrimSpace(lo)); err != nil {
				return "", fmt.Errorf("invalid line range %q", spec)
			}
			if end, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
				return "", fmt.Errorf("invalid line range %q", spec)
			}
		} else {
			n, err := strconv.Atoi(spec)
			if err != nil {
				return "", fmt.Errorf("invalid line range %q", spec)
			}
			start, end = n, n
		}
		if start < 1 || end < start || end > len(lines) {
			return "", fmt.Errorf("line range %q out of bounds (1-%d)", spec, len(lines))
		}
		for i := start; i <= end; i++ {
			b.WriteString(lines[i-1])
		}
	}
	return b.String(), nil
}

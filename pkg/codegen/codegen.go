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

// Package codegen renders a validated TypeGraph as Go source. Operational
// root types (Query, Mutation, Subscription) and *Input types never reach
// the emitted model set.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/gobuffalo/flect"

	"github.com/cadbuildr/graphql-codegen/pkg/config"
	"github.com/cadbuildr/graphql-codegen/pkg/graph"
	"github.com/cadbuildr/graphql-codegen/pkg/schema"
)

// builtinGoTypes maps built-in scalars to their emitted Go types.
var builtinGoTypes = map[string]string{
	"String":  "string",
	"ID":      "string",
	"Int":     "int64",
	"Float":   "float64",
	"Boolean": "bool",
}

// Emitter renders one TypeGraph with one configuration.
type Emitter struct {
	graph *graph.TypeGraph
	cfg   *config.Config
}

// New builds an emitter.
func New(g *graph.TypeGraph, cfg *config.Config) *Emitter {
	return &Emitter{graph: g, cfg: cfg}
}

// Emit renders the full model file and gofmt-formats it.
func (e *Emitter) Emit() ([]byte, error) {
	var buf bytes.Buffer
	if err := modelsTmpl.Execute(&buf, e.templateData()); err != nil {
		return nil, fmt.Errorf("render models: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// EmitToDir writes the rendered models under dir as <package>/models.go, or
// to stdout when the configuration asks for it.
func (e *Emitter) EmitToDir(dir string) error {
	src, err := e.Emit()
	if err != nil {
		return err
	}
	if e.cfg.Stdout {
		_, err = os.Stdout.Write(src)
		return err
	}
	out := filepath.Join(dir, e.cfg.Package)
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	name := "models.go"
	if e.cfg.FlatOutput {
		name = e.cfg.Package + ".go"
		out = dir
	}
	return os.WriteFile(filepath.Join(out, name), src, 0o644)
}

type typeData struct {
	Node    *graph.TypeNode
	GoName  string
	Fields  []fieldData
	Members []string
	// Markers names the interface and union marker methods the object
	// must carry.
	Markers []string
}

type fieldData struct {
	GoName string
	GoType string
	Tag    string
	Doc    string
}

type renderData struct {
	Package    string
	Enums      []typeData
	Objects    []typeData
	Interfaces []typeData
	Unions     []typeData
	Scalars    []typeData
}

func (e *Emitter) templateData() renderData {
	// Objects carry a marker method per interface they declare and per
	// union that lists them.
	markers := map[string][]string{}
	for _, node := range e.graph.Types() {
		switch node.Kind {
		case graph.KindObject:
			for _, iface := range node.Interfaces {
				markers[node.Name] = append(markers[node.Name], flect.Pascalize(iface))
			}
		case graph.KindUnion:
			for _, m := range node.Members {
				markers[m] = append(markers[m], flect.Pascalize(node.Name))
			}
		}
	}

	data := renderData{Package: e.cfg.Package}
	for _, node := range e.graph.Types() {
		if schema.IsOperationalRoot(node.Name) || strings.HasSuffix(node.Name, "Input") {
			continue
		}
		td := typeData{Node: node, GoName: flect.Pascalize(node.Name)}
		switch node.Kind {
		case graph.KindEnum:
			data.Enums = append(data.Enums, td)
		case graph.KindObject:
			td.Fields = e.fieldData(node)
			td.Markers = markers[node.Name]
			data.Objects = append(data.Objects, td)
		case graph.KindInterface:
			td.Fields = e.fieldData(node)
			data.Interfaces = append(data.Interfaces, td)
		case graph.KindUnion:
			for _, m := range node.Members {
				td.Members = append(td.Members, flect.Pascalize(m))
			}
			data.Unions = append(data.Unions, td)
		case graph.KindScalar:
			// Mapped scalars render as their configured Go type; only
			// unmapped ones need an alias declaration.
			if !graph.IsBuiltinScalar(node.Name) && e.cfg.Scalars[node.Name] == "" {
				data.Scalars = append(data.Scalars, td)
			}
		}
	}
	return data
}

func (e *Emitter) fieldData(node *graph.TypeNode) []fieldData {
	var out []fieldData
	for _, fd := range node.Fields {
		if fd.IsMethod() {
			// Method fields are behavior, not data.
			continue
		}
		f := fieldData{
			GoName: flect.Pascalize(fd.Name),
			GoType: e.goType(fd.Type),
			Tag:    jsonTag(fd),
		}
		if fd.Metadata != nil {
			f.Doc = directiveDoc(fd.Metadata)
		}
		out = append(out, f)
	}
	return out
}

// goType maps a TypeRef to emitted Go syntax. Nullable leaves become
// pointers; lists are slices whether or not the list itself is nullable.
func (e *Emitter) goType(ref graph.TypeRef) string {
	if ref.IsList() {
		return "[]" + e.goType(*ref.Elem)
	}

	name, isValue := builtinGoTypes[ref.Name]
	if !isValue {
		if mapped, ok := e.cfg.Scalars[ref.Name]; ok {
			name, isValue = mapped, true
		}
	}
	if name == "" {
		name = flect.Pascalize(ref.Name)
		node, ok := e.graph.Type(ref.Name)
		if ok && (node.Kind == graph.KindScalar || node.Kind == graph.KindUnion || node.Kind == graph.KindInterface) {
			// Aliases to any and interface types are already nilable.
			return name
		}
		if !ref.NonNull {
			return "*" + name
		}
		return name
	}
	if !ref.NonNull {
		return "*" + name
	}
	return name
}

func jsonTag(fd *graph.FieldDef) string {
	tag := fd.Name
	if !fd.Type.NonNull {
		tag += ",omitempty"
	}
	return tag
}

func directiveDoc(meta *graph.DirectiveMetadata) string {
	switch meta.Kind {
	case graph.DirectiveCompute:
		return fmt.Sprintf("Computed by %q.", meta.FnName)
	case graph.DirectiveDefault:
		return fmt.Sprintf("Defaults to %s.", meta.Expr)
	case graph.DirectiveExpand:
		return "Expanded at serialization time."
	default:
		return ""
	}
}

// enumConst renders the constant name for one enum value.
func enumConst(typeName, value string) string {
	return flect.Pascalize(typeName) + flect.Pascalize(strings.ToLower(value))
}

var modelsTmpl = template.Must(template.New("models").Funcs(template.FuncMap{
	"enumConst": enumConst,
	"camel":     flect.Camelize,
}).Parse(`// Code generated by graphql-codegen. DO NOT EDIT.

package {{.Package}}

{{range .Scalars}}
// {{.GoName}} is a declared scalar with no configured Go mapping.
type {{.GoName}} = any
{{end}}

{{range .Enums}}
// {{.GoName}} enumerates the declared {{.Node.Name}} values.
type {{.GoName}} string

const (
{{- $t := . }}
{{- range .Node.EnumValues}}
	{{enumConst $t.Node.Name .}} {{$t.GoName}} = "{{.}}"
{{- end}}
)
{{end}}

{{range .Interfaces}}
// {{.GoName}} is implemented by its declaring object types.
type {{.GoName}} interface {
	is{{.GoName}}()
}
{{end}}

{{range .Unions}}
// {{.GoName}} is one of: {{range $i, $m := .Members}}{{if $i}}, {{end}}{{$m}}{{end}}.
type {{.GoName}} interface {
	is{{.GoName}}()
}
{{end}}

{{range $obj := .Objects}}
type {{.GoName}} struct {
{{- range .Fields}}
{{- if .Doc}}
	// {{.Doc}}
{{- end}}
	{{.GoName}} {{.GoType}} ` + "`json:\"{{.Tag}}\"`" + `
{{- end}}
}
{{range .Markers}}
func ({{camel $obj.GoName}} *{{$obj.GoName}}) is{{.}}() {}
{{end}}
{{end}}
`))

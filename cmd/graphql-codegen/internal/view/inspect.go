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

package view

import (
	"io"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/cadbuildr/graphql-codegen/pkg/graph"
)

// RenderTypeTable prints one row per declared type in declaration order.
func RenderTypeTable(w io.Writer, g *graph.TypeGraph) {
	headerFmt := color.New(color.FgGreen, color.Bold).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("Type", "Kind", "Fields", "Computable", "Expandable")
	tbl.WithWriter(w).WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

	for _, node := range g.Types() {
		if graph.IsBuiltinScalar(node.Name) {
			continue
		}
		tbl.AddRow(node.Name, node.Kind.String(), len(node.Fields), mark(node.Computable), mark(node.Expandable))
	}
	tbl.Print()
}

func mark(b bool) string {
	if b {
		return color.GreenString("yes")
	}
	return "no"
}

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

package command

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cadbuildr/graphql-codegen/cmd/graphql-codegen/internal/view"
	"github.com/cadbuildr/graphql-codegen/pkg/graph"
	"github.com/cadbuildr/graphql-codegen/pkg/schema"
)

type InspectOptions struct {
	Path string
}

func NewInspectCommand(logger func() view.Logger) *cobra.Command {
	var opts InspectOptions

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Parse a schema and print its type graph",
		Long: Highlight("graphql-codegen inspect -f <schema-file>") + "\n\n" +
			"Parse and validate a schema file, then print one row per declared\n" +
			"type with its directive-derived capabilities.\n",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunInspect(logger(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Path, "file", "f", "", "Path to a schema file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func RunInspect(logger view.Logger, opts InspectOptions) error {
	raw, err := os.ReadFile(opts.Path)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	doc, err := schema.Parse(filepath.Base(opts.Path), string(raw))
	if err != nil {
		return err
	}
	g, err := graph.Build(doc)
	if err != nil {
		return err
	}
	logger.Debug("built type graph", "types", g.Len())

	view.RenderTypeTable(os.Stdout, g)
	return nil
}

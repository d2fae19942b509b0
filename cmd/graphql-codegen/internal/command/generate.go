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
	"github.com/cadbuildr/graphql-codegen/pkg/codegen"
	"github.com/cadbuildr/graphql-codegen/pkg/config"
	"github.com/cadbuildr/graphql-codegen/pkg/graph"
	"github.com/cadbuildr/graphql-codegen/pkg/schema"
)

// SchemaFileName is the schema file expected next to codegen.yaml.
const SchemaFileName = "schema.graphql"

type GenerateOptions struct {
	SchemaDir string
	OutDir    string
}

func NewGenerateCommand(logger func() view.Logger) *cobra.Command {
	var opts GenerateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate model code from a schema directory",
		Long: Highlight("graphql-codegen generate -f <schema-dir>") + "\n\n" +
			"Generate typed model code from a schema directory containing\n" +
			"schema.graphql and codegen.yaml.\n\n" +
			"Examples:\n" +
			"  # Generate next to the schema directory\n" +
			"  graphql-codegen generate -f ./schemas/smoothies\n\n" +
			"  # Generate into an explicit output directory\n" +
			"  graphql-codegen generate -f ./schemas/smoothies -o ./gen\n",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunGenerate(logger(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.SchemaDir, "file", "f", "", "Schema directory")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "", "Output directory (default: alongside the schema directory)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func RunGenerate(logger view.Logger, opts GenerateOptions) error {
	cfg, err := config.Load(opts.SchemaDir)
	if err != nil {
		return err
	}
	logger.Debug("loaded configuration", "package", cfg.Package)

	g, err := buildGraph(opts.SchemaDir, cfg)
	if err != nil {
		return err
	}
	logger.Info("built type graph", "types", g.Len())

	outDir := opts.OutDir
	if outDir == "" {
		outDir = filepath.Dir(opts.SchemaDir)
	}
	if err := codegen.New(g, cfg).EmitToDir(outDir); err != nil {
		return err
	}
	if !cfg.Stdout {
		logger.Info("wrote generated package", "dir", filepath.Join(outDir, cfg.Package))
	}
	return nil
}

// buildGraph reads the schema source (honoring schema_lines slicing) and
// builds the validated TypeGraph.
func buildGraph(schemaDir string, cfg *config.Config) (*graph.TypeGraph, error) {
	path := filepath.Join(schemaDir, SchemaFileName)
	if cfg.BaseSchema != "" {
		path = filepath.Join(schemaDir, cfg.BaseSchema)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}

	src := string(raw)
	if cfg.SchemaLines != "" {
		src, err = schema.ExtractLines(src, cfg.SchemaLines)
		if err != nil {
			return nil, fmt.Errorf("slice schema lines: %w", err)
		}
	}

	doc, err := schema.Parse(filepath.Base(path), src)
	if err != nil {
		return nil, err
	}
	return graph.Build(doc)
}

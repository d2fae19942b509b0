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

// Package config loads and validates codegen.yaml files that steer a
// generation run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"sigs.k8s.io/yaml"
)

// SupportedVersion is the codegen.yaml version this binary accepts.
const SupportedVersion = "0.1"

// FileName is the per-schema configuration file name.
const FileName = "codegen.yaml"

var identRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Config is one schema directory's generation settings.
type Config struct {
	// Package is the generated package name.
	Package string `json:"package"`
	// CodegenVersion locks the configuration format.
	CodegenVersion string `json:"codegen_version"`
	// Scalars maps declared scalar names to emitted Go types.
	Scalars map[string]string `json:"scalars,omitempty"`
	// Templates is an optional directory of override templates.
	Templates string `json:"templates,omitempty"`
	// FlatOutput emits one file instead of a package tree.
	FlatOutput bool `json:"flat_output,omitempty"`
	// Stdout writes generated code to standard output.
	Stdout bool `json:"stdout,omitempty"`
	// SchemaLines selects line ranges from BaseSchema, e.g. "1-10,15-20".
	SchemaLines string `json:"schema_lines,omitempty"`
	// BaseSchema is the schema file SchemaLines slices from.
	BaseSchema string `json:"base_schema,omitempty"`
}

// Load reads and validates codegen.yaml from a schema directory.
func Load(schemaDir string) (*Config, error) {
	path := filepath.Join(schemaDir, FileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks required fields and version compatibility.
func (c *Config) Validate() error {
	if c.Package == "" {
		return fmt.Errorf("package is required")
	}
	if !identRe.MatchString(c.Package) {
		return fmt.Errorf("package name %q is not a valid identifier", c.Package)
	}
	if c.CodegenVersion != SupportedVersion {
		return fmt.Errorf("unsupported codegen version %q, expected %q", c.CodegenVersion, SupportedVersion)
	}
	if c.SchemaLines != "" && c.BaseSchema == "" {
		return fmt.Errorf("schema_lines requires base_schema")
	}
	return nil
}

// OutputDir returns the directory generated code is written to: a package
// directory next to the schema directory.
func (c *Config) OutputDir(schemaDir string) string {
	return filepath.Join(filepath.Dir(schemaDir), c.Package)
}

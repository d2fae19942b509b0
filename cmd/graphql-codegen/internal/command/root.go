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

// Package command wires the graphql-codegen CLI.
package command

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cadbuildr/graphql-codegen/cmd/graphql-codegen/internal/view"
)

var debugFlag bool

// Highlight applies the CLI accent color.
func Highlight(format string, a ...any) string {
	return color.RGB(50, 108, 229).Sprintf(format, a...)
}

func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use: "graphql-codegen",
		Short: Highlight("graphql-codegen <subcommand> [args]") + "\n" +
			"Generate typed model code from directive-annotated GraphQL schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				_ = cmd.Help()
			}
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Set log level to debug")
	return cmd
}

func Execute() {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		color.NoColor = true
	}

	rootCmd := NewRootCommand()

	logger := view.NewNopLogger()
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := view.LogLevelInfo
		if debugFlag {
			level = view.LogLevelDebug
		}
		logger = view.NewLogger(os.Stderr, level)
	}

	rootCmd.AddCommand(
		NewGenerateCommand(func() view.Logger { return logger }),
		NewInspectCommand(func() view.Logger { return logger }),
	)

	if err := rootCmd.Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			color.New(color.FgRed).Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}
}

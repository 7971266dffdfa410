package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"confgen/internal/compile"
	"confgen/internal/config"
	"confgen/internal/diagnostic"
	"confgen/internal/logging"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate every output file",
	Long: `Parse every entity of the manifest and regenerate the schema, the
initializers and the helpers. Every file is rendered and verified before
anything is written.

Examples:
  confgen generate
  confgen generate -c confgen.toml --output-dir build
  confgen generate --strict=false`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, err := loadManifest(cmd)
		if err != nil {
			return err
		}

		return generate(m)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addSourceFlags(generateCmd.Flags())
}

func generate(m *config.Manifest) error {
	res, err := compile.Run(m.Pairs(), compile.Options{
		Generator: m.Generator(),
		OutputDir: m.OutputDir,
		Strict:    m.IsStrict(),
		Log:       logging.NewLogger("compile"),
	})

	if res != nil {
		if rerr := printDiagnostics(&res.Diagnostics); rerr != nil {
			return rerr
		}
	}

	if err != nil {
		return err
	}

	if !jsonOutput {
		fmt.Printf("Generated %d file(s) for %d entities in %s\n", len(res.Files), len(res.Document.Objects), m.OutputDir)
	}

	return nil
}

func printDiagnostics(d *diagnostic.Diagnostics) error {
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(d)
	}

	return diagnostic.Report(os.Stderr, d)
}

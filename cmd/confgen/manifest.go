package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"confgen/internal/config"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Inspect the manifest",
}

var manifestSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the manifest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}

		fmt.Println(string(data))

		return nil
	},
}

var manifestValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the manifest and list its entities",
	Long: `Load the manifest the way generate does and print the resolved entity
sources. Source files are not read.

Examples:
  confgen manifest validate
  confgen manifest validate -c confgen.toml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, path, err := loadManifest(cmd)
		if err != nil {
			return err
		}

		if path == "" {
			path = "built-in"
		}

		fmt.Printf("Manifest %s is valid\n", path)
		fmt.Printf("  source root: %s\n", m.SourceRoot)
		fmt.Printf("  output dir:  %s\n", m.OutputDir)
		fmt.Printf("  strict:      %t\n", m.IsStrict())
		fmt.Printf("  entities:    %d\n", len(m.Entities))

		for _, p := range m.Pairs() {
			fmt.Printf("    %-20s %s\n", p.Class, p.Declaration)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(manifestCmd)
	manifestCmd.AddCommand(manifestSchemaCmd, manifestValidateCmd)
	addSourceFlags(manifestValidateCmd.Flags())
}

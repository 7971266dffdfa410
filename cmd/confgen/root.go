package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"confgen/internal/config"
	"confgen/internal/logging"
)

var (
	// Global flags
	cfgFile    string
	verbose    bool
	jsonOutput bool
	sourceRoot string
	outputDir  string
	strict     bool

	envOverrides config.Env
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "confgen",
	Short: "Generate configuration schema, initializers and helpers from legacy declarations",
	Long: `confgen reads the legacy declaration (.hh) and definition (.cc) files of
the monitoring configuration entities and generates:

  state.proto             the protobuf schema of every entity
  state_init.hh/.cc       one init_<Class>() per entity applying its defaults
  <key>_helper.hh/.cc     the hook() and check_validity() of every entity

Entities come from the manifest (confgen.yml, confgen.yaml or confgen.toml in
the working directory, or --config) or from the built-in list.

Examples:
  confgen generate
  confgen generate --source-root ~/centreon-engine --output-dir build/conf
  confgen probe host host_name=srv1 notification_options=d,u
  confgen watch -v`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		envOverrides, err = config.LoadEnv()
		if err != nil {
			return err
		}

		opts := logging.Options{Level: envOverrides.LogLevel, Format: envOverrides.LogFormat}
		if verbose {
			opts.Level = "debug"
		}

		if jsonOutput {
			opts.Format = logging.FormatJSON
		}

		logging.Configure(opts)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_ = newErrorHandler(verbose).Handle(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "manifest file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "log and print results as JSON")
}

// addSourceFlags registers the flags overriding manifest locations.
func addSourceFlags(fs *pflag.FlagSet) {
	fs.StringVar(&sourceRoot, "source-root", "", "directory entity paths are resolved against")
	fs.StringVar(&outputDir, "output-dir", "", "directory receiving the generated files")
	fs.BoolVar(&strict, "strict", true, "fail when error diagnostics are reported")
}

// loadManifest resolves the manifest of a run: the --config file, a default
// manifest of the working directory or the built-in one, then environment
// overrides, then flags. It returns the manifest path, empty for the
// built-in manifest.
func loadManifest(cmd *cobra.Command) (*config.Manifest, string, error) {
	path := cfgFile
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", err
		}

		path = config.Find(cwd)
	}

	var m *config.Manifest

	if path == "" {
		m = config.Default()
	} else {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, "", err
		}

		m = loaded
	}

	envOverrides.Apply(m)
	applyFlags(cmd.Flags(), m)

	return m, path, nil
}

func applyFlags(fs *pflag.FlagSet, m *config.Manifest) {
	if fs.Changed("source-root") {
		m.SourceRoot = sourceRoot
	}

	if fs.Changed("output-dir") {
		m.OutputDir = outputDir
	}

	if fs.Changed("strict") {
		s := strict
		m.Strict = &s
	}
}

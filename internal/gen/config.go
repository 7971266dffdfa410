package gen

import (
	"path/filepath"
	"strings"
)

// Config holds configuration for code generation.
type Config struct {
	// ProtoPackage is the package of the generated schema.
	ProtoPackage string
	// Namespace is the C++ namespace of initializers and helpers.
	Namespace string
	// IncludePrefix prefixes every generated #include path.
	IncludePrefix string
	// SchemaFile is the schema file name, e.g. "state.proto".
	SchemaFile string
	// InitBasename names the initializer files (<basename>.hh/.cc).
	InitBasename string
	// OutputDir receives rejected artifacts for debugging. Empty disables it.
	OutputDir string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		ProtoPackage:  "com.centreon.engine.configuration",
		Namespace:     "com::centreon::engine::configuration",
		IncludePrefix: "common/engine_conf",
		SchemaFile:    "state.proto",
		InitBasename:  "state_init",
	}
}

func (c Config) include(name string) string {
	if c.IncludePrefix == "" {
		return name
	}

	return c.IncludePrefix + "/" + name
}

func (c Config) schemaHeader() string {
	return strings.TrimSuffix(c.SchemaFile, filepath.Ext(c.SchemaFile)) + ".pb.h"
}

func guard(name string) string {
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_")

	return "CCE_CONFIGURATION_" + strings.ToUpper(r.Replace(name))
}

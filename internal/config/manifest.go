// Package config loads the confgen manifest: the ordered list of entity
// sources and the generator settings.
package config

import (
	"fmt"
	"path/filepath"

	"confgen/internal/common"
	"confgen/internal/compile"
	"confgen/internal/entity"
	"confgen/internal/errors"
	"confgen/internal/gen"
)

// CurrentVersion is the only manifest version understood.
const CurrentVersion = "1"

// Entity is one (declaration, definition) pair of the manifest.
type Entity struct {
	Declaration string `yaml:"declaration" toml:"declaration" jsonschema:"minLength=1,description=Path of the declaration file (.hh)"`
	Definition  string `yaml:"definition,omitempty" toml:"definition,omitempty" jsonschema:"description=Path of the definition file (.cc)"`
	Class       string `yaml:"class,omitempty" toml:"class,omitempty" jsonschema:"description=Schema class name (defaults to the capitalized entity key)"`
}

// Key returns the entity key derived from the declaration file name.
func (e Entity) Key() string {
	return common.EntityKey(e.Declaration)
}

// ClassName returns the explicit class or the one derived from the key.
func (e Entity) ClassName() string {
	if e.Class != "" {
		return e.Class
	}

	return common.ClassName(e.Key())
}

// Manifest describes one generation run.
type Manifest struct {
	Version       string   `yaml:"version" toml:"version" jsonschema:"enum=1,description=Manifest version (a bare 1 is read as \"1\")"`
	SourceRoot    string   `yaml:"source_root,omitempty" toml:"source_root,omitempty" jsonschema:"description=Directory relative entity paths are resolved against"`
	OutputDir     string   `yaml:"output_dir,omitempty" toml:"output_dir,omitempty" jsonschema:"description=Directory receiving the generated files"`
	ProtoPackage  string   `yaml:"proto_package,omitempty" toml:"proto_package,omitempty" jsonschema:"description=Package of the generated protobuf schema"`
	Namespace     string   `yaml:"namespace,omitempty" toml:"namespace,omitempty" jsonschema:"description=C++ namespace of the generated code"`
	IncludePrefix string   `yaml:"include_prefix,omitempty" toml:"include_prefix,omitempty" jsonschema:"description=Prefix of generated #include paths"`
	SchemaFile    string   `yaml:"schema_file,omitempty" toml:"schema_file,omitempty" jsonschema:"pattern=\\.proto$,description=Name of the schema file"`
	InitBasename  string   `yaml:"init_basename,omitempty" toml:"init_basename,omitempty" jsonschema:"description=Basename of the initializer files"`
	Strict        *bool    `yaml:"strict,omitempty" toml:"strict,omitempty" jsonschema:"description=Fail the run on error diagnostics (default: true)"`
	Entities      []Entity `yaml:"entities" toml:"entities" jsonschema:"minItems=1,description=Ordered entity sources"`
}

// Default returns the built-in manifest covering the sixteen known entities.
func Default() *Manifest {
	m := &Manifest{Version: CurrentVersion}

	for _, key := range entity.Known() {
		m.Entities = append(m.Entities, Entity{
			Declaration: filepath.Join("inc", "com", "centreon", "engine", "configuration", key+".hh"),
			Definition:  filepath.Join("src", "configuration", key+".cc"),
		})
	}

	m.SetDefaults()

	return m
}

// SetDefaults fills every unset setting.
func (m *Manifest) SetDefaults() {
	def := gen.DefaultConfig()

	if m.Version == "" {
		m.Version = CurrentVersion
	}

	if m.SourceRoot == "" {
		m.SourceRoot = "."
	}

	if m.OutputDir == "" {
		m.OutputDir = "."
	}

	if m.ProtoPackage == "" {
		m.ProtoPackage = def.ProtoPackage
	}

	if m.Namespace == "" {
		m.Namespace = def.Namespace
	}

	if m.IncludePrefix == "" {
		m.IncludePrefix = def.IncludePrefix
	}

	if m.SchemaFile == "" {
		m.SchemaFile = def.SchemaFile
	}

	if m.InitBasename == "" {
		m.InitBasename = def.InitBasename
	}

	if m.Strict == nil {
		strict := true
		m.Strict = &strict
	}
}

// IsStrict reports whether error diagnostics fail the run.
func (m *Manifest) IsStrict() bool {
	return m.Strict == nil || *m.Strict
}

// Validate checks the semantic rules the schema cannot express.
func (m *Manifest) Validate() error {
	if m.Version != CurrentVersion {
		return errors.ManifestInvalid(fmt.Sprintf("unsupported version %q", m.Version)).
			WithDetail("version", m.Version)
	}

	if len(m.Entities) == 0 {
		return errors.ManifestInvalid("no entities declared")
	}

	seen := make(map[string]int, len(m.Entities))

	for i, e := range m.Entities {
		if e.Declaration == "" {
			return errors.ManifestInvalid(fmt.Sprintf("entity #%d has no declaration", i+1)).
				WithDetail("index", i)
		}

		key := e.Key()
		if !common.IsIdent(key) {
			return errors.ManifestInvalid(fmt.Sprintf("entity key %q is not an identifier", key)).
				WithDetail("declaration", e.Declaration)
		}

		if prev, dup := seen[key]; dup {
			return errors.ManifestInvalid(fmt.Sprintf("entity %q declared twice (#%d and #%d)", key, prev+1, i+1)).
				WithDetail("entity", key)
		}

		seen[key] = i

		if class := e.ClassName(); !common.IsIdent(class) {
			return errors.ManifestInvalid(fmt.Sprintf("class name %q is not an identifier", class)).
				WithDetail("entity", key)
		}
	}

	return nil
}

// Pairs returns the entity sources with their paths resolved against the
// source root.
func (m *Manifest) Pairs() []compile.Pair {
	pairs := make([]compile.Pair, 0, len(m.Entities))

	for _, e := range m.Entities {
		pairs = append(pairs, m.Pair(e))
	}

	return pairs
}

// Pair returns the compile input of one entity.
func (m *Manifest) Pair(e Entity) compile.Pair {
	p := compile.Pair{
		Class:       e.ClassName(),
		Key:         e.Key(),
		Declaration: m.path(e.Declaration),
	}

	if e.Definition != "" {
		p.Definition = m.path(e.Definition)
	}

	return p
}

// Generator returns the generator settings of the manifest.
func (m *Manifest) Generator() gen.Config {
	return gen.Config{
		ProtoPackage:  m.ProtoPackage,
		Namespace:     m.Namespace,
		IncludePrefix: m.IncludePrefix,
		SchemaFile:    m.SchemaFile,
		InitBasename:  m.InitBasename,
		OutputDir:     m.OutputDir,
	}
}

// Entity returns the manifest entry of key.
func (m *Manifest) Entity(key string) (Entity, error) {
	for _, e := range m.Entities {
		if e.Key() == key {
			return e, nil
		}
	}

	return Entity{}, errors.UnknownEntity(key)
}

func (m *Manifest) path(p string) string {
	if filepath.IsAbs(p) || m.SourceRoot == "" {
		return p
	}

	return filepath.Join(m.SourceRoot, p)
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confgen/internal/errors"
	"confgen/internal/gen"
)

const yamlManifest = `version: "1"
source_root: src
output_dir: ${CONFGEN_TEST_OUT:-out}
strict: false
entities:
  - declaration: inc/host.hh
    definition: src/host.cc
  - declaration: inc/hostdependency.hh
    class: HostDependency
`

const tomlManifest = `version = "1"
namespace = "engine::conf"

[[entities]]
declaration = "inc/host.hh"
definition = "src/host.cc"
`

func TestLoadFromBytesYAML(t *testing.T) {
	m, err := LoadFromBytes([]byte(yamlManifest), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "src", m.SourceRoot)
	assert.Equal(t, "out", m.OutputDir)
	assert.False(t, m.IsStrict())
	require.Len(t, m.Entities, 2)

	assert.Equal(t, "host", m.Entities[0].Key())
	assert.Equal(t, "Host", m.Entities[0].ClassName())
	assert.Equal(t, "HostDependency", m.Entities[1].ClassName())

	def := gen.DefaultConfig()
	assert.Equal(t, def.ProtoPackage, m.ProtoPackage)
	assert.Equal(t, def.SchemaFile, m.SchemaFile)
}

func TestLoadFromBytesTOML(t *testing.T) {
	m, err := LoadFromBytes([]byte(tomlManifest), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "engine::conf", m.Namespace)
	assert.True(t, m.IsStrict())
	require.Len(t, m.Entities, 1)
	assert.Equal(t, "src/host.cc", m.Entities[0].Definition)
}

func TestLoadFromBytesBareVersion(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		format   Format
	}{
		{"yaml", "version: 1\nentities:\n  - declaration: a.hh\n", FormatYAML},
		{"toml", "version = 1\n\n[[entities]]\ndeclaration = \"a.hh\"\n", FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := LoadFromBytes([]byte(tt.manifest), tt.format)
			require.NoError(t, err)
			assert.Equal(t, CurrentVersion, m.Version)
		})
	}

	_, err := LoadFromBytes([]byte("version: 2\nentities:\n  - declaration: a.hh\n"), FormatYAML)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeManifestInvalid))
}

func TestLoadFromBytesExpandsEnv(t *testing.T) {
	t.Setenv("CONFGEN_TEST_OUT", "/tmp/generated")

	m, err := LoadFromBytes([]byte(yamlManifest), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/generated", m.OutputDir)
}

func TestLoadFromBytesInvalid(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		contains string
	}{
		{"syntax", "version: [", "failed to parse YAML"},
		{"missing version", "entities:\n  - declaration: a.hh\n", "schema validation failed"},
		{"unknown key", "version: \"1\"\nbogus: 1\nentities:\n  - declaration: a.hh\n", "schema validation failed"},
		{"no entities", "version: \"1\"\nentities: []\n", "schema validation failed"},
		{"wrong version", "version: \"2\"\nentities:\n  - declaration: a.hh\n", "schema validation failed"},
		{"bad schema file", "version: \"1\"\nschema_file: state.txt\nentities:\n  - declaration: a.hh\n", "schema validation failed"},
		{"duplicate entity", "version: \"1\"\nentities:\n  - declaration: a/host.hh\n  - declaration: b/host.hh\n", "declared twice"},
		{"bad class", "version: \"1\"\nentities:\n  - declaration: a.hh\n    class: \"not a class\"\n", "not an identifier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tt.manifest), FormatYAML)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeManifestInvalid), err.Error())
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoadResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "confgen.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlManifest), 0o644))

	m, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "src"), m.SourceRoot)
	assert.Equal(t, filepath.Join(dir, "out"), m.OutputDir)

	pairs := m.Pairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, filepath.Join(dir, "src", "inc", "host.hh"), pairs[0].Declaration)
	assert.Equal(t, filepath.Join(dir, "src", "src", "host.cc"), pairs[0].Definition)
	assert.Equal(t, "hostdependency", pairs[1].Key)
	assert.Empty(t, pairs[1].Definition)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "confgen.yml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeManifestNotFound, errors.GetCode(err))
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, Find(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "confgen.toml"), []byte(tomlManifest), 0o644))
	assert.Equal(t, filepath.Join(dir, "confgen.toml"), Find(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "confgen.yml"), []byte(yamlManifest), 0o644))
	assert.Equal(t, filepath.Join(dir, "confgen.yml"), Find(dir))
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatOf("confgen.TOML"))
	assert.Equal(t, FormatYAML, FormatOf("confgen.yml"))
	assert.Equal(t, FormatYAML, FormatOf("confgen"))
	assert.Equal(t, "toml", FormatTOML.String())
}

func TestDefault(t *testing.T) {
	m := Default()

	require.NoError(t, m.Validate())
	require.Len(t, m.Entities, 16)
	assert.True(t, m.IsStrict())

	host, err := m.Entity("host")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("inc", "com", "centreon", "engine", "configuration", "host.hh"), host.Declaration)
	assert.Equal(t, filepath.Join("src", "configuration", "host.cc"), host.Definition)

	_, err = m.Entity("nope")
	assert.Equal(t, errors.ErrCodeUnknownEntity, errors.GetCode(err))
}

func TestPair(t *testing.T) {
	m := Default()
	m.SourceRoot = "/opt/engine"

	host, err := m.Entity("host")
	require.NoError(t, err)

	p := m.Pair(host)
	assert.Equal(t, "host", p.Key)
	assert.Equal(t, "Host", p.Class)
	assert.Equal(t, filepath.Join("/opt/engine", host.Declaration), p.Declaration)
	assert.Equal(t, filepath.Join("/opt/engine", host.Definition), p.Definition)

	assert.Contains(t, m.Pairs(), p)
}

func TestGenerator(t *testing.T) {
	m := Default()
	m.OutputDir = "out"

	cfg := m.Generator()
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, gen.DefaultConfig().Namespace, cfg.Namespace)
	assert.Equal(t, "state_init", cfg.InitBasename)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)

	for _, key := range []string{"version", "source_root", "output_dir", "proto_package", "namespace",
		"include_prefix", "schema_file", "init_basename", "strict", "entities"} {
		assert.Contains(t, props, key)
	}

	assert.ElementsMatch(t, []any{"version", "entities"}, doc["required"])
}

func TestEnv(t *testing.T) {
	e, err := LoadEnvFrom(map[string]string{
		"CONFGEN_SOURCE_ROOT": "/src",
		"CONFGEN_STRICT":      "false",
		"CONFGEN_LOG_LEVEL":   "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "debug", e.LogLevel)
	assert.Equal(t, "text", e.LogFormat)

	m := Default()
	e.Apply(m)

	assert.Equal(t, "/src", m.SourceRoot)
	assert.Equal(t, ".", m.OutputDir)
	assert.False(t, m.IsStrict())
}

func TestEnvInvalid(t *testing.T) {
	_, err := LoadEnvFrom(map[string]string{"CONFGEN_STRICT": "sometimes"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))
}

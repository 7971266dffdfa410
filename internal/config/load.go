package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"confgen/internal/common"
	"confgen/internal/errors"
)

// Format is a manifest encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return common.UnknownStr
	}
}

// DefaultFiles are the manifest names looked up in the working directory.
var DefaultFiles = []string{"confgen.yml", "confgen.yaml", "confgen.toml"}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// FormatOf returns the encoding of a manifest path, YAML unless the
// extension is .toml.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}

	return FormatYAML
}

// Find returns the first default manifest present in dir, or "".
func Find(dir string) string {
	for _, name := range DefaultFiles {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}

	return ""
}

// Load reads, validates and decodes a manifest file. Relative source roots
// and output directories are resolved against the manifest directory.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ManifestNotFound(path)
		}

		return nil, errors.Wrap(err, errors.ErrCodeManifestInvalid, "failed to read manifest").
			WithDetail("path", path)
	}

	m, err := LoadFromBytes(data, FormatOf(path))
	if err != nil {
		if cerr, ok := err.(*errors.Error); ok {
			cerr.WithDetail("path", path)
		}

		return nil, err
	}

	dir := filepath.Dir(path)

	if !filepath.IsAbs(m.SourceRoot) {
		m.SourceRoot = filepath.Join(dir, m.SourceRoot)
	}

	if !filepath.IsAbs(m.OutputDir) {
		m.OutputDir = filepath.Join(dir, m.OutputDir)
	}

	return m, nil
}

// LoadFromBytes parses a manifest. Environment references ${VAR} and
// ${VAR:-default} are expanded first.
func LoadFromBytes(data []byte, format Format) (*Manifest, error) {
	expanded := []byte(expandEnvVars(string(data)))

	raw := make(map[string]any)

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(expanded, &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeManifestInvalid, "failed to parse TOML manifest")
		}
	default:
		if err := yaml.Unmarshal(expanded, &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeManifestInvalid, "failed to parse YAML manifest")
		}
	}

	normalizeVersion(raw)

	v, err := NewValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create manifest validator")
	}

	if err := v.Validate(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeManifestInvalid, "schema validation failed")
	}

	var m Manifest

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &m,
		TagName:     "yaml",
		ErrorUnused: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create manifest decoder")
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeManifestInvalid, "failed to decode manifest")
	}

	m.SetDefaults()

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// normalizeVersion accepts an unquoted version number.
func normalizeVersion(raw map[string]any) {
	switch v := raw["version"].(type) {
	case int, int64, uint64, float64:
		raw["version"] = fmt.Sprint(v)
	}
}

// expandEnvVars replaces ${VAR} with environment variable values.
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		name := envVarRegex.FindStringSubmatch(match)[1]

		parts := strings.SplitN(name, ":-", 2)
		name = parts[0]

		fallback := ""
		if len(parts) > 1 {
			fallback = parts[1]
		}

		if value := os.Getenv(name); value != "" {
			return value
		}

		return fallback
	})
}

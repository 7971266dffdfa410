package config

import (
	"github.com/caarlos0/env/v11"

	"confgen/internal/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CONFGEN_"

// Env holds the environment overrides.
type Env struct {
	SourceRoot string `env:"SOURCE_ROOT"`
	OutputDir  string `env:"OUTPUT_DIR"`
	Strict     *bool  `env:"STRICT"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"text"`
}

// LoadEnv reads the overrides from the process environment.
func LoadEnv() (Env, error) {
	return parseEnv(env.Options{Prefix: EnvPrefix})
}

// LoadEnvFrom reads the overrides from environ instead of the process
// environment.
func LoadEnvFrom(environ map[string]string) (Env, error) {
	return parseEnv(env.Options{Prefix: EnvPrefix, Environment: environ})
}

func parseEnv(opts env.Options) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return Env{}, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid environment override")
	}

	return e, nil
}

// Apply overrides the manifest settings set in e.
func (e Env) Apply(m *Manifest) {
	if e.SourceRoot != "" {
		m.SourceRoot = e.SourceRoot
	}

	if e.OutputDir != "" {
		m.OutputDir = e.OutputDir
	}

	if e.Strict != nil {
		strict := *e.Strict
		m.Strict = &strict
	}
}

package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hostDefinitions = `#include "com/centreon/engine/configuration/host.hh"

using namespace com::centreon::engine::configuration;

#define SETTER(type, method) \
  &object::setter<host, type, &host::method>::generic

std::unordered_map<std::string, host::setter_func> const host::_setters{
    {"host_name", SETTER(std::string const&, _set_host_name)},
    {"normal_check_interval", SETTER(unsigned int, _set_check_interval)},
    {"check_interval", SETTER(unsigned int, _set_check_interval)},
};

static int const default_max_check_attempts(3);
static unsigned short const default_notification_options =
    host::down | host::unreachable;
static point_2d const default_coords{-1, -1};

host::host(key_type const& key)
    : object(object::host),
      _max_check_attempts(default_max_check_attempts),
      _notification_options{default_notification_options},
      _coords(default_coords) {}

int host::f() { return default_max_check_attempts; }
`

func parseDefs(t *testing.T, src string) *DefinitionFile {
	t.Helper()

	tokens, err := Tokenize("host.cc", []byte(src))
	require.NoError(t, err)

	return ParseDefinitions("host.cc", tokens)
}

func TestParseDefinitionsFactories(t *testing.T) {
	file := parseDefs(t, hostDefinitions)

	require.Len(t, file.Factories, 3)

	assert.Equal(t, Factory{
		Symbol: "default_max_check_attempts",
		Type:   "int",
		Expr:   "3",
		Pos:    file.Factories[0].Pos,
	}, file.Factories[0])
	assert.Equal(t, 14, file.Factories[0].Pos.Line)
	assert.Equal(t, 1, file.Factories[0].Pos.Column)

	assert.Equal(t, "unsigned short", file.Factories[1].Type)
	assert.Equal(t, "host::down | host::unreachable", file.Factories[1].Expr)

	assert.Equal(t, "point_2d", file.Factories[2].Type)
	assert.Equal(t, "-1, -1", file.Factories[2].Expr)
}

func TestParseDefinitionsMemberInits(t *testing.T) {
	file := parseDefs(t, hostDefinitions)

	require.Len(t, file.Inits, 3)
	assert.Equal(t, "_max_check_attempts", file.Inits[0].Member)
	assert.Equal(t, "default_max_check_attempts", file.Inits[0].Symbol)
	assert.Equal(t, "_notification_options", file.Inits[1].Member)
	assert.Equal(t, "_coords", file.Inits[2].Member)
}

func TestParseDefinitionsAliases(t *testing.T) {
	file := parseDefs(t, hostDefinitions)

	require.Len(t, file.Aliases, 3)
	assert.Equal(t, "host_name", file.Aliases[0].Legacy)
	assert.Equal(t, "_set_host_name", file.Aliases[0].Setter)
	assert.Equal(t, "normal_check_interval", file.Aliases[1].Legacy)
	assert.Equal(t, "_set_check_interval", file.Aliases[1].Setter)
	assert.Equal(t, 10, file.Aliases[1].Pos.Line)
}

func TestParseDefinitionsMultilineFactory(t *testing.T) {
	src := "static std::string const default_command =\n  \"check\"\n  \"_host\";\nstatic bool const default_active(\n  true\n);\n"

	file := parseDefs(t, src)

	require.Len(t, file.Factories, 2)
	assert.Equal(t, `"check" "_host"`, file.Factories[0].Expr)
	assert.Equal(t, "std::string", file.Factories[0].Type)
	assert.Equal(t, "true", file.Factories[1].Expr)
}

func TestParseDefinitionsIgnoresUses(t *testing.T) {
	src := "bool f() { if (x == default_a) return default_b; g(1, default_c); }"

	file := parseDefs(t, src)
	assert.Empty(t, file.Factories)
	assert.Empty(t, file.Inits)
}

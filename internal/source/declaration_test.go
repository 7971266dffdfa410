package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hostDeclarations = `#ifndef CCE_HOST_HH
# define CCE_HOST_HH
namespace com::centreon::engine::configuration {
class host : public object {
 public:
  host();
  bool parse(char const* key, char const* value) override;
  typedef bool (*setter_func)(host&, char const*);

 private:
  std::string _host_name;
  opt<int>  _max_check_attempts;
  unsigned short _notification_options;
  std::set<std::pair<std::string,std::string>> _tags;
  static std::unordered_map<std::string, setter_func> const _setters;
  point_2d _coords;
  opt<point_4d> _bogus;
  std::map<std::string, customvariable _broken;
};
}
#endif
`

func parseDecls(t *testing.T, src string) *DeclarationFile {
	t.Helper()

	tokens, err := Tokenize("host.hh", []byte(src))
	require.NoError(t, err)

	return ParseDeclarations("host.hh", tokens)
}

func TestParseDeclarations(t *testing.T) {
	file := parseDecls(t, hostDeclarations)

	want := []struct {
		name     string
		typ      string
		optional bool
	}{
		{"_host_name", "std::string", false},
		{"_max_check_attempts", "int", true},
		{"_notification_options", "unsigned short", false},
		{"_tags", "std::set<std::pair<std::string, std::string>>", false},
		{"_coords", "point_2d", false},
		{"_bogus", "point_4d", true},
	}

	require.Len(t, file.Declarations, len(want))

	for i, w := range want {
		t.Run(w.name, func(t *testing.T) {
			got := file.Declarations[i]
			assert.Equal(t, w.name, got.Name)
			assert.Equal(t, w.typ, got.Type)
			assert.Equal(t, w.optional, got.Optional)
		})
	}

	assert.Equal(t, 11, file.Declarations[0].Pos.Line)
	assert.Equal(t, 3, file.Declarations[0].Pos.Column)

	require.Len(t, file.Malformed, 1)
	assert.Equal(t, "_broken", file.Malformed[0].Name)
	assert.Contains(t, file.Malformed[0].Reason, "std::map")
}

func TestParseDeclarationsSkipsOutOfGrammar(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"method", "bool _check() const;"},
		{"static", "static int _count;"},
		{"using", "using _alias = int;"},
		{"setter table", "setters _setters;"},
		{"public member", "int value;"},
		{"initializer", "int _x = 3;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := parseDecls(t, tt.src)
			assert.Empty(t, file.Declarations)
			assert.Empty(t, file.Malformed)
		})
	}
}

func TestParseDeclarationsMalformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"single colon", "std:string _a;"},
		{"two type args to opt", "opt<int, int> _b;"},
		{"dangling bracket", "std::set<int _c;"},
		{"trailing tokens", "std::set<int> int _d;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := parseDecls(t, tt.src)
			assert.Empty(t, file.Declarations)
			assert.Len(t, file.Malformed, 1)
		})
	}
}

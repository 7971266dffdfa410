package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confgen/internal/errors"
)

func TestVerifySchema(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"valid", "syntax = \"proto3\";\nmessage A { int32 a = 1; optional string b = 2; }\n", ""},
		{"nested valid", "syntax = \"proto3\";\nmessage A { message P { string f = 1; } repeated P data = 1; }\n", ""},
		{"gap", "syntax = \"proto3\";\nmessage A { int32 a = 1; int32 b = 3; }\n", "not contiguous"},
		{"not from one", "syntax = \"proto3\";\nmessage A { int32 a = 2; }\n", "not contiguous"},
		{"duplicate name", "syntax = \"proto3\";\nmessage A { int32 a = 1; bool a = 2; }\n", "duplicate field name a"},
		{"enum values in package scope", "syntax = \"proto3\";\nenum A { a_none = 0; }\nenum B { b_none = 0; }\n", ""},
		{"enum value redeclared", "syntax = \"proto3\";\nenum A { none = 0; up = 1; }\nenum B { none = 0; }\n", "value none already declared by enum A"},
		{"nested enum has its own scope", "syntax = \"proto3\";\nenum A { none = 0; }\nmessage M { enum B { none = 0; } B b = 1; }\n", ""},
		{"syntax error", "syntax = \"proto3\";\nmessage A { int32 a = ; }\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifySchema("x.proto", []byte(tt.content))

			if tt.name == "syntax error" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrCodeVerifyFailed))

				return
			}

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestVerifyCpp(t *testing.T) {
	tests := []struct {
		name    string
		content string
		ok      bool
	}{
		{"balanced", "int f() { return g(1, {2}); }\n", true},
		{"literals ignored", "auto s = \"}{)(\"; char c = '{'; char q = '\\'';\n", true},
		{"comments ignored", "// }\n/* ( { */ int x;\n", true},
		{"unclosed", "void f() {\n", false},
		{"mismatched", "void f( } \n", false},
		{"extra close", "}\n", false},
		{"unterminated string", "auto s = \"abc\nint x;\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyCpp("x.cc", []byte(tt.content))
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestVerifyDispatch(t *testing.T) {
	assert.Error(t, Verify("a.hh", []byte("{")))
	assert.NoError(t, Verify("README", []byte("{")))
}

package common

import (
	"path/filepath"
	"strings"
)

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// PrivateMarker prefixes every private member name in legacy declarations.
const PrivateMarker = "_"

// EntityKey returns the lowercase entity key for a source file path,
// e.g. "inc/configuration/hostdependency.hh" -> "hostdependency".
func EntityKey(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}

	return strings.ToLower(base)
}

// ClassName returns the schema class name for an entity key: the key with its
// first letter upper-cased ("hostdependency" -> "Hostdependency").
func ClassName(key string) string {
	if key == "" {
		return ""
	}

	return strings.ToUpper(key[:1]) + key[1:]
}

// SchemaName strips the private marker from a declared member name.
func SchemaName(member string) string {
	return strings.TrimPrefix(member, PrivateMarker)
}

// IsIdent reports whether s is a C-like identifier.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return true
}

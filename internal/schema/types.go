package schema

import (
	"sort"

	"confgen/internal/common"
)

// TypeKind classifies a wire-schema type.
type TypeKind int

const (
	TypeKindInvalid TypeKind = iota
	TypeKindScalar           // int32, string, bool, ...
	TypeKindMessage          // shared auxiliary message (StringSet, Point2d, ...)
	TypeKindEnum             // shared enumeration
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindInvalid:
		return "invalid"
	case TypeKindScalar:
		return "scalar"
	case TypeKindMessage:
		return "message"
	case TypeKindEnum:
		return "enum"
	default:
		return common.UnknownStr
	}
}

// Names of the auxiliary message types that have a dedicated hook shape.
const (
	TypeStringList    = "StringList"
	TypeStringSet     = "StringSet"
	TypePairStringSet = "PairStringSet"
	TypeDaysArray     = "DaysArray"
	TypeKeyType       = "KeyType"
	TypePoint2d       = "Point2d"
	TypePoint3d       = "Point3d"
)

// UnmappedTypeName is the placeholder written to the schema for declared
// types missing from the dictionary. It is not a valid schema type.
const UnmappedTypeName = "UNMAPPED_TYPE"

// Type is a wire-schema type.
type Type struct {
	Name     string
	Kind     TypeKind
	Repeated bool
}

// Invalid is the placeholder type for unmapped declarations.
var Invalid = Type{Name: UnmappedTypeName, Kind: TypeKindInvalid}

// IsValid reports whether the type was found in the dictionary.
func (t Type) IsValid() bool {
	return t.Kind != TypeKindInvalid
}

// IsScalar reports whether the type is a primitive.
func (t Type) IsScalar() bool {
	return t.Kind == TypeKindScalar && !t.Repeated
}

// IsString reports whether the type is the string primitive.
func (t Type) IsString() bool {
	return t.Kind == TypeKindScalar && t.Name == "string" && !t.Repeated
}

// IsGroup reports whether the type is one of the shared string containers.
func (t Type) IsGroup() bool {
	return !t.Repeated && (t.Name == TypeStringList || t.Name == TypeStringSet || t.Name == TypePairStringSet)
}

// String returns the type as written in a field line, without the label.
func (t Type) String() string {
	return t.Name
}

func scalar(name string) Type {
	return Type{Name: name, Kind: TypeKindScalar}
}

func message(name string) Type {
	return Type{Name: name, Kind: TypeKindMessage}
}

func repeated(name string) Type {
	return Type{Name: name, Kind: TypeKindMessage, Repeated: true}
}

// Dictionary maps legacy declared types to wire-schema types.
type Dictionary map[string]Type

// DefaultDictionary returns the fixed legacy type dictionary.
func DefaultDictionary() Dictionary {
	return Dictionary{
		"bool": scalar("bool"),

		"int":     scalar("int32"),
		"short":   scalar("int32"),
		"int16_t": scalar("int32"),
		"int32_t": scalar("int32"),
		"int32":   scalar("int32"),

		"unsigned int":   scalar("uint32"),
		"unsigned short": scalar("uint32"),
		"uint16_t":       scalar("uint32"),
		"uint32_t":       scalar("uint32"),
		"uint32":         scalar("uint32"),

		"long":    scalar("int64"),
		"int64_t": scalar("int64"),
		"int64":   scalar("int64"),
		"time_t":  scalar("int64"),

		"unsigned long": scalar("uint64"),
		"uint64_t":      scalar("uint64"),
		"uint64":        scalar("uint64"),
		"size_t":        scalar("uint64"),

		"double": scalar("double"),
		"float":  scalar("float"),

		"std::string": scalar("string"),
		"string":      scalar("string"),

		"list_string":     message(TypeStringList),
		"set_string":      message(TypeStringSet),
		"point_2d":        message(TypePoint2d),
		"point_3d":        message(TypePoint3d),
		"days_array":      message(TypeDaysArray),
		"exception_array": message("ExceptionArray"),

		"set_pair_string": message(TypePairStringSet),
		"std::set<std::pair<std::string, std::string>>": message(TypePairStringSet),

		"key_type":                      message(TypeKeyType),
		"std::pair<uint64_t, uint16_t>": message(TypeKeyType),

		"set_pair_uint64_16":                      repeated("PairUint64_32"),
		"std::set<std::pair<uint64_t, uint16_t>>": repeated("PairUint64_32"),

		"map_customvar": repeated("CustomVariable"),
	}
}

// Lookup returns the schema type for a declared type.
func (d Dictionary) Lookup(declared string) (Type, bool) {
	t, ok := d[declared]

	return t, ok
}

// Names returns the declared type spellings known to the dictionary, sorted.
func (d Dictionary) Names() []string {
	names := make([]string, 0, len(d))
	for k := range d {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

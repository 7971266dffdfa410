package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confgen/internal/schema"
)

func TestDictionaryLookup(t *testing.T) {
	d := schema.DefaultDictionary()

	tests := []struct {
		declared string
		want     string
		repeated bool
	}{
		{"int", "int32", false},
		{"unsigned short", "uint32", false},
		{"time_t", "int64", false},
		{"size_t", "uint64", false},
		{"std::string", "string", false},
		{"set_string", schema.TypeStringSet, false},
		{"std::set<std::pair<std::string, std::string>>", schema.TypePairStringSet, false},
		{"std::pair<uint64_t, uint16_t>", schema.TypeKeyType, false},
		{"set_pair_uint64_16", "PairUint64_32", true},
		{"map_customvar", "CustomVariable", true},
	}

	for _, tt := range tests {
		t.Run(tt.declared, func(t *testing.T) {
			got, ok := d.Lookup(tt.declared)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.Name)
			assert.Equal(t, tt.repeated, got.Repeated)
			assert.True(t, got.IsValid())
		})
	}

	_, ok := d.Lookup("point_4d")
	assert.False(t, ok)
	assert.False(t, schema.Invalid.IsValid())
}

func TestDictionaryNamesSorted(t *testing.T) {
	names := schema.DefaultDictionary().Names()
	require.NotEmpty(t, names)

	assert.IsIncreasing(t, names)
}

func TestFamilies(t *testing.T) {
	f, ok := schema.FamilyByLegacy("hostescalation")
	require.True(t, ok)
	assert.Equal(t, schema.FamilyActionHostescalationOn, f.Name)
	assert.Equal(t, "action_he_recovery", f.Constant("recovery"))

	n, ok := f.Number("recovery")
	require.True(t, ok)
	assert.Equal(t, 4, n)
	assert.Equal(t, 7, f.Flags())
	assert.False(t, f.Has("up"))

	svc, ok := schema.FamilyByName(schema.FamilyActionServiceOn)
	require.True(t, ok)
	assert.Equal(t, 63, svc.Flags())

	tag, ok := schema.FamilyByLegacy("tag")
	require.True(t, ok)
	n, _ = tag.Number("hostcategory")
	assert.Equal(t, 3, n)
	assert.False(t, tag.Bitmask)
}

func TestLegacyQualifiersLongestFirst(t *testing.T) {
	q := schema.LegacyQualifiers()
	require.Len(t, q, len(schema.Families()))

	host, dep := -1, -1
	for i, s := range q {
		switch s {
		case "host":
			host = i
		case "hostdependency":
			dep = i
		}
	}

	assert.Less(t, dep, host)
}

func TestPreludeNumbering(t *testing.T) {
	for _, m := range schema.Prelude() {
		t.Run(m.Name, func(t *testing.T) {
			for i, f := range m.Fields {
				assert.Equal(t, i+1, f.Number, f.Name)
			}
		})
	}
}

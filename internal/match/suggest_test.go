package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	candidates := []string{"std::string", "set_string", "list_string", "bool", "uint32_t", "uint64_t"}

	tests := []struct {
		name     string
		input    string
		limit    int
		expected []string
	}{
		{"typo", "std::strng", 1, []string{"std::string"}},
		{"typo ranked", "std::strng", 2, []string{"std::string", "set_string"}},
		{"swapped digits first", "uint46_t", 2, []string{"uint64_t", "uint32_t"}},
		{"nothing close", "point_4d", 2, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.input, candidates, DefaultMinScore, tt.limit)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSuggest_SkipsExactAndDuplicates(t *testing.T) {
	got := Suggest("bool", []string{"bool", "bol", "bol"}, 0.5, 0)
	assert.Equal(t, []string{"bol"}, got)
}

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "ab", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"ABC", "abc", 3},
		{"ab", "ba", 1},
		{"uint46_t", "uint64_t", 1},
		{"std::stirng", "std::string", 1},
		{"uint64_t", "uint32_t", 2},
		{"default_check_interval", "default_check_intervals", 1},
		{"défaut", "defaut", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 0.001)
	assert.InDelta(t, 1.0, Similarity("bool", "bool"), 0.001)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 0.001)
	assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 0.001)
	assert.InDelta(t, 0.5, Similarity("ab", "ba"), 0.001)
}

func TestScoreIgnoresSeparatorsAndCase(t *testing.T) {
	assert.InDelta(t, 1.0, Score("std::String", "stdstring"), 0.001)
	assert.InDelta(t, 1.0, Score("default_Max_Attempts", "defaultmaxattempts"), 0.001)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"std::string", "stdstring"},
		{"unsigned int", "unsignedint"},
		{"default_Max_Attempts", "defaultmaxattempts"},
		{"set-string", "setstring"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

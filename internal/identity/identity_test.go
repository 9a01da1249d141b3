package identity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineKey(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		expected string
	}{
		{
			name:     "pair",
			ids:      []string{"nyc", "AS7922"},
			expected: "nyc" + Separator + "AS7922",
		},
		{
			name:     "triple",
			ids:      []string{"nyc", "AS7922", "AS3356"},
			expected: "nyc" + Separator + "AS7922" + Separator + "AS3356",
		},
		{
			name:     "separator inside an id is escaped",
			ids:      []string{"naus_ny", "AS7922"},
			expected: `naus\_ny` + Separator + "AS7922",
		},
		{
			name:     "numeric ids",
			ids:      []string{"1", "10"},
			expected: "1_10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CombineKey(tt.ids...))
		})
	}
}

func TestCombineKeyInjective(t *testing.T) {
	// Tuples chosen so a naive join would collide: ("a_b","c") vs ("a","b_c")
	// vs ("a","b","c").
	tuples := [][]string{
		{"a_b", "c"},
		{"a", "b_c"},
		{"a", "b", "c"},
		{"a_b_c", ""},
		{"", "a_b_c"},
		{`a\`, "b"},
		{"a", `\b`},
		{"1", "10"},
		{"11", "0"},
		{"1_1", "0"},
	}

	seen := make(map[string][]string)
	for _, tuple := range tuples {
		key := CombineKey(tuple...)
		prev, exists := seen[key]
		require.False(t, exists, "key %q collides for tuples %v and %v", key, prev, tuple)
		seen[key] = tuple
	}
}

func TestSplitKeyRoundTrip(t *testing.T) {
	tuples := [][]string{
		{"naus_ny", "AS7922"},
		{"a_b", "c"},
		{`back\slash`, "plain", "under_score"},
		{"", ""},
	}

	for _, tuple := range tuples {
		t.Run(fmt.Sprintf("%v", tuple), func(t *testing.T) {
			ids, ok := SplitKey(CombineKey(tuple...))
			require.True(t, ok)
			assert.Equal(t, tuple, ids)
		})
	}
}

func TestSplitKeyMalformed(t *testing.T) {
	_, ok := SplitKey(`dangling\`)
	assert.False(t, ok)
}

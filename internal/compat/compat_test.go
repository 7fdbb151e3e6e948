package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemverMatcher(t *testing.T) {
	testCases := []struct {
		name      string
		version   string
		rng       string
		expected  bool
		expectErr bool
	}{
		{name: "exact major", version: "1", rng: "=1", expected: true},
		{name: "full version in major", version: "1.4.2", rng: "=1", expected: true},
		{name: "wrong major", version: "2", rng: "=1", expected: false},
		{name: "caret range", version: "1.9.0", rng: "^1.2", expected: true},
		{name: "below range", version: "1.1.0", rng: ">=1.2.0", expected: false},
		{name: "bad version", version: "one", rng: "=1", expectErr: true},
		{name: "bad range", version: "1", rng: "not a range", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := SemverMatcher{}.Satisfies(tc.version, tc.rng)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ok)
		})
	}
}

func TestRules(t *testing.T) {
	rules := DefaultRules()
	rng, ok := rules.Lookup("Extension")
	assert.True(t, ok)
	assert.Equal(t, "=1", rng)

	_, ok = rules.Lookup("my-extension")
	assert.False(t, ok, "rules are keyed by core kind names only")

	merged := rules.Merge(Rules{"Extension": ">=1, <3", "Note": "=2"})
	assert.Equal(t, ">=1, <3", merged["Extension"])
	assert.Equal(t, "=2", merged["Note"])
	assert.Equal(t, "=1", rules["Extension"], "Merge must not modify the receiver")

	require.NoError(t, merged.Validate())
	assert.Error(t, Rules{"Node": "not a range"}.Validate())
}

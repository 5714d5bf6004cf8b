package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		expected   Descriptors
	}{
		{
			name:       "exact version accepts no future releases",
			constraint: "1.2.3",
			expected:   Descriptors{},
		},
		{
			name:       "tilde accepts future patches",
			constraint: "~1.2.3",
			expected:   Descriptors{Patch: true},
		},
		{
			name:       "caret accepts future minors and patches",
			constraint: "^1.2.3",
			expected:   Descriptors{Minor: true, Patch: true},
		},
		{
			name:       "unbounded floor accepts everything",
			constraint: ">=1.2.3",
			expected:   Descriptors{Major: true, Minor: true, Patch: true},
		},
		{
			name:       "wildcard accepts everything",
			constraint: "*",
			expected:   Descriptors{Major: true, Minor: true, Patch: true},
		},
		{
			name:       "pre-1.0 caret is a dev constraint",
			constraint: "^0.2.3",
			expected:   Descriptors{Dev: true, Patch: true},
		},
		{
			name:       "below first stable is a dev constraint",
			constraint: "<1.0.0",
			expected:   Descriptors{Dev: true, Minor: true, Patch: true},
		},
		{
			name:       "stranded prerelease is empty",
			constraint: "1.2.3-beta.1",
			expected:   Descriptors{Empty: true},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			interval, err := npmParser{}.Parse(test.constraint)
			require.NoError(t, err)
			assert.Equal(t, test.expected, Describe(interval))
		})
	}
}

func TestDescribeEmpty(t *testing.T) {
	assert.Equal(t, Descriptors{Empty: true}, Describe(Empty()))
}

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNpmParser(t *testing.T) {
	tests := []struct {
		constraint string
		expected   string
		wantErr    bool
	}{
		// exact and bare versions
		{constraint: "1.2.3", expected: "[1.2.3, 1.2.4)"},
		{constraint: "=1.2.3", expected: "[1.2.3, 1.2.4)"},
		{constraint: "==1.2.3", expected: "[1.2.3, 1.2.4)"},
		{constraint: "v1.2.3", expected: "[1.2.3, 1.2.4)"},
		// partial versions span their written precision
		{constraint: "1.2", expected: "[1.2.0, 1.3.0)"},
		{constraint: "1", expected: "[1.0.0, 2.0.0)"},
		// x-ranges
		{constraint: "1.2.x", expected: "[1.2.0, 1.3.0)"},
		{constraint: "1.x", expected: "[1.0.0, 2.0.0)"},
		{constraint: "1.X.3", expected: "[1.0.0, 2.0.0)"},
		{constraint: "*", expected: "[0.0.0, inf.inf.inf)"},
		// caret
		{constraint: "^1.2.3", expected: "[1.2.3, 2.0.0)"},
		{constraint: "^0.2.3", expected: "[0.2.3, 0.3.0)"},
		{constraint: "^0.0.3", expected: "[0.0.3, 0.0.4)"},
		{constraint: "^0", expected: "[0.0.0, 1.0.0)"},
		{constraint: "^0.0", expected: "[0.0.0, 0.1.0)"},
		// tilde
		{constraint: "~1.2.3", expected: "[1.2.3, 1.3.0)"},
		{constraint: "~1.2", expected: "[1.2.0, 1.3.0)"},
		{constraint: "~1", expected: "[1.0.0, 2.0.0)"},
		// comparison operators honor the written precision
		{constraint: ">=1.2.3", expected: "[1.2.3, inf.inf.inf)"},
		{constraint: ">1.2.3", expected: "[1.2.4, inf.inf.inf)"},
		{constraint: ">1.2", expected: "[1.3.0, inf.inf.inf)"},
		{constraint: "<2.0.0", expected: "[0.0.0, 2.0.0)"},
		{constraint: "<=2.0.0", expected: "[0.0.0, 2.0.1)"},
		{constraint: "<=2.0", expected: "[0.0.0, 2.1.0)"},
		// comparator sets intersect
		{constraint: ">=1.2.3 <2.0.0", expected: "[1.2.3, 2.0.0)"},
		{constraint: ">= 1.2.3 < 2.0.0", expected: "[1.2.3, 2.0.0)"},
		{constraint: ">=1.2.3 <1.0.0", expected: "(empty)"},
		// hyphen ranges have an inclusive upper side
		{constraint: "1.2.3 - 2.3.4", expected: "[1.2.3, 2.3.5)"},
		{constraint: "1.2.3 - 2.3", expected: "[1.2.3, 2.4.0)"},
		// OR
		{constraint: "^1.2.3 || ^3.0.0", expected: "[1.2.3, 2.0.0) || [3.0.0, 4.0.0)"},
		{constraint: "^1.2.3 || ^2.0.0", expected: "[1.2.3, 3.0.0)"},
		{constraint: "<1.0.0 || >=2.0.0", expected: "[0.0.0, 1.0.0) || [2.0.0, inf.inf.inf)"},
		// prerelease references project onto the stable release space
		{constraint: ">=1.2.3-beta.1", expected: "[1.2.3, inf.inf.inf)"},
		{constraint: "<=1.2.3-beta.1", expected: "[0.0.0, 1.2.3)"},
		{constraint: "1.2.3-beta.1", expected: "(empty)"},
		// malformed
		{constraint: "", wantErr: true},
		{constraint: "   ", wantErr: true},
		{constraint: "latest", wantErr: true},
		{constraint: "1.2.3.4", wantErr: true},
		{constraint: "~=1.2.3", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.constraint, func(t *testing.T) {
			actual, err := npmParser{}.Parse(test.constraint)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, actual.String())
		})
	}
}

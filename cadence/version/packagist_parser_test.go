package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackagistParser(t *testing.T) {
	tests := []struct {
		constraint string
		expected   string
		wantErr    bool
	}{
		// equality zero-fills
		{constraint: "1.2.3", expected: "[1.2.3, 1.2.4)"},
		{constraint: "1.2", expected: "[1.2.0, 1.2.1)"},
		{constraint: "=1.2", expected: "[1.2.0, 1.2.1)"},
		{constraint: "v1.2.3", expected: "[1.2.3, 1.2.4)"},
		// wildcards span their precision
		{constraint: "1.2.*", expected: "[1.2.0, 1.3.0)"},
		{constraint: "1.*", expected: "[1.0.0, 2.0.0)"},
		{constraint: "*", expected: "[0.0.0, inf.inf.inf)"},
		// caret
		{constraint: "^1.2.3", expected: "[1.2.3, 2.0.0)"},
		{constraint: "^0.3", expected: "[0.3.0, 0.4.0)"},
		// composer tilde drops the last written digit
		{constraint: "~1.2", expected: "[1.2.0, 2.0.0)"},
		{constraint: "~1.2.3", expected: "[1.2.3, 1.3.0)"},
		// not-equal carves a hole
		{constraint: "!=1.2.3", expected: "[0.0.0, 1.2.3) || [1.2.4, inf.inf.inf)"},
		{constraint: "<>1.2.3", expected: "[0.0.0, 1.2.3) || [1.2.4, inf.inf.inf)"},
		// comparisons zero-fill
		{constraint: ">=1.2", expected: "[1.2.0, inf.inf.inf)"},
		{constraint: ">1.2", expected: "[1.2.1, inf.inf.inf)"},
		{constraint: "<2.0", expected: "[0.0.0, 2.0.0)"},
		{constraint: "<=2.0", expected: "[0.0.0, 2.0.1)"},
		// AND by comma or space
		{constraint: ">=1.2 <2.0", expected: "[1.2.0, 2.0.0)"},
		{constraint: ">=1.2,<2.0", expected: "[1.2.0, 2.0.0)"},
		{constraint: ">= 1.2, < 2.0", expected: "[1.2.0, 2.0.0)"},
		// OR by pipe or double pipe
		{constraint: "~1.2 | ~2.0", expected: "[1.2.0, 3.0.0)"},
		{constraint: "^1.0 || ^3.0", expected: "[1.0.0, 2.0.0) || [3.0.0, 4.0.0)"},
		{constraint: ">=1.0 <1.1 || >=1.2", expected: "[1.0.0, 1.1.0) || [1.2.0, inf.inf.inf)"},
		// hyphen ranges have an inclusive upper side
		{constraint: "1.0 - 2.0", expected: "[1.0.0, 2.1.0)"},
		{constraint: "1.0.0 - 2.1.0", expected: "[1.0.0, 2.1.1)"},
		// prerelease references project onto the stable release space
		{constraint: ">=1.2.3-beta", expected: "[1.2.3, inf.inf.inf)"},
		{constraint: "1.2.3-beta", expected: "(empty)"},
		// malformed
		{constraint: "", wantErr: true},
		{constraint: "@dev", wantErr: true},
		{constraint: "one.two", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.constraint, func(t *testing.T) {
			actual, err := packagistParser{}.Parse(test.constraint)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, actual.String())
		})
	}
}

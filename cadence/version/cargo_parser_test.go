package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCargoParser(t *testing.T) {
	tests := []struct {
		constraint string
		expected   string
		wantErr    bool
	}{
		// a bare requirement is a caret requirement
		{constraint: "1.2.3", expected: "[1.2.3, 2.0.0)"},
		{constraint: "1.2", expected: "[1.2.0, 2.0.0)"},
		{constraint: "1", expected: "[1.0.0, 2.0.0)"},
		{constraint: "0.2.3", expected: "[0.2.3, 0.3.0)"},
		{constraint: "0.0.3", expected: "[0.0.3, 0.0.4)"},
		{constraint: "0.0", expected: "[0.0.0, 0.1.0)"},
		{constraint: "0", expected: "[0.0.0, 1.0.0)"},
		// explicit caret is the same thing
		{constraint: "^1.2.3", expected: "[1.2.3, 2.0.0)"},
		{constraint: "^0.2", expected: "[0.2.0, 0.3.0)"},
		// tilde
		{constraint: "~1.2.3", expected: "[1.2.3, 1.3.0)"},
		{constraint: "~1.2", expected: "[1.2.0, 1.3.0)"},
		{constraint: "~1", expected: "[1.0.0, 2.0.0)"},
		// wildcards span their written precision
		{constraint: "*", expected: "[0.0.0, inf.inf.inf)"},
		{constraint: "1.*", expected: "[1.0.0, 2.0.0)"},
		{constraint: "1.2.*", expected: "[1.2.0, 1.3.0)"},
		// equality pins the written precision rather than caret-extending
		{constraint: "=1.2.3", expected: "[1.2.3, 1.2.4)"},
		{constraint: "=1.2", expected: "[1.2.0, 1.3.0)"},
		// comparison requirements zero-fill
		{constraint: ">=1.2", expected: "[1.2.0, inf.inf.inf)"},
		{constraint: ">1.2", expected: "[1.2.1, inf.inf.inf)"},
		{constraint: "<2", expected: "[0.0.0, 2.0.0)"},
		{constraint: "<=2.1", expected: "[0.0.0, 2.1.1)"},
		// comma-separated requirements intersect
		{constraint: ">=1.2, <1.5", expected: "[1.2.0, 1.5.0)"},
		{constraint: ">=1.2.3, <2.0.0, !=1.4.0", wantErr: true}, // cargo has no !=
		{constraint: ">2.0, <1.0", expected: "(empty)"},
		// malformed
		{constraint: "", wantErr: true},
		{constraint: "1.2.3 || 1.5", wantErr: true}, // cargo has no OR
		{constraint: "1.2,", wantErr: true},
		{constraint: "abc", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.constraint, func(t *testing.T) {
			actual, err := cargoParser{}.Parse(test.constraint)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, actual.String())
		})
	}
}

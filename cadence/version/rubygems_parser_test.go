package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRubygemsParser(t *testing.T) {
	tests := []struct {
		constraint string
		expected   string
		wantErr    bool
	}{
		// equality zero-fills
		{constraint: "1.2.3", expected: "[1.2.3, 1.2.4)"},
		{constraint: "1.2", expected: "[1.2.0, 1.2.1)"},
		{constraint: "= 1.2.3", expected: "[1.2.3, 1.2.4)"},
		// the pessimistic operator drops the last written digit
		{constraint: "~> 1.2", expected: "[1.2.0, 2.0.0)"},
		{constraint: "~> 1.2.3", expected: "[1.2.3, 1.3.0)"},
		{constraint: "~>1.2.3", expected: "[1.2.3, 1.3.0)"},
		// comparisons zero-fill
		{constraint: ">= 1.0", expected: "[1.0.0, inf.inf.inf)"},
		{constraint: "> 1.2", expected: "[1.2.1, inf.inf.inf)"},
		{constraint: "< 2.0", expected: "[0.0.0, 2.0.0)"},
		{constraint: "<= 2.0", expected: "[0.0.0, 2.0.1)"},
		// not-equal carves a hole
		{constraint: "!= 1.2.0", expected: "[0.0.0, 1.2.0) || [1.2.1, inf.inf.inf)"},
		// comma-separated requirements intersect
		{constraint: ">= 1.0, < 2.0", expected: "[1.0.0, 2.0.0)"},
		{constraint: ">= 1.0, < 2.0, != 1.5.0", expected: "[1.0.0, 1.5.0) || [1.5.1, 2.0.0)"},
		{constraint: "~> 1.2, >= 1.2.5", expected: "[1.2.5, 2.0.0)"},
		// prerelease references project onto the stable release space
		{constraint: ">= 1.2.3-beta", expected: "[1.2.3, inf.inf.inf)"},
		{constraint: "1.2.3.beta", wantErr: true},
		// gems have no wildcard syntax and no OR
		{constraint: "1.*", wantErr: true},
		{constraint: "*", wantErr: true},
		{constraint: "~> 1.2 || ~> 2.0", wantErr: true},
		// malformed
		{constraint: "", wantErr: true},
		{constraint: "1.2,", wantErr: true},
		{constraint: "latest", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.constraint, func(t *testing.T) {
			actual, err := rubygemsParser{}.Parse(test.constraint)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, actual.String())
		})
	}
}

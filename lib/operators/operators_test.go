package operators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
	}{
		{"PIONEER NATURAL RESOURCES USA INC", "ExxonMobil/Pioneer"},
		{"XTO ENERGY INC.", "ExxonMobil/Pioneer"},
		{"chevron u.s.a. inc.", "Chevron"},
		{"DIAMONDBACK E&P LLC", "Diamondback"},
		{"CIMAREX ENERGY CO", "Coterra"},
		{"SOME TINY OPERATOR LLC", Other},
		{"", Other},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, Classify(test.name), "name: %q", test.name)
	}
}

func TestClassifyFuzzy(t *testing.T) {
	// near-exact filings still classify, unrelated names never do
	require.Equal(t, "ConocoPhillips", Classify("CONOCOPHILLIPS."))
	require.Equal(t, Other, Classify("ZEPHYR MIDSTREAM PARTNERS"))
}

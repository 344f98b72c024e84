package setam

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ps-vitor/setam-sys/backend/internal/domain"
	client "github.com/ps-vitor/setam-sys/backend/internal/scrapers/setam"
)

func TestNormalizeFragments(t *testing.T) {
	require.Equal(t, []string{"a", "b c"}, NormalizeFragments([]string{"  a\n", "", " \t ", "b c "}))
	require.Empty(t, NormalizeFragments(nil))
}

func TestParsePair(t *testing.T) {
	pair, err := ParsePair([]string{"\n  ", "Стартова ціна:", " ", "125 000,00 грн", "extra"})
	require.NoError(t, err)
	require.Equal(t, domain.Pair{Label: "Стартова ціна:", Value: "125 000,00 грн"}, pair)

	_, err = ParsePair([]string{"Стартова ціна:", "   "})
	require.Error(t, err)

	_, err = ParsePair(nil)
	require.Error(t, err)
}

func TestTextFragmentsVsOwnText(t *testing.T) {
	doc, err := client.BuildTree(`<p>Лот <b>101</b> продано</p>`)
	require.NoError(t, err)
	p := doc.Find("p")

	require.Equal(t, []string{"Лот ", "101", " продано"}, TextFragments(p))
	require.Equal(t, []string{"Лот ", " продано"}, OwnTextFragments(p))
}

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/districtlens/districtlens/internal/classify"
)

// TestThemeCoversClassifierTokens keeps the theme in lockstep with the
// classifier: every token the classifier can emit must be styled.
func TestThemeCoversClassifierTokens(t *testing.T) {
	styles := DefaultStyles()

	var tokens []string
	for _, r := range classify.PoliticalOutcome().Rules() {
		tokens = append(tokens, r.Token)
	}
	tokens = append(tokens,
		classify.ClassifyFeasibility(true).Token,
		classify.ClassifyFeasibility(false).Token,
	)
	for _, race := range classify.Races {
		c, err := race.Classification()
		require.NoError(t, err)
		tokens = append(tokens, c.Token)
	}
	for _, region := range classify.Regions {
		c, err := region.Classification()
		require.NoError(t, err)
		tokens = append(tokens, c.Token)
	}
	for _, party := range classify.Parties {
		c, err := party.Classification()
		require.NoError(t, err)
		tokens = append(tokens, c.Token)
	}

	for _, tok := range tokens {
		assert.True(t, styles.Known(tok), "token %s has no style", tok)
	}
}

func TestResolveUnknownTokenFallsBack(t *testing.T) {
	styles := DefaultStyles()

	// An unknown token degrades to the neutral style; it must not panic
	// and must still render the label.
	st := styles.Resolve("token-from-the-future")
	assert.Equal(t, "label", st.Render("label"))
}

func TestBadgeRendersLabel(t *testing.T) {
	styles := Styles{}
	c := classify.ClassifyFeasibility(true)
	assert.Equal(t, "Feasible", styles.Badge(c))
}

package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/districtlens/districtlens/internal/classify"
)

// Styles is the token registry: it resolves classifier style tokens and
// carries the structural styles shared by tables and the TUI.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Muted    lipgloss.Style
	Fallback lipgloss.Style

	tokens map[string]lipgloss.Style
}

// DefaultStyles returns the stock districtlens theme.
func DefaultStyles() Styles {
	var (
		demBlue   = lipgloss.Color("#2166ac")
		leanBlue  = lipgloss.Color("#67a9cf")
		purple    = lipgloss.Color("#9970ab")
		leanRed   = lipgloss.Color("#ef8a62")
		repRed    = lipgloss.Color("#b2182b")
		green     = lipgloss.Color("#1b7837")
		grey      = lipgloss.Color("#878787")
		urbanHue  = lipgloss.Color("#54278f")
		subHue    = lipgloss.Color("#756bb1")
		ruralHue  = lipgloss.Color("#2c7fb8")
		raceHues  = map[string]lipgloss.Color{
			"race-black":    lipgloss.Color("#e41a1c"),
			"race-white":    lipgloss.Color("#377eb8"),
			"race-hispanic": lipgloss.Color("#4daf4a"),
			"race-asian":    lipgloss.Color("#984ea3"),
			"race-other":    lipgloss.Color("#ff7f00"),
		}
	)

	tokens := map[string]lipgloss.Style{
		classify.TokenDemWon:     lipgloss.NewStyle().Foreground(demBlue).Bold(true),
		classify.TokenLeanDem:    lipgloss.NewStyle().Foreground(leanBlue),
		classify.TokenContested:  lipgloss.NewStyle().Foreground(purple),
		classify.TokenLeanRep:    lipgloss.NewStyle().Foreground(leanRed),
		classify.TokenRepWon:     lipgloss.NewStyle().Foreground(repRed).Bold(true),
		classify.TokenFeasible:   lipgloss.NewStyle().Foreground(green).Bold(true),
		classify.TokenInfeasible: lipgloss.NewStyle().Foreground(grey),
		"region-urban":           lipgloss.NewStyle().Foreground(urbanHue),
		"region-suburban":        lipgloss.NewStyle().Foreground(subHue),
		"region-rural":           lipgloss.NewStyle().Foreground(ruralHue),
		"party-dem":              lipgloss.NewStyle().Foreground(demBlue),
		"party-rep":              lipgloss.NewStyle().Foreground(repRed),
	}
	for tok, hue := range raceHues {
		tokens[tok] = lipgloss.NewStyle().Foreground(hue)
	}

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Header:   lipgloss.NewStyle().Bold(true).Underline(true),
		Cell:     lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle().Faint(true),
		Fallback: lipgloss.NewStyle(),
		tokens:   tokens,
	}
}

// Resolve returns the style for a classifier token. Tokens the theme
// does not know resolve to the neutral fallback style.
func (s Styles) Resolve(token string) lipgloss.Style {
	if st, ok := s.tokens[token]; ok {
		return st
	}
	return s.Fallback
}

// Known reports whether the theme styles the token. Used by tests to
// keep the theme in lockstep with the classifier's token set.
func (s Styles) Known(token string) bool {
	_, ok := s.tokens[token]
	return ok
}

// Badge renders a classification as a styled label.
func (s Styles) Badge(c classify.Classification) string {
	return s.Resolve(c.Token).Render(c.Label)
}

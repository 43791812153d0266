package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/districtlens/districtlens/internal/classify"
	"github.com/districtlens/districtlens/internal/records"
)

// Table is a plain column-aligned table. Rows hold pre-rendered cells;
// width computation uses lipgloss so styled cells align correctly.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render produces the table as text.
func (t *Table) Render(styles Styles) string {
	if len(t.Rows) == 0 {
		return styles.Muted.Render("(no data)") + "\n"
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	for i, h := range t.Headers {
		cell := styles.Header.Render(h)
		if i < len(t.Headers)-1 {
			sb.WriteString(pad(cell, widths[i]))
			sb.WriteString("  ")
		} else {
			sb.WriteString(cell)
		}
	}
	sb.WriteString("\n")

	total := 0
	for _, w := range widths {
		total += w
	}
	total += 2 * (len(t.Headers) - 1)
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			if i < len(row)-1 {
				sb.WriteString(pad(cell, widths[i]))
				sb.WriteString("  ")
			} else {
				sb.WriteString(cell)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// pad right-pads a (possibly styled) cell to the column width.
func pad(cell string, width int) string {
	gap := width - lipgloss.Width(cell)
	if gap <= 0 {
		return cell
	}
	return cell + strings.Repeat(" ", gap)
}

// printer formats population counts with grouped digits (1,234,567).
var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCount renders an integer count with digit grouping.
func FormatCount(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatShare renders a canonical fraction as a percentage with one
// decimal place, the dashboard's display unit.
func FormatShare(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// DemographicsTable renders the per-group population table: VAP counts,
// VAP share, and the Gingles feasibility badge.
func DemographicsTable(state string, groups []records.DemographicGroup, styles Styles) (string, error) {
	t := &Table{
		Title:   fmt.Sprintf("%s - Demographics", state),
		Headers: []string{"Group", "VAP", "VAP %", "Gingles"},
	}
	for _, g := range groups {
		groupC, err := g.Group.Classification()
		if err != nil {
			// Unknown group keys must never render as an unstyled row.
			return "", fmt.Errorf("demographics table: %w", err)
		}
		t.AddRow(
			styles.Badge(groupC),
			FormatCount(g.VAP),
			FormatShare(g.VAPShare),
			styles.Badge(classify.ClassifyFeasibility(g.Feasible)),
		)
	}
	return t.Render(styles), nil
}

// PrecinctOutcomesTable renders per-precinct election outcomes: region
// badge, two-party Democratic share, and the outcome classification
// under the supplied rule set.
func PrecinctOutcomesTable(state string, precincts []records.Precinct, outcome classify.RuleSet, styles Styles) (string, error) {
	t := &Table{
		Title:   fmt.Sprintf("%s - Precinct Outcomes", state),
		Headers: []string{"GeoID", "Region", "Dem Share", "Outcome"},
	}
	for _, p := range precincts {
		regionC, err := p.Region.Classification()
		if err != nil {
			return "", fmt.Errorf("precinct table: %w", err)
		}
		share, err := p.DemShare()
		if err != nil {
			// No two-party votes recorded: show the gap instead of a
			// fabricated 0% share.
			t.AddRow(p.GeoID, styles.Badge(regionC), styles.Muted.Render("n/a"), styles.Muted.Render("No Votes"))
			continue
		}
		outcomeC, err := outcome.Classify(share)
		if err != nil {
			return "", fmt.Errorf("precinct table %s: %w", p.GeoID, err)
		}
		t.AddRow(p.GeoID, styles.Badge(regionC), FormatShare(share), styles.Badge(outcomeC))
	}
	return t.Render(styles), nil
}

// RegionBreakdownTable renders precinct counts and average Democratic
// share per region.
func RegionBreakdownTable(state string, precincts []records.Precinct, styles Styles) (string, error) {
	type agg struct {
		count    int64
		shareSum float64
		shared   int64
	}
	byRegion := map[classify.Region]*agg{}
	for _, p := range precincts {
		a, ok := byRegion[p.Region]
		if !ok {
			a = &agg{}
			byRegion[p.Region] = a
		}
		a.count++
		if share, err := p.DemShare(); err == nil {
			a.shareSum += share
			a.shared++
		}
	}

	t := &Table{
		Title:   fmt.Sprintf("%s - Region Breakdown", state),
		Headers: []string{"Region", "Precincts", "Avg Dem Share"},
	}
	for _, region := range classify.Regions {
		a, ok := byRegion[region]
		if !ok {
			continue
		}
		regionC, err := region.Classification()
		if err != nil {
			return "", fmt.Errorf("region table: %w", err)
		}
		avg := styles.Muted.Render("n/a")
		if a.shared > 0 {
			avg = FormatShare(a.shareSum / float64(a.shared))
		}
		t.AddRow(styles.Badge(regionC), FormatCount(a.count), avg)
	}
	return t.Render(styles), nil
}

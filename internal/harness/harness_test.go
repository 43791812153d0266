package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/districtlens/districtlens/internal/config"
)

func TestRunInlineScenario(t *testing.T) {
	s := &Scenario{
		Name: "inline",
		Steps: []Step{
			{Op: OpSelectSection, Arg: "precincts"},
			{Op: OpSelectSubsection, Arg: "prec-regions"},
			{Op: OpClassifyShare, Value: 0.50, ExpectLabel: "Contested"},
			{Op: OpClassifyGroup, Arg: "black", ExpectToken: "race-black"},
		},
	}
	result, err := Run(s, config.Default())
	require.NoError(t, err)
	require.True(t, result.Passed(), "failures: %v", result.Failures)
	require.Len(t, result.Trace, 4)

	assert.Equal(t, "precincts", result.Trace[0].Section)
	assert.Equal(t, "prec-outcomes", result.Trace[0].Subsection, "entering a section lands on its first subsection")
	assert.Equal(t, "prec-regions", result.Trace[1].Subsection)
	assert.Equal(t, "Contested", result.Trace[2].Label)
	assert.Equal(t, "race-black", result.Trace[3].Token)
}

func TestRunContinuesPastRejectedSteps(t *testing.T) {
	s := &Scenario{
		Name: "rejections",
		Steps: []Step{
			{Op: OpSelectSection, Arg: "nope", ExpectError: "unknown_section"},
			{Op: OpClassifyShare, Value: 1.5, ExpectError: "domain_range"},
			{Op: OpClassifyRegion, Arg: "exurban", ExpectError: "unknown_category"},
			{Op: OpSelectSection, Arg: "ensemble"},
		},
	}
	result, err := Run(s, config.Default())
	require.NoError(t, err)
	require.True(t, result.Passed(), "failures: %v", result.Failures)

	// The rejected section selection left the initial state in place.
	assert.Equal(t, "overview", result.Trace[0].Section)
	assert.False(t, result.Trace[0].OK)

	// Execution continued to the final valid step.
	assert.Equal(t, "ensemble", result.Trace[3].Section)
	assert.True(t, result.Trace[3].OK)
}

func TestExpectationMismatchIsFailure(t *testing.T) {
	s := &Scenario{
		Name: "mismatch",
		Steps: []Step{
			{Op: OpClassifyShare, Value: 0.50, ExpectLabel: "Dem-Won"},
			{Op: OpSelectSection, Arg: "overview", ExpectError: "unknown_section"},
		},
	}
	result, err := Run(s, config.Default())
	require.NoError(t, err)
	assert.False(t, result.Passed())
	assert.Len(t, result.Failures, 2)
}

func TestRunUnknownRuleSet(t *testing.T) {
	s := &Scenario{
		Name:    "bad-ruleset",
		RuleSet: "does-not-exist",
		Steps:   []Step{{Op: OpClassifyShare, Value: 0.5}},
	}
	_, err := Run(s, config.Default())
	require.Error(t, err)
}

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name string
		s    Scenario
	}{
		{"missing name", Scenario{Steps: []Step{{Op: OpToggleCollapsed}}}},
		{"no steps", Scenario{Name: "x"}},
		{"unknown op", Scenario{Name: "x", Steps: []Step{{Op: "jump"}}}},
		{"missing arg", Scenario{Name: "x", Steps: []Step{{Op: OpSelectSection}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.s.Validate())
		})
	}
}

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "nav_walk.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "nav-walk", s.Name)
	assert.Len(t, s.Steps, 10)
}

func TestGoldenNavWalk(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "nav_walk.yaml"))
	require.NoError(t, err)
	require.NoError(t, RunWithGolden(t, s, config.Default()))
}

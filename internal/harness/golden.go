package harness

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/districtlens/districtlens/internal/config"
)

// Snapshot is the serialized form of a scenario run compared against
// golden files.
type Snapshot struct {
	ScenarioName string       `json:"scenario_name"`
	Trace        []TraceEvent `json:"trace"`
}

// RunWithGolden executes a scenario and compares its trace against the
// golden file testdata/golden/{scenario.Name}.golden.
//
// Returns an error if execution fails or an expectation in the scenario
// is violated; trace drift surfaces as a goldie test failure. To
// regenerate golden files after an intentional behavior change:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario, dash *config.Dashboard) error {
	t.Helper()

	result, err := Run(scenario, dash)
	if err != nil {
		return err
	}
	if !result.Passed() {
		return fmt.Errorf("scenario %s: %d expectation failure(s): %v",
			scenario.Name, len(result.Failures), result.Failures)
	}

	snapshot := Snapshot{ScenarioName: scenario.Name, Trace: result.Trace}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)
	return nil
}

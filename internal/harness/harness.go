package harness

import (
	"fmt"
	"strconv"

	"github.com/districtlens/districtlens/internal/classify"
	"github.com/districtlens/districtlens/internal/config"
	"github.com/districtlens/districtlens/internal/nav"
)

// TraceEvent records one executed step: the operation, its outcome, and
// the navigation state afterwards. Field order is the golden file's
// serialization order.
type TraceEvent struct {
	Step       int     `json:"step"`
	Op         string  `json:"op"`
	Arg        string  `json:"arg,omitempty"`
	Value      float64 `json:"value,omitempty"`
	OK         bool    `json:"ok"`
	Error      string  `json:"error,omitempty"`
	Section    string  `json:"section"`
	Subsection string  `json:"subsection,omitempty"`
	Collapsed  bool    `json:"collapsed"`
	Label      string  `json:"label,omitempty"`
	Token      string  `json:"token,omitempty"`
}

// Result is a completed scenario run.
type Result struct {
	Trace []TraceEvent

	// Failures lists expectation mismatches ("step 3: expected label X,
	// got Y"). A scenario with failures ran to completion; failures are
	// assertion results, not execution errors.
	Failures []string
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool { return len(r.Failures) == 0 }

// Run executes a scenario against a dashboard configuration.
//
// Execution is total: a step that fails (e.g. a deliberately stale
// subsection selection) records its error code in the trace and the run
// continues, mirroring how the UI recovers from rejected transitions.
// Only a malformed scenario (unknown rule set) aborts the run.
func Run(scenario *Scenario, dash *config.Dashboard) (*Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	ruleSetName := scenario.RuleSet
	if ruleSetName == "" {
		ruleSetName = config.RuleSetPoliticalOutcome
	}
	ruleSet, err := dash.RuleSet(ruleSetName)
	if err != nil {
		return nil, err
	}

	model := nav.NewModel(dash.Nav)
	result := &Result{}

	for i, step := range scenario.Steps {
		ev := TraceEvent{Step: i, Op: step.Op, Arg: step.Arg, Value: step.Value}

		var c classify.Classification
		var stepErr error
		switch step.Op {
		case OpSelectSection:
			stepErr = model.SelectSection(step.Arg)
		case OpSelectSubsection:
			stepErr = model.SelectSubsection(step.Arg)
		case OpToggleCollapsed:
			model.ToggleCollapsed()
		case OpClassifyShare:
			c, stepErr = ruleSet.Classify(step.Value)
		case OpClassifyGroup:
			c, stepErr = classifyParsed(step.Arg, func(k string) (classifier, error) {
				r, err := classify.ParseRace(k)
				return r, err
			})
		case OpClassifyRegion:
			c, stepErr = classifyParsed(step.Arg, func(k string) (classifier, error) {
				r, err := classify.ParseRegion(k)
				return r, err
			})
		case OpClassifyParty:
			c, stepErr = classifyParsed(step.Arg, func(k string) (classifier, error) {
				p, err := classify.ParseParty(k)
				return p, err
			})
		case OpClassifyFeasibility:
			feasible, parseErr := strconv.ParseBool(step.Arg)
			if parseErr != nil {
				stepErr = fmt.Errorf("classify_feasibility: %w", parseErr)
			} else {
				c = classify.ClassifyFeasibility(feasible)
			}
		}

		ev.OK = stepErr == nil
		ev.Error = errorCode(stepErr)
		ev.Label = c.Label
		ev.Token = c.Token

		state := model.State()
		ev.Section = state.ActiveSection
		ev.Subsection = state.ActiveSubsection
		ev.Collapsed = state.Collapsed

		result.Trace = append(result.Trace, ev)
		checkExpectations(result, i, step, ev)
	}

	return result, nil
}

// classifier is the common shape of the closed category enumerations.
type classifier interface {
	Classification() (classify.Classification, error)
}

func classifyParsed(key string, parse func(string) (classifier, error)) (classify.Classification, error) {
	v, err := parse(key)
	if err != nil {
		return classify.Classification{}, err
	}
	return v.Classification()
}

func checkExpectations(result *Result, i int, step Step, ev TraceEvent) {
	if step.ExpectError != "" {
		if ev.OK {
			result.Failures = append(result.Failures,
				fmt.Sprintf("step %d: expected error %q, step succeeded", i, step.ExpectError))
		} else if ev.Error != step.ExpectError {
			result.Failures = append(result.Failures,
				fmt.Sprintf("step %d: expected error %q, got %q", i, step.ExpectError, ev.Error))
		}
		return
	}
	if !ev.OK {
		result.Failures = append(result.Failures,
			fmt.Sprintf("step %d: unexpected error %q", i, ev.Error))
		return
	}
	if step.ExpectLabel != "" && ev.Label != step.ExpectLabel {
		result.Failures = append(result.Failures,
			fmt.Sprintf("step %d: expected label %q, got %q", i, step.ExpectLabel, ev.Label))
	}
	if step.ExpectToken != "" && ev.Token != step.ExpectToken {
		result.Failures = append(result.Failures,
			fmt.Sprintf("step %d: expected token %q, got %q", i, step.ExpectToken, ev.Token))
	}
}

// errorCode maps a step error to its stable trace code.
func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case nav.IsUnknownSectionError(err):
		return "unknown_section"
	case nav.IsInvalidSubsectionError(err):
		return "invalid_subsection"
	case classify.IsDomainRangeError(err):
		return "domain_range"
	case classify.IsUnknownCategoryError(err):
		return "unknown_category"
	default:
		return "error"
	}
}

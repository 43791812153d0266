package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario scripts a sequence of operations against the navigation
// model and the classifier.
type Scenario struct {
	// Name uniquely identifies this scenario; it is also the golden
	// file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// RuleSet names the rule set used by classify_share steps.
	// Defaults to "political-outcome".
	RuleSet string `yaml:"ruleset,omitempty"`

	// Steps is the operation sequence.
	Steps []Step `yaml:"steps"`
}

// Step is one scripted operation.
type Step struct {
	// Op is the operation: select_section, select_subsection,
	// toggle_collapsed, classify_share, classify_group,
	// classify_region, classify_party, classify_feasibility.
	Op string `yaml:"op"`

	// Arg is the string argument (section id, category key,
	// "true"/"false" for classify_feasibility).
	Arg string `yaml:"arg,omitempty"`

	// Value is the numeric argument for classify_share.
	Value float64 `yaml:"value,omitempty"`

	// ExpectLabel asserts the classification label produced.
	ExpectLabel string `yaml:"expect_label,omitempty"`

	// ExpectToken asserts the style token produced.
	ExpectToken string `yaml:"expect_token,omitempty"`

	// ExpectError asserts the step fails with the given error code
	// (unknown_section, invalid_subsection, domain_range,
	// unknown_category). A step with ExpectError set that succeeds is a
	// scenario failure.
	ExpectError string `yaml:"expect_error,omitempty"`
}

// Operation codes accepted in Step.Op.
const (
	OpSelectSection       = "select_section"
	OpSelectSubsection    = "select_subsection"
	OpToggleCollapsed     = "toggle_collapsed"
	OpClassifyShare       = "classify_share"
	OpClassifyGroup       = "classify_group"
	OpClassifyRegion      = "classify_region"
	OpClassifyParty       = "classify_party"
	OpClassifyFeasibility = "classify_feasibility"
)

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks structural requirements before execution.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("at least one step is required")
	}
	for i, step := range s.Steps {
		switch step.Op {
		case OpSelectSection, OpSelectSubsection:
			if step.Arg == "" {
				return fmt.Errorf("step %d: %s requires arg", i, step.Op)
			}
		case OpToggleCollapsed, OpClassifyShare:
			// no string argument
		case OpClassifyGroup, OpClassifyRegion, OpClassifyParty, OpClassifyFeasibility:
			if step.Arg == "" {
				return fmt.Errorf("step %d: %s requires arg", i, step.Op)
			}
		default:
			return fmt.Errorf("step %d: unknown op %q", i, step.Op)
		}
	}
	return nil
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/districtlens/districtlens/internal/classify"
	"github.com/districtlens/districtlens/internal/config"
)

// ClassifyOptions holds flags for the classify command.
type ClassifyOptions struct {
	*RootOptions
	RuleSet string // rule set for share classification
}

// classifyResult is the JSON payload for a classification.
type classifyResult struct {
	Kind  string `json:"kind"`
	Input string `json:"input"`
	Label string `json:"label"`
	Token string `json:"token"`
}

// NewClassifyCommand creates the classify command.
func NewClassifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ClassifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "classify <kind> <value>",
		Short: "Classify a single value",
		Long: `Classify one value and print its label and style token.

Kinds:
  share        two-party Democratic vote share as a percentage (0-100)
  race         demographic group key (black|white|hispanic|asian|other)
  region       region key (urban|suburban|rural)
  party        party key (Democratic|Republican)
  feasibility  Gingles feasibility flag (true|false)

Examples:
  districtlens classify share 52.4
  districtlens classify share 48 --rule-set political-outcome
  districtlens classify region suburban
  districtlens classify feasibility true`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.RuleSet, "rule-set", config.RuleSetPoliticalOutcome, "rule set used for share classification")

	return cmd
}

func runClassify(opts *ClassifyOptions, kind, value string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	c, err := classifyOne(opts, kind, value, formatter)
	if err != nil {
		_ = formatter.Error(classifyErrorCode(err), err.Error(), nil)
		return WrapExitError(ExitFailure, "classification failed", err)
	}

	if opts.Format == "json" {
		return formatter.Success(classifyResult{Kind: kind, Input: value, Label: c.Label, Token: c.Token})
	}
	fmt.Fprintf(formatter.Writer, "%s (%s)\n", c.Label, c.Token)
	return nil
}

func classifyOne(opts *ClassifyOptions, kind, value string, formatter *OutputFormatter) (classify.Classification, error) {
	switch kind {
	case "share":
		pct, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return classify.Classification{}, fmt.Errorf("share must be a number: %q", value)
		}
		frac, err := classify.FromPercent(pct)
		if err != nil {
			return classify.Classification{}, err
		}
		dash, err := loadDashboard(opts.RootOptions)
		if err != nil {
			return classify.Classification{}, err
		}
		rs, err := dash.RuleSet(opts.RuleSet)
		if err != nil {
			return classify.Classification{}, err
		}
		formatter.VerboseLog("classifying %.4f against rule set %s", frac, opts.RuleSet)
		return rs.Classify(frac)

	case "race":
		race, err := classify.ParseRace(value)
		if err != nil {
			return classify.Classification{}, err
		}
		return race.Classification()

	case "region":
		region, err := classify.ParseRegion(value)
		if err != nil {
			return classify.Classification{}, err
		}
		return region.Classification()

	case "party":
		party, err := classify.ParseParty(value)
		if err != nil {
			return classify.Classification{}, err
		}
		return party.Classification()

	case "feasibility":
		feasible, err := strconv.ParseBool(value)
		if err != nil {
			return classify.Classification{}, fmt.Errorf("feasibility must be true or false: %q", value)
		}
		return classify.ClassifyFeasibility(feasible), nil

	default:
		return classify.Classification{}, fmt.Errorf("unknown kind %q: must be share, race, region, party, or feasibility", kind)
	}
}

func classifyErrorCode(err error) string {
	switch {
	case classify.IsUnknownCategoryError(err):
		return "E_UNKNOWN_CATEGORY"
	case classify.IsDomainRangeError(err):
		return "E_DOMAIN_RANGE"
	case classify.IsRuleSetError(err):
		return "E_RULE_SET"
	default:
		return "E_CLASSIFY"
	}
}

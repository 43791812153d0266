package config

import (
	"errors"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/token"

	"github.com/districtlens/districtlens/internal/classify"
	"github.com/districtlens/districtlens/internal/nav"
)

// Dashboard is a compiled dashboard configuration: named threshold rule
// sets plus the navigation tree.
type Dashboard struct {
	RuleSets map[string]classify.RuleSet
	Nav      nav.Tree
}

// RuleSet returns the named rule set.
func (d *Dashboard) RuleSet(name string) (classify.RuleSet, error) {
	rs, ok := d.RuleSets[name]
	if !ok {
		return classify.RuleSet{}, &ConfigError{
			Field:   "rulesets",
			Message: fmt.Sprintf("rule set %q not defined", name),
		}
	}
	return rs, nil
}

// ConfigError reports a configuration compilation failure with the CUE
// source position when one is available.
type ConfigError struct {
	// Field is the configuration path that failed ("rulesets", "sections", ...).
	Field string

	// Message describes the failure.
	Message string

	// Pos is the CUE source position, if available.
	Pos token.Pos
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsConfigError returns true if the error is a configuration failure.
// Uses errors.As to handle wrapped errors.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// Compile parses a CUE value holding a dashboard configuration.
//
// Expected shape:
//
//	dashboard: {
//		rulesets: political_outcome: {
//			domain: {min: 0.0, max: 1.0}
//			rules: [{bound: 0.65, label: "Dem-Won", token: "outcome-dem-won"}, ...]
//		}
//		sections: [
//			{id: "overview", label: "State Overview"},
//			{id: "demographics", label: "Demographics", subsections: [...]},
//		]
//	}
//
// The value passed in should be the dashboard struct itself.
func Compile(v cue.Value) (*Dashboard, error) {
	if err := v.Err(); err != nil {
		return nil, &ConfigError{Field: "dashboard", Message: err.Error(), Pos: v.Pos()}
	}

	ruleSets, err := compileRuleSets(v)
	if err != nil {
		return nil, err
	}

	tree, err := compileSections(v)
	if err != nil {
		return nil, err
	}

	return &Dashboard{RuleSets: ruleSets, Nav: tree}, nil
}

func compileRuleSets(v cue.Value) (map[string]classify.RuleSet, error) {
	out := map[string]classify.RuleSet{}

	rsVal := v.LookupPath(cue.ParsePath("rulesets"))
	if !rsVal.Exists() {
		return out, nil
	}
	iter, err := rsVal.Fields()
	if err != nil {
		return nil, &ConfigError{Field: "rulesets", Message: err.Error(), Pos: rsVal.Pos()}
	}
	for iter.Next() {
		name := iter.Label()
		rs, err := compileRuleSet(name, iter.Value())
		if err != nil {
			return nil, err
		}
		out[name] = rs
	}
	return out, nil
}

func compileRuleSet(name string, v cue.Value) (classify.RuleSet, error) {
	domain := classify.FractionDomain
	domVal := v.LookupPath(cue.ParsePath("domain"))
	if domVal.Exists() {
		min, err := lookupFloat(domVal, "min")
		if err != nil {
			return classify.RuleSet{}, &ConfigError{Field: "rulesets." + name + ".domain", Message: err.Error(), Pos: domVal.Pos()}
		}
		max, err := lookupFloat(domVal, "max")
		if err != nil {
			return classify.RuleSet{}, &ConfigError{Field: "rulesets." + name + ".domain", Message: err.Error(), Pos: domVal.Pos()}
		}
		domain = classify.Domain{Min: min, Max: max}
	}

	rulesVal := v.LookupPath(cue.ParsePath("rules"))
	if !rulesVal.Exists() {
		return classify.RuleSet{}, &ConfigError{Field: "rulesets." + name, Message: "rules list is required", Pos: v.Pos()}
	}
	list, err := rulesVal.List()
	if err != nil {
		return classify.RuleSet{}, &ConfigError{Field: "rulesets." + name + ".rules", Message: err.Error(), Pos: rulesVal.Pos()}
	}

	var rules []classify.Rule
	for list.Next() {
		rv := list.Value()
		bound, err := lookupFloat(rv, "bound")
		if err != nil {
			return classify.RuleSet{}, &ConfigError{Field: "rulesets." + name + ".rules", Message: err.Error(), Pos: rv.Pos()}
		}
		label, err := lookupString(rv, "label")
		if err != nil {
			return classify.RuleSet{}, &ConfigError{Field: "rulesets." + name + ".rules", Message: err.Error(), Pos: rv.Pos()}
		}
		tok, err := lookupString(rv, "token")
		if err != nil {
			return classify.RuleSet{}, &ConfigError{Field: "rulesets." + name + ".rules", Message: err.Error(), Pos: rv.Pos()}
		}
		rules = append(rules, classify.Rule{Bound: bound, Label: label, Token: tok})
	}

	rs, err := classify.NewRuleSet(name, domain, rules)
	if err != nil {
		// Rule ordering/totality violations carry the CUE position of the
		// offending rule set definition.
		return classify.RuleSet{}, &ConfigError{Field: "rulesets." + name, Message: err.Error(), Pos: v.Pos()}
	}
	return rs, nil
}

func compileSections(v cue.Value) (nav.Tree, error) {
	secVal := v.LookupPath(cue.ParsePath("sections"))
	if !secVal.Exists() {
		return nav.Tree{}, &ConfigError{Field: "sections", Message: "sections list is required", Pos: v.Pos()}
	}
	list, err := secVal.List()
	if err != nil {
		return nav.Tree{}, &ConfigError{Field: "sections", Message: err.Error(), Pos: secVal.Pos()}
	}

	var sections []nav.Node
	for list.Next() {
		node, err := compileNode(list.Value(), true)
		if err != nil {
			return nav.Tree{}, err
		}
		sections = append(sections, node)
	}

	tree, err := nav.NewTree(sections)
	if err != nil {
		return nav.Tree{}, &ConfigError{Field: "sections", Message: err.Error(), Pos: secVal.Pos()}
	}
	return tree, nil
}

func compileNode(v cue.Value, allowSubsections bool) (nav.Node, error) {
	id, err := lookupString(v, "id")
	if err != nil {
		return nav.Node{}, &ConfigError{Field: "sections", Message: err.Error(), Pos: v.Pos()}
	}
	label, err := lookupString(v, "label")
	if err != nil {
		return nav.Node{}, &ConfigError{Field: "sections." + id, Message: err.Error(), Pos: v.Pos()}
	}
	node := nav.Node{ID: id, Label: label}

	subsVal := v.LookupPath(cue.ParsePath("subsections"))
	if subsVal.Exists() {
		if !allowSubsections {
			return nav.Node{}, &ConfigError{
				Field:   "sections." + id,
				Message: "nesting beyond two levels is not supported",
				Pos:     subsVal.Pos(),
			}
		}
		list, err := subsVal.List()
		if err != nil {
			return nav.Node{}, &ConfigError{Field: "sections." + id + ".subsections", Message: err.Error(), Pos: subsVal.Pos()}
		}
		for list.Next() {
			sub, err := compileNode(list.Value(), false)
			if err != nil {
				return nav.Node{}, err
			}
			node.Subsections = append(node.Subsections, sub)
		}
	}
	return node, nil
}

func lookupFloat(v cue.Value, field string) (float64, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return 0, fmt.Errorf("%s is required", field)
	}
	f, err := fv.Float64()
	if err != nil {
		return 0, fmt.Errorf("%s: %v", field, err)
	}
	return f, nil
}

func lookupString(v cue.Value, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", fmt.Errorf("%s is required", field)
	}
	s, err := fv.String()
	if err != nil {
		return "", fmt.Errorf("%s: %v", field, err)
	}
	if s == "" {
		return "", fmt.Errorf("%s must be non-empty", field)
	}
	return s, nil
}

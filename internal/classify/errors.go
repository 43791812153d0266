package classify

import (
	"errors"
	"fmt"
)

// UnknownCategoryError reports a category key that is not part of the
// closed key set for its kind.
//
// This indicates schema drift between the upstream data producer and the
// classifier (e.g. a new race code added server-side but not yet styled).
// It is not recoverable locally: callers must decide whether to halt or
// render an explicit fallback, but the classifier never defaults silently.
type UnknownCategoryError struct {
	// Kind names the category family ("race", "region", "party").
	Kind string

	// Key is the offending input key.
	Key string
}

// Error implements the error interface.
func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown %s category %q", e.Kind, e.Key)
}

// IsUnknownCategoryError returns true if the error is an unknown category
// lookup. Uses errors.As to handle wrapped errors.
func IsUnknownCategoryError(err error) bool {
	var ce *UnknownCategoryError
	return errors.As(err, &ce)
}

// DomainRangeError reports a threshold input outside the rule set's
// declared domain.
//
// Out-of-range values indicate upstream data corruption (or a caller that
// skipped unit conversion) and are surfaced rather than clamped, since
// clamping would hide the corruption behind a plausible-looking label.
type DomainRangeError struct {
	// RuleSet names the rule set (or conversion) that rejected the value.
	RuleSet string

	// Value is the rejected input.
	Value float64

	// Min and Max describe the declared domain.
	Min float64
	Max float64
}

// Error implements the error interface.
func (e *DomainRangeError) Error() string {
	return fmt.Sprintf("%s: value %v outside domain [%v, %v]", e.RuleSet, e.Value, e.Min, e.Max)
}

// IsDomainRangeError returns true if the error is a domain range
// violation. Uses errors.As to handle wrapped errors.
func IsDomainRangeError(err error) bool {
	var de *DomainRangeError
	return errors.As(err, &de)
}

// RuleSetError reports an invalid rule set definition detected at
// construction time (empty rules, non-descending bounds, or a gap above
// the domain minimum).
type RuleSetError struct {
	// Name identifies the rule set being constructed.
	Name string

	// Message describes the violation.
	Message string
}

// Error implements the error interface.
func (e *RuleSetError) Error() string {
	return fmt.Sprintf("rule set %q: %s", e.Name, e.Message)
}

// IsRuleSetError returns true if the error is a rule set construction
// failure. Uses errors.As to handle wrapped errors.
func IsRuleSetError(err error) bool {
	var re *RuleSetError
	return errors.As(err, &re)
}

package nav

import (
	"errors"
	"fmt"
)

// UnknownSectionError reports a section selection for an id that does not
// exist in the navigation tree.
type UnknownSectionError struct {
	// ID is the rejected section id.
	ID string
}

// Error implements the error interface.
func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown section %q", e.ID)
}

// IsUnknownSectionError returns true if the error is an unknown section
// selection. Uses errors.As to handle wrapped errors.
func IsUnknownSectionError(err error) bool {
	var se *UnknownSectionError
	return errors.As(err, &se)
}

// InvalidSubsectionError reports a subsection selection that does not
// belong to the currently active section.
//
// This is the expected failure for a stale click target: the active
// section changed between the render that produced the click target and
// the click itself. The transition is refused and state left unchanged;
// the caller may re-derive a valid default.
type InvalidSubsectionError struct {
	// Section is the active section at the time of the selection.
	Section string

	// ID is the rejected subsection id.
	ID string
}

// Error implements the error interface.
func (e *InvalidSubsectionError) Error() string {
	return fmt.Sprintf("subsection %q does not belong to active section %q", e.ID, e.Section)
}

// IsInvalidSubsectionError returns true if the error is an invalid
// subsection selection. Uses errors.As to handle wrapped errors.
func IsInvalidSubsectionError(err error) bool {
	var se *InvalidSubsectionError
	return errors.As(err, &se)
}

// TreeError reports an invalid navigation tree definition detected at
// construction time (empty tree, blank or duplicate ids).
type TreeError struct {
	// Message describes the violation.
	Message string
}

// Error implements the error interface.
func (e *TreeError) Error() string {
	return fmt.Sprintf("navigation tree: %s", e.Message)
}

// IsTreeError returns true if the error is a tree construction failure.
// Uses errors.As to handle wrapped errors.
func IsTreeError(err error) bool {
	var te *TreeError
	return errors.As(err, &te)
}

package route

import (
	"fmt"
	"strings"

	"github.com/vitalvas/routec/param"
)

// BuildError reports a failure while building a location part: a
// missing required path parameter, a value rejected by its
// transformer's encode, or a value that does not satisfy its
// placeholder pattern. Building is fail-fast, so the first violation
// is returned.
type BuildError struct {
	// Param is the offending parameter name.
	Param string
	// Reason describes the violation.
	Reason string
	// Err is the underlying encode error, if any.
	Err error
}

func (e *BuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("route: cannot build parameter %q: %s: %v", e.Param, e.Reason, e.Err)
	}
	return fmt.Sprintf("route: cannot build parameter %q: %s", e.Param, e.Reason)
}

func (e *BuildError) Unwrap() error { return e.Err }

// TemplateMismatchError reports a raw parameter map that does not
// structurally match the path template: keys the template does not
// declare, required placeholders with no value, or both. It is how a
// parameter map belonging to a different route gets rejected before
// any decoding happens.
type TemplateMismatchError struct {
	// Template is the path template the map was checked against.
	Template string
	// ExtraKeys are map keys absent from the template's placeholder
	// set, sorted.
	ExtraKeys []string
	// MissingKeys are required placeholders absent from the map,
	// sorted.
	MissingKeys []string
}

func (e *TemplateMismatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "route: parameter map does not match template %q", e.Template)
	if len(e.ExtraKeys) > 0 {
		fmt.Fprintf(&b, ": extra keys %v", e.ExtraKeys)
	}
	if len(e.MissingKeys) > 0 {
		if len(e.ExtraKeys) > 0 {
			fmt.Fprintf(&b, ", missing keys %v", e.MissingKeys)
		} else {
			fmt.Fprintf(&b, ": missing keys %v", e.MissingKeys)
		}
	}
	return b.String()
}

// ParseError aggregates every decode failure encountered while parsing
// one codec's full parameter set. Parsing is fail-complete: all
// declared parameters are walked so the caller sees every offending
// field at once, in declaration order.
type ParseError struct {
	Failures []*param.DecodeError
}

func (e *ParseError) Error() string {
	names := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		names[i] = f.Param
	}
	return fmt.Sprintf("route: %d parameter(s) failed to decode: %s", len(e.Failures), strings.Join(names, ", "))
}

// Unwrap returns the individual decode failures so errors.Is and
// errors.As see through the aggregate.
func (e *ParseError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}

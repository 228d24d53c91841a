// Package validator checks naming conventions for mistakes that load fine
// but make switching behave unexpectedly, and reports the findings.
package validator

import (
	"fmt"
	"slices"
	"strings"
)

// Severity represents the impact of an issue.
type Severity int

const (
	// SeverityError marks settings that are refused at load time.
	SeverityError Severity = iota
	// SeverityWarning marks settings that load but likely do not do what was meant.
	SeverityWarning
	// SeverityInfo marks a harmless normalisation.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(b []byte) error {
	switch string(b) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return fmt.Errorf("unknown severity %q", b)
	}
	return nil
}

// Issue is one finding about a setting.
type Issue struct {
	Severity Severity `json:"severity"`
	// Field is the setting key, with an index for list entries ("prefixes[1]").
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Field != "" {
		fmt.Fprintf(&sb, "%s: ", i.Field)
	}
	sb.WriteString(i.Message)
	if i.Value != nil {
		fmt.Fprintf(&sb, " (got %q)", fmt.Sprint(i.Value))
	}
	return sb.String()
}

// Result aggregates issues in the order they were found.
type Result struct {
	// Source is the settings file checked, empty for defaults.
	Source string  `json:"source,omitempty"`
	Issues []Issue `json:"issues"`
}

func (r *Result) add(sev Severity, field, msg string, value any) {
	r.Issues = append(r.Issues, Issue{Severity: sev, Field: field, Message: msg, Value: value})
}

// AddError records an error.
func (r *Result) AddError(field, msg string, value any) { r.add(SeverityError, field, msg, value) }

// AddWarning records a warning.
func (r *Result) AddWarning(field, msg string, value any) { r.add(SeverityWarning, field, msg, value) }

// AddInfo records an informational note.
func (r *Result) AddInfo(field, msg string, value any) { r.add(SeverityInfo, field, msg, value) }

// HasErrors reports whether any issue is an error. Nil-safe.
func (r *Result) HasErrors() bool {
	return r != nil && slices.ContainsFunc(r.Issues, func(i Issue) bool { return i.Severity == SeverityError })
}

// HasWarnings reports whether any issue is a warning. Nil-safe.
func (r *Result) HasWarnings() bool {
	return r != nil && slices.ContainsFunc(r.Issues, func(i Issue) bool { return i.Severity == SeverityWarning })
}

// BySeverity returns the issues of one severity, in order.
func (r *Result) BySeverity(sev Severity) []Issue {
	if r == nil {
		return nil
	}
	var out []Issue
	for _, i := range r.Issues {
		if i.Severity == sev {
			out = append(out, i)
		}
	}
	return out
}

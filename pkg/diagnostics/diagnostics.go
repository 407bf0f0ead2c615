// Package diagnostics defines the diagnostic values reported by a lazylet environment.
package diagnostics

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Diagnostic code constants.
const (
	EInvalidName = "E_INVALID_NAME"
	EUnbound     = "E_UNBOUND"
	EType        = "E_TYPE"
)

// Diagnostic describes a failed bind or read. It implements error.
type Diagnostic struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Name    string `json:"name,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

// MakeDiag creates a new Diagnostic.
func MakeDiag(code, message, name, hint string) *Diagnostic {
	return &Diagnostic{
		Code:    code,
		Message: message,
		Name:    name,
		Hint:    hint,
	}
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}

// Is reports whether target is a Diagnostic with the same code.
// Sentinels are compared by code only, so errors.Is(err, ErrUnbound)
// holds for any unbound read regardless of the name involved.
func (d *Diagnostic) Is(target error) bool {
	t, ok := target.(*Diagnostic)
	if !ok {
		return false
	}
	return t.Code == d.Code
}

// FormatDiagnostic formats a single diagnostic for display.
func FormatDiagnostic(d *Diagnostic, pretty bool) string {
	if !pretty {
		b, _ := json.Marshal(d)
		return string(b)
	}
	out := fmt.Sprintf("error[%s]: %s", d.Code, d.Message)
	if d.Name != "" {
		out += fmt.Sprintf("\n  --> %q", d.Name)
	}
	if d.Hint != "" {
		out += fmt.Sprintf("\n  hint: %s", d.Hint)
	}
	return out
}

// FormatDiagnostics formats a slice of diagnostics for display.
func FormatDiagnostics(diags []*Diagnostic, pretty bool) string {
	if !pretty {
		b, _ := json.Marshal(diags)
		return string(b)
	}
	parts := make([]string, len(diags))
	for i, d := range diags {
		parts[i] = FormatDiagnostic(d, true)
	}
	return strings.Join(parts, "\n\n")
}

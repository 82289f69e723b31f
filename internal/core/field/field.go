// Package field implements per-field validation and the controller that keeps
// a single input's editable text in sync with its externally held value.
package field

import (
	"fmt"
	"strconv"
)

// Kind is the value kind of a field.
type Kind string

// Supported field kinds.
const (
	KindText   Kind = "text"
	KindNumber Kind = "number"
)

// IsValid reports whether the kind is supported.
func (k Kind) IsValid() bool {
	switch k {
	case KindText, KindNumber:
		return true
	default:
		return false
	}
}

// Config is the static descriptor of a single form field.
type Config struct {
	ID          string   `yaml:"id"`
	Label       string   `yaml:"label"`
	Kind        Kind     `yaml:"kind"`
	MinChars    int      `yaml:"min_chars,omitempty"` // 0 = unset
	MaxChars    int      `yaml:"max_chars,omitempty"` // 0 = unset
	MinValue    *float64 `yaml:"min_value,omitempty"`
	MaxValue    *float64 `yaml:"max_value,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
}

// EffectiveKind returns the configured kind, defaulting to text.
func (c Config) EffectiveKind() Kind {
	if c.Kind == "" {
		return KindText
	}
	return c.Kind
}

// PlaceholderText returns the configured placeholder or "Enter <label>".
func (c Config) PlaceholderText() string {
	if c.Placeholder != "" {
		return c.Placeholder
	}
	return "Enter " + c.Label
}

// Bound is a helper for building optional numeric bounds in literals.
func Bound(v float64) *float64 { return &v }

// ValueText converts an externally held value into editable text. Strings are
// returned as-is, numbers are printed in their shortest decimal form and nil
// becomes the empty string.
func ValueText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return formatNumber(val)
	case float32:
		return formatNumber(float64(val))
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

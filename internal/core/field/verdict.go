package field

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
)

// Reason classifies why a value failed validation.
type Reason int

// Validation failure reasons. ReasonNone means the value is valid.
const (
	ReasonNone Reason = iota
	ReasonMissingCharacters
	ReasonExcessCharacters
	ReasonNotANumber
	ReasonBelowMinimum
	ReasonAboveMaximum
)

var reasonNames = map[Reason]string{
	ReasonNone:              "none",
	ReasonMissingCharacters: "missing_characters",
	ReasonExcessCharacters:  "excess_characters",
	ReasonNotANumber:        "not_a_number",
	ReasonBelowMinimum:      "below_minimum",
	ReasonAboveMaximum:      "above_maximum",
}

func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return "unknown"
}

// Verdict is the outcome of validating one field value. It is always derived
// from the current text and config, never stored on its own.
type Verdict struct {
	Reason Reason
	Limit  string // the violated bound, formatted for display
}

// Valid reports whether the verdict carries no failure.
func (v Verdict) Valid() bool { return v.Reason == ReasonNone }

// Message renders the verdict with the default English catalog. Valid
// verdicts produce the empty string.
func (v Verdict) Message() string {
	return DefaultMessages.Format(v)
}

// Validate computes the verdict for text under the given config. Empty input
// (after trimming) is always valid; requiredness is enforced by the form.
func Validate(text string, cfg Config) Verdict {
	val := strings.TrimSpace(text)
	if val == "" {
		return Verdict{}
	}

	if cfg.EffectiveKind() == KindText {
		n := uniseg.GraphemeClusterCount(val)
		if cfg.MinChars > 0 && n < cfg.MinChars {
			return Verdict{Reason: ReasonMissingCharacters, Limit: strconv.Itoa(cfg.MinChars)}
		}
		if cfg.MaxChars > 0 && n > cfg.MaxChars {
			return Verdict{Reason: ReasonExcessCharacters, Limit: strconv.Itoa(cfg.MaxChars)}
		}
		return Verdict{}
	}

	num, ok := parseNumber(val)
	if !ok {
		return Verdict{Reason: ReasonNotANumber}
	}
	if cfg.MinValue != nil && num < *cfg.MinValue {
		return Verdict{Reason: ReasonBelowMinimum, Limit: formatNumber(*cfg.MinValue)}
	}
	if cfg.MaxValue != nil && num > *cfg.MaxValue {
		return Verdict{Reason: ReasonAboveMaximum, Limit: formatNumber(*cfg.MaxValue)}
	}
	return Verdict{}
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

var disallowedNumeric = regexp.MustCompile(`[^0-9.,\-]`)

// AcceptsInput reports whether candidate text may be stored for a field of the
// given kind. Number fields only accept digits, '.', ',' and '-'.
func AcceptsInput(kind Kind, candidate string) bool {
	if kind != KindNumber {
		return true
	}
	return !disallowedNumeric.MatchString(candidate)
}

package field

import "fmt"

// Messages turns a verdict into user-facing text. Implementations must return
// the empty string for valid verdicts.
type Messages interface {
	Format(v Verdict) string
}

// DefaultMessages is the built-in English catalog.
var DefaultMessages Messages = english{}

type english struct{}

func (english) Format(v Verdict) string {
	switch v.Reason {
	case ReasonMissingCharacters:
		return fmt.Sprintf("Minimum %s characters required", v.Limit)
	case ReasonExcessCharacters:
		return fmt.Sprintf("Maximum %s characters allowed", v.Limit)
	case ReasonNotANumber:
		return "Must be a number"
	case ReasonBelowMinimum:
		return fmt.Sprintf("Minimum value is %s", v.Limit)
	case ReasonAboveMaximum:
		return fmt.Sprintf("Maximum value is %s", v.Limit)
	default:
		return ""
	}
}

// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hay-kot/criterio"
)

var fieldIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// FieldID validates a form field id: non-empty, starting with a letter and
// containing only letters, digits, '_' and '-'.
func FieldID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("id is required")
	}
	if !fieldIDPattern.MatchString(id) {
		return fmt.Errorf("id %q must start with a letter and contain only letters, digits, '_' or '-'", id)
	}
	return nil
}

// Label validates a field label is non-empty after trimming whitespace.
func Label(label string) error {
	if strings.TrimSpace(label) == "" {
		return fmt.Errorf("label is required")
	}
	return nil
}

// FieldIDField returns a criterio validator for field ids.
func FieldIDField(field, id string) error {
	return criterio.Run(field, id, FieldID)
}

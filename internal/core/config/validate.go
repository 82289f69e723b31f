package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/formgate/internal/core/field"
	"github.com/hay-kot/formgate/internal/core/i18n"
	"github.com/hay-kot/formgate/internal/core/styles"
	"github.com/hay-kot/formgate/internal/core/validate"
)

// ValidateDeep performs comprehensive validation and reports every problem
// as criterio field errors keyed by YAML path. The configPath argument is
// checked for accessibility (empty string skips the check).
func (c *Config) ValidateDeep(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("locale", c.Locale, supportedLocale),
		criterio.Run("theme", c.Theme, knownTheme),
		criterio.Run("form.edit_after_submit", string(c.Form.EditAfterSubmit), knownPolicy),
		c.validateFields(),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func supportedLocale(lang string) error {
	if !i18n.IsSupported(lang) {
		return fmt.Errorf("unsupported locale %q (supported: %s)", lang, strings.Join(i18n.Supported(), ", "))
	}
	return nil
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func knownPolicy(p string) error {
	switch p {
	case "", "keep", "revert":
		return nil
	default:
		return fmt.Errorf("must be keep or revert, got %q", p)
	}
}

// validateFields checks every field definition and id uniqueness.
func (c *Config) validateFields() error {
	if len(c.Form.Fields) == 0 {
		return criterio.NewFieldErrors("form.fields", fmt.Errorf("at least one field is required"))
	}

	var errs criterio.FieldErrorsBuilder
	seen := make(map[string]bool, len(c.Form.Fields))

	for i, f := range c.Form.Fields {
		prefix := fmt.Sprintf("form.fields[%d]", i)

		if err := validate.FieldID(f.ID); err != nil {
			errs = errs.Append(prefix+".id", err)
		} else if seen[f.ID] {
			errs = errs.Append(prefix+".id", fmt.Errorf("duplicate id %q", f.ID))
		}
		seen[f.ID] = true

		if err := validate.Label(f.Label); err != nil {
			errs = errs.Append(prefix+".label", err)
		}

		if err := validateField(f); err != nil {
			errs = errs.Append(prefix, err)
		}
	}

	return errs.ToError()
}

// validateField checks kind and bound consistency of one field.
func validateField(f field.Config) error {
	kind := f.EffectiveKind()
	if !kind.IsValid() {
		return fmt.Errorf("invalid kind %q", f.Kind)
	}

	if f.MinChars < 0 || f.MaxChars < 0 {
		return fmt.Errorf("character bounds cannot be negative")
	}
	if f.MinChars > 0 && f.MaxChars > 0 && f.MinChars > f.MaxChars {
		return fmt.Errorf("min_chars (%d) exceeds max_chars (%d)", f.MinChars, f.MaxChars)
	}
	if f.MinValue != nil && f.MaxValue != nil && *f.MinValue > *f.MaxValue {
		return fmt.Errorf("min_value (%v) exceeds max_value (%v)", *f.MinValue, *f.MaxValue)
	}

	switch kind {
	case field.KindText:
		if f.MinValue != nil || f.MaxValue != nil {
			return fmt.Errorf("min_value/max_value only apply to number fields")
		}
	case field.KindNumber:
		if f.MinChars != 0 || f.MaxChars != 0 {
			return fmt.Errorf("min_chars/max_chars only apply to text fields")
		}
	}

	return nil
}

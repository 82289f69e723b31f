// Package config handles configuration loading and validation for formgate.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/formgate/internal/core/field"
	"github.com/hay-kot/formgate/internal/core/form"
	"github.com/hay-kot/formgate/internal/core/i18n"
	"github.com/hay-kot/formgate/internal/core/styles"
	"github.com/hay-kot/formgate/internal/core/validate"
)

// Config holds the application configuration.
type Config struct {
	Locale string     `yaml:"locale"`
	Theme  string     `yaml:"theme"`
	Form   FormConfig `yaml:"form"`
}

// FormConfig describes the form shown to the user.
type FormConfig struct {
	Title           string               `yaml:"title"`
	EditAfterSubmit form.EditAfterSubmit `yaml:"edit_after_submit"`
	Fields          []field.Config       `yaml:"fields"`
}

// PersonFields is the built-in person form.
func PersonFields() []field.Config {
	return []field.Config{
		{ID: "firstName", Label: "First Name", Kind: field.KindText, MinChars: 3, MaxChars: 30},
		{ID: "lastName", Label: "Last Name", Kind: field.KindText, MinChars: 3, MaxChars: 40},
		{ID: "age", Label: "Age", Kind: field.KindNumber, MinValue: field.Bound(0), MaxValue: field.Bound(130)},
		{ID: "weight", Label: "Weight (kg)", Kind: field.KindNumber, MinValue: field.Bound(1), MaxValue: field.Bound(500)},
		{ID: "city", Label: "City", Kind: field.KindText, MinChars: 2, MaxChars: 60},
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Locale: i18n.LangEN,
		Theme:  styles.DefaultTheme,
		Form: FormConfig{
			Title:           "Validated form demo",
			EditAfterSubmit: form.KeepSnapshot,
			Fields:          PersonFields(),
		},
	}
}

// Load reads configuration from the given path and validates it.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg, err := Read(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read parses the config file and applies defaults without validating.
func Read(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Locale == "" {
		c.Locale = defaults.Locale
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Form.EditAfterSubmit == "" {
		c.Form.EditAfterSubmit = defaults.Form.EditAfterSubmit
	}
	if len(c.Form.Fields) == 0 {
		c.Form.Fields = defaults.Form.Fields
	}
	for i := range c.Form.Fields {
		if c.Form.Fields[i].Kind == "" {
			c.Form.Fields[i].Kind = field.KindText
		}
	}
}

// Validate checks that the configuration is structurally valid and returns
// the first problem found. ValidateDeep reports every problem.
func (c *Config) Validate() error {
	if !i18n.IsSupported(c.Locale) {
		return fmt.Errorf("locale %q is not supported", c.Locale)
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("theme %q is not a built-in theme", c.Theme)
	}

	if len(c.Form.Fields) == 0 {
		return fmt.Errorf("form must define at least one field")
	}

	for i, f := range c.Form.Fields {
		if err := validate.FieldID(f.ID); err != nil {
			return fmt.Errorf("form.fields[%d]: %w", i, err)
		}
		if err := validateField(f); err != nil {
			return fmt.Errorf("form.fields[%d]: %w", i, err)
		}
	}

	if _, err := c.Definition(); err != nil {
		return err
	}

	return nil
}

// Definition builds the form definition described by the config.
func (c *Config) Definition() (*form.Definition, error) {
	return form.NewDefinition(c.Form.Fields, form.Options{
		EditAfterSubmit: c.Form.EditAfterSubmit,
	})
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

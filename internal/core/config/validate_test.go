package config

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/formgate/internal/core/field"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	return &cfg
}

func TestValidateDeep_Valid(t *testing.T) {
	cfg := validConfig(t)
	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_ReportsEveryProblem(t *testing.T) {
	cfg := validConfig(t)
	cfg.Locale = "fr"
	cfg.Form.Fields = []field.Config{
		{ID: "a", Label: "A", Kind: field.KindText},
		{ID: "a", Label: "", Kind: field.KindText},
		{ID: "n", Label: "N", Kind: field.KindNumber, MinValue: field.Bound(10), MaxValue: field.Bound(1)},
	}

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "locale")
	assert.Contains(t, fields, "form.fields[1].id")
	assert.Contains(t, fields, "form.fields[1].label")
	assert.Contains(t, fields, "form.fields[2]")
}

func TestValidateDeep_ConfigFileIsDirectory(t *testing.T) {
	cfg := validConfig(t)
	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
}

func TestValidateField(t *testing.T) {
	tests := []struct {
		name    string
		field   field.Config
		wantErr string
	}{
		{"plain text", field.Config{Kind: field.KindText}, ""},
		{"text with bounds", field.Config{Kind: field.KindText, MinChars: 1, MaxChars: 1}, ""},
		{"number with bounds", field.Config{Kind: field.KindNumber, MinValue: field.Bound(0), MaxValue: field.Bound(0)}, ""},
		{"unknown kind", field.Config{Kind: "date"}, "invalid kind"},
		{"negative chars", field.Config{MinChars: -1}, "cannot be negative"},
		{"inverted values", field.Config{Kind: field.KindNumber, MinValue: field.Bound(2), MaxValue: field.Bound(1)}, "exceeds max_value"},
		{"value bounds on text", field.Config{Kind: field.KindText, MaxValue: field.Bound(1)}, "only apply to number"},
		{"char bounds on number", field.Config{Kind: field.KindNumber, MaxChars: 3}, "only apply to text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateField(tt.field)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

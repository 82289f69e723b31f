package validate

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"camel case", "firstName", false},
		{"with digits", "line2", false},
		{"with dash and underscore", "post_code-x", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"leading digit", "2nd", true},
		{"contains space", "first name", true},
		{"contains dot", "a.b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FieldID(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "FieldID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestLabel(t *testing.T) {
	assert.NoError(t, Label("Age"))
	assert.Error(t, Label(" \t"))
}

func TestFieldIDField(t *testing.T) {
	err := FieldIDField("form.fields[0].id", "bad id")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "form.fields[0].id", fieldErrs[0].Field)

	assert.NoError(t, FieldIDField("form.fields[0].id", "ok"))
}

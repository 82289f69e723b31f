package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/formgate/internal/core/field"
)

func TestNew(t *testing.T) {
	t.Run("supported languages load", func(t *testing.T) {
		for _, lang := range Supported() {
			c, err := New(lang)
			require.NoError(t, err)
			assert.Equal(t, lang, c.Lang())
		}
	})

	t.Run("unsupported language", func(t *testing.T) {
		_, err := New("xx")
		assert.Error(t, err)
	})
}

// The English catalog must agree with the built-in messages for every reason.
func TestCatalog_EnglishMatchesDefault(t *testing.T) {
	c := MustNew(LangEN)

	verdicts := []field.Verdict{
		{},
		{Reason: field.ReasonMissingCharacters, Limit: "3"},
		{Reason: field.ReasonExcessCharacters, Limit: "30"},
		{Reason: field.ReasonNotANumber},
		{Reason: field.ReasonBelowMinimum, Limit: "0"},
		{Reason: field.ReasonAboveMaximum, Limit: "130"},
	}

	for _, v := range verdicts {
		t.Run(v.Reason.String(), func(t *testing.T) {
			assert.Equal(t, field.DefaultMessages.Format(v), c.Format(v))
		})
	}
}

func TestCatalog_Spanish(t *testing.T) {
	c := MustNew(LangES)

	assert.Equal(t, "El valor máximo es 130", c.Format(field.Verdict{Reason: field.ReasonAboveMaximum, Limit: "130"}))
	assert.Equal(t, "Debe ser un número", c.Format(field.Verdict{Reason: field.ReasonNotANumber}))
	assert.Equal(t, "Enviar", c.T(MsgSubmit))
}

func TestCatalog_T(t *testing.T) {
	c := MustNew(LangEN)
	assert.Equal(t, "Form submitted successfully!", c.T(MsgSubmittedBanner))
	assert.Equal(t, "no_such_message", c.T("no_such_message"))
}

func TestCatalog_WithController(t *testing.T) {
	cfg := field.Config{ID: "age", Kind: field.KindNumber, MaxValue: field.Bound(130)}
	c := field.NewController(cfg, "", func(string) {}, field.WithMessages(MustNew(LangES)))

	c.Input("200")
	assert.Equal(t, "El valor máximo es 130", c.Message())
}

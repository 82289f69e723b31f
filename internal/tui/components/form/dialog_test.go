package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/formgate/internal/core/field"
	coreform "github.com/hay-kot/formgate/internal/core/form"
	"github.com/hay-kot/formgate/internal/core/i18n"
	"github.com/hay-kot/formgate/pkg/tuitest"
)

func testDefinition(t *testing.T) *coreform.Definition {
	t.Helper()
	def, err := coreform.NewDefinition([]field.Config{
		{ID: "firstName", Label: "First name", MinChars: 3, MaxChars: 30},
		{ID: "age", Label: "Age", Kind: field.KindNumber, MinValue: field.Bound(0), MaxValue: field.Bound(130)},
	}, coreform.Options{})
	require.NoError(t, err)
	return def
}

func newTestDialog(t *testing.T) *Dialog {
	t.Helper()
	return NewDialog("Test form", testDefinition(t), i18n.MustNew(i18n.LangEN))
}

func send(d *Dialog, msgs ...tea.Msg) *Dialog {
	for _, msg := range msgs {
		d, _ = d.Update(msg)
	}
	return d
}

func TestDialog_Typing(t *testing.T) {
	t.Run("typed text reaches the form state", func(t *testing.T) {
		d := newTestDialog(t)
		d = send(d, tuitest.Type("Ann")...)

		assert.Equal(t, "Ann", d.State().Value(0))
		assert.Empty(t, d.State().Error(0))
	})

	t.Run("short text records an error", func(t *testing.T) {
		d := newTestDialog(t)
		d = send(d, tuitest.Type("An")...)

		assert.Equal(t, "Minimum 3 characters required", d.State().Error(0))
		assert.Contains(t, tuitest.StripANSI(d.View()), "Minimum 3 characters required")
	})

	t.Run("number field drops letters", func(t *testing.T) {
		d := newTestDialog(t)
		d = send(d, tuitest.KeyTab())
		d = send(d, tuitest.Type("4a2")...)

		assert.Equal(t, "42", d.State().Value(1))
		assert.Equal(t, map[string]string{"firstName": "", "age": "42"}, d.FormValues())
	})

	t.Run("backspace edits the value", func(t *testing.T) {
		d := newTestDialog(t)
		d = send(d, tuitest.Type("Anna")...)
		d = send(d, tuitest.KeyBackspace())

		assert.Equal(t, "Ann", d.State().Value(0))
	})
}

func TestDialog_Focus(t *testing.T) {
	t.Run("tab wraps around", func(t *testing.T) {
		d := newTestDialog(t)
		assert.Equal(t, 0, d.FocusIndex())

		d = send(d, tuitest.KeyTab())
		assert.Equal(t, 1, d.FocusIndex())

		d = send(d, tuitest.KeyTab())
		assert.Equal(t, 0, d.FocusIndex())
	})

	t.Run("shift+tab stops at the first field", func(t *testing.T) {
		d := newTestDialog(t)
		d = send(d, tuitest.KeyShiftTab())
		assert.Equal(t, 0, d.FocusIndex())
	})

	t.Run("enter advances", func(t *testing.T) {
		d := newTestDialog(t)
		d = send(d, tuitest.KeyEnter())
		assert.Equal(t, 1, d.FocusIndex())
	})
}

func TestDialog_Submit(t *testing.T) {
	t.Run("blocked submit focuses first incomplete field", func(t *testing.T) {
		d := newTestDialog(t)
		d = send(d, tuitest.Type("Ann")...)
		d = send(d, tuitest.KeyCtrl('s'))

		assert.False(t, d.Submitted())
		assert.True(t, d.Blocked())
		assert.Equal(t, 1, d.FocusIndex())
		assert.Contains(t, tuitest.StripANSI(d.View()), "before submitting")
	})

	t.Run("blocked submit focuses invalid field", func(t *testing.T) {
		d := newTestDialog(t)
		d = send(d, tuitest.Type("An")...)
		d = send(d, tuitest.KeyTab())
		d = send(d, tuitest.Type("30")...)
		d = send(d, tuitest.KeyCtrl('s'))

		assert.False(t, d.Submitted())
		assert.Equal(t, 0, d.FocusIndex())
	})

	t.Run("valid form shows summary", func(t *testing.T) {
		d := newTestDialog(t)
		d = send(d, tuitest.Type("Ann")...)
		d = send(d, tuitest.KeyTab())
		d = send(d, tuitest.Type("30")...)
		d = send(d, tuitest.KeyCtrl('s'))

		require.True(t, d.Submitted())
		assert.False(t, d.Blocked())

		view := tuitest.StripANSI(d.View())
		assert.Contains(t, view, "Form submitted successfully!")
		assert.Contains(t, view, "First name: Ann")
		assert.Contains(t, view, "Age: 30")
	})

	t.Run("enter on last field submits", func(t *testing.T) {
		d := newTestDialog(t)
		d = send(d, tuitest.Type("Ann")...)
		d = send(d, tuitest.KeyEnter())
		d = send(d, tuitest.Type("30")...)
		d = send(d, tuitest.KeyEnter())

		assert.True(t, d.Submitted())
	})

	t.Run("blocked flag clears once the gate opens", func(t *testing.T) {
		d := newTestDialog(t)
		d = send(d, tuitest.Type("Ann")...)
		d = send(d, tuitest.KeyCtrl('s'))
		require.True(t, d.Blocked())

		d = send(d, tuitest.Type("3")...)
		assert.False(t, d.Blocked())
	})
}

func TestDialog_Reset(t *testing.T) {
	d := newTestDialog(t)
	d = send(d, tuitest.Type("Ann")...)
	d = send(d, tuitest.KeyTab())
	d = send(d, tuitest.Type("30")...)
	d = send(d, tuitest.KeyCtrl('s'))
	require.True(t, d.Submitted())

	d = send(d, tuitest.KeyCtrl('r'))

	assert.False(t, d.Submitted())
	assert.Equal(t, []string{"", ""}, d.State().Values())
	assert.Equal(t, 0, d.FocusIndex())

	view := tuitest.StripANSI(d.View())
	assert.NotContains(t, view, "Form submitted successfully!")
	assert.NotContains(t, view, "Ann")

	// typing after a reset starts from an empty input
	d = send(d, tuitest.Type("Bo")...)
	assert.Equal(t, "Bo", d.State().Value(0))
}

func TestDialog_Clear(t *testing.T) {
	d := newTestDialog(t)
	d = send(d, tuitest.Type("Ann")...)
	d = send(d, tuitest.KeyCtrl('x'))

	assert.Empty(t, d.State().Value(0))
	assert.Empty(t, d.State().Error(0))
}

func TestDialog_Cancel(t *testing.T) {
	d := newTestDialog(t)
	d = send(d, tuitest.KeyEscape())
	assert.True(t, d.Cancelled())

	// input is ignored after cancel
	d = send(d, tuitest.Type("Ann")...)
	assert.Empty(t, d.State().Value(0))
}

func TestDialog_View(t *testing.T) {
	t.Run("renders labels and buttons", func(t *testing.T) {
		d := newTestDialog(t)
		view := tuitest.StripANSI(d.View())

		assert.Contains(t, view, "Test form")
		assert.Contains(t, view, "First name")
		assert.Contains(t, view, "Age")
		assert.Contains(t, view, "Submit")
		assert.Contains(t, view, "Reset")
		assert.Contains(t, view, "ctrl+s: submit")
	})

	t.Run("translator switches interface text", func(t *testing.T) {
		d := newTestDialog(t)
		d.SetTranslator(i18n.MustNew(i18n.LangES))
		view := tuitest.StripANSI(d.View())

		assert.Contains(t, view, "Enviar")
		assert.Contains(t, view, "Restablecer")
	})
}

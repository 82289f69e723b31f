package form

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/hay-kot/formgate/internal/core/field"
	"github.com/hay-kot/formgate/internal/core/logging"
	"github.com/hay-kot/formgate/internal/core/styles"
)

// ValidatedField is a single-line input driven by a field.Controller. The
// controller decides whether a keystroke is accepted; the text input only
// renders and edits.
type ValidatedField struct {
	input   textinput.Model
	ctrl    *field.Controller
	keys    KeyMap
	focused bool
	log     zerolog.Logger
}

// NewValidatedField creates an input bound to ctrl.
func NewValidatedField(ctrl *field.Controller, keys KeyMap) *ValidatedField {
	cfg := ctrl.Config()

	ti := textinput.New()
	ti.Placeholder = cfg.PlaceholderText()
	ti.Prompt = ""
	ti.SetWidth(40)
	ti.SetValue(ctrl.Text())

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.SetStyles(inputStyles)

	return &ValidatedField{
		input: ti,
		ctrl:  ctrl,
		keys:  keys,
		log:   logging.ForField(logging.Component("tui"), cfg.ID),
	}
}

func (f *ValidatedField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	if kp, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kp, f.keys.Clear) {
		if f.ctrl.ShowClear() {
			f.ctrl.Clear()
			f.input.SetValue("")
		}
		return f, nil
	}

	before := f.input.Value()
	next, cmd := f.input.Update(msg)

	if candidate := next.Value(); candidate != before {
		if !f.ctrl.Input(candidate) {
			f.log.Debug().Str("candidate", candidate).Msg("keystroke rejected")
			return f, nil
		}
	}

	f.input = next
	return f, cmd
}

// Refresh overwrites the input text when the controller was synced from
// outside, for example after a form reset.
func (f *ValidatedField) Refresh() {
	if f.input.Value() != f.ctrl.Text() {
		f.input.SetValue(f.ctrl.Text())
	}
}

func (f *ValidatedField) View() string {
	titleStyle := styles.TextMutedStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
	}
	title := titleStyle.Render(f.Label())

	line := f.input.View()
	switch f.ctrl.Display() {
	case field.DisplayError:
		line += " " + styles.FormErrorStyle.Render(styles.IconError)
	case field.DisplaySuccess:
		line += " " + styles.FormSuccessStyle.Render(styles.IconSuccess)
	}
	if f.ctrl.ShowClear() && f.focused {
		line += "  " + styles.FormHelpStyle.Render(styles.IconClear+" "+f.keys.Clear.Help().Key)
	}

	// keep a line reserved so the layout does not jump when errors appear
	msg := " "
	if m := f.ctrl.Message(); m != "" {
		msg = styles.FormErrorStyle.Render(m)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, line, msg)
	return f.borderStyle().Render(content)
}

func (f *ValidatedField) borderStyle() lipgloss.Style {
	switch f.ctrl.Display() {
	case field.DisplayError:
		return styles.FormFieldErrorStyle
	case field.DisplaySuccess:
		return styles.FormFieldSuccessStyle
	}
	if f.focused {
		return styles.FormFieldFocusedStyle
	}
	return styles.FormFieldStyle
}

func (f *ValidatedField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *ValidatedField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *ValidatedField) Focused() bool          { return f.focused }
func (f *ValidatedField) Value() any             { return f.ctrl.Text() }
func (f *ValidatedField) Label() string          { return f.ctrl.Config().Label }
func (f *ValidatedField) Display() field.Display { return f.ctrl.Display() }

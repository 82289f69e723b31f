package form

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/formgate/internal/core/field"
	coreform "github.com/hay-kot/formgate/internal/core/form"
	"github.com/hay-kot/formgate/internal/core/i18n"
	"github.com/hay-kot/formgate/internal/core/styles"
)

// Translator renders validation messages and interface text.
type Translator interface {
	field.Messages
	T(id string) string
}

// Dialog is a form with a submit gate. It owns a core session and one
// ValidatedField per declared field.
type Dialog struct {
	Title string

	session   *coreform.Session
	fields    []Field
	focusIdx  int
	tr        Translator
	keys      KeyMap
	blocked   bool
	cancelled bool
}

// NewDialog creates a dialog for def.
func NewDialog(title string, def *coreform.Definition, tr Translator) *Dialog {
	keys := DefaultKeyMap()
	session := coreform.NewSession(def, tr)

	fields := make([]Field, session.Len())
	for i := range fields {
		fields[i] = NewValidatedField(session.Controller(i), keys)
	}

	d := &Dialog{
		Title:   title,
		session: session,
		fields:  fields,
		tr:      tr,
		keys:    keys,
	}

	if len(fields) > 0 {
		fields[0].Focus()
	}

	return d
}

func (d *Dialog) Init() tea.Cmd {
	return nil
}

func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	if d.cancelled {
		return d, nil
	}

	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(msg, d.keys.Cancel):
			d.cancelled = true
			return d, nil
		case key.Matches(msg, d.keys.Submit):
			return d, d.attemptSubmit()
		case key.Matches(msg, d.keys.Reset):
			return d, d.reset()
		case key.Matches(msg, d.keys.Next):
			return d, d.moveFocus(1, true)
		case key.Matches(msg, d.keys.Prev):
			return d, d.moveFocus(-1, false)
		case key.Matches(msg, d.keys.Enter):
			if d.focusIdx == len(d.fields)-1 {
				return d, d.attemptSubmit()
			}
			return d, d.moveFocus(1, false)
		}
	}

	if d.focusIdx < 0 || d.focusIdx >= len(d.fields) {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusIdx], cmd = d.fields[d.focusIdx].Update(msg)
	d.refresh()
	if d.session.State().CanSubmit() {
		d.blocked = false
	}
	return d, cmd
}

// moveFocus shifts focus by delta. Movement stops at the edges unless wrap is
// set, in which case it cycles.
func (d *Dialog) moveFocus(delta int, wrap bool) tea.Cmd {
	n := len(d.fields)
	if n == 0 {
		return nil
	}

	next := d.focusIdx + delta
	switch {
	case wrap:
		next = (next%n + n) % n
	case next < 0:
		next = 0
	case next >= n:
		next = n - 1
	}
	return d.focus(next)
}

func (d *Dialog) focus(idx int) tea.Cmd {
	if idx == d.focusIdx && d.fields[idx].Focused() {
		return nil
	}
	d.fields[d.focusIdx].Blur()
	d.focusIdx = idx
	return d.fields[idx].Focus()
}

// attemptSubmit submits when the gate is open. Otherwise it focuses the first
// field that is invalid or empty.
func (d *Dialog) attemptSubmit() tea.Cmd {
	if d.session.Submit() {
		d.blocked = false
		d.refresh()
		return nil
	}

	d.blocked = true
	state := d.session.State()
	for i := range d.fields {
		if state.Error(i) != "" || state.Value(i) == "" {
			return d.focus(i)
		}
	}
	return nil
}

func (d *Dialog) reset() tea.Cmd {
	d.session.Reset()
	d.blocked = false
	d.refresh()
	if len(d.fields) == 0 {
		return nil
	}
	return d.focus(0)
}

func (d *Dialog) refresh() {
	for _, f := range d.fields {
		f.Refresh()
	}
}

// SetTranslator switches the message catalog.
func (d *Dialog) SetTranslator(tr Translator) {
	d.tr = tr
	d.session.SetMessages(tr)
}

// State returns the current form state.
func (d *Dialog) State() coreform.State { return d.session.State() }

// Session returns the underlying session.
func (d *Dialog) Session() *coreform.Session { return d.session }

// Submitted reports whether a summary is currently shown.
func (d *Dialog) Submitted() bool { return d.session.State().Submitted() }

// Cancelled reports whether the user quit the dialog.
func (d *Dialog) Cancelled() bool { return d.cancelled }

// Blocked reports whether the last submit attempt was refused.
func (d *Dialog) Blocked() bool { return d.blocked }

// FocusIndex returns the index of the focused field.
func (d *Dialog) FocusIndex() int { return d.focusIdx }

// FormValues returns the current text of every field keyed by id.
func (d *Dialog) FormValues() map[string]string {
	state := d.session.State()
	def := state.Definition()

	values := make(map[string]string, def.Len())
	for i := range def.Len() {
		values[def.Field(i).ID] = state.Value(i)
	}
	return values
}

func (d *Dialog) View() string {
	var b strings.Builder

	if d.Title != "" {
		b.WriteString(styles.HeaderStyle.Render(d.Title))
		b.WriteString("\n\n")
	}

	for _, f := range d.fields {
		b.WriteString(f.View())
		b.WriteString("\n")
	}

	b.WriteString(d.buttonsView())
	b.WriteString("\n")

	if d.blocked {
		b.WriteString(styles.FormErrorStyle.Render(d.tr.T(i18n.MsgSubmitBlocked)))
		b.WriteString("\n")
	}

	if d.session.State().Submitted() {
		b.WriteString("\n")
		b.WriteString(d.summaryView())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FormHelpStyle.Render(helpLine(d.keys.ShortHelp())))

	return b.String()
}

func (d *Dialog) buttonsView() string {
	submitStyle := styles.ButtonActiveStyle
	if !d.session.State().CanSubmit() {
		submitStyle = styles.ButtonDisabledStyle
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		submitStyle.Render(d.tr.T(i18n.MsgSubmit)),
		" ",
		styles.ButtonStyle.Render(d.tr.T(i18n.MsgReset)),
	)
}

func (d *Dialog) summaryView() string {
	lines := []string{styles.FormSuccessStyle.Render(d.tr.T(i18n.MsgSubmittedBanner)), ""}
	for _, entry := range d.session.State().Summary() {
		lines = append(lines,
			styles.SummaryLabelStyle.Render(entry.Label+":")+" "+styles.SummaryValueStyle.Render(entry.Value),
		)
	}
	return styles.SummaryStyle.Render(strings.Join(lines, "\n"))
}

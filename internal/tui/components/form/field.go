package form

import (
	tea "charm.land/bubbletea/v2"

	"github.com/hay-kot/formgate/internal/core/field"
)

// Field is the interface implemented by form field components.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() any    // current editable text
	Label() string // display label for the field

	// Refresh re-reads the controller after the owner pushed new values down.
	Refresh()
	Display() field.Display
}

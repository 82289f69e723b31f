// Package tui implements the Bubble Tea TUI for formgate.
package tui

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/hay-kot/formgate/internal/core/config"
	"github.com/hay-kot/formgate/internal/core/form"
	"github.com/hay-kot/formgate/internal/core/logging"
	"github.com/hay-kot/formgate/internal/core/styles"
	formui "github.com/hay-kot/formgate/internal/tui/components/form"
)

// BuildInfo holds build-time metadata for display in the TUI.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Deps holds the dependencies of the TUI model.
type Deps struct {
	Config     *config.Config
	Definition *form.Definition
	Translator formui.Translator
	BuildInfo  BuildInfo
}

// Model is the top-level Bubble Tea model. It hosts a single form dialog.
type Model struct {
	dialog    *formui.Dialog
	buildInfo BuildInfo
	width     int
	height    int
	quitting  bool
	log       zerolog.Logger
}

// New creates a model for the configured form.
func New(deps Deps) Model {
	title := ""
	if deps.Config != nil {
		title = deps.Config.Form.Title
	}

	return Model{
		dialog:    formui.NewDialog(title, deps.Definition, deps.Translator),
		buildInfo: deps.BuildInfo,
		log:       logging.Component("tui"),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	m.log.Debug().Int("fields", m.dialog.Session().Len()).Msg("form opened")
	return m.dialog.Init()
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		return m, nil
	}

	if kp, ok := msg.(tea.KeyPressMsg); ok && kp.String() == "ctrl+c" {
		return m.quit()
	}

	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)
	if m.dialog.Cancelled() {
		return m.quit()
	}
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.log.Debug().
		Bool("submitted", m.dialog.Submitted()).
		Msg("form closed")
	return m, tea.Quit
}

// View renders the TUI.
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	if m.quitting {
		return ""
	}

	content := styles.FormModalStyle.Render(m.dialog.View())
	if m.buildInfo.Version != "" {
		content = lipgloss.JoinVertical(lipgloss.Right, content, styles.FooterStyle.Render("formgate "+m.buildInfo.Version))
	}

	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, content)
}

// State returns the form state at the time the program exited.
func (m Model) State() form.State { return m.dialog.State() }

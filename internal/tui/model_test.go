package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/formgate/internal/core/config"
	"github.com/hay-kot/formgate/internal/core/i18n"
	"github.com/hay-kot/formgate/pkg/tuitest"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	def, err := cfg.Definition()
	require.NoError(t, err)

	return New(Deps{
		Config:     &cfg,
		Definition: def,
		Translator: i18n.MustNew(i18n.LangEN),
		BuildInfo:  BuildInfo{Version: "1.2.3"},
	})
}

func update(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, tuitest.WindowSize(120, 50))

	assert.True(t, m.View().AltScreen)

	content := tuitest.StripANSI(m.render())
	assert.Contains(t, content, "Validated form demo")
	assert.Contains(t, content, "First Name")
	assert.Contains(t, content, "Weight (kg)")
	assert.Contains(t, content, "formgate 1.2.3")
}

func TestModel_Typing(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, tuitest.Type("Ada")...)

	assert.Equal(t, "Ada", m.State().Value(0))
}

func TestModel_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"escape", tuitest.KeyEscape()},
		{"ctrl+c", tuitest.KeyCtrl('c')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m, cmd := update(m, tt.msg)

			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, m.render())
		})
	}
}

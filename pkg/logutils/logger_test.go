package logutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tagHook struct{}

func (tagHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) { e.Str("tag", "x") }

func TestNew(t *testing.T) {
	t.Run("writes json to file and appends", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "formgate.log")

		l, closer, err := New("info", path, tagHook{})
		require.NoError(t, err)
		l.Info().Msg("first")
		l.Debug().Msg("filtered")
		closer()

		l, closer, err = New("info", path)
		require.NoError(t, err)
		l.Info().Msg("second")
		closer()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		content := string(data)
		assert.Contains(t, content, `"message":"first"`)
		assert.Contains(t, content, `"tag":"x"`)
		assert.Contains(t, content, `"message":"second"`)
		assert.NotContains(t, content, "filtered")
	})

	t.Run("invalid level", func(t *testing.T) {
		_, _, err := New("loud", "")
		assert.Error(t, err)
	})

	t.Run("empty file discards", func(t *testing.T) {
		l, closer, err := New("debug", "")
		require.NoError(t, err)
		defer closer()
		l.Info().Msg("nowhere")
	})
}

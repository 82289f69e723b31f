package iojson

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileReader(t *testing.T) {
	t.Run("reads from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "in.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"age": 40}`), 0o644))

		fr := &FileReader[map[string]any]{fileFlagValue: path}
		got, err := fr.Read()
		require.NoError(t, err)
		assert.Equal(t, json.Number("40"), got["age"])
	})

	t.Run("reads from injected stdin", func(t *testing.T) {
		fr := &FileReader[map[string]any]{Stdin: strings.NewReader(`{"firstName": "Alice"}`)}
		got, err := fr.Read()
		require.NoError(t, err)
		assert.Equal(t, "Alice", got["firstName"])
	})

	t.Run("dash reads stdin", func(t *testing.T) {
		fr := &FileReader[map[string]any]{fileFlagValue: "-", Stdin: strings.NewReader(`{}`)}
		_, err := fr.Read()
		assert.NoError(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		fr := &FileReader[map[string]any]{fileFlagValue: filepath.Join(t.TempDir(), "nope.json")}
		_, err := fr.Read()
		assert.ErrorContains(t, err, "open file")
	})

	t.Run("bad json", func(t *testing.T) {
		fr := &FileReader[map[string]any]{Stdin: strings.NewReader(`{`)}
		_, err := fr.Read()
		assert.ErrorContains(t, err, "decode JSON")
	})
}

func TestWriteWith(t *testing.T) {
	t.Run("indented json", func(t *testing.T) {
		var out, errOut bytes.Buffer
		require.NoError(t, WriteWith(&out, &errOut, map[string]int{"a": 1}))
		assert.Equal(t, "{\n  \"a\": 1\n}\n", out.String())
		assert.Empty(t, errOut.String())
	})

	t.Run("marshal failure goes to error writer", func(t *testing.T) {
		var out, errOut bytes.Buffer
		require.NoError(t, WriteWith(&out, &errOut, make(chan int)))
		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), "json_error")
	})
}

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLine(&buf, map[string]int{"a": 1}))
	require.NoError(t, WriteLine(&buf, map[string]int{"b": 2}))

	assert.Equal(t, "{\"a\":1}\n{\"b\":2}\n", buf.String())
}

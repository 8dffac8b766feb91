package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runParse(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"parse"}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recognized.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCommandText(t *testing.T) {
	path := writeInput(t, "Wtorek, 16 września Krakowska 1 zielone")

	out, err := runParse(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "Adres: Krakowska 1")
	assert.Contains(t, out, "16.09.")
	assert.Contains(t, out, "Zielone")
}

func TestParseCommandJSON(t *testing.T) {
	path := writeInput(t, "Wtorek, 16 września Krakowska 1 zielone")

	out, err := runParse(t, path, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"address": "Krakowska"`)
	assert.Contains(t, out, `"categorized_schedule"`)
}

func TestParseCommandTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	tokens := `[
		{"text": "wtorek,", "confidence": 0.9},
		{"text": "16", "confidence": 0.9},
		{"text": "wrzesnia", "confidence": 0.9},
		{"text": "smieci", "confidence": 0.1}
	]`
	require.NoError(t, os.WriteFile(path, []byte(tokens), 0o644))

	out, err := runParse(t, path, "--tokens")
	require.NoError(t, err)
	assert.Contains(t, out, "Liczba wywozów: 1")
}

func TestParseCommandErrors(t *testing.T) {
	t.Run("Should fail on an unreadable file", func(t *testing.T) {
		_, err := runParse(t, filepath.Join(t.TempDir(), "missing.txt"))
		assert.Error(t, err)
	})

	t.Run("Should fail on dateless input", func(t *testing.T) {
		path := writeInput(t, "nic tu nie ma")
		_, err := runParse(t, path)
		assert.Error(t, err)
	})

	t.Run("Should fail on an unknown format", func(t *testing.T) {
		path := writeInput(t, "16 wrzesnia")
		_, err := runParse(t, path, "--format", "xml")
		assert.Error(t, err)
	})
}

package booleval

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	return path
}

func TestLoadConfig(t *testing.T) {
	cases := []struct {
		name   string
		data   string
		expect *Config
	}{
		{
			"config.toml",
			"prompt = \"? \"\ncolor = false\nlog_level = \"debug\"\nshow_tree = true\n",
			&Config{Prompt: "? ", Color: false, LogLevel: "debug", ShowTree: true},
		},
		{
			"config.yaml",
			"prompt: \"> \"\nshow_tokens: true\nhistory_file: /tmp/hist\n",
			&Config{Prompt: "> ", Color: true, LogLevel: "warn", ShowTokens: true, HistoryFile: "/tmp/hist"},
		},
		{
			"empty.yml",
			"",
			DefaultConfig(),
		},
	}

	for _, c := range cases {
		got, err := LoadConfig(writeFile(t, c.name, c.data))
		require.NoError(t, err, c.name)
		assert.Equal(t, c.expect, got, c.name)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "config.json", "{}"))
	assert.ErrorContains(t, err, "unsupported config format")

	_, err = LoadConfig(writeFile(t, "config.toml", "prompt = "))
	assert.ErrorContains(t, err, "failed to parse config file")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/z340/pkg/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(path, true)
	assert.Error(t, err)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "z340.yaml", `
log_level: debug
log_format: json
pause: never
split: true
metrics: true
substitutions:
  - from: ";"
    to: "#"
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, PauseNever, cfg.Pause)
	assert.True(t, cfg.Split)
	assert.True(t, cfg.Metrics)
	assert.Equal(t, []transform.Substitution{{From: ";", To: "#"}}, cfg.Substitutions)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "z340.json", `{"pause": "always", "split": "true"}`)

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, PauseAlways, cfg.Pause)
	assert.True(t, cfg.Split, "weakly typed input accepts string booleans")
	assert.Equal(t, transform.DefaultSubstitutions, cfg.Substitutions)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"Unknown Key", "z340.yaml", "colour: red\n"},
		{"Bad Pause", "z340.yaml", "pause: sometimes\n"},
		{"Bad Level", "z340.yaml", "log_level: chatty\n"},
		{"Empty Designator", "z340.yaml", "substitutions:\n  - from: \"\"\n    to: x\n"},
		{"Broken YAML", "z340.yaml", "pause: [\n"},
		{"Broken JSON", "z340.json", "{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := Load(path, true)
			assert.Error(t, err)
		})
	}
}

func TestConfig_Normalizer(t *testing.T) {
	cfg := Default()
	n, err := cfg.Normalizer()
	require.NoError(t, err)
	assert.Equal(t, "AÄBÖ", n.Normalize("A;B|"))
}

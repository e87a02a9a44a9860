package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteDefault(path, false))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, DefaultConfig().LogLevel, decoded.LogLevel)
	assert.Equal(t, SupportedApps(), decoded.Apps.Enabled)

	// The written file must load back cleanly with no unknown keys.
	mgr, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, mgr.UnknownKeys())
}

func TestWriteDefault_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_level = 1\n"), 0o644))

	err := WriteDefault(path, false)
	require.ErrorIs(t, err, ErrConfigExists)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "log_level = 1\n", string(content))

	require.NoError(t, WriteDefault(path, true))
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, "log_level = 1\n", string(content))
}

func TestEncodeConfig_SectionsSorted(t *testing.T) {
	data, err := EncodeConfig(DefaultConfig())
	require.NoError(t, err)

	var sections []string
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			sections = append(sections, strings.Trim(trimmed, "[]"))
		}
	}

	require.NotEmpty(t, sections)
	assert.IsIncreasing(t, sections)
	assert.True(t, strings.HasPrefix(string(data), "log_level"))
}

func TestSortTOMLSections(t *testing.T) {
	in := "a = 1\n\n[zeta]\nk = 1\n\n[alpha]\nk = 2\n"
	want := "a = 1\n\n[alpha]\nk = 2\n\n[zeta]\nk = 1\n"
	assert.Equal(t, want, sortTOMLSections(in))
}

func TestJSONSchema(t *testing.T) {
	data, err := JSONSchema()
	require.NoError(t, err)
	assert.Contains(t, string(data), "log_level")
	assert.Contains(t, string(data), "socketPath")

	path, err := GenerateSchemaFile(t.TempDir())
	require.NoError(t, err)
	assert.FileExists(t, path)
}

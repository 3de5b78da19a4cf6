package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("get all shows defaults", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config")
		env.contains(out, "format.date: ISO")
		env.contains(out, "format.include_tags: true")
		env.contains(out, "id.generator: time")
		env.contains(out, "limits.max_content: 10485760")
	})

	t.Run("get single key after set", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config", "format.date", "relative")
		env.contains(out, "format.date = relative (global)")

		out = env.run("config", "format.date")
		env.equals(out, "relative")
		assert.FileExists(t, filepath.Join(env.home, ".docrec", "config.yaml"))
	})

	t.Run("local", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config", "--local", "format.include_id", "true")
		env.contains(out, "(local)")
		assert.FileExists(t, filepath.Join(env.dir, ".docrec", "config.yaml"))

		// Local config now exists, so plain reads use it.
		out = env.run("config", "format.include_id")
		env.equals(out, "true")
	})

	t.Run("json", func(t *testing.T) {
		env := newTestEnv(t)

		var got []struct {
			Key   string
			Value string
			Set   bool
		}
		env.runJSON(&got, "config")
		require.NotEmpty(t, got)
		assert.Equal(t, "format.date", got[0].Key)
		assert.False(t, got[0].Set)
	})
}

func TestConfig_Set(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"date format", "format.date", "local"},
		{"include id", "format.include_id", "true"},
		{"include tags", "format.include_tags", "false"},
		{"timezone", "format.timezone", "Europe/London"},
		{"locale", "format.locale", "de-DE"},
		{"generator", "id.generator", "uuid"},
		{"max content", "limits.max_content", "2048"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)

			env.run("config", tc.key, tc.value)

			out := env.run("config", tc.key)
			env.equals(out, tc.value)
		})
	}
}

func TestConfig_Errors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid key", "invalid.key", "value"},
		{"invalid date format", "format.date", "bogus"},
		{"invalid bool", "format.include_id", "maybe"},
		{"invalid timezone", "format.timezone", "Mars/Olympus"},
		{"invalid generator", "id.generator", "sequential"},
		{"invalid limit", "limits.max_content", "-1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)

			_, err := env.runErr("config", tc.key, tc.value)
			assert.Error(t, err)
		})
	}
}

func TestConfig_AppliesToOutput(t *testing.T) {
	env := newTestEnv(t)
	env.write("report.md", reportDoc, fileTime)

	env.run("config", "format.include_id", "true")
	env.run("config", "format.include_tags", "false")
	env.run("config", "id.generator", "uuid")
	env.run("config", "format.date", "local")
	env.run("config", "format.locale", "de-DE")

	var got record
	env.runJSON(&got, "new", "report.md")
	require.NotNil(t, got.ID)
	assert.Len(t, *got.ID, 36, "uuid generator")
	assert.Nil(t, got.Tags)
	assert.Equal(t, "10.1.2025, 09:00:00", got.Date)

	t.Run("flags beat config", func(t *testing.T) {
		var got record
		env.runJSON(&got, "new", "report.md", "--id=false", "--date-format", "ISO")
		assert.Nil(t, got.ID)
		assert.Equal(t, "2025-01-10T09:00:00.000Z", got.Date)
	})
}

func TestConfig_MalformedFile(t *testing.T) {
	env := newTestEnv(t)
	env.write("a.md", "x", fileTime)
	require.NoError(t, os.MkdirAll(filepath.Join(env.dir, ".docrec"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(env.dir, ".docrec", "config.yaml"), []byte("format: [\n"), 0o644))

	out, err := env.runErr("new", "a.md")
	require.Error(t, err)
	env.contains(out, "malformed config file")
}

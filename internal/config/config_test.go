package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jpl-au/docrec/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points both config scopes at temp directories.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, document.DateISO, cfg.DateFormat())
	assert.False(t, cfg.IncludeID())
	assert.True(t, cfg.IncludeTags())
	assert.Equal(t, time.Local, cfg.Location())
	assert.True(t, cfg.Locale().IsRoot())
	assert.IsType(t, document.TimeRandomID{}, cfg.Generator())
	assert.Equal(t, int64(DefaultMaxContent), cfg.MaxContent())
	assert.Equal(t, document.NewFormatOptions(), cfg.FormatOptions())
}

func TestValidate(t *testing.T) {
	zero := int64(0)
	tests := []struct {
		name string
		cfg  Config
	}{
		{"date format", Config{Format: Format{Date: "long"}}},
		{"timezone", Config{Format: Format{Timezone: "Mars/Olympus"}}},
		{"locale", Config{Format: Format{Locale: "!!"}}},
		{"generator", Config{ID: ID{Generator: "sha"}}},
		{"max content", Config{Limits: Limits{MaxContent: &zero}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}

	valid := Config{
		Format: Format{Date: "relative", Timezone: "Europe/Berlin", Locale: "de-DE"},
		ID:     ID{Generator: GeneratorUUID},
	}
	assert.NoError(t, valid.Validate())
}

func TestSetGet(t *testing.T) {
	cfg := &Config{}

	require.NoError(t, cfg.Set("format.date", "local"))
	require.NoError(t, cfg.Set("format.include_id", "TRUE"))
	require.NoError(t, cfg.Set("format.include_tags", "false"))
	require.NoError(t, cfg.Set("format.timezone", "UTC"))
	require.NoError(t, cfg.Set("format.locale", "en-GB"))
	require.NoError(t, cfg.Set("id.generator", "UUID"))
	require.NoError(t, cfg.Set("limits.max_content", "2048"))

	for key, want := range map[string]string{
		"format.date":         "local",
		"format.include_id":   "true",
		"format.include_tags": "false",
		"format.timezone":     "UTC",
		"format.locale":       "en-GB",
		"id.generator":        "uuid",
		"limits.max_content":  "2048",
	} {
		got, err := cfg.Get(key)
		require.NoError(t, err)
		assert.Equal(t, want, got, key)
		assert.True(t, cfg.IsSet(key), key)
	}

	assert.Equal(t, time.UTC, cfg.Location())
	assert.Equal(t, "en-GB", cfg.Locale().String())
	assert.IsType(t, document.UUIDGenerator{}, cfg.Generator())
}

func TestSet_RejectsWithoutChanging(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Set("format.date", "relative"))

	err := cfg.Set("format.date", "bogus")
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, document.DateRelative, cfg.DateFormat())

	assert.ErrorIs(t, cfg.Set("format.include_id", "yes"), ErrInvalidValue)
	assert.ErrorIs(t, cfg.Set("limits.max_content", "-1"), ErrInvalidValue)
	assert.ErrorIs(t, cfg.Set("nope", "1"), ErrUnknownKey)

	_, err = cfg.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeGlobal, cfg.Scope())
	assert.True(t, cfg.IncludeTags())
}

func TestLoad_LocalWinsOverGlobal(t *testing.T) {
	home, _ := isolate(t)

	global := filepath.Join(home, ".docrec", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(global), 0755))
	require.NoError(t, os.WriteFile(global, []byte("format:\n  date: relative\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeGlobal, cfg.Scope())
	assert.Equal(t, document.DateRelative, cfg.DateFormat())

	require.NoError(t, os.MkdirAll(".docrec", 0755))
	require.NoError(t, os.WriteFile(LocalPath(), []byte("format:\n  date: local\n"), 0644))

	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, cfg.Scope())
	assert.Equal(t, document.DateLocal, cfg.DateFormat())
}

func TestLoad_Malformed(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(".docrec", 0755))
	require.NoError(t, os.WriteFile(LocalPath(), []byte("format: [unclosed"), 0644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed config file")
}

func TestLoad_InvalidValue(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(".docrec", 0755))
	require.NoError(t, os.WriteFile(LocalPath(), []byte("id:\n  generator: sha\n"), 0644))

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestSave_RoundTrip(t *testing.T) {
	isolate(t)

	cfg, err := LoadScope(ScopeLocal)
	require.NoError(t, err)
	require.NoError(t, cfg.Set("format.include_id", "true"))
	require.NoError(t, cfg.Save())

	assert.FileExists(t, LocalPath())

	again, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, again.Scope())
	assert.True(t, again.IncludeID())
	assert.False(t, again.IsSet("format.date"))
}

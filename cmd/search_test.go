package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// searchEnv creates three documents on consecutive days plus a broken file.
func searchEnv(t *testing.T) *testEnv {
	t.Helper()
	env := newTestEnv(t)
	env.write("docs/report.md", reportDoc, fileTime)
	env.write("docs/notes.md", notesDoc, fileTime.Add(24*time.Hour))
	env.write("docs/sub/shopping.txt", plainDoc, fileTime.Add(48*time.Hour))
	env.write("docs/.draft.md", "@title Draft\nhidden", fileTime)
	env.write("docs/zz-broken.md", "@title Broken\n", fileTime)
	return env
}

func titlesOf(recs []record) []string {
	titles := make([]string, len(recs))
	for i, r := range recs {
		titles[i] = r.Title
	}
	return titles
}

func TestSearch(t *testing.T) {
	env := searchEnv(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no filters", nil, []string{"Meeting Notes", "My Report", "shopping"}},
		{"title", []string{"--title", "REPORT"}, []string{"My Report"}},
		{"tag", []string{"--tag", "Finance"}, []string{"My Report"}},
		{"tag no match", []string{"--tag", "fin"}, []string{}},
		{"from", []string{"--from", "2025-01-11T09:00:00Z"}, []string{"Meeting Notes", "shopping"}},
		{"to", []string{"--to", "2025-01-11T09:00:00Z"}, []string{"Meeting Notes", "My Report"}},
		{"from and to", []string{"--from", "2025-01-11", "--to", "2025-01-12"}, []string{"Meeting Notes"}},
		{"combined", []string{"--title", "notes", "--tag", "team"}, []string{"Meeting Notes"}},
		{"hidden", []string{"--include-hidden", "--title", "draft"}, []string{"Draft"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got []record
			env.runJSON(&got, append([]string{"search", "docs"}, tc.args...)...)
			assert.Equal(t, tc.want, titlesOf(got))
		})
	}
}

func TestSearch_Output(t *testing.T) {
	env := searchEnv(t)

	t.Run("table", func(t *testing.T) {
		out := env.run("search", "docs")
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 4)
		assert.True(t, strings.HasPrefix(lines[0], "DATE"))
		env.contains(lines[2], "My Report")
		env.contains(lines[2], "finance, q1")
	})

	t.Run("full", func(t *testing.T) {
		out := env.run("search", "docs", "--tag", "team", "--full")
		env.contains(out, "Title: Meeting Notes\n")
		env.contains(out, "Discussed the roadmap.")
	})

	t.Run("count", func(t *testing.T) {
		out := env.run("search", "docs", "--count")
		env.equals(out, "3")

		var got struct{ Count int }
		env.runJSON(&got, "search", "docs", "--tag", "team", "--count")
		assert.Equal(t, 1, got.Count)
	})

	t.Run("empty json is an array", func(t *testing.T) {
		out := env.run("search", "docs", "--tag", "none", "-o", "json")
		env.equals(out, "[]")
	})

	t.Run("multiple paths keep order", func(t *testing.T) {
		var got []record
		env.runJSON(&got, "search", "docs/sub/shopping.txt", "docs/report.md")
		assert.Equal(t, []string{"shopping", "My Report"}, titlesOf(got))
	})

	t.Run("skipped file warns on stderr", func(t *testing.T) {
		stdout, stderr, err := env.runSplit("search", "docs", "--count")
		require.NoError(t, err)
		env.equals(stdout, "3")
		env.contains(stderr, "skipping file")
		env.contains(stderr, "zz-broken.md")
	})

	t.Run("verbose", func(t *testing.T) {
		_, stderr, err := env.runSplit("search", "docs", "--count", "--verbose")
		require.NoError(t, err)
		env.contains(stderr, "search complete")
	})
}

func TestSearch_Errors(t *testing.T) {
	env := searchEnv(t)

	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"no paths", []string{"search"}, "requires at least 1 arg"},
		{"strict", []string{"search", "docs", "--strict"}, "content cannot be empty"},
		{"bad from", []string{"search", "docs", "--from", "soon"}, "invalid date"},
		{"bad since", []string{"search", "docs", "--since", "7h"}, "invalid duration"},
		{"from and since", []string{"search", "docs", "--from", "2025-01-01", "--since", "7d"}, "none of the others"},
		{"inverted range", []string{"search", "docs", "--from", "2025-02-01", "--to", "2025-01-01"}, "is after end"},
		{"missing path", []string{"search", "nope"}, "does not exist"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := env.runErr(tc.args...)
			require.Error(t, err)
			env.contains(out, tc.message)
		})
	}
}

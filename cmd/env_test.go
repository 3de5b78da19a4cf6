// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full stack:
// command parsing -> extension -> loader -> document package -> output.
//
// The binary is built once and run in a temporary working directory with its
// own HOME, so config files and the audit log never touch the real user
// directory. Commands run as separate processes because cobra and the flag
// variables in this package hold global state between executions.

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the docrec binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		// Build to a temp location
		tmpDir, err := os.MkdirTemp("", "docrec-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "docrec"
		if os.PathSeparator == '\\' {
			binaryName = "docrec.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// fileTime is the modification time given to fixture files unless a test
// picks its own.
var fileTime = time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
}

// newTestEnv creates a temporary working directory and home directory.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}
}

// write creates a fixture file relative to the working directory with
// modification time mtime.
func (e *testEnv) write(path, content string, mtime time.Time) string {
	e.t.Helper()
	full := filepath.Join(e.dir, path)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(e.t, os.WriteFile(full, []byte(content), 0o644))
	require.NoError(e.t, os.Chtimes(full, mtime, mtime))
	return path
}

// run executes docrec with the given args and returns stdout.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	stdout, stderr, err := e.exec("", args...)
	if err != nil {
		e.t.Fatalf("docrec %v failed: %v\nstdout: %s\nstderr: %s", args, err, stdout, stderr)
	}
	return stdout
}

// runErr executes docrec and returns stdout followed by stderr, and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	stdout, stderr, err := e.exec("", args...)
	return stdout + stderr, err
}

// runStdin executes docrec with stdin input and returns stdout.
func (e *testEnv) runStdin(input string, args ...string) string {
	e.t.Helper()
	stdout, stderr, err := e.exec(input, args...)
	if err != nil {
		e.t.Fatalf("docrec %v failed: %v\nstdout: %s\nstderr: %s", args, err, stdout, stderr)
	}
	return stdout
}

// runSplit executes docrec and returns stdout and stderr separately.
func (e *testEnv) runSplit(args ...string) (string, string, error) {
	e.t.Helper()
	return e.exec("", args...)
}

func (e *testEnv) exec(input string, args ...string) (string, string, error) {
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(),
		"HOME="+e.home,
		"USERPROFILE="+e.home,
		"TZ=UTC",
		"LC_ALL=en_US.UTF-8",
	)
	cmd.Stdin = strings.NewReader(input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// runJSON executes docrec with -o json and decodes stdout into v.
func (e *testEnv) runJSON(v any, args ...string) {
	e.t.Helper()
	out := e.run(append(args, "-o", "json")...)
	require.NoError(e.t, json.Unmarshal([]byte(out), v), "output: %s", out)
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}

// record mirrors the JSON shape of a formatted document.
type record struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Date    string   `json:"date"`
	ID      *string  `json:"id"`
	Tags    []string `json:"tags"`
}

// Fixture documents.
const (
	reportDoc = "@title My Report\n@tags Finance, Q1\nQuarterly numbers are up.\n"
	notesDoc  = "# Meeting Notes\n\n@tags team\nDiscussed the roadmap.\n"
	plainDoc  = "Shopping list: milk, eggs.\n"
)

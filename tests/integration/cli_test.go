package integration

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain builds the sharedkit binary once before running tests.
func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "sharedkit-test-*")
	if err != nil {
		buildErr = err
		os.Exit(1)
	}

	sharedkitBin, buildErr = buildBinary(tmpDir)
	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

func TestInitCreatesConfigAndStore(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRun("init")
	assert.Contains(t, result.Stdout, "Created ")

	cfg, err := os.ReadFile(filepath.Join(env.ConfigDir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), "backend: sqlite")
	assert.Contains(t, string(cfg), "color: red")
	assert.Contains(t, string(cfg), "data_dir: "+env.DataDir)
	assert.FileExists(t, filepath.Join(env.DataDir, "tallies.jsonl"))
	assert.FileExists(t, filepath.Join(env.DataDir, "sharedkit.db"))
}

func TestConsumerReports(t *testing.T) {
	env := NewTestEnv(t)

	tests := []struct {
		consumer string
		want     []string
	}{
		{"consumer", []string{
			"Hello, World!",
			"Processing apple",
			"Using shared class: consumer - SHARED_VALUE",
			"Processed items: apple=1 banana=1 grape=1 orange=1",
			"Selected color: red",
			"Found 4 items",
			"Sorted data: apple, banana, grape, orange",
		}},
		{"another", []string{
			"Using constant: SHARED_VALUE",
			"Name: another example, Value: 3.14",
			"Implementation result: Hello, SHARED_VALUE!",
			"Selected color: green",
		}},
		{"consumer_clean", []string{
			"Hello, World!",
			"Processing grape",
			"Found 4 items",
		}},
		{"clean", []string{
			"Instance name: clean",
			"Processed: SHARED_VALUE",
			"Sum: 150",
		}},
		{"main", []string{
			"Hello, World!",
			"New value: 15",
			"Counts: apple=2 banana=1 orange=1",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.consumer, func(t *testing.T) {
			out := env.MustRun("run", tt.consumer).Stdout
			for _, line := range tt.want {
				assert.Contains(t, out, line+"\n")
			}
			// Output is piped, so no ANSI codes.
			assert.NotContains(t, out, "\x1b[")
		})
	}
}

func TestUnknownConsumerExitsWithUserError(t *testing.T) {
	env := NewTestEnv(t)

	result := env.Run("run", "missing")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "consumer not found")
	assert.Empty(t, result.Stdout)
}

func TestInvalidConfigExitsWithUserError(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteConfig("backend: postgres\n")

	result := env.Run("greet")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "invalid config")
}

func TestHelpersCommands(t *testing.T) {
	env := NewTestEnv(t)

	assert.Equal(t, "Hello, Gopher!\n", env.MustRun("greet", "Gopher").Stdout)
	assert.Equal(t, "apple\nbanana\norange\ngrape\n", env.MustRun("items").Stdout)
	assert.Equal(t, "* red\n  green\n  blue\n", env.MustRun("colors").Stdout)
	assert.Equal(t, "a: 3\nb: 1\n", env.MustRun("count", "a", "b", "a", "a").Stdout)
}

func TestTallyLifecycle(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRun("init")

	env.MustRun("run", "consumer", "--record")
	counted := ParseJSON[struct {
		TallyID string `json:"tally_id"`
	}](t, env.MustRun("--json", "count", "--record", "x", "y", "x").Stdout)
	require.NotEmpty(t, counted.TallyID)

	all := ParseJSON[[]Tally](t, env.MustRun("--json", "tally", "list").Stdout)
	require.Len(t, all, 2)
	assert.Equal(t, "consumer", all[0].Consumer)
	assert.Equal(t, map[string]int{"apple": 1, "banana": 1, "orange": 1, "grape": 1}, all[0].Counts)
	assert.Equal(t, counted.TallyID, all[1].TallyID)

	only := ParseJSON[[]Tally](t, env.MustRun("--json", "tally", "list", "--consumer", "count").Stdout)
	require.Len(t, only, 1)
	assert.Equal(t, map[string]int{"x": 2, "y": 1}, only[0].Counts)

	// The JSONL file is the source of truth and survives a rebuild of the
	// database on the next attach.
	lines := readLines(t, filepath.Join(env.DataDir, "tallies.jsonl"))
	assert.Len(t, lines, 2)
	require.NoError(t, os.Remove(filepath.Join(env.DataDir, "sharedkit.db")))

	shown := ParseJSON[Tally](t, env.MustRun("--json", "tally", "show", counted.TallyID).Stdout)
	assert.Equal(t, "count", shown.Consumer)

	env.MustRun("tally", "delete", counted.TallyID)
	assert.Len(t, readLines(t, filepath.Join(env.DataDir, "tallies.jsonl")), 1)

	result := env.Run("tally", "show", counted.TallyID)
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "not found")
}

func TestVersion(t *testing.T) {
	env := NewTestEnv(t)

	out := env.MustRun("version").Stdout
	assert.True(t, strings.HasPrefix(out, "sharedkit v"))
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	require.NoError(t, scanner.Err())
	return lines
}

package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withPlatform replaces platformDir for the duration of the test.
func withPlatform(t *testing.T, goos, home, userConfig, cwd string) {
	t.Helper()
	orig := platformDir
	t.Cleanup(func() { platformDir = orig })

	platformDir.goos = goos
	platformDir.homeDir = func() (string, error) { return home, nil }
	platformDir.userConfigDir = func() (string, error) { return userConfig, nil }
	platformDir.getwd = func() (string, error) { return cwd, nil }
}

func TestDefaultDirs_Linux(t *testing.T) {
	withPlatform(t, "linux", "/home/u", "/unused", "/work")

	t.Run("XDG variables win", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
		t.Setenv("XDG_DATA_HOME", "/xdg/data")

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/xdg/config/sharedkit", got)

		got, err = DefaultDataDir()
		require.NoError(t, err)
		assert.Equal(t, "/xdg/data/sharedkit", got)
	})

	t.Run("home fallbacks", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("XDG_DATA_HOME", "")

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/home/u/.config/sharedkit", got)

		got, err = DefaultDataDir()
		require.NoError(t, err)
		assert.Equal(t, "/home/u/.local/share/sharedkit", got)
	})
}

func TestDefaultDirs_Darwin(t *testing.T) {
	withPlatform(t, "darwin", "/Users/u", "/Users/u/Library/Application Support", "/work")

	got, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/Users/u/Library/Application Support/sharedkit", got)

	got, err = DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, "/Users/u/Library/Application Support/sharedkit", got)
}

func TestDefaultConfigDir_HomeError(t *testing.T) {
	withPlatform(t, "linux", "", "", "/work")
	boom := errors.New("no home")
	platformDir.homeDir = func() (string, error) { return "", boom }
	t.Setenv("XDG_CONFIG_HOME", "")

	_, err := DefaultConfigDir()
	assert.ErrorIs(t, err, boom)
}

func TestResolveConfigDir(t *testing.T) {
	cwd := t.TempDir()
	withPlatform(t, "linux", "/home/u", "", cwd)
	t.Setenv("XDG_CONFIG_HOME", "")

	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/env/config")
		got, err := ResolveConfigDir("/flag/config")
		require.NoError(t, err)
		assert.Equal(t, "/flag/config", got)
	})

	t.Run("env wins when flag empty", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/env/config")
		got, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/env/config", got)
	})

	t.Run("per-user default without a local dir", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		got, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/home/u/.config/sharedkit", got)
	})

	t.Run("project-local dir when present", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		local := filepath.Join(cwd, DefaultConfigDirName)
		require.NoError(t, os.Mkdir(local, 0o755))
		t.Cleanup(func() { os.RemoveAll(local) })

		got, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, local, got)
	})

	t.Run("relative flag becomes absolute", func(t *testing.T) {
		got, err := ResolveConfigDir("relative/path")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
	})
}

func TestResolveDataDir(t *testing.T) {
	withPlatform(t, "linux", "/home/u", "", "/work")

	tests := []struct {
		name        string
		flag        string
		configValue string
		envVal      string
		want        string
	}{
		{name: "flag wins over all", flag: "/flag", configValue: "/config", envVal: "/env", want: "/flag"},
		{name: "config wins over env", configValue: "/config", envVal: "/env", want: "/config"},
		{name: "env when flag and config empty", envVal: "/env", want: "/env"},
		{name: "CWD default when all empty", want: "/work/.sharedkit-db"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDataDir, tt.envVal)
			got, err := ResolveDataDir(tt.flag, tt.configValue)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("relative config value becomes absolute", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")
		got, err := ResolveDataDir("", "relative/config")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
	})
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, filepath.Join("/cfg", "config.yaml"), ConfigFile("/cfg"))
}

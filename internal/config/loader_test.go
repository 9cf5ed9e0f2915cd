package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "gomaze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	configPath := writeConfig(t, `
mazes:
  maze3:
    file: resources/maze3.txt
    description: "classic assignment maze"
  abs:
    file: /srv/mazes/abs.txt
    solver:
      algorithms: [bfs]

solver:
  algorithms: [dfs, bfs]
  verify_method: sha256

render:
  color: false
  path_symbol: "o"

history:
  enabled: true
  driver: mysql
  table: runs
  database:
    host: localhost
    user: maze
    password: secret
    database: mazes

logging:
  level: debug
  format: json
  output: stdout
`)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Len(t, cfg.Mazes, 2)
	assert.Equal(t, "classic assignment maze", cfg.Mazes["maze3"].Description)
	assert.Equal(t, []string{"dfs", "bfs"}, cfg.Solver.Algorithms)
	assert.Equal(t, "sha256", cfg.Solver.VerifyMethod)
	assert.False(t, cfg.Render.Color)
	assert.Equal(t, "o", cfg.Render.PathSymbol)
	assert.Equal(t, "#", cfg.Render.WallSymbol, "unset fields keep defaults")
	assert.Equal(t, DriverMySQL, cfg.History.Driver)
	assert.Equal(t, 3306, cfg.History.Database.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)

	path, err := cfg.MazePath("maze3")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(configPath), "resources", "maze3.txt"), path)

	path, err = cfg.MazePath("abs")
	require.NoError(t, err)
	assert.Equal(t, "/srv/mazes/abs.txt", path)

	assert.Equal(t, []string{"bfs"}, cfg.GetMazeSolver("abs").Algorithms)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, "mazes: [unclosed\n")
	_, err := Load(configPath)
	assert.Error(t, err)
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("GOMAZE_TEST_DB_PASSWORD", "from-env")
	t.Setenv("GOMAZE_TEST_MAZE_DIR", "/data/mazes")

	configPath := writeConfig(t, `
mazes:
  env_maze:
    file: ${GOMAZE_TEST_MAZE_DIR}/one.txt
history:
  database:
    password: ${GOMAZE_TEST_DB_PASSWORD}
    user: $GOMAZE_TEST_UNSET_VARIABLE
`)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/data/mazes/one.txt", cfg.Mazes["env_maze"].File)
	assert.Equal(t, "from-env", cfg.History.Database.Password)
	assert.Equal(t, "$GOMAZE_TEST_UNSET_VARIABLE", cfg.History.Database.User)
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
mazes:
  tiny:
    file: tiny.txt
`)))

	cfg, err := LoadFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "tiny.txt", cfg.Mazes["tiny"].File)

	// No config file, so paths are left as written.
	path, err := cfg.MazePath("tiny")
	require.NoError(t, err)
	assert.Equal(t, "tiny.txt", path)
}

func TestListMazesAndGetMaze(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mazes = map[string]MazeConfig{
		"zeta":  {File: "z.txt"},
		"alpha": {File: "a.txt"},
		"mid":   {File: "m.txt"},
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, cfg.ListMazes())

	maze, err := cfg.GetMaze("mid")
	require.NoError(t, err)
	assert.Equal(t, "m.txt", maze.File)

	_, err = cfg.GetMaze("missing")
	assert.EqualError(t, err, `maze "missing" not found in configuration`)

	_, err = cfg.MazePath("missing")
	assert.Error(t, err)
}

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		logFormat    string
		noColor      bool
		verifyMethod string
		check        func(t *testing.T, cfg *Config)
	}{
		{
			name: "no overrides keeps defaults",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
				assert.True(t, cfg.Render.Color)
				assert.Equal(t, "steps", cfg.Solver.VerifyMethod)
			},
		},
		{
			name:         "all overrides",
			logLevel:     "debug",
			logFormat:    "json",
			noColor:      true,
			verifyMethod: "sha256",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.False(t, cfg.Render.Color)
				assert.Equal(t, "sha256", cfg.Solver.VerifyMethod)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ApplyOverrides(tt.logLevel, tt.logFormat, tt.noColor, tt.verifyMethod)
			tt.check(t, cfg)
		})
	}
}

func TestApplyOverrides_VerifyWinsOverMaze(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mazes = map[string]MazeConfig{
		"spiral": {
			File:   "spiral.txt",
			Solver: &SolverConfig{Algorithms: []string{"bfs"}, VerifyMethod: "sha256"},
		},
	}

	require.Equal(t, "sha256", cfg.GetMazeSolver("spiral").VerifyMethod)

	cfg.ApplyOverrides("", "", false, "skip")

	spiral := cfg.GetMazeSolver("spiral")
	assert.Equal(t, "skip", spiral.VerifyMethod)
	assert.Equal(t, []string{"bfs"}, spiral.Algorithms, "per-maze algorithms are kept")
	assert.Equal(t, "skip", cfg.GetMazeSolver("missing").VerifyMethod)
}

func TestApplyOverrides_EmptyVerifyKeepsMaze(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mazes = map[string]MazeConfig{
		"spiral": {File: "spiral.txt", Solver: &SolverConfig{VerifyMethod: "sha256"}},
	}

	cfg.ApplyOverrides("debug", "", false, "")
	assert.Equal(t, "sha256", cfg.GetMazeSolver("spiral").VerifyMethod)
}

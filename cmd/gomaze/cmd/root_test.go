package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigFile(t *testing.T) {
	originalCfgFile := cfgFile
	defer func() {
		cfgFile = originalCfgFile
	}()

	tests := []struct {
		name     string
		cfgValue string
		want     string
	}{
		{name: "empty config file", cfgValue: "", want: ""},
		{name: "custom config file", cfgValue: "/path/to/custom.yaml", want: "/path/to/custom.yaml"},
		{name: "config file with spaces", cfgValue: "/path/to/my config.yaml", want: "/path/to/my config.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgFile = tt.cfgValue
			assert.Equal(t, tt.want, GetConfigFile())
		})
	}
}

func TestGetCLIOverrides(t *testing.T) {
	originalLogLevel := logLevel
	originalLogFormat := logFormat
	originalNoColor := noColor
	originalVerify := verifyMethod
	defer func() {
		logLevel = originalLogLevel
		logFormat = originalLogFormat
		noColor = originalNoColor
		verifyMethod = originalVerify
	}()

	tests := []struct {
		name         string
		logLevel     string
		logFormat    string
		noColor      bool
		verifyMethod string
		want         CLIOverrides
	}{
		{
			name: "empty overrides",
			want: CLIOverrides{},
		},
		{
			name:         "all overrides set",
			logLevel:     "debug",
			logFormat:    "json",
			noColor:      true,
			verifyMethod: "sha256",
			want: CLIOverrides{
				LogLevel:     "debug",
				LogFormat:    "json",
				NoColor:      true,
				VerifyMethod: "sha256",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logLevel = tt.logLevel
			logFormat = tt.logFormat
			noColor = tt.noColor
			verifyMethod = tt.verifyMethod
			assert.Equal(t, tt.want, GetCLIOverrides())
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	originalEnvFile := envFile
	defer func() { envFile = originalEnvFile }()

	envFile = ""
	assert.NoError(t, loadEnvFile(rootCmd, nil))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GOMAZE_TEST_DB_PASSWORD=from-env-file\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("GOMAZE_TEST_DB_PASSWORD") })

	envFile = path
	require.NoError(t, loadEnvFile(rootCmd, nil))
	assert.Equal(t, "from-env-file", os.Getenv("GOMAZE_TEST_DB_PASSWORD"))

	envFile = filepath.Join(t.TempDir(), "missing.env")
	err := loadEnvFile(rootCmd, nil)
	assert.ErrorContains(t, err, "failed to load env file")
}

func TestParseAlgorithmFlag(t *testing.T) {
	algs, err := parseAlgorithmFlag("")
	require.NoError(t, err)
	assert.Nil(t, algs)

	algs, err = parseAlgorithmFlag("bfs, dfs")
	require.NoError(t, err)
	assert.Equal(t, "bfs", string(algs[0]))
	assert.Equal(t, "dfs", string(algs[1]))

	algs, err = parseAlgorithmFlag("all")
	require.NoError(t, err)
	assert.Len(t, algs, 2)

	_, err = parseAlgorithmFlag("astar")
	assert.Error(t, err)
}

func TestCheckMazeSource(t *testing.T) {
	assert.EqualError(t, checkMazeSource("", ""), "one of --maze or --file is required")
	assert.EqualError(t, checkMazeSource("a", "b"), "--maze and --file are mutually exclusive")
	assert.NoError(t, checkMazeSource("a", ""))
	assert.NoError(t, checkMazeSource("", "b"))
}

func TestLoadConfig_MissingDefaultAllowed(t *testing.T) {
	withConfig(t, filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := loadConfig(solveCmd, true)
	require.NoError(t, err)
	assert.Empty(t, cfg.Mazes)

	_, err = loadConfig(solveCmd, false)
	assert.ErrorContains(t, err, "failed to load config")
}

func TestLoadConfig_AppliesOverrides(t *testing.T) {
	withConfig(t, writeTestWorkspace(t, false))

	originalVerify := verifyMethod
	defer func() { verifyMethod = originalVerify }()
	verifyMethod = "skip"

	cfg, err := loadConfig(solveCmd, false)
	require.NoError(t, err)
	assert.Equal(t, "skip", cfg.Solver.VerifyMethod)

	verifyMethod = "md5"
	_, err = loadConfig(solveCmd, false)
	assert.ErrorContains(t, err, "invalid configuration")
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from the specified file path.
// It supports YAML files and performs environment variable substitution.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := LoadFromViper(v)
	if err != nil {
		return nil, err
	}
	cfg.baseDir = filepath.Dir(configPath)
	return cfg, nil
}

// LoadFromViper creates a Config from an existing Viper instance.
// Useful for testing or when Viper is configured externally.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Mazes == nil {
		cfg.Mazes = map[string]MazeConfig{}
	}

	substituteEnvVars(cfg)
	return cfg, nil
}

// envVarPattern matches ${VAR_NAME} or $VAR_NAME patterns
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// substituteEnvVars replaces ${VAR_NAME} patterns with environment variable values.
func substituteEnvVars(cfg *Config) {
	db := &cfg.History.Database
	db.Host = expandEnvVar(db.Host)
	db.User = expandEnvVar(db.User)
	db.Password = expandEnvVar(db.Password)
	db.Database = expandEnvVar(db.Database)

	cfg.History.SQLitePath = expandEnvVar(cfg.History.SQLitePath)
	cfg.Logging.Output = expandEnvVar(cfg.Logging.Output)

	for name, maze := range cfg.Mazes {
		maze.File = expandEnvVar(maze.File)
		cfg.Mazes[name] = maze
	}
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value, exists := os.LookupEnv(varName); exists {
			return value
		}
		// Return original if env var not found
		return match
	})
}

// GetMaze retrieves a specific maze configuration by name.
func (c *Config) GetMaze(name string) (*MazeConfig, error) {
	maze, exists := c.Mazes[name]
	if !exists {
		return nil, fmt.Errorf("maze %q not found in configuration", name)
	}
	return &maze, nil
}

// ListMazes returns all maze names defined in the configuration, sorted.
func (c *Config) ListMazes() []string {
	names := make([]string, 0, len(c.Mazes))
	for name := range c.Mazes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MazePath returns the layout file for a maze. Relative paths resolve against
// the directory of the config file.
func (c *Config) MazePath(name string) (string, error) {
	maze, err := c.GetMaze(name)
	if err != nil {
		return "", err
	}
	return c.ResolvePath(maze.File), nil
}

// ResolvePath makes p relative to the config file directory unless it is absolute.
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.baseDir == "" {
		return p
	}
	return filepath.Join(c.baseDir, p)
}

// ApplyOverrides applies CLI flag overrides to the global configuration.
// Only non-zero/non-empty values are applied. A verify method also replaces
// any per-maze verify_method returned by GetMazeSolver.
func (c *Config) ApplyOverrides(logLevel, logFormat string, noColor bool, verifyMethod string) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if noColor {
		c.Render.Color = false
	}
	if verifyMethod != "" {
		c.Solver.VerifyMethod = verifyMethod
		c.verifyOverride = verifyMethod
	}
}

// Package config provides configuration structures and loading for gomaze.
package config

// Config represents the complete application configuration.
type Config struct {
	Mazes   map[string]MazeConfig `yaml:"mazes" mapstructure:"mazes"`
	Solver  SolverConfig          `yaml:"solver" mapstructure:"solver"`
	Render  RenderConfig          `yaml:"render" mapstructure:"render"`
	History HistoryConfig         `yaml:"history" mapstructure:"history"`
	Logging LoggingConfig         `yaml:"logging" mapstructure:"logging"`

	// baseDir is the directory of the loaded config file; relative maze paths resolve against it.
	baseDir string

	// verifyOverride is the --verify flag value; it wins over per-maze settings.
	verifyOverride string
}

// MazeConfig names a maze layout file.
type MazeConfig struct {
	File        string        `yaml:"file" mapstructure:"file"`
	Description string        `yaml:"description" mapstructure:"description"`
	Solver      *SolverConfig `yaml:"solver,omitempty" mapstructure:"solver"`
}

// SolverConfig selects algorithms and how solutions are verified.
type SolverConfig struct {
	Algorithms   []string `yaml:"algorithms" mapstructure:"algorithms"`       // dfs, bfs, all
	VerifyMethod string   `yaml:"verify_method" mapstructure:"verify_method"` // steps, sha256, skip
}

// RenderConfig controls how grids and solutions are printed.
type RenderConfig struct {
	Color       bool   `yaml:"color" mapstructure:"color"`
	PathSymbol  string `yaml:"path_symbol" mapstructure:"path_symbol"`
	WallSymbol  string `yaml:"wall_symbol" mapstructure:"wall_symbol"`
	OpenSymbol  string `yaml:"open_symbol" mapstructure:"open_symbol"`
	StartSymbol string `yaml:"start_symbol" mapstructure:"start_symbol"`
	EndSymbol   string `yaml:"end_symbol" mapstructure:"end_symbol"`
	Padding     int    `yaml:"padding" mapstructure:"padding"` // spaces between side-by-side columns
}

// HistoryConfig enables recording of solve runs in a database.
type HistoryConfig struct {
	Enabled    bool           `yaml:"enabled" mapstructure:"enabled"`
	Driver     string         `yaml:"driver" mapstructure:"driver"` // mysql or sqlite
	SQLitePath string         `yaml:"sqlite_path" mapstructure:"sqlite_path"`
	Table      string         `yaml:"table" mapstructure:"table"`
	Database   DatabaseConfig `yaml:"database" mapstructure:"database"`
}

// DatabaseConfig represents a MySQL database connection configuration.
type DatabaseConfig struct {
	Host               string `yaml:"host" mapstructure:"host"`
	Port               int    `yaml:"port" mapstructure:"port"`
	User               string `yaml:"user" mapstructure:"user"`
	Password           string `yaml:"password" mapstructure:"password"`
	Database           string `yaml:"database" mapstructure:"database"`
	TLS                string `yaml:"tls" mapstructure:"tls"` // disable, preferred, required
	MaxConnections     int    `yaml:"max_connections" mapstructure:"max_connections"`
	MaxIdleConnections int    `yaml:"max_idle_connections" mapstructure:"max_idle_connections"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// Driver names accepted by HistoryConfig.Driver.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Mazes: map[string]MazeConfig{},
		Solver: SolverConfig{
			Algorithms:   []string{"all"},
			VerifyMethod: "steps",
		},
		Render: RenderConfig{
			Color:       true,
			PathSymbol:  "*",
			WallSymbol:  "#",
			OpenSymbol:  ".",
			StartSymbol: "S",
			EndSymbol:   "E",
			Padding:     4,
		},
		History: HistoryConfig{
			Enabled:    false,
			Driver:     DriverSQLite,
			SQLitePath: "gomaze_history.db",
			Table:      "maze_runs",
			Database: DatabaseConfig{
				Port:               3306,
				TLS:                "preferred",
				MaxConnections:     4,
				MaxIdleConnections: 2,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// GetMazeSolver returns the solver config for a maze by name, falling back to global if not set.
func (c *Config) GetMazeSolver(name string) SolverConfig {
	maze, err := c.GetMaze(name)
	if err != nil {
		return c.Solver
	}
	result := maze.GetMazeSolver(c.Solver)
	if c.verifyOverride != "" {
		result.VerifyMethod = c.verifyOverride
	}
	return result
}

// GetMazeSolver returns the solver config for a maze, falling back to global if not set.
func (mc *MazeConfig) GetMazeSolver(global SolverConfig) SolverConfig {
	if mc.Solver == nil {
		return global
	}

	result := global
	if len(mc.Solver.Algorithms) > 0 {
		result.Algorithms = mc.Solver.Algorithms
	}
	if mc.Solver.VerifyMethod != "" {
		result.VerifyMethod = mc.Solver.VerifyMethod
	}
	return result
}

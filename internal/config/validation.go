package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dbsmedya/gomaze/internal/sqlutil"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	for _, name := range c.ListMazes() {
		maze := c.Mazes[name]
		if err := c.validateMaze(name, &maze); err != nil {
			errors = append(errors, err...)
		}
	}

	if err := validateSolver("solver", &c.Solver); err != nil {
		errors = append(errors, err...)
	}

	if err := c.validateRender(); err != nil {
		errors = append(errors, err...)
	}

	if c.History.Enabled {
		if err := c.validateHistory(); err != nil {
			errors = append(errors, err...)
		}
	}

	if err := c.validateLogging(); err != nil {
		errors = append(errors, err...)
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateMaze(name string, maze *MazeConfig) ValidationErrors {
	var errors ValidationErrors
	prefix := fmt.Sprintf("mazes.%s", name)

	if maze.File == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".file",
			Message: "file is required",
		})
	}

	if maze.Solver != nil {
		if err := validateSolver(prefix+".solver", maze.Solver); err != nil {
			errors = append(errors, err...)
		}
	}

	return errors
}

func validateSolver(prefix string, s *SolverConfig) ValidationErrors {
	var errors ValidationErrors

	validAlgorithms := map[string]bool{"dfs": true, "bfs": true, "all": true}
	for i, alg := range s.Algorithms {
		if !validAlgorithms[strings.ToLower(strings.TrimSpace(alg))] {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("%s.algorithms[%d]", prefix, i),
				Message: "algorithm must be 'dfs', 'bfs', or 'all'",
			})
		}
	}

	validMethods := map[string]bool{"steps": true, "sha256": true, "skip": true, "": true}
	if !validMethods[s.VerifyMethod] {
		errors = append(errors, ValidationError{
			Field:   prefix + ".verify_method",
			Message: "verify_method must be 'steps', 'sha256', or 'skip'",
		})
	}

	return errors
}

func (c *Config) validateRender() ValidationErrors {
	var errors ValidationErrors

	symbols := []struct {
		field string
		value string
	}{
		{"render.path_symbol", c.Render.PathSymbol},
		{"render.wall_symbol", c.Render.WallSymbol},
		{"render.open_symbol", c.Render.OpenSymbol},
		{"render.start_symbol", c.Render.StartSymbol},
		{"render.end_symbol", c.Render.EndSymbol},
	}
	for _, s := range symbols {
		if utf8.RuneCountInString(s.value) != 1 {
			errors = append(errors, ValidationError{
				Field:   s.field,
				Message: "symbol must be exactly one character",
			})
		}
	}

	if c.Render.Padding < 0 {
		errors = append(errors, ValidationError{
			Field:   "render.padding",
			Message: "padding cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateHistory() ValidationErrors {
	var errors ValidationErrors

	switch c.History.Driver {
	case DriverMySQL:
		if err := validateDatabase("history.database", &c.History.Database); err != nil {
			errors = append(errors, err...)
		}
	case DriverSQLite:
		if c.History.SQLitePath == "" {
			errors = append(errors, ValidationError{
				Field:   "history.sqlite_path",
				Message: "sqlite_path is required for the sqlite driver",
			})
		}
	default:
		errors = append(errors, ValidationError{
			Field:   "history.driver",
			Message: "driver must be 'mysql' or 'sqlite'",
		})
	}

	if !sqlutil.IsValidIdentifier(c.History.Table) {
		errors = append(errors, ValidationError{
			Field:   "history.table",
			Message: "table must contain only alphanumeric characters and underscores",
		})
	}

	return errors
}

func validateDatabase(prefix string, db *DatabaseConfig) ValidationErrors {
	var errors ValidationErrors

	if db.Host == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".host",
			Message: "host is required",
		})
	}

	if db.Port <= 0 || db.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".port",
			Message: "port must be between 1 and 65535",
		})
	}

	if db.User == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".user",
			Message: "user is required",
		})
	}

	if db.Database == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".database",
			Message: "database name is required",
		})
	}

	validTLS := map[string]bool{"disable": true, "preferred": true, "required": true, "": true}
	if !validTLS[db.TLS] {
		errors = append(errors, ValidationError{
			Field:   prefix + ".tls",
			Message: "tls must be 'disable', 'preferred', or 'required'",
		})
	}

	if db.MaxConnections < 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".max_connections",
			Message: "max_connections cannot be negative",
		})
	}

	if db.MaxIdleConnections < 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".max_idle_connections",
			Message: "max_idle_connections cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}

package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile      string
	envFile      string
	logLevel     string
	logFormat    string
	noColor      bool
	verifyMethod string
)

var rootCmd = &cobra.Command{
	Use:   "gomaze",
	Short: "Grid maze solver",
	Long: `Solve 2D grid mazes with depth-first and breadth-first search.

Features:
  - Text maze layouts with walls (#), open cells (.), start (S) and end (E)
  - DFS and BFS with parent-pointer path reconstruction
  - Path verification and SHA256 fingerprints
  - Side-by-side comparison of algorithms
  - Run history in SQLite or MySQL`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnvFile,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "gomaze.yaml",
		"Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "",
		"Load environment variables from this file before reading the config")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Output and verification overrides
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored maze output")
	rootCmd.PersistentFlags().StringVar(&verifyMethod, "verify", "",
		"Override path verification method (steps, sha256, skip)")
}

// loadEnvFile makes variables from --env-file visible to ${VAR} substitution
// in the config. Variables already set in the environment win.
func loadEnvFile(cmd *cobra.Command, args []string) error {
	if envFile == "" {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}
	return nil
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel     string
	LogFormat    string
	NoColor      bool
	VerifyMethod string
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:     logLevel,
		LogFormat:    logFormat,
		NoColor:      noColor,
		VerifyMethod: verifyMethod,
	}
}

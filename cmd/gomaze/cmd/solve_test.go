package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetSolveFlags(t *testing.T) {
	t.Helper()
	m, f, a := solveMaze, solveFile, solveAlgorithm
	t.Cleanup(func() {
		solveMaze, solveFile, solveAlgorithm = m, f, a
	})
	solveMaze, solveFile, solveAlgorithm = "", "", ""
}

func TestSolveCommandStructure(t *testing.T) {
	assert.Equal(t, "solve", solveCmd.Use)
	assert.NotEmpty(t, solveCmd.Short)
	assert.NotEmpty(t, solveCmd.Long)
	assert.NotNil(t, solveCmd.RunE)
	assert.NotNil(t, solveCmd.Flags().Lookup("maze"))
	assert.NotNil(t, solveCmd.Flags().Lookup("file"))
	assert.NotNil(t, solveCmd.Flags().Lookup("algorithm"))
}

func TestRunSolve_ConfiguredMaze(t *testing.T) {
	resetSolveFlags(t)
	withConfig(t, writeTestWorkspace(t, false))
	solveMaze = "open"

	var buf bytes.Buffer
	solveCmd.SetOut(&buf)
	solveCmd.SetErr(&buf)

	require.NoError(t, runSolve(solveCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "Maze open (3x3)")
	assert.Contains(t, out, "[DFS]")
	assert.Contains(t, out, "[BFS]")
	// DFS heads south first, BFS east first.
	assert.Contains(t, out, "*..    Steps:")
	assert.Contains(t, out, "S**    Status:")
	assert.Contains(t, out, "Solved 2 of 2")
}

func TestRunSolve_AlgorithmFlag(t *testing.T) {
	resetSolveFlags(t)
	withConfig(t, writeTestWorkspace(t, false))
	solveMaze = "open"
	solveAlgorithm = "bfs"

	var buf bytes.Buffer
	solveCmd.SetOut(&buf)

	require.NoError(t, runSolve(solveCmd, nil))
	assert.NotContains(t, buf.String(), "[DFS]")
	assert.Contains(t, buf.String(), "Solved 1 of 1")
}

func TestRunSolve_PerMazeSolver(t *testing.T) {
	resetSolveFlags(t)
	withConfig(t, writeTestWorkspace(t, false))
	solveMaze = "custom"

	var buf bytes.Buffer
	solveCmd.SetOut(&buf)

	require.NoError(t, runSolve(solveCmd, nil))
	assert.Contains(t, buf.String(), "[BFS]")
	assert.Contains(t, buf.String(), "SHA-256:")
	assert.Contains(t, buf.String(), "Solved 1 of 1")
}

func TestRunSolve_NoPath(t *testing.T) {
	resetSolveFlags(t)
	withConfig(t, writeTestWorkspace(t, false))
	solveMaze = "walled"

	var buf bytes.Buffer
	solveCmd.SetOut(&buf)

	require.NoError(t, runSolve(solveCmd, nil))
	assert.Contains(t, buf.String(), "no_path")
	assert.Contains(t, buf.String(), "Solved 0 of 2")
}

func TestRunSolve_FileWithoutConfig(t *testing.T) {
	resetSolveFlags(t)
	dir := t.TempDir()
	withConfig(t, filepath.Join(dir, "gomaze.yaml"))

	mazeFile := filepath.Join(dir, "line.txt")
	require.NoError(t, os.WriteFile(mazeFile, []byte("S..E\n"), 0644))
	solveFile = mazeFile

	var buf bytes.Buffer
	solveCmd.SetOut(&buf)

	require.NoError(t, runSolve(solveCmd, nil))
	assert.Contains(t, buf.String(), "Maze line (1x4)")
}

func TestRunSolve_FileUsesGlobalSolver(t *testing.T) {
	resetSolveFlags(t)
	configPath := writeTestWorkspace(t, false)
	withConfig(t, configPath)

	// Same base name as the configured bfs-only maze.
	mazeFile := filepath.Join(t.TempDir(), "custom.txt")
	require.NoError(t, os.WriteFile(mazeFile, []byte("S..\n...\n..E\n"), 0644))
	solveFile = mazeFile

	var buf bytes.Buffer
	solveCmd.SetOut(&buf)

	require.NoError(t, runSolve(solveCmd, nil))
	assert.Contains(t, buf.String(), "Maze custom (3x3)")
	assert.Contains(t, buf.String(), "[DFS]")
	assert.Contains(t, buf.String(), "Solved 2 of 2")
}

func TestRunSolve_Errors(t *testing.T) {
	configPath := writeTestWorkspace(t, false)

	tests := []struct {
		name      string
		maze      string
		file      string
		algorithm string
		errMsg    string
	}{
		{name: "no source", errMsg: "one of --maze or --file is required"},
		{name: "both sources", maze: "open", file: "x.txt", errMsg: "mutually exclusive"},
		{name: "bad algorithm", maze: "open", algorithm: "astar", errMsg: "unknown algorithm"},
		{name: "unknown maze", maze: "nope", errMsg: `maze "nope" not found`},
		{name: "missing file", file: filepath.Join(t.TempDir(), "gone.txt"), errMsg: "failed to load maze file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetSolveFlags(t)
			withConfig(t, configPath)
			solveMaze, solveFile, solveAlgorithm = tt.maze, tt.file, tt.algorithm

			solveCmd.SetOut(&bytes.Buffer{})
			err := runSolve(solveCmd, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

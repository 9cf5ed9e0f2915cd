package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testConfigContent = `mazes:
  open:
    file: open.txt
    description: Open 3x3 grid
  walled:
    file: walled.txt
  custom:
    file: open.txt
    solver:
      algorithms: [bfs]
      verify_method: sha256

solver:
  algorithms: [all]
  verify_method: steps

render:
  color: false

history:
  enabled: %s
  driver: sqlite
  sqlite_path: history.db
  table: maze_runs

logging:
  level: error
`

// writeTestWorkspace creates a config plus maze files and returns the config path.
func writeTestWorkspace(t *testing.T, historyEnabled bool) string {
	t.Helper()
	dir := t.TempDir()

	enabled := "false"
	if historyEnabled {
		enabled = "true"
	}
	content := []byte(fmt.Sprintf(testConfigContent, enabled))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "gomaze.yaml"), content, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "open.txt"), []byte("S..\n...\n..E\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "walled.txt"), []byte("S#.\n##.\n..E\n"), 0644))
	return filepath.Join(dir, "gomaze.yaml")
}

// withConfig points the global --config flag at path for the duration of the test.
func withConfig(t *testing.T, path string) {
	t.Helper()
	original := cfgFile
	cfgFile = path
	t.Cleanup(func() { cfgFile = original })
}

package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/gomaze/internal/config"
	"github.com/dbsmedya/gomaze/internal/sqlutil"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.DatabaseConfig
		expected string
	}{
		{
			name: "basic DSN",
			cfg: &config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "root",
				Password: "secret",
				Database: "mazes",
				TLS:      "preferred",
			},
			expected: "root:secret@tcp(localhost:3306)/mazes?parseTime=true&tls=preferred",
		},
		{
			name: "DSN without database",
			cfg: &config.DatabaseConfig{
				Host: "localhost", Port: 3306, User: "root", Password: "secret",
			},
			expected: "root:secret@tcp(localhost:3306)/?parseTime=true&tls=preferred",
		},
		{
			name: "TLS disabled",
			cfg: &config.DatabaseConfig{
				Host: "db", Port: 3307, User: "maze", Password: "p@ss!", Database: "mazes", TLS: "disable",
			},
			expected: "maze:p@ss!@tcp(db:3307)/mazes?parseTime=true&tls=false",
		},
		{
			name: "TLS required",
			cfg: &config.DatabaseConfig{
				Host: "db", Port: 3306, User: "maze", Database: "mazes", TLS: "required",
			},
			expected: "maze:@tcp(db:3306)/mazes?parseTime=true&tls=true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildDSN(tt.cfg))
		})
	}
}

func TestNewManager(t *testing.T) {
	cfg := &config.HistoryConfig{Driver: config.DriverSQLite}
	manager := NewManager(cfg)

	require.NotNil(t, manager)
	assert.Same(t, cfg, manager.config)
	assert.Nil(t, manager.DB)
	assert.NoError(t, manager.Close(), "closing an unconnected manager")
}

func TestManager_ConnectWithoutConfig(t *testing.T) {
	err := NewManager(nil).Connect(context.Background())
	assert.EqualError(t, err, "history database is not configured")
}

func TestManager_ConnectUnknownDriver(t *testing.T) {
	err := NewManager(&config.HistoryConfig{Driver: "oracle"}).Connect(context.Background())
	assert.EqualError(t, err, "unsupported dialect: oracle")
}

func TestManager_ConnectSQLiteMemory(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(&config.HistoryConfig{Driver: config.DriverSQLite, SQLitePath: MemoryPath})

	require.NoError(t, manager.Connect(ctx))
	defer manager.Close()

	assert.Equal(t, sqlutil.SQLite, manager.Dialect)
	assert.NoError(t, manager.Ping(ctx))
}

func TestManager_ConnectSQLiteFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	manager := NewManager(&config.HistoryConfig{Driver: config.DriverSQLite, SQLitePath: path})

	require.NoError(t, manager.Connect(ctx))
	_, err := manager.DB.ExecContext(ctx, "CREATE TABLE probe (id INTEGER)")
	require.NoError(t, err)
	require.NoError(t, manager.Close())
	assert.FileExists(t, path)

	// Reopening sees the table.
	require.NoError(t, manager.Connect(ctx))
	defer manager.Close()
	var n int
	require.NoError(t, manager.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM probe").Scan(&n))
	assert.Equal(t, 0, n)
}

func TestManager_PingWithoutConnect(t *testing.T) {
	err := NewManager(&config.HistoryConfig{}).Ping(context.Background())
	assert.EqualError(t, err, "history database is not connected")
}

func TestManager_MySQLRetryHonorsContext(t *testing.T) {
	manager := NewManager(&config.HistoryConfig{
		Driver: config.DriverMySQL,
		Database: config.DatabaseConfig{
			Host: "127.0.0.1", Port: 1, User: "nobody", TLS: "disable",
		},
	})
	manager.backoff = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := manager.Connect(ctx)
	require.Error(t, err)
	assert.Nil(t, manager.DB)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("DIRECTORY_HTTP_PORT", "9191")
	t.Setenv("DIRECTORY_STORE_DRIVER", "memory")
	t.Setenv("DIRECTORY_SEED_DEMO_DATA", "true")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.HTTPPort)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.True(t, cfg.SeedDemoData)
	assert.Equal(t, ":9191", cfg.GetHTTPAddr())
}

func TestResolveDefaults(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "memory", cfg: Config{StoreDriver: "memory"}},
		{name: "sqlite derives path", cfg: Config{StoreDriver: "sqlite"}},
		{name: "postgres needs dsn", cfg: Config{StoreDriver: "postgres"}, wantErr: true},
		{name: "postgres with dsn", cfg: Config{StoreDriver: "postgres", PostgresDSN: "postgres://x"}},
		{name: "unknown driver", cfg: Config{StoreDriver: "etcd"}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.ResolveDefaults()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSQLiteDefaultPath(t *testing.T) {
	cfg := Config{StoreDriver: "sqlite"}
	require.NoError(t, cfg.ResolveDefaults())
	assert.Equal(t, "directory.db", cfg.SQLitePath)
}

func TestNewForTesting(t *testing.T) {
	cfg := NewForTesting()
	assert.True(t, cfg.IsTesting())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "memory", cfg.StoreDriver)
}

package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentdir/directory/internal/config"
	"github.com/agentdir/directory/internal/model"
)

func TestNewStoreMemory(t *testing.T) {
	cfg := config.NewForTesting()
	s, err := NewStore(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, s)

	_, err = s.Agents().Get(context.Background(), 1)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestNewStoreSQLite(t *testing.T) {
	cfg := config.NewForTesting()
	cfg.StoreDriver = "sqlite"
	cfg.SQLitePath = filepath.Join(t.TempDir(), "directory.db")

	s, err := NewStore(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, s)

	cat, err := s.Categories().Create(context.Background(), &model.Category{
		Name: "Chatbots", Slug: "chatbots", Icon: "message-circle",
		IconBgColor: "bg-purple-100", IconColor: "text-purple-700",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), cat.ID)
}

func TestNewStoreUnknownDriver(t *testing.T) {
	cfg := config.NewForTesting()
	cfg.StoreDriver = "etcd"
	_, err := NewStore(context.Background(), cfg)
	assert.Error(t, err)
}

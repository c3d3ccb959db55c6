package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentdir/directory/internal/model"
	"github.com/agentdir/directory/internal/store"
	"github.com/agentdir/directory/internal/store/storetest"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "directory.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewWithDB(db)
}

func TestCompliance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store { return newTestStore(t) })
}

func TestSchemaIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directory.db")
	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, EnsureSchema(db))
	require.NoError(t, db.Close())

	// Reopening keeps existing rows.
	db, err = Open(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	s := NewWithDB(db)
	ctx := context.Background()
	cat, err := s.Categories().Create(ctx, &model.Category{
		Name: "Writing", Slug: "writing", Icon: "pen",
		IconBgColor: "bg-indigo-100", IconColor: "text-indigo-700",
	})
	require.NoError(t, err)

	got, err := s.Categories().GetBySlug(ctx, "writing")
	require.NoError(t, err)
	require.Equal(t, cat.ID, got.ID)
}

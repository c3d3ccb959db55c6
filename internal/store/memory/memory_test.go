package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentdir/directory/internal/model"
	"github.com/agentdir/directory/internal/store"
	"github.com/agentdir/directory/internal/store/storetest"
)

func TestCompliance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store { return New() })
}

func TestIDsIndependentPerKind(t *testing.T) {
	s := New()
	ctx := context.Background()

	cat, err := s.Categories().Create(ctx, &model.Category{Name: "Dev", Slug: "dev", Icon: "code", IconBgColor: "bg", IconColor: "fg"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), cat.ID)

	ag, err := s.Agents().Create(ctx, &model.Agent{Name: "A", Slug: "a", Description: "d", ImageURL: "i", WebsiteURL: "w", CategoryID: cat.ID})
	require.NoError(t, err)
	assert.Equal(t, int32(1), ag.ID, "agent counter is independent of category counter")

	for i := 2; i <= 5; i++ {
		ag, err := s.Agents().Create(ctx, &model.Agent{
			Name: "A", Slug: fmt.Sprintf("a-%d", i), Description: "d",
			ImageURL: "i", WebsiteURL: "w", CategoryID: cat.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, int32(i), ag.ID)
	}
}

func TestListIsInsertionOrdered(t *testing.T) {
	s := New()
	ctx := context.Background()

	slugs := []string{"gamma", "alpha", "beta"}
	for _, slug := range slugs {
		_, err := s.Agents().Create(ctx, &model.Agent{Name: slug, Slug: slug, Description: "d", ImageURL: "i", WebsiteURL: "w", CategoryID: 1})
		require.NoError(t, err)
	}

	lst, err := s.Agents().List(ctx)
	require.NoError(t, err)
	require.Len(t, lst, 3)
	for i, slug := range slugs {
		assert.Equal(t, slug, lst[i].Slug)
	}
}

func TestReturnedRecordsAreDetached(t *testing.T) {
	s := New()
	ctx := context.Background()

	ag, err := s.Agents().Create(ctx, &model.Agent{Name: "A", Slug: "a", Description: "d", ImageURL: "i", WebsiteURL: "w", CategoryID: 1})
	require.NoError(t, err)

	// Mutating a returned record must not leak into the store.
	ag.Name = "tampered"
	got, err := s.Agents().Get(ctx, ag.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
}

func TestFailedCreateDoesNotConsumeID(t *testing.T) {
	s := New()
	ctx := context.Background()

	first, err := s.Agents().Create(ctx, &model.Agent{Name: "A", Slug: "a", Description: "d", ImageURL: "i", WebsiteURL: "w", CategoryID: 1})
	require.NoError(t, err)

	_, err = s.Agents().Create(ctx, &model.Agent{Name: "B", Slug: "a", Description: "d", ImageURL: "i", WebsiteURL: "w", CategoryID: 1})
	require.ErrorIs(t, err, model.ErrConflict)

	second, err := s.Agents().Create(ctx, &model.Agent{Name: "C", Slug: "c", Description: "d", ImageURL: "i", WebsiteURL: "w", CategoryID: 1})
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)
}

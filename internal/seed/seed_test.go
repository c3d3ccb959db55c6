package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentdir/directory/internal/model"
	"github.com/agentdir/directory/internal/store/memory"
)

func TestLoad(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	sum, err := Load(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, 6, sum.Categories)
	assert.Equal(t, 8, sum.Agents)
	assert.Equal(t, 15, sum.Features)
	assert.Equal(t, 6, sum.UseCases)

	// Child records point at store-assigned parent ids.
	agent, err := st.Agents().GetBySlug(ctx, "conversai")
	require.NoError(t, err)
	cat, err := st.Categories().GetBySlug(ctx, "chatbots")
	require.NoError(t, err)
	assert.Equal(t, cat.ID, agent.CategoryID)

	feats, err := st.Features().ListByAgent(ctx, agent.ID)
	require.NoError(t, err)
	assert.Len(t, feats, 5)

	ucs, err := st.UseCases().ListByAgent(ctx, agent.ID)
	require.NoError(t, err)
	assert.Len(t, ucs, 3)
}

func TestLoadRefusesNonEmptyStore(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	_, err := Load(ctx, st)
	require.NoError(t, err)

	_, err = Load(ctx, st)
	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestLoadFeaturedAndNewFlags(t *testing.T) {
	st := memory.New()
	ctx := context.Background()
	_, err := Load(ctx, st)
	require.NoError(t, err)

	featured, err := st.Agents().ListFeatured(ctx, 0)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	assert.Equal(t, "TimeWizard", featured[0].Name)
	assert.Equal(t, "ConversAI", featured[1].Name)

	fresh, err := st.Agents().ListNew(ctx, 0)
	require.NoError(t, err)
	require.Len(t, fresh, 2)
	assert.Equal(t, "VoiceGenius", fresh[0].Name)
	assert.Equal(t, "PixelMind", fresh[1].Name)
}

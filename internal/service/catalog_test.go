package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentdir/directory/internal/model"
	"github.com/agentdir/directory/internal/store"
	"github.com/agentdir/directory/internal/store/memory"
)

func seedCatalog(t *testing.T, st store.Store) (chatbots, writing *model.Category) {
	t.Helper()
	ctx := context.Background()

	chatbots, err := st.Categories().Create(ctx, &model.Category{
		Name: "Chatbots", Slug: "chatbots", Icon: "message-circle",
		IconBgColor: "bg-purple-100", IconColor: "text-purple-700",
	})
	require.NoError(t, err)
	writing, err = st.Categories().Create(ctx, &model.Category{
		Name: "Writing", Slug: "writing", Icon: "pen",
		IconBgColor: "bg-indigo-100", IconColor: "text-indigo-700",
	})
	require.NoError(t, err)

	for _, a := range []*model.Agent{
		{Name: "ConversAI", Slug: "conversai", Description: "answers questions", CategoryID: chatbots.ID, Featured: true, Rating: 45},
		{Name: "ProseGenius", Slug: "prosegenius", Description: "writing assistant", CategoryID: writing.ID, Featured: true, IsNew: true, Rating: 50},
		{Name: "PixelMind", Slug: "pixelmind", Description: "image generator", CategoryID: writing.ID, IsNew: true, Rating: 40},
	} {
		_, err := st.Agents().Create(ctx, a)
		require.NoError(t, err)
	}
	return chatbots, writing
}

func TestListAgentsPrecedence(t *testing.T) {
	st := memory.New()
	svc := NewCatalogService(st)
	seedCatalog(t, st)
	ctx := context.Background()

	// Search wins over every other parameter.
	got, err := svc.ListAgents(ctx, model.ListAgentsRequest{
		Search: "image", CategorySlug: "chatbots", Featured: true, New: true,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "PixelMind", got[0].Name)

	// Category wins over featured.
	got, err = svc.ListAgents(ctx, model.ListAgentsRequest{CategorySlug: "writing", Featured: true})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Featured wins over new; rating-descending with limit applied.
	got, err = svc.ListAgents(ctx, model.ListAgentsRequest{Featured: true, New: true, Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ProseGenius", got[0].Name)

	got, err = svc.ListAgents(ctx, model.ListAgentsRequest{New: true})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ProseGenius", got[0].Name)

	// Empty request lists everything in insertion order.
	got, err = svc.ListAgents(ctx, model.ListAgentsRequest{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "ConversAI", got[0].Name)
}

func TestListAgentsUnknownCategory(t *testing.T) {
	st := memory.New()
	svc := NewCatalogService(st)
	seedCatalog(t, st)

	_, err := svc.ListAgents(context.Background(), model.ListAgentsRequest{CategorySlug: "nope"})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestGetAgentDetail(t *testing.T) {
	st := memory.New()
	svc := NewCatalogService(st)
	seedCatalog(t, st)
	ctx := context.Background()

	agent, err := st.Agents().GetBySlug(ctx, "conversai")
	require.NoError(t, err)
	_, err = st.Features().Create(ctx, &model.AgentFeature{AgentID: agent.ID, Feature: "Context awareness"})
	require.NoError(t, err)

	detail, err := svc.GetAgentDetail(ctx, "conversai")
	require.NoError(t, err)
	assert.Equal(t, agent.ID, detail.Agent.ID)
	require.Len(t, detail.Features, 1)
	assert.Empty(t, detail.UseCases)

	_, err = svc.GetAgentDetail(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

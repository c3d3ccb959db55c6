package service

import (
	"context"

	"github.com/agentdir/directory/internal/model"
	"github.com/agentdir/directory/internal/store"
)

// CatalogService exposes category and agent operations to the HTTP layer.
type CatalogService struct {
	store store.Store
}

func NewCatalogService(s store.Store) *CatalogService { return &CatalogService{store: s} }

func (s *CatalogService) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return s.store.Categories().List(ctx)
}

func (s *CatalogService) GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return s.store.Categories().GetBySlug(ctx, slug)
}

func (s *CatalogService) CreateCategory(ctx context.Context, c *model.Category) (*model.Category, error) {
	return s.store.Categories().Create(ctx, c)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id int32, p *model.CategoryPatch) (*model.Category, error) {
	return s.store.Categories().Update(ctx, id, p)
}

// ListAgents resolves the listing request to exactly one query path. The
// precedence is a contract: search wins over category, category over the
// featured flag, featured over the new flag, and an empty request lists
// everything. A request carrying both search and category therefore gets
// search-only results.
func (s *CatalogService) ListAgents(ctx context.Context, req model.ListAgentsRequest) ([]*model.Agent, error) {
	switch {
	case req.Search != "":
		return s.store.Agents().Search(ctx, req.Search)
	case req.CategorySlug != "":
		cat, err := s.store.Categories().GetBySlug(ctx, req.CategorySlug)
		if err != nil {
			return nil, err
		}
		return s.store.Agents().ListByCategory(ctx, cat.ID)
	case req.Featured:
		return s.store.Agents().ListFeatured(ctx, req.Limit)
	case req.New:
		return s.store.Agents().ListNew(ctx, req.Limit)
	default:
		return s.store.Agents().List(ctx)
	}
}

// GetAgentDetail assembles the composite detail payload for one agent.
func (s *CatalogService) GetAgentDetail(ctx context.Context, slug string) (*model.AgentDetail, error) {
	agent, err := s.store.Agents().GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	feats, err := s.store.Features().ListByAgent(ctx, agent.ID)
	if err != nil {
		return nil, err
	}
	ucs, err := s.store.UseCases().ListByAgent(ctx, agent.ID)
	if err != nil {
		return nil, err
	}
	return &model.AgentDetail{Agent: agent, Features: feats, UseCases: ucs}, nil
}

func (s *CatalogService) CreateAgent(ctx context.Context, a *model.Agent) (*model.Agent, error) {
	return s.store.Agents().Create(ctx, a)
}

func (s *CatalogService) UpdateAgent(ctx context.Context, id int32, p *model.AgentPatch) (*model.Agent, error) {
	return s.store.Agents().Update(ctx, id, p)
}

func (s *CatalogService) ListFeatures(ctx context.Context, agentID int32) ([]*model.AgentFeature, error) {
	return s.store.Features().ListByAgent(ctx, agentID)
}

func (s *CatalogService) CreateFeature(ctx context.Context, f *model.AgentFeature) (*model.AgentFeature, error) {
	return s.store.Features().Create(ctx, f)
}

func (s *CatalogService) ListUseCases(ctx context.Context, agentID int32) ([]*model.AgentUseCase, error) {
	return s.store.UseCases().ListByAgent(ctx, agentID)
}

func (s *CatalogService) CreateUseCase(ctx context.Context, u *model.AgentUseCase) (*model.AgentUseCase, error) {
	return s.store.UseCases().Create(ctx, u)
}

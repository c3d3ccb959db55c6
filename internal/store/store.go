package store

import (
	"context"

	"github.com/agentdir/directory/internal/model"
	"github.com/agentdir/directory/internal/platform/health"
)

// Store exposes the catalog persistence operations required by services.
// Implementations live under internal/store/<driver>/ (memory, sqlite,
// postgres). Lookups return model.ErrNotFound for absence; creates return
// model.ErrConflict when a unique field (slug, username, pageKey) collides.
//
// Ids are assigned by the store only: per entity kind, starting at 1 and
// strictly increasing. There are no delete operations in this contract.
type Store interface {
	health.Pinger

	Users() Users
	Categories() Categories
	Agents() Agents
	Features() Features
	UseCases() UseCases
	Pages() Pages
}

type Users interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	Get(ctx context.Context, id int32) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

type Categories interface {
	Create(ctx context.Context, c *model.Category) (*model.Category, error)
	Get(ctx context.Context, id int32) (*model.Category, error)
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
	List(ctx context.Context) ([]*model.Category, error)
	Update(ctx context.Context, id int32, p *model.CategoryPatch) (*model.Category, error)
}

type Agents interface {
	Create(ctx context.Context, a *model.Agent) (*model.Agent, error)
	Get(ctx context.Context, id int32) (*model.Agent, error)
	GetBySlug(ctx context.Context, slug string) (*model.Agent, error)
	List(ctx context.Context) ([]*model.Agent, error)
	ListByCategory(ctx context.Context, categoryID int32) ([]*model.Agent, error)
	// ListFeatured returns featured agents sorted by rating descending.
	// limit <= 0 means no truncation.
	ListFeatured(ctx context.Context, limit int) ([]*model.Agent, error)
	// ListNew returns agents flagged isNew, also sorted by rating
	// descending (not by addedDate).
	ListNew(ctx context.Context, limit int) ([]*model.Agent, error)
	// Search matches the query case-insensitively as a substring of the
	// agent name or description.
	Search(ctx context.Context, query string) ([]*model.Agent, error)
	Update(ctx context.Context, id int32, p *model.AgentPatch) (*model.Agent, error)
}

type Features interface {
	Create(ctx context.Context, f *model.AgentFeature) (*model.AgentFeature, error)
	ListByAgent(ctx context.Context, agentID int32) ([]*model.AgentFeature, error)
}

type UseCases interface {
	Create(ctx context.Context, u *model.AgentUseCase) (*model.AgentUseCase, error)
	ListByAgent(ctx context.Context, agentID int32) ([]*model.AgentUseCase, error)
}

type Pages interface {
	Create(ctx context.Context, p *model.PageContent) (*model.PageContent, error)
	GetByKey(ctx context.Context, pageKey string) (*model.PageContent, error)
	List(ctx context.Context) ([]*model.PageContent, error)
	// Update merges the patch into the record addressed by pageKey and
	// refreshes lastUpdated on every successful call.
	Update(ctx context.Context, pageKey string, p *model.PageContentPatch) (*model.PageContent, error)
}

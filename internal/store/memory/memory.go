// Package memory provides the in-memory reference implementation of
// store.Store. Data lives for the lifetime of the process; there is no
// persistence. A single RWMutex makes every operation atomic, which is all
// the concurrency model the contract asks for.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/agentdir/directory/internal/model"
	"github.com/agentdir/directory/internal/store"
)

// New returns an empty in-memory store. Each entity kind has its own id
// counter starting at 1.
func New() store.Store {
	return &memStore{
		users:      map[int32]*model.User{},
		categories: map[int32]*model.Category{},
		agents:     map[int32]*model.Agent{},
		features:   map[int32]*model.AgentFeature{},
		useCases:   map[int32]*model.AgentUseCase{},
		pages:      map[int32]*model.PageContent{},
	}
}

type memStore struct {
	mu sync.RWMutex

	users      map[int32]*model.User
	categories map[int32]*model.Category
	agents     map[int32]*model.Agent
	features   map[int32]*model.AgentFeature
	useCases   map[int32]*model.AgentUseCase
	pages      map[int32]*model.PageContent

	userID     int32
	categoryID int32
	agentID    int32
	featureID  int32
	useCaseID  int32
	pageID     int32
}

func (s *memStore) Users() store.Users           { return &users{s} }
func (s *memStore) Categories() store.Categories { return &categories{s} }
func (s *memStore) Agents() store.Agents         { return &agents{s} }
func (s *memStore) Features() store.Features     { return &features{s} }
func (s *memStore) UseCases() store.UseCases     { return &useCases{s} }
func (s *memStore) Pages() store.Pages           { return &pages{s} }

// HealthPing implements health.Pinger. Memory is always reachable.
func (s *memStore) HealthPing(ctx context.Context) error { return nil }

// --- Users ---

type users struct{ s *memStore }

func (u *users) Create(ctx context.Context, in *model.User) (*model.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for _, rec := range u.s.users {
		if rec.Username == in.Username {
			return nil, model.ErrConflict
		}
	}
	u.s.userID++
	rec := *in
	rec.ID = u.s.userID
	u.s.users[rec.ID] = &rec
	out := rec
	return &out, nil
}

func (u *users) Get(ctx context.Context, id int32) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	rec, ok := u.s.users[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	out := *rec
	return &out, nil
}

func (u *users) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for _, rec := range sortedByID(u.s.users) {
		if rec.Username == username {
			out := *rec
			return &out, nil
		}
	}
	return nil, model.ErrNotFound
}

// --- Categories ---

type categories struct{ s *memStore }

func (c *categories) Create(ctx context.Context, in *model.Category) (*model.Category, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	for _, rec := range c.s.categories {
		if rec.Slug == in.Slug {
			return nil, model.ErrConflict
		}
	}
	c.s.categoryID++
	rec := *in
	rec.ID = c.s.categoryID
	c.s.categories[rec.ID] = &rec
	out := rec
	return &out, nil
}

func (c *categories) Get(ctx context.Context, id int32) (*model.Category, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	rec, ok := c.s.categories[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	out := *rec
	return &out, nil
}

func (c *categories) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	for _, rec := range sortedByID(c.s.categories) {
		if rec.Slug == slug {
			out := *rec
			return &out, nil
		}
	}
	return nil, model.ErrNotFound
}

func (c *categories) List(ctx context.Context) ([]*model.Category, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	return copyAll(sortedByID(c.s.categories)), nil
}

func (c *categories) Update(ctx context.Context, id int32, p *model.CategoryPatch) (*model.Category, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	rec, ok := c.s.categories[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	if p.Slug != nil {
		for _, other := range c.s.categories {
			if other.ID != id && other.Slug == *p.Slug {
				return nil, model.ErrConflict
			}
		}
	}
	p.Apply(rec)
	out := *rec
	return &out, nil
}

// --- Agents ---

type agents struct{ s *memStore }

func (a *agents) Create(ctx context.Context, in *model.Agent) (*model.Agent, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	for _, rec := range a.s.agents {
		if rec.Slug == in.Slug {
			return nil, model.ErrConflict
		}
	}
	a.s.agentID++
	rec := *in
	rec.ID = a.s.agentID
	// Server-assigned; any client-supplied value is ignored.
	rec.AddedDate = time.Now().UTC()
	a.s.agents[rec.ID] = &rec
	out := rec
	return &out, nil
}

func (a *agents) Get(ctx context.Context, id int32) (*model.Agent, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	rec, ok := a.s.agents[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	out := *rec
	return &out, nil
}

func (a *agents) GetBySlug(ctx context.Context, slug string) (*model.Agent, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	for _, rec := range sortedByID(a.s.agents) {
		if rec.Slug == slug {
			out := *rec
			return &out, nil
		}
	}
	return nil, model.ErrNotFound
}

func (a *agents) List(ctx context.Context) ([]*model.Agent, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	return copyAll(sortedByID(a.s.agents)), nil
}

func (a *agents) ListByCategory(ctx context.Context, categoryID int32) ([]*model.Agent, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	var out []*model.Agent
	for _, rec := range sortedByID(a.s.agents) {
		if rec.CategoryID == categoryID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (a *agents) ListFeatured(ctx context.Context, limit int) ([]*model.Agent, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	return a.rankedWhere(func(rec *model.Agent) bool { return rec.Featured }, limit), nil
}

func (a *agents) ListNew(ctx context.Context, limit int) ([]*model.Agent, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	return a.rankedWhere(func(rec *model.Agent) bool { return rec.IsNew }, limit), nil
}

// rankedWhere filters, sorts by rating descending (ties keep insertion
// order) and truncates. Callers hold at least a read lock.
func (a *agents) rankedWhere(keep func(*model.Agent) bool, limit int) []*model.Agent {
	var out []*model.Agent
	for _, rec := range sortedByID(a.s.agents) {
		if keep(rec) {
			cp := *rec
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (a *agents) Search(ctx context.Context, query string) ([]*model.Agent, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	q := strings.ToLower(query)
	var out []*model.Agent
	for _, rec := range sortedByID(a.s.agents) {
		if strings.Contains(strings.ToLower(rec.Name), q) ||
			strings.Contains(strings.ToLower(rec.Description), q) {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (a *agents) Update(ctx context.Context, id int32, p *model.AgentPatch) (*model.Agent, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	rec, ok := a.s.agents[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	if p.Slug != nil {
		for _, other := range a.s.agents {
			if other.ID != id && other.Slug == *p.Slug {
				return nil, model.ErrConflict
			}
		}
	}
	p.Apply(rec)
	out := *rec
	return &out, nil
}

// --- Features ---

type features struct{ s *memStore }

func (f *features) Create(ctx context.Context, in *model.AgentFeature) (*model.AgentFeature, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.featureID++
	rec := *in
	rec.ID = f.s.featureID
	f.s.features[rec.ID] = &rec
	out := rec
	return &out, nil
}

func (f *features) ListByAgent(ctx context.Context, agentID int32) ([]*model.AgentFeature, error) {
	f.s.mu.RLock()
	defer f.s.mu.RUnlock()
	var out []*model.AgentFeature
	for _, rec := range sortedByID(f.s.features) {
		if rec.AgentID == agentID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

// --- Use cases ---

type useCases struct{ s *memStore }

func (u *useCases) Create(ctx context.Context, in *model.AgentUseCase) (*model.AgentUseCase, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	u.s.useCaseID++
	rec := *in
	rec.ID = u.s.useCaseID
	u.s.useCases[rec.ID] = &rec
	out := rec
	return &out, nil
}

func (u *useCases) ListByAgent(ctx context.Context, agentID int32) ([]*model.AgentUseCase, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	var out []*model.AgentUseCase
	for _, rec := range sortedByID(u.s.useCases) {
		if rec.AgentID == agentID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

// --- Pages ---

type pages struct{ s *memStore }

func (p *pages) Create(ctx context.Context, in *model.PageContent) (*model.PageContent, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	for _, rec := range p.s.pages {
		if rec.PageKey == in.PageKey {
			return nil, model.ErrConflict
		}
	}
	p.s.pageID++
	rec := *in
	rec.ID = p.s.pageID
	rec.LastUpdated = time.Now().UTC()
	p.s.pages[rec.ID] = &rec
	out := rec
	return &out, nil
}

func (p *pages) GetByKey(ctx context.Context, pageKey string) (*model.PageContent, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	for _, rec := range sortedByID(p.s.pages) {
		if rec.PageKey == pageKey {
			out := *rec
			return &out, nil
		}
	}
	return nil, model.ErrNotFound
}

func (p *pages) List(ctx context.Context) ([]*model.PageContent, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	return copyAll(sortedByID(p.s.pages)), nil
}

func (p *pages) Update(ctx context.Context, pageKey string, patch *model.PageContentPatch) (*model.PageContent, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	for _, rec := range sortedByID(p.s.pages) {
		if rec.PageKey == pageKey {
			if patch.PageKey != nil && *patch.PageKey != pageKey {
				for _, other := range p.s.pages {
					if other.ID != rec.ID && other.PageKey == *patch.PageKey {
						return nil, model.ErrConflict
					}
				}
			}
			patch.Apply(rec)
			rec.LastUpdated = time.Now().UTC()
			out := *rec
			return &out, nil
		}
	}
	return nil, model.ErrNotFound
}

// --- helpers ---

type record interface {
	*model.User | *model.Category | *model.Agent | *model.AgentFeature |
		*model.AgentUseCase | *model.PageContent
}

// sortedByID returns the map values in ascending id order, which is
// insertion order since ids are monotonic and nothing is ever deleted.
func sortedByID[V record](m map[int32]V) []V {
	ids := make([]int32, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]V, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

func copyAll[T any](in []*T) []*T {
	out := make([]*T, 0, len(in))
	for _, rec := range in {
		cp := *rec
		out = append(out, &cp)
	}
	return out
}

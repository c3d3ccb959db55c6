// Package storetest holds a compliance suite run against every store.Store
// implementation. Backends provide a clean, isolated store from makeStore.
package storetest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/agentdir/directory/internal/model"
	"github.com/agentdir/directory/internal/store"
)

func str(s string) *string { return &s }

// Run exercises the storage contract: server-assigned monotonic ids per
// entity kind, creation defaults, lookup semantics, filter/rank/search
// queries and merge-patch updates.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	// Unique suffix so suites can run against shared databases.
	suffix := uuid.New().String()[:8]

	// Ids increase from 1 independently per entity kind.
	cat1, err := s.Categories().Create(ctx, &model.Category{
		Name: "Chatbots", Slug: "chatbots-" + suffix,
		Icon: "message-circle", IconBgColor: "bg-purple-100", IconColor: "text-purple-700",
	})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if cat1.AgentCount != 0 {
		t.Fatalf("CreateCategory: agentCount default = %d, want 0", cat1.AgentCount)
	}

	before := time.Now().UTC().Add(-time.Second)
	ag1, err := s.Agents().Create(ctx, &model.Agent{
		Name: "ConversAI", Slug: "conversai-" + suffix,
		Description: "Conversational assistant", ImageURL: "https://img.test/1",
		WebsiteURL: "https://conversai.test", CategoryID: cat1.ID,
		// Client-supplied creation date must be ignored.
		AddedDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreateAgent: %v", err)
	}
	if ag1.ID == 0 {
		t.Fatalf("CreateAgent: id not assigned")
	}
	if ag1.Rating != 0 || ag1.UserCount != 0 || ag1.Featured || ag1.IsFree || ag1.IsNew {
		t.Fatalf("CreateAgent: defaults not applied: %+v", ag1)
	}
	if ag1.PremiumPrice != nil || ag1.EnterprisePrice != nil {
		t.Fatalf("CreateAgent: pricing should default to null")
	}
	if ag1.AddedDate.Before(before) {
		t.Fatalf("CreateAgent: addedDate not server-assigned: %v", ag1.AddedDate)
	}

	// Lookup by id and by slug; a near-miss slug is absent.
	if got, err := s.Agents().Get(ctx, ag1.ID); err != nil || got.Slug != ag1.Slug {
		t.Fatalf("GetAgent: got=%v err=%v", got, err)
	}
	if got, err := s.Agents().GetBySlug(ctx, ag1.Slug); err != nil || got.ID != ag1.ID {
		t.Fatalf("GetAgentBySlug: got=%v err=%v", got, err)
	}
	if _, err := s.Agents().GetBySlug(ctx, "CONVERSAI-"+suffix); err != model.ErrNotFound {
		t.Fatalf("GetAgentBySlug should be case-sensitive, err=%v", err)
	}
	if _, err := s.Agents().Get(ctx, 1<<30); err != model.ErrNotFound {
		t.Fatalf("GetAgent missing id: err=%v, want ErrNotFound", err)
	}

	// Duplicate slug is a conflict.
	if _, err := s.Agents().Create(ctx, &model.Agent{
		Name: "Clone", Slug: ag1.Slug, Description: "dup",
		ImageURL: "https://img.test/x", WebsiteURL: "https://dup.test", CategoryID: cat1.ID,
	}); err != model.ErrConflict {
		t.Fatalf("duplicate slug: err=%v, want ErrConflict", err)
	}

	// Featured ranking: ratings 50,10,30,45 -> limit 2 yields 50,45.
	ratings := []int32{50, 10, 30, 45}
	for i, r := range ratings {
		if _, err := s.Agents().Create(ctx, &model.Agent{
			Name: "Featured", Slug: uuid.New().String(),
			Description: "ranked", ImageURL: "https://img.test/f", WebsiteURL: "https://f.test",
			Rating: r, Featured: true, IsNew: i%2 == 0, CategoryID: cat1.ID,
		}); err != nil {
			t.Fatalf("CreateAgent featured %d: %v", i, err)
		}
	}
	top, err := s.Agents().ListFeatured(ctx, 2)
	if err != nil || len(top) != 2 {
		t.Fatalf("ListFeatured: n=%d err=%v", len(top), err)
	}
	if top[0].Rating != 50 || top[1].Rating != 45 {
		t.Fatalf("ListFeatured order: got %d,%d want 50,45", top[0].Rating, top[1].Rating)
	}
	all, err := s.Agents().ListFeatured(ctx, 0)
	if err != nil || len(all) < 4 {
		t.Fatalf("ListFeatured unlimited: n=%d err=%v", len(all), err)
	}

	// New listing ranks by rating too, not recency.
	news, err := s.Agents().ListNew(ctx, 0)
	if err != nil || len(news) < 2 {
		t.Fatalf("ListNew: n=%d err=%v", len(news), err)
	}
	for i := 1; i < len(news); i++ {
		if news[i-1].Rating < news[i].Rating {
			t.Fatalf("ListNew not rating-descending at %d", i)
		}
	}

	// Substring search, case-insensitive, over name and description.
	px, err := s.Agents().Create(ctx, &model.Agent{
		Name: "PixelMind", Slug: "pixelmind-" + suffix,
		Description: "Image generation", ImageURL: "https://img.test/p",
		WebsiteURL: "https://pixelmind.test", CategoryID: cat1.ID,
	})
	if err != nil {
		t.Fatalf("CreateAgent pixelmind: %v", err)
	}
	if hits, err := s.Agents().Search(ctx, "pixel"); err != nil || !containsAgent(hits, px.ID) {
		t.Fatalf("Search(pixel): n=%d err=%v", len(hits), err)
	}
	if hits, err := s.Agents().Search(ctx, "IMAGE GENERATION"); err != nil || !containsAgent(hits, px.ID) {
		t.Fatalf("Search over description should be case-insensitive, err=%v", err)
	}
	if hits, err := s.Agents().Search(ctx, "zzz-"+suffix); err != nil || len(hits) != 0 {
		t.Fatalf("Search(zzz): n=%d err=%v, want empty", len(hits), err)
	}

	// Category filter returns exactly the members.
	cat2, err := s.Categories().Create(ctx, &model.Category{
		Name: "Writing", Slug: "writing-" + suffix,
		Icon: "pen", IconBgColor: "bg-indigo-100", IconColor: "text-indigo-700", AgentCount: 42,
	})
	if err != nil {
		t.Fatalf("CreateCategory 2: %v", err)
	}
	if cat2.AgentCount != 42 {
		t.Fatalf("CreateCategory: explicit agentCount lost")
	}
	if lst, err := s.Agents().ListByCategory(ctx, cat2.ID); err != nil || len(lst) != 0 {
		t.Fatalf("ListByCategory empty category: n=%d err=%v", len(lst), err)
	}
	if lst, err := s.Agents().ListByCategory(ctx, cat1.ID); err != nil || len(lst) == 0 {
		t.Fatalf("ListByCategory: n=%d err=%v", len(lst), err)
	}

	// Merge-patch changes only supplied fields; absent id mutates nothing.
	featured := true
	upd, err := s.Agents().Update(ctx, ag1.ID, &model.AgentPatch{Featured: &featured})
	if err != nil {
		t.Fatalf("UpdateAgent: %v", err)
	}
	if !upd.Featured || upd.Name != ag1.Name || upd.Rating != ag1.Rating || !upd.AddedDate.Equal(ag1.AddedDate) {
		t.Fatalf("UpdateAgent merge: %+v", upd)
	}
	if _, err := s.Agents().Update(ctx, 1<<30, &model.AgentPatch{Featured: &featured}); err != model.ErrNotFound {
		t.Fatalf("UpdateAgent missing id: err=%v", err)
	}

	// Category patch.
	count := int32(7)
	if upd, err := s.Categories().Update(ctx, cat1.ID, &model.CategoryPatch{AgentCount: &count}); err != nil || upd.AgentCount != 7 || upd.Name != cat1.Name {
		t.Fatalf("UpdateCategory: got=%+v err=%v", upd, err)
	}

	// Features and use cases hang off an agent.
	ft, err := s.Features().Create(ctx, &model.AgentFeature{AgentID: ag1.ID, Feature: "Context awareness"})
	if err != nil || ft.ID == 0 {
		t.Fatalf("CreateFeature: %+v err=%v", ft, err)
	}
	if lst, err := s.Features().ListByAgent(ctx, ag1.ID); err != nil || len(lst) != 1 {
		t.Fatalf("ListFeatures: n=%d err=%v", len(lst), err)
	}
	if lst, err := s.Features().ListByAgent(ctx, 1<<30); err != nil || len(lst) != 0 {
		t.Fatalf("ListFeatures for unknown agent should be empty, n=%d err=%v", len(lst), err)
	}
	uc, err := s.UseCases().Create(ctx, &model.AgentUseCase{
		AgentID: ag1.ID, Title: "Writers", Description: "Drafting help",
		Icon: "pen-tool", IconColor: "text-pink-700",
	})
	if err != nil || uc.ID == 0 {
		t.Fatalf("CreateUseCase: %+v err=%v", uc, err)
	}
	if lst, err := s.UseCases().ListByAgent(ctx, ag1.ID); err != nil || len(lst) != 1 {
		t.Fatalf("ListUseCases: n=%d err=%v", len(lst), err)
	}

	// Page content: key lookup, null defaults, lastUpdated refresh.
	pg, err := s.Pages().Create(ctx, &model.PageContent{PageKey: "about-" + suffix, Title: "About"})
	if err != nil {
		t.Fatalf("CreatePage: %v", err)
	}
	if pg.Description != nil || pg.Content != nil {
		t.Fatalf("CreatePage: optional fields should default to null")
	}
	if _, err := s.Pages().Create(ctx, &model.PageContent{PageKey: pg.PageKey, Title: "dup"}); err != model.ErrConflict {
		t.Fatalf("duplicate pageKey: err=%v", err)
	}
	if got, err := s.Pages().GetByKey(ctx, pg.PageKey); err != nil || got.ID != pg.ID {
		t.Fatalf("GetPageByKey: got=%v err=%v", got, err)
	}
	if _, err := s.Pages().GetByKey(ctx, "About-"+suffix); err != model.ErrNotFound {
		t.Fatalf("GetPageByKey should be case-sensitive, err=%v", err)
	}
	time.Sleep(5 * time.Millisecond)
	updPg, err := s.Pages().Update(ctx, pg.PageKey, &model.PageContentPatch{Title: str("X")})
	if err != nil {
		t.Fatalf("UpdatePage: %v", err)
	}
	if updPg.Title != "X" || updPg.Description != nil {
		t.Fatalf("UpdatePage merge: %+v", updPg)
	}
	if updPg.LastUpdated.Before(pg.LastUpdated) {
		t.Fatalf("UpdatePage: lastUpdated not refreshed: %v < %v", updPg.LastUpdated, pg.LastUpdated)
	}
	if _, err := s.Pages().Update(ctx, "missing-"+suffix, &model.PageContentPatch{Title: str("X")}); err != model.ErrNotFound {
		t.Fatalf("UpdatePage missing key: err=%v", err)
	}

	// Concurrent patches to different fields must both land; a backend that
	// applies a patch as read-modify-write loses one of them.
	agc, err := s.Agents().Create(ctx, &model.Agent{
		Name: "Patchy", Slug: "patchy-" + suffix, Description: "concurrent target",
		ImageURL: "https://img.test/c", WebsiteURL: "https://c.test", CategoryID: cat1.ID,
	})
	if err != nil {
		t.Fatalf("CreateAgent patchy: %v", err)
	}
	for i := 0; i < 10; i++ {
		name := fmt.Sprintf("Patchy-%d", i)
		rating := int32(i + 1)
		var wg sync.WaitGroup
		errs := make(chan error, 2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := s.Agents().Update(ctx, agc.ID, &model.AgentPatch{Name: &name})
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := s.Agents().Update(ctx, agc.ID, &model.AgentPatch{Rating: &rating})
			errs <- err
		}()
		wg.Wait()
		close(errs)
		for err := range errs {
			if err != nil {
				t.Fatalf("concurrent UpdateAgent: %v", err)
			}
		}
		got, err := s.Agents().Get(ctx, agc.ID)
		if err != nil {
			t.Fatalf("GetAgent after concurrent patch: %v", err)
		}
		if got.Name != name || got.Rating != rating {
			t.Fatalf("concurrent patches lost a field: name=%q rating=%d, want %q/%d",
				got.Name, got.Rating, name, rating)
		}
	}

	// Users: unique username enforced, ids independent of other kinds.
	usr, err := s.Users().Create(ctx, &model.User{Username: "admin-" + suffix, Password: "hunter2"})
	if err != nil || usr.ID == 0 {
		t.Fatalf("CreateUser: %+v err=%v", usr, err)
	}
	if _, err := s.Users().Create(ctx, &model.User{Username: usr.Username, Password: "x"}); err != model.ErrConflict {
		t.Fatalf("duplicate username: err=%v", err)
	}
	if got, err := s.Users().GetByUsername(ctx, usr.Username); err != nil || got.ID != usr.ID {
		t.Fatalf("GetUserByUsername: got=%v err=%v", got, err)
	}
}

func containsAgent(in []*model.Agent, id int32) bool {
	for _, a := range in {
		if a.ID == id {
			return true
		}
	}
	return false
}

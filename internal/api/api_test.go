package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentdir/directory/internal/model"
	"github.com/agentdir/directory/internal/store"
	"github.com/agentdir/directory/internal/store/memory"
)

func newTestServer(t *testing.T) (*httptest.Server, store.Store) {
	t.Helper()
	st := memory.New()
	srv := httptest.NewServer(NewRouter(st))
	t.Cleanup(srv.Close)
	return srv, st
}

func doJSON(t *testing.T, method, url string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func mustCreateCategory(t *testing.T, srv *httptest.Server, name, slug string) model.Category {
	t.Helper()
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/categories", model.Category{
		Name: name, Slug: slug, Icon: "code",
		IconBgColor: "bg-amber-100", IconColor: "text-amber-700",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out model.Category
	decode(t, resp, &out)
	return out
}

func mustCreateAgent(t *testing.T, srv *httptest.Server, a model.Agent) model.Agent {
	t.Helper()
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/agents", a)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out model.Agent
	decode(t, resp, &out)
	return out
}

func TestCategoryLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	created := mustCreateCategory(t, srv, "Development", "development")
	assert.Equal(t, int32(1), created.ID)

	// Duplicate slug is a conflict.
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/categories", model.Category{
		Name: "Development Again", Slug: "development", Icon: "code",
		IconBgColor: "bg-amber-100", IconColor: "text-amber-700",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err := http.Get(srv.URL + "/api/categories/development")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got model.Category
	decode(t, resp, &got)
	assert.Equal(t, created.ID, got.ID)

	resp, err = http.Get(srv.URL + "/api/categories/no-such-slug")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	// Case matters on slug lookups.
	resp, err = http.Get(srv.URL + "/api/categories/Development")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestCategoryValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	cases := []struct {
		name string
		body model.Category
	}{
		{"missing name", model.Category{Slug: "x", Icon: "i", IconBgColor: "b", IconColor: "c"}},
		{"missing slug", model.Category{Name: "X", Icon: "i", IconBgColor: "b", IconColor: "c"}},
		{"uppercase slug", model.Category{Name: "X", Slug: "Bad-Slug", Icon: "i", IconBgColor: "b", IconColor: "c"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, http.MethodPost, srv.URL+"/api/categories", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			_ = resp.Body.Close()
		})
	}
}

func TestCategoryPatch(t *testing.T) {
	srv, _ := newTestServer(t)
	created := mustCreateCategory(t, srv, "Writing", "writing")

	name := "Writing Tools"
	resp := doJSON(t, http.MethodPatch, srv.URL+"/api/categories/1", model.CategoryPatch{Name: &name})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got model.Category
	decode(t, resp, &got)
	assert.Equal(t, "Writing Tools", got.Name)
	assert.Equal(t, created.Slug, got.Slug)

	resp = doJSON(t, http.MethodPatch, srv.URL+"/api/categories/99", model.CategoryPatch{Name: &name})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func testAgent(name, slug string, categoryID int32) model.Agent {
	return model.Agent{
		Name: name, Slug: slug, Description: name + " does things",
		ImageURL: "https://example.com/img.png", WebsiteURL: "https://example.com",
		Rating: 40, UserCount: 10, CategoryID: categoryID,
	}
}

func TestAgentListingPrecedence(t *testing.T) {
	srv, _ := newTestServer(t)
	cat := mustCreateCategory(t, srv, "Chatbots", "chatbots")
	other := mustCreateCategory(t, srv, "Writing", "writing")

	a := testAgent("ConversAI", "conversai", cat.ID)
	a.Featured = true
	a.Rating = 45
	mustCreateAgent(t, srv, a)

	b := testAgent("ProseGenius", "prosegenius", other.ID)
	b.Featured = true
	b.Rating = 50
	b.IsNew = true
	mustCreateAgent(t, srv, b)

	c := testAgent("PixelMind", "pixelmind", other.ID)
	c.IsNew = true
	c.Rating = 40
	mustCreateAgent(t, srv, c)

	list := func(query string) []model.Agent {
		resp, err := http.Get(srv.URL + "/api/agents" + query)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out []model.Agent
		decode(t, resp, &out)
		return out
	}

	// Unfiltered list is insertion-ordered.
	all := list("")
	require.Len(t, all, 3)
	assert.Equal(t, "ConversAI", all[0].Name)

	// Search beats every other parameter.
	got := list("?search=pixel&category=chatbots&featured=true")
	require.Len(t, got, 1)
	assert.Equal(t, "PixelMind", got[0].Name)

	// Category beats featured.
	got = list("?category=writing&featured=true")
	require.Len(t, got, 2)

	// Featured is rating-descending.
	got = list("?featured=true")
	require.Len(t, got, 2)
	assert.Equal(t, "ProseGenius", got[0].Name)
	assert.Equal(t, "ConversAI", got[1].Name)

	got = list("?featured=true&limit=1")
	require.Len(t, got, 1)
	assert.Equal(t, "ProseGenius", got[0].Name)

	// isNew is the canonical param; new is a supported alias.
	got = list("?isNew=true")
	require.Len(t, got, 2)
	assert.Equal(t, "ProseGenius", got[0].Name)

	got = list("?new=true")
	require.Len(t, got, 2)
	assert.Equal(t, "ProseGenius", got[0].Name)

	// Unknown category slug is 404, not an empty list.
	resp, err := http.Get(srv.URL + "/api/agents?category=nope")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	// Garbage limit is 400.
	resp, err = http.Get(srv.URL + "/api/agents?featured=true&limit=abc")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestAgentDetailComposite(t *testing.T) {
	srv, _ := newTestServer(t)
	cat := mustCreateCategory(t, srv, "Chatbots", "chatbots")
	agent := mustCreateAgent(t, srv, testAgent("ConversAI", "conversai", cat.ID))

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/agent-features", model.AgentFeature{
		AgentID: agent.ID, Feature: "Context awareness",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/agent-use-cases", model.AgentUseCase{
		AgentID: agent.ID, Title: "Business Professionals",
		Description: "Draft professional emails quickly.",
		Icon:        "briefcase", IconColor: "text-purple-700",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err := http.Get(srv.URL + "/api/agents/conversai")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var detail model.AgentDetail
	decode(t, resp, &detail)
	assert.Equal(t, agent.ID, detail.Agent.ID)
	require.Len(t, detail.Features, 1)
	assert.Equal(t, "Context awareness", detail.Features[0].Feature)
	require.Len(t, detail.UseCases, 1)

	// Children are also reachable by numeric agent id.
	resp, err = http.Get(srv.URL + "/api/agents/1/features")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var feats []model.AgentFeature
	decode(t, resp, &feats)
	assert.Len(t, feats, 1)

	resp, err = http.Get(srv.URL + "/api/agents/1/use-cases")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ucs []model.AgentUseCase
	decode(t, resp, &ucs)
	assert.Len(t, ucs, 1)

	// Children of an unknown agent are an empty list, not 404.
	resp, err = http.Get(srv.URL + "/api/agents/99/features")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/agents/nope")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestAgentPatchKeepsAddedDate(t *testing.T) {
	srv, _ := newTestServer(t)
	cat := mustCreateCategory(t, srv, "Chatbots", "chatbots")
	agent := mustCreateAgent(t, srv, testAgent("ConversAI", "conversai", cat.ID))

	rating := int32(50)
	resp := doJSON(t, http.MethodPatch, srv.URL+"/api/agents/1", model.AgentPatch{Rating: &rating})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got model.Agent
	decode(t, resp, &got)
	assert.Equal(t, int32(50), got.Rating)
	assert.Equal(t, agent.Slug, got.Slug)
	assert.True(t, got.AddedDate.Equal(agent.AddedDate))

	// Out-of-range rating is rejected before it reaches the store.
	bad := int32(51)
	resp = doJSON(t, http.MethodPatch, srv.URL+"/api/agents/1", model.AgentPatch{Rating: &bad})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestPageContentEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	desc := "Landing page"
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/page-content", model.PageContent{
		PageKey: "home", Title: "Home", Description: &desc,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.PageContent
	decode(t, resp, &created)
	assert.False(t, created.LastUpdated.IsZero())
	assert.Nil(t, created.BannerTitle)

	resp, err := http.Get(srv.URL + "/api/page-content?pageKey=home")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got model.PageContent
	decode(t, resp, &got)
	assert.Equal(t, "Home", got.Title)

	resp, err = http.Get(srv.URL + "/api/page-content?pageKey=missing")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	title := "Welcome"
	resp = doJSON(t, http.MethodPatch, srv.URL+"/api/page-content/home", model.PageContentPatch{Title: &title})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var patched model.PageContent
	decode(t, resp, &patched)
	assert.Equal(t, "Welcome", patched.Title)
	assert.Equal(t, &desc, patched.Description)
	assert.False(t, patched.LastUpdated.Before(created.LastUpdated))

	resp = doJSON(t, http.MethodPatch, srv.URL+"/api/page-content/missing", model.PageContentPatch{Title: &title})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestUserEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/users", model.User{Username: "admin", Password: "s3cret"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]interface{}
	decode(t, resp, &created)
	assert.Equal(t, "admin", created["username"])
	assert.NotContains(t, created, "password")

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/users", model.User{Username: "admin", Password: "other"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err := http.Get(srv.URL + "/api/users/1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched map[string]interface{}
	decode(t, resp, &fetched)
	assert.NotContains(t, fetched, "password")

	resp, err = http.Get(srv.URL + "/api/users/42")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestSeedEndpoint(t *testing.T) {
	srv, st := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/admin/seed", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var sum map[string]int
	decode(t, resp, &sum)
	assert.Equal(t, 6, sum["categories"])
	assert.Equal(t, 8, sum["agents"])

	agents, err := st.Agents().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, agents, 8)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/admin/seed", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestHealthEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/health/store")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	decode(t, resp, &body)
	assert.Equal(t, "healthy", body["status"])
}

func TestRequestIDHeader(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "abc-123")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-Id"))
}

func TestInvalidJSONIsBadRequest(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/categories", "application/json", bytes.NewBufferString("{nope"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

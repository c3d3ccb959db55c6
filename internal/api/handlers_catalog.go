package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agentdir/directory/internal/api/respond"
	"github.com/agentdir/directory/internal/api/validate"
	"github.com/agentdir/directory/internal/model"
	"github.com/agentdir/directory/internal/service"
)

// CatalogHandler is a thin HTTP transport over CatalogService.
type CatalogHandler struct {
	svc *service.CatalogService
}

func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	return int32(id), err
}

// ListCategories GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, cats)
}

// GetCategoryBySlug GET /api/categories/{slug}
func (h *CatalogHandler) GetCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	cat, err := h.svc.GetCategoryBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, cat)
}

// CreateCategory POST /api/categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.Category
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.CreateCategory(&req); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.CreateCategory(r.Context(), &req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// UpdateCategory PATCH /api/categories/{id}
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.WriteBadRequest(w, "Invalid category id")
		return
	}
	var patch model.CategoryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.PatchCategory(&patch); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.UpdateCategory(r.Context(), id, &patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// ListAgents GET /api/agents
// Query params: search, category (slug), featured=true, isNew=true, limit.
// new=true is accepted as an alias for isNew=true.
func (h *CatalogHandler) ListAgents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := model.ListAgentsRequest{
		Search:       q.Get("search"),
		CategorySlug: q.Get("category"),
		Featured:     q.Get("featured") == "true",
		New:          q.Get("isNew") == "true" || q.Get("new") == "true",
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			respond.WriteBadRequest(w, "limit must be an integer")
			return
		}
		req.Limit = limit
	}
	agents, err := h.svc.ListAgents(r.Context(), req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, agents)
}

// GetAgentDetail GET /api/agents/{slug}
func (h *CatalogHandler) GetAgentDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.GetAgentDetail(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, detail)
}

// CreateAgent POST /api/agents
func (h *CatalogHandler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	var req model.Agent
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.CreateAgent(&req); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.CreateAgent(r.Context(), &req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// UpdateAgent PATCH /api/agents/{id}
func (h *CatalogHandler) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.WriteBadRequest(w, "Invalid agent id")
		return
	}
	var patch model.AgentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.PatchAgent(&patch); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.UpdateAgent(r.Context(), id, &patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// ListFeatures GET /api/agents/{id}/features
func (h *CatalogHandler) ListFeatures(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.WriteBadRequest(w, "Invalid agent id")
		return
	}
	feats, err := h.svc.ListFeatures(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, feats)
}

// CreateFeature POST /api/agent-features
func (h *CatalogHandler) CreateFeature(w http.ResponseWriter, r *http.Request) {
	var req model.AgentFeature
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.CreateFeature(&req); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.CreateFeature(r.Context(), &req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListUseCases GET /api/agents/{id}/use-cases
func (h *CatalogHandler) ListUseCases(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.WriteBadRequest(w, "Invalid agent id")
		return
	}
	ucs, err := h.svc.ListUseCases(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, ucs)
}

// CreateUseCase POST /api/agent-use-cases
func (h *CatalogHandler) CreateUseCase(w http.ResponseWriter, r *http.Request) {
	var req model.AgentUseCase
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.CreateUseCase(&req); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.CreateUseCase(r.Context(), &req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

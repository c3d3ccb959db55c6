package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agentdir/directory/internal/api/respond"
	"github.com/agentdir/directory/internal/api/validate"
	"github.com/agentdir/directory/internal/model"
	"github.com/agentdir/directory/internal/service"
)

// ContentHandler is a thin HTTP transport over ContentService.
type ContentHandler struct {
	svc *service.ContentService
}

func NewContentHandler(svc *service.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// ListPageContent GET /api/page-content
// With ?pageKey= it returns the single matching record (404 if absent).
func (h *ContentHandler) ListPageContent(w http.ResponseWriter, r *http.Request) {
	if key := r.URL.Query().Get("pageKey"); key != "" {
		page, err := h.svc.GetPageContent(r.Context(), key)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		respond.WriteJSON(w, http.StatusOK, page)
		return
	}
	pages, err := h.svc.ListPageContent(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, pages)
}

// CreatePageContent POST /api/page-content
func (h *ContentHandler) CreatePageContent(w http.ResponseWriter, r *http.Request) {
	var req model.PageContent
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.CreatePageContent(&req); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.CreatePageContent(r.Context(), &req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// UpdatePageContent PATCH /api/page-content/{pageKey}
func (h *ContentHandler) UpdatePageContent(w http.ResponseWriter, r *http.Request) {
	var patch model.PageContentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.UpdatePageContent(r.Context(), mux.Vars(r)["pageKey"], &patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

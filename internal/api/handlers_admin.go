package api

import (
	"net/http"

	"github.com/agentdir/directory/internal/api/respond"
	"github.com/agentdir/directory/internal/seed"
	"github.com/agentdir/directory/internal/store"
)

// AdminHandler holds operations that mutate the store wholesale.
type AdminHandler struct {
	store store.Store
}

func NewAdminHandler(st store.Store) *AdminHandler { return &AdminHandler{store: st} }

// SeedDemoData POST /api/admin/seed
// Loads the demo catalog into an empty store; 409 if anything is already there.
func (h *AdminHandler) SeedDemoData(w http.ResponseWriter, r *http.Request) {
	sum, err := seed.Load(r.Context(), h.store)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, sum)
}

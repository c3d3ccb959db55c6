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

// UserHandler is a thin HTTP transport over UserService.
type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler { return &UserHandler{svc: svc} }

// CreateUser POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.User
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.CreateUser(req.Username, req.Password); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.CreateUser(r.Context(), &req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	out.Password = ""
	respond.WriteJSON(w, http.StatusCreated, out)
}

// GetUser GET /api/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respond.WriteBadRequest(w, "Invalid user id")
		return
	}
	out, err := h.svc.GetUser(r.Context(), int32(id))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	out.Password = ""
	respond.WriteJSON(w, http.StatusOK, out)
}

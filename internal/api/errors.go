package api

import (
	"errors"
	"net/http"

	"github.com/agentdir/directory/internal/api/respond"
	"github.com/agentdir/directory/internal/model"
)

// writeStoreError maps store errors onto the three error classes the API
// exposes: absence is 404, a uniqueness violation is 409, anything else 500.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		respond.WriteNotFound(w, err.Error())
	case errors.Is(err, model.ErrConflict):
		respond.WriteConflict(w, err.Error())
	default:
		respond.WriteInternalError(w, err.Error())
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/cloudmark/internal/domain"
	"github.com/MrSnakeDoc/cloudmark/internal/logger"
)

type errorResponse struct {
	Error    string                   `json:"error"`
	Code     string                   `json:"code"`
	Existing *domain.BookmarkInstance `json:"existing,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the store error taxonomy onto HTTP statuses:
// validation 400, duplicate URL 409 (with the record that owns the
// URL), unknown uuid/collection 404, corrupt document 500 with a
// distinct code, anything else 502 backend unavailable.
func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	var (
		vErr *domain.ValidationError
		cErr *domain.ConflictError
		mErr *domain.MalformedError
	)
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: vErr.Error(), Code: "validationError"})
	case errors.As(err, &cErr):
		writeJSON(w, http.StatusConflict, errorResponse{Error: cErr.Error(), Code: "duplicateUrl", Existing: &cErr.Existing})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Code: "notFound"})
	case errors.As(err, &mErr):
		log.Error("corrupt collection document",
			logger.String("mark", mErr.Mark),
			logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "collection document is corrupt", Code: "collectionCorrupt"})
	default:
		log.Error("backend failure", logger.Error(err))
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "backend unavailable", Code: "backendUnavailable"})
	}
}

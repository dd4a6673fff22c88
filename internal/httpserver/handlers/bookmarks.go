package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/cloudmark/internal/domain"
	"github.com/MrSnakeDoc/cloudmark/internal/httpserver/deps"
	"github.com/MrSnakeDoc/cloudmark/internal/store"
)

type bookmarkRequest struct {
	Mark        string `json:"mark"`
	UUID        string `json:"uuid,omitempty"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
}

type deleteRequest struct {
	Mark string `json:"mark"`
	UUID string `json:"uuid"`
}

// UpsertBookmark inserts a bookmark, or updates an existing one when
// the request carries a uuid. 201 on insert, 200 on update.
func UpsertBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bookmarkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Code: "validationError"})
			return
		}

		fields := domain.BookmarkFields{
			URL:         req.URL,
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
		}

		st := store.ForMark(req.Mark, d.Store, d.Demo)

		if req.UUID != "" {
			record, err := st.Update(r.Context(), req.Mark, req.UUID, fields)
			if err != nil {
				writeError(w, d.Logger, err)
				return
			}
			writeJSON(w, http.StatusOK, record)
			return
		}

		record, err := st.Insert(r.Context(), req.Mark, fields)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusCreated, record)
	}
}

// DeleteBookmark removes a record by uuid. 204 on success.
func DeleteBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Code: "validationError"})
			return
		}
		if req.UUID == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid uuid: required", Code: "validationError"})
			return
		}

		st := store.ForMark(req.Mark, d.Store, d.Demo)
		if err := st.Delete(r.Context(), req.Mark, req.UUID); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

package adapthttp

import (
	"errors"
	"net/http"

	"blogapi/internal/app"
)

type assignCategoryRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleAssignCategory(w http.ResponseWriter, r *http.Request) {
	postID, ok := idParam(r, "postId")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid body request", "'postId' must be a positive integer")
		return
	}
	var req assignCategoryRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid body request", "Invalid body request")
		return
	}
	if msg := validateText("name", req.Name); msg != "" {
		writeError(w, http.StatusBadRequest, "Invalid body request", msg)
		return
	}

	category, err := s.categories.AssignToPost(r.Context(), postID, req.Name)
	switch {
	case errors.Is(err, app.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "Post not found", "Post not found")
	case errors.Is(err, app.ErrCategoryAssigned):
		writeError(w, http.StatusConflict, "Category already assigned", "Category already assigned to this post")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Internal error", "could not assign category")
	default:
		writeJSON(w, http.StatusCreated, category)
	}
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	postID, ok := idParam(r, "postId")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid body request", "'postId' must be a positive integer")
		return
	}
	categories, err := s.categories.ListForPost(r.Context(), postID)
	switch {
	case errors.Is(err, app.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "Post not found", "Post not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Internal error", "could not list categories")
	default:
		writeJSON(w, http.StatusOK, categories)
	}
}

package adapthttp

import (
	"errors"
	"net/http"

	"blogapi/internal/app"
)

type createCommentRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	postID, ok := idParam(r, "postId")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid body request", "'postId' must be a positive integer")
		return
	}
	var req createCommentRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid body request", "Invalid body request")
		return
	}
	if msg := validateText("content", req.Content); msg != "" {
		writeError(w, http.StatusBadRequest, "Invalid body request", msg)
		return
	}

	comment, err := s.comments.AddToPost(r.Context(), postID, req.Content)
	switch {
	case errors.Is(err, app.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "Post not found", "Post not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Internal error", "could not create comment")
	default:
		writeJSON(w, http.StatusCreated, comment)
	}
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := idParam(r, "postId")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid body request", "'postId' must be a positive integer")
		return
	}
	comments, err := s.comments.ListForPost(r.Context(), postID)
	switch {
	case errors.Is(err, app.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "Post not found", "Post not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Internal error", "could not list comments")
	default:
		writeJSON(w, http.StatusOK, comments)
	}
}

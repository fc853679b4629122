package adapthttp

import (
	"errors"
	"net/http"

	"blogapi/internal/app"
)

type createPostRequest struct {
	UserID  uint   `json:"userId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type updatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid body request", "Invalid body request")
		return
	}
	if req.UserID == 0 {
		writeError(w, http.StatusBadRequest, "Invalid body request", "'userId' must be a positive integer")
		return
	}
	if msg := validateText("title", req.Title); msg != "" {
		writeError(w, http.StatusBadRequest, "Invalid body request", msg)
		return
	}
	if msg := validateText("content", req.Content); msg != "" {
		writeError(w, http.StatusBadRequest, "Invalid body request", msg)
		return
	}

	post, err := s.posts.Create(r.Context(), req.UserID, req.Title, req.Content)
	switch {
	case errors.Is(err, app.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found", "User not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Internal error", "could not create post")
	default:
		writeJSON(w, http.StatusCreated, post)
	}
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.posts.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal error", "could not list posts")
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "postId")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid body request", "'postId' must be a positive integer")
		return
	}
	detail, err := s.posts.Get(r.Context(), id)
	switch {
	case errors.Is(err, app.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "Post not found", "Post not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Internal error", "could not fetch post")
	default:
		writeJSON(w, http.StatusOK, detail)
	}
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "postId")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid body request", "'postId' must be a positive integer")
		return
	}
	var req updatePostRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid body request", "Invalid body request")
		return
	}
	if msg := validateText("title", req.Title); msg != "" {
		writeError(w, http.StatusBadRequest, "Invalid body request", msg)
		return
	}
	if msg := validateText("content", req.Content); msg != "" {
		writeError(w, http.StatusBadRequest, "Invalid body request", msg)
		return
	}

	post, err := s.posts.Update(r.Context(), id, req.Title, req.Content)
	switch {
	case errors.Is(err, app.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "Post not found", "Post not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Internal error", "could not update post")
	default:
		writeJSON(w, http.StatusOK, post)
	}
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "postId")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid body request", "'postId' must be a positive integer")
		return
	}
	err := s.posts.Delete(r.Context(), id)
	switch {
	case errors.Is(err, app.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "Post not found", "Post not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Internal error", "could not delete post")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted"})
	}
}

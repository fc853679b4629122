package adapthttp_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	adapthttp "blogapi/internal/adapter/http"
	"blogapi/internal/adapter/memory"
	"blogapi/internal/app"
)

// newTestHandler wires the full HTTP surface over the in-memory adapter.
func newTestHandler() http.Handler {
	db := memory.New()
	users := memory.NewUserRepo(db)
	posts := memory.NewPostRepo(db)
	comments := memory.NewCommentRepo(db)
	categories := memory.NewCategoryRepo(db)
	pairs := memory.NewPostCategoryRepo(db)
	tokens := memory.NewTokenRepo(db)

	auth := app.NewAuthService(users, tokens, []byte("test-secret"), 15*time.Minute)
	userSvc := app.NewUserService(users, tokens)
	postSvc := app.NewPostService(posts, users, comments, categories, pairs)
	categorySvc := app.NewCategoryService(posts, categories, pairs)
	commentSvc := app.NewCommentService(posts, comments)

	return adapthttp.New(userSvc, postSvc, categorySvc, commentSvc, auth, nil, nil).Handler()
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func registerUser(t *testing.T, h http.Handler, name, email string) uint {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/users", "", map[string]string{
		"userName": name, "email": email, "password": "secret-pass",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d body %s", email, w.Code, w.Body.String())
	}
	user, ok := decode(t, w)["user"].(map[string]any)
	if !ok {
		t.Fatalf("register %s: missing user in response", email)
	}
	return uint(user["id"].(float64))
}

func loginUser(t *testing.T, h http.Handler, email string) string {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/users/login", "", map[string]string{
		"email": email, "password": "secret-pass",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", email, w.Code, w.Body.String())
	}
	return decode(t, w)["token"].(string)
}

func createPost(t *testing.T, h http.Handler, token string, userID uint) uint {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/posts", token, map[string]any{
		"userId": userID, "title": "a title", "content": "some content",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create post: status %d body %s", w.Code, w.Body.String())
	}
	return uint(decode(t, w)["id"].(float64))
}

func TestRegister_StripsPassword(t *testing.T) {
	h := newTestHandler()
	w := doJSON(t, h, http.MethodPost, "/users", "", map[string]string{
		"userName": "alice", "email": "alice@example.com", "password": "secret-pass",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
	user, ok := decode(t, w)["user"].(map[string]any)
	if !ok {
		t.Fatalf("missing user in response: %s", w.Body.String())
	}
	if _, present := user["password"]; present {
		t.Error("password must never appear in a response")
	}
	if user["userName"] != "alice" || user["email"] != "alice@example.com" {
		t.Errorf("unexpected user: %v", user)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	h := newTestHandler()
	registerUser(t, h, "alice", "alice@example.com")

	w := doJSON(t, h, http.MethodPost, "/users", "", map[string]string{
		"userName": "clone", "email": "alice@example.com", "password": "secret-pass",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if decode(t, w)["message"] != "Email already in use" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestRegister_ValidationFailures(t *testing.T) {
	h := newTestHandler()
	cases := []map[string]string{
		{"userName": "", "email": "a@example.com", "password": "secret-pass"},
		{"userName": "alice", "email": "not-an-email", "password": "secret-pass"},
		{"userName": "alice", "email": "a@example.com", "password": "short"},
	}
	for i, body := range cases {
		w := doJSON(t, h, http.MethodPost, "/users", "", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("case %d: expected 400, got %d", i, w.Code)
		}
	}
}

func TestRegister_MalformedJSON(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if decode(t, w)["message"] != "Invalid body request" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	h := newTestHandler()
	registerUser(t, h, "alice", "alice@example.com")

	w := doJSON(t, h, http.MethodPost, "/users/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrong-pass99",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLogin_SameTokenWhileValid(t *testing.T) {
	h := newTestHandler()
	registerUser(t, h, "alice", "alice@example.com")

	first := loginUser(t, h, "alice@example.com")
	second := loginUser(t, h, "alice@example.com")
	if first != second {
		t.Error("a still-valid token must be returned unchanged on re-login")
	}
}

func TestProtectedRoute_NoToken(t *testing.T) {
	h := newTestHandler()
	w := doJSON(t, h, http.MethodGet, "/users/1", "", nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if decode(t, w)["message"] != "Access denied, no token provided" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestProtectedRoute_WrongScheme(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
	req.Header.Set("Authorization", "Token xyz")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("non-bearer scheme must be treated as no token, got %d", w.Code)
	}
}

func TestProtectedRoute_UnknownToken(t *testing.T) {
	h := newTestHandler()
	w := doJSON(t, h, http.MethodGet, "/users/1", "never-issued-token", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	h := newTestHandler()
	registerUser(t, h, "alice", "alice@example.com")
	token := loginUser(t, h, "alice@example.com")

	w := doJSON(t, h, http.MethodGet, "/users/99", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if decode(t, w)["message"] != "User not found" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestGetUser_InvalidID(t *testing.T) {
	h := newTestHandler()
	registerUser(t, h, "alice", "alice@example.com")
	token := loginUser(t, h, "alice@example.com")

	w := doJSON(t, h, http.MethodGet, "/users/abc", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUpdateUser_InvalidatesToken(t *testing.T) {
	h := newTestHandler()
	id := registerUser(t, h, "alice", "alice@example.com")
	token := loginUser(t, h, "alice@example.com")

	w := doJSON(t, h, http.MethodPut, fmt.Sprintf("/users/%d", id), token, map[string]string{
		"userName": "alicia", "email": "alice@example.com", "password": "secret-pass",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: status %d body %s", w.Code, w.Body.String())
	}

	// The old token is no longer in the active set.
	w = doJSON(t, h, http.MethodGet, fmt.Sprintf("/users/%d", id), token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 after profile update, got %d", w.Code)
	}
}

func TestCreatePost_EmbedsOwnerWithoutPassword(t *testing.T) {
	h := newTestHandler()
	id := registerUser(t, h, "alice", "alice@example.com")
	token := loginUser(t, h, "alice@example.com")

	w := doJSON(t, h, http.MethodPost, "/posts", token, map[string]any{
		"userId": id, "title": "a title", "content": "some content",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	user, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected embedded user, got %v", body)
	}
	if _, present := user["password"]; present {
		t.Error("embedded user must not expose the password")
	}
	if body["categories"] == nil || body["comments"] == nil {
		t.Error("expected empty association arrays, not null")
	}
}

func TestCreatePost_UnknownOwner(t *testing.T) {
	h := newTestHandler()
	registerUser(t, h, "alice", "alice@example.com")
	token := loginUser(t, h, "alice@example.com")

	w := doJSON(t, h, http.MethodPost, "/posts", token, map[string]any{
		"userId": 99, "title": "a title", "content": "some content",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if decode(t, w)["message"] != "User not found" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestListPosts_Open(t *testing.T) {
	h := newTestHandler()
	id := registerUser(t, h, "alice", "alice@example.com")
	token := loginUser(t, h, "alice@example.com")
	createPost(t, h, token, id)

	w := doJSON(t, h, http.MethodGet, "/posts", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("listing posts must not require a token, got %d", w.Code)
	}
	var posts []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &posts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(posts) != 1 {
		t.Errorf("expected 1 post, got %d", len(posts))
	}
}

func TestAssignCategory_ConflictAndOrder(t *testing.T) {
	h := newTestHandler()
	id := registerUser(t, h, "alice", "alice@example.com")
	token := loginUser(t, h, "alice@example.com")
	postID := createPost(t, h, token, id)
	path := fmt.Sprintf("/posts/%d/categories", postID)

	w := doJSON(t, h, http.MethodPost, path, token, map[string]string{"name": "databases"})
	if w.Code != http.StatusCreated {
		t.Fatalf("first assign: status %d body %s", w.Code, w.Body.String())
	}
	w = doJSON(t, h, http.MethodPost, path, token, map[string]string{"name": "go"})
	if w.Code != http.StatusCreated {
		t.Fatalf("second assign: status %d body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, h, http.MethodPost, path, token, map[string]string{"name": "databases"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate, got %d", w.Code)
	}
	if decode(t, w)["error"] != "Category already assigned" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}

	w = doJSON(t, h, http.MethodGet, path, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	var categories []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &categories); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(categories) != 2 || categories[0]["name"] != "databases" || categories[1]["name"] != "go" {
		t.Errorf("expected assignment order, got %v", categories)
	}
}

func TestCreateComment_AttributedToPostOwner(t *testing.T) {
	h := newTestHandler()
	aliceID := registerUser(t, h, "alice", "alice@example.com")
	registerUser(t, h, "bob", "bob@example.com")
	aliceToken := loginUser(t, h, "alice@example.com")
	bobToken := loginUser(t, h, "bob@example.com")
	postID := createPost(t, h, aliceToken, aliceID)

	// Bob comments, but the record carries Alice as author.
	w := doJSON(t, h, http.MethodPost, fmt.Sprintf("/posts/%d/comments", postID), bobToken, map[string]string{
		"content": "great post",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
	if got := uint(decode(t, w)["userId"].(float64)); got != aliceID {
		t.Errorf("expected comment attributed to user %d, got %d", aliceID, got)
	}
}

func TestDeleteUser_CascadesToPosts(t *testing.T) {
	h := newTestHandler()
	aliceID := registerUser(t, h, "alice", "alice@example.com")
	registerUser(t, h, "bob", "bob@example.com")
	aliceToken := loginUser(t, h, "alice@example.com")
	bobToken := loginUser(t, h, "bob@example.com")
	postID := createPost(t, h, aliceToken, aliceID)

	w := doJSON(t, h, http.MethodDelete, fmt.Sprintf("/users/%d", aliceID), bobToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status %d body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, h, http.MethodGet, fmt.Sprintf("/posts/%d", postID), bobToken, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for cascaded post, got %d", w.Code)
	}
	if decode(t, w)["message"] != "Post not found" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler()
	w := doJSON(t, h, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAuthConfig_SSODisabled(t *testing.T) {
	h := newTestHandler()
	w := doJSON(t, h, http.MethodGet, "/auth/config", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if decode(t, w)["sso_enabled"] != false {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

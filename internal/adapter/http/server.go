package adapthttp

import (
	"net/http"

	"blogapi/internal/app"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	users       *app.UserService
	posts       *app.PostService
	categories  *app.CategoryService
	comments    *app.CommentService
	auth        *app.AuthService
	oidc        *OIDCConfig
	corsOrigins []string
}

// New creates a Server wired to the given application services. oidc may be
// nil when SSO is disabled.
func New(
	users *app.UserService,
	posts *app.PostService,
	categories *app.CategoryService,
	comments *app.CommentService,
	auth *app.AuthService,
	oidc *OIDCConfig,
	corsOrigins []string,
) *Server {
	return &Server{
		users:       users,
		posts:       posts,
		categories:  categories,
		comments:    comments,
		auth:        auth,
		oidc:        oidc,
		corsOrigins: corsOrigins,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	if len(s.corsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.corsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", s.handleCreateUser)
		r.Get("/", s.handleListUsers)
		r.Post("/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)
			r.Get("/{userId}", s.handleGetUser)
			r.Put("/{userId}", s.handleUpdateUser)
			r.Delete("/{userId}", s.handleDeleteUser)
		})
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", s.handleListPosts)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)
			r.Post("/", s.handleCreatePost)
			r.Get("/{postId}", s.handleGetPost)
			r.Put("/{postId}", s.handleUpdatePost)
			r.Delete("/{postId}", s.handleDeletePost)

			r.Post("/{postId}/categories", s.handleAssignCategory)
			r.Get("/{postId}/categories", s.handleListCategories)
			r.Post("/{postId}/comments", s.handleCreateComment)
			r.Get("/{postId}/comments", s.handleListComments)
		})
	})

	r.Get("/auth/config", s.handleAuthConfig)
	if s.oidc != nil && s.oidc.Enabled {
		r.Get("/auth/sso/login", s.handleSSOLogin)
		r.Get("/auth/sso/callback", s.handleSSOCallback)
	}

	return r
}

// Package httpapi exposes the wishlist JSON API. All endpoints are POST
// with JSON bodies; successful item responses are wrapped in a {"data": ...}
// envelope and errors carry a {"message": ...} body.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/wetrippo/wishlist/internal/logging"
	"github.com/wetrippo/wishlist/internal/server/models"
)

// UserService is the account surface the handlers depend on.
type UserService interface {
	Register(ctx context.Context, login, password string) (*models.User, error)
	Login(ctx context.Context, login, password string) (*models.User, error)
}

// ItemService is the wishlist item surface the handlers depend on.
type ItemService interface {
	List(ctx context.Context, ownerID string) ([]*models.Item, error)
	Create(ctx context.Context, ownerID, title, imageURL, productURL string) (*models.Item, error)
	Update(ctx context.Context, id int64, ownerID string, upd *models.ItemUpdate) (*models.Item, error)
	Delete(ctx context.Context, id int64, ownerID string) error
	GetPresignedPutUrl(ctx context.Context) (string, string, error)
}

// Server holds the HTTP server dependencies.
type Server struct {
	users  UserService
	items  ItemService
	log    logging.Logger
	router chi.Router
}

// New creates a new API server.
func New(users UserService, items ItemService, allowedOrigins string, log logging.Logger) *Server {
	s := &Server{
		users:  users,
		items:  items,
		log:    log,
		router: chi.NewRouter(),
	}

	s.setupMiddleware(allowedOrigins)
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware(allowedOrigins string) {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(allowedOrigins, ","),
		AllowedMethods:   []string{"POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		r.Route("/wishlist-auth", func(r chi.Router) {
			r.Post("/sign-up", s.handleSignUp)
			r.Post("/sign-in", s.handleSignIn)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Post("/list", s.handleList)
			r.Post("/create", s.handleCreate)
			r.Post("/update", s.handleUpdate)
			r.Post("/delete", s.handleDelete)
			r.Post("/image-upload", s.handleImageUpload)
		})
	})

	// Health check
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

// --- Response helpers ---

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondData wraps the payload in the {"data": ...} envelope.
func respondData(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, map[string]any{"data": data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// Package httpapi exposes the task-list service over HTTP/JSON. Paths and
// body shapes form the public contract consumed by the interactive client.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mkochanov/listkeeper/internal/logging"
	"github.com/mkochanov/listkeeper/internal/models"
	smodels "github.com/mkochanov/listkeeper/internal/server/models"
)

// The transport depends on small interfaces so handler tests can run
// against fakes; the concrete services in internal/server/services
// satisfy them.
type userService interface {
	Register(ctx context.Context, name, username, password, confirm string) (*smodels.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
	ValidateSession(ctx context.Context, token string) (string, error)
}

type listService interface {
	GetLists(ctx context.Context, ownerID string) ([]*models.List, error)
	CreateList(ctx context.Context, ownerID, title string, status models.ListStatus) (*models.List, error)
	EditList(ctx context.Context, ownerID, id, title string, status models.ListStatus) error
	DeleteList(ctx context.Context, ownerID, id string) error
}

type itemService interface {
	GetItems(ctx context.Context, ownerID, listID string) ([]*models.Item, error)
	AddItem(ctx context.Context, ownerID, listID, desc string, status models.ItemStatus) (*models.Item, error)
	EditItem(ctx context.Context, ownerID, id, desc string) error
	DeleteItem(ctx context.Context, ownerID, id string) error
}

type HTTPServer struct {
	address         string
	logger          logging.Logger
	users           userService
	lists           listService
	items           itemService
	sessionValidity time.Duration
}

func NewHTTPServer(a string, l logging.Logger, us userService, ls listService, is itemService, sessionValidity time.Duration) *HTTPServer {
	return &HTTPServer{
		address:         a,
		logger:          l.With("module", "http_server"),
		users:           us,
		lists:           ls,
		items:           is,
		sessionValidity: sessionValidity,
	}
}

// NewRouter wires the public endpoints. Everything except register and
// login sits behind the session middleware.
func (s *HTTPServer) NewRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)

	protected := r.NewRoute().Subrouter()
	protected.Use(s.sessionMiddleware)
	protected.HandleFunc("/logout", s.handleLogout).Methods(http.MethodPost)
	protected.HandleFunc("/get-list", s.handleGetLists).Methods(http.MethodGet)
	protected.HandleFunc("/add-list", s.handleAddList).Methods(http.MethodPost)
	protected.HandleFunc("/edit-list", s.handleEditList).Methods(http.MethodPost)
	protected.HandleFunc("/delete-list", s.handleDeleteList).Methods(http.MethodPost)
	protected.HandleFunc("/get-items", s.handleGetItems).Methods(http.MethodPost)
	protected.HandleFunc("/add-items", s.handleAddItem).Methods(http.MethodPost)
	protected.HandleFunc("/edit-items", s.handleEditItem).Methods(http.MethodPost)
	protected.HandleFunc("/delete-items", s.handleDeleteItem).Methods(http.MethodPost)

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is done.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.NewRouter(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

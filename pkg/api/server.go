package api

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/cbodonnell/tickwheel/pkg/api/handlers"
	"github.com/cbodonnell/tickwheel/pkg/api/middleware"
	"github.com/cbodonnell/tickwheel/pkg/log"
	"github.com/gorilla/mux"
)

// APIServer serves read-only debug endpoints over the engine's published
// stats. It never touches live engine state.
type APIServer struct {
	server *http.Server
}

type NewAPIServerOptions struct {
	Addr  string
	Stats handlers.StatsProvider
}

// NewRouter returns the debug routes.
func NewRouter(stats handlers.StatsProvider) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Logging, middleware.CORS)
	r.HandleFunc("/stats", handlers.HandleStats(stats)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/tasks", handlers.HandleListTasks(stats)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/tasks/{taskID:[0-9]+}", handlers.HandleGetTask(stats)).Methods(http.MethodGet, http.MethodOptions)
	return r
}

// NewAPIServer creates a new http.Server for handling debug requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	return &APIServer{
		server: &http.Server{
			Addr:    opts.Addr,
			Handler: NewRouter(opts.Stats),
		},
	}
}

// Start serves on the configured address until Stop is called.
func (s *APIServer) Start() {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		log.Error("API server error: %v", err)
		return
	}
	s.Serve(ln)
}

// Serve accepts connections on ln until Stop is called.
func (s *APIServer) Serve(ln net.Listener) {
	log.Info("API server listening on %s", ln.Addr())
	if err := s.server.Serve(ln); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

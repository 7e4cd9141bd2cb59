package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/chamados-hub/apiserver/config"
	"github.com/chamados-hub/apiserver/internal/db"
	"github.com/chamados-hub/apiserver/internal/handlers"
	"github.com/chamados-hub/apiserver/internal/mq"
	"github.com/chamados-hub/apiserver/internal/services"
	"github.com/chamados-hub/apiserver/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server wraps the HTTP server, router and process-scoped resources
// (connection pool, message bus).
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
	bus        *mq.MQ
}

// New constructs a Server with basic middleware and defaults.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	bus, err := mq.NewFromConfig(ctx, cfg.MQ)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	ticketRepo := store.NewTicketRepository(dbConn)
	userRepo := store.NewUserRepository(dbConn)

	var publisher services.EventPublisher
	if bus != nil {
		publisher = bus
	}
	ticketService := services.NewTicketService(ticketRepo, publisher, cfg.MQ.Channel)
	userService := services.NewUserService(userRepo)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/", handlers.Index)
	router.Get("/healthz", handlers.Healthz(dbConn))
	router.Route("/api/chamados", func(r chi.Router) {
		handlers.TicketRouter(r, ticketService)
	})
	router.Route("/api/usuarios", func(r chi.Router) {
		handlers.UserRouter(r, userService)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 3000
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
		bus:        bus,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown, releasing the pool and bus.
func (s *Server) Shutdown() error {
	if s.bus != nil {
		_ = s.bus.Close()
	}
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}

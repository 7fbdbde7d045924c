package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	core_port "property-search-service/internal/core/port"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers - все группы обработчиков API
type Handlers struct {
	Properties        *PropertyHandler
	InternetProviders *InternetProviderHandler
	BikeParkings      *BikeParkingHandler
	Notifications     *NotificationHandler
	System            *SystemHandler
}

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewRouter собирает chi-роутер со всеми маршрутами и middleware.
func NewRouter(handlers Handlers, allowedOrigins []string, baseLogger core_port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/", handlers.System.Welcome)
	r.Get("/health", handlers.System.Health)

	r.Route("/properties", func(r chi.Router) {
		r.Get("/", handlers.Properties.ListProperties)
		r.Post("/", handlers.Properties.CreateProperty)
		r.Get("/{id}", handlers.Properties.GetProperty)
		r.Put("/{id}", handlers.Properties.UpdateProperty)
		r.Delete("/{id}", handlers.Properties.DeleteProperty)
	})

	r.Route("/internet-providers", func(r chi.Router) {
		r.Post("/", handlers.InternetProviders.UpsertInternetProvider)
		r.Get("/{property_id}", handlers.InternetProviders.GetInternetProvider)
		r.Put("/{id}", handlers.InternetProviders.UpdateInternetProvider)
		r.Delete("/{id}", handlers.InternetProviders.DeleteInternetProvider)
	})

	r.Route("/bike-parkings", func(r chi.Router) {
		r.Post("/", handlers.BikeParkings.CreateBikeParking)
		r.Get("/property/{property_id}", handlers.BikeParkings.ListByProperty)
		r.Put("/{id}", handlers.BikeParkings.UpdateBikeParking)
		r.Delete("/{id}", handlers.BikeParkings.DeleteBikeParking)
	})

	r.Route("/notifications", func(r chi.Router) {
		r.Post("/", handlers.Notifications.CreateNotification)
		r.Get("/property/{property_id}", handlers.Notifications.ListByProperty)
		r.Delete("/{id}", handlers.Notifications.DeleteNotification)
	})

	return r
}

func NewServer(port string, handler http.Handler, baseLogger core_port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

// Start запускает HTTP-сервер и блокируется до его остановки.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"ngoportal/cmd/app"
	"ngoportal/internal/config"
	handlers "ngoportal/internal/handler"
	"ngoportal/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	// drop leftovers from previous runs
	if purged, err := repo.Session.DeleteExpired(context.Background()); err != nil {
		log.Printf("Warning: failed to purge expired sessions: %v", err)
	} else if purged > 0 {
		log.Printf("Purged %d expired sessions", purged)
	}

	handler := handlers.NewHandlers(services, repo, cfg)

	r := mux.NewRouter()

	r.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/login", handler.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/logout", handler.Auth.Logout).Methods(http.MethodPost)
	api.HandleFunc("/user", middleware.RequireAuth(handler.Auth.Me)).Methods(http.MethodGet)

	api.HandleFunc("/posts", handler.Posts.List).Methods(http.MethodGet)
	api.HandleFunc("/posts", middleware.RequireAuth(handler.Posts.Create)).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}", handler.Posts.Get).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", middleware.RequireAuth(handler.Posts.Update)).Methods(http.MethodPatch)
	api.HandleFunc("/posts/{id}", middleware.RequireAuth(handler.Posts.Delete)).Methods(http.MethodDelete)

	api.HandleFunc("/events", handler.Events.List).Methods(http.MethodGet)
	api.HandleFunc("/events", middleware.RequireAuth(handler.Events.Create)).Methods(http.MethodPost)
	api.HandleFunc("/events/{id}", handler.Events.Get).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}", middleware.RequireAuth(handler.Events.Update)).Methods(http.MethodPatch)
	api.HandleFunc("/events/{id}", middleware.RequireAuth(handler.Events.Delete)).Methods(http.MethodDelete)

	api.HandleFunc("/members", handler.Members.List).Methods(http.MethodGet)
	api.HandleFunc("/members", middleware.RequireAuth(handler.Members.Create)).Methods(http.MethodPost)
	api.HandleFunc("/members/{id}", handler.Members.Get).Methods(http.MethodGet)
	api.HandleFunc("/members/{id}", middleware.RequireAuth(handler.Members.Update)).Methods(http.MethodPatch)
	api.HandleFunc("/members/{id}", middleware.RequireAuth(handler.Members.Delete)).Methods(http.MethodDelete)

	api.HandleFunc("/programmes", handler.Programmes.List).Methods(http.MethodGet)
	api.HandleFunc("/programmes", middleware.RequireAuth(handler.Programmes.Create)).Methods(http.MethodPost)
	api.HandleFunc("/programmes/{id}", handler.Programmes.Get).Methods(http.MethodGet)
	api.HandleFunc("/programmes/{id}", middleware.RequireAuth(handler.Programmes.Update)).Methods(http.MethodPatch)
	api.HandleFunc("/programmes/{id}", middleware.RequireAuth(handler.Programmes.Delete)).Methods(http.MethodDelete)

	// donations are written by the public, read and managed by staff
	api.HandleFunc("/donations", middleware.RequireAuth(handler.Donations.List)).Methods(http.MethodGet)
	api.HandleFunc("/donations", handler.Donations.Create).Methods(http.MethodPost)
	api.HandleFunc("/donations/{id}/verify", middleware.RequireAuth(handler.Donations.Verify)).Methods(http.MethodPatch)
	api.HandleFunc("/donations/{id}", middleware.RequireAuth(handler.Donations.Get)).Methods(http.MethodGet)
	api.HandleFunc("/donations/{id}", middleware.RequireAuth(handler.Donations.Update)).Methods(http.MethodPatch)
	api.HandleFunc("/donations/{id}", middleware.RequireAuth(handler.Donations.Delete)).Methods(http.MethodDelete)

	// contact messages are append-only
	api.HandleFunc("/contact", middleware.RequireAuth(handler.Contact.List)).Methods(http.MethodGet)
	api.HandleFunc("/contact", handler.Contact.Create).Methods(http.MethodPost)
	api.HandleFunc("/contact/{id}", middleware.RequireAuth(handler.Contact.Get)).Methods(http.MethodGet)
	api.HandleFunc("/contact/{id}", middleware.RequireAuth(handler.Contact.Delete)).Methods(http.MethodDelete)

	api.HandleFunc("/users", middleware.RequireAuth(handler.Users.List)).Methods(http.MethodGet)
	api.HandleFunc("/users", middleware.RequireAuth(handler.Users.Create)).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", middleware.RequireAuth(handler.Users.Get)).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", middleware.RequireAuth(handler.Users.Delete)).Methods(http.MethodDelete)

	api.HandleFunc("/upload", handler.Upload.Upload).Methods(http.MethodPost)
	api.HandleFunc("/stats", middleware.RequireAuth(handler.Stats.Get)).Methods(http.MethodGet)

	if cfg.StorageBackend == "local" || cfg.StorageBackend == "" {
		r.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	handlerChain := middleware.Chain(
		r,
		middleware.SessionMiddleware(services.Auth),
		middleware.LoggingMiddleware,
		corsHandler.Handler,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)
	log.Printf("Database: %s", cfg.DB.Name)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

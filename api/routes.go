package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ttoweb/techportal/internal/config"
	"github.com/ttoweb/techportal/internal/db"
	"github.com/ttoweb/techportal/internal/repository/sqlite"
)

// SetupAuthRoutes builds the auth service router: signup and login under
// /auth, plus health and version probes.
func SetupAuthRoutes(cfg *config.Config, version, buildTime string, database *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	repo := sqlite.New(database, logger)

	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration)

	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler("auth")).Methods("GET")

	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", authHandler.Signup).Methods("POST")
	auth.HandleFunc("/login", authHandler.Login).Methods("POST")

	return r
}

// SetupCatalogRoutes builds the catalog service router. Reads are open;
// writes require a valid bearer token issued by the auth service.
func SetupCatalogRoutes(cfg *config.Config, version, buildTime string, database *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	repo := sqlite.New(database, logger)

	systemHandler := &SystemHandler{}
	techHandler := NewTechnologiesHandler(repo)
	eventsHandler := NewEventsHandler(repo)

	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler("catalog")).Methods("GET")

	// Open read endpoints
	r.HandleFunc("/technologies", techHandler.List).Methods("GET")
	r.HandleFunc("/technologies/{id}", techHandler.Get).Methods("GET")
	r.HandleFunc("/events", eventsHandler.List).Methods("GET")
	r.HandleFunc("/events/{id}", eventsHandler.Get).Methods("GET")

	// Protected write endpoints
	jwtMW := JWTAuthMiddlewareWithSecret(cfg.JWTSecret)
	r.Handle("/technologies", jwtMW(http.HandlerFunc(techHandler.Create))).Methods("POST")
	r.Handle("/technologies/{id}", jwtMW(http.HandlerFunc(techHandler.Update))).Methods("PUT")
	r.Handle("/technologies/{id}", jwtMW(http.HandlerFunc(techHandler.Delete))).Methods("DELETE")
	r.Handle("/events", jwtMW(http.HandlerFunc(eventsHandler.Create))).Methods("POST")
	r.Handle("/events/{id}", jwtMW(http.HandlerFunc(eventsHandler.Update))).Methods("PUT")
	r.Handle("/events/{id}", jwtMW(http.HandlerFunc(eventsHandler.Delete))).Methods("DELETE")

	return r
}

package api

import (
	"github.com/gorilla/mux"

	"github.com/agentdir/directory/internal/api/recovery"
	"github.com/agentdir/directory/internal/api/requestid"
	"github.com/agentdir/directory/internal/service"
	"github.com/agentdir/directory/internal/store"
)

// NewRouter wires every API route onto a mux router.
func NewRouter(st store.Store) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)
	router.Use(requestid.Middleware)

	// Domain services
	catalogService := service.NewCatalogService(st)
	contentService := service.NewContentService(st)
	userService := service.NewUserService(st)

	// Handlers
	healthHandler := NewHealthHandler(st)
	catalogHandler := NewCatalogHandler(catalogService)
	contentHandler := NewContentHandler(contentService)
	userHandler := NewUserHandler(userService)
	adminHandler := NewAdminHandler(st)

	// Health endpoints
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")
	router.HandleFunc("/api/health/store", healthHandler.CheckStoreHealth).Methods("GET")

	// Category endpoints
	router.HandleFunc("/api/categories", catalogHandler.ListCategories).Methods("GET")
	router.HandleFunc("/api/categories", catalogHandler.CreateCategory).Methods("POST")
	router.HandleFunc("/api/categories/{id:[0-9]+}", catalogHandler.UpdateCategory).Methods("PATCH")
	router.HandleFunc("/api/categories/{slug}", catalogHandler.GetCategoryBySlug).Methods("GET")

	// Agent endpoints (numeric-id routes first, slug detail route last)
	router.HandleFunc("/api/agents", catalogHandler.ListAgents).Methods("GET")
	router.HandleFunc("/api/agents", catalogHandler.CreateAgent).Methods("POST")
	router.HandleFunc("/api/agents/{id:[0-9]+}/features", catalogHandler.ListFeatures).Methods("GET")
	router.HandleFunc("/api/agents/{id:[0-9]+}/use-cases", catalogHandler.ListUseCases).Methods("GET")
	router.HandleFunc("/api/agents/{id:[0-9]+}", catalogHandler.UpdateAgent).Methods("PATCH")
	router.HandleFunc("/api/agents/{slug}", catalogHandler.GetAgentDetail).Methods("GET")

	// Child entity creation
	router.HandleFunc("/api/agent-features", catalogHandler.CreateFeature).Methods("POST")
	router.HandleFunc("/api/agent-use-cases", catalogHandler.CreateUseCase).Methods("POST")

	// Page content endpoints
	router.HandleFunc("/api/page-content", contentHandler.ListPageContent).Methods("GET")
	router.HandleFunc("/api/page-content", contentHandler.CreatePageContent).Methods("POST")
	router.HandleFunc("/api/page-content/{pageKey}", contentHandler.UpdatePageContent).Methods("PATCH")

	// User endpoints
	router.HandleFunc("/api/users", userHandler.CreateUser).Methods("POST")
	router.HandleFunc("/api/users/{id:[0-9]+}", userHandler.GetUser).Methods("GET")

	// Admin endpoints
	router.HandleFunc("/api/admin/seed", adminHandler.SeedDemoData).Methods("POST")

	return router
}

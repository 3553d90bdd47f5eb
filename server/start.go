package server

import (
	"context"
	"net/http"
	"os"

	"recipe-service/auth"
	cachepackage "recipe-service/cache"
	"recipe-service/config"
	"recipe-service/database"
	"recipe-service/handlers"
	"recipe-service/recipes"
	"recipe-service/store"
	"recipe-service/web"

	"github.com/umakantv/go-utils/httpserver"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

func StartServer() {
	// Initialize logger
	logger.Init(logger.LoggerConfig{
		CallerKey:  "file",
		TimeKey:    "timestamp",
		CallerSkip: 1,
	})

	logger.Info("Starting Recipe Service...")

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Error("Invalid configuration", zap.Error(err))
		os.Exit(1)
	}

	// Initialize database
	dbConn := database.InitializeDatabase(cfg)
	defer dbConn.Close()

	// Initialize cache
	cacheClient := cachepackage.InitializeCache(cfg)
	defer cacheClient.Close()

	// Initialize the gateway and services
	gateway := store.NewGateway(dbConn)
	manager := recipes.NewManager(gateway)
	authService := auth.NewService(gateway)

	recipeHandler := handlers.NewRecipeHandler(manager, cacheClient)
	authHandler := handlers.NewAuthHandler(authService, cacheClient)
	userHandler := handlers.NewUserHandler(authService, cacheClient)

	// Create HTTP server with session-cookie authentication
	server := httpserver.New(cfg.Port, handlers.SessionAuth(cacheClient))

	// Public routes
	server.Register(httpserver.Route{
		Name:     "Home",
		Method:   "GET",
		Path:     "/",
		AuthType: "none",
	}, httpserver.HandlerFunc(web.Index))

	server.Register(httpserver.Route{
		Name:     "HealthCheck",
		Method:   "GET",
		Path:     "/health",
		AuthType: "none",
	}, httpserver.HandlerFunc(func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "recipe-service"}`))
	}))

	server.Register(httpserver.Route{
		Name:     "Signup",
		Method:   "POST",
		Path:     "/signup",
		AuthType: "none",
	}, httpserver.HandlerFunc(authHandler.Signup))

	server.Register(httpserver.Route{
		Name:     "Login",
		Method:   "POST",
		Path:     "/login",
		AuthType: "none",
	}, httpserver.HandlerFunc(authHandler.Login))

	server.Register(httpserver.Route{
		Name:     "Logout",
		Method:   "POST",
		Path:     "/logout",
		AuthType: "none",
	}, httpserver.HandlerFunc(authHandler.Logout))

	server.Register(httpserver.Route{
		Name:     "Me",
		Method:   "GET",
		Path:     "/me",
		AuthType: "none",
	}, httpserver.HandlerFunc(authHandler.Me))

	// The catalogue is browsable without an account
	server.Register(httpserver.Route{
		Name:     "ListRecipes",
		Method:   "GET",
		Path:     "/recipes",
		AuthType: "none",
	}, httpserver.HandlerFunc(recipeHandler.ListRecipes))

	server.Register(httpserver.Route{
		Name:     "SearchRecipes",
		Method:   "GET",
		Path:     "/recipes/search",
		AuthType: "none",
	}, httpserver.HandlerFunc(recipeHandler.SearchRecipes))

	// Mutations require a session
	server.Register(httpserver.Route{
		Name:     "CreateRecipe",
		Method:   "POST",
		Path:     "/recipes",
		AuthType: "session",
	}, httpserver.HandlerFunc(recipeHandler.CreateRecipe))

	server.Register(httpserver.Route{
		Name:     "UpdateRecipe",
		Method:   "PUT",
		Path:     "/recipes/{id}",
		AuthType: "session",
	}, httpserver.HandlerFunc(recipeHandler.UpdateRecipe))

	server.Register(httpserver.Route{
		Name:     "DeleteRecipe",
		Method:   "DELETE",
		Path:     "/recipes/{id}",
		AuthType: "session",
	}, httpserver.HandlerFunc(recipeHandler.DeleteRecipe))

	server.Register(httpserver.Route{
		Name:     "ListSavedRecipes",
		Method:   "GET",
		Path:     "/users/{userId}/saved",
		AuthType: "session",
	}, httpserver.HandlerFunc(recipeHandler.ListSavedRecipes))

	server.Register(httpserver.Route{
		Name:     "SaveRecipe",
		Method:   "POST",
		Path:     "/users/{userId}/saved/{recipeId}",
		AuthType: "session",
	}, httpserver.HandlerFunc(recipeHandler.SaveRecipe))

	server.Register(httpserver.Route{
		Name:     "UnsaveRecipe",
		Method:   "DELETE",
		Path:     "/users/{userId}/saved/{recipeId}",
		AuthType: "session",
	}, httpserver.HandlerFunc(recipeHandler.UnsaveRecipe))

	server.Register(httpserver.Route{
		Name:     "UpdateProfile",
		Method:   "PUT",
		Path:     "/users/{id}",
		AuthType: "session",
	}, httpserver.HandlerFunc(userHandler.UpdateProfile))

	server.Register(httpserver.Route{
		Name:     "DeleteAccount",
		Method:   "DELETE",
		Path:     "/users/{id}",
		AuthType: "session",
	}, httpserver.HandlerFunc(userHandler.DeleteAccount))

	logger.Info("Recipe Service started on port " + cfg.Port)
	logger.Info("Web UI: GET /")
	logger.Info("API endpoints: /signup /login /recipes /users/{id}/saved")

	// Start server
	if err := server.Start(); err != nil {
		logger.Error("Server failed to start", zap.Error(err))
		os.Exit(1)
	}
}

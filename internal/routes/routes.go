package routes

import (
	"net/http"
	"time"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/handlers"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/metrics"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	jwtSecret string,
	requestTimeout time.Duration,
	limiter *middleware.RateLimiter,
	authHandler *handlers.AuthHandler,
	postHandler *handlers.PostHandler,
	categoryHandler *handlers.CategoryHandler,
	authorHandler *handlers.AuthorHandler,
	tagHandler *handlers.TagHandler,
	dashboardHandler *handlers.DashboardHandler,
	uploadHandler *handlers.UploadHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)
	router.Use(metrics.Middleware)
	router.Use(middleware.Deadline(requestTimeout))

	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods("GET")
	router.Handle("/metrics", metrics.Handler()).Methods("GET")
	router.HandleFunc("/uploads/{path}", uploadHandler.Serve).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/refresh", authHandler.Refresh).Methods("POST")

	api.HandleFunc("/posts", postHandler.List).Methods("GET")
	api.HandleFunc("/posts/{slug}", postHandler.GetBySlug).Methods("GET")

	api.HandleFunc("/categories", categoryHandler.List).Methods("GET")
	api.HandleFunc("/categories/{slug}", categoryHandler.GetBySlug).Methods("GET")

	api.HandleFunc("/authors/{authorSlug}", authorHandler.GetBySlug).Methods("GET")
	api.HandleFunc("/tags/{tag}", tagHandler.GetByTag).Methods("GET")

	// --- Защищённые JWT ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.JWTAuth(jwtSecret))

	protected.HandleFunc("/logout", authHandler.Logout).Methods("POST")
	protected.HandleFunc("/profile", authHandler.Profile).Methods("GET")
	protected.HandleFunc("/dashboard", dashboardHandler.Dashboard).Methods("GET")

	// Мутации ограничены per-user лимитером.
	writes := protected.PathPrefix("").Subrouter()
	writes.Use(limiter.Middleware)

	writes.HandleFunc("/posts", postHandler.Create).Methods("POST")
	writes.HandleFunc("/posts/{id}", postHandler.Update).Methods("PUT")
	writes.HandleFunc("/posts/{id}", postHandler.Delete).Methods("DELETE")
	writes.HandleFunc("/posts/preview", postHandler.Preview).Methods("POST")
	writes.HandleFunc("/uploads", uploadHandler.Upload).Methods("POST")
}

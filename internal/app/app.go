package app

import (
	"github.com/corinnecd/Dynamis-Blog-2025/internal/config"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/db"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/handlers"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/logger"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/metrics"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/middleware"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/repository"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/routes"
	"github.com/corinnecd/Dynamis-Blog-2025/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	if err := db.RunMigrations(cfg.GetMigrateDSN()); err != nil {
		return nil, err
	}

	// Репозитории
	postRepo := repository.NewPostRepo(conn)
	categoryRepo := repository.NewCategoryRepo(conn)
	profileRepo := repository.NewProfileRepo(conn)
	tokenRepo := repository.NewTokenRepo(conn)
	imageRepo := repository.NewImageRepo(conn)

	// Шина событий аутентификации: подписчик ведёт счётчик и лог.
	notifier := services.NewIdentityNotifier()
	startIdentityLog(notifier)

	// Сервисы
	authService := services.NewAuthService(profileRepo, tokenRepo, notifier, cfg.BootstrapAdminEmail)
	enrichService := services.NewEnrichService(categoryRepo, profileRepo)
	postService := services.NewPostService(postRepo, categoryRepo, profileRepo, enrichService)
	previewService := services.NewPreviewService()
	storageService := services.NewStorageService(imageRepo)

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService, cfg)
	postHandler := handlers.NewPostHandler(postService, authService, previewService, cfg)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, postService)
	authorHandler := handlers.NewAuthorHandler(profileRepo, postService)
	tagHandler := handlers.NewTagHandler(postService)
	dashboardHandler := handlers.NewDashboardHandler(postService, authService)
	uploadHandler := handlers.NewUploadHandler(storageService)

	// Лимитер мутаций: 2 запроса в секунду на пользователя, burst 5.
	limiter := middleware.NewRateLimiter(rate.Limit(2), 5)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(
		router,
		cfg.JWTSecret,
		cfg.RequestTimeout,
		limiter,
		authHandler,
		postHandler,
		categoryHandler,
		authorHandler,
		tagHandler,
		dashboardHandler,
		uploadHandler,
	)

	return router, nil
}

func startIdentityLog(notifier *services.IdentityNotifier) {
	events, _ := notifier.Subscribe()
	go func() {
		for ev := range events {
			metrics.IdentityEvents.WithLabelValues(ev.Kind).Inc()
			logger.Log.Info("событие аутентификации",
				zap.String("kind", ev.Kind),
				zap.String("user_id", ev.UserID),
			)
		}
	}()
}

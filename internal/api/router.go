package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linkup/linkup-api/internal/api/handler"
	"github.com/linkup/linkup-api/internal/api/middleware"
	"github.com/linkup/linkup-api/internal/core/domain"
	"github.com/linkup/linkup-api/internal/core/ports"
	"github.com/linkup/linkup-api/internal/core/service"
	mongorepo "github.com/linkup/linkup-api/internal/infrastructure/db/mongo"
)

// RouterDeps bundles everything the router needs to assemble the API.
type RouterDeps struct {
	DB            *mongo.Database
	Redis         *redis.Client
	Notifier      ports.Notifier
	Notifications ports.NotificationService
	JWTSecret     string
	Policy        service.ConnectionPolicy
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("linkup"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(deps.DB)
	connStore := mongorepo.NewConnectionStore(deps.DB)
	postRepo := mongorepo.NewPostRepository(deps.DB)
	jobRepo := mongorepo.NewJobRepository(deps.DB)
	messageRepo := mongorepo.NewMessageRepository(deps.DB)

	// --- Services ---
	authService := service.NewAuthService(userRepo, deps.JWTSecret, 24*time.Hour)
	userService := service.NewUserService(userRepo, deps.Logger)
	connService := service.NewConnectionService(connStore, userRepo, deps.Notifier, deps.Policy, deps.Logger)
	postService := service.NewPostService(postRepo, deps.Notifier, deps.Logger)
	jobService := service.NewJobService(jobRepo, deps.Notifier, deps.Logger)
	messageService := service.NewMessageService(messageRepo, userRepo, deps.Notifier, deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	connHandler := handler.NewConnectionHandler(connService)
	postHandler := handler.NewPostHandler(postService)
	jobHandler := handler.NewJobHandler(jobService)
	messageHandler := handler.NewMessageHandler(messageService)
	notifHandler := handler.NewNotificationHandler(deps.Notifications)

	auth := middleware.Auth(deps.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	posters := middleware.RBAC(domain.RoleJobPoster, domain.RoleAdmin)
	seekers := middleware.RBAC(domain.RoleJobSeeker)

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Users ---
	users := e.Group("/users", auth)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Connections ---
	conns := e.Group("/connections", auth)
	conns.GET("/my-connections", connHandler.MyConnections)
	conns.GET("/pending", connHandler.Pending)
	conns.GET("/suggestions", connHandler.Suggestions)
	conns.POST("/request", connHandler.SendRequest)
	conns.PUT("/accept/:id", connHandler.Accept)
	conns.PUT("/reject/:id", connHandler.Reject)
	conns.DELETE("/remove/:userId", connHandler.Remove)

	// --- Posts ---
	posts := e.Group("/posts", auth)
	posts.GET("", postHandler.Feed)
	posts.POST("", postHandler.Create)
	posts.GET("/:id", postHandler.Get)
	posts.PUT("/:id/like", postHandler.ToggleLike)
	posts.POST("/:id/comment", postHandler.Comment)
	posts.DELETE("/:id", postHandler.Delete)

	// --- Jobs ---
	jobs := e.Group("/jobs", auth)
	jobs.GET("", jobHandler.List)
	jobs.POST("", jobHandler.Create, posters)
	jobs.GET("/:id", jobHandler.Get)
	jobs.PUT("/:id", jobHandler.Update, posters)
	jobs.DELETE("/:id", jobHandler.Delete, posters)
	jobs.POST("/:id/apply", jobHandler.Apply, seekers)
	jobs.PUT("/:id/applicants/:applicantId", jobHandler.SetApplicantStatus, posters)
	jobs.POST("/:id/save", jobHandler.Save)
	jobs.DELETE("/:id/save", jobHandler.Unsave)

	// --- Messages ---
	messages := e.Group("/messages", auth)
	messages.GET("", messageHandler.Inbox)
	messages.POST("", messageHandler.Send)
	messages.GET("/with/:userId", messageHandler.Conversation)

	// --- Notifications ---
	notifs := e.Group("/notifications", auth)
	notifs.GET("", notifHandler.List)
	notifs.PUT("/read-all", notifHandler.MarkAllRead)
	notifs.PUT("/:id/read", notifHandler.MarkRead)
	notifs.DELETE("/:id", notifHandler.Delete)

	// --- Ops (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

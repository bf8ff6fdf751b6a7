package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/residence-hub/internal/api/handlers"
	"github.com/linskybing/residence-hub/internal/api/middleware"
	"github.com/linskybing/residence-hub/internal/application"
	"github.com/linskybing/residence-hub/internal/metrics"
	"github.com/linskybing/residence-hub/internal/realtime"
	"github.com/linskybing/residence-hub/internal/repository"
	"github.com/linskybing/residence-hub/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type Deps struct {
	Repos          *repository.Repos
	Services       *application.Services
	Hub            *realtime.Hub
	IssueLimiter   middleware.Limiter
	AllowedOrigins []string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	h := handlers.New(d.Services, d.Repos, d.Hub)
	authMiddleware := middleware.NewAuth(d.Repos)

	r.Use(middleware.RequestLogger())
	r.Use(otelgin.Middleware(telemetry.ServiceName))
	r.Use(middleware.CORSMiddleware(d.AllowedOrigins))

	// --- public routes ---
	r.GET("/healthz", h.Health.Healthz)
	r.GET("/metrics", metrics.Handler())
	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	// Voting answers anonymous callers with a NotAuthenticated outcome
	// instead of a bare 401.
	solutions := r.Group("/solutions")
	solutions.Use(middleware.OptionalJWTMiddleware())
	{
		solutions.POST("/:id/vote/:kind", h.Solution.Vote)
		solutions.POST("/:id/request-vote", h.Solution.RequestVote)
	}

	// --- JWT-protected routes ---
	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/auth/status", h.User.AuthStatus)
		auth.GET("/home", h.Dashboard.Home)
		auth.GET("/ws/notifications", h.Notification.Stream)
		auth.GET("/notifications", h.Notification.ListNotifications)

		issues := auth.Group("/issues")
		{
			issues.GET("", h.Issue.ListIssues)
			if d.IssueLimiter != nil {
				issues.POST("", middleware.RateLimit(d.IssueLimiter, "create_issue"), h.Issue.CreateIssue)
			} else {
				issues.POST("", h.Issue.CreateIssue)
			}
			issues.GET("/:id", h.Issue.GetIssue)
			issues.DELETE("/:id", h.Issue.DeleteIssue)
			issues.POST("/:id/solutions", h.Issue.SuggestSolution)
		}

		users := auth.Group("/users")
		{
			users.GET("", authMiddleware.Admin(), h.User.GetUsers)
			users.GET("/:id", h.User.GetUserByID)
			users.PUT("/:id", authMiddleware.SelfOrAdmin(), h.User.UpdateUser)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", authMiddleware.Admin(), h.Audit.GetAuditLogs)
		}
	}
}

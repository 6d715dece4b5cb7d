package handler

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/swetha2803/green-avenue-portal/internal/pkg/jwt"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/middleware"
	"github.com/swetha2803/green-avenue-portal/internal/pkg/models"
	"github.com/swetha2803/green-avenue-portal/services/portal/handler/http"
)

// Handler coordinates the HTTP handlers for the portal service
type Handler struct {
	authHandler      *http.AuthHandler
	visitorHandler   *http.VisitorHandler
	communityHandler *http.CommunityHandler
	chatHandler      *http.ChatHandler
	cfg              *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	visitorHandler *http.VisitorHandler,
	communityHandler *http.CommunityHandler,
	chatHandler *http.ChatHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:      authHandler,
		visitorHandler:   visitorHandler,
		communityHandler: communityHandler,
		chatHandler:      chatHandler,
		cfg:              cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			// Parse the token directly from the Authorization header to
			// avoid type conflicts with echo-jwt's claim storage
			authHeader := c.Request().Header.Get("Authorization")
			if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				claims, err := jwtpkg.ValidateToken(authHeader[7:], h.cfg.JWT.Secret)
				if err != nil {
					return
				}
				if session, ok := (*claims)["session"].(string); ok {
					c.Set("session_token", session)
				}
				if email, ok := (*claims)["email"].(string); ok {
					c.Set("user_id", email)
				}
				if role, ok := (*claims)["role"].(string); ok {
					c.Set("user_role", role)
				}
			}
		},
	})
}

// RegisterRoutes registers all portal routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	e.POST("/auth/login", h.authHandler.Login)
	e.GET("/session", h.authHandler.GetSession)

	// Protected routes with JWT middleware
	protected := e.Group("", h.GetJWTMiddleware())

	protected.POST("/auth/logout", h.authHandler.Logout)

	protected.GET("/directory", h.communityHandler.GetDirectory)
	protected.GET("/notices", h.communityHandler.GetNotices)
	protected.POST("/notices", h.communityHandler.PostNotice, middleware.RequireRole(models.RoleAdmin))

	protected.GET("/visitors", h.visitorHandler.ListVisitors)
	protected.POST("/visitors", h.visitorHandler.RegisterVisitor)

	protected.GET("/properties", h.communityHandler.GetProperties)
	protected.POST("/properties", h.communityHandler.PostProperty)

	protected.GET("/polls", h.communityHandler.GetPolls)
	protected.POST("/polls/:id/vote", h.communityHandler.VotePoll)

	protected.GET("/stats", h.communityHandler.GetStats)
	protected.GET("/payments", h.communityHandler.GetPayments)
	protected.GET("/requests", h.communityHandler.GetRequests)
	protected.POST("/requests", h.communityHandler.SubmitRequest)

	protected.POST("/chat", h.chatHandler.Chat)

	// Admin surface
	admin := protected.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	admin.GET("/users", h.communityHandler.GetAllUsers)
}

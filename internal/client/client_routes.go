package client

import (
	"go-apg/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth gin.HandlerFunc,
	rbacService middleware.RBACService,
) {
	clients := r.Group("/clients")
	clients.Use(auth)
	{
		clients.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "client", "read"),
			handler.GetAll,
		)
		clients.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "client", "read"),
			handler.GetByID,
		)
		clients.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "client", "create"),
			handler.Create,
		)
		clients.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "client", "update"),
			handler.Update,
		)
		clients.PUT("/:id/financial-config",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "client_financial", "update"),
			handler.UpdateFinancialConfig,
		)
		clients.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "client", "delete"),
			handler.Delete,
		)
	}
}

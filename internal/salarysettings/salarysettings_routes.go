package salarysettings

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
	settings := r.Group("/salary-settings")
	settings.Use(auth)
	{
		settings.GET("/active",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "salary_settings", "read"),
			handler.GetActive,
		)
		settings.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "salary_settings", "read"),
			handler.GetAll,
		)
		settings.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "salary_settings", "create"),
			handler.Create,
		)
		settings.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "salary_settings", "update"),
			handler.Update,
		)
		settings.POST("/:id/activate",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "salary_settings", "update"),
			handler.Activate,
		)
		settings.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "salary_settings", "delete"),
			handler.Delete,
		)
	}
}

package margin

import (
	"go-apg/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	auth gin.HandlerFunc,
	rbacService middleware.RBACService,
	rdb *redis.Client,
) {
	margin := r.Group("/margin")
	margin.Use(auth)
	{
		margin.POST("/simulate",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "margin", "simulate"),
			middleware.Idempotency(rdb),
			h.Simulate,
		)
		margin.GET("/history",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "margin_history", "read"),
			h.GetHistory,
		)
	}
}

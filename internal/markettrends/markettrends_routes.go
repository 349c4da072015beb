package markettrends

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
	trends := r.Group("/market-trends")
	trends.Use(auth)
	{
		trends.POST("",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "market_trends", "query"),
			handler.Analyze,
		)
	}
}

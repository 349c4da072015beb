package middleware

import "github.com/gin-gonic/gin"

// Principal is the authenticated caller as established by AuthMiddleware.
type Principal struct {
	UserID          string
	Role            string
	BusinessUnitIDs []int64
}

func CurrentPrincipal(c *gin.Context) Principal {
	p := Principal{
		UserID: c.GetString(ContextUserID),
		Role:   c.GetString(ContextRole),
	}
	if v, ok := c.Get(ContextBusinessUnitIDs); ok {
		if ids, ok := v.([]int64); ok {
			p.BusinessUnitIDs = ids
		}
	}
	return p
}

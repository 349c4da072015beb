package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-apg/internal/shared/apperror"
	"go-apg/internal/shared/contextutil"
	"go-apg/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	ContextUserID          = "user_id"
	ContextRole            = "role"
	ContextBusinessUnitIDs = "business_unit_ids"
)

var (
	ErrInvalidToken = apperror.New(apperror.CodeUnauthorized, "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired = apperror.New(apperror.CodeUnauthorized, "Token has expired", http.StatusUnauthorized)
)

// AuthMiddleware validates an HS256 bearer token (or the access_token cookie)
// and exposes user_id, role and business_unit_ids to the rest of the chain.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			errObj := ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = ErrTokenExpired
			}
			response.AbortWithError(c, errObj)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.AbortWithError(c, ErrInvalidToken.WithMessage("Invalid token claims"))
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.AbortWithError(c, ErrInvalidToken.WithMessage("User ID not found in token"))
			return
		}

		role, _ := claims["role"].(string)
		if role == "" {
			response.AbortWithError(c, ErrInvalidToken.WithMessage("Role not found in token"))
			return
		}

		buIDs := businessUnitIDsFromClaims(claims["business_unit_ids"])

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, role)
		c.Set(ContextBusinessUnitIDs, buIDs)

		ctx := c.Request.Context()
		ctx = contextutil.WithUserID(ctx, userID)
		ctx = contextutil.WithRole(ctx, role)
		ctx = contextutil.WithLogger(ctx, contextutil.GetLogger(ctx, zap.L()).With(
			zap.String("user_id", userID),
			zap.String("role", role),
		))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// JSON numbers decode as float64; ids that are not whole numbers are dropped.
func businessUnitIDsFromClaims(raw any) []int64 {
	list, ok := raw.([]any)
	if !ok {
		return []int64{}
	}
	ids := make([]int64, 0, len(list))
	for _, v := range list {
		if f, ok := v.(float64); ok && f == float64(int64(f)) {
			ids = append(ids, int64(f))
		}
	}
	return ids
}

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(ContextRole)
		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.AbortWithError(c, apperror.ErrForbidden)
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"psycare-backend/internal/models"
	"psycare-backend/pkg/utils"
)

// AuthMiddleware validates the bearer token and puts the caller's id and
// role on the context for the gates and handlers downstream.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Missing access token", nil)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Malformed authorization header", nil)
			c.Abort()
			return
		}

		token, err := utils.ValidateToken(parts[1])
		if err != nil || !token.Valid {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)

		c.Set("userID", userID)
		c.Set("role", role)

		c.Next()
	}
}

// AdminOnly lets only admin callers through.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != models.RoleAdmin {
			utils.APIResponse(c, http.StatusForbidden, false, "Admin access required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// SelfOrAdmin lets a caller at its own record, and admins at any record.
func SelfOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") == models.RoleAdmin {
			c.Next()
			return
		}
		if c.Param("id") != c.GetString("userID") {
			utils.APIResponse(c, http.StatusForbidden, false, "Access denied", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"day-planner/internal/model"
	"day-planner/pkg/response"
)

const scopeKey = "scope"

// Claims is the JWT payload carried in the Authorization header.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Auth validates the Bearer token and stores the caller's scope in the
// request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.jwtSecret, nil
		})
		if err != nil || !token.Valid || claims.UserID == "" {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: invalid token: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: claims.UserID})
		c.Next()
	}
}

// GetScope returns the authenticated caller's scope. The zero value means
// the route skipped Auth.
func GetScope(c *gin.Context) model.Scope {
	sc, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	scope, _ := sc.(model.Scope)
	return scope
}

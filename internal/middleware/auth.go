// Package middleware resolves the acting principal from a bearer token.
// Tokens are issued by an external identity service; this server only
// verifies the HMAC signature and looks the subject up.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/models"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/repository"
)

const principalKey = "principal"

// Auth returns a middleware that verifies the Authorization bearer token and
// stores the resolved user in the gin context.
func Auth(secret []byte, users *repository.UserRepository, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"code": "Unauthorized", "message": "missing bearer token",
			}})
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims := &jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"code": "Unauthorized", "message": "invalid token",
			}})
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"code": "Unauthorized", "message": "invalid token subject",
			}})
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			logger.WithError(err).WithField("user_id", userID).Warn("Token subject not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"code": "Unauthorized", "message": "unknown user",
			}})
			return
		}

		c.Set(principalKey, *user)
		c.Next()
	}
}

// CurrentUser returns the principal stored by Auth.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

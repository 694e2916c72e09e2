package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/playverse/backend/pkg/auth"
)

const (
	UserIDKey   = "userID"
	UsernameKey = "username"
)

// RequireAuth rejects requests without a valid, non-blacklisted bearer token.
func RequireAuth(jwtManager *auth.JWTManager, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}

		if !verifyToken(c, token, jwtManager, redisClient) {
			c.Abort()
		}
	}
}

// OptionalAuth resolves a bearer token when one is present but lets requests
// without any Authorization header through as guests. A token that is present
// yet invalid is still rejected.
func OptionalAuth(jwtManager *auth.JWTManager, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid Authorization header"})
			c.Abort()
			return
		}

		if !verifyToken(c, token, jwtManager, redisClient) {
			c.Abort()
		}
	}
}

func verifyToken(c *gin.Context, token string, jwtManager *auth.JWTManager, redisClient *redis.Client) bool {
	exists, err := redisClient.Exists(context.Background(), "blacklist:"+token).Result()
	if err != nil || exists > 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "token is blacklisted"})
		return false
	}

	claims, err := jwtManager.Verify(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid or expired token"})
		return false
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid user id"})
		return false
	}

	c.Set(UserIDKey, userID)
	c.Set(UsernameKey, claims.Username)
	return true
}

package middleware

import (
	"errors"
	"net/http"

	"collabotree_backend/internal/logger"
	"collabotree_backend/internal/models"
	"collabotree_backend/internal/session"
	"collabotree_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware резолвит сессионную cookie в данные пользователя.
// Битая подпись или истекшая сессия не ошибка: запрос продолжается
// анонимным, отказы выдают RequireAuth/RequireRoles на защищенных роутах.
func SessionMiddleware(store session.Store, secret, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		signed, err := c.Cookie(cookieName)
		if err != nil || signed == "" {
			c.Next()
			return
		}

		id, ok := session.VerifyID(signed, secret)
		if !ok {
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), id)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				logger.WithError(err).Error("session store lookup failed")
			}
			c.Next()
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), sess.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(contextkeys.UserIDKey.String(), sess.UserID)
		c.Set(contextkeys.UserRoleKey.String(), sess.Role)
		c.Set(contextkeys.SessionIDKey.String(), id)
		c.Next()
	}
}

// RequireAuth - только аутентифицированные запросы.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		c.Next()
	}
}

// RequireRoles - запрос любой из перечисленных ролей.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		if !roleSet[GetUserRole(c)] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// GetUserID извлекает ID пользователя текущей сессии; "" для анонима.
func GetUserID(c *gin.Context) string {
	val, exists := c.Get(contextkeys.UserIDKey.String())
	if !exists {
		return ""
	}
	id, _ := val.(string)
	return id
}

// GetUserRole извлекает роль текущей сессии; "" для анонима.
func GetUserRole(c *gin.Context) models.UserRole {
	val, exists := c.Get(contextkeys.UserRoleKey.String())
	if !exists {
		return ""
	}
	role, _ := val.(models.UserRole)
	return role
}

// GetSessionID извлекает идентификатор сессии (для logout).
func GetSessionID(c *gin.Context) string {
	val, exists := c.Get(contextkeys.SessionIDKey.String())
	if !exists {
		return ""
	}
	id, _ := val.(string)
	return id
}

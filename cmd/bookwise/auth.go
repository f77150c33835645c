package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bookwise/pkg/logger"
	"bookwise/pkg/models"
)

// The OAuth flow terminates upstream; the caller's identity arrives in the
// X-User-Id header as the user's public id. A missing or unknown id means the
// request is anonymous.
const userIDHeader = "X-User-Id"

const contextUserKey = "user"

func identifyUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetHeader(userIDHeader)
		if uid == "" {
			c.Next()
			return
		}

		var user models.User
		err := db.Where("user_uid = ?", uid).First(&user).Error
		if err != nil {
			// only an unknown id is anonymous; a store failure must not be
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.Next()
				return
			}
			logger.Error(logger.EventDBError, "Failed to resolve caller identity", logger.Fields(
				"user_id", uid,
				"error", err.Error(),
			))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve caller identity"})
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) (models.User, bool) {
	value, ok := c.Get(contextUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}

// requireUser resolves the caller identity or answers 401.
func requireUser(c *gin.Context) (models.User, bool) {
	user, ok := currentUser(c)
	if !ok {
		logger.Warn(logger.EventAccessDenied, "Unauthenticated request rejected", logger.Fields(
			"path", c.Request.URL.Path,
		))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	}
	return user, ok
}

package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bookwise/pkg/aggregate"
	"bookwise/pkg/logger"
	"bookwise/pkg/models"
)

func getProfile(c *gin.Context) {
	userUid := c.Param("userId")

	var user models.User
	if err := db.Where("user_uid = ?", userUid).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error(logger.EventDBError, "Failed to load user", logger.Fields(
			"user_id", userUid,
			"error", err.Error(),
		))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	// Newest-first also pins the most-read-category tie-break: with equal
	// counts the category of a more recent rating wins.
	var ratings []models.Rating
	err := db.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Preload("Book.Categories").
		Find(&ratings).Error
	if err != nil {
		logger.Error(logger.EventDBError, "Failed to load profile ratings", logger.Fields(
			"user_id", user.UserUid,
			"error", err.Error(),
		))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	stats := aggregate.ComputeProfile(ratings)

	items := make([]gin.H, len(ratings))
	for i, rating := range ratings {
		items[i] = ratingItem(rating)
	}

	profile := gin.H{
		"user": gin.H{
			"name":        user.Name,
			"avatarUrl":   user.AvatarURL,
			"memberSince": user.CreatedAt,
		},
		"ratings":     items,
		"ratedBooks":  stats.RatedBooks,
		"readPages":   stats.ReadPages,
		"readAuthors": stats.ReadAuthors,
	}
	if stats.MostReadCategory != "" {
		profile["mostReadCategory"] = stats.MostReadCategory
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

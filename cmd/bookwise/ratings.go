package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookwise/pkg/logger"
	"bookwise/pkg/models"
)

const defaultLatestLimit = 10

type rateBookRequest struct {
	Description string `json:"description" binding:"max=450"`
	Rate        int    `json:"rate" binding:"required,min=1,max=5"`
}

func rateBook(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var request rateBookRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		logger.Warn(logger.EventValidationFailure, "Invalid rating payload", logger.Fields(
			"user_id", user.UserUid,
			"error", err.Error(),
		))
		c.JSON(http.StatusBadRequest, gin.H{"error": "rate must be an integer from 1 to 5 and description at most 450 characters"})
		return
	}

	bookUid := c.Param("bookId")
	var book models.Book
	if err := db.Where("book_uid = ?", bookUid).First(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			return
		}
		logger.Error(logger.EventDBError, "Failed to load book", logger.Fields(
			"book_id", bookUid,
			"error", err.Error(),
		))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load book"})
		return
	}

	rating := models.Rating{
		RatingUid:   uuid.New().String(),
		UserID:      user.ID,
		BookID:      book.ID,
		Rate:        request.Rate,
		Description: request.Description,
	}

	// No read-then-write check: the (user_id, book_id) unique index decides,
	// so two concurrent submits for the same pair cannot both be admitted.
	if err := db.Create(&rating).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You already rated this book"})
			return
		}
		logger.Error(logger.EventDBError, "Failed to create rating", logger.Fields(
			"user_id", user.UserUid,
			"book_id", book.BookUid,
			"error", err.Error(),
		))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create rating"})
		return
	}

	logger.Info(logger.EventGeneral, "Rating created", logger.Fields(
		"user_id", user.UserUid,
		"book_id", book.BookUid,
		"rate", request.Rate,
	))

	c.JSON(http.StatusCreated, gin.H{"rating": ratingItem(rating)})
}

func getUserLatestRating(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var rating models.Rating
	err := db.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Preload("Book.Categories").
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"rating": nil})
			return
		}
		logger.Error(logger.EventDBError, "Failed to load latest rating", logger.Fields(
			"user_id", user.UserUid,
			"error", err.Error(),
		))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load latest rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rating": ratingItem(rating)})
}

func getLatestRatings(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultLatestLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > 50 {
		limit = defaultLatestLimit
	}

	var ratings []models.Rating
	err = db.Order("created_at DESC").
		Limit(limit).
		Preload("User").
		Preload("Book.Categories").
		Find(&ratings).Error
	if err != nil {
		logger.Error(logger.EventDBError, "Failed to list latest ratings", logger.Fields("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list latest ratings"})
		return
	}

	items := make([]gin.H, len(ratings))
	for i, rating := range ratings {
		items[i] = ratingItem(rating)
	}

	c.JSON(http.StatusOK, gin.H{"ratings": items})
}

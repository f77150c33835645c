package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookwise/pkg/aggregate"
	"bookwise/pkg/logger"
	"bookwise/pkg/models"
)

const (
	defaultPopularLimit = 4
	maxPopularLimit     = 20
)

func getBooks(c *gin.Context) {
	categoryUid := c.Query("category")

	query := db.Preload("Categories").Preload("Ratings.User")
	if categoryUid != "" {
		query = query.
			Joins("JOIN book_categories ON book_categories.book_id = books.id").
			Joins("JOIN categories ON categories.id = book_categories.category_id").
			Where("categories.category_uid = ?", categoryUid)
	}

	var books []models.Book
	if err := query.Find(&books).Error; err != nil {
		logger.Error(logger.EventDBError, "Failed to list books", logger.Fields("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list books"})
		return
	}

	ratedBookIDs, err := viewerRatedBookIDs(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list books"})
		return
	}

	items := make([]gin.H, len(books))
	for i, book := range books {
		stats := aggregate.Stats(book.Ratings)

		ratings := make([]gin.H, len(book.Ratings))
		for j, rating := range book.Ratings {
			ratings[j] = ratingItem(rating)
		}

		item := bookItem(book)
		item["ratings"] = ratings
		item["sumRatings"] = stats.Count
		if stats.Average != nil {
			item["avgRating"] = *stats.Average
		}
		item["alreadyRead"] = ratedBookIDs[book.ID]
		items[i] = item
	}

	c.JSON(http.StatusOK, gin.H{"books": items})
}

// viewerRatedBookIDs returns the ids of the books the authenticated caller has
// rated, empty for an anonymous request.
func viewerRatedBookIDs(c *gin.Context) (map[uint]bool, error) {
	rated := make(map[uint]bool)

	user, ok := currentUser(c)
	if !ok {
		return rated, nil
	}

	var bookIDs []uint
	err := db.Model(&models.Rating{}).Where("user_id = ?", user.ID).Pluck("book_id", &bookIDs).Error
	if err != nil {
		logger.Error(logger.EventDBError, "Failed to load viewer ratings", logger.Fields(
			"user_id", user.UserUid,
			"error", err.Error(),
		))
		return nil, err
	}

	for _, id := range bookIDs {
		rated[id] = true
	}
	return rated, nil
}

func getPopularBooks(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultPopularLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = defaultPopularLimit
	} else if limit > maxPopularLimit {
		limit = maxPopularLimit
	}

	// Popularity is rating volume, not score: ranking by count keeps a book
	// with a single 5-star review from outranking widely read books.
	type popularRow struct {
		models.Book
		SumRatings int64
	}

	var rows []popularRow
	err = db.Model(&models.Book{}).
		Select("books.*, COUNT(ratings.id) AS sum_ratings").
		Joins("LEFT JOIN ratings ON ratings.book_id = books.id").
		Group("books.id").
		Order("sum_ratings DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		logger.Error(logger.EventDBError, "Failed to list popular books", logger.Fields("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list popular books"})
		return
	}

	bookIDs := make([]uint, len(rows))
	for i, row := range rows {
		bookIDs[i] = row.Book.ID
	}

	averages, err := bookAverages(bookIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list popular books"})
		return
	}

	items := make([]gin.H, len(rows))
	for i, row := range rows {
		item := bookItem(row.Book)
		delete(item, "categories")
		item["sumRatings"] = row.SumRatings
		if avg, ok := averages[row.Book.ID]; ok {
			item["avgRating"] = avg
		}
		items[i] = item
	}

	c.JSON(http.StatusOK, gin.H{"books": items})
}

// bookAverages computes the mean rating per book id over the current rating
// set, skipping books with no ratings.
func bookAverages(bookIDs []uint) (map[uint]float64, error) {
	averages := make(map[uint]float64)
	if len(bookIDs) == 0 {
		return averages, nil
	}

	var rows []struct {
		BookID uint
		Avg    float64
	}
	err := db.Model(&models.Rating{}).
		Select("book_id, AVG(rate) AS avg").
		Where("book_id IN ?", bookIDs).
		Group("book_id").
		Scan(&rows).Error
	if err != nil {
		logger.Error(logger.EventDBError, "Failed to aggregate ratings", logger.Fields("error", err.Error()))
		return nil, err
	}

	for _, row := range rows {
		averages[row.BookID] = row.Avg
	}
	return averages, nil
}

func getCategories(c *gin.Context) {
	var categories []models.Category
	if err := db.Order("name").Find(&categories).Error; err != nil {
		logger.Error(logger.EventDBError, "Failed to list categories", logger.Fields("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categoryItems(categories)})
}

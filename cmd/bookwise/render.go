package main

import (
	"github.com/gin-gonic/gin"

	"bookwise/pkg/models"
)

func userItem(user models.User) gin.H {
	return gin.H{
		"id":        user.UserUid,
		"name":      user.Name,
		"avatarUrl": user.AvatarURL,
	}
}

func categoryItem(category models.Category) gin.H {
	return gin.H{
		"id":   category.CategoryUid,
		"name": category.Name,
	}
}

func categoryItems(categories []models.Category) []gin.H {
	items := make([]gin.H, len(categories))
	for i, category := range categories {
		items[i] = categoryItem(category)
	}
	return items
}

func bookItem(book models.Book) gin.H {
	return gin.H{
		"id":         book.BookUid,
		"name":       book.Name,
		"author":     book.Author,
		"summary":    book.Summary,
		"coverUrl":   book.CoverURL,
		"totalPages": book.TotalPages,
		"categories": categoryItems(book.Categories),
	}
}

// ratingItem includes the rating's user and book only when the association
// was preloaded for the query at hand.
func ratingItem(rating models.Rating) gin.H {
	item := gin.H{
		"id":          rating.RatingUid,
		"rate":        rating.Rate,
		"description": rating.Description,
		"createdAt":   rating.CreatedAt,
	}
	if rating.User.ID != 0 {
		item["user"] = userItem(rating.User)
	}
	if rating.Book.ID != 0 {
		item["book"] = bookItem(rating.Book)
	}
	return item
}

package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookwise/pkg/models"
)

func ratingFor(book models.Book, rate int) models.Rating {
	return models.Rating{Rate: rate, BookID: book.ID, Book: book}
}

func TestStatsMean(t *testing.T) {
	book := models.Book{ID: 1}
	stats := Stats([]models.Rating{
		ratingFor(book, 4),
		ratingFor(book, 4),
		ratingFor(book, 5),
	})

	assert.Equal(t, 3, stats.Count)
	assert.NotNil(t, stats.Average)
	assert.InDelta(t, 4.3333, *stats.Average, 0.001)
}

func TestStatsEmpty(t *testing.T) {
	stats := Stats(nil)

	assert.Equal(t, 0, stats.Count)
	assert.Nil(t, stats.Average, "no ratings means no average, not zero")
}

func TestComputeProfileDistinctAuthors(t *testing.T) {
	clean := models.Book{ID: 1, Author: "Robert C. Martin", TotalPages: 365}
	arch := models.Book{ID: 2, Author: "Robert C. Martin", TotalPages: 288}

	stats := ComputeProfile([]models.Rating{
		ratingFor(clean, 5),
		ratingFor(arch, 4),
	})

	assert.Equal(t, 2, stats.RatedBooks)
	assert.Equal(t, 365+288, stats.ReadPages)
	assert.Equal(t, 1, stats.ReadAuthors)
}

func TestComputeProfileMostReadCategory(t *testing.T) {
	programming := models.Category{ID: 1, Name: "Programação"}
	education := models.Category{ID: 2, Name: "Educação"}
	fiction := models.Category{ID: 3, Name: "Ficção"}

	stats := ComputeProfile([]models.Rating{
		ratingFor(models.Book{ID: 1, Author: "A", Categories: []models.Category{programming, education}}, 5),
		ratingFor(models.Book{ID: 2, Author: "B", Categories: []models.Category{programming}}, 4),
		ratingFor(models.Book{ID: 3, Author: "C", Categories: []models.Category{fiction}}, 3),
	})

	assert.Equal(t, "Programação", stats.MostReadCategory)
}

func TestComputeProfileCategoryTieBreak(t *testing.T) {
	first := models.Category{ID: 1, Name: "Aventura"}
	second := models.Category{ID: 2, Name: "Ficção"}

	ratings := []models.Rating{
		ratingFor(models.Book{ID: 1, Author: "A", Categories: []models.Category{first}}, 5),
		ratingFor(models.Book{ID: 2, Author: "B", Categories: []models.Category{second}}, 4),
	}

	// equal counts: the category encountered first in input order wins,
	// and the result is stable across repeated runs
	for i := 0; i < 10; i++ {
		stats := ComputeProfile(ratings)
		assert.Equal(t, "Aventura", stats.MostReadCategory)
	}
}

func TestComputeProfileEmpty(t *testing.T) {
	stats := ComputeProfile(nil)

	assert.Equal(t, 0, stats.RatedBooks)
	assert.Equal(t, 0, stats.ReadPages)
	assert.Equal(t, 0, stats.ReadAuthors)
	assert.Empty(t, stats.MostReadCategory)
}

func TestComputeProfileDuplicateBookCountedOnce(t *testing.T) {
	book := models.Book{ID: 1, Author: "A", TotalPages: 100}

	stats := ComputeProfile([]models.Rating{
		ratingFor(book, 5),
		ratingFor(book, 3),
	})

	assert.Equal(t, 100, stats.ReadPages, "pages of the same book must not be summed twice")
	assert.Equal(t, 1, stats.ReadAuthors)
}

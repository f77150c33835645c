package aggregate

import (
	"bookwise/pkg/models"
)

// BookStats summarizes the ratings of a single book. Average is nil when the
// book has no ratings, so the JSON field is omitted rather than reported as 0.
type BookStats struct {
	Count   int
	Average *float64
}

func Stats(ratings []models.Rating) BookStats {
	stats := BookStats{Count: len(ratings)}
	if stats.Count == 0 {
		return stats
	}
	sum := 0
	for _, rating := range ratings {
		sum += rating.Rate
	}
	avg := float64(sum) / float64(stats.Count)
	stats.Average = &avg
	return stats
}

// ProfileStats is the aggregate view of a user's rating history.
type ProfileStats struct {
	RatedBooks       int    `json:"ratedBooks"`
	ReadPages        int    `json:"readPages"`
	ReadAuthors      int    `json:"readAuthors"`
	MostReadCategory string `json:"mostReadCategory,omitempty"`
}

// ComputeProfile reduces a user's ratings (with Book and Book.Categories
// loaded) into profile statistics. Books are deduplicated by id, authors by
// exact name. The most-read category is the one with the highest occurrence
// count across the rated books' categories; on a tie the category encountered
// first in input order wins, which keeps the result deterministic for a fixed
// rating order.
func ComputeProfile(ratings []models.Rating) ProfileStats {
	stats := ProfileStats{RatedBooks: len(ratings)}

	seenBooks := make(map[uint]bool)
	seenAuthors := make(map[string]bool)
	categoryCounts := make(map[string]int)
	var categoryOrder []string

	for _, rating := range ratings {
		book := rating.Book

		if !seenBooks[book.ID] {
			seenBooks[book.ID] = true
			stats.ReadPages += book.TotalPages
		}

		if !seenAuthors[book.Author] {
			seenAuthors[book.Author] = true
			stats.ReadAuthors++
		}

		for _, category := range book.Categories {
			if _, ok := categoryCounts[category.Name]; !ok {
				categoryOrder = append(categoryOrder, category.Name)
			}
			categoryCounts[category.Name]++
		}
	}

	best := 0
	for _, name := range categoryOrder {
		if categoryCounts[name] > best {
			best = categoryCounts[name]
			stats.MostReadCategory = name
		}
	}

	return stats
}

package entity

import (
	"github.com/google/uuid"
)

type Book struct {
	Serial
	Title     string    `db:"title"`
	Text      string    `db:"text"`
	Thumbnail string    `db:"thumbnail"`
	Category  string    `db:"category"`
	UserID    uuid.UUID `db:"user_id"` // owner, fixed at creation
}

// RankedBook is a book annotated with the mean rate of its reviews.
// AvgRating is nil when the book has no reviews.
type RankedBook struct {
	Book
	AvgRating   *float64 `db:"avg_rating"`
	ReviewCount int64    `db:"review_count"`
}

package response

import (
	"time"

	"book-catalog/internal/data/entity"
	"book-catalog/internal/dto/request"
)

type ReviewResponse struct {
	ID        int64     `json:"id"`
	BookID    int64     `json:"book_id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Rate      int       `json:"rate"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewFormResponse struct {
	Book   BookResponse                `json:"book"`
	Form   request.CreateReviewRequest `json:"form"`
	Fields []string                    `json:"fields"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		BookID:    review.BookID,
		Title:     review.Title,
		Text:      review.Text,
		Rate:      review.Rate,
		UserID:    review.UserID.String(),
		CreatedAt: review.CreatedAt,
	}
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = ReviewToResponse(review)
	}
	return out
}

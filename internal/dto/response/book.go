package response

import (
	"time"

	"book-catalog/internal/data/entity"
	"book-catalog/internal/dto/request"
)

type BookResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Thumbnail string    `json:"thumbnail"`
	Category  string    `json:"category"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RankedBookResponse is a ranking entry; AvgRating is null for unreviewed books.
type RankedBookResponse struct {
	BookResponse
	AvgRating   *float64 `json:"avg_rating"`
	ReviewCount int64    `json:"review_count"`
}

type BookDetailResponse struct {
	BookResponse
	Username    string           `json:"username,omitempty"`
	AvgRating   *float64         `json:"avg_rating"`
	ReviewCount int64            `json:"review_count"`
	Reviews     []ReviewResponse `json:"reviews"`
}

// BookFormResponse is what an edit form is rendered from.
type BookFormResponse struct {
	Book   *BookResponse       `json:"book,omitempty"`
	Form   request.BookRequest `json:"form"`
	Fields []string            `json:"fields"`
}

type BookDeleteConfirmResponse struct {
	Book        BookResponse `json:"book"`
	ReviewCount int64        `json:"review_count"` // reviews removed along with the book
}

// Helper converters
func BookToResponse(book *entity.Book) BookResponse {
	return BookResponse{
		ID:        book.ID,
		Title:     book.Title,
		Text:      book.Text,
		Thumbnail: book.Thumbnail,
		Category:  book.Category,
		UserID:    book.UserID.String(),
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}
}

func BooksToResponse(books []*entity.Book) []BookResponse {
	out := make([]BookResponse, len(books))
	for i, book := range books {
		out[i] = BookToResponse(book)
	}
	return out
}

func RankedBooksToResponse(books []*entity.RankedBook) []RankedBookResponse {
	out := make([]RankedBookResponse, len(books))
	for i, ranked := range books {
		out[i] = RankedBookResponse{
			BookResponse: BookToResponse(&ranked.Book),
			AvgRating:    ranked.AvgRating,
			ReviewCount:  ranked.ReviewCount,
		}
	}
	return out
}

func BookToForm(book *entity.Book) request.BookRequest {
	return request.BookRequest{
		Title:     book.Title,
		Text:      book.Text,
		Thumbnail: book.Thumbnail,
		Category:  book.Category,
	}
}

package repository

import (
	"context"
	"fmt"

	"book-catalog/internal/data/entity"
	"book-catalog/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByBookID(ctx context.Context, bookID int64) ([]*entity.Review, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// Business queries
	GetBookReviewStats(ctx context.Context, bookID int64) (*float64, int64, error) // avg (nil without reviews), count
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func scanReview(row rowScanner, review *entity.Review) error {
	return row.Scan(
		&review.ID,
		&review.BookID,
		&review.Title,
		&review.Text,
		&review.Rate,
		&review.UserID,
		&review.CreatedAt,
	)
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (book_id, title, text, rate, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		review.BookID,
		review.Title,
		review.Text,
		review.Rate,
		review.UserID,
		review.CreatedAt,
	).Scan(&review.ID)

	if hasSQLState(err, pgForeignKeyViolation) {
		return fmt.Errorf("book %d %w", review.BookID, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.Int64("book_id", review.BookID),
		)
		return fmt.Errorf("create review for book %d by user %s: %w",
			review.BookID, review.UserID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByBookID(ctx context.Context, bookID int64) ([]*entity.Review, error) {
	query := `
		SELECT id, book_id, title, text, rate, user_id, created_at
		FROM reviews
		WHERE book_id = $1
		ORDER BY id DESC
	`

	rows, err := r.db.Query(ctx, query, bookID)
	if err != nil {
		r.log.Error("Failed to find reviews by book ID",
			zap.Error(err),
			zap.Int64("book_id", bookID),
		)
		return nil, fmt.Errorf("find reviews by book ID %d: %w", bookID, err)
	}
	defer rows.Close()

	reviews := make([]*entity.Review, 0)
	for rows.Next() {
		var review entity.Review
		if err := scanReview(rows, &review); err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE user_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count reviews by user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *reviewRepository) GetBookReviewStats(ctx context.Context, bookID int64) (*float64, int64, error) {
	query := `
		SELECT
			AVG(rate)::FLOAT8 AS avg_rating,
			COUNT(*) AS review_count
		FROM reviews
		WHERE book_id = $1
	`

	var avgRating *float64
	var reviewCount int64
	err := r.db.QueryRow(ctx, query, bookID).Scan(&avgRating, &reviewCount)
	if err != nil {
		r.log.Error("Failed to get book review stats",
			zap.Error(err),
			zap.Int64("book_id", bookID),
		)
		return nil, 0, fmt.Errorf("get book review stats for %d: %w", bookID, err)
	}

	return avgRating, reviewCount, nil
}

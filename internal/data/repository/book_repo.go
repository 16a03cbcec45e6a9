package repository

import (
	"context"
	"errors"
	"fmt"

	"book-catalog/internal/data/entity"
	"book-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookRepository interface {
	// CRUD Book
	Create(ctx context.Context, book *entity.Book) error
	FindByID(ctx context.Context, id int64) (*entity.Book, error)
	Update(ctx context.Context, book *entity.Book) error
	Delete(ctx context.Context, id int64) error

	// Listings
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Book, error)
	FindAllNewestFirst(ctx context.Context) ([]*entity.Book, error)
	CountAll(ctx context.Context) (int64, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// FindRanking orders books by mean review rate, books without reviews
	// last. A limit below 1 returns every book.
	FindRanking(ctx context.Context, limit, offset int) ([]*entity.RankedBook, error)
}

type bookRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookRepository(db database.PgxIface, log *zap.Logger) BookRepository {
	return &bookRepository{
		db:  db,
		log: log.With(zap.String("repository", "book")),
	}
}

const bookColumns = `id, title, text, thumbnail, category, user_id, created_at, updated_at`

func scanBook(row rowScanner, book *entity.Book) error {
	return row.Scan(
		&book.ID,
		&book.Title,
		&book.Text,
		&book.Thumbnail,
		&book.Category,
		&book.UserID,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
}

func (r *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	query := `
		INSERT INTO books (title, text, thumbnail, category, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		book.Title,
		book.Text,
		book.Thumbnail,
		book.Category,
		book.UserID,
		book.CreatedAt,
		book.UpdatedAt,
	).Scan(&book.ID)

	if err != nil {
		r.log.Error("Failed to create book",
			zap.Error(err),
			zap.String("title", book.Title),
			zap.String("user_id", book.UserID.String()),
		)
		return fmt.Errorf("create book %q: %w", book.Title, err)
	}

	return nil
}

func (r *bookRepository) FindByID(ctx context.Context, id int64) (*entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	var book entity.Book
	err := scanBook(r.db.QueryRow(ctx, query, id), &book)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find book by ID",
			zap.Error(err),
			zap.Int64("book_id", id),
		)
		return nil, fmt.Errorf("find book by ID %d: %w", id, err)
	}

	return &book, nil
}

func (r *bookRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY id ASC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find books",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find books limit %d offset %d: %w", limit, offset, err)
	}

	return r.collect(rows)
}

func (r *bookRepository) FindAllNewestFirst(ctx context.Context) ([]*entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find newest books", zap.Error(err))
		return nil, fmt.Errorf("find newest books: %w", err)
	}

	return r.collect(rows)
}

func (r *bookRepository) collect(rows pgx.Rows) ([]*entity.Book, error) {
	defer rows.Close()

	books := make([]*entity.Book, 0)
	for rows.Next() {
		var book entity.Book
		if err := scanBook(rows, &book); err != nil {
			r.log.Error("Failed to scan book row", zap.Error(err))
			return nil, fmt.Errorf("scan book row: %w", err)
		}
		books = append(books, &book)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate book rows: %w", err)
	}

	return books, nil
}

func (r *bookRepository) FindRanking(ctx context.Context, limit, offset int) ([]*entity.RankedBook, error) {
	query := `
		SELECT b.id, b.title, b.text, b.thumbnail, b.category, b.user_id,
		       b.created_at, b.updated_at,
		       AVG(r.rate)::FLOAT8 AS avg_rating,
		       COUNT(r.id) AS review_count
		FROM books b
		LEFT JOIN reviews r ON r.book_id = b.id
		GROUP BY b.id
		ORDER BY avg_rating DESC NULLS LAST, b.id DESC
		LIMIT $1 OFFSET $2
	`

	// NULL means LIMIT ALL
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}

	rows, err := r.db.Query(ctx, query, limitArg, offset)
	if err != nil {
		r.log.Error("Failed to find book ranking",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find book ranking: %w", err)
	}
	defer rows.Close()

	ranking := make([]*entity.RankedBook, 0)
	for rows.Next() {
		var ranked entity.RankedBook
		err := rows.Scan(
			&ranked.ID,
			&ranked.Title,
			&ranked.Text,
			&ranked.Thumbnail,
			&ranked.Category,
			&ranked.UserID,
			&ranked.CreatedAt,
			&ranked.UpdatedAt,
			&ranked.AvgRating,
			&ranked.ReviewCount,
		)
		if err != nil {
			r.log.Error("Failed to scan ranking row", zap.Error(err))
			return nil, fmt.Errorf("scan ranking row: %w", err)
		}
		ranking = append(ranking, &ranked)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate ranking rows: %w", err)
	}

	r.log.Debug("Book ranking found",
		zap.Int("count", len(ranking)),
		zap.Int("limit", limit),
		zap.Int("offset", offset),
	)

	return ranking, nil
}

func (r *bookRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM books`

	var total int64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		r.log.Error("Failed to count books", zap.Error(err))
		return 0, fmt.Errorf("count books: %w", err)
	}

	return total, nil
}

func (r *bookRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM books WHERE user_id = $1`

	var total int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		r.log.Error("Failed to count books by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count books by user %s: %w", userID.String(), err)
	}

	return total, nil
}

// Update rewrites the editable fields. The owner column is never touched.
func (r *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	query := `
		UPDATE books
		SET title = $2, text = $3, thumbnail = $4, category = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		book.ID,
		book.Title,
		book.Text,
		book.Thumbnail,
		book.Category,
		book.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update book",
			zap.Error(err),
			zap.Int64("book_id", book.ID),
		)
		return fmt.Errorf("update book %d: %w", book.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("book %d %w", book.ID, ErrNotFound)
	}

	return nil
}

// Delete removes the book; its reviews go with it through the foreign key.
func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM books WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete book",
			zap.Error(err),
			zap.Int64("book_id", id),
		)
		return fmt.Errorf("delete book %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("book %d %w", id, ErrNotFound)
	}

	r.log.Info("Book deleted", zap.Int64("book_id", id))
	return nil
}

package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	SerialSimple
	BookID int64     `db:"book_id"`
	Title  string    `db:"title"`
	Text   string    `db:"text"`
	Rate   int       `db:"rate"` // 1-5, enforced by the form and a table CHECK
	UserID uuid.UUID `db:"user_id"`
}

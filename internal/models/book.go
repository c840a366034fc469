package models

import "time"

// Book belongs to exactly one novelist and may be read by many users.
type Book struct {
	ID         int64     `json:"id"`
	IDNovelist int64     `json:"id_novelist"`
	Title      string    `json:"title"`
	Year       int       `json:"year"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// Package model holds the persisted domain entities.
//
// Entities are plain structs shared by the repository (row mapping via
// `db` tags) and the handler layer (JSON encoding via `json` tags).
package model

// Item is the sole persisted entity.
//
// ID is a server-generated UUID assigned at creation time and never
// reassigned. Name and Description are free-form text with no
// constraints; empty strings are valid values.
type Item struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CartItem is one line of a cart. The same shape is snapshotted into the
// transaction ledger at checkout.
type CartItem struct {
	ItemID   uint    `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"imageURL"`
}

// Cart keeps at most one row per user. Items are stored as a single JSON
// document so a save replaces the whole sequence in one write,
// last-writer-wins.
type Cart struct {
	gorm.Model
	UserID uint           `json:"userId" gorm:"uniqueIndex"`
	Items  datatypes.JSON `json:"items"`
}

package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// OrderStatuses is the full set of statuses a transaction may carry.
var OrderStatuses = map[string]bool{
	StatusPending:    true,
	StatusProcessing: true,
	StatusCompleted:  true,
	StatusCancelled:  true,
}

// Transaction is an append-only ledger row. CartItems is a by-value
// snapshot taken at checkout; later product edits do not touch it. Status
// is the only field mutated after creation.
type Transaction struct {
	gorm.Model
	UserID     uint           `json:"userId"`
	PaymentRef string         `json:"transactionId"`
	CartItems  datatypes.JSON `json:"cartItems"`
	Address    string         `json:"address" gorm:"default:Not provided"`
	Status     string         `json:"status" gorm:"default:completed"`
	Total      float64        `json:"total"`
}

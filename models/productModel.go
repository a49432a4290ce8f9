package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Price       float64        `json:"price" binding:"gte=0"`
	Stock       int            `json:"stock" binding:"gte=0"`
	Category    string         `json:"category"`
	ImageURL    string         `json:"imageURL"`
	Tags        datatypes.JSON `json:"tags"`
}

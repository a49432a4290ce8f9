package models

import "gorm.io/gorm"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User holds every principal, customer and admin alike. Email is unique
// across the whole table, so a duplicate check never probes more than one
// place.
type User struct {
	gorm.Model
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email" gorm:"uniqueIndex;size:191"`
	Password    string `json:"-"`
	Role        string `json:"role" gorm:"default:user"`
}

type SignupData struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role"`
}

type SigninData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

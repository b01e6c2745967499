package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Price       float64        `json:"price" binding:"required" gorm:"type:decimal(10,2)"`
	Image       string         `json:"image"`
	Category    string         `json:"category"`
	Specs       datatypes.JSON `json:"specs"`
}

package models

import "time"

type Meal struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description"`
	Image       *string    `json:"image"`
	Price       float64    `json:"price"`
	CategoryID  uint       `json:"categoryId" gorm:"not null"`
	Category    *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Active      bool       `json:"active"`
	Popular     bool       `json:"popular"`
	Order       int        `json:"order" gorm:"default:0"`
	HasSizes    bool       `json:"hasSizes"`
	Sizes       []MealSize `json:"sizes" gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// MealSize rows are replaced wholesale when a meal is updated with a new
// size set — they are never merged
type MealSize struct {
	ID     uint    `json:"id" gorm:"primaryKey"`
	MealID uint    `json:"mealId" gorm:"not null"`
	Name   string  `json:"name" gorm:"not null"`
	Price  float64 `json:"price"`
}

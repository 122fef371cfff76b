package models

import "time"

// OrderStatus represents the lifecycle state of a customer order
type OrderStatus string

const (
	StatusNew       OrderStatus = "new"
	StatusPending   OrderStatus = "pending"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// TerminalStatuses are final states — orders in these states are eligible
// for cleanup
var TerminalStatuses = []OrderStatus{StatusDelivered, StatusCancelled}

// Terminal reports whether the status is final
func (s OrderStatus) Terminal() bool {
	for _, t := range TerminalStatuses {
		if s == t {
			return true
		}
	}
	return false
}

type Order struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	CustomerName  string      `json:"customerName" gorm:"not null"`
	CustomerPhone string      `json:"customerPhone"`
	Status        OrderStatus `json:"status" gorm:"not null;default:'new'"`
	Total         float64     `json:"total"`
	OrderType     string      `json:"orderType"`
	Items         []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time   `json:"createdAt"`
}

type OrderItem struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	OrderID  uint    `json:"orderId" gorm:"not null"`
	MealID   uint    `json:"mealId"`
	MealName string  `json:"mealName"` // snapshot name at time of order
	Quantity int     `json:"quantity" gorm:"not null"`
	Price    float64 `json:"price" gorm:"not null"` // snapshot price at time of order
}

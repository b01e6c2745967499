package models

import (
	"strconv"

	"gorm.io/gorm"
)

// ProductRef identifies a catalog product on an order line. Depending on the
// deployment it holds either a numeric catalog id or a derived slug, so it is
// stored as text and resolved on read.
type ProductRef string

// Numeric reports the catalog id when the reference is a positive integer.
func (r ProductRef) Numeric() (int, bool) {
	n, err := strconv.Atoi(string(r))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func (r ProductRef) IsSlug() bool {
	_, ok := r.Numeric()
	return !ok
}

type Order struct {
	gorm.Model
	UserID        *uint       `json:"userId"`
	CustomerName  string      `json:"customerName"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	City          string      `json:"city"`
	Note          string      `json:"note"`
	Subtotal      float64     `json:"subtotal" gorm:"type:decimal(10,2)"`
	DeliveryFee   float64     `json:"deliveryFee" gorm:"type:decimal(10,2)"`
	Total         float64     `json:"total" gorm:"type:decimal(10,2)"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"paymentStatus"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem snapshots name and price at order time. Later catalog changes
// never alter historical orders.
type OrderItem struct {
	gorm.Model
	OrderID   uint       `json:"orderId"`
	ProductID ProductRef `json:"productId" gorm:"type:varchar(64)"`
	Name      string     `json:"name"`
	Price     float64    `json:"price" gorm:"type:decimal(10,2)"`
	Qty       int        `json:"qty"`
}

package models

import "gorm.io/gorm"

type Customer struct {
	gorm.Model
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone" gorm:"size:32;index"`
	Email     string `json:"email" gorm:"size:191;index"`
}

type Warranty struct {
	gorm.Model
	CustomerID     uint    `json:"customerId"`
	Brand          string  `json:"brand"`
	DeviceModel    string  `json:"model" gorm:"column:model"`
	IMEI           string  `json:"imei" gorm:"column:imei"`
	SoftwareInfo   string  `json:"softwareInfo"`
	DurationMonths int     `json:"durationMonths"`
	Price          float64 `json:"price" gorm:"type:decimal(10,2)"`
	StartDate      string  `json:"startDate"`
	PaymentType    string  `json:"paymentType"`
	Comments       string  `json:"comments"`
	CreatedBy      *uint   `json:"createdBy"`

	Customer Customer `json:"customer" gorm:"foreignKey:CustomerID"`
}

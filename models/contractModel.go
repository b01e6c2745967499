package models

import "gorm.io/gorm"

// SoftSaveContract is a device protection contract saved from the in-store
// form. Customer fields are snapshotted on the row so the record survives
// customer edits.
type SoftSaveContract struct {
	gorm.Model
	ContractNo  string  `json:"contractNo" gorm:"size:64;uniqueIndex"`
	CustomerID  *uint   `json:"customerId"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	DeviceBrand string  `json:"deviceBrand"`
	DeviceModel string  `json:"deviceModel"`
	DeviceName  string  `json:"deviceName"`
	IMEI        string  `json:"imei" gorm:"column:imei"`
	Price       float64 `json:"price" gorm:"type:decimal(10,2)"`
	PaymentType string  `json:"paymentType"`
	StartDate   string  `json:"startDate"`
	Notes       string  `json:"notes"`
	CreatedBy   *uint   `json:"createdBy"`
}

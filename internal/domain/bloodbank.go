package domain

import "time"

// Blood type identifiers used across inventory and compatibility lookups.
const (
	BloodTypeONeg  = "O-"
	BloodTypeOPos  = "O+"
	BloodTypeANeg  = "A-"
	BloodTypeAPos  = "A+"
	BloodTypeBNeg  = "B-"
	BloodTypeBPos  = "B+"
	BloodTypeABNeg = "AB-"
	BloodTypeABPos = "AB+"
)

// BloodTypes lists every supported ABO/Rh group.
var BloodTypes = []string{
	BloodTypeONeg, BloodTypeOPos,
	BloodTypeANeg, BloodTypeAPos,
	BloodTypeBNeg, BloodTypeBPos,
	BloodTypeABNeg, BloodTypeABPos,
}

// InventoryLevel is the stock of one blood type at one bank.
type InventoryLevel struct {
	BloodType string
	Units     int
}

// BloodBank aggregates the canonical blood bank node data.
type BloodBank struct {
	ID            string
	Name          string
	Address       string
	Latitude      float64
	Longitude     float64
	ContactNumber string
	Active        bool
	Inventory     []InventoryLevel
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BankListResult wraps a page of banks with the unpaginated total.
type BankListResult struct {
	Items []BloodBank
	Total int64
}

// Donor captures a registered donor record.
type Donor struct {
	ID           string
	FullName     string
	BloodType    string
	Contact      string
	Address      string
	RegisteredAt time.Time
}

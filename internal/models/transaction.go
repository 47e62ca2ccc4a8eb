package models

import "time"

// RoundingType selects how a transaction amount is rounded up
type RoundingType string

const (
	RoundingNearestDecimal  RoundingType = "nearest-decimal"
	RoundingNearestTens     RoundingType = "nearest-tens"
	RoundingNearestHundreds RoundingType = "nearest-hundreds"
)

// IsValid reports whether r is one of the named rounding policies.
func (r RoundingType) IsValid() bool {
	switch r {
	case RoundingNearestDecimal, RoundingNearestTens, RoundingNearestHundreds:
		return true
	}
	return false
}

// Transaction is an immutable purchase record whose round-up produces savings.
type Transaction struct {
	Base         `bson:",inline"`
	UserID       string       `gorm:"type:uuid;not null;index" bson:"user_id" json:"userId"`
	Amount       float64      `gorm:"not null" bson:"amount" json:"amount"`
	Date         time.Time    `gorm:"not null;index" bson:"date" json:"date"`
	RoundingType RoundingType `gorm:"not null" bson:"rounding_type" json:"roundingType"`
}

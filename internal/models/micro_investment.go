package models

// MicroInvestment is an allocation of accumulated round-up savings into a
// user-named investment bucket.
type MicroInvestment struct {
	Base        `bson:",inline"`
	UserID      string  `gorm:"type:uuid;not null;index" bson:"user_id" json:"userId"`
	Category    string  `gorm:"not null" bson:"category" json:"category"`
	Amount      float64 `gorm:"not null" bson:"amount" json:"amount"`
	Description string  `gorm:"not null;default:''" bson:"description" json:"description"`
}

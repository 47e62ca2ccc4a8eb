package models

import "time"

// User represents a registered user. Password holds the bcrypt hash and is
// never serialized.
type User struct {
	Base      `bson:",inline"`
	Name      string     `gorm:"not null" bson:"name" json:"name"`
	Email     string     `gorm:"uniqueIndex;not null" bson:"email" json:"email"`
	Password  string     `gorm:"not null" bson:"password" json:"-"`
	FirstName string     `bson:"first_name" json:"firstName"`
	LastName  string     `bson:"last_name" json:"lastName"`
	Phone     string     `bson:"phone" json:"phone"`
	DOB       *time.Time `bson:"dob,omitempty" json:"dob"`
	Address   string     `bson:"address" json:"address"`
	City      string     `bson:"city" json:"city"`
	Zip       string     `bson:"zip" json:"zip"`
}

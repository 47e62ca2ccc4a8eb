package models

import "github.com/shopspring/decimal"

// Expense is a single line in an account's expense list.
type Expense struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Value    float64 `bson:"value" json:"value"`
	Category string  `bson:"category" json:"category"`
	Date     string  `bson:"date" json:"date"`
}

// Account is the single financial account owned by a user.
// Expense and Balance are derived; see Recalculate.
type Account struct {
	Base     `bson:",inline"`
	UserID   string    `gorm:"type:uuid;uniqueIndex;not null" bson:"user_id" json:"userId"`
	Income   float64   `gorm:"not null;default:0" bson:"income" json:"income"`
	Expense  float64   `gorm:"not null;default:0" bson:"expense" json:"expense"`
	Balance  float64   `gorm:"not null;default:0" bson:"balance" json:"balance"`
	Expenses []Expense `gorm:"serializer:json;type:text" bson:"expenses" json:"expenses"`
}

// NewAccount returns the zero-valued account created on first access.
func NewAccount(userID string) *Account {
	return &Account{UserID: userID, Expenses: []Expense{}}
}

// Recalculate re-derives Expense from the expense list and Balance from
// Income and Expense.
func (a *Account) Recalculate() {
	total := decimal.Zero
	for _, e := range a.Expenses {
		total = total.Add(decimal.NewFromFloat(e.Value))
	}
	a.Expense = total.InexactFloat64()
	a.Balance = a.Income - a.Expense
}

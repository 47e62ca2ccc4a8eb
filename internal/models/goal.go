package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalCategory is one of the fixed buckets goal entries are filed under
type GoalCategory string

const (
	GoalCategoryMedical    GoalCategory = "medical"
	GoalCategoryHome       GoalCategory = "home"
	GoalCategoryInvestment GoalCategory = "investment"
	GoalCategoryEmergency  GoalCategory = "emergency"
	GoalCategoryOthers     GoalCategory = "others"
)

// GoalCategories lists every bucket in display order.
var GoalCategories = []GoalCategory{
	GoalCategoryMedical,
	GoalCategoryHome,
	GoalCategoryInvestment,
	GoalCategoryEmergency,
	GoalCategoryOthers,
}

// IsValid reports whether c is one of the fixed buckets.
func (c GoalCategory) IsValid() bool {
	for _, known := range GoalCategories {
		if c == known {
			return true
		}
	}
	return false
}

// GoalEntry is a single expenditure or savings record within a category.
type GoalEntry struct {
	Amount      float64   `bson:"amount" json:"amount"`
	Description string    `bson:"description" json:"description"`
	Date        time.Time `bson:"date" json:"date"`
}

// CategoryEntries maps every goal category to its ordered entries.
type CategoryEntries map[GoalCategory][]GoalEntry

// NewCategoryEntries returns a map holding an empty list for every category.
func NewCategoryEntries() CategoryEntries {
	entries := make(CategoryEntries, len(GoalCategories))
	for _, c := range GoalCategories {
		entries[c] = []GoalEntry{}
	}
	return entries
}

// Normalize fills in missing categories and nil lists after a load.
func (e CategoryEntries) Normalize() CategoryEntries {
	if e == nil {
		return NewCategoryEntries()
	}
	for _, c := range GoalCategories {
		if e[c] == nil {
			e[c] = []GoalEntry{}
		}
	}
	return e
}

// Total sums entry amounts across all known categories.
func (e CategoryEntries) Total() float64 {
	total := decimal.Zero
	for _, c := range GoalCategories {
		for _, entry := range e[c] {
			total = total.Add(decimal.NewFromFloat(entry.Amount))
		}
	}
	return total.InexactFloat64()
}

// Goal holds a user's monthly targets and category breakdowns.
// CurrentExpenditure and CurrentSavings are derived from the breakdowns.
type Goal struct {
	Base               `bson:",inline"`
	UserID             string          `gorm:"type:uuid;uniqueIndex;not null" bson:"user_id" json:"userId"`
	ExpenditureGoal    float64         `gorm:"not null;default:0" bson:"expenditure_goal" json:"expenditureGoal"`
	SavingsGoal        float64         `gorm:"not null;default:0" bson:"savings_goal" json:"savingsGoal"`
	CurrentExpenditure float64         `gorm:"not null;default:0" bson:"current_expenditure" json:"currentExpenditure"`
	CurrentSavings     float64         `gorm:"not null;default:0" bson:"current_savings" json:"currentSavings"`
	ExpenditureData    CategoryEntries `gorm:"serializer:json;type:text" bson:"expenditure_data" json:"expenditureData"`
	SavingsData        CategoryEntries `gorm:"serializer:json;type:text" bson:"savings_data" json:"savingsData"`
}

// NewGoal returns a goal with zeroed targets and empty breakdowns.
func NewGoal(userID string) *Goal {
	return &Goal{
		UserID:          userID,
		ExpenditureData: NewCategoryEntries(),
		SavingsData:     NewCategoryEntries(),
	}
}

// Normalize makes sure both breakdowns expose every category.
func (g *Goal) Normalize() {
	g.ExpenditureData = g.ExpenditureData.Normalize()
	g.SavingsData = g.SavingsData.Normalize()
}

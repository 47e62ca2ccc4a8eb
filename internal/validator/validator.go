// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"math"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"roundup/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("rounding_type", validateRoundingType)
		_ = v.RegisterValidation("goal_category", validateGoalCategory)
		_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	}
}

func validateRoundingType(fl validator.FieldLevel) bool {
	return models.RoundingType(fl.Field().String()).IsValid()
}

func validateGoalCategory(fl validator.FieldLevel) bool {
	return models.GoalCategory(fl.Field().String()).IsValid()
}

// validatePositiveAmount accepts numeric text (json.Number or string) > 0
// that still fits in a float64.
func validatePositiveAmount(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive() && !math.IsInf(d.InexactFloat64(), 0)
}

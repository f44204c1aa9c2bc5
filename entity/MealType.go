package entity

import "fmt"

// MealType is a closed enumeration; anything else is rejected at the
// request boundary.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

func ParseMealType(s string) (MealType, error) {
	switch MealType(s) {
	case MealBreakfast, MealLunch, MealDinner:
		return MealType(s), nil
	}
	return "", fmt.Errorf("unknown meal type %q", s)
}

package menu

import (
	"fmt"

	"github.com/ogradyo/restaurant-simulator/internal/pkg/errs"
)

// Category classifies menu items for filtering and reporting.
// It is a closed enumeration; values outside the declared set fail validation.
type Category string

const (
	Sandwiches    Category = "sandwiches"
	ChickenStrips Category = "chicken_strips"
	Salads        Category = "salads"
	Sides         Category = "sides"
	Beverages     Category = "beverages"
	Desserts      Category = "desserts"
	Breakfast     Category = "breakfast"
	KidsMeals     Category = "kids_meals"
)

// Categories returns every valid category in declaration order.
func Categories() []Category {
	return []Category{
		Sandwiches,
		ChickenStrips,
		Salads,
		Sides,
		Beverages,
		Desserts,
		Breakfast,
		KidsMeals,
	}
}

// CategoryFromString parses a category from its wire representation.
func CategoryFromString(s string) (Category, error) {
	c := Category(s)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate reports whether the category is one of the declared values.
func (c Category) Validate() error {
	switch c {
	case Sandwiches, ChickenStrips, Salads, Sides, Beverages, Desserts, Breakfast, KidsMeals:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%q is not a valid category", string(c)))
	}
}

// String returns the wire representation of the category.
func (c Category) String() string {
	return string(c)
}

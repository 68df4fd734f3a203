package menu

import (
	"errors"
	"fmt"

	"github.com/ogradyo/restaurant-simulator/internal/pkg/errs"
	"github.com/ogradyo/restaurant-simulator/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when a MenuItem was not created through
// the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("MenuItem must be created via NewItem constructor")

// Item is an immutable description of a single orderable product: identity,
// pricing, nutrition, allergen tags, and the customizations the kitchen
// accepts for it. Items are loaded once into a Catalog and never change, so
// order lines can hold shared references safely.
//
// Invariants:
//   - id and name are required
//   - base price is non-negative
//   - preparation time is positive
type Item struct {
	id             string
	name           string
	description    string
	category       Category
	basePrice      float64
	calories       int
	allergens      []string
	available      bool
	prepTimeMins   int
	customizations []string

	guard guard.ConstructorGuard
}

// NewItem creates a validated menu item. Allergens and customizations may be
// nil; they are copied so the caller's slices stay independent.
func NewItem(
	id string,
	name string,
	description string,
	category Category,
	basePrice float64,
	calories int,
	allergens []string,
	available bool,
	prepTimeMins int,
	customizations []string,
) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setCategory(category),
		item.setBasePrice(basePrice),
		item.setPrepTime(prepTimeMins),
	); err != nil {
		return Item{}, err
	}

	item.description = description
	item.calories = calories
	item.allergens = append([]string(nil), allergens...)
	item.available = available
	item.customizations = append([]string(nil), customizations...)

	return item, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's unique catalog key.
func (i Item) ID() string { return i.id }

// Name returns the display name.
func (i Item) Name() string { return i.name }

// Description returns the menu description text.
func (i Item) Description() string { return i.description }

// Category returns the item's menu category.
func (i Item) Category() Category { return i.category }

// BasePrice returns the price of a single unit.
func (i Item) BasePrice() float64 { return i.basePrice }

// Calories returns the calorie count of a single unit.
func (i Item) Calories() int { return i.calories }

// Allergens returns a copy of the item's allergen tags.
func (i Item) Allergens() []string {
	return append([]string(nil), i.allergens...)
}

// IsAvailable reports whether the item can currently be ordered.
func (i Item) IsAvailable() bool { return i.available }

// PreparationTime returns the kitchen preparation time in minutes.
func (i Item) PreparationTime() int { return i.prepTimeMins }

// Customizations returns a copy of the permitted customization tags.
func (i Item) Customizations() []string {
	return append([]string(nil), i.customizations...)
}

func (i *Item) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	i.category = category
	return nil
}

func (i *Item) setBasePrice(basePrice float64) error {
	if basePrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("base price",
			fmt.Errorf("%.2f is negative", basePrice))
	}
	i.basePrice = basePrice
	return nil
}

func (i *Item) setPrepTime(prepTimeMins int) error {
	if prepTimeMins <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("preparation time",
			fmt.Errorf("%d is not greater than 0", prepTimeMins))
	}
	i.prepTimeMins = prepTimeMins
	return nil
}

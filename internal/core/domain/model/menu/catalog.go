package menu

import (
	"fmt"
	"strings"

	"github.com/ogradyo/restaurant-simulator/internal/pkg/errs"
)

// Catalog is a read-only collection of menu items keyed by item ID.
// It is fully populated at construction time and never mutated afterwards,
// so it is safe for concurrent use without locking.
type Catalog struct {
	items []Item
	byID  map[string]Item
}

// NewCatalog builds a catalog from the given items. Every item must be valid
// and item IDs must be unique.
func NewCatalog(items []Item) (*Catalog, error) {
	catalog := &Catalog{
		items: make([]Item, 0, len(items)),
		byID:  make(map[string]Item, len(items)),
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, exists := catalog.byID[item.ID()]; exists {
			return nil, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("duplicate item id %q", item.ID()))
		}
		catalog.items = append(catalog.items, item)
		catalog.byID[item.ID()] = item
	}

	return catalog, nil
}

// Item looks up a menu item by its ID.
func (c *Catalog) Item(id string) (Item, error) {
	item, ok := c.byID[id]
	if !ok {
		return Item{}, errs.NewObjectNotFoundError("menuItemId", id)
	}
	return item, nil
}

// Items returns all catalog items in seed order.
func (c *Catalog) Items() []Item {
	return append([]Item(nil), c.items...)
}

// ItemsByCategory returns all items in the given category, in seed order.
func (c *Catalog) ItemsByCategory(category Category) []Item {
	matched := make([]Item, 0)
	for _, item := range c.items {
		if item.Category() == category {
			matched = append(matched, item)
		}
	}
	return matched
}

// AvailableItems returns all items currently available for ordering.
func (c *Catalog) AvailableItems() []Item {
	matched := make([]Item, 0)
	for _, item := range c.items {
		if item.IsAvailable() {
			matched = append(matched, item)
		}
	}
	return matched
}

// Search returns every item whose name or description contains the query,
// case-insensitively.
func (c *Catalog) Search(query string) []Item {
	query = strings.ToLower(query)
	matched := make([]Item, 0)
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.Name()), query) ||
			strings.Contains(strings.ToLower(item.Description()), query) {
			matched = append(matched, item)
		}
	}
	return matched
}

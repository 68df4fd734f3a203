package menu

// standardMenu is the seed data for the ACSP ("A Chicken Sandwich Place")
// menu. Prices, calories, allergens, and preparation times are fixed; the
// catalog built from this table is the single menu used by the simulator.
var standardMenu = []struct {
	id             string
	name           string
	description    string
	category       Category
	price          float64
	calories       int
	allergens      []string
	prepTimeMins   int
	customizations []string
}{
	{
		id:             "chicken_sandwich",
		name:           "ACSP Chicken Sandwich",
		description:    "A boneless breast of chicken seasoned to perfection, hand-breaded, pressure cooked in 100% refined peanut oil and served on a toasted, buttered bun with dill pickle chips.",
		category:       Sandwiches,
		price:          4.79,
		calories:       440,
		allergens:      []string{"wheat", "soy", "milk"},
		prepTimeMins:   6,
		customizations: []string{"no_pickle", "extra_pickle", "no_butter", "grilled_chicken"},
	},
	{
		id:             "deluxe_sandwich",
		name:           "ACSP Deluxe Sandwich",
		description:    "A boneless breast of chicken seasoned to perfection, hand-breaded, pressure cooked in 100% refined peanut oil and served on a toasted, buttered bun with dill pickle chips, green leaf lettuce, tomato and American cheese.",
		category:       Sandwiches,
		price:          5.79,
		calories:       550,
		allergens:      []string{"wheat", "soy", "milk"},
		prepTimeMins:   7,
		customizations: []string{"no_pickle", "extra_pickle", "no_butter", "no_lettuce", "no_tomato", "no_cheese", "grilled_chicken"},
	},
	{
		id:             "spicy_sandwich",
		name:           "Spicy Chicken Sandwich",
		description:    "A boneless breast of chicken seasoned to perfection, hand-breaded, pressure cooked in 100% refined peanut oil and served on a toasted, buttered bun with dill pickle chips.",
		category:       Sandwiches,
		price:          4.79,
		calories:       450,
		allergens:      []string{"wheat", "soy", "milk"},
		prepTimeMins:   6,
		customizations: []string{"no_pickle", "extra_pickle", "no_butter"},
	},
	{
		id:             "grilled_sandwich",
		name:           "Grilled Chicken Sandwich",
		description:    "A boneless breast of chicken marinated in a special blend of herbs and spices, grilled and served on a toasted, buttered bun with green leaf lettuce and tomato.",
		category:       Sandwiches,
		price:          5.39,
		calories:       320,
		allergens:      []string{"wheat", "soy", "milk"},
		prepTimeMins:   5,
		customizations: []string{"no_lettuce", "no_tomato", "no_butter"},
	},
	{
		id:             "chicken_strips",
		name:           "ACSP Chicken Strips",
		description:    "Tender, juicy strips of chicken breast, hand-breaded and pressure cooked in 100% refined peanut oil. Served with your choice of dipping sauce.",
		category:       ChickenStrips,
		price:          6.79,
		calories:       360,
		allergens:      []string{"wheat", "soy", "milk"},
		prepTimeMins:   8,
		customizations: []string{"extra_strips", "grilled_strips"},
	},
	{
		id:             "nuggets_8",
		name:           "ACSP Nuggets (8 count)",
		description:    "Bite-sized pieces of boneless chicken breast, seasoned to perfection, hand-breaded and pressure cooked in 100% refined peanut oil.",
		category:       ChickenStrips,
		price:          5.79,
		calories:       250,
		allergens:      []string{"wheat", "soy", "milk"},
		prepTimeMins:   6,
		customizations: []string{"grilled_nuggets"},
	},
	{
		id:             "nuggets_12",
		name:           "ACSP Nuggets (12 count)",
		description:    "Bite-sized pieces of boneless chicken breast, seasoned to perfection, hand-breaded and pressure cooked in 100% refined peanut oil.",
		category:       ChickenStrips,
		price:          7.79,
		calories:       380,
		allergens:      []string{"wheat", "soy", "milk"},
		prepTimeMins:   7,
		customizations: []string{"grilled_nuggets"},
	},
	{
		id:             "cobb_salad",
		name:           "Cobb Salad",
		description:    "A bed of mixed greens topped with chopped grilled chicken breast, crumbled blue cheese, hard-boiled egg, tomatoes, crispy red bell peppers and bacon.",
		category:       Salads,
		price:          9.99,
		calories:       520,
		allergens:      []string{"milk", "eggs"},
		prepTimeMins:   4,
		customizations: []string{"no_cheese", "no_egg", "no_bacon", "grilled_chicken"},
	},
	{
		id:             "market_salad",
		name:           "Market Salad",
		description:    "A bed of mixed greens topped with grilled chicken breast, blue cheese, crumbled blue cheese, strawberries, blueberries, apples and granola.",
		category:       Salads,
		price:          9.99,
		calories:       470,
		allergens:      []string{"milk", "nuts"},
		prepTimeMins:   4,
		customizations: []string{"no_cheese", "no_nuts", "grilled_chicken"},
	},
	{
		id:             "waffle_fries",
		name:           "Waffle Potato Fries",
		description:    "Waffle-cut potatoes cooked in canola oil until crispy outside and tender inside.",
		category:       Sides,
		price:          2.79,
		calories:       360,
		allergens:      []string{},
		prepTimeMins:   3,
		customizations: []string{"well_done", "light_fry"},
	},
	{
		id:             "mac_cheese",
		name:           "Mac & Cheese",
		description:    "Creamy macaroni and cheese made with a blend of cheeses including Cheddar, Parmesan and Romano.",
		category:       Sides,
		price:          3.79,
		calories:       450,
		allergens:      []string{"wheat", "milk"},
		prepTimeMins:   4,
		customizations: []string{"extra_cheese"},
	},
	{
		id:             "fruit_cup",
		name:           "Fruit Cup",
		description:    "A refreshing mix of mandarin oranges, strawberries, blueberries, red and green apples.",
		category:       Sides,
		price:          3.79,
		calories:       60,
		allergens:      []string{},
		prepTimeMins:   2,
		customizations: []string{"no_apples", "extra_berries"},
	},
	{
		id:             "lemonade",
		name:           "ACSP Lemonade",
		description:    "Freshly squeezed lemonade made from real lemons.",
		category:       Beverages,
		price:          2.79,
		calories:       200,
		allergens:      []string{},
		prepTimeMins:   1,
		customizations: []string{"light_ice", "no_ice", "extra_lemon"},
	},
	{
		id:             "sweet_tea",
		name:           "Sweet Tea",
		description:    "Freshly brewed sweet tea.",
		category:       Beverages,
		price:          2.79,
		calories:       120,
		allergens:      []string{},
		prepTimeMins:   1,
		customizations: []string{"light_ice", "no_ice", "unsweet_tea"},
	},
	{
		id:             "coke",
		name:           "Coca-Cola",
		description:    "Classic Coca-Cola soft drink.",
		category:       Beverages,
		price:          2.79,
		calories:       140,
		allergens:      []string{},
		prepTimeMins:   1,
		customizations: []string{"light_ice", "no_ice", "diet_coke", "coke_zero"},
	},
	{
		id:             "milkshake_vanilla",
		name:           "Vanilla Milkshake",
		description:    "Hand-spun vanilla milkshake made with real ice cream.",
		category:       Beverages,
		price:          4.79,
		calories:       560,
		allergens:      []string{"milk"},
		prepTimeMins:   3,
		customizations: []string{"extra_thick", "light_ice_cream"},
	},
	{
		id:             "milkshake_chocolate",
		name:           "Chocolate Milkshake",
		description:    "Hand-spun chocolate milkshake made with real ice cream.",
		category:       Beverages,
		price:          4.79,
		calories:       580,
		allergens:      []string{"milk"},
		prepTimeMins:   3,
		customizations: []string{"extra_thick", "light_ice_cream"},
	},
	{
		id:             "chocolate_chip_cookie",
		name:           "Chocolate Chip Cookie",
		description:    "Warm, soft chocolate chip cookie.",
		category:       Desserts,
		price:          1.99,
		calories:       160,
		allergens:      []string{"wheat", "milk", "eggs"},
		prepTimeMins:   2,
		customizations: []string{"extra_chocolate_chips"},
	},
	{
		id:             "brownie",
		name:           "Chocolate Fudge Brownie",
		description:    "Rich, fudgy chocolate brownie.",
		category:       Desserts,
		price:          2.99,
		calories:       340,
		allergens:      []string{"wheat", "milk", "eggs"},
		prepTimeMins:   2,
		customizations: []string{"extra_frosting"},
	},
	{
		id:             "chicken_biscuit",
		name:           "ACSP Chicken Biscuit",
		description:    "A boneless breast of chicken seasoned to perfection, hand-breaded, pressure cooked in 100% refined peanut oil and served on a warm, buttery biscuit.",
		category:       Breakfast,
		price:          4.79,
		calories:       450,
		allergens:      []string{"wheat", "soy", "milk"},
		prepTimeMins:   5,
		customizations: []string{"no_butter", "grilled_chicken"},
	},
	{
		id:             "egg_white_grill",
		name:           "Egg White Grill",
		description:    "Grilled chicken breast, egg whites and American cheese on a multigrain English muffin.",
		category:       Breakfast,
		price:          4.79,
		calories:       300,
		allergens:      []string{"wheat", "milk", "eggs"},
		prepTimeMins:   4,
		customizations: []string{"no_cheese", "extra_egg"},
	},
	{
		id:             "kids_nuggets",
		name:           "Kids ACSP Strips (4 count)",
		description:    "Four ACSP Nuggets served with a kid's size waffle potato fries and choice of beverage.",
		category:       KidsMeals,
		price:          6.99,
		calories:       400,
		allergens:      []string{"wheat", "soy", "milk"},
		prepTimeMins:   5,
		customizations: []string{"grilled_nuggets", "fruit_cup_side"},
	},
	{
		id:             "kids_sandwich",
		name:           "Kids ACSP Chicken Sandwich",
		description:    "A boneless breast of chicken seasoned to perfection, hand-breaded, pressure cooked in 100% refined peanut oil and served on a toasted, buttered bun with dill pickle chips.",
		category:       KidsMeals,
		price:          6.99,
		calories:       420,
		allergens:      []string{"wheat", "soy", "milk"},
		prepTimeMins:   5,
		customizations: []string{"no_pickle", "grilled_chicken"},
	},
}

// NewStandardCatalog builds the catalog from the standard seed menu.
// Every seed item is available when the catalog is created.
func NewStandardCatalog() (*Catalog, error) {
	items := make([]Item, 0, len(standardMenu))
	for _, d := range standardMenu {
		item, err := NewItem(
			d.id,
			d.name,
			d.description,
			d.category,
			d.price,
			d.calories,
			d.allergens,
			true,
			d.prepTimeMins,
			d.customizations,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return NewCatalog(items)
}

package cart

// Item is one purchasable catalog entry.
type Item struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
}

// Catalog is the read-only menu the pricing step resolves items against.
type Catalog interface {
	// Item returns the catalog entry for id, and whether it exists.
	Item(id string) (Item, bool)

	// Items returns all catalog entries.
	Items() []Item
}

// StaticCatalog is an in-memory Catalog backed by a fixed item set.
type StaticCatalog struct {
	items map[string]Item
}

// NewStaticCatalog builds a catalog from the given items.
func NewStaticCatalog(items ...Item) *StaticCatalog {
	m := make(map[string]Item, len(items))
	for _, item := range items {
		m[item.ID] = item
	}
	return &StaticCatalog{items: m}
}

// Item returns the catalog entry for id, and whether it exists.
func (c *StaticCatalog) Item(id string) (Item, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Items returns all catalog entries.
func (c *StaticCatalog) Items() []Item {
	out := make([]Item, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	return out
}

// DefaultCatalog returns the built-in menu used until a real catalog source
// is wired in.
func DefaultCatalog() *StaticCatalog {
	return NewStaticCatalog(
		Item{ID: "pizza_1", Name: "Pepperoni", Price: 450, Description: "Classic pepperoni and cheese pizza", Category: "pizza"},
		Item{ID: "pizza_2", Name: "Margherita", Price: 400, Description: "Tomato and mozzarella pizza", Category: "pizza"},
		Item{ID: "burger_1", Name: "Classic burger", Price: 350, Description: "Beef patty burger with vegetables", Category: "burger"},
		Item{ID: "pasta_1", Name: "Carbonara", Price: 380, Description: "Pasta with bacon in a cream sauce", Category: "pasta"},
		Item{ID: "salad_1", Name: "Caesar", Price: 280, Description: "Chicken salad with cheese and caesar dressing", Category: "salad"},
		Item{ID: "drink_1", Name: "Cola", Price: 120, Description: "Soft drink, 0.5l", Category: "drink"},
	)
}

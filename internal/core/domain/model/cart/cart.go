package cart

import (
	"encoding/json"
	"errors"
	"math"
)

// ErrEmptyCart is returned when pricing a cart that has no purchasable items.
// Order creation refuses to proceed on this error.
var ErrEmptyCart = errors.New("cart is empty")

// Cart is the raw item selection a customer builds during a conversation:
// catalog item id mapped to the requested quantity.
type Cart map[string]int

// IsEmpty reports whether the cart holds no items with a positive quantity.
func (c Cart) IsEmpty() bool {
	for _, qty := range c {
		if qty > 0 {
			return false
		}
	}
	return true
}

// PricedLine is one priced cart position. It snapshots the catalog name and
// price at pricing time so the stored order stays stable even if the catalog
// changes later.
type PricedLine struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// PricedCart is the priced snapshot of a cart: the line items and their total.
type PricedCart struct {
	Lines []PricedLine `json:"lines"`
	Total float64      `json:"total"`
}

// Price resolves a cart against the catalog and produces the priced snapshot.
//
// Items missing from the catalog are skipped rather than failing the whole
// cart; a stale conversation may still reference a removed item. Pricing an
// empty cart, or one whose items all fell out of the catalog, returns
// ErrEmptyCart.
func Price(c Cart, catalog Catalog) (PricedCart, error) {
	priced := PricedCart{Lines: make([]PricedLine, 0, len(c))}

	for itemID, qty := range c {
		if qty <= 0 {
			continue
		}

		item, ok := catalog.Item(itemID)
		if !ok {
			continue
		}

		subtotal := round2(item.Price * float64(qty))
		priced.Lines = append(priced.Lines, PricedLine{
			ItemID:   itemID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: qty,
			Subtotal: subtotal,
		})
		priced.Total = round2(priced.Total + subtotal)
	}

	if len(priced.Lines) == 0 {
		return PricedCart{}, ErrEmptyCart
	}

	return priced, nil
}

// MarshalSnapshot serializes the priced cart for the orders.items column.
func (p PricedCart) MarshalSnapshot() (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// UnmarshalSnapshot restores a priced cart from the orders.items column.
// An empty snapshot yields a zero-value cart; rows written before item
// snapshots existed stay readable.
func UnmarshalSnapshot(snapshot string) (PricedCart, error) {
	if snapshot == "" {
		return PricedCart{}, nil
	}

	var p PricedCart
	if err := json.Unmarshal([]byte(snapshot), &p); err != nil {
		return PricedCart{}, err
	}
	return p, nil
}

// round2 keeps monetary values at 2-decimal precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

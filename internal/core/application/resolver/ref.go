// Package resolver turns opaque order identifiers into order aggregates.
//
// The upstream transport hands over order numbers, surrogate ids and account
// ids through the same untyped field. The identifier is classified once into
// a typed reference at the boundary, then an ordered sequence of lookup
// strategies runs against the store, short-circuiting on the first hit.
package resolver

import (
	"strconv"
	"strings"

	"ordering/internal/core/domain/model/order"
)

// RefKind classifies an opaque identifier after parsing.
type RefKind int

const (
	// RefNumber is an identifier with the order-number prefix.
	RefNumber RefKind = iota

	// RefNumeric is an integer identifier, ambiguous between a surrogate
	// order id and an external account id.
	RefNumeric

	// RefText is anything else, possibly a surrogate id mangled by the
	// transport.
	RefText
)

// Ref is a parsed order identifier. Exactly one interpretation applies,
// chosen by Kind.
type Ref struct {
	Kind RefKind

	// Raw is the identifier with surrounding whitespace removed.
	Raw string

	// Value holds the parsed integer for RefNumeric refs.
	Value int64
}

// ParseRef classifies an opaque identifier. Classification never fails;
// unrecognized shapes become RefText, where the literal-text strategy can
// still match a surrogate id the transport mangled.
func ParseRef(identifier string) Ref {
	trimmed := strings.TrimSpace(identifier)

	if order.IsNumber(trimmed) {
		return Ref{Kind: RefNumber, Raw: trimmed}
	}

	if value, err := strconv.ParseInt(trimmed, 10, 64); err == nil && value > 0 {
		return Ref{Kind: RefNumeric, Raw: trimmed, Value: value}
	}

	return Ref{Kind: RefText, Raw: trimmed}
}

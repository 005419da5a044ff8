package order

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"ordering/internal/pkg/errs"
)

// NumberPrefix starts every human-facing order number.
const NumberPrefix = "ORD-"

const (
	numberSuffixLen     = 4
	numberSuffixCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	numberTimeLayout    = "0601021504" // YYMMDDHHmm
)

// ErrNumberTaken signals a uniqueness collision on order_number during insert.
// The random suffix makes collisions rare but possible within the same minute;
// callers regenerate the number and retry.
var ErrNumberTaken = fmt.Errorf("order number already taken")

// GenerateNumber produces a human-facing order number of the form
// ORD-<YYMMDDHHmm>-<4 random uppercase-alphanumeric characters>.
//
// The result is unique only with high probability; persistence enforces the
// uniqueness constraint and creation retries on ErrNumberTaken.
func GenerateNumber(now time.Time) string {
	suffix := make([]byte, numberSuffixLen)
	for i := range suffix {
		suffix[i] = numberSuffixCharset[rand.IntN(len(numberSuffixCharset))]
	}
	return fmt.Sprintf("%s%s-%s", NumberPrefix, now.Format(numberTimeLayout), suffix)
}

// IsNumber reports whether the identifier looks like an order number.
// Only the prefix is checked; the resolver uses this to pick a lookup strategy,
// not to guarantee the number exists.
func IsNumber(identifier string) bool {
	return strings.HasPrefix(identifier, NumberPrefix)
}

// ValidateNumber checks the full order-number shape: prefix, timestamp block
// and random suffix.
func ValidateNumber(number string) error {
	invalid := func(cause string) error {
		return errs.NewValueIsInvalidErrorWithCause("orderNumber", fmt.Errorf("%s", cause))
	}

	if !strings.HasPrefix(number, NumberPrefix) {
		return invalid("missing ORD- prefix")
	}

	rest := strings.TrimPrefix(number, NumberPrefix)
	parts := strings.Split(rest, "-")
	if len(parts) != 2 {
		return invalid("expected <timestamp>-<suffix>")
	}

	if _, err := time.Parse(numberTimeLayout, parts[0]); err != nil {
		return invalid("timestamp block is malformed")
	}

	if len(parts[1]) != numberSuffixLen {
		return invalid("suffix must be 4 characters")
	}
	for _, c := range parts[1] {
		if !strings.ContainsRune(numberSuffixCharset, c) {
			return invalid("suffix must be uppercase alphanumeric")
		}
	}

	return nil
}

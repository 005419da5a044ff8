package resolver

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// fallbackScanLimit bounds how many recent orders the text and degraded
// strategies inspect.
const fallbackScanLimit = 10

// Resolver maps opaque identifiers onto orders using ordered lookup
// strategies. Strategy failures are logged and non-fatal; only exhaustion of
// every strategy yields a not-found error.
//
// The degraded fallback (return the single most recent order when nothing
// matched) can hand a legacy caller somebody else's order. It is off unless
// explicitly enabled and exists only to keep such callers from hard-failing.
type Resolver struct {
	orders           ports.OrderRepository
	degradedFallback bool
	logger           *zap.Logger
}

// NewResolver creates a resolver over the given order repository.
// Set degradedFallback to allow the last-resort most-recent-order scan.
func NewResolver(orders ports.OrderRepository, degradedFallback bool, logger *zap.Logger) Resolver {
	return Resolver{
		orders:           orders,
		degradedFallback: degradedFallback,
		logger:           logger,
	}
}

// Resolve finds the order an opaque identifier refers to.
//
// Strategy order, short-circuiting on first hit:
//  1. Order-number prefixed identifiers look up by number.
//  2. Integer identifiers look up by surrogate id, then by the most recent
//     order of the matching external account.
//  3. Other strings try a literal match against the textual form of the
//     surrogate ids of recent orders.
//  4. When the degraded fallback is enabled, the single most recent order is
//     returned as a last resort.
//
// Returns *errs.ObjectNotFoundError when every strategy misses.
func (r Resolver) Resolve(ctx context.Context, identifier string) (*order.Order, error) {
	ref := ParseRef(identifier)

	switch ref.Kind {
	case RefNumber:
		if found := r.byNumber(ctx, ref.Raw); found != nil {
			return found, nil
		}
	case RefNumeric:
		if found := r.byID(ctx, ref.Value); found != nil {
			return found, nil
		}
		if found := r.byAccount(ctx, ref.Value); found != nil {
			return found, nil
		}
	case RefText:
		if found := r.byIDText(ctx, ref.Raw); found != nil {
			return found, nil
		}
	}

	if r.degradedFallback {
		if found := r.mostRecent(ctx); found != nil {
			r.logger.Warn("identifier resolved via degraded fallback",
				zap.String("identifier", ref.Raw),
				zap.String("order_number", found.Number()))
			return found, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("order", ref.Raw)
}

func (r Resolver) byNumber(ctx context.Context, number string) *order.Order {
	found, err := r.orders.GetByNumber(ctx, number)
	if err != nil {
		r.logMiss("number", number, err)
		return nil
	}
	return found
}

func (r Resolver) byID(ctx context.Context, id int64) *order.Order {
	found, err := r.orders.GetByID(ctx, id)
	if err != nil {
		r.logMiss("id", strconv.FormatInt(id, 10), err)
		return nil
	}
	return found
}

func (r Resolver) byAccount(ctx context.Context, accountID int64) *order.Order {
	found, err := r.orders.GetLatestByAccount(ctx, accountID)
	if err != nil {
		r.logMiss("account", strconv.FormatInt(accountID, 10), err)
		return nil
	}
	return found
}

// byIDText scans recent orders for one whose surrogate id, rendered as text,
// equals the identifier. Transports that stringify ids land here.
func (r Resolver) byIDText(ctx context.Context, raw string) *order.Order {
	recent, err := r.orders.List(ctx, ports.ListFilter{Limit: fallbackScanLimit})
	if err != nil {
		r.logMiss("id_text", raw, err)
		return nil
	}

	for _, candidate := range recent {
		if strconv.FormatInt(candidate.ID(), 10) == raw {
			return candidate
		}
	}
	return nil
}

func (r Resolver) mostRecent(ctx context.Context) *order.Order {
	recent, err := r.orders.List(ctx, ports.ListFilter{Limit: 1})
	if err != nil || len(recent) == 0 {
		if err != nil {
			r.logMiss("most_recent", "", err)
		}
		return nil
	}
	return recent[0]
}

// logMiss records a strategy failure. A plain not-found miss is expected as
// strategies run in turn, so it logs at debug; anything else is a real store
// problem and logs at warn.
func (r Resolver) logMiss(strategy, identifier string, err error) {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, errs.ErrObjectNotFound) {
		r.logger.Debug("resolver strategy missed",
			zap.String("strategy", strategy),
			zap.String("identifier", identifier))
		return
	}

	r.logger.Warn("resolver strategy failed",
		zap.String("strategy", strategy),
		zap.String("identifier", identifier),
		zap.Error(err))
}

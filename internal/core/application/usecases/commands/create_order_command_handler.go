package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// maxNumberAttempts bounds how many times order creation regenerates the
// order number after a uniqueness collision before giving up.
const maxNumberAttempts = 5

// ErrNumberExhausted is returned when every generated order number collided
// with an existing one. With a 4-digit random suffix per minute this is
// practically unreachable outside of pathological load.
var ErrNumberExhausted = errors.New("could not generate a unique order number")

// generateNumber produces candidate order numbers. Tests swap it out to force
// deterministic collisions.
var generateNumber = order.GenerateNumber

// CreateOrderResult reports the identity of a freshly submitted order.
type CreateOrderResult struct {
	OrderID     int64
	OrderNumber string
	Amount      float64
}

// CreateOrderCommandHandler handles the business logic for order submission.
// Prices the cart against the catalog, upserts the customer, and inserts the
// order in pending status, all within a single transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog, notifier, logger)
//	cmd, _ := NewCreateOrderCommand(accountID, profile, items, phone, address)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order submission failed: %w", err)
//	}
//	// result.OrderNumber now awaits approval
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	catalog    cart.Catalog
	notifier   ports.Notifier
	policy     services.NotificationPolicy
	logger     *zap.Logger
}

// NewCreateOrderCommandHandler creates a handler for order submission.
// Requires a CheckoutUoWFactory for transactional persistence and a catalog
// for pricing the cart.
func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	catalog cart.Catalog,
	notifier ports.Notifier,
	logger *zap.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		notifier:   notifier,
		policy:     services.NewNotificationPolicy(),
		logger:     logger,
	}
}

// Handle processes the order submission command.
// Prices the cart (cart.ErrEmptyCart when nothing survives pricing), upserts
// the customer profile, and inserts the order with a generated number,
// regenerating on a uniqueness collision. After commit the submission
// notifications go out best-effort.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	priced, err := cart.Price(cmd.Items(), h.catalog)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	profile := cmd.Profile()
	customer, err := user.NewUser(cmd.AccountID(), user.Profile{
		Username:  profile.Username,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Phone:     cmd.Phone(),
	})
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.UserRepository().Upsert(ctx, customer); err != nil {
		return CreateOrderResult{}, err
	}

	newOrder, err := h.addWithUniqueNumber(ctx, uow.OrderRepository(), customer, priced, cmd)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	notifyStatusChange(ctx, h.notifier, h.policy, h.logger, newOrder)

	return CreateOrderResult{
		OrderID:     newOrder.ID(),
		OrderNumber: newOrder.Number(),
		Amount:      newOrder.Amount(),
	}, nil
}

// addWithUniqueNumber inserts the order, regenerating the number on each
// order.ErrNumberTaken collision up to maxNumberAttempts.
func (h CreateOrderCommandHandler) addWithUniqueNumber(
	ctx context.Context,
	repo ports.OrderRepository,
	customer *user.User,
	priced cart.PricedCart,
	cmd CreateOrderCommand,
) (*order.Order, error) {
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		number := generateNumber(time.Now())

		newOrder, err := order.NewOrder(
			number,
			customer.ID(),
			customer.AccountID(),
			priced,
			cmd.Phone(),
			cmd.Address(),
		)
		if err != nil {
			return nil, err
		}

		err = repo.Add(ctx, newOrder)
		if err == nil {
			return newOrder, nil
		}
		if !errors.Is(err, order.ErrNumberTaken) {
			return nil, err
		}

		h.logger.Warn("order number collision, regenerating",
			zap.String("number", number),
			zap.Int("attempt", attempt))
	}

	return nil, fmt.Errorf("%w after %d attempts", ErrNumberExhausted, maxNumberAttempts)
}

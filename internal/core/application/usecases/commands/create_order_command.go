package commands

import (
	"errors"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAccountIDIsInvalid = errors.New("account id must be greater than 0")
	ErrPhoneIsRequired    = errors.New("phone is required")
	ErrAddressIsRequired  = errors.New("address is required")
)

// CreateOrderCommand represents a checkout request: a customer submits their
// current cart together with the delivery contact captured during the session.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(accountID, profile, items, "+1234567", "5 High St")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog, notifier, logger)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s submitted for approval", result.OrderNumber)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	accountID int64
	profile   CustomerProfile
	items     cart.Cart
	phone     string
	address   string

	guard guard.ConstructorGuard
}

// CustomerProfile carries the identity fields known about the submitting
// customer. Everything but the account id is optional.
type CustomerProfile struct {
	Username  string
	FirstName string
	LastName  string
}

// NewCreateOrderCommand creates a command to submit a new order.
// Validates that the account id is positive, the cart has at least one item,
// and the delivery contact is complete. Returns an error if any validation fails.
func NewCreateOrderCommand(
	accountID int64,
	profile CustomerProfile,
	items cart.Cart,
	phone, address string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		profile: profile,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setAccountID(accountID),
		orderCommand.setItems(items),
		orderCommand.setContact(phone, address),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// AccountID returns the submitting customer's external account id.
func (c CreateOrderCommand) AccountID() int64 {
	return c.accountID
}

// Profile returns the customer identity fields captured at checkout.
func (c CreateOrderCommand) Profile() CustomerProfile {
	return c.profile
}

// Items returns the raw cart to be priced.
func (c CreateOrderCommand) Items() cart.Cart {
	return c.items
}

// Phone returns the delivery contact phone.
func (c CreateOrderCommand) Phone() string {
	return c.phone
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

func (c *CreateOrderCommand) setAccountID(accountID int64) error {
	if accountID <= 0 {
		return ErrAccountIDIsInvalid
	}

	c.accountID = accountID
	return nil
}

func (c *CreateOrderCommand) setItems(items cart.Cart) error {
	if items.IsEmpty() {
		return cart.ErrEmptyCart
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setContact(phone, address string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	if address == "" {
		return ErrAddressIsRequired
	}

	c.phone = phone
	c.address = address
	return nil
}

package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrNotOrderOwner is returned when a participant tries to perform an
	// owner-only action on an order that belongs to somebody else.
	ErrNotOrderOwner = errors.New("requester does not own the order")

	// ErrIDAlreadyAssigned is returned when persistence tries to attach a
	// surrogate key to an order that already has one.
	ErrIDAlreadyAssigned = errors.New("order already has a surrogate id")
)

// Order is the aggregate root of the ordering lifecycle. It owns the status
// state machine and snapshots the priced cart and delivery contact at
// submission time.
//
// Order maintains these invariants:
//   - References exactly one existing customer (user id and external account id)
//   - Has a well-formed, unique order number
//   - Carries a non-empty priced item snapshot with non-negative money values
//   - Status only ever changes along the transition table in Status
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the store-assigned surrogate key; zero until first persisted
	id int64

	// number is the human-facing unique order label (ORD-...)
	number string

	// userID is the owning user's surrogate key
	userID int64

	// accountID is the owning user's external account id,
	// carried for notification routing
	accountID int64

	// items is the priced line-item snapshot taken at submission
	items cart.PricedCart

	deliveryCost float64
	discount     float64

	// phone and address are the delivery contact snapshot; they are copied
	// from the submitting session, not linked to the user profile
	phone   string
	address string

	status Status

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a freshly submitted order in Pending status.
//
// Parameters:
//   - number: pre-generated order number (see GenerateNumber)
//   - userID: owning user's surrogate key
//   - accountID: owning user's external account id
//   - items: priced cart snapshot (must have at least one line)
//   - phone, address: delivery contact snapshot
//
// Returns a validation error if any parameter breaks an invariant.
func NewOrder(number string, userID, accountID int64, items cart.PricedCart, phone, address string) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setOwner(userID, accountID),
		o.setItems(items),
		o.setContact(phone, address),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an order from persistence without re-running the
// creation rules. The stored status must still be a valid enumeration member.
func RestoreOrder(
	id int64,
	number string,
	userID, accountID int64,
	items cart.PricedCart,
	deliveryCost, discount float64,
	phone, address string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:           id,
		number:       number,
		userID:       userID,
		accountID:    accountID,
		items:        items,
		deliveryCost: deliveryCost,
		discount:     discount,
		phone:        phone,
		address:      address,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by surrogate id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the store-assigned surrogate key, zero before first persistence.
func (o *Order) ID() int64 { return o.id }

// Number returns the human-facing order number.
func (o *Order) Number() string { return o.number }

// UserID returns the owning user's surrogate key.
func (o *Order) UserID() int64 { return o.userID }

// AccountID returns the owning user's external account id.
func (o *Order) AccountID() int64 { return o.accountID }

// Items returns the priced line-item snapshot.
func (o *Order) Items() cart.PricedCart { return o.items }

// Amount returns the order total.
func (o *Order) Amount() float64 { return o.items.Total }

// DeliveryCost returns the delivery surcharge, zero by default.
func (o *Order) DeliveryCost() float64 { return o.deliveryCost }

// Discount returns the applied discount, zero by default.
func (o *Order) Discount() float64 { return o.discount }

// Phone returns the delivery contact phone snapshot.
func (o *Order) Phone() string { return o.phone }

// Address returns the delivery address snapshot.
func (o *Order) Address() string { return o.address }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// CreatedAt returns the store-managed creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the store-managed last-update timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// IsOwnedBy reports whether the given external account owns the order.
func (o *Order) IsOwnedBy(accountID int64) bool {
	return o.accountID == accountID
}

// AttachID records the surrogate key assigned by the store on first insert.
// Attaching a second time is an error: the surrogate id is immutable.
func (o *Order) AttachID(id int64) error {
	if o.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("orderID")
	}
	o.id = id
	return nil
}

// Apply performs the lifecycle action against the current status.
//
// Returns *InvalidTransitionError (wrapping ErrInvalidTransition) when the
// transition table forbids the move; the order is left unchanged. Ownership
// rules are the caller's concern and are checked before this method.
func (o *Order) Apply(action Action) error {
	if err := action.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(action.Target())
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Approve accepts a pending order.
func (o *Order) Approve() error { return o.Apply(ActionApprove) }

// Reject declines a pending order.
func (o *Order) Reject() error { return o.Apply(ActionReject) }

// Cancel withdraws a pending or approved order.
func (o *Order) Cancel() error { return o.Apply(ActionCancel) }

// MarkPaid records a captured payment on an approved order.
func (o *Order) MarkPaid() error { return o.Apply(ActionPay) }

// StartPreparing moves a paid order into preparation.
func (o *Order) StartPreparing() error { return o.Apply(ActionPreparing) }

// StartDelivering hands a prepared order to a courier.
func (o *Order) StartDelivering() error { return o.Apply(ActionDelivering) }

// Complete confirms delivery of a dispatched order.
func (o *Order) Complete() error { return o.Apply(ActionComplete) }

func (o *Order) setNumber(number string) error {
	if err := ValidateNumber(number); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setOwner(userID, accountID int64) error {
	if userID <= 0 {
		return errs.NewValueIsRequiredError("userID")
	}
	if accountID <= 0 {
		return errs.NewValueIsRequiredError("accountID")
	}
	o.userID = userID
	o.accountID = accountID
	return nil
}

func (o *Order) setItems(items cart.PricedCart) error {
	if len(items.Lines) == 0 {
		return cart.ErrEmptyCart
	}
	if items.Total < 0 {
		return errs.NewValueIsInvalidError("amount")
	}
	o.items = items
	return nil
}

func (o *Order) setContact(phone, address string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.phone = phone
	o.address = address
	return nil
}

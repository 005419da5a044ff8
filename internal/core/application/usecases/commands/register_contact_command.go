package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrRegisterContactCommandIsNotConstructed = errors.New(
	"RegisterContactCommand must be created via NewRegisterContactCommand constructor",
)

// RegisterContactCommand represents a customer sharing or refreshing their
// identity outside of checkout, for example on first contact. An empty phone
// leaves any stored phone intact.
type RegisterContactCommand struct { //nolint:recvcheck //using for validation
	accountID int64
	profile   CustomerProfile
	phone     string

	guard guard.ConstructorGuard
}

// NewRegisterContactCommand creates a command to upsert a customer identity.
func NewRegisterContactCommand(accountID int64, profile CustomerProfile, phone string) (RegisterContactCommand, error) {
	contactCommand := RegisterContactCommand{
		profile: profile,
		phone:   phone,
		guard:   guard.NewConstructorGuard(),
	}

	if err := contactCommand.setAccountID(accountID); err != nil {
		return RegisterContactCommand{}, err
	}

	return contactCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterContactCommandIsNotConstructed if validation fails.
func (c RegisterContactCommand) Validate() error {
	return c.guard.Validate(ErrRegisterContactCommandIsNotConstructed)
}

// AccountID returns the customer's external account id.
func (c RegisterContactCommand) AccountID() int64 {
	return c.accountID
}

// Profile returns the identity fields to merge.
func (c RegisterContactCommand) Profile() CustomerProfile {
	return c.profile
}

// Phone returns the shared phone number, possibly empty.
func (c RegisterContactCommand) Phone() string {
	return c.phone
}

func (c *RegisterContactCommand) setAccountID(accountID int64) error {
	if accountID <= 0 {
		return ErrAccountIDIsInvalid
	}

	c.accountID = accountID
	return nil
}

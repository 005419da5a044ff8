// Package user models the customer identity behind orders. A user is created
// on first contact and only ever updated afterwards; the external account id
// is immutable while the profile fields follow the latest contact.
package user

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// Profile carries the mutable identity fields delivered with each contact.
type Profile struct {
	Username  string
	FirstName string
	LastName  string
	Phone     string
}

// User is the customer entity. The account id is the stable external identity;
// profile fields track whatever the transport reported most recently, except
// that a stored phone is never overwritten by an empty one.
type User struct {
	// id is the store-assigned surrogate key; zero until first persisted
	id int64

	// accountID is the stable external identity, unique and immutable
	accountID int64

	username  string
	firstName string
	lastName  string
	phone     string

	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewUser creates a user on first contact.
func NewUser(accountID int64, profile Profile) (*User, error) {
	if accountID <= 0 {
		return nil, errs.NewValueIsRequiredError("accountID")
	}

	return &User{
		accountID: accountID,
		username:  profile.Username,
		firstName: profile.FirstName,
		lastName:  profile.LastName,
		phone:     profile.Phone,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreUser rehydrates a user from persistence.
func RestoreUser(id, accountID int64, profile Profile, createdAt time.Time) (*User, error) {
	if accountID <= 0 {
		return nil, errs.NewValueIsRequiredError("accountID")
	}

	return &User{
		id:        id,
		accountID: accountID,
		username:  profile.Username,
		firstName: profile.FirstName,
		lastName:  profile.LastName,
		phone:     profile.Phone,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the store-assigned surrogate key, zero before first persistence.
func (u *User) ID() int64 { return u.id }

// AccountID returns the stable external identity.
func (u *User) AccountID() int64 { return u.accountID }

// Username returns the latest reported username.
func (u *User) Username() string { return u.username }

// FirstName returns the latest reported first name.
func (u *User) FirstName() string { return u.firstName }

// LastName returns the latest reported last name.
func (u *User) LastName() string { return u.lastName }

// Phone returns the stored contact phone.
func (u *User) Phone() string { return u.phone }

// CreatedAt returns the store-managed creation timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// FullName renders the display name used in participant-facing messages.
func (u *User) FullName() string {
	switch {
	case u.firstName != "" && u.lastName != "":
		return u.firstName + " " + u.lastName
	case u.firstName != "":
		return u.firstName
	default:
		return u.lastName
	}
}

// ApplyProfile merges a freshly reported profile into the user.
// Username and names always follow the incoming value; the phone is preserved
// when the incoming value is empty, so a known contact number is never lost.
func (u *User) ApplyProfile(profile Profile) {
	u.username = profile.Username
	u.firstName = profile.FirstName
	u.lastName = profile.LastName
	if profile.Phone != "" {
		u.phone = profile.Phone
	}
}

// AttachID records the surrogate key assigned by the store on first insert.
func (u *User) AttachID(id int64) {
	if u.id == 0 {
		u.id = id
	}
}

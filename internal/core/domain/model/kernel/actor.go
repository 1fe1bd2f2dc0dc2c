package kernel

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

// Role is the marketplace role attached to a caller identity. The identity
// provider resolves it; the core trusts it for every authorization check.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
	RoleDelivery Role = "delivery"
)

// RoleFromString parses a role, rejecting anything outside the closed set.
func RoleFromString(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleSeller, RoleDelivery:
		return Role(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks the role against the closed set.
func (r Role) Validate() error {
	_, err := RoleFromString(string(r))
	return err
}

// ErrActorIsNotConstructed is returned when using a zero-value Actor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"Actor must be created via NewActor constructor")

// Actor is the explicit caller identity passed into every core operation.
// It replaces ambient session state so authorization is testable without a
// simulated request environment.
type Actor struct {
	userID UUID
	role   Role
	guard  guard.ConstructorGuard
}

// NewActor creates a validated caller identity.
func NewActor(userID UUID, role Role) (Actor, error) {
	if err := userID.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		userID: userID,
		role:   role,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// UserID returns the acting user's identifier.
func (a Actor) UserID() UUID {
	return a.userID
}

// Role returns the acting user's role.
func (a Actor) Role() Role {
	return a.role
}

// Is reports whether the actor holds the given role.
func (a Actor) Is(role Role) bool {
	return a.role == role
}

// Validate ensures the actor was created via NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

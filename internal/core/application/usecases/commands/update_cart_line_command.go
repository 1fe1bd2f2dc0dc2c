package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrUpdateCartLineCommandIsNotConstructed = errors.New(
	"UpdateCartLineCommand must be created via NewUpdateCartLineCommand constructor",
)

// UpdateCartLineCommand represents a request to change the quantity of an
// existing cart line. A quantity of zero removes the line.
type UpdateCartLineCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	lineID     kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewUpdateCartLineCommand creates a command to change a cart line's
// quantity. Negative quantities are rejected; zero means removal.
func NewUpdateCartLineCommand(customerID, lineID kernel.UUID, quantity int) (UpdateCartLineCommand, error) {
	command := UpdateCartLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setLineID(lineID),
		command.setQuantity(quantity),
	); err != nil {
		return UpdateCartLineCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartLineCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartLineCommandIsNotConstructed)
}

// CustomerID returns the acting customer's identifier.
func (c UpdateCartLineCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// LineID returns the cart line to change.
func (c UpdateCartLineCommand) LineID() kernel.UUID {
	return c.lineID
}

// Quantity returns the new quantity; zero removes the line.
func (c UpdateCartLineCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartLineCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCartLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *UpdateCartLineCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

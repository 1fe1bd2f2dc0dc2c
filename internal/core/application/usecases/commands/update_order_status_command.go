package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a seller's request to advance an
// order one step along the preparation path.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	sellerID kernel.UUID
	orderID  kernel.UUID
	next     order.Status
	notes    string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to advance an order's
// preparation status. The target status must be a member of the closed
// status set; whether the step is legal from the current status is decided
// by the aggregate.
func NewUpdateOrderStatusCommand(
	sellerID kernel.UUID,
	orderID kernel.UUID,
	next order.Status,
	notes string,
) (UpdateOrderStatusCommand, error) {
	command := UpdateOrderStatusCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSellerID(sellerID),
		command.setOrderID(orderID),
		command.setNext(next),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// SellerID returns the acting seller's identifier.
func (c UpdateOrderStatusCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// OrderID returns the order to advance.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Next returns the target status.
func (c UpdateOrderStatusCommand) Next() order.Status {
	return c.next
}

// Notes returns the tracking note attached to the transition.
func (c UpdateOrderStatusCommand) Notes() string {
	return c.notes
}

func (c *UpdateOrderStatusCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}

	c.sellerID = sellerID
	return nil
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNext(next order.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	c.next = next
	return nil
}

package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a delivery agent's request to
// advance an order along the delivery path, optionally geotagging the
// tracking event with the agent's current position.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	agentID  kernel.UUID
	orderID  kernel.UUID
	next     order.Status
	notes    string
	location *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to advance a delivery.
// The location is optional; when present it was already validated by
// kernel.NewGeoPoint.
func NewUpdateDeliveryStatusCommand(
	agentID kernel.UUID,
	orderID kernel.UUID,
	next order.Status,
	notes string,
	location *kernel.GeoPoint,
) (UpdateDeliveryStatusCommand, error) {
	command := UpdateDeliveryStatusCommand{
		notes:    notes,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAgentID(agentID),
		command.setOrderID(orderID),
		command.setNext(next),
		command.setLocation(location),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// AgentID returns the acting delivery agent's identifier.
func (c UpdateDeliveryStatusCommand) AgentID() kernel.UUID {
	return c.agentID
}

// OrderID returns the order to advance.
func (c UpdateDeliveryStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Next returns the target status.
func (c UpdateDeliveryStatusCommand) Next() order.Status {
	return c.next
}

// Notes returns the tracking note attached to the transition.
func (c UpdateDeliveryStatusCommand) Notes() string {
	return c.notes
}

// Location returns the agent's position at the time of the update, or nil.
func (c UpdateDeliveryStatusCommand) Location() *kernel.GeoPoint {
	return c.location
}

func (c *UpdateDeliveryStatusCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setNext(next order.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	c.next = next
	return nil
}

func (c *UpdateDeliveryStatusCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	return location.Validate()
}

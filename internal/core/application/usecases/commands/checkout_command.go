package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrPaymentMethodIsRequired   = errors.New("payment method is required")
)

// CheckoutCommand represents a request to turn the customer's cart into
// orders. Cart lines are grouped by seller and each group becomes one
// independent order.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customerID          kernel.UUID
	deliveryAddress     string
	paymentMethod       string
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command. The delivery address and
// payment method are required; special instructions are optional.
func NewCheckoutCommand(
	customerID kernel.UUID,
	deliveryAddress string,
	paymentMethod string,
	specialInstructions string,
) (CheckoutCommand, error) {
	command := CheckoutCommand{
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setDeliveryAddress(deliveryAddress),
		command.setPaymentMethod(paymentMethod),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CustomerID returns the checking-out customer's identifier.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DeliveryAddress returns the address every created order ships to.
func (c CheckoutCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// PaymentMethod returns the recorded payment method.
func (c CheckoutCommand) PaymentMethod() string {
	return c.paymentMethod
}

// SpecialInstructions returns the customer's free-form instructions.
func (c CheckoutCommand) SpecialInstructions() string {
	return c.specialInstructions
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return ErrPaymentMethodIsRequired
	}

	c.paymentMethod = paymentMethod
	return nil
}

package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrAddToCartCommandIsNotConstructed = errors.New(
		"AddToCartCommand must be created via NewAddToCartCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddToCartCommand represents a request to put a catalog item into the
// customer's cart. Re-adding an item the cart already holds merges
// quantities instead of creating a second line.
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	foodItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates a command to add an item to a cart.
// Validates that both IDs are valid and the quantity is positive.
func NewAddToCartCommand(customerID, foodItemID kernel.UUID, quantity int) (AddToCartCommand, error) {
	command := AddToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setFoodItemID(foodItemID),
		command.setQuantity(quantity),
	); err != nil {
		return AddToCartCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c AddToCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// FoodItemID returns the catalog item to add.
func (c AddToCartCommand) FoodItemID() kernel.UUID {
	return c.foodItemID
}

// Quantity returns the amount to add, always positive.
func (c AddToCartCommand) Quantity() int {
	return c.quantity
}

func (c *AddToCartCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddToCartCommand) setFoodItemID(foodItemID kernel.UUID) error {
	if err := foodItemID.Validate(); err != nil {
		return err
	}

	c.foodItemID = foodItemID
	return nil
}

func (c *AddToCartCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

package cart

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through NewLine or RestoreLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine")

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through NewCart or RestoreCart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart")

// Line is a single cart entry: one catalog item with a quantity. A cart
// holds at most one line per catalog item.
type Line struct {
	id         kernel.UUID
	foodItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewLine creates a cart line with a fresh identifier.
func NewLine(foodItemID kernel.UUID, quantity int) (Line, error) {
	return RestoreLine(kernel.NewUUID(), foodItemID, quantity)
}

// RestoreLine reconstructs a cart line from persistence.
func RestoreLine(id kernel.UUID, foodItemID kernel.UUID, quantity int) (Line, error) {
	if err := errors.Join(id.Validate(), foodItemID.Validate()); err != nil {
		return Line{}, err
	}
	if quantity < 1 {
		return Line{}, errs.NewValueIsInvalidError("quantity")
	}

	return Line{
		id:         id,
		foodItemID: foodItemID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// ID returns the line identifier.
func (l Line) ID() kernel.UUID {
	return l.id
}

// FoodItemID returns the catalog item the line refers to.
func (l Line) FoodItemID() kernel.UUID {
	return l.foodItemID
}

// Quantity returns the requested quantity, always positive.
func (l Line) Quantity() int {
	return l.quantity
}

// Validate ensures the line was created through a constructor.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// Cart is the aggregate root of a customer's shopping cart. Each customer
// has exactly one cart; adding an item already in the cart merges
// quantities instead of creating a duplicate line.
type Cart struct {
	customerID kernel.UUID
	lines      []Line

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart for the customer.
func NewCart(customerID kernel.UUID) (*Cart, error) {
	return RestoreCart(customerID, nil)
}

// RestoreCart reconstructs a cart from persistence. Duplicate lines for the
// same catalog item are rejected.
func RestoreCart(customerID kernel.UUID, lines []Line) (*Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	seen := make(map[kernel.UUID]struct{}, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[line.foodItemID]; ok {
			return nil, errs.NewConflictError("foodItemID", line.foodItemID.String())
		}
		seen[line.foodItemID] = struct{}{}
	}

	return &Cart{
		customerID: customerID,
		lines:      lines,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// CustomerID returns the cart owner's identifier.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns the cart lines in their stored order.
func (c *Cart) Lines() []Line {
	return c.lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Add puts a catalog item into the cart. If a line for the item already
// exists its quantity grows by the given amount; otherwise a new line is
// appended. Returns the affected line.
func (c *Cart) Add(foodItemID kernel.UUID, quantity int) (Line, error) {
	if err := foodItemID.Validate(); err != nil {
		return Line{}, err
	}
	if quantity < 1 {
		return Line{}, errs.NewValueIsInvalidError("quantity")
	}

	for i, line := range c.lines {
		if line.foodItemID.IsEqual(foodItemID) {
			c.lines[i].quantity += quantity
			return c.lines[i], nil
		}
	}

	line, err := NewLine(foodItemID, quantity)
	if err != nil {
		return Line{}, err
	}
	c.lines = append(c.lines, line)
	return line, nil
}

// SetLineQuantity replaces the quantity of an existing line. A quantity of
// zero or less removes the line. Reports whether the line still exists
// afterwards.
func (c *Cart) SetLineQuantity(lineID kernel.UUID, quantity int) (bool, error) {
	for i, line := range c.lines {
		if !line.id.IsEqual(lineID) {
			continue
		}
		if quantity < 1 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return false, nil
		}
		c.lines[i].quantity = quantity
		return true, nil
	}

	return false, errs.NewObjectNotFoundError("cart line", lineID.String())
}

// RemoveLines drops the given lines from the cart. Unknown IDs are ignored
// so checkout can clear lines it already consumed.
func (c *Cart) RemoveLines(lineIDs []kernel.UUID) {
	if len(lineIDs) == 0 {
		return
	}
	drop := make(map[kernel.UUID]struct{}, len(lineIDs))
	for _, id := range lineIDs {
		drop[id] = struct{}{}
	}

	kept := c.lines[:0]
	for _, line := range c.lines {
		if _, ok := drop[line.id]; !ok {
			kept = append(kept, line)
		}
	}
	c.lines = kept
}

// Validate ensures the cart was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

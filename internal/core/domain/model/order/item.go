package order

import (
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when using a zero-value Item.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"Item must be created via NewItem constructor")

// Item is an immutable snapshot of one cart line taken at order time: the
// food item's identity, name and prices as they were at checkout. Later
// catalog price changes never alter an existing order.
type Item struct {
	foodItemID    kernel.UUID
	name          string
	quantity      int
	price         kernel.Money
	discountPrice *kernel.Money
	guard         guard.ConstructorGuard
}

// NewItem creates a validated order item snapshot.
// Quantity must be positive; price must be non-negative; a discount price,
// when present, must be non-negative as well.
func NewItem(
	foodItemID kernel.UUID,
	name string,
	quantity int,
	price kernel.Money,
	discountPrice *kernel.Money,
) (Item, error) {
	if err := foodItemID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if price.IsNegative() {
		return Item{}, errs.NewValueIsInvalidError("price")
	}
	if discountPrice != nil && discountPrice.IsNegative() {
		return Item{}, errs.NewValueIsInvalidError("discountPrice")
	}

	return Item{
		foodItemID:    foodItemID,
		name:          name,
		quantity:      quantity,
		price:         price,
		discountPrice: discountPrice,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// FoodItemID returns the catalog identity of the snapshotted item.
func (i Item) FoodItemID() kernel.UUID {
	return i.foodItemID
}

// Name returns the item name as it was at checkout.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the regular price at checkout.
func (i Item) Price() kernel.Money {
	return i.price
}

// DiscountPrice returns the discounted price at checkout, or nil.
func (i Item) DiscountPrice() *kernel.Money {
	return i.discountPrice
}

// EffectivePrice returns the discount price when present, else the regular
// price.
func (i Item) EffectivePrice() kernel.Money {
	if i.discountPrice != nil {
		return *i.discountPrice
	}
	return i.price
}

// LineTotal returns effective price times quantity.
func (i Item) LineTotal() kernel.Money {
	return i.EffectivePrice().MulQuantity(i.quantity)
}

// Validate ensures the item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

package commands

import (
	"context"
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"
)

// ErrCartIsEmpty is returned when checkout runs against a cart with no
// lines.
var ErrCartIsEmpty = errors.New("cart is empty")

// orderNumberAttempts bounds the regenerate-and-retry loop on order number
// collisions.
const orderNumberAttempts = 3

// CreatedOrder describes one order produced by a checkout.
type CreatedOrder struct {
	OrderID     kernel.UUID
	Number      order.Number
	SellerID    kernel.UUID
	FinalAmount kernel.Money
}

// SellerFailure describes a seller group whose order could not be created.
// The cart lines of a failed group stay in the cart.
type SellerFailure struct {
	SellerID kernel.UUID
	Err      error
}

// CheckoutResult is the outcome of a checkout: the orders that were
// created, the seller groups that failed, and cart lines whose food item
// no longer exists in the catalog. All can be non-empty at once; one
// seller's failure never rolls back another seller's order, and a
// vanished item only blocks its own line.
type CheckoutResult struct {
	Created      []CreatedOrder
	Failures     []SellerFailure
	MissingItems []kernel.UUID
}

// CheckoutCommandHandler turns carts into orders. Cart lines are grouped
// by seller and every group runs in its own transaction: the order insert
// and the removal of that seller's cart lines commit together, while other
// groups proceed independently.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	catalog    ports.CatalogGateway
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory, catalog ports.CatalogGateway) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the checkout. Prices are snapshotted from the catalog
// at this moment; later catalog changes do not touch created orders.
// Order numbers that collide with existing ones are regenerated up to
// three times before the seller group is reported as failed. Lines whose
// food item vanished from the catalog are reported and stay in the cart;
// they never block other lines.
func (h CheckoutCommandHandler) Handle(ctx context.Context, command CheckoutCommand) (CheckoutResult, error) {
	if err := command.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	lines, err := h.loadCartLines(ctx, command.CustomerID())
	if err != nil {
		return CheckoutResult{}, err
	}
	if len(lines) == 0 {
		return CheckoutResult{}, ErrCartIsEmpty
	}

	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.FoodItemID())
	}
	catalogItems, err := h.catalog.GetItems(ctx, ids)
	if err != nil {
		return CheckoutResult{}, err
	}

	groups := groupBySeller(lines, catalogItems)

	var result CheckoutResult
	for _, line := range lines {
		if _, ok := catalogItems[line.FoodItemID()]; !ok {
			result.MissingItems = append(result.MissingItems, line.FoodItemID())
		}
	}
	for _, group := range groups {
		created, groupErr := h.createSellerOrder(ctx, command, group, catalogItems)
		if groupErr != nil {
			result.Failures = append(result.Failures, SellerFailure{
				SellerID: group.sellerID,
				Err:      groupErr,
			})
			continue
		}
		result.Created = append(result.Created, created)
	}

	return result, nil
}

func (h CheckoutCommandHandler) loadCartLines(ctx context.Context, customerID kernel.UUID) ([]cart.Line, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.CartRepository().Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return aggregate.Lines(), nil
}

// sellerGroup is one seller's slice of the cart.
type sellerGroup struct {
	sellerID kernel.UUID
	lines    []cart.Line
}

// groupBySeller splits cart lines by the selling restaurant, preserving
// the order sellers first appear in the cart.
func groupBySeller(lines []cart.Line, catalogItems map[kernel.UUID]ports.CatalogItem) []sellerGroup {
	index := make(map[kernel.UUID]int)
	var groups []sellerGroup

	for _, line := range lines {
		item, ok := catalogItems[line.FoodItemID()]
		if !ok {
			continue
		}
		i, seen := index[item.SellerID]
		if !seen {
			i = len(groups)
			index[item.SellerID] = i
			groups = append(groups, sellerGroup{sellerID: item.SellerID})
		}
		groups[i].lines = append(groups[i].lines, line)
	}

	return groups
}

// createSellerOrder runs one seller group in its own transaction. On an
// order number collision the whole transaction is retried with a fresh
// number; postgres aborts the transaction on the failed insert, so a new
// unit of work is required per attempt.
func (h CheckoutCommandHandler) createSellerOrder(
	ctx context.Context,
	command CheckoutCommand,
	group sellerGroup,
	catalogItems map[kernel.UUID]ports.CatalogItem,
) (CreatedOrder, error) {
	items := make([]order.Item, 0, len(group.lines))
	lineIDs := make([]kernel.UUID, 0, len(group.lines))
	for _, line := range group.lines {
		catalogItem := catalogItems[line.FoodItemID()]
		item, err := order.NewItem(
			catalogItem.ID, catalogItem.Name, line.Quantity(),
			catalogItem.Price, catalogItem.DiscountPrice,
		)
		if err != nil {
			return CreatedOrder{}, err
		}
		items = append(items, item)
		lineIDs = append(lineIDs, line.ID())
	}

	var lastErr error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		aggregate, err := order.NewOrder(
			kernel.NewUUID(),
			order.GenerateNumber(time.Now()),
			command.CustomerID(),
			group.sellerID,
			items,
			command.DeliveryAddress(),
			command.PaymentMethod(),
			command.SpecialInstructions(),
		)
		if err != nil {
			return CreatedOrder{}, err
		}

		err = h.persistSellerOrder(ctx, aggregate, lineIDs)
		if err == nil {
			return CreatedOrder{
				OrderID:     aggregate.ID(),
				Number:      aggregate.Number(),
				SellerID:    group.sellerID,
				FinalAmount: aggregate.FinalAmount(),
			}, nil
		}
		lastErr = err
		if !errors.Is(err, errs.ErrConflict) {
			break
		}
	}

	return CreatedOrder{}, lastErr
}

func (h CheckoutCommandHandler) persistSellerOrder(
	ctx context.Context,
	aggregate *order.Order,
	lineIDs []kernel.UUID,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.CartRepository().DeleteLines(ctx, lineIDs); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

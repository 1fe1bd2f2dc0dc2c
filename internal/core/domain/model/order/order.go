package order

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

// Pricing policy constants. These are fixed marketplace policy, not
// per-seller business rules requiring dynamic lookup.
const (
	// DeliveryChargePaise is the flat delivery charge applied to every order.
	DeliveryChargePaise int64 = 3000

	// TaxRatePercent is the tax rate applied to the subtotal.
	TaxRatePercent int64 = 5
)

// Default tracking notes, written when a transition carries no caller note.
const (
	notePlaced   = "Order placed successfully"
	noteAssigned = "Order ready for pickup. Delivery agent assigned."
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the order ledger. It owns the item
// snapshots and the append-only tracking log, and it is the only place order
// status changes: every mutating method appends exactly one tracking event
// and updates the cached status in the same step, so the cached status can
// never drift from the latest event.
//
// Invariants:
//   - finalAmount == subtotal + deliveryCharge + taxAmount
//   - sellerID is immutable after creation
//   - agentID is nil until assignment
//   - the tracking log is append-only with non-decreasing timestamps
//   - status always equals the latest tracking event's status
type Order struct {
	id         kernel.UUID
	number     Number
	customerID kernel.UUID
	sellerID   kernel.UUID

	items []Item

	subtotal       kernel.Money
	deliveryCharge kernel.Money
	taxAmount      kernel.Money
	finalAmount    kernel.Money

	deliveryAddress     string
	paymentMethod       string
	specialInstructions string

	status  Status
	agentID *kernel.UUID
	events  []TrackingEvent

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new order in Pending status from checkout input.
//
// The subtotal is computed from item effective prices, the flat delivery
// charge and 5% tax are applied, and the initial "pending" tracking event is
// appended in the same step. Items must be non-empty; the delivery address
// and payment method are required.
func NewOrder(
	id kernel.UUID,
	number Number,
	customerID kernel.UUID,
	sellerID kernel.UUID,
	items []Item,
	deliveryAddress string,
	paymentMethod string,
	specialInstructions string,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		number.Validate(),
		customerID.Validate(),
		sellerID.Validate(),
	); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if deliveryAddress == "" {
		return nil, errs.NewValueIsRequiredError("deliveryAddress")
	}
	if paymentMethod == "" {
		return nil, errs.NewValueIsRequiredError("paymentMethod")
	}

	subtotal := kernel.Zero()
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	deliveryCharge := kernel.NewMoney(DeliveryChargePaise)
	taxAmount := subtotal.Percent(TaxRatePercent)

	now := time.Now().UTC()
	o := &Order{
		id:                  id,
		number:              number,
		customerID:          customerID,
		sellerID:            sellerID,
		items:               items,
		subtotal:            subtotal,
		deliveryCharge:      deliveryCharge,
		taxAmount:           taxAmount,
		finalAmount:         subtotal.Add(deliveryCharge).Add(taxAmount),
		deliveryAddress:     deliveryAddress,
		paymentMethod:       paymentMethod,
		specialInstructions: specialInstructions,
		createdAt:           now,
		updatedAt:           now,
		guard:               guard.NewConstructorGuard(),
	}

	if err := o.appendEvent(Pending, notePlaced, nil); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence, including
// its item snapshots and tracking log. Monetary fields are taken as stored;
// the totals invariant and the status/agent and status/latest-event
// consistency rules are re-checked so corrupted rows fail loudly instead of
// flowing into the workflow.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	customerID kernel.UUID,
	sellerID kernel.UUID,
	items []Item,
	subtotal kernel.Money,
	deliveryCharge kernel.Money,
	taxAmount kernel.Money,
	finalAmount kernel.Money,
	deliveryAddress string,
	paymentMethod string,
	specialInstructions string,
	status Status,
	agentID *kernel.UUID,
	events []TrackingEvent,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		number.Validate(),
		customerID.Validate(),
		sellerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if agentID != nil {
		if err := agentID.Validate(); err != nil {
			return nil, err
		}
	}
	if err := status.ValidateCanHaveAgent(agentID != nil); err != nil {
		return nil, err
	}
	if !finalAmount.IsEqual(subtotal.Add(deliveryCharge).Add(taxAmount)) {
		return nil, errs.NewValueIsInvalidError("finalAmount")
	}
	if len(events) == 0 {
		return nil, errs.NewValueIsRequiredError("tracking events")
	}
	latest := events[len(events)-1]
	if latest.Status() != status {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("cached status differs from the latest tracking event"))
	}

	return &Order{
		id:                  id,
		number:              number,
		customerID:          customerID,
		sellerID:            sellerID,
		items:               items,
		subtotal:            subtotal,
		deliveryCharge:      deliveryCharge,
		taxAmount:           taxAmount,
		finalAmount:         finalAmount,
		deliveryAddress:     deliveryAddress,
		paymentMethod:       paymentMethod,
		specialInstructions: specialInstructions,
		status:              status,
		agentID:             agentID,
		events:              events,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// AdvanceBySeller moves the order one step along the preparation path
// (Pending -> Confirmed -> Preparing) on behalf of the seller.
//
// The caller must be the order's seller; anyone else gets a
// NotAuthorizedError and the order is left untouched. Non-adjacent jumps
// and moves out of a terminal status fail with InvalidTransitionError.
func (o *Order) AdvanceBySeller(sellerID kernel.UUID, next Status, notes string) error {
	if !o.sellerID.IsEqual(sellerID) {
		return errs.NewNotAuthorizedError("order "+o.id.String(), sellerID.String())
	}

	newStatus, err := o.status.AdvancePreparation(next)
	if err != nil {
		return err
	}

	return o.appendEvent(newStatus, notes, nil)
}

// AssignAgent hands the order to a delivery agent on behalf of the seller.
// The order moves to Ready, the agent is recorded, and a tracking event is
// appended, all in one step. The availability flip for the agent is the
// workflow engine's responsibility and happens in the same transaction.
//
// Assignment is only valid from Confirmed or Preparing.
func (o *Order) AssignAgent(sellerID kernel.UUID, agentID kernel.UUID, notes string) error {
	if !o.sellerID.IsEqual(sellerID) {
		return errs.NewNotAuthorizedError("order "+o.id.String(), sellerID.String())
	}
	if err := agentID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	if notes == "" {
		notes = noteAssigned
	}
	if err = o.appendEvent(newStatus, notes, nil); err != nil {
		return err
	}
	o.agentID = &agentID
	return nil
}

// AdvanceByAgent moves the order along the delivery path
// (Ready -> OutForDelivery -> Delivered) on behalf of the assigned agent,
// optionally geotagging the tracking event.
//
// The caller must be the assigned agent. Releasing the agent's availability
// on Delivered is the workflow engine's responsibility.
func (o *Order) AdvanceByAgent(agentID kernel.UUID, next Status, notes string, location *kernel.GeoPoint) error {
	if o.agentID == nil || !o.agentID.IsEqual(agentID) {
		return errs.NewNotAuthorizedError("order "+o.id.String(), agentID.String())
	}

	newStatus, err := o.status.AdvanceDelivery(next)
	if err != nil {
		return err
	}

	return o.appendEvent(newStatus, notes, location)
}

// Cancel moves the order to the Cancelled terminal status. Permitted for
// the order's seller or its assigned delivery agent, from any non-terminal
// status.
func (o *Order) Cancel(actorID kernel.UUID, notes string) error {
	isSeller := o.sellerID.IsEqual(actorID)
	isAssignedAgent := o.agentID != nil && o.agentID.IsEqual(actorID)
	if !isSeller && !isAssignedAgent {
		return errs.NewNotAuthorizedError("order "+o.id.String(), actorID.String())
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	return o.appendEvent(newStatus, notes, nil)
}

// appendEvent is the single write path for status changes: it appends one
// tracking event and updates the cached status together. Event timestamps
// are clamped to be non-decreasing even if the wall clock steps backwards.
func (o *Order) appendEvent(status Status, notes string, location *kernel.GeoPoint) error {
	now := time.Now().UTC()
	if len(o.events) > 0 {
		if last := o.events[len(o.events)-1].CreatedAt(); now.Before(last) {
			now = last
		}
	}

	event, err := NewTrackingEvent(status, notes, location, now)
	if err != nil {
		return err
	}

	o.events = append(o.events, event)
	o.status = status
	o.updatedAt = now
	return nil
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() Number {
	return o.number
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// SellerID returns the selling restaurant's identifier.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// Items returns the immutable item snapshots.
func (o *Order) Items() []Item {
	return o.items
}

// Subtotal returns the sum of item line totals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// DeliveryCharge returns the flat delivery charge.
func (o *Order) DeliveryCharge() kernel.Money {
	return o.deliveryCharge
}

// TaxAmount returns the tax applied to the subtotal.
func (o *Order) TaxAmount() kernel.Money {
	return o.taxAmount
}

// FinalAmount returns subtotal + delivery charge + tax.
func (o *Order) FinalAmount() kernel.Money {
	return o.finalAmount
}

// DeliveryAddress returns the address the order ships to.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// PaymentMethod returns the stored payment method. It is recorded only;
// no charging happens anywhere in this system.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// SpecialInstructions returns the customer's free-form instructions.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// Status returns the current status, always equal to the latest tracking
// event's status.
func (o *Order) Status() Status {
	return o.status
}

// Agent returns the assigned delivery agent's ID, or nil before assignment.
func (o *Order) Agent() *kernel.UUID {
	return o.agentID
}

// Events returns the append-only tracking log in creation order.
func (o *Order) Events() []TrackingEvent {
	return o.events
}

// LatestEvent returns the most recent tracking event.
func (o *Order) LatestEvent() TrackingEvent {
	return o.events[len(o.events)-1]
}

// CreatedAt returns the order creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last status change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

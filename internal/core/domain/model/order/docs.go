// Package order provides domain entities and business logic for the order
// ledger of the food marketplace. It implements the Order aggregate root
// with its item snapshots, pricing, and append-only tracking log.
//
// The package includes:
//   - Order: The aggregate root holding identity, totals, agent assignment, and the tracking log
//   - Status: A state machine that enforces valid order status transitions
//   - Item: An immutable snapshot of a purchased catalog item
//   - TrackingEvent: A single append-only entry in the order's status history
//   - Number: The human-readable order number ("ORD" + 8 digits + MMDD)
//
// Key business rules:
//   - The final amount always equals subtotal + delivery charge + tax
//   - Status moves one step at a time along pending -> confirmed -> preparing,
//     reaches ready only through agent assignment, and then
//     ready -> out_for_delivery -> delivered; cancellation is allowed from any
//     non-terminal status
//   - The cached status always equals the latest tracking event's status,
//     because both change in the same step
//   - Sellers drive preparation and assignment; only the assigned agent drives
//     delivery progress
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

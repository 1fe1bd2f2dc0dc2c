// Package cart provides the shopping cart aggregate for the food
// marketplace. A cart belongs to exactly one customer and holds at most one
// line per catalog item; re-adding an item merges quantities. Checkout
// consumes lines per seller through RemoveLines, leaving lines from other
// sellers untouched.
package cart

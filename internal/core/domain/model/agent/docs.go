// Package agent provides the delivery agent availability registry record.
// Agents flip to busy when an order is assigned and back to available when
// the delivery is completed or cancelled; device heartbeats only refresh
// the last-active timestamp.
package agent

// Package services contains domain services implementing business logic
// that spans multiple aggregates.
//
// AgentAssigner coordinates the Order and Availability aggregates during
// agent assignment, keeping the rule that an order reaches ready exactly
// when its agent leaves the available pool.
package services

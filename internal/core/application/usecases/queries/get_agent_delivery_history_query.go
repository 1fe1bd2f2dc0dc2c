package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrGetAgentDeliveryHistoryQueryIsNotConstructed = errors.New(
	"GetAgentDeliveryHistoryQuery must be created via NewGetAgentDeliveryHistoryQuery constructor",
)

// historyLimit caps the delivery history listing.
const historyLimit = 50

// GetAgentDeliveryHistoryQuery retrieves an agent's completed deliveries,
// newest first.
type GetAgentDeliveryHistoryQuery struct {
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentDeliveryHistoryQuery creates a delivery history query.
func NewGetAgentDeliveryHistoryQuery(agentID kernel.UUID) (GetAgentDeliveryHistoryQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAgentDeliveryHistoryQuery{}, err
	}

	return GetAgentDeliveryHistoryQuery{
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentDeliveryHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentDeliveryHistoryQueryIsNotConstructed)
}

// AgentID returns the agent whose history is requested.
func (q GetAgentDeliveryHistoryQuery) AgentID() kernel.UUID {
	return q.agentID
}

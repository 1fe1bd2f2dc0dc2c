// Package agentrepo provides persistence for delivery agent availability
// records. Each agent owns exactly one row keyed by the agent ID.
package agentrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/agent"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AvailabilityDTO represents an agent availability row.
type AvailabilityDTO struct {
	AgentID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	IsAvailable bool      `gorm:"index"`
	LastActive  time.Time `gorm:"index;autoUpdateTime:false"`
}

// TableName specifies the database table name for availability records.
func (AvailabilityDTO) TableName() string {
	return "agent_availability"
}

// fromDomain converts the availability aggregate to its row.
func fromDomain(aggregate *agent.Availability) AvailabilityDTO {
	return AvailabilityDTO{
		AgentID:     aggregate.AgentID().Bytes(),
		IsAvailable: aggregate.IsAvailable(),
		LastActive:  aggregate.LastActive(),
	}
}

// toDomain rebuilds the availability aggregate from its row.
func toDomain(dto AvailabilityDTO) (*agent.Availability, error) {
	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}
	return agent.RestoreAvailability(agentID, dto.IsAvailable, dto.LastActive)
}

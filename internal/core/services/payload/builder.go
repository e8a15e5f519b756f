package payload

import (
	"time"

	"github.com/jonboulle/clockwork"

	"standby-builder/internal/core/domain"
)

// TimestampLayout is the format of DispatchPayload.Timestamp.
const TimestampLayout = time.RFC3339

// Builder reshapes a NormalizedConfig into the pipeline's dispatch contract.
type Builder struct {
	clock clockwork.Clock
}

// NewBuilder creates a Builder that stamps payloads with clock. A nil clock
// means the real wall clock.
func NewBuilder(clock clockwork.Clock) *Builder {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Builder{clock: clock}
}

// Build maps every config section onto its payload section. The section
// conversions only compile while both sides declare the same fields, so a
// config field cannot be added without a destination in the payload.
func (b *Builder) Build(cfg domain.NormalizedConfig) domain.DispatchPayload {
	return domain.DispatchPayload{
		EventType: domain.EventTypeCreateStandby,
		Timestamp: b.clock.Now().UTC().Format(TimestampLayout),
		ClientPayload: domain.ClientPayload{
			Primary:       domain.PrimaryPayload(cfg.Primary),
			Standby:       domain.StandbyPayload(cfg.Standby),
			RMAN:          domain.RMANPayload(cfg.ReplicationMethod),
			Network:       domain.NetworkPayload(cfg.Network),
			Options:       domain.OptionsPayload(cfg.Options),
			Notifications: domain.NotificationsPayload(cfg.Notifications),
			Approvals:     domain.ApprovalsPayload(cfg.ApprovalGates),
		},
	}
}

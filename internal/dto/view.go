package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/watchearn/internal/domain"
)

type SubmitViewRequestDTO struct {
	StartedAt time.Time `json:"started_at" example:"2024-05-01T11:58:00Z"`
	EndedAt   time.Time `json:"ended_at" example:"2024-05-01T12:00:00Z"`
	Completed bool      `json:"completed" example:"true"`
}

type SubmitViewResponseDTO struct {
	ViewID   int64              `json:"view_id" example:"42"`
	Earning  EarningDTO         `json:"earning"`
	Balance  BalanceResponseDTO `json:"balance"`
	Cooldown CooldownDTO        `json:"cooldown"`
}

type CooldownDTO struct {
	ID          uuid.UUID  `json:"id" example:"3f0c9c9e-8d1e-4a53-9b55-2f2f7b2b3c11"`
	Status      string     `json:"status" example:"active"`
	StartedAt   time.Time  `json:"started_at" example:"2024-05-01T12:00:00Z"`
	EndsAt      time.Time  `json:"ends_at" example:"2024-05-01T12:10:00Z"`
	RemainingMS int64      `json:"remaining_ms" example:"600000"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func NewCooldown(c *domain.Cooldown, now time.Time) CooldownDTO {
	out := CooldownDTO{
		ID:          c.ID,
		Status:      string(c.Status),
		StartedAt:   c.StartedAt,
		EndsAt:      c.EndsAt(),
		CompletedAt: c.CompletedAt,
	}
	if c.Status == domain.CooldownActive {
		out.RemainingMS = c.Remaining(now).Milliseconds()
	}
	return out
}

// DenialDTO is the body of a refused view or cooldown transition.
type DenialDTO struct {
	Message     string     `json:"message" example:"cooldown is active"`
	Code        string     `json:"code" example:"COOLDOWN_ACTIVE"`
	CooldownID  *uuid.UUID `json:"cooldown_id,omitempty"`
	RemainingMS int64      `json:"remaining_ms,omitempty" example:"354000"`
	RetryAt     *time.Time `json:"retry_at,omitempty"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/pkg/money"
)

type WithdrawalRequestDTO struct {
	Amount         decimal.Decimal   `json:"amount" swaggertype:"string" example:"10.00"`
	PaymentMethod  string            `json:"payment_method,omitempty" example:"paypal"`
	PaymentDetails map[string]string `json:"payment_details,omitempty"`
}

type PaymentInfoDTO struct {
	PaymentMethod  string            `json:"payment_method" example:"paypal"`
	PaymentDetails map[string]string `json:"payment_details"`
}

type WithdrawalDTO struct {
	ID             uuid.UUID         `json:"id" example:"7d7a4c1e-25f6-4b3e-8f19-1a6a0e5f2c10"`
	UserID         int               `json:"user_id,omitempty" example:"1"`
	Amount         string            `json:"amount" example:"10.00"`
	PaymentMethod  string            `json:"payment_method" example:"paypal"`
	PaymentDetails map[string]string `json:"payment_details,omitempty"`
	Status         string            `json:"status" example:"pending"`
	Notes          string            `json:"notes,omitempty"`
	CreatedAt      time.Time         `json:"created_at" example:"2024-05-01T12:00:00Z"`
	ProcessedAt    *time.Time        `json:"processed_at,omitempty"`
}

func NewWithdrawal(wd *domain.Withdrawal) WithdrawalDTO {
	return WithdrawalDTO{
		ID:             wd.ID,
		UserID:         wd.UserID,
		Amount:         money.Format(wd.Amount),
		PaymentMethod:  wd.PaymentMethod,
		PaymentDetails: wd.PaymentDetails,
		Status:         string(wd.Status),
		Notes:          wd.Notes,
		CreatedAt:      wd.CreatedAt,
		ProcessedAt:    wd.ProcessedAt,
	}
}

type ResolveWithdrawalRequestDTO struct {
	Outcome string `json:"outcome" example:"completed" enums:"completed,rejected"`
	Notes   string `json:"notes,omitempty" example:"paid out"`
}

type TotalsDTO struct {
	Amount string `json:"amount" example:"120.50"`
	Count  int    `json:"count" example:"42"`
}

type StatsDTO struct {
	Earnings             TotalsDTO `json:"earnings"`
	CompletedWithdrawals TotalsDTO `json:"completed_withdrawals"`
	PendingWithdrawals   TotalsDTO `json:"pending_withdrawals"`
}

func NewStats(s *domain.Stats) StatsDTO {
	totals := func(t domain.Totals) TotalsDTO {
		return TotalsDTO{Amount: money.Format(t.Amount), Count: t.Count}
	}
	return StatsDTO{
		Earnings:             totals(s.Earnings),
		CompletedWithdrawals: totals(s.CompletedWithdrawal),
		PendingWithdrawals:   totals(s.PendingWithdrawal),
	}
}

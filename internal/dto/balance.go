package dto

import (
	"time"

	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/pkg/money"
)

// Amounts are decimal strings with two places.
type BalanceResponseDTO struct {
	Balance           string `json:"balance" example:"12.00"`
	TotalEarned       string `json:"total_earned" example:"15.30"`
	PendingWithdrawal string `json:"pending_withdrawal" example:"3.30"`
	ViewsToday        int    `json:"views_today" example:"4"`
	MaxViewsPerDay    int    `json:"max_views_per_day,omitempty" example:"20"`
}

func NewBalance(b *domain.Balance, viewsToday int) BalanceResponseDTO {
	return BalanceResponseDTO{
		Balance:           money.Format(b.Balance),
		TotalEarned:       money.Format(b.TotalEarned),
		PendingWithdrawal: money.Format(b.PendingWithdrawal),
		ViewsToday:        viewsToday,
	}
}

type EarningDTO struct {
	ID       int64     `json:"id" example:"17"`
	VideoID  string    `json:"video_id" example:"dQw4w9WgXcQ"`
	Amount   string    `json:"amount" example:"0.01"`
	EarnedAt time.Time `json:"earned_at" example:"2024-05-01T12:00:00Z"`
}

func NewEarning(e *domain.EarningRecord) EarningDTO {
	return EarningDTO{
		ID:       e.ID,
		VideoID:  e.VideoID,
		Amount:   money.Format(e.Amount),
		EarnedAt: e.EarnedAt,
	}
}

type DailyEarningsDTO struct {
	Day    string `json:"day" example:"2024-05-01"`
	Amount string `json:"amount" example:"0.20"`
	Count  int    `json:"count" example:"20"`
}

func NewDailyEarnings(d domain.DailyEarnings) DailyEarningsDTO {
	return DailyEarningsDTO{
		Day:    d.Day.Format(time.DateOnly),
		Amount: money.Format(d.Amount),
		Count:  d.Count,
	}
}

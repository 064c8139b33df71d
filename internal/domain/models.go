package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID             int               `db:"id"`
	Login          string            `db:"login"`
	PasswordHash   string            `db:"password_hash"`
	Role           string            `db:"role"`
	IsActive       bool              `db:"is_active"`
	PaymentMethod  string            `db:"payment_method"`
	PaymentDetails map[string]string `db:"payment_details"`
	CreatedAt      time.Time         `db:"created_at"`
}

// Balance is the user's wallet row. Amounts are in cents.
// balance + pending_withdrawal never exceeds total_earned.
type Balance struct {
	ID                int       `db:"id"`
	UserID            int       `db:"user_id"`
	Balance           int64     `db:"balance"`
	TotalEarned       int64     `db:"total_earned"`
	PendingWithdrawal int64     `db:"pending_withdrawal"`
	DailyViewCount    int       `db:"daily_view_count"`
	DailyViewDay      time.Time `db:"daily_view_day"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type VideoMetadata struct {
	VideoID  string `json:"id"`
	IsActive bool   `json:"is_active"`
	Reward   int64  `json:"reward"`
}

type ViewEvent struct {
	ID         int64     `db:"id"`
	UserID     int       `db:"user_id"`
	VideoID    string    `db:"video_id"`
	IP         string    `db:"ip"`
	UserAgent  string    `db:"user_agent"`
	StartedAt  time.Time `db:"started_at"`
	EndedAt    time.Time `db:"ended_at"`
	Completed  bool      `db:"completed"`
	Allowed    bool      `db:"allowed"`
	DenyReason string    `db:"deny_reason"`
	CreatedAt  time.Time `db:"created_at"`
}

type EarningRecord struct {
	ID           int64     `db:"id"`
	UserID       int       `db:"user_id"`
	VideoID      string    `db:"video_id"`
	ViewID       int64     `db:"view_id"`
	Amount       int64     `db:"amount"`
	EarnedAt     time.Time `db:"earned_at"`
	WindowEndsAt time.Time `db:"window_ends_at"`
}

type DailyEarnings struct {
	Day    time.Time `db:"day"`
	Amount int64     `db:"amount"`
	Count  int       `db:"count"`
}

type CooldownStatus string

const (
	CooldownActive      CooldownStatus = "active"
	CooldownCompleted   CooldownStatus = "completed"
	CooldownInterrupted CooldownStatus = "interrupted"
)

type Cooldown struct {
	ID          uuid.UUID      `db:"id"`
	UserID      int            `db:"user_id"`
	ViewID      int64          `db:"view_id"`
	Status      CooldownStatus `db:"status"`
	StartedAt   time.Time      `db:"started_at"`
	Duration    time.Duration  `db:"duration_ms"`
	CompletedAt *time.Time     `db:"completed_at"`
	EndedAt     *time.Time     `db:"ended_at"`
}

func (c *Cooldown) EndsAt() time.Time {
	return c.StartedAt.Add(c.Duration)
}

// Remaining is zero once the cooldown has run its full duration.
func (c *Cooldown) Remaining(now time.Time) time.Duration {
	left := c.EndsAt().Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

func (c *Cooldown) Running(now time.Time) bool {
	return c.Status == CooldownActive && now.Before(c.EndsAt())
}

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalCompleted WithdrawalStatus = "completed"
	WithdrawalRejected  WithdrawalStatus = "rejected"
)

const (
	PaymentPayPal       = "paypal"
	PaymentBankTransfer = "bank_transfer"
	PaymentCrypto       = "crypto"
	PaymentCard         = "card"
)

type Withdrawal struct {
	ID             uuid.UUID         `db:"id"`
	UserID         int               `db:"user_id"`
	Amount         int64             `db:"amount"`
	PaymentMethod  string            `db:"payment_method"`
	PaymentDetails map[string]string `db:"payment_details"`
	Status         WithdrawalStatus  `db:"status"`
	Notes          string            `db:"notes"`
	CreatedAt      time.Time         `db:"created_at"`
	ProcessedAt    *time.Time        `db:"processed_at"`
}

type Totals struct {
	Amount int64 `db:"amount"`
	Count  int   `db:"count"`
}

type Stats struct {
	Earnings            Totals
	CompletedWithdrawal Totals
	PendingWithdrawal   Totals
}

package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/GlebRadaev/watchearn/internal/domain"
)

//go:generate mockgen -source=txmanager.go -destination=mock_txmanager.go -package=pg

type TransactionalFn func(ctx context.Context) error

type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

const (
	maxTxRetries  = 3
	txRetryBase   = 10 * time.Millisecond
	txRetryCapped = 200 * time.Millisecond
)

type hooksKey struct{}

// AfterCommit runs fn once the outermost transaction in ctx commits, and never when it
// rolls back or is retried. Without a transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	hooks, ok := ctx.Value(hooksKey{}).(*[]func())
	if !ok {
		fn()
		return
	}
	*hooks = append(*hooks, fn)
}

type txManager struct {
	pool Pool
}

func NewTXManager(pool Pool) TXManager {
	return &txManager{pool: pool}
}

// Begin runs fn in a transaction. A call made inside fn joins the outer transaction.
// Serialization failures and deadlocks are retried a bounded number of times and then
// reported as domain.ErrTransient.
func (m *txManager) Begin(ctx context.Context, fn TransactionalFn) error {
	if _, ok := txFrom(ctx); ok {
		return fn(ctx)
	}

	backoff := retry.WithCappedDuration(txRetryCapped, retry.NewExponential(txRetryBase))
	backoff = retry.WithMaxRetries(maxTxRetries, backoff)

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := m.run(ctx, fn)
		if IsRetryable(err) {
			zap.L().Warn("transaction conflict, retrying", zap.Int("attempt", attempt), zap.Error(err))
			return retry.RetryableError(err)
		}
		return err
	})
	if IsRetryable(err) {
		return fmt.Errorf("%w: %w", domain.ErrTransient, err)
	}
	return err
}

func (m *txManager) run(ctx context.Context, fn TransactionalFn) (err error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, context.Canceled) {
				zap.L().Error("rollback failed", zap.Error(rbErr))
			}
		}
	}()

	var hooks []func()
	txCtx := context.WithValue(withTx(ctx, tx), hooksKey{}, &hooks)
	if err = fn(txCtx); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	for _, hook := range hooks {
		hook()
	}
	return nil
}

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/calinovidiu96/vending-machine/internal/pkg/logging"
	"github.com/jackc/pgx/v5"
	"github.com/sethvargo/go-retry"
)

const (
	defaultMaxRetries  = 3
	defaultBackoffBase = 10 * time.Millisecond
)

type TxManager interface {
	WithinTransaction(ctx context.Context, txFn TxFunc) error
}

type TxFunc func(ctx context.Context, executor QueryExecuter) error

type TxOption func(tm *DelegateTxManager)

// WithIsoLevel sets the isolation level every transaction is started with.
func WithIsoLevel(level pgx.TxIsoLevel) TxOption {
	return func(tm *DelegateTxManager) {
		tm.isoLevel = level
	}
}

// WithRetries bounds how many times a transaction that failed with a
// serialization failure or deadlock is re-run from scratch.
func WithRetries(maxRetries uint64, backoffBase time.Duration) TxOption {
	return func(tm *DelegateTxManager) {
		tm.maxRetries = maxRetries
		tm.backoffBase = backoffBase
	}
}

func WithLogger(logger logging.Logger) TxOption {
	return func(tm *DelegateTxManager) {
		tm.logger = logger
	}
}

type DelegateTxManager struct {
	txBeginner TxBeginner
	logger     logging.Logger

	isoLevel    pgx.TxIsoLevel
	maxRetries  uint64
	backoffBase time.Duration
}

func NewDelegateTxManager(txBeginner TxBeginner, opts ...TxOption) *DelegateTxManager {
	tm := &DelegateTxManager{
		txBeginner:  txBeginner,
		logger:      logging.StdoutLogger,
		isoLevel:    pgx.ReadCommitted,
		maxRetries:  defaultMaxRetries,
		backoffBase: defaultBackoffBase,
	}

	for _, opt := range opts {
		opt(tm)
	}

	return tm
}

// WithinTransaction runs txFn inside a transaction. txFn may be invoked more
// than once, so it must not have side effects outside the executor it receives.
func (tm *DelegateTxManager) WithinTransaction(ctx context.Context, txFn TxFunc) error {
	backoff := retry.WithMaxRetries(tm.maxRetries, retry.NewExponential(tm.backoffBase))

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		attempt++

		err := tm.runOnce(ctx, txFn)
		if err != nil && IsSerializationFailure(err) {
			tm.logger.Warn("transaction conflict, retrying", "attempt", attempt, "error", err.Error())
			return retry.RetryableError(err)
		}

		return err
	})

	switch {
	case err == nil:
		return nil
	case IsSerializationFailure(err):
		return fmt.Errorf("%w: gave up after %d attempts: %w", ErrTransactionConflict, attempt, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTransactionConflict, err)
	default:
		return err
	}
}

func (tm *DelegateTxManager) runOnce(ctx context.Context, txFn TxFunc) error {
	tx, err := tm.txBeginner.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: tm.isoLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			tm.logger.Error("failed to rollback transaction", "error", err.Error())
		}
	}()

	err = txFn(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to execute logic within transaction: %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

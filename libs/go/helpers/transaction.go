package helpers

import (
	"context"
	"errors"
	"fmt"

	"github.com/chessclub/club-events-api/libs/go/db"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// serializationFailure is the SQLSTATE Postgres reports when a serializable
// transaction loses a conflict.
const (
	serializationFailure = "40001"
	uniqueViolation      = "23505"
)

// TxBeginner is satisfied by *pgxpool.Pool and pgx.Conn.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TransactionFunc is a function that executes within a database transaction
type TransactionFunc func(tx pgx.Tx) error

// WithTransaction runs fn inside a transaction, committing when fn returns nil
// and rolling back otherwise.
func WithTransaction(ctx context.Context, pool TxBeginner, fn TransactionFunc) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		// After a commit Rollback returns ErrTxClosed, which is expected.
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			logger.L().Error("Failed to rollback transaction", zap.Error(rollbackErr))
		}
	}()

	if err := fn(tx); err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// WithTransactionRetry retries WithTransaction up to maxRetries times while the
// failure is a serialization error.
func WithTransactionRetry(ctx context.Context, pool TxBeginner, maxRetries int, fn TransactionFunc) error {
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		err = WithTransaction(ctx, pool, fn)
		if err == nil {
			return nil
		}
		if !IsSerializationFailure(err) || attempt == maxRetries {
			break
		}
		logger.L().Warn("Transaction failed due to serialization error, retrying",
			zap.Int("attempt", attempt+1),
			zap.Int("max_retries", maxRetries),
			zap.Error(err),
		)
	}
	return err
}

// IsSerializationFailure reports whether err wraps a Postgres 40001 error.
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == serializationFailure
}

// IsUniqueViolation reports whether err wraps a Postgres 23505 error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// TxRunner runs a unit of work against a Querier bound to one transaction.
// Services depend on this instead of a pool so tests can run the work
// against a mock Querier.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(q db.Querier) error) error
}

// PoolTxRunner is the pgx-backed TxRunner.
type PoolTxRunner struct {
	Pool       TxBeginner
	MaxRetries int
}

// NewPoolTxRunner retries serialization failures up to three times.
func NewPoolTxRunner(pool TxBeginner) *PoolTxRunner {
	return &PoolTxRunner{Pool: pool, MaxRetries: 3}
}

func (r *PoolTxRunner) RunInTx(ctx context.Context, fn func(q db.Querier) error) error {
	return WithTransactionRetry(ctx, r.Pool, r.MaxRetries, func(tx pgx.Tx) error {
		return fn(db.New(tx))
	})
}

package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kly4ev/SDA-BookingService/pkg/dbmetrics"
	"github.com/kly4ev/SDA-BookingService/pkg/txmanager"
)

const (
	maxRetries   = 3
	retryBackoff = 10 * time.Millisecond
)

// TransactionManager вариант transaction manager'а для чистого *sql.DB
// Используется, когда метрики выключены и БД не обёрнута в dbmetrics.DB
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает новый transaction manager поверх *sql.DB
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn внутри транзакции SERIALIZABLE с повторами
// Семантика идентична txmanager.TransactionManager.DoSerializable
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff * time.Duration(attempt)):
			}
		}

		err := m.runOnce(ctx, fn)
		if err == nil {
			return nil
		}

		if !txmanager.IsRetryableError(err) {
			return err
		}

		lastErr = err
	}

	return fmt.Errorf("%w: retries exhausted: %v", txmanager.ErrTxFailed, lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: begin: %v", txmanager.ErrTxFailed, err)
	}

	txCtx := dbmetrics.WithExecutor(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		if txmanager.IsRetryableError(err) {
			return err
		}
		return fmt.Errorf("%w: commit: %v", txmanager.ErrTxFailed, err)
	}

	return nil
}

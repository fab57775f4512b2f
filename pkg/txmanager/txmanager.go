package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/kly4ev/SDA-BookingService/pkg/dbmetrics"
)

const (
	// maxRetries максимальное число попыток выполнения сериализуемой транзакции
	maxRetries = 3

	// retryBackoff базовая задержка между повторными попытками
	retryBackoff = 10 * time.Millisecond
)

// Postgres error codes, при которых транзакцию безопасно повторить
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// ErrTxFailed возвращается, когда транзакция не может быть выполнена
var ErrTxFailed = errors.New("txmanager: transaction failed")

// TxBeginner интерфейс для начала транзакций
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции внутри сериализуемых транзакций
// Используется для операций, требующих строгой изоляции (создание бронирования
// с проверкой доступности слота)
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает новый transaction manager
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn внутри транзакции с уровнем изоляции SERIALIZABLE
// Транзакционный executor передается через контекст (dbmetrics.WithExecutor).
// При serialization failure или deadlock транзакция повторяется до maxRetries раз.
// Бизнес-ошибки из fn не повторяются и возвращаются как есть.
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

		if !IsRetryableError(err) {
			return err
		}

		lastErr = err
	}

	return fmt.Errorf("%w: retries exhausted: %v", ErrTxFailed, lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTxFailed, err)
	}

	txCtx := dbmetrics.WithExecutor(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		if IsRetryableError(err) {
			return err
		}
		return fmt.Errorf("%w: commit: %v", ErrTxFailed, err)
	}

	return nil
}

// IsRetryableError возвращает true для ошибок Postgres, при которых
// сериализуемую транзакцию безопасно выполнить повторно
func IsRetryableError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgSerializationFailure || string(pqErr.Code) == pgDeadlockDetected
	}
	return false
}

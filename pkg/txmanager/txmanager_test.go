package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kly4ev/SDA-BookingService/pkg/dbmetrics"
)

type fakeTx struct {
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs   []*fakeTx
	calls int
}

func (b *fakeBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx := b.txs[b.calls]
	b.calls++
	return tx, nil
}

func serializationFailure() error {
	return &pq.Error{Code: "40001"}
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, IsRetryableError(&pq.Error{Code: "40001"}), "serialization failure")
	assert.True(t, IsRetryableError(&pq.Error{Code: "40P01"}), "deadlock")
	assert.True(t, IsRetryableError(fmt.Errorf("wrapped: %w", &pq.Error{Code: "40001"})))

	assert.False(t, IsRetryableError(&pq.Error{Code: "23505"}), "unique violation is not retryable")
	assert.False(t, IsRetryableError(errors.New("plain error")))
	assert.False(t, IsRetryableError(nil))
}

func TestDoSerializable_CommitsOnSuccess(t *testing.T) {
	tx := &fakeTx{}
	mgr := NewTransactionManager(&fakeBeginner{txs: []*fakeTx{tx}})

	var sawTx bool
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		sawTx = dbmetrics.IsInTransaction(ctx)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, sawTx, "fn must run with the tx executor in context")
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestDoSerializable_RollsBackOnBusinessError(t *testing.T) {
	tx := &fakeTx{}
	mgr := NewTransactionManager(&fakeBeginner{txs: []*fakeTx{tx}})

	businessErr := errors.New("slot is taken")
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		return businessErr
	})

	assert.ErrorIs(t, err, businessErr, "business errors pass through unchanged")
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}

func TestDoSerializable_RetriesSerializationFailure(t *testing.T) {
	beginner := &fakeBeginner{txs: []*fakeTx{{}, {}}}
	mgr := NewTransactionManager(beginner)

	attempts := 0
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts == 1 {
			return serializationFailure()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 2, beginner.calls)
}

func TestDoSerializable_ExhaustsRetries(t *testing.T) {
	beginner := &fakeBeginner{txs: []*fakeTx{{}, {}, {}}}
	mgr := NewTransactionManager(beginner)

	attempts := 0
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return serializationFailure()
	})

	assert.ErrorIs(t, err, ErrTxFailed)
	assert.Equal(t, 3, attempts)
}

func TestDoSerializable_RetriesCommitConflict(t *testing.T) {
	beginner := &fakeBeginner{txs: []*fakeTx{{commitErr: serializationFailure()}, {}}}
	mgr := NewTransactionManager(beginner)

	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, beginner.calls)
	assert.True(t, beginner.txs[1].committed)
}

package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
)

// fakeTx embeds pgx.Tx for the method set and records lifecycle calls.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error   { t.committed = true; return nil }
func (t *fakeTx) Rollback(ctx context.Context) error { t.rolledBack = true; return nil }

type fakeBeginner struct {
	tx  *fakeTx
	err error
}

func (b *fakeBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

func TestWithTransactionCommitsOnSuccess(t *testing.T) {
	tx := &fakeTx{}
	err := WithTransaction(context.Background(), &fakeBeginner{tx: tx}, func(ctx context.Context, _ pgx.Tx) error {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("transaction context has no deadline")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithTransaction() error = %v", err)
	}
	if !tx.committed {
		t.Error("transaction was not committed")
	}
	if tx.rolledBack {
		t.Error("successful transaction was rolled back")
	}
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	tx := &fakeTx{}
	boom := errors.New("constraint violated")

	err := WithTransaction(context.Background(), &fakeBeginner{tx: tx}, func(ctx context.Context, _ pgx.Tx) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithTransaction() error = %v, want the fn error", err)
	}
	if tx.committed {
		t.Error("failed transaction was committed")
	}
	if !tx.rolledBack {
		t.Error("failed transaction was not rolled back")
	}
}

func TestWithTransactionBeginFailure(t *testing.T) {
	beginErr := errors.New("pool exhausted")
	err := WithTransaction(context.Background(), &fakeBeginner{err: beginErr}, func(ctx context.Context, _ pgx.Tx) error {
		t.Error("fn ran despite Begin failing")
		return nil
	})
	if !errors.Is(err, beginErr) {
		t.Errorf("WithTransaction() error = %v, want the begin error", err)
	}
}

func TestWithTransactionRollsBackOnPanic(t *testing.T) {
	tx := &fakeTx{}

	defer func() {
		if recover() == nil {
			t.Fatal("panic was swallowed")
		}
		if tx.committed {
			t.Error("panicking transaction was committed")
		}
		if !tx.rolledBack {
			t.Error("panicking transaction was not rolled back")
		}
	}()

	_ = WithTransaction(context.Background(), &fakeBeginner{tx: tx}, func(ctx context.Context, _ pgx.Tx) error {
		panic("mid-transaction failure")
	})
}

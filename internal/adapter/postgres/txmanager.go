package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TxManager runs functions inside a single PostgreSQL transaction carried
// by the context. Repositories pick it up through QuerierFromCtx.
type TxManager struct {
	db DB
}

func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx commits when fn returns nil and rolls back otherwise, including
// when fn panics. A ctx that already carries a transaction is reused, so
// nested calls share the outer commit. Isolation is Read Committed.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return MapError(fmt.Errorf("begin transaction: %w", err), "transaction", "")
	}

	// finished stays false only when fn panics.
	finished := false
	defer func() {
		if !finished {
			_ = rollback(ctx, tx, nil)
		}
	}()

	err = fn(withTx(ctx, tx))
	finished = true
	if err != nil {
		return rollback(ctx, tx, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return MapError(fmt.Errorf("commit transaction: %w", err), "transaction", "")
	}
	return nil
}

// rollback aborts tx on a context that survives cancellation of ctx and
// joins any rollback failure onto cause.
func rollback(ctx context.Context, tx pgx.Tx, cause error) error {
	err := tx.Rollback(context.WithoutCancel(ctx))
	if err == nil || errors.Is(err, pgx.ErrTxClosed) {
		return cause
	}
	return errors.Join(cause, fmt.Errorf("rollback: %w", err))
}

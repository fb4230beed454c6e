package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/leave-api/internal/application/leave"
	"github.com/jhoicas/leave-api/internal/domain/repository"
)

var _ leave.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con un repo de solicitudes atado a la
// tx (con lectura bloqueante en GetByID) y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(leaveRepo repository.LeaveRequestRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	leaveRepo := &LeaveRepo{q: tx, forUpdate: true}
	if err := fn(leaveRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

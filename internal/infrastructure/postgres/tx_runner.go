package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acamilodelgado0305/tercerosms/internal/application/terceros"
)

// Ensure TxRunner implements terceros.TxRunner.
var _ terceros.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos atados a la tx y hace
// Commit o Rollback. Es la unidad de trabajo de toda escritura de terceros.
func (r *TxRunner) Run(ctx context.Context, fn func(repos terceros.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := terceros.Repos{
		Terceros:    NewTerceroRepository(tx),
		Cajeros:     NewCajeroRepository(tx),
		Proveedores: NewProveedorRepository(tx),
		RRHH:        NewRRHHRepository(tx),
		Cuentas:     NewCuentaRepository(tx),
		Adjuntos:    NewAdjuntoRepository(tx),
		Importes:    NewImporteRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

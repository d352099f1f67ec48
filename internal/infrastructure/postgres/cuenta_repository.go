package postgres

import (
	"context"
	"fmt"

	"github.com/acamilodelgado0305/tercerosms/internal/domain"
	"github.com/acamilodelgado0305/tercerosms/internal/domain/entity"
	"github.com/acamilodelgado0305/tercerosms/internal/domain/repository"
)

var _ repository.CuentaBancariaRepository = (*CuentaRepo)(nil)

// CuentaRepo implementación de CuentaBancariaRepository (usable con pool o tx).
type CuentaRepo struct {
	q Querier
}

// NewCuentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCuentaRepository(q Querier) *CuentaRepo {
	return &CuentaRepo{q: q}
}

// ListByTercero lista las cuentas del tercero en orden de creación.
func (r *CuentaRepo) ListByTercero(terceroID string) ([]*entity.CuentaBancaria, error) {
	query := `
		SELECT id, id_tercero, banco, numero_cuenta, tipo_cuenta, preferida, created_at, updated_at
		FROM cuentas_bancarias WHERE id_tercero = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, terceroID)
	if err != nil {
		return nil, fmt.Errorf("list cuentas: %w", err)
	}
	defer rows.Close()
	var list []*entity.CuentaBancaria
	for rows.Next() {
		var c entity.CuentaBancaria
		if err := rows.Scan(&c.ID, &c.TerceroID, &c.Banco, &c.NumeroCuenta, &c.TipoCuenta,
			&c.Preferida, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cuenta: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Create inserta una cuenta bancaria.
func (r *CuentaRepo) Create(c *entity.CuentaBancaria) error {
	query := `
		INSERT INTO cuentas_bancarias (id, id_tercero, banco, numero_cuenta, tipo_cuenta, preferida, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.TerceroID, c.Banco, c.NumeroCuenta, c.TipoCuenta, c.Preferida, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el tercero %s no existe", domain.ErrIntegridad, c.TerceroID)
		}
		return fmt.Errorf("insert cuenta: %w", err)
	}
	return nil
}

// Update actualiza una cuenta bancaria existente.
func (r *CuentaRepo) Update(c *entity.CuentaBancaria) error {
	query := `
		UPDATE cuentas_bancarias SET
			banco = $2, numero_cuenta = $3, tipo_cuenta = $4, preferida = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Banco, c.NumeroCuenta, c.TipoCuenta, c.Preferida, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cuenta: %w", err)
	}
	return nil
}

// Delete elimina una cuenta por ID.
func (r *CuentaRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM cuentas_bancarias WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete cuenta: %w", err)
	}
	return nil
}

// DeleteByTercero elimina todas las cuentas del tercero.
func (r *CuentaRepo) DeleteByTercero(terceroID string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM cuentas_bancarias WHERE id_tercero = $1`, terceroID); err != nil {
		return fmt.Errorf("delete cuentas del tercero: %w", err)
	}
	return nil
}

// DeleteByWorkspace elimina las cuentas de todos los terceros del workspace.
func (r *CuentaRepo) DeleteByWorkspace(workspaceID string) error {
	query := `
		DELETE FROM cuentas_bancarias
		WHERE id_tercero IN (SELECT id FROM terceros WHERE workspace_id = $1)`
	if _, err := r.q.Exec(context.Background(), query, workspaceID); err != nil {
		return fmt.Errorf("delete cuentas del workspace: %w", err)
	}
	return nil
}

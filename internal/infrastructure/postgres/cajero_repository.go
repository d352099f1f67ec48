package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acamilodelgado0305/tercerosms/internal/domain"
	"github.com/acamilodelgado0305/tercerosms/internal/domain/entity"
	"github.com/acamilodelgado0305/tercerosms/internal/domain/repository"
)

var _ repository.CajeroRepository = (*CajeroRepo)(nil)

// CajeroRepo implementación de CajeroRepository (usable con pool o tx).
// La tabla cajeros tiene UNIQUE(alias): la violación se reporta como
// domain.ErrConflicto para distinguirla de un error de validación.
type CajeroRepo struct {
	q Querier
}

// NewCajeroRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCajeroRepository(q Querier) *CajeroRepo {
	return &CajeroRepo{q: q}
}

// Create inserta el detalle de cajero.
func (r *CajeroRepo) Create(d *entity.CajeroDetalle) error {
	query := `
		INSERT INTO cajeros (
			id_cajero, responsable, comision_porcentaje, activo, observaciones,
			nombre_asignado, importes_activos, alias
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		d.TerceroID, d.Responsable, d.ComisionPorcentaje, d.Activo, d.Observaciones,
		d.NombreAsignado, d.ImportesActivos, d.Alias,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe un cajero con el alias %q", domain.ErrConflicto, d.Alias)
		}
		return fmt.Errorf("insert cajero: %w", err)
	}
	return nil
}

// Get obtiene el detalle de cajero por id del tercero (nil si no existe).
func (r *CajeroRepo) Get(terceroID string) (*entity.CajeroDetalle, error) {
	query := `
		SELECT id_cajero, responsable, comision_porcentaje, activo, observaciones,
		       nombre_asignado, importes_activos, alias
		FROM cajeros WHERE id_cajero = $1`
	var d entity.CajeroDetalle
	err := r.q.QueryRow(context.Background(), query, terceroID).Scan(
		&d.TerceroID, &d.Responsable, &d.ComisionPorcentaje, &d.Activo, &d.Observaciones,
		&d.NombreAsignado, &d.ImportesActivos, &d.Alias,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cajero: %w", err)
	}
	return &d, nil
}

// Update reescribe el detalle completo (el coalesce campo a campo ya ocurrió
// en la capa de aplicación).
func (r *CajeroRepo) Update(d *entity.CajeroDetalle) error {
	query := `
		UPDATE cajeros SET
			responsable = $2, comision_porcentaje = $3, activo = $4, observaciones = $5,
			nombre_asignado = $6, importes_activos = $7, alias = $8
		WHERE id_cajero = $1`
	_, err := r.q.Exec(context.Background(), query,
		d.TerceroID, d.Responsable, d.ComisionPorcentaje, d.Activo, d.Observaciones,
		d.NombreAsignado, d.ImportesActivos, d.Alias,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe un cajero con el alias %q", domain.ErrConflicto, d.Alias)
		}
		return fmt.Errorf("update cajero: %w", err)
	}
	return nil
}

// Delete elimina el detalle de cajero.
func (r *CajeroRepo) Delete(terceroID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cajeros WHERE id_cajero = $1`, terceroID)
	if err != nil {
		return fmt.Errorf("delete cajero: %w", err)
	}
	return nil
}

// DeleteByWorkspace elimina los detalles de cajero de todos los terceros del workspace.
func (r *CajeroRepo) DeleteByWorkspace(workspaceID string) error {
	query := `
		DELETE FROM cajeros
		WHERE id_cajero IN (SELECT id FROM terceros WHERE workspace_id = $1)`
	if _, err := r.q.Exec(context.Background(), query, workspaceID); err != nil {
		return fmt.Errorf("delete cajeros del workspace: %w", err)
	}
	return nil
}

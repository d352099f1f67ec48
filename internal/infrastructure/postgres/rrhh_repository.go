package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acamilodelgado0305/tercerosms/internal/domain/entity"
	"github.com/acamilodelgado0305/tercerosms/internal/domain/repository"
)

var _ repository.RRHHRepository = (*RRHHRepo)(nil)

// RRHHRepo implementación de RRHHRepository (usable con pool o tx).
type RRHHRepo struct {
	q Querier
}

// NewRRHHRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRRHHRepository(q Querier) *RRHHRepo {
	return &RRHHRepo{q: q}
}

// Create inserta el detalle de rrhh.
func (r *RRHHRepo) Create(d *entity.RRHHDetalle) error {
	query := `
		INSERT INTO rrhh (id_rrhh, rut, certificado_bancario, medio_pago, cargo)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		d.TerceroID, d.RUT, d.CertificadoBancario, d.MedioPago, d.Cargo,
	)
	if err != nil {
		return fmt.Errorf("insert rrhh: %w", err)
	}
	return nil
}

// Get obtiene el detalle de rrhh por id del tercero (nil si no existe).
func (r *RRHHRepo) Get(terceroID string) (*entity.RRHHDetalle, error) {
	query := `
		SELECT id_rrhh, rut, certificado_bancario, medio_pago, cargo
		FROM rrhh WHERE id_rrhh = $1`
	var d entity.RRHHDetalle
	err := r.q.QueryRow(context.Background(), query, terceroID).Scan(
		&d.TerceroID, &d.RUT, &d.CertificadoBancario, &d.MedioPago, &d.Cargo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rrhh: %w", err)
	}
	return &d, nil
}

// Update reescribe el detalle completo.
func (r *RRHHRepo) Update(d *entity.RRHHDetalle) error {
	query := `
		UPDATE rrhh SET rut = $2, certificado_bancario = $3, medio_pago = $4, cargo = $5
		WHERE id_rrhh = $1`
	_, err := r.q.Exec(context.Background(), query,
		d.TerceroID, d.RUT, d.CertificadoBancario, d.MedioPago, d.Cargo,
	)
	if err != nil {
		return fmt.Errorf("update rrhh: %w", err)
	}
	return nil
}

// Delete elimina el detalle de rrhh.
func (r *RRHHRepo) Delete(terceroID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM rrhh WHERE id_rrhh = $1`, terceroID)
	if err != nil {
		return fmt.Errorf("delete rrhh: %w", err)
	}
	return nil
}

// DeleteByWorkspace elimina los detalles de rrhh del workspace.
func (r *RRHHRepo) DeleteByWorkspace(workspaceID string) error {
	query := `
		DELETE FROM rrhh
		WHERE id_rrhh IN (SELECT id FROM terceros WHERE workspace_id = $1)`
	if _, err := r.q.Exec(context.Background(), query, workspaceID); err != nil {
		return fmt.Errorf("delete rrhh del workspace: %w", err)
	}
	return nil
}

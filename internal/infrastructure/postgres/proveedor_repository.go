package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acamilodelgado0305/tercerosms/internal/domain/entity"
	"github.com/acamilodelgado0305/tercerosms/internal/domain/repository"
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación de ProveedorRepository (usable con pool o tx).
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

// Create inserta el detalle de proveedor.
func (r *ProveedorRepo) Create(d *entity.ProveedorDetalle) error {
	query := `
		INSERT INTO proveedores (
			id_proveedor, otros_documentos, sitio_web, camara_comercio, rut,
			certificado_bancario, medio_pago, responsable_iva, responsabilidad_fiscal
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		d.TerceroID, d.OtrosDocumentos, d.SitioWeb, d.CamaraComercio, d.RUT,
		d.CertificadoBancario, d.MedioPago, d.ResponsableIVA, d.ResponsabilidadFiscal,
	)
	if err != nil {
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// Get obtiene el detalle de proveedor por id del tercero (nil si no existe).
func (r *ProveedorRepo) Get(terceroID string) (*entity.ProveedorDetalle, error) {
	query := `
		SELECT id_proveedor, otros_documentos, sitio_web, camara_comercio, rut,
		       certificado_bancario, medio_pago, responsable_iva, responsabilidad_fiscal
		FROM proveedores WHERE id_proveedor = $1`
	var d entity.ProveedorDetalle
	err := r.q.QueryRow(context.Background(), query, terceroID).Scan(
		&d.TerceroID, &d.OtrosDocumentos, &d.SitioWeb, &d.CamaraComercio, &d.RUT,
		&d.CertificadoBancario, &d.MedioPago, &d.ResponsableIVA, &d.ResponsabilidadFiscal,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &d, nil
}

// Update reescribe el detalle completo.
func (r *ProveedorRepo) Update(d *entity.ProveedorDetalle) error {
	query := `
		UPDATE proveedores SET
			otros_documentos = $2, sitio_web = $3, camara_comercio = $4, rut = $5,
			certificado_bancario = $6, medio_pago = $7, responsable_iva = $8,
			responsabilidad_fiscal = $9
		WHERE id_proveedor = $1`
	_, err := r.q.Exec(context.Background(), query,
		d.TerceroID, d.OtrosDocumentos, d.SitioWeb, d.CamaraComercio, d.RUT,
		d.CertificadoBancario, d.MedioPago, d.ResponsableIVA, d.ResponsabilidadFiscal,
	)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// Delete elimina el detalle de proveedor.
func (r *ProveedorRepo) Delete(terceroID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM proveedores WHERE id_proveedor = $1`, terceroID)
	if err != nil {
		return fmt.Errorf("delete proveedor: %w", err)
	}
	return nil
}

// DeleteByWorkspace elimina los detalles de proveedor del workspace.
func (r *ProveedorRepo) DeleteByWorkspace(workspaceID string) error {
	query := `
		DELETE FROM proveedores
		WHERE id_proveedor IN (SELECT id FROM terceros WHERE workspace_id = $1)`
	if _, err := r.q.Exec(context.Background(), query, workspaceID); err != nil {
		return fmt.Errorf("delete proveedores del workspace: %w", err)
	}
	return nil
}

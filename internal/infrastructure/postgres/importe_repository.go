package postgres

import (
	"context"
	"fmt"

	"github.com/acamilodelgado0305/tercerosms/internal/domain/entity"
	"github.com/acamilodelgado0305/tercerosms/internal/domain/repository"
)

var _ repository.ImporteRepository = (*ImporteRepo)(nil)

// ImporteRepo implementación de ImporteRepository (usable con pool o tx).
type ImporteRepo struct {
	q Querier
}

// NewImporteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewImporteRepository(q Querier) *ImporteRepo {
	return &ImporteRepo{q: q}
}

// ListByCajero lista los importes personalizados del cajero.
func (r *ImporteRepo) ListByCajero(cajeroID string) ([]*entity.ImportePersonalizado, error) {
	query := `
		SELECT id_importe, id_cajero, producto, accion, valor
		FROM importes_personalizados WHERE id_cajero = $1 ORDER BY producto, accion`
	rows, err := r.q.Query(context.Background(), query, cajeroID)
	if err != nil {
		return nil, fmt.Errorf("list importes: %w", err)
	}
	defer rows.Close()
	var list []*entity.ImportePersonalizado
	for rows.Next() {
		var imp entity.ImportePersonalizado
		if err := rows.Scan(&imp.ID, &imp.CajeroID, &imp.Producto, &imp.Accion, &imp.Valor); err != nil {
			return nil, fmt.Errorf("scan importe: %w", err)
		}
		list = append(list, &imp)
	}
	return list, rows.Err()
}

// CreateBatch inserta el lote completo de importes (tras un DeleteByCajero).
func (r *ImporteRepo) CreateBatch(importes []*entity.ImportePersonalizado) error {
	query := `
		INSERT INTO importes_personalizados (id_importe, id_cajero, producto, accion, valor)
		VALUES ($1, $2, $3, $4, $5)`
	for _, imp := range importes {
		if _, err := r.q.Exec(context.Background(), query,
			imp.ID, imp.CajeroID, imp.Producto, imp.Accion, imp.Valor); err != nil {
			return fmt.Errorf("insert importe: %w", err)
		}
	}
	return nil
}

// DeleteByCajero elimina todos los importes del cajero.
func (r *ImporteRepo) DeleteByCajero(cajeroID string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM importes_personalizados WHERE id_cajero = $1`, cajeroID); err != nil {
		return fmt.Errorf("delete importes del cajero: %w", err)
	}
	return nil
}

// DeleteByWorkspace elimina los importes de todos los cajeros del workspace.
func (r *ImporteRepo) DeleteByWorkspace(workspaceID string) error {
	query := `
		DELETE FROM importes_personalizados
		WHERE id_cajero IN (SELECT id FROM terceros WHERE workspace_id = $1)`
	if _, err := r.q.Exec(context.Background(), query, workspaceID); err != nil {
		return fmt.Errorf("delete importes del workspace: %w", err)
	}
	return nil
}

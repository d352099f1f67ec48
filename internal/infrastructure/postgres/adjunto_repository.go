package postgres

import (
	"context"
	"fmt"

	"github.com/acamilodelgado0305/tercerosms/internal/domain"
	"github.com/acamilodelgado0305/tercerosms/internal/domain/entity"
	"github.com/acamilodelgado0305/tercerosms/internal/domain/repository"
)

var _ repository.AdjuntoRepository = (*AdjuntoRepo)(nil)

// AdjuntoRepo implementación de AdjuntoRepository (usable con pool o tx).
type AdjuntoRepo struct {
	q Querier
}

// NewAdjuntoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdjuntoRepository(q Querier) *AdjuntoRepo {
	return &AdjuntoRepo{q: q}
}

// ListByTercero lista los adjuntos del tercero en orden de carga.
func (r *AdjuntoRepo) ListByTercero(terceroID string) ([]*entity.Adjunto, error) {
	query := `
		SELECT id, id_tercero, url, nombre, created_at
		FROM adjuntos WHERE id_tercero = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, terceroID)
	if err != nil {
		return nil, fmt.Errorf("list adjuntos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Adjunto
	for rows.Next() {
		var a entity.Adjunto
		if err := rows.Scan(&a.ID, &a.TerceroID, &a.URL, &a.Nombre, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan adjunto: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Create inserta un adjunto.
func (r *AdjuntoRepo) Create(a *entity.Adjunto) error {
	query := `
		INSERT INTO adjuntos (id, id_tercero, url, nombre, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, a.ID, a.TerceroID, a.URL, a.Nombre, a.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el tercero %s no existe", domain.ErrIntegridad, a.TerceroID)
		}
		return fmt.Errorf("insert adjunto: %w", err)
	}
	return nil
}

// Update actualiza url y nombre de un adjunto existente.
func (r *AdjuntoRepo) Update(a *entity.Adjunto) error {
	query := `UPDATE adjuntos SET url = $2, nombre = $3 WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, a.ID, a.URL, a.Nombre); err != nil {
		return fmt.Errorf("update adjunto: %w", err)
	}
	return nil
}

// Delete elimina un adjunto por ID.
func (r *AdjuntoRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM adjuntos WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete adjunto: %w", err)
	}
	return nil
}

// DeleteByTercero elimina todos los adjuntos del tercero.
func (r *AdjuntoRepo) DeleteByTercero(terceroID string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM adjuntos WHERE id_tercero = $1`, terceroID); err != nil {
		return fmt.Errorf("delete adjuntos del tercero: %w", err)
	}
	return nil
}

// DeleteByWorkspace elimina los adjuntos de todos los terceros del workspace.
func (r *AdjuntoRepo) DeleteByWorkspace(workspaceID string) error {
	query := `
		DELETE FROM adjuntos
		WHERE id_tercero IN (SELECT id FROM terceros WHERE workspace_id = $1)`
	if _, err := r.q.Exec(context.Background(), query, workspaceID); err != nil {
		return fmt.Errorf("delete adjuntos del workspace: %w", err)
	}
	return nil
}

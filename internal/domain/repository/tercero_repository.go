package repository

import "github.com/acamilodelgado0305/tercerosms/internal/domain/entity"

// TerceroRepository persistencia de la fila base de terceros.
// Todas las operaciones por ID van acotadas por workspace: una fila de otro
// workspace se comporta como inexistente.
type TerceroRepository interface {
	Create(t *entity.Tercero) error
	GetByID(id, workspaceID string) (*entity.Tercero, error)
	// GetForUpdate obtiene la fila base y la bloquea (SELECT ... FOR UPDATE)
	// para serializar actualizaciones concurrentes sobre el mismo tercero.
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id, workspaceID string) (*entity.Tercero, error)
	Update(t *entity.Tercero) error
	Delete(id, workspaceID string) error

	// ListResumen lista (id, nombre, tipo) del workspace, con filtro opcional
	// por tipo ("" = todos).
	ListResumen(workspaceID string, tipo entity.TipoTercero) ([]*entity.TerceroResumen, error)
	// ListProveedoresRRHH lista simplificada de proveedores y rrhh con su
	// identificación, ordenada por nombre.
	ListProveedoresRRHH(workspaceID string) ([]*entity.TerceroResumen, error)
	// ListCajeros listado paginado de cajeros (JOIN con su detalle) y total.
	ListCajeros(workspaceID string, limit, offset int) ([]*entity.CajeroResumen, int, error)

	// DeleteByWorkspace limpieza interna: elimina todas las filas base del
	// workspace. Las tablas hijas deben vaciarse antes.
	DeleteByWorkspace(workspaceID string) (int64, error)
}

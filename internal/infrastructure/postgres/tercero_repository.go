package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acamilodelgado0305/tercerosms/internal/domain/entity"
	"github.com/acamilodelgado0305/tercerosms/internal/domain/repository"
)

var _ repository.TerceroRepository = (*TerceroRepo)(nil)

// TerceroRepo implementación de TerceroRepository (usable con pool o tx).
type TerceroRepo struct {
	q Querier
}

// NewTerceroRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTerceroRepository(q Querier) *TerceroRepo {
	return &TerceroRepo{q: q}
}

const colsTercero = `
	id, workspace_id, nombre, tipo, tipo_identificacion, numero_identificacion,
	direccion, ciudad, departamento, pais, telefonos, correos, created_at, updated_at`

func scanTercero(row pgx.Row) (*entity.Tercero, error) {
	var t entity.Tercero
	err := row.Scan(
		&t.ID, &t.WorkspaceID, &t.Nombre, &t.Tipo, &t.TipoIdentificacion, &t.NumeroIdentificacion,
		&t.Direccion, &t.Ciudad, &t.Departamento, &t.Pais, &t.Telefonos, &t.Correos,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste la fila base de un tercero.
func (r *TerceroRepo) Create(t *entity.Tercero) error {
	query := `
		INSERT INTO terceros (` + colsTercero + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.WorkspaceID, t.Nombre, t.Tipo, t.TipoIdentificacion, t.NumeroIdentificacion,
		t.Direccion, t.Ciudad, t.Departamento, t.Pais, t.Telefonos, t.Correos,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tercero: %w", err)
	}
	return nil
}

// GetByID obtiene un tercero por ID dentro del workspace (nil si no existe).
func (r *TerceroRepo) GetByID(id, workspaceID string) (*entity.Tercero, error) {
	query := `SELECT ` + colsTercero + ` FROM terceros WHERE id = $1 AND workspace_id = $2`
	t, err := scanTercero(r.q.QueryRow(context.Background(), query, id, workspaceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tercero: %w", err)
	}
	return t, nil
}

// GetForUpdate obtiene y bloquea la fila base (SELECT ... FOR UPDATE) para
// serializar escrituras concurrentes sobre el mismo tercero.
func (r *TerceroRepo) GetForUpdate(id, workspaceID string) (*entity.Tercero, error) {
	query := `SELECT ` + colsTercero + ` FROM terceros WHERE id = $1 AND workspace_id = $2 FOR UPDATE`
	t, err := scanTercero(r.q.QueryRow(context.Background(), query, id, workspaceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tercero for update: %w", err)
	}
	return t, nil
}

// Update reescribe los campos mutables de la fila base, incluido el tipo.
func (r *TerceroRepo) Update(t *entity.Tercero) error {
	query := `
		UPDATE terceros SET
			nombre = $3, tipo = $4, tipo_identificacion = $5, numero_identificacion = $6,
			direccion = $7, ciudad = $8, departamento = $9, pais = $10,
			telefonos = $11, correos = $12, updated_at = $13
		WHERE id = $1 AND workspace_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.WorkspaceID, t.Nombre, t.Tipo, t.TipoIdentificacion, t.NumeroIdentificacion,
		t.Direccion, t.Ciudad, t.Departamento, t.Pais, t.Telefonos, t.Correos, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tercero: %w", err)
	}
	return nil
}

// Delete elimina la fila base dentro del workspace.
func (r *TerceroRepo) Delete(id, workspaceID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM terceros WHERE id = $1 AND workspace_id = $2`, id, workspaceID)
	if err != nil {
		return fmt.Errorf("delete tercero: %w", err)
	}
	return nil
}

// ListResumen lista (id, nombre, tipo) del workspace con filtro opcional por tipo.
func (r *TerceroRepo) ListResumen(workspaceID string, tipo entity.TipoTercero) ([]*entity.TerceroResumen, error) {
	query := `
		SELECT id, nombre, tipo, tipo_identificacion, numero_identificacion
		FROM terceros WHERE workspace_id = $1`
	args := []any{workspaceID}
	if tipo != "" {
		query += ` AND tipo = $2`
		args = append(args, tipo)
	}
	query += ` ORDER BY nombre ASC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list terceros: %w", err)
	}
	defer rows.Close()
	var list []*entity.TerceroResumen
	for rows.Next() {
		var t entity.TerceroResumen
		if err := rows.Scan(&t.ID, &t.Nombre, &t.Tipo, &t.TipoIdentificacion, &t.NumeroIdentificacion); err != nil {
			return nil, fmt.Errorf("scan tercero resumen: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// ListProveedoresRRHH lista simplificada de proveedores y rrhh ordenada por nombre.
func (r *TerceroRepo) ListProveedoresRRHH(workspaceID string) ([]*entity.TerceroResumen, error) {
	query := `
		SELECT id, nombre, tipo, tipo_identificacion, numero_identificacion
		FROM terceros
		WHERE workspace_id = $1 AND tipo IN ('proveedor', 'rrhh')
		ORDER BY nombre ASC`
	rows, err := r.q.Query(context.Background(), query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list proveedores y rrhh: %w", err)
	}
	defer rows.Close()
	var list []*entity.TerceroResumen
	for rows.Next() {
		var t entity.TerceroResumen
		if err := rows.Scan(&t.ID, &t.Nombre, &t.Tipo, &t.TipoIdentificacion, &t.NumeroIdentificacion); err != nil {
			return nil, fmt.Errorf("scan proveedor/rrhh: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// ListCajeros listado paginado de cajeros con su detalle y el total de filas.
func (r *TerceroRepo) ListCajeros(workspaceID string, limit, offset int) ([]*entity.CajeroResumen, int, error) {
	var total int
	countQuery := `
		SELECT COUNT(*)
		FROM terceros t
		INNER JOIN cajeros c ON t.id = c.id_cajero
		WHERE t.workspace_id = $1 AND t.tipo = 'cajero'`
	if err := r.q.QueryRow(context.Background(), countQuery, workspaceID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count cajeros: %w", err)
	}

	query := `
		SELECT
			t.id, t.nombre, t.direccion, t.ciudad, t.departamento, t.pais,
			c.responsable, c.comision_porcentaje, c.activo, c.observaciones,
			c.nombre_asignado, c.alias
		FROM terceros t
		INNER JOIN cajeros c ON t.id = c.id_cajero
		WHERE t.workspace_id = $1 AND t.tipo = 'cajero'
		ORDER BY t.nombre ASC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, workspaceID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list cajeros: %w", err)
	}
	defer rows.Close()
	var list []*entity.CajeroResumen
	for rows.Next() {
		var c entity.CajeroResumen
		if err := rows.Scan(
			&c.ID, &c.Nombre, &c.Direccion, &c.Ciudad, &c.Departamento, &c.Pais,
			&c.Responsable, &c.ComisionPorcentaje, &c.Activo, &c.Observaciones,
			&c.NombreAsignado, &c.Alias,
		); err != nil {
			return nil, 0, fmt.Errorf("scan cajero resumen: %w", err)
		}
		list = append(list, &c)
	}
	return list, total, rows.Err()
}

// DeleteByWorkspace elimina todas las filas base del workspace (limpieza interna).
func (r *TerceroRepo) DeleteByWorkspace(workspaceID string) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM terceros WHERE workspace_id = $1`, workspaceID)
	if err != nil {
		return 0, fmt.Errorf("delete terceros del workspace: %w", err)
	}
	return tag.RowsAffected(), nil
}

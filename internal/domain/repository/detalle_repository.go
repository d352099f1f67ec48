package repository

import "github.com/acamilodelgado0305/tercerosms/internal/domain/entity"

// Los tres repositorios de detalle comparten el mismo contrato: una fila por
// tercero, clave primaria = id del tercero. El registro de tipos en la capa
// de aplicación decide cuál usar con un switch exhaustivo sobre TipoTercero.

// CajeroRepository persistencia del detalle de cajeros.
// Create y Update devuelven el error de unicidad del alias sin traducir a
// texto: el caso de uso lo presenta como conflicto.
type CajeroRepository interface {
	Create(d *entity.CajeroDetalle) error
	Get(terceroID string) (*entity.CajeroDetalle, error)
	Update(d *entity.CajeroDetalle) error
	Delete(terceroID string) error
	DeleteByWorkspace(workspaceID string) error
}

// ProveedorRepository persistencia del detalle de proveedores.
type ProveedorRepository interface {
	Create(d *entity.ProveedorDetalle) error
	Get(terceroID string) (*entity.ProveedorDetalle, error)
	Update(d *entity.ProveedorDetalle) error
	Delete(terceroID string) error
	DeleteByWorkspace(workspaceID string) error
}

// RRHHRepository persistencia del detalle de rrhh.
type RRHHRepository interface {
	Create(d *entity.RRHHDetalle) error
	Get(terceroID string) (*entity.RRHHDetalle, error)
	Update(d *entity.RRHHDetalle) error
	Delete(terceroID string) error
	DeleteByWorkspace(workspaceID string) error
}

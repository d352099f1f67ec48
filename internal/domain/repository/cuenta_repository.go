package repository

import "github.com/acamilodelgado0305/tercerosms/internal/domain/entity"

// CuentaBancariaRepository persistencia de cuentas bancarias de un tercero.
type CuentaBancariaRepository interface {
	ListByTercero(terceroID string) ([]*entity.CuentaBancaria, error)
	Create(c *entity.CuentaBancaria) error
	Update(c *entity.CuentaBancaria) error
	Delete(id string) error
	DeleteByTercero(terceroID string) error
	DeleteByWorkspace(workspaceID string) error
}

// AdjuntoRepository persistencia de adjuntos (url + nombre) de un tercero.
type AdjuntoRepository interface {
	ListByTercero(terceroID string) ([]*entity.Adjunto, error)
	Create(a *entity.Adjunto) error
	Update(a *entity.Adjunto) error
	Delete(id string) error
	DeleteByTercero(terceroID string) error
	DeleteByWorkspace(workspaceID string) error
}

// ImporteRepository persistencia de importes personalizados de un cajero.
// No hay Update: la colección se reemplaza completa (borrar y reinsertar).
type ImporteRepository interface {
	ListByCajero(cajeroID string) ([]*entity.ImportePersonalizado, error)
	CreateBatch(importes []*entity.ImportePersonalizado) error
	DeleteByCajero(cajeroID string) error
	DeleteByWorkspace(workspaceID string) error
}

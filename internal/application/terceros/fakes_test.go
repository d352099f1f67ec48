package terceros_test

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/acamilodelgado0305/tercerosms/internal/application/terceros"
	"github.com/acamilodelgado0305/tercerosms/internal/domain"
	"github.com/acamilodelgado0305/tercerosms/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doble de persistencia en memoria
//
// memStore emula el comportamiento observable de Postgres para el caso de
// uso: filas por tabla, unicidad del alias de cajero, orden de inserción en
// las colecciones (equivalente al ORDER BY created_at) y transacciones con
// rollback real vía snapshot/restore en memTxRunner.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	terceros    map[string]entity.Tercero
	cajeros     map[string]entity.CajeroDetalle
	proveedores map[string]entity.ProveedorDetalle
	rrhh        map[string]entity.RRHHDetalle
	cuentas     []entity.CuentaBancaria
	adjuntos    []entity.Adjunto
	importes    []entity.ImportePersonalizado
}

func newMemStore() *memStore {
	return &memStore{
		terceros:    map[string]entity.Tercero{},
		cajeros:     map[string]entity.CajeroDetalle{},
		proveedores: map[string]entity.ProveedorDetalle{},
		rrhh:        map[string]entity.RRHHDetalle{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.terceros {
		c.terceros[k] = v
	}
	for k, v := range s.cajeros {
		c.cajeros[k] = v
	}
	for k, v := range s.proveedores {
		c.proveedores[k] = v
	}
	for k, v := range s.rrhh {
		c.rrhh[k] = v
	}
	c.cuentas = append([]entity.CuentaBancaria(nil), s.cuentas...)
	c.adjuntos = append([]entity.Adjunto(nil), s.adjuntos...)
	c.importes = append([]entity.ImportePersonalizado(nil), s.importes...)
	return c
}

func reposFor(s *memStore) terceros.Repos {
	return terceros.Repos{
		Terceros:    &fakeTerceroRepo{s},
		Cajeros:     &fakeCajeroRepo{s},
		Proveedores: &fakeProveedorRepo{s},
		RRHH:        &fakeRRHHRepo{s},
		Cuentas:     &fakeCuentaRepo{s},
		Adjuntos:    &fakeAdjuntoRepo{s},
		Importes:    &fakeImporteRepo{s},
	}
}

// memTxRunner ejecuta fn contra el almacén y, si falla, restaura el snapshot
// previo: el mismo contrato todo-o-nada que una transacción de BD.
type memTxRunner struct{ st *memStore }

func (m *memTxRunner) Run(_ context.Context, fn func(r terceros.Repos) error) error {
	snap := m.st.clone()
	if err := fn(reposFor(m.st)); err != nil {
		*m.st = *snap
		return err
	}
	return nil
}

// fakeFinanzas doble del verificador de transacciones del servicio de
// finanzas.
type fakeFinanzas struct {
	tiene    bool
	err      error
	llamadas int
}

func (f *fakeFinanzas) TieneTransacciones(context.Context, string) (bool, error) {
	f.llamadas++
	return f.tiene, f.err
}

// ── Terceros ──────────────────────────────────────────────────────────────────

type fakeTerceroRepo struct{ s *memStore }

func (r *fakeTerceroRepo) Create(t *entity.Tercero) error {
	r.s.terceros[t.ID] = *t
	return nil
}

func (r *fakeTerceroRepo) GetByID(id, workspaceID string) (*entity.Tercero, error) {
	t, ok := r.s.terceros[id]
	if !ok || t.WorkspaceID != workspaceID {
		return nil, nil
	}
	copia := t
	return &copia, nil
}

func (r *fakeTerceroRepo) GetForUpdate(id, workspaceID string) (*entity.Tercero, error) {
	return r.GetByID(id, workspaceID)
}

func (r *fakeTerceroRepo) Update(t *entity.Tercero) error {
	if _, ok := r.s.terceros[t.ID]; !ok {
		return fmt.Errorf("update sobre tercero inexistente %s", t.ID)
	}
	r.s.terceros[t.ID] = *t
	return nil
}

func (r *fakeTerceroRepo) Delete(id, workspaceID string) error {
	if t, ok := r.s.terceros[id]; ok && t.WorkspaceID == workspaceID {
		delete(r.s.terceros, id)
	}
	return nil
}

func (r *fakeTerceroRepo) ListResumen(workspaceID string, tipo entity.TipoTercero) ([]*entity.TerceroResumen, error) {
	var out []*entity.TerceroResumen
	for _, t := range r.s.terceros {
		if t.WorkspaceID != workspaceID {
			continue
		}
		if tipo != "" && t.Tipo != tipo {
			continue
		}
		out = append(out, &entity.TerceroResumen{
			ID:                   t.ID,
			Nombre:               t.Nombre,
			Tipo:                 t.Tipo,
			TipoIdentificacion:   t.TipoIdentificacion,
			NumeroIdentificacion: t.NumeroIdentificacion,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *fakeTerceroRepo) ListProveedoresRRHH(workspaceID string) ([]*entity.TerceroResumen, error) {
	var out []*entity.TerceroResumen
	for _, t := range r.s.terceros {
		if t.WorkspaceID != workspaceID || t.Tipo == entity.TipoCajero {
			continue
		}
		out = append(out, &entity.TerceroResumen{ID: t.ID, Nombre: t.Nombre, Tipo: t.Tipo})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *fakeTerceroRepo) ListCajeros(workspaceID string, limit, offset int) ([]*entity.CajeroResumen, int, error) {
	var all []*entity.CajeroResumen
	for _, t := range r.s.terceros {
		if t.WorkspaceID != workspaceID || t.Tipo != entity.TipoCajero {
			continue
		}
		d := r.s.cajeros[t.ID]
		all = append(all, &entity.CajeroResumen{
			ID:                 t.ID,
			Nombre:             t.Nombre,
			Direccion:          t.Direccion,
			Ciudad:             t.Ciudad,
			Departamento:       t.Departamento,
			Pais:               t.Pais,
			Responsable:        d.Responsable,
			ComisionPorcentaje: d.ComisionPorcentaje,
			Activo:             d.Activo,
			Observaciones:      d.Observaciones,
			NombreAsignado:     d.NombreAsignado,
			Alias:              d.Alias,
		})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Nombre < all[j].Nombre })
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *fakeTerceroRepo) DeleteByWorkspace(workspaceID string) (int64, error) {
	var n int64
	for id, t := range r.s.terceros {
		if t.WorkspaceID == workspaceID {
			delete(r.s.terceros, id)
			n++
		}
	}
	return n, nil
}

// ── Detalles ──────────────────────────────────────────────────────────────────

type fakeCajeroRepo struct{ s *memStore }

func (r *fakeCajeroRepo) aliasDuplicado(d *entity.CajeroDetalle) error {
	for id, otro := range r.s.cajeros {
		if id != d.TerceroID && strings.EqualFold(otro.Alias, d.Alias) {
			return fmt.Errorf("%w: ya existe un cajero con el alias %q", domain.ErrConflicto, d.Alias)
		}
	}
	return nil
}

func (r *fakeCajeroRepo) Create(d *entity.CajeroDetalle) error {
	if err := r.aliasDuplicado(d); err != nil {
		return err
	}
	r.s.cajeros[d.TerceroID] = *d
	return nil
}

func (r *fakeCajeroRepo) Get(terceroID string) (*entity.CajeroDetalle, error) {
	d, ok := r.s.cajeros[terceroID]
	if !ok {
		return nil, nil
	}
	copia := d
	return &copia, nil
}

func (r *fakeCajeroRepo) Update(d *entity.CajeroDetalle) error {
	if err := r.aliasDuplicado(d); err != nil {
		return err
	}
	r.s.cajeros[d.TerceroID] = *d
	return nil
}

func (r *fakeCajeroRepo) Delete(terceroID string) error {
	delete(r.s.cajeros, terceroID)
	return nil
}

func (r *fakeCajeroRepo) DeleteByWorkspace(workspaceID string) error {
	for id := range r.s.cajeros {
		if t, ok := r.s.terceros[id]; ok && t.WorkspaceID == workspaceID {
			delete(r.s.cajeros, id)
		}
	}
	return nil
}

type fakeProveedorRepo struct{ s *memStore }

func (r *fakeProveedorRepo) Create(d *entity.ProveedorDetalle) error {
	r.s.proveedores[d.TerceroID] = *d
	return nil
}

func (r *fakeProveedorRepo) Get(terceroID string) (*entity.ProveedorDetalle, error) {
	d, ok := r.s.proveedores[terceroID]
	if !ok {
		return nil, nil
	}
	copia := d
	return &copia, nil
}

func (r *fakeProveedorRepo) Update(d *entity.ProveedorDetalle) error {
	r.s.proveedores[d.TerceroID] = *d
	return nil
}

func (r *fakeProveedorRepo) Delete(terceroID string) error {
	delete(r.s.proveedores, terceroID)
	return nil
}

func (r *fakeProveedorRepo) DeleteByWorkspace(workspaceID string) error {
	for id := range r.s.proveedores {
		if t, ok := r.s.terceros[id]; ok && t.WorkspaceID == workspaceID {
			delete(r.s.proveedores, id)
		}
	}
	return nil
}

type fakeRRHHRepo struct{ s *memStore }

func (r *fakeRRHHRepo) Create(d *entity.RRHHDetalle) error {
	r.s.rrhh[d.TerceroID] = *d
	return nil
}

func (r *fakeRRHHRepo) Get(terceroID string) (*entity.RRHHDetalle, error) {
	d, ok := r.s.rrhh[terceroID]
	if !ok {
		return nil, nil
	}
	copia := d
	return &copia, nil
}

func (r *fakeRRHHRepo) Update(d *entity.RRHHDetalle) error {
	r.s.rrhh[d.TerceroID] = *d
	return nil
}

func (r *fakeRRHHRepo) Delete(terceroID string) error {
	delete(r.s.rrhh, terceroID)
	return nil
}

func (r *fakeRRHHRepo) DeleteByWorkspace(workspaceID string) error {
	for id := range r.s.rrhh {
		if t, ok := r.s.terceros[id]; ok && t.WorkspaceID == workspaceID {
			delete(r.s.rrhh, id)
		}
	}
	return nil
}

// ── Colecciones ───────────────────────────────────────────────────────────────

type fakeCuentaRepo struct{ s *memStore }

func (r *fakeCuentaRepo) ListByTercero(terceroID string) ([]*entity.CuentaBancaria, error) {
	var out []*entity.CuentaBancaria
	for _, c := range r.s.cuentas {
		if c.TerceroID == terceroID {
			copia := c
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeCuentaRepo) Create(c *entity.CuentaBancaria) error {
	r.s.cuentas = append(r.s.cuentas, *c)
	return nil
}

func (r *fakeCuentaRepo) Update(c *entity.CuentaBancaria) error {
	for i := range r.s.cuentas {
		if r.s.cuentas[i].ID == c.ID {
			r.s.cuentas[i] = *c
			return nil
		}
	}
	return fmt.Errorf("update sobre cuenta inexistente %s", c.ID)
}

func (r *fakeCuentaRepo) Delete(id string) error {
	for i := range r.s.cuentas {
		if r.s.cuentas[i].ID == id {
			r.s.cuentas = append(r.s.cuentas[:i], r.s.cuentas[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeCuentaRepo) DeleteByTercero(terceroID string) error {
	keep := r.s.cuentas[:0]
	for _, c := range r.s.cuentas {
		if c.TerceroID != terceroID {
			keep = append(keep, c)
		}
	}
	r.s.cuentas = keep
	return nil
}

func (r *fakeCuentaRepo) DeleteByWorkspace(workspaceID string) error {
	keep := r.s.cuentas[:0]
	for _, c := range r.s.cuentas {
		if t, ok := r.s.terceros[c.TerceroID]; !ok || t.WorkspaceID != workspaceID {
			keep = append(keep, c)
		}
	}
	r.s.cuentas = keep
	return nil
}

type fakeAdjuntoRepo struct{ s *memStore }

func (r *fakeAdjuntoRepo) ListByTercero(terceroID string) ([]*entity.Adjunto, error) {
	var out []*entity.Adjunto
	for _, a := range r.s.adjuntos {
		if a.TerceroID == terceroID {
			copia := a
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeAdjuntoRepo) Create(a *entity.Adjunto) error {
	r.s.adjuntos = append(r.s.adjuntos, *a)
	return nil
}

func (r *fakeAdjuntoRepo) Update(a *entity.Adjunto) error {
	for i := range r.s.adjuntos {
		if r.s.adjuntos[i].ID == a.ID {
			r.s.adjuntos[i] = *a
			return nil
		}
	}
	return fmt.Errorf("update sobre adjunto inexistente %s", a.ID)
}

func (r *fakeAdjuntoRepo) Delete(id string) error {
	for i := range r.s.adjuntos {
		if r.s.adjuntos[i].ID == id {
			r.s.adjuntos = append(r.s.adjuntos[:i], r.s.adjuntos[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeAdjuntoRepo) DeleteByTercero(terceroID string) error {
	keep := r.s.adjuntos[:0]
	for _, a := range r.s.adjuntos {
		if a.TerceroID != terceroID {
			keep = append(keep, a)
		}
	}
	r.s.adjuntos = keep
	return nil
}

func (r *fakeAdjuntoRepo) DeleteByWorkspace(workspaceID string) error {
	keep := r.s.adjuntos[:0]
	for _, a := range r.s.adjuntos {
		if t, ok := r.s.terceros[a.TerceroID]; !ok || t.WorkspaceID != workspaceID {
			keep = append(keep, a)
		}
	}
	r.s.adjuntos = keep
	return nil
}

type fakeImporteRepo struct{ s *memStore }

func (r *fakeImporteRepo) ListByCajero(cajeroID string) ([]*entity.ImportePersonalizado, error) {
	var out []*entity.ImportePersonalizado
	for _, imp := range r.s.importes {
		if imp.CajeroID == cajeroID {
			copia := imp
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeImporteRepo) CreateBatch(importes []*entity.ImportePersonalizado) error {
	for _, imp := range importes {
		r.s.importes = append(r.s.importes, *imp)
	}
	return nil
}

func (r *fakeImporteRepo) DeleteByCajero(cajeroID string) error {
	keep := r.s.importes[:0]
	for _, imp := range r.s.importes {
		if imp.CajeroID != cajeroID {
			keep = append(keep, imp)
		}
	}
	r.s.importes = keep
	return nil
}

func (r *fakeImporteRepo) DeleteByWorkspace(workspaceID string) error {
	keep := r.s.importes[:0]
	for _, imp := range r.s.importes {
		if t, ok := r.s.terceros[imp.CajeroID]; !ok || t.WorkspaceID != workspaceID {
			keep = append(keep, imp)
		}
	}
	r.s.importes = keep
	return nil
}

package terceros

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/acamilodelgado0305/tercerosms/internal/application/dto"
	"github.com/acamilodelgado0305/tercerosms/internal/domain"
	"github.com/acamilodelgado0305/tercerosms/internal/domain/entity"
)

// Registro de detalles por tipo. Cada tipo del conjunto cerrado tiene aquí
// su creación, su patch (coalesce campo a campo contra lo guardado) y su
// eliminación; todo switch es exhaustivo y trata cualquier otro valor como
// entrada inválida, de modo que la exclusividad cajero/proveedor/rrhh queda
// garantizada por construcción y no por convención.

// crearDetalle inserta la fila de detalle del tipo del tercero.
// medioPago es el valor derivado por la reconciliación de cuentas.
func crearDetalle(r Repos, t *entity.Tercero, in *dto.GuardarTerceroRequest, medioPago *string) error {
	switch t.Tipo {
	case entity.TipoCajero:
		d, err := armarCajero(t.ID, in.Cajero)
		if err != nil {
			return err
		}
		return r.Cajeros.Create(d)
	case entity.TipoProveedor:
		d, err := armarProveedor(t.ID, in.Proveedor, medioPago)
		if err != nil {
			return err
		}
		return r.Proveedores.Create(d)
	case entity.TipoRRHH:
		return r.RRHH.Create(armarRRHH(t.ID, in.RRHH, medioPago))
	default:
		return fmt.Errorf("%w: tipo de tercero desconocido %q", domain.ErrValidacion, t.Tipo)
	}
}

// patchDetalle aplica sobre la fila de detalle existente solo los campos
// presentes en la petición; los ausentes conservan su valor guardado.
// Si la petición trajo lista de cuentas, el medio de pago derivado (incluso
// nulo) sobreescribe el guardado en proveedor y rrhh.
func patchDetalle(r Repos, t *entity.Tercero, in *dto.GuardarTerceroRequest, medioPago *string, hayCuentas bool) error {
	switch t.Tipo {
	case entity.TipoCajero:
		actual, err := r.Cajeros.Get(t.ID)
		if err != nil {
			return err
		}
		if actual == nil {
			return fmt.Errorf("%w: tercero %s de tipo cajero sin fila en cajeros", domain.ErrIntegridad, t.ID)
		}
		if c := in.Cajero; c != nil {
			actual.Responsable = strOr(c.Responsable, actual.Responsable)
			actual.ComisionPorcentaje = decOr(c.ComisionPorcentaje, actual.ComisionPorcentaje)
			actual.Activo = boolOr(c.Activo, actual.Activo)
			actual.Observaciones = strOr(c.Observaciones, actual.Observaciones)
			actual.NombreAsignado = strOr(c.NombreAsignado, actual.NombreAsignado)
			actual.ImportesActivos = boolOr(c.ImportesActivos, actual.ImportesActivos)
			actual.Alias = strOr(c.Alias, actual.Alias)
			if err := validarCajero(actual); err != nil {
				return err
			}
		}
		return r.Cajeros.Update(actual)
	case entity.TipoProveedor:
		actual, err := r.Proveedores.Get(t.ID)
		if err != nil {
			return err
		}
		if actual == nil {
			return fmt.Errorf("%w: tercero %s de tipo proveedor sin fila en proveedores", domain.ErrIntegridad, t.ID)
		}
		if p := in.Proveedor; p != nil {
			actual.OtrosDocumentos = strOr(p.OtrosDocumentos, actual.OtrosDocumentos)
			actual.SitioWeb = strOr(p.SitioWeb, actual.SitioWeb)
			actual.CamaraComercio = strOr(p.CamaraComercio, actual.CamaraComercio)
			actual.RUT = strOr(p.RUT, actual.RUT)
			actual.CertificadoBancario = strOr(p.CertificadoBancario, actual.CertificadoBancario)
			actual.ResponsableIVA = strOr(p.ResponsableIVA, actual.ResponsableIVA)
			if p.ResponsabilidadFiscal != nil {
				if err := validarResponsabilidadFiscal(*p.ResponsabilidadFiscal); err != nil {
					return err
				}
				actual.ResponsabilidadFiscal = *p.ResponsabilidadFiscal
			}
		}
		if hayCuentas {
			actual.MedioPago = medioPago
		}
		return r.Proveedores.Update(actual)
	case entity.TipoRRHH:
		actual, err := r.RRHH.Get(t.ID)
		if err != nil {
			return err
		}
		if actual == nil {
			return fmt.Errorf("%w: tercero %s de tipo rrhh sin fila en rrhh", domain.ErrIntegridad, t.ID)
		}
		if h := in.RRHH; h != nil {
			actual.RUT = strOr(h.RUT, actual.RUT)
			actual.CertificadoBancario = strOr(h.CertificadoBancario, actual.CertificadoBancario)
			actual.Cargo = strOr(h.Cargo, actual.Cargo)
		}
		if hayCuentas {
			actual.MedioPago = medioPago
		}
		return r.RRHH.Update(actual)
	default:
		return fmt.Errorf("%w: tipo de tercero desconocido %q", domain.ErrValidacion, t.Tipo)
	}
}

// migrarDetalle cambia el tercero de tipo: destruye la fila de detalle del
// tipo anterior y crea la del nuevo, dentro de la transacción en curso.
// Los campos compartidos (rut, certificado bancario) solo se trasladan entre
// proveedor y rrhh; el cajero tiene un conjunto de campos disjunto y no
// traslada nada. El medio de pago se rederiva siempre de las cuentas vigentes.
func migrarDetalle(r Repos, t *entity.Tercero, tipoAnterior entity.TipoTercero, in *dto.GuardarTerceroRequest, medioPago *string, hayCuentas bool) error {
	var rutAnterior, certAnterior string
	var compartidos bool

	// Leer y destruir el detalle saliente.
	switch tipoAnterior {
	case entity.TipoCajero:
		actual, err := r.Cajeros.Get(t.ID)
		if err != nil {
			return err
		}
		if actual == nil {
			return fmt.Errorf("%w: tercero %s de tipo cajero sin fila en cajeros", domain.ErrIntegridad, t.ID)
		}
		if err := r.Importes.DeleteByCajero(t.ID); err != nil {
			return err
		}
		if err := r.Cajeros.Delete(t.ID); err != nil {
			return err
		}
	case entity.TipoProveedor:
		actual, err := r.Proveedores.Get(t.ID)
		if err != nil {
			return err
		}
		if actual == nil {
			return fmt.Errorf("%w: tercero %s de tipo proveedor sin fila en proveedores", domain.ErrIntegridad, t.ID)
		}
		rutAnterior, certAnterior, compartidos = actual.RUT, actual.CertificadoBancario, true
		if err := r.Proveedores.Delete(t.ID); err != nil {
			return err
		}
	case entity.TipoRRHH:
		actual, err := r.RRHH.Get(t.ID)
		if err != nil {
			return err
		}
		if actual == nil {
			return fmt.Errorf("%w: tercero %s de tipo rrhh sin fila en rrhh", domain.ErrIntegridad, t.ID)
		}
		rutAnterior, certAnterior, compartidos = actual.RUT, actual.CertificadoBancario, true
		if err := r.RRHH.Delete(t.ID); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: tipo de tercero desconocido %q", domain.ErrValidacion, tipoAnterior)
	}

	// Sin lista de cuentas en la petición, el medio de pago de la fila nueva
	// se deriva de las cuentas ya guardadas (que sobreviven a la migración).
	if !hayCuentas {
		cuentas, err := r.Cuentas.ListByTercero(t.ID)
		if err != nil {
			return err
		}
		medioPago = derivarMedioPago(cuentas)
	}

	// Crear el detalle entrante.
	switch t.Tipo {
	case entity.TipoCajero:
		d, err := armarCajero(t.ID, in.Cajero)
		if err != nil {
			return err
		}
		return r.Cajeros.Create(d)
	case entity.TipoProveedor:
		p := in.Proveedor
		if p == nil {
			p = &dto.ProveedorInput{}
		}
		if compartidos {
			p = &dto.ProveedorInput{
				OtrosDocumentos:       p.OtrosDocumentos,
				SitioWeb:              p.SitioWeb,
				CamaraComercio:        p.CamaraComercio,
				RUT:                   coalescePtr(p.RUT, rutAnterior),
				CertificadoBancario:   coalescePtr(p.CertificadoBancario, certAnterior),
				ResponsableIVA:        p.ResponsableIVA,
				ResponsabilidadFiscal: p.ResponsabilidadFiscal,
			}
		}
		d, err := armarProveedor(t.ID, p, medioPago)
		if err != nil {
			return err
		}
		return r.Proveedores.Create(d)
	case entity.TipoRRHH:
		h := in.RRHH
		if h == nil {
			h = &dto.RRHHInput{}
		}
		if compartidos {
			h = &dto.RRHHInput{
				RUT:                 coalescePtr(h.RUT, rutAnterior),
				CertificadoBancario: coalescePtr(h.CertificadoBancario, certAnterior),
				Cargo:               h.Cargo,
			}
		}
		return r.RRHH.Create(armarRRHH(t.ID, h, medioPago))
	default:
		return fmt.Errorf("%w: tipo de tercero desconocido %q", domain.ErrValidacion, t.Tipo)
	}
}

// eliminarDetalle destruye la fila de detalle del tipo vigente (y los
// importes si el tercero es cajero).
func eliminarDetalle(r Repos, t *entity.Tercero) error {
	switch t.Tipo {
	case entity.TipoCajero:
		if err := r.Importes.DeleteByCajero(t.ID); err != nil {
			return err
		}
		return r.Cajeros.Delete(t.ID)
	case entity.TipoProveedor:
		return r.Proveedores.Delete(t.ID)
	case entity.TipoRRHH:
		return r.RRHH.Delete(t.ID)
	default:
		return fmt.Errorf("%w: tipo de tercero desconocido %q", domain.ErrValidacion, t.Tipo)
	}
}

// ── Construcción y validación de detalles ────────────────────────────────────

// armarCajero valida y construye el detalle de cajero desde la petición.
// Aplica tanto a la creación como a la migración hacia cajero: en ambos
// casos responsable, comisión y alias son obligatorios.
func armarCajero(terceroID string, in *dto.CajeroInput) (*entity.CajeroDetalle, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: el bloque cajero es obligatorio para el tipo cajero", domain.ErrValidacion)
	}
	d := &entity.CajeroDetalle{
		TerceroID:       terceroID,
		Responsable:     strOr(in.Responsable, ""),
		Activo:          boolOr(in.Activo, true),
		Observaciones:   strOr(in.Observaciones, ""),
		NombreAsignado:  strOr(in.NombreAsignado, ""),
		ImportesActivos: boolOr(in.ImportesActivos, false),
		Alias:           strOr(in.Alias, ""),
	}
	if in.ComisionPorcentaje != nil {
		d.ComisionPorcentaje = *in.ComisionPorcentaje
	}
	if in.Responsable == nil || d.Responsable == "" {
		return nil, fmt.Errorf("%w: el campo responsable es obligatorio para un cajero", domain.ErrValidacion)
	}
	if in.ComisionPorcentaje == nil {
		return nil, fmt.Errorf("%w: el campo comisionPorcentaje es obligatorio para un cajero", domain.ErrValidacion)
	}
	if err := validarCajero(d); err != nil {
		return nil, err
	}
	return d, nil
}

// validarCajero invariantes del detalle de cajero (también tras un patch).
func validarCajero(d *entity.CajeroDetalle) error {
	if d.Alias == "" {
		return fmt.Errorf("%w: el campo alias es obligatorio para un cajero", domain.ErrValidacion)
	}
	if d.ComisionPorcentaje.LessThan(decimal.Zero) || d.ComisionPorcentaje.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: el porcentaje de comisión debe estar entre 0 y 100", domain.ErrValidacion)
	}
	return nil
}

func armarProveedor(terceroID string, in *dto.ProveedorInput, medioPago *string) (*entity.ProveedorDetalle, error) {
	if in == nil {
		in = &dto.ProveedorInput{}
	}
	d := &entity.ProveedorDetalle{
		TerceroID:           terceroID,
		OtrosDocumentos:     strOr(in.OtrosDocumentos, ""),
		SitioWeb:            strOr(in.SitioWeb, ""),
		CamaraComercio:      strOr(in.CamaraComercio, ""),
		RUT:                 strOr(in.RUT, ""),
		CertificadoBancario: strOr(in.CertificadoBancario, ""),
		MedioPago:           medioPago,
		ResponsableIVA:      strOr(in.ResponsableIVA, ""),
	}
	if in.ResponsabilidadFiscal != nil {
		if err := validarResponsabilidadFiscal(*in.ResponsabilidadFiscal); err != nil {
			return nil, err
		}
		d.ResponsabilidadFiscal = *in.ResponsabilidadFiscal
	}
	return d, nil
}

func armarRRHH(terceroID string, in *dto.RRHHInput, medioPago *string) *entity.RRHHDetalle {
	if in == nil {
		in = &dto.RRHHInput{}
	}
	return &entity.RRHHDetalle{
		TerceroID:           terceroID,
		RUT:                 strOr(in.RUT, ""),
		CertificadoBancario: strOr(in.CertificadoBancario, ""),
		MedioPago:           medioPago,
		Cargo:               strOr(in.Cargo, ""),
	}
}

func validarResponsabilidadFiscal(codigos []string) error {
	for _, c := range codigos {
		if !entity.ResponsabilidadFiscalValida(c) {
			return fmt.Errorf("%w: responsabilidad fiscal desconocida %q", domain.ErrValidacion, c)
		}
	}
	return nil
}

// ── Coalesce de campos opcionales ────────────────────────────────────────────

func strOr(p *string, actual string) string {
	if p != nil {
		return *p
	}
	return actual
}

func boolOr(p *bool, actual bool) bool {
	if p != nil {
		return *p
	}
	return actual
}

func decOr(p *decimal.Decimal, actual decimal.Decimal) decimal.Decimal {
	if p != nil {
		return *p
	}
	return actual
}

// coalescePtr devuelve p si viene en la petición; si no, un puntero al valor
// anterior cuando este no está vacío.
func coalescePtr(p *string, anterior string) *string {
	if p != nil {
		return p
	}
	if anterior == "" {
		return nil
	}
	return &anterior
}

package terceros

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/acamilodelgado0305/tercerosms/internal/application/dto"
	"github.com/acamilodelgado0305/tercerosms/internal/domain"
	"github.com/acamilodelgado0305/tercerosms/internal/domain/entity"
	"github.com/acamilodelgado0305/tercerosms/pkg/dian"
	"github.com/acamilodelgado0305/tercerosms/pkg/logger"
)

// UseCase orquesta las escrituras de terceros: fila base, detalle por tipo,
// cuentas bancarias, adjuntos e importes, todo dentro de una sola transacción
// por petición. Las lecturas usan los repos atados al pool.
type UseCase struct {
	txRunner TxRunner
	repos    Repos
	finanzas VerificadorTransacciones
	log      *logger.Logger
}

// NewUseCase construye el caso de uso. repos son los repositorios atados al
// pool (solo lectura); toda escritura pasa por txRunner.
func NewUseCase(txRunner TxRunner, repos Repos, finanzas VerificadorTransacciones, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, repos: repos, finanzas: finanzas, log: log}
}

// Crear da de alta un tercero: fila base + detalle del tipo + cuentas +
// adjuntos (+ importes si es cajero), atómicamente.
func (uc *UseCase) Crear(ctx context.Context, workspaceID string, in dto.GuardarTerceroRequest) (*dto.TerceroResponse, error) {
	if workspaceID == "" {
		return nil, fmt.Errorf("%w: workspace no determinado", domain.ErrValidacion)
	}
	if in.Nombre == nil || *in.Nombre == "" {
		return nil, fmt.Errorf("%w: el campo nombre es obligatorio", domain.ErrValidacion)
	}
	if !in.Tipo.Valido() {
		return nil, fmt.Errorf("%w: tipo debe ser cajero, proveedor o rrhh", domain.ErrValidacion)
	}
	if in.Tipo == entity.TipoCajero {
		if in.Direccion == nil || *in.Direccion == "" || in.Ciudad == nil || *in.Ciudad == "" {
			return nil, fmt.Errorf("%w: direccion y ciudad son obligatorios para un cajero", domain.ErrValidacion)
		}
	}
	if err := validarIdentificacion(strOr(in.TipoIdentificacion, ""), strOr(in.NumeroIdentificacion, "")); err != nil {
		return nil, err
	}

	now := time.Now()
	t := &entity.Tercero{
		ID:                   uuid.New().String(),
		WorkspaceID:          workspaceID,
		Nombre:               *in.Nombre,
		Tipo:                 in.Tipo,
		TipoIdentificacion:   strOr(in.TipoIdentificacion, ""),
		NumeroIdentificacion: strOr(in.NumeroIdentificacion, ""),
		Direccion:            strOr(in.Direccion, ""),
		Ciudad:               strOr(in.Ciudad, ""),
		Departamento:         strOr(in.Departamento, ""),
		Pais:                 strOr(in.Pais, ""),
		Telefonos:            in.Telefonos,
		Correos:              in.Correos,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	err := uc.txRunner.Run(ctx, func(r Repos) error {
		if err := r.Terceros.Create(t); err != nil {
			return err
		}
		// Las cuentas se resuelven antes del detalle: el medio de pago
		// derivado alimenta la fila de proveedor o rrhh.
		medioPago, _, err := reconciliarCuentas(r, t.ID, in.CuentasBancarias, now)
		if err != nil {
			return err
		}
		if err := crearDetalle(r, t, &in, medioPago); err != nil {
			return err
		}
		if err := uc.reemplazarImportes(r, t, &in); err != nil {
			return err
		}
		return reconciliarAdjuntos(r, t.ID, in.Adjuntos, now)
	})
	if err != nil {
		return nil, err
	}
	return uc.ObtenerPorID(ctx, t.ID, workspaceID)
}

// Actualizar modifica un tercero existente. La fila base se bloquea
// (FOR UPDATE) al inicio para serializar escrituras concurrentes. Si el tipo
// enviado difiere del vigente se ejecuta la migración de detalle; si no, un
// patch campo a campo. Nada es visible fuera de la transacción hasta commit.
func (uc *UseCase) Actualizar(ctx context.Context, id, workspaceID string, in dto.GuardarTerceroRequest) (*dto.TerceroResponse, error) {
	if in.Tipo != "" && !in.Tipo.Valido() {
		return nil, fmt.Errorf("%w: tipo debe ser cajero, proveedor o rrhh", domain.ErrValidacion)
	}

	now := time.Now()
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		t, err := r.Terceros.GetForUpdate(id, workspaceID)
		if err != nil {
			return err
		}
		if t == nil {
			return fmt.Errorf("%w: id %s", domain.ErrNoEncontrado, id)
		}

		tipoAnterior := t.Tipo
		t.Nombre = strOr(in.Nombre, t.Nombre)
		if in.Tipo != "" {
			t.Tipo = in.Tipo
		}
		t.TipoIdentificacion = strOr(in.TipoIdentificacion, t.TipoIdentificacion)
		t.NumeroIdentificacion = strOr(in.NumeroIdentificacion, t.NumeroIdentificacion)
		if in.TipoIdentificacion != nil || in.NumeroIdentificacion != nil {
			if err := validarIdentificacion(t.TipoIdentificacion, t.NumeroIdentificacion); err != nil {
				return err
			}
		}
		t.Direccion = strOr(in.Direccion, t.Direccion)
		t.Ciudad = strOr(in.Ciudad, t.Ciudad)
		t.Departamento = strOr(in.Departamento, t.Departamento)
		t.Pais = strOr(in.Pais, t.Pais)
		// La regla de la creación aplica también al resultado de la
		// actualización: un cajero (incluso recién migrado) nunca queda sin
		// dirección ni ciudad.
		if t.Tipo == entity.TipoCajero && (t.Direccion == "" || t.Ciudad == "") {
			return fmt.Errorf("%w: direccion y ciudad son obligatorios para un cajero", domain.ErrValidacion)
		}
		if in.Telefonos != nil {
			t.Telefonos = in.Telefonos
		}
		if in.Correos != nil {
			t.Correos = in.Correos
		}
		t.UpdatedAt = now
		if err := r.Terceros.Update(t); err != nil {
			return err
		}

		medioPago, hayCuentas, err := reconciliarCuentas(r, t.ID, in.CuentasBancarias, now)
		if err != nil {
			return err
		}

		if t.Tipo != tipoAnterior {
			if err := migrarDetalle(r, t, tipoAnterior, &in, medioPago, hayCuentas); err != nil {
				return err
			}
		} else {
			if err := patchDetalle(r, t, &in, medioPago, hayCuentas); err != nil {
				return err
			}
		}

		if err := uc.reemplazarImportes(r, t, &in); err != nil {
			return err
		}
		return reconciliarAdjuntos(r, t.ID, in.Adjuntos, now)
	})
	if err != nil {
		uc.registrarDefecto(err, id)
		return nil, err
	}
	return uc.ObtenerPorID(ctx, id, workspaceID)
}

// Eliminar borra el tercero y todo lo suyo. Antes de abrir la transacción
// local consulta el servicio de finanzas: con transacciones registradas la
// eliminación se rechaza; si finanzas no responde, también (falla cerrada).
func (uc *UseCase) Eliminar(ctx context.Context, id, workspaceID string) error {
	// Existencia en el workspace antes de consultar finanzas: un id ajeno
	// responde 404 y no revela si tiene transacciones en otro workspace.
	existente, err := uc.repos.Terceros.GetByID(id, workspaceID)
	if err != nil {
		return err
	}
	if existente == nil {
		return fmt.Errorf("%w: id %s", domain.ErrNoEncontrado, id)
	}

	tiene, err := uc.finanzas.TieneTransacciones(ctx, id)
	if err != nil {
		return err
	}
	if tiene {
		return fmt.Errorf("%w: el tercero tiene transacciones registradas en finanzas", domain.ErrConflicto)
	}

	return uc.txRunner.Run(ctx, func(r Repos) error {
		t, err := r.Terceros.GetForUpdate(id, workspaceID)
		if err != nil {
			return err
		}
		if t == nil {
			return fmt.Errorf("%w: id %s", domain.ErrNoEncontrado, id)
		}
		// Orden de cascada: importes → cuentas/adjuntos → detalle → base.
		if err := eliminarDetalle(r, t); err != nil {
			return err
		}
		if err := r.Cuentas.DeleteByTercero(t.ID); err != nil {
			return err
		}
		if err := r.Adjuntos.DeleteByTercero(t.ID); err != nil {
			return err
		}
		return r.Terceros.Delete(t.ID, workspaceID)
	})
}

// ObtenerPorID arma el agregado completo: fila base, detalle del tipo
// vigente y colecciones.
func (uc *UseCase) ObtenerPorID(ctx context.Context, id, workspaceID string) (*dto.TerceroResponse, error) {
	t, err := uc.repos.Terceros.GetByID(id, workspaceID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: id %s", domain.ErrNoEncontrado, id)
	}

	resp := &dto.TerceroResponse{
		ID:                   t.ID,
		Nombre:               t.Nombre,
		Tipo:                 t.Tipo,
		TipoIdentificacion:   t.TipoIdentificacion,
		NumeroIdentificacion: t.NumeroIdentificacion,
		Direccion:            t.Direccion,
		Ciudad:               t.Ciudad,
		Departamento:         t.Departamento,
		Pais:                 t.Pais,
		Telefonos:            t.Telefonos,
		Correos:              t.Correos,
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
		CuentasBancarias:     []dto.CuentaResponse{},
		Adjuntos:             []dto.AdjuntoResponse{},
	}

	switch t.Tipo {
	case entity.TipoCajero:
		d, err := uc.repos.Cajeros.Get(t.ID)
		if err != nil {
			return nil, err
		}
		if d == nil {
			err := fmt.Errorf("%w: tercero %s de tipo cajero sin fila en cajeros", domain.ErrIntegridad, t.ID)
			uc.registrarDefecto(err, t.ID)
			return nil, err
		}
		importes, err := uc.repos.Importes.ListByCajero(t.ID)
		if err != nil {
			return nil, err
		}
		cr := &dto.CajeroResponse{
			Responsable:            d.Responsable,
			ComisionPorcentaje:     d.ComisionPorcentaje,
			Activo:                 d.Activo,
			Observaciones:          d.Observaciones,
			NombreAsignado:         d.NombreAsignado,
			ImportesActivos:        d.ImportesActivos,
			Alias:                  d.Alias,
			ImportesPersonalizados: []dto.ImporteResponse{},
		}
		for _, imp := range importes {
			cr.ImportesPersonalizados = append(cr.ImportesPersonalizados, dto.ImporteResponse{
				ID: imp.ID, Producto: imp.Producto, Accion: imp.Accion, Valor: imp.Valor,
			})
		}
		resp.Cajero = cr
	case entity.TipoProveedor:
		d, err := uc.repos.Proveedores.Get(t.ID)
		if err != nil {
			return nil, err
		}
		if d == nil {
			err := fmt.Errorf("%w: tercero %s de tipo proveedor sin fila en proveedores", domain.ErrIntegridad, t.ID)
			uc.registrarDefecto(err, t.ID)
			return nil, err
		}
		resp.Proveedor = &dto.ProveedorResponse{
			OtrosDocumentos:       d.OtrosDocumentos,
			SitioWeb:              d.SitioWeb,
			CamaraComercio:        d.CamaraComercio,
			RUT:                   d.RUT,
			CertificadoBancario:   d.CertificadoBancario,
			MedioPago:             d.MedioPago,
			ResponsableIVA:        d.ResponsableIVA,
			ResponsabilidadFiscal: d.ResponsabilidadFiscal,
		}
	case entity.TipoRRHH:
		d, err := uc.repos.RRHH.Get(t.ID)
		if err != nil {
			return nil, err
		}
		if d == nil {
			err := fmt.Errorf("%w: tercero %s de tipo rrhh sin fila en rrhh", domain.ErrIntegridad, t.ID)
			uc.registrarDefecto(err, t.ID)
			return nil, err
		}
		resp.RRHH = &dto.RRHHResponse{
			RUT:                 d.RUT,
			CertificadoBancario: d.CertificadoBancario,
			MedioPago:           d.MedioPago,
			Cargo:               d.Cargo,
		}
	default:
		return nil, fmt.Errorf("%w: tipo de tercero desconocido %q", domain.ErrIntegridad, t.Tipo)
	}

	cuentas, err := uc.repos.Cuentas.ListByTercero(t.ID)
	if err != nil {
		return nil, err
	}
	for _, c := range cuentas {
		resp.CuentasBancarias = append(resp.CuentasBancarias, dto.CuentaResponse{
			ID: c.ID, Banco: c.Banco, NumeroCuenta: c.NumeroCuenta, TipoCuenta: c.TipoCuenta,
			Preferida: c.Preferida, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
		})
	}
	adjuntos, err := uc.repos.Adjuntos.ListByTercero(t.ID)
	if err != nil {
		return nil, err
	}
	for _, a := range adjuntos {
		resp.Adjuntos = append(resp.Adjuntos, dto.AdjuntoResponse{
			ID: a.ID, URL: a.URL, Nombre: a.Nombre, CreatedAt: a.CreatedAt,
		})
	}
	return resp, nil
}

// ListarResumen lista (id, nombre, tipo) del workspace con filtro opcional.
func (uc *UseCase) ListarResumen(ctx context.Context, workspaceID string, tipo entity.TipoTercero) ([]*entity.TerceroResumen, error) {
	if tipo != "" && !tipo.Valido() {
		return nil, fmt.Errorf("%w: tipo debe ser cajero, proveedor o rrhh", domain.ErrValidacion)
	}
	return uc.repos.Terceros.ListResumen(workspaceID, tipo)
}

// ListarProveedoresRRHH lista simplificada de proveedores y rrhh.
func (uc *UseCase) ListarProveedoresRRHH(ctx context.Context, workspaceID string) ([]*entity.TerceroResumen, error) {
	return uc.repos.Terceros.ListProveedoresRRHH(workspaceID)
}

// ListarCajeros listado paginado de cajeros con su detalle.
func (uc *UseCase) ListarCajeros(ctx context.Context, workspaceID string, page dto.PageRequest) (*dto.CajerosListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repos.Terceros.ListCajeros(workspaceID, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	totalPages := (total + page.Limit - 1) / page.Limit
	return &dto.CajerosListResponse{
		Data: list,
		Pagination: dto.Pagination{
			CurrentPage: page.Page,
			PageSize:    page.Limit,
			TotalItems:  total,
			TotalPages:  totalPages,
		},
	}, nil
}

// ReconciliarAdjuntos sincroniza solo la colección de adjuntos del tercero
// (ruta dedicada): mismo diff que en la actualización completa, en su propia
// transacción.
func (uc *UseCase) ReconciliarAdjuntos(ctx context.Context, id, workspaceID string, adjuntos []dto.AdjuntoInput) (*dto.TerceroResponse, error) {
	now := time.Now()
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		t, err := r.Terceros.GetForUpdate(id, workspaceID)
		if err != nil {
			return err
		}
		if t == nil {
			return fmt.Errorf("%w: id %s", domain.ErrNoEncontrado, id)
		}
		return reconciliarAdjuntos(r, t.ID, &adjuntos, now)
	})
	if err != nil {
		return nil, err
	}
	return uc.ObtenerPorID(ctx, id, workspaceID)
}

// LimpiarWorkspace limpieza interna: elimina todos los terceros del
// workspace y sus tablas hijas, en una sola transacción. Devuelve cuántas
// filas base se eliminaron.
func (uc *UseCase) LimpiarWorkspace(ctx context.Context, workspaceID string) (int64, error) {
	if workspaceID == "" {
		return 0, fmt.Errorf("%w: workspace no determinado", domain.ErrValidacion)
	}
	var eliminados int64
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		if err := r.Importes.DeleteByWorkspace(workspaceID); err != nil {
			return err
		}
		if err := r.Cuentas.DeleteByWorkspace(workspaceID); err != nil {
			return err
		}
		if err := r.Adjuntos.DeleteByWorkspace(workspaceID); err != nil {
			return err
		}
		if err := r.Cajeros.DeleteByWorkspace(workspaceID); err != nil {
			return err
		}
		if err := r.Proveedores.DeleteByWorkspace(workspaceID); err != nil {
			return err
		}
		if err := r.RRHH.DeleteByWorkspace(workspaceID); err != nil {
			return err
		}
		n, err := r.Terceros.DeleteByWorkspace(workspaceID)
		if err != nil {
			return err
		}
		eliminados = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return eliminados, nil
}

// reemplazarImportes borra y reinserta los importes personalizados cuando la
// petición trae la lista y el tercero es cajero. Las filas no conservan
// identidad entre escrituras.
func (uc *UseCase) reemplazarImportes(r Repos, t *entity.Tercero, in *dto.GuardarTerceroRequest) error {
	if t.Tipo != entity.TipoCajero || in.Cajero == nil || in.Cajero.ImportesPersonalizados == nil {
		return nil
	}
	if err := r.Importes.DeleteByCajero(t.ID); err != nil {
		return err
	}
	entrantes := *in.Cajero.ImportesPersonalizados
	importes := make([]*entity.ImportePersonalizado, 0, len(entrantes))
	for _, imp := range entrantes {
		importes = append(importes, &entity.ImportePersonalizado{
			ID:       uuid.New().String(),
			CajeroID: t.ID,
			Producto: imp.Producto,
			Accion:   imp.Accion,
			Valor:    imp.Valor,
		})
	}
	return r.Importes.CreateBatch(importes)
}

// validarIdentificacion verifica el dígito de verificación cuando la
// identificación es un NIT. Otros tipos de documento se aceptan tal cual.
func validarIdentificacion(tipoIdent, numero string) error {
	if !strings.EqualFold(tipoIdent, "NIT") || numero == "" {
		return nil
	}
	if err := dian.ValidateNITVerificationDigit(numero); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidacion, err.Error())
	}
	return nil
}

// registrarDefecto deja rastro de las inconsistencias base/detalle: son
// defectos del servicio, no errores del usuario.
func (uc *UseCase) registrarDefecto(err error, terceroID string) {
	if uc.log != nil && errors.Is(err, domain.ErrIntegridad) {
		uc.log.Error().Err(err).Str("tercero_id", terceroID).Msg("inconsistencia base/detalle detectada")
	}
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/acamilodelgado0305/tercerosms/internal/domain/entity"
)

// GuardarTerceroRequest cuerpo de creación y actualización de un tercero.
// En actualización los campos en nil se dejan como están (coalesce contra el
// valor guardado); las colecciones distinguen "no enviada" (nil, no tocar) de
// "enviada vacía" (sincronizar contra lista vacía).
type GuardarTerceroRequest struct {
	Nombre               *string            `json:"nombre"`
	Tipo                 entity.TipoTercero `json:"tipo"`
	TipoIdentificacion   *string            `json:"tipoIdentificacion"`
	NumeroIdentificacion *string            `json:"numeroIdentificacion"`
	Direccion            *string            `json:"direccion"`
	Ciudad               *string            `json:"ciudad"`
	Departamento         *string            `json:"departamento"`
	Pais                 *string            `json:"pais"`
	Telefonos            []entity.Telefono  `json:"telefonos"`
	Correos              []entity.Correo    `json:"correos"`

	// Detalle según tipo: solo se lee el bloque que corresponde al tipo.
	Cajero    *CajeroInput    `json:"cajero"`
	Proveedor *ProveedorInput `json:"proveedor"`
	RRHH      *RRHHInput      `json:"rrhh"`

	CuentasBancarias *[]CuentaInput  `json:"cuentasBancarias"`
	Adjuntos         *[]AdjuntoInput `json:"adjuntos"`
}

// CajeroInput campos del detalle de cajero. Alias es obligatorio al crear y
// al migrar un tercero hacia el tipo cajero.
type CajeroInput struct {
	Responsable        *string          `json:"responsable"`
	ComisionPorcentaje *decimal.Decimal `json:"comisionPorcentaje"`
	Activo             *bool            `json:"activo"`
	Observaciones      *string          `json:"observaciones"`
	NombreAsignado     *string          `json:"nombreAsignado"`
	ImportesActivos    *bool            `json:"importesActivos"`
	Alias              *string          `json:"alias"`
	// ImportesPersonalizados se reemplaza completo cuando viene en la
	// petición (nil = no tocar).
	ImportesPersonalizados *[]ImporteInput `json:"importesPersonalizados"`
}

// ImporteInput importe personalizado de un cajero.
type ImporteInput struct {
	Producto string          `json:"producto"`
	Accion   string          `json:"accion"`
	Valor    decimal.Decimal `json:"valor"`
}

// ProveedorInput campos del detalle de proveedor. MedioPago no se acepta del
// cliente: se deriva de la cuenta bancaria preferida.
type ProveedorInput struct {
	OtrosDocumentos       *string   `json:"otrosDocumentos"`
	SitioWeb              *string   `json:"sitioWeb"`
	CamaraComercio        *string   `json:"camaraComercio"`
	RUT                   *string   `json:"rut"`
	CertificadoBancario   *string   `json:"certificadoBancario"`
	ResponsableIVA        *string   `json:"responsableIva"`
	ResponsabilidadFiscal *[]string `json:"responsabilidadFiscal"`
}

// RRHHInput campos del detalle de rrhh.
type RRHHInput struct {
	RUT                 *string `json:"rut"`
	CertificadoBancario *string `json:"certificadoBancario"`
	Cargo               *string `json:"cargo"`
}

// CuentaInput cuenta bancaria enviada por el cliente. ID vacío = cuenta
// nueva; ID presente = actualizar esa cuenta. Las guardadas cuyo ID no
// aparezca en la lista se eliminan.
type CuentaInput struct {
	ID           string `json:"id"`
	Banco        string `json:"banco"`
	NumeroCuenta string `json:"numeroCuenta"`
	TipoCuenta   string `json:"tipoCuenta"`
	Preferida    bool   `json:"preferida"`
}

// AdjuntoInput adjunto enviado por el cliente (la subida del archivo ocurre
// antes, en el colaborador de carga).
type AdjuntoInput struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Nombre string `json:"nombre"`
}

// ── Respuestas ────────────────────────────────────────────────────────────────

// TerceroResponse agregado completo de un tercero: fila base, el detalle de
// su tipo vigente (exactamente uno de Cajero/Proveedor/RRHH) y colecciones.
type TerceroResponse struct {
	ID                   string             `json:"id"`
	Nombre               string             `json:"nombre"`
	Tipo                 entity.TipoTercero `json:"tipo"`
	TipoIdentificacion   string             `json:"tipoIdentificacion,omitempty"`
	NumeroIdentificacion string             `json:"numeroIdentificacion,omitempty"`
	Direccion            string             `json:"direccion,omitempty"`
	Ciudad               string             `json:"ciudad,omitempty"`
	Departamento         string             `json:"departamento,omitempty"`
	Pais                 string             `json:"pais,omitempty"`
	Telefonos            []entity.Telefono  `json:"telefonos,omitempty"`
	Correos              []entity.Correo    `json:"correos,omitempty"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`

	Cajero    *CajeroResponse    `json:"cajero,omitempty"`
	Proveedor *ProveedorResponse `json:"proveedor,omitempty"`
	RRHH      *RRHHResponse      `json:"rrhh,omitempty"`

	CuentasBancarias []CuentaResponse  `json:"cuentasBancarias"`
	Adjuntos         []AdjuntoResponse `json:"adjuntos"`
}

// CajeroResponse detalle de cajero con sus importes personalizados.
type CajeroResponse struct {
	Responsable            string            `json:"responsable"`
	ComisionPorcentaje     decimal.Decimal   `json:"comisionPorcentaje"`
	Activo                 bool              `json:"activo"`
	Observaciones          string            `json:"observaciones,omitempty"`
	NombreAsignado         string            `json:"nombreAsignado,omitempty"`
	ImportesActivos        bool              `json:"importesActivos"`
	Alias                  string            `json:"alias"`
	ImportesPersonalizados []ImporteResponse `json:"importesPersonalizados"`
}

// ImporteResponse importe personalizado persistido.
type ImporteResponse struct {
	ID       string          `json:"id"`
	Producto string          `json:"producto"`
	Accion   string          `json:"accion"`
	Valor    decimal.Decimal `json:"valor"`
}

// ProveedorResponse detalle de proveedor.
type ProveedorResponse struct {
	OtrosDocumentos       string   `json:"otrosDocumentos,omitempty"`
	SitioWeb              string   `json:"sitioWeb,omitempty"`
	CamaraComercio        string   `json:"camaraComercio,omitempty"`
	RUT                   string   `json:"rut,omitempty"`
	CertificadoBancario   string   `json:"certificadoBancario,omitempty"`
	MedioPago             *string  `json:"medioPago"`
	ResponsableIVA        string   `json:"responsableIva,omitempty"`
	ResponsabilidadFiscal []string `json:"responsabilidadFiscal,omitempty"`
}

// RRHHResponse detalle de rrhh.
type RRHHResponse struct {
	RUT                 string  `json:"rut,omitempty"`
	CertificadoBancario string  `json:"certificadoBancario,omitempty"`
	MedioPago           *string `json:"medioPago"`
	Cargo               string  `json:"cargo,omitempty"`
}

// CuentaResponse cuenta bancaria persistida (con ID asignado por el servidor).
type CuentaResponse struct {
	ID           string    `json:"id"`
	Banco        string    `json:"banco"`
	NumeroCuenta string    `json:"numeroCuenta"`
	TipoCuenta   string    `json:"tipoCuenta,omitempty"`
	Preferida    bool      `json:"preferida"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AdjuntoResponse adjunto persistido.
type AdjuntoResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"createdAt"`
}

// CajerosListResponse listado paginado de cajeros.
type CajerosListResponse struct {
	Data       []*entity.CajeroResumen `json:"data"`
	Pagination Pagination              `json:"pagination"`
}

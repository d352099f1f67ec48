package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CajeroDetalle fila de la tabla cajeros (detalle del tipo "cajero").
// Alias es obligatorio y único en todo el almacén: lo usan los puntos de
// recaudo para identificar al cajero.
type CajeroDetalle struct {
	TerceroID          string
	Responsable        string
	ComisionPorcentaje decimal.Decimal // 0-100
	Activo             bool
	Observaciones      string
	NombreAsignado     string
	ImportesActivos    bool
	Alias              string
}

// ProveedorDetalle fila de la tabla proveedores (detalle del tipo "proveedor").
// MedioPago es un valor derivado de la cuenta bancaria preferida; nunca lo
// escribe el cliente directamente.
type ProveedorDetalle struct {
	TerceroID             string
	OtrosDocumentos       string
	SitioWeb              string
	CamaraComercio        string
	RUT                   string
	CertificadoBancario   string
	MedioPago             *string
	ResponsableIVA        string // "si" | "no" | "" (sin declarar)
	ResponsabilidadFiscal []string
}

// RRHHDetalle fila de la tabla rrhh (detalle del tipo "rrhh").
type RRHHDetalle struct {
	TerceroID           string
	RUT                 string
	CertificadoBancario string
	MedioPago           *string
	Cargo               string
}

// CajeroResumen fila del listado paginado de cajeros (terceros + cajeros).
type CajeroResumen struct {
	ID                 string          `json:"id"`
	Nombre             string          `json:"nombre"`
	Direccion          string          `json:"direccion"`
	Ciudad             string          `json:"ciudad"`
	Departamento       string          `json:"departamento"`
	Pais               string          `json:"pais"`
	Responsable        string          `json:"responsable"`
	ComisionPorcentaje decimal.Decimal `json:"comisionPorcentaje"`
	Activo             bool            `json:"activo"`
	Observaciones      string          `json:"observaciones"`
	NombreAsignado     string          `json:"nombreAsignado"`
	Alias              string          `json:"alias"`
}

// ResponsabilidadesFiscales códigos de régimen fiscal admitidos (DIAN).
var ResponsabilidadesFiscales = []string{
	"O-13 - Gran contribuyente",
	"O-15 - Autorretenedor",
	"O-23 - Agente de retención IVA",
	"O-47 - Régimen simple de tributación",
	"R-99-PN - No aplica - Otros",
}

// ResponsabilidadFiscalValida indica si el valor pertenece al catálogo.
// Acepta tanto la etiqueta completa ("O-13 - Gran contribuyente") como el
// código solo ("O-13").
func ResponsabilidadFiscalValida(valor string) bool {
	for _, c := range ResponsabilidadesFiscales {
		if c == valor || strings.HasPrefix(c, valor+" - ") {
			return true
		}
	}
	return false
}

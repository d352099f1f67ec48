package entity

import "time"

// TipoTercero subtipo excluyente de un tercero. Es un conjunto cerrado:
// todo switch sobre este tipo debe cubrir los tres valores y tratar
// cualquier otro como entrada inválida.
type TipoTercero string

const (
	TipoCajero    TipoTercero = "cajero"
	TipoProveedor TipoTercero = "proveedor"
	TipoRRHH      TipoTercero = "rrhh"
)

// Valido indica si el valor pertenece al conjunto cerrado de tipos.
func (t TipoTercero) Valido() bool {
	switch t {
	case TipoCajero, TipoProveedor, TipoRRHH:
		return true
	}
	return false
}

// Telefono número de contacto con su clase (Personal, Oficina, Soporte, ...).
type Telefono struct {
	Numero string `json:"numero"`
	Tipo   string `json:"tipo"`
}

// Correo dirección de contacto con su clase (Facturación, Soporte, ...).
type Correo struct {
	Email string `json:"email"`
	Tipo  string `json:"tipo"`
}

// Tercero entidad base de contraparte. Cada tercero tiene exactamente un
// tipo vigente y exactamente una fila de detalle en la tabla de ese tipo.
// Todas las lecturas y escrituras van acotadas por WorkspaceID.
type Tercero struct {
	ID                   string
	WorkspaceID          string
	Nombre               string
	Tipo                 TipoTercero
	TipoIdentificacion   string
	NumeroIdentificacion string
	Direccion            string
	Ciudad               string
	Departamento         string
	Pais                 string
	Telefonos            []Telefono
	Correos              []Correo
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TerceroResumen proyección liviana para listados (id, nombre, tipo,
// identificación).
type TerceroResumen struct {
	ID                   string      `json:"id"`
	Nombre               string      `json:"nombre"`
	Tipo                 TipoTercero `json:"tipo"`
	TipoIdentificacion   string      `json:"tipoIdentificacion,omitempty"`
	NumeroIdentificacion string      `json:"numeroIdentificacion,omitempty"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CuentaBancaria cuenta de pago asociada a un tercero. Un tercero puede
// tener cero o más cuentas; la marcada como preferida alimenta el medio de
// pago derivado del detalle (proveedor y rrhh).
type CuentaBancaria struct {
	ID           string
	TerceroID    string
	Banco        string
	NumeroCuenta string
	TipoCuenta   string // ahorros, corriente, ...
	Preferida    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Adjunto referencia a un archivo ya subido por el colaborador de carga.
// Aquí solo se almacena y sincroniza el par (url, nombre), nunca bytes.
type Adjunto struct {
	ID        string
	TerceroID string
	URL       string
	Nombre    string
	CreatedAt time.Time
}

// ImportePersonalizado tarifa propia de un cajero por producto y acción.
// La colección se reemplaza completa en cada actualización que la incluya:
// las filas no tienen identidad que valga la pena conservar.
type ImportePersonalizado struct {
	ID       string
	CajeroID string
	Producto string
	Accion   string
	Valor    decimal.Decimal
}

package terceros

import (
	"context"

	"github.com/acamilodelgado0305/tercerosms/internal/domain/repository"
)

// Repos conjunto de repositorios que participan en una escritura de tercero.
// Dentro de TxRunner.Run todos quedan atados a la misma transacción.
type Repos struct {
	Terceros    repository.TerceroRepository
	Cajeros     repository.CajeroRepository
	Proveedores repository.ProveedorRepository
	RRHH        repository.RRHHRepository
	Cuentas     repository.CuentaBancariaRepository
	Adjuntos    repository.AdjuntoRepository
	Importes    repository.ImporteRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando los
// repositorios atados a esa tx. Garantiza que una escritura de tercero (fila
// base + detalle + cuentas + adjuntos + importes) sea atómica: o se confirma
// todo o no se confirma nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}

// VerificadorTransacciones puerto de salida hacia el servicio de finanzas.
// Se consulta antes de eliminar un tercero; si la consulta falla, la
// eliminación debe fallar (cerrada), nunca asumir que no hay transacciones.
type VerificadorTransacciones interface {
	TieneTransacciones(ctx context.Context, terceroID string) (bool, error)
}

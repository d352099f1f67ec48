package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los casos de uso envuelven estos sentinelas con fmt.Errorf("%w: detalle")
// para indicar el campo o la restricción violada; los handlers HTTP los
// clasifican con errors.Is.
var (
	// ErrValidacion campo requerido ausente o con formato inválido.
	ErrValidacion = errors.New("entrada inválida")
	// ErrNoEncontrado el tercero no existe o pertenece a otro workspace.
	ErrNoEncontrado = errors.New("tercero no encontrado")
	// ErrConflicto violación de restricción única (ej. alias de cajero duplicado)
	// o eliminación bloqueada por transacciones existentes.
	ErrConflicto = errors.New("conflicto con el estado actual")
	// ErrIntegridad fila base sin su fila de detalle correspondiente.
	// Nunca debe ocurrir si la unidad de trabajo funciona bien; se registra
	// como defecto, no como error del usuario.
	ErrIntegridad = errors.New("inconsistencia entre tercero y su detalle")
	// ErrDependencia el servicio de finanzas no pudo consultarse; la operación
	// que dependía de él falla cerrada.
	ErrDependencia = errors.New("servicio de finanzas no disponible")
	// ErrNoAutorizado token ausente o inválido.
	ErrNoAutorizado = errors.New("no autorizado")
)

package terceros

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/acamilodelgado0305/tercerosms/internal/application/dto"
	"github.com/acamilodelgado0305/tercerosms/internal/domain"
	"github.com/acamilodelgado0305/tercerosms/internal/domain/entity"
)

// reconciliarCuentas sincroniza las cuentas guardadas contra la lista
// enviada (diff por identidad):
//   - ID presente y conocido: actualizar esa fila.
//   - ID vacío o desconocido: insertar fila nueva con ID del servidor.
//   - Fila guardada cuyo ID no llegó en la lista: eliminar.
//
// Devuelve el medio de pago derivado de la cuenta preferida y si la lista
// venía en la petición. Con in == nil no se toca nada (nil, false).
// Una cuenta sin banco o sin número invalida la petición completa: el error
// aborta la transacción y no queda ninguna cuenta a medio sincronizar.
func reconciliarCuentas(r Repos, terceroID string, in *[]dto.CuentaInput, now time.Time) (*string, bool, error) {
	if in == nil {
		return nil, false, nil
	}
	entrantes := *in
	for i, c := range entrantes {
		if c.Banco == "" || c.NumeroCuenta == "" {
			return nil, false, fmt.Errorf("%w: la cuenta bancaria %d requiere banco y numeroCuenta", domain.ErrValidacion, i+1)
		}
	}

	guardadas, err := r.Cuentas.ListByTercero(terceroID)
	if err != nil {
		return nil, false, err
	}
	porID := make(map[string]*entity.CuentaBancaria, len(guardadas))
	for _, g := range guardadas {
		porID[g.ID] = g
	}

	conservadas := make(map[string]bool, len(entrantes))
	final := make([]*entity.CuentaBancaria, 0, len(entrantes))
	for _, c := range entrantes {
		if existente, ok := porID[c.ID]; c.ID != "" && ok {
			existente.Banco = c.Banco
			existente.NumeroCuenta = c.NumeroCuenta
			existente.TipoCuenta = c.TipoCuenta
			existente.Preferida = c.Preferida
			existente.UpdatedAt = now
			if err := r.Cuentas.Update(existente); err != nil {
				return nil, false, err
			}
			conservadas[existente.ID] = true
			final = append(final, existente)
			continue
		}
		nueva := &entity.CuentaBancaria{
			ID:           uuid.New().String(),
			TerceroID:    terceroID,
			Banco:        c.Banco,
			NumeroCuenta: c.NumeroCuenta,
			TipoCuenta:   c.TipoCuenta,
			Preferida:    c.Preferida,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := r.Cuentas.Create(nueva); err != nil {
			return nil, false, err
		}
		conservadas[nueva.ID] = true
		final = append(final, nueva)
	}
	for _, g := range guardadas {
		if !conservadas[g.ID] {
			if err := r.Cuentas.Delete(g.ID); err != nil {
				return nil, false, err
			}
		}
	}

	return derivarMedioPago(final), true, nil
}

// derivarMedioPago construye la etiqueta "{banco} - {numero}" a partir de la
// primera cuenta marcada como preferida, en el orden de la lista. Sin cuenta
// preferida el valor derivado es nulo (y sobreescribe el guardado cuando la
// reconciliación fue disparada por una lista enviada).
func derivarMedioPago(cuentas []*entity.CuentaBancaria) *string {
	for _, c := range cuentas {
		if c.Preferida {
			medio := fmt.Sprintf("%s - %s", c.Banco, c.NumeroCuenta)
			return &medio
		}
	}
	return nil
}

package finanzas

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/acamilodelgado0305/tercerosms/internal/application/terceros"
	"github.com/acamilodelgado0305/tercerosms/internal/domain"
)

var _ terceros.VerificadorTransacciones = (*Client)(nil)

// Client cliente HTTP del servicio de finanzas. Solo se usa como guardia de
// eliminación: ¿tiene este tercero transacciones registradas?
type Client struct {
	http *resty.Client
}

// respuestaTransacciones cuerpo esperado de GET /transactions/{id}/has-transactions.
// El campo es puntero para distinguir un false real de un campo ausente.
type respuestaTransacciones struct {
	HasTransactions *bool `json:"hasTransactions"`
}

// NewClient construye el cliente con la URL base del servicio de finanzas.
func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Accept", "application/json")
	return &Client{http: client}
}

// TieneTransacciones consulta si el tercero tiene transacciones en finanzas.
// Cualquier fallo de comunicación, respuesta no-200 o cuerpo que no sea el
// JSON esperado se reporta como domain.ErrDependencia: la eliminación falla
// cerrada, nunca interpreta un error como "sin transacciones". El cuerpo se
// deserializa a mano porque resty ignora SetResult cuando el content type no
// es JSON (un proxy caído puede responder 200 con una página HTML).
func (c *Client) TieneTransacciones(ctx context.Context, terceroID string) (bool, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/transactions/%s/has-transactions", terceroID))
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrDependencia, err)
	}
	if resp.StatusCode() != 200 {
		return false, fmt.Errorf("%w: finanzas respondió %d", domain.ErrDependencia, resp.StatusCode())
	}
	var body respuestaTransacciones
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return false, fmt.Errorf("%w: respuesta de finanzas ilegible: %v", domain.ErrDependencia, err)
	}
	if body.HasTransactions == nil {
		return false, fmt.Errorf("%w: respuesta de finanzas sin el campo hasTransactions", domain.ErrDependencia)
	}
	return *body.HasTransactions, nil
}

package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/acamilodelgado0305/tercerosms/internal/application/dto"
	"github.com/acamilodelgado0305/tercerosms/internal/application/terceros"
)

// InternalHandler endpoints de servicio a servicio. No usan JWT de usuario:
// se autentican con la clave interna compartida en X-Internal-Api-Key.
type InternalHandler struct {
	uc     *terceros.UseCase
	apiKey string
}

// NewInternalHandler construye el handler interno.
func NewInternalHandler(uc *terceros.UseCase, apiKey string) *InternalHandler {
	return &InternalHandler{uc: uc, apiKey: apiKey}
}

// InternalKeyMiddleware exige la clave interna. Comparación en tiempo
// constante; con la clave sin configurar el endpoint queda deshabilitado.
func (h *InternalHandler) InternalKeyMiddleware(c *fiber.Ctx) error {
	if h.apiKey == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DISABLED", Message: "endpoint interno deshabilitado"})
	}
	got := c.Get("X-Internal-Api-Key")
	if subtle.ConstantTimeCompare([]byte(got), []byte(h.apiKey)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "clave interna inválida"})
	}
	return c.Next()
}

// CleanupWorkspace DELETE /internal/workspace-data/:workspaceId
// Elimina todos los terceros del workspace y sus tablas hijas. Lo invoca el
// servicio de cuentas al dar de baja un workspace.
func (h *InternalHandler) CleanupWorkspace(c *fiber.Ctx) error {
	n, err := h.uc.LimpiarWorkspace(c.Context(), c.Params("workspaceId"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"workspaceId": c.Params("workspaceId"), "tercerosEliminados": n})
}

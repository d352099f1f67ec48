package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/acamilodelgado0305/tercerosms/internal/application/dto"
	"github.com/acamilodelgado0305/tercerosms/internal/application/terceros"
	"github.com/acamilodelgado0305/tercerosms/internal/domain"
	"github.com/acamilodelgado0305/tercerosms/internal/domain/entity"
)

// TerceroHandler maneja las peticiones HTTP de terceros (protegido).
type TerceroHandler struct {
	uc *terceros.UseCase
}

// NewTerceroHandler construye el handler.
func NewTerceroHandler(uc *terceros.UseCase) *TerceroHandler {
	return &TerceroHandler{uc: uc}
}

// responderError traduce los errores de dominio a códigos HTTP. El detalle
// del error solo se expone en los errores del cliente; los internos salen
// con mensaje genérico.
func responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidacion):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrConflicto):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrDependencia):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DEPENDENCY", Message: "no se pudo verificar el servicio de finanzas; intente de nuevo"})
	case errors.Is(err, domain.ErrNoAutorizado):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	default:
		// ErrIntegridad y cualquier error no clasificado.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

// Create POST /api/terceros
func (h *TerceroHandler) Create(c *fiber.Ctx) error {
	workspaceID := GetWorkspaceID(c)
	if workspaceID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.GuardarTerceroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Crear(c.Context(), workspaceID, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID GET /api/terceros/:id
func (h *TerceroHandler) GetByID(c *fiber.Ctx) error {
	workspaceID := GetWorkspaceID(c)
	if workspaceID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	resp, err := h.uc.ObtenerPorID(c.Context(), c.Params("id"), workspaceID)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resp)
}

// Update PUT /api/terceros/:id
func (h *TerceroHandler) Update(c *fiber.Ctx) error {
	workspaceID := GetWorkspaceID(c)
	if workspaceID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.GuardarTerceroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Actualizar(c.Context(), c.Params("id"), workspaceID, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resp)
}

// Delete DELETE /api/terceros/:id
func (h *TerceroHandler) Delete(c *fiber.Ctx) error {
	workspaceID := GetWorkspaceID(c)
	if workspaceID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	if err := h.uc.Eliminar(c.Context(), c.Params("id"), workspaceID); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateAdjuntos PATCH /api/terceros/:id/adjuntos
// Sincroniza solo la colección de adjuntos; la subida del archivo ocurre
// antes en otro servicio, aquí llegan url y nombre.
func (h *TerceroHandler) UpdateAdjuntos(c *fiber.Ctx) error {
	workspaceID := GetWorkspaceID(c)
	if workspaceID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in struct {
		Adjuntos []dto.AdjuntoInput `json:"adjuntos"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.ReconciliarAdjuntos(c.Context(), c.Params("id"), workspaceID, in.Adjuntos)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resp)
}

// List GET /api/terceros?tipo=cajero|proveedor|rrhh
func (h *TerceroHandler) List(c *fiber.Ctx) error {
	workspaceID := GetWorkspaceID(c)
	if workspaceID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	tipo := entity.TipoTercero(c.Query("tipo"))
	list, err := h.uc.ListarResumen(c.Context(), workspaceID, tipo)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(list)
}

// ListProveedoresRRHH GET /api/terceros/proveedores-rrhh
func (h *TerceroHandler) ListProveedoresRRHH(c *fiber.Ctx) error {
	workspaceID := GetWorkspaceID(c)
	if workspaceID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	list, err := h.uc.ListarProveedoresRRHH(c.Context(), workspaceID)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(list)
}

// ListCajeros GET /api/terceros/cajeros?page=1&limit=25
func (h *TerceroHandler) ListCajeros(c *fiber.Ctx) error {
	workspaceID := GetWorkspaceID(c)
	if workspaceID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "25"))
	resp, err := h.uc.ListarCajeros(c.Context(), workspaceID, dto.PageRequest{Page: page, Limit: limit})
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resp)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acamilodelgado0305/tercerosms/internal/application/terceros"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TerceroUC      *terceros.UseCase
	JWTSecret      string
	InternalAPIKey string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token con claim de workspace)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	terceroHandler := NewTerceroHandler(deps.TerceroUC)
	grupo := protected.Group("/terceros")
	grupo.Post("/", terceroHandler.Create)
	grupo.Get("/", terceroHandler.List)
	// Listados especializados antes de :id para que Fiber no los capture
	// como parámetro.
	grupo.Get("/cajeros", terceroHandler.ListCajeros)
	grupo.Get("/proveedores-rrhh", terceroHandler.ListProveedoresRRHH)
	grupo.Get("/:id", terceroHandler.GetByID)
	grupo.Put("/:id", terceroHandler.Update)
	grupo.Patch("/:id/adjuntos", terceroHandler.UpdateAdjuntos)
	// Eliminar es destructivo y cruza con finanzas: solo admin o contador.
	grupo.Delete("/:id", RequireRole("admin", "contador"), terceroHandler.Delete)

	// Rutas internas (servicio a servicio, clave compartida)
	internalHandler := NewInternalHandler(deps.TerceroUC, deps.InternalAPIKey)
	internal := app.Group("/internal", internalHandler.InternalKeyMiddleware)
	internal.Delete("/workspace-data/:workspaceId", internalHandler.CleanupWorkspace)
}

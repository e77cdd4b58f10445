package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Documentador-api/internal/application/documents"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Documents *documents.Service
}

// Router registra las rutas de la API. Todas son públicas: el sistema no
// maneja usuarios ni sesiones, es un generador sin estado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Datos de referencia para el front de captura
	catalogHandler := NewCatalogHandler(deps.Documents)
	api.Get("/companies", catalogHandler.Companies)
	api.Get("/catalog", catalogHandler.Catalog)
	api.Get("/letterheads", catalogHandler.Letterheads)

	// Generación de documentos
	docs := api.Group("/documents")
	documentHandler := NewDocumentHandler(deps.Documents)
	docs.Post("/quotation", documentHandler.GenerateQuotation)
	docs.Post("/receipt", documentHandler.GenerateReceipt)
	docs.Post("/stamp", documentHandler.Stamp)
	docs.Post("/validate", documentHandler.Validate)
}

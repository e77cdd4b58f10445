package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Documentador-api/internal/application/documents"
	"github.com/jhoicas/Documentador-api/internal/application/dto"
)

// CatalogHandler expone los datos de referencia que el front de captura
// necesita para prellenar formularios: empresas, catálogo y membretes.
type CatalogHandler struct {
	svc *documents.Service
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(svc *documents.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Companies lista las empresas emisoras configuradas.
// GET /api/companies
func (h *CatalogHandler) Companies(c *fiber.Ctx) error {
	companies := h.svc.Companies()
	out := make([]dto.CompanyResponse, 0, len(companies))
	for i, co := range companies {
		out = append(out, dto.CompanyResponse{
			Indice:      i,
			Nombre:      co.Name,
			RazonSocial: co.LegalName,
			RFC:         co.TaxID,
			Direccion:   co.Address,
			Telefono:    co.Phone,
			Email:       co.Email,
		})
	}
	return c.JSON(out)
}

// Catalog lista el catálogo de productos/servicios.
// GET /api/catalog
func (h *CatalogHandler) Catalog(c *fiber.Ctx) error {
	catalog := h.svc.Catalog()
	out := make([]dto.CatalogItemResponse, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, dto.CatalogItemResponse{
			Codigo:         p.Code,
			Descripcion:    p.Description,
			PrecioUnitario: p.UnitPrice.InexactFloat64(),
		})
	}
	return c.JSON(out)
}

// Letterheads lista los membretes PNG disponibles.
// GET /api/letterheads
func (h *CatalogHandler) Letterheads(c *fiber.Ctx) error {
	names, err := h.svc.Letterheads()
	if err != nil {
		return errorResponse(c, err)
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(dto.LetterheadsResponse{Membretes: names})
}

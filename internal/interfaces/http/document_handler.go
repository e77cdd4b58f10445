package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Documentador-api/internal/application/documents"
	"github.com/jhoicas/Documentador-api/internal/application/dto"
	"github.com/jhoicas/Documentador-api/internal/domain"
)

// DocumentHandler maneja las peticiones HTTP de generación de documentos.
type DocumentHandler struct {
	svc *documents.Service
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(svc *documents.Service) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// GenerateQuotation genera una cotización en PDF.
// POST /api/documents/quotation
func (h *DocumentHandler) GenerateQuotation(c *fiber.Ctx) error {
	var in dto.QuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	pdfBytes, filename, err := h.svc.GenerateQuotation(c.Context(), in.ToDomain())
	if err != nil {
		return errorResponse(c, err)
	}
	return sendPDF(c, pdfBytes, filename)
}

// GenerateReceipt genera un comprobante de pago en PDF. La petición es
// multipart: parte "datos" con el JSON y parte "comprobante" opcional con la
// imagen del comprobante bancario para la segunda hoja.
// POST /api/documents/receipt
func (h *DocumentHandler) GenerateReceipt(c *fiber.Ctx) error {
	var in dto.ReceiptRequest
	if c.Is("json") {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	} else if err := unmarshalFormJSON(c, "datos", &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	// Imagen opcional del comprobante bancario: se guarda en un temporal que
	// vive solo lo que dura esta petición.
	proofPath := ""
	if fh, err := c.FormFile("comprobante"); err == nil && fh != nil {
		proofPath = filepath.Join(os.TempDir(), "comprobante-"+uuid.NewString()+filepath.Ext(fh.Filename))
		if err := c.SaveFile(fh, proofPath); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo guardar la imagen"})
		}
		defer os.Remove(proofPath)
	}

	pdfBytes, filename, err := h.svc.GenerateReceipt(c.Context(), in.ToDomain(proofPath))
	if err != nil {
		return errorResponse(c, err)
	}
	return sendPDF(c, pdfBytes, filename)
}

// Stamp aplica un membrete a todas las páginas de un PDF subido. Multipart:
// parte "pdf" con el documento y campo "membrete" con el nombre listado.
// POST /api/documents/stamp
func (h *DocumentHandler) Stamp(c *fiber.Ctx) error {
	membrete := c.FormValue("membrete")
	if membrete == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "membrete requerido"})
	}

	fh, err := c.FormFile("pdf")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo pdf requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	pdfBytes, filename, err := h.svc.StampPDF(c.Context(), f, membrete, fh.Filename)
	if err != nil {
		return errorResponse(c, err)
	}
	return sendPDF(c, pdfBytes, filename)
}

// Validate verifica que el archivo subido sea un PDF estructuralmente válido.
// POST /api/documents/validate
func (h *DocumentHandler) Validate(c *fiber.Ctx) error {
	fh, err := c.FormFile("pdf")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo pdf requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	ok, msg := h.svc.ValidatePDF(f)
	return c.JSON(dto.ValidateResponse{Valido: ok, Mensaje: msg})
}

// ── helpers ───────────────────────────────────────────────────────────────────

// unmarshalFormJSON deserializa un campo multipart que trae JSON embebido.
func unmarshalFormJSON(c *fiber.Ctx, field string, v any) error {
	raw := c.FormValue(field)
	if raw == "" {
		return fmt.Errorf("campo %s vacío", field)
	}
	return json.Unmarshal([]byte(raw), v)
}

func sendPDF(c *fiber.Ctx, b []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(b)
}

func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidPDF):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrAssetNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

package documents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Documentador-api/internal/domain"
	"github.com/jhoicas/Documentador-api/internal/domain/entity"
)

// ReceiptRequest insumo de un comprobante de pago.
type ReceiptRequest struct {
	CompanyIndex   int
	Folio          string // vacío = se genera REC-aaaammdd-hhmmss
	Client         entity.ReceiptClient
	Concepts       []entity.Concept
	ProofImagePath string // opcional: imagen del comprobante bancario
}

// GenerateReceipt valida la completitud de negocio del insumo y compone el
// comprobante. Devuelve los bytes y el nombre de archivo sugerido.
func (s *Service) GenerateReceipt(ctx context.Context, req ReceiptRequest) ([]byte, string, error) {
	company, err := s.companyAt(req.CompanyIndex)
	if err != nil {
		return nil, "", err
	}

	if strings.TrimSpace(req.Client.Name) == "" {
		return nil, "", fmt.Errorf("%w: el nombre del cliente es obligatorio", domain.ErrInvalidInput)
	}
	if len(req.Concepts) == 0 {
		return nil, "", fmt.Errorf("%w: el comprobante necesita al menos un concepto", domain.ErrInvalidInput)
	}
	for i, c := range req.Concepts {
		if strings.TrimSpace(c.Description) == "" {
			return nil, "", fmt.Errorf("%w: concepto %d sin descripción", domain.ErrInvalidInput, i+1)
		}
		if c.Amount.IsNegative() {
			return nil, "", fmt.Errorf("%w: concepto %d con monto negativo", domain.ErrInvalidInput, i+1)
		}
	}

	now := time.Now()
	folio := req.Folio
	if folio == "" {
		folio = "REC-" + now.Format("20060102-150405")
	}

	pdfBytes, err := s.receiptGen.GenerateReceiptPDF(ctx, ReceiptData{
		Company:        company,
		Client:         req.Client,
		Folio:          folio,
		IssueDate:      now,
		GeneratedAt:    now,
		Concepts:       req.Concepts,
		ProofImagePath: req.ProofImagePath,
		Settings:       s.settings,
	})
	if err != nil {
		return nil, "", fmt.Errorf("documents: comprobante %s: %w", folio, err)
	}

	s.log.WithDocument("comprobante", folio).Info().
		Str("generation_id", uuid.NewString()).
		Str("empresa", company.Name).
		Int("conceptos", len(req.Concepts)).
		Bool("con_comprobante_bancario", req.ProofImagePath != "").
		Msg("comprobante generado")

	return pdfBytes, fmt.Sprintf("comprobante_%s.pdf", folio), nil
}

package documents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Documentador-api/internal/domain"
	"github.com/jhoicas/Documentador-api/internal/domain/entity"
	"github.com/jhoicas/Documentador-api/internal/domain/quote"
)

var oneHundred = decimal.NewFromInt(100)

// QuotationRequest insumo de una cotización ya en términos de dominio.
// CompanyIndex selecciona la empresa emisora entre las configuradas.
type QuotationRequest struct {
	CompanyIndex int
	Folio        string // vacío = se genera COT-aaaammdd-hhmmss
	Client       entity.Client
	Items        []entity.LineItem
	Discount     quote.Discount
}

// GenerateQuotation valida la completitud de negocio del insumo (este es el
// límite deliberado: el compositor confía en lo que recibe) y compone el PDF.
// Devuelve los bytes y el nombre de archivo sugerido.
func (s *Service) GenerateQuotation(ctx context.Context, req QuotationRequest) ([]byte, string, error) {
	company, err := s.companyAt(req.CompanyIndex)
	if err != nil {
		return nil, "", err
	}

	if strings.TrimSpace(req.Client.Name) == "" {
		return nil, "", fmt.Errorf("%w: el nombre del cliente es obligatorio", domain.ErrInvalidInput)
	}
	if len(req.Items) == 0 {
		return nil, "", fmt.Errorf("%w: la cotización necesita al menos una partida", domain.ErrInvalidInput)
	}
	for i, it := range req.Items {
		if it.Quantity < 1 {
			return nil, "", fmt.Errorf("%w: partida %d con cantidad %d", domain.ErrInvalidInput, i+1, it.Quantity)
		}
		if it.UnitPrice.IsNegative() {
			return nil, "", fmt.Errorf("%w: partida %d con precio negativo", domain.ErrInvalidInput, i+1)
		}
	}
	if req.Discount.Apply && req.Discount.Kind == quote.DiscountPercentage {
		if req.Discount.Value.IsNegative() || req.Discount.Value.GreaterThan(oneHundred) {
			return nil, "", fmt.Errorf("%w: el descuento porcentual debe estar entre 0 y 100", domain.ErrInvalidInput)
		}
	}

	now := time.Now()
	folio := req.Folio
	if folio == "" {
		folio = "COT-" + now.Format("20060102-150405")
	}

	pdfBytes, err := s.quoteGen.GenerateQuotationPDF(ctx, QuotationData{
		Company:   company,
		Client:    req.Client,
		Folio:     folio,
		IssueDate: now,
		Items:     req.Items,
		Discount:  req.Discount,
		Settings:  s.settings,
	})
	if err != nil {
		return nil, "", fmt.Errorf("documents: cotización %s: %w", folio, err)
	}

	s.log.WithDocument("cotizacion", folio).Info().
		Str("generation_id", uuid.NewString()).
		Str("empresa", company.Name).
		Int("partidas", len(req.Items)).
		Msg("cotización generada")

	return pdfBytes, fmt.Sprintf("cotizacion_%s.pdf", folio), nil
}

func (s *Service) companyAt(idx int) (entity.Company, error) {
	if idx < 0 || idx >= len(s.companies) {
		return entity.Company{}, fmt.Errorf("%w: empresa %d", domain.ErrNotFound, idx)
	}
	return s.companies[idx], nil
}

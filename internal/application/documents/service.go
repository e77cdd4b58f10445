// Package documents contiene los casos de uso de generación de documentos:
// cotizaciones, comprobantes de pago y estampado de membretes. Cada llamada
// recibe su insumo completo y produce su salida completa; no hay estado
// mutable compartido entre llamadas, solo los datos de referencia cargados al
// arranque.
package documents

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Documentador-api/internal/domain/entity"
	"github.com/jhoicas/Documentador-api/pkg/config"
	"github.com/jhoicas/Documentador-api/pkg/logger"
)

// Deps puertos que el servicio necesita inyectados.
type Deps struct {
	QuoteGen    QuotationPDFGenerator
	ReceiptGen  ReceiptPDFGenerator
	Stamper     Stamper
	Validator   Validator
	Letterheads LetterheadStore
	Log         *logger.Logger
}

// Service reúne los datos de referencia (empresas, catálogo, configuración
// global) y los puertos de render. Los datos de referencia son de solo lectura
// durante toda la vida del proceso.
type Service struct {
	companies []entity.Company
	catalog   []entity.CatalogProduct
	settings  entity.Settings

	quoteGen    QuotationPDFGenerator
	receiptGen  ReceiptPDFGenerator
	stamper     Stamper
	validator   Validator
	letterheads LetterheadStore
	log         *logger.Logger
}

// NewService construye el servicio convirtiendo la configuración de negocio a
// entidades de dominio (los montos pasan de float JSON a decimal aquí, una
// sola vez).
func NewService(bc *config.BusinessConfig, deps Deps) *Service {
	companies := make([]entity.Company, 0, len(bc.Empresas))
	for _, e := range bc.Empresas {
		companies = append(companies, entity.Company{
			Name:      e.Nombre,
			LegalName: e.RazonSocial,
			TaxID:     e.RFC,
			Address:   e.Direccion,
			Phone:     e.Telefono,
			Email:     e.Email,
			LogoPath:  e.Logo,
		})
	}

	catalog := make([]entity.CatalogProduct, 0, len(bc.CatalogoProductos))
	for _, p := range bc.CatalogoProductos {
		catalog = append(catalog, entity.CatalogProduct{
			Code:        p.Codigo,
			Description: p.Descripcion,
			UnitPrice:   decimal.NewFromFloat(p.PrecioUnitario),
		})
	}

	return &Service{
		companies: companies,
		catalog:   catalog,
		settings: entity.Settings{
			TaxRate:      decimal.NewFromFloat(bc.Configuracion.IVA),
			Currency:     bc.Configuracion.Moneda,
			ValidityDays: bc.Configuracion.ValidezCotizacionDias,
			Terms:        bc.Configuracion.TerminosCondiciones,
		},
		quoteGen:    deps.QuoteGen,
		receiptGen:  deps.ReceiptGen,
		stamper:     deps.Stamper,
		validator:   deps.Validator,
		letterheads: deps.Letterheads,
		log:         deps.Log,
	}
}

// Companies devuelve las empresas emisoras disponibles.
func (s *Service) Companies() []entity.Company { return s.companies }

// Catalog devuelve el catálogo de productos para prellenar partidas.
func (s *Service) Catalog() []entity.CatalogProduct { return s.catalog }

// Settings devuelve la configuración global de documentos.
func (s *Service) Settings() entity.Settings { return s.settings }

// Letterheads lista los membretes disponibles.
func (s *Service) Letterheads() ([]string, error) {
	return s.letterheads.List()
}

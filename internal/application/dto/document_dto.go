// Package dto define las formas JSON de la API. Los montos viajan como
// números JSON y se convierten a decimal una sola vez al entrar al dominio.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Documentador-api/internal/application/documents"
	"github.com/jhoicas/Documentador-api/internal/domain/entity"
	"github.com/jhoicas/Documentador-api/internal/domain/quote"
)

// ErrorResponse respuesta uniforme de error.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ── Cotización ────────────────────────────────────────────────────────────────

// QuotationRequest cuerpo de POST /api/documents/quotation.
type QuotationRequest struct {
	Empresa   int               `json:"empresa"` // índice en la lista de empresas configuradas
	Folio     string            `json:"folio"`
	Cliente   ClientePayload    `json:"cliente"`
	Items     []ItemPayload     `json:"items"`
	Descuento *DescuentoPayload `json:"descuento"`
}

// ClientePayload datos del cliente de una cotización.
type ClientePayload struct {
	Nombre    string `json:"nombre"`
	Empresa   string `json:"empresa"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
}

// ItemPayload una partida de cotización.
type ItemPayload struct {
	Codigo         string  `json:"codigo"`
	Descripcion    string  `json:"descripcion"`
	Cantidad       int64   `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
}

// DescuentoPayload especificación de descuento; tipo ∈ {porcentaje, monto}.
type DescuentoPayload struct {
	Aplicar bool    `json:"aplicar"`
	Tipo    string  `json:"tipo"`
	Valor   float64 `json:"valor"`
}

// ToDomain convierte la petición al insumo del caso de uso.
func (r QuotationRequest) ToDomain() documents.QuotationRequest {
	items := make([]entity.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entity.LineItem{
			Code:        it.Codigo,
			Description: it.Descripcion,
			Quantity:    it.Cantidad,
			UnitPrice:   decimal.NewFromFloat(it.PrecioUnitario),
		})
	}

	var d quote.Discount
	if r.Descuento != nil {
		d = quote.Discount{
			Apply: r.Descuento.Aplicar,
			Kind:  quote.DiscountKind(r.Descuento.Tipo),
			Value: decimal.NewFromFloat(r.Descuento.Valor),
		}
	}

	return documents.QuotationRequest{
		CompanyIndex: r.Empresa,
		Folio:        r.Folio,
		Client: entity.Client{
			Name:    r.Cliente.Nombre,
			Company: r.Cliente.Empresa,
			Address: r.Cliente.Direccion,
			Phone:   r.Cliente.Telefono,
			Email:   r.Cliente.Email,
		},
		Items:    items,
		Discount: d,
	}
}

// ── Comprobante de pago ───────────────────────────────────────────────────────

// ReceiptRequest parte "datos" (JSON) de POST /api/documents/receipt.
type ReceiptRequest struct {
	Empresa   int                   `json:"empresa"`
	Folio     string                `json:"folio"`
	Cliente   ReceiptClientePayload `json:"cliente"`
	Conceptos []ConceptoPayload     `json:"conceptos"`
}

// ReceiptClientePayload esquema reducido del pagador.
type ReceiptClientePayload struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
}

// ConceptoPayload un cargo del comprobante.
type ConceptoPayload struct {
	Descripcion string  `json:"descripcion"`
	Monto       float64 `json:"monto"`
}

// ToDomain convierte la petición al insumo del caso de uso. La ruta de la
// imagen del comprobante bancario la pone el handler tras guardar el archivo.
func (r ReceiptRequest) ToDomain(proofImagePath string) documents.ReceiptRequest {
	concepts := make([]entity.Concept, 0, len(r.Conceptos))
	for _, c := range r.Conceptos {
		concepts = append(concepts, entity.Concept{
			Description: c.Descripcion,
			Amount:      decimal.NewFromFloat(c.Monto),
		})
	}

	return documents.ReceiptRequest{
		CompanyIndex: r.Empresa,
		Folio:        r.Folio,
		Client: entity.ReceiptClient{
			Name:  r.Cliente.Nombre,
			Phone: r.Cliente.Telefono,
		},
		Concepts:       concepts,
		ProofImagePath: proofImagePath,
	}
}

// ── Consultas ─────────────────────────────────────────────────────────────────

// ValidateResponse resultado de la validación estructural de un PDF.
type ValidateResponse struct {
	Valido  bool   `json:"valido"`
	Mensaje string `json:"mensaje,omitempty"`
}

// LetterheadsResponse membretes disponibles.
type LetterheadsResponse struct {
	Membretes []string `json:"membretes"`
}

// CompanyResponse empresa emisora configurada.
type CompanyResponse struct {
	Indice      int    `json:"indice"`
	Nombre      string `json:"nombre"`
	RazonSocial string `json:"razon_social"`
	RFC         string `json:"rfc"`
	Direccion   string `json:"direccion"`
	Telefono    string `json:"telefono"`
	Email       string `json:"email"`
}

// CatalogItemResponse entrada del catálogo de productos.
type CatalogItemResponse struct {
	Codigo         string  `json:"codigo"`
	Descripcion    string  `json:"descripcion"`
	PrecioUnitario float64 `json:"precio_unitario"`
}

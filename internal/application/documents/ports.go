package documents

import (
	"context"
	"io"
	"time"

	"github.com/jhoicas/Documentador-api/internal/domain/entity"
	"github.com/jhoicas/Documentador-api/internal/domain/quote"
)

// QuotationData insumo completo para componer una cotización. El caso de uso
// lo arma desde la configuración y la petición; el generador solo lo lee.
type QuotationData struct {
	Company   entity.Company
	Client    entity.Client
	Folio     string
	IssueDate time.Time // fecha de emisión; la vigencia se deriva de Settings
	Items     []entity.LineItem
	Discount  quote.Discount
	Settings  entity.Settings
}

// ReceiptData insumo completo para componer un comprobante de pago.
type ReceiptData struct {
	Company        entity.Company
	Client         entity.ReceiptClient
	Folio          string
	IssueDate      time.Time
	GeneratedAt    time.Time // sello de generación del pie, independiente del folio
	Concepts       []entity.Concept
	ProofImagePath string // opcional: imagen del comprobante bancario, segunda hoja
	Settings       entity.Settings
}

// QuotationPDFGenerator renderiza una cotización a bytes PDF.
type QuotationPDFGenerator interface {
	GenerateQuotationPDF(ctx context.Context, data QuotationData) ([]byte, error)
}

// ReceiptPDFGenerator renderiza un comprobante de pago a bytes PDF.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, data ReceiptData) ([]byte, error)
}

// Stamper aplica un membrete a todas las páginas de un PDF fuente y devuelve
// un PDF nuevo con el mismo número y tamaño de páginas.
type Stamper interface {
	Stamp(ctx context.Context, src io.ReadSeeker, letterheadPath string) ([]byte, error)
}

// Validator verifica que un stream sea un PDF estructuralmente válido sin
// consumirlo: al regresar, la posición de lectura queda al inicio.
type Validator interface {
	Validate(src io.ReadSeeker) (ok bool, message string)
}

// LetterheadStore lista los membretes disponibles y resuelve nombres a rutas.
type LetterheadStore interface {
	List() ([]string, error)
	Resolve(name string) (string, error)
}

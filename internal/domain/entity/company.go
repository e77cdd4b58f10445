package entity

import "github.com/shopspring/decimal"

// Company representa una empresa emisora de documentos. Son datos de referencia
// inmutables: vienen de la configuración y el núcleo solo los lee.
type Company struct {
	Name        string // nombre corto, para selección
	LegalName   string // razón social
	TaxID       string // RFC
	Address     string
	Phone       string
	Email       string
	LogoPath    string // ruta a la imagen del logo; puede no existir en disco
}

// CatalogProduct entrada del catálogo de productos/servicios para prellenar
// partidas de cotización.
type CatalogProduct struct {
	Code        string
	Description string
	UnitPrice   decimal.Decimal
}

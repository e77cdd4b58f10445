package entity

import "github.com/shopspring/decimal"

// Settings configuración global de documentos. Se carga una vez al arranque y
// es de solo lectura durante la generación de cualquier documento.
type Settings struct {
	TaxRate      decimal.Decimal // fracción, ej. 0.16
	Currency     string          // etiqueta de moneda, ej. "MXN"
	ValidityDays int             // vigencia de una cotización en días
	Terms        string          // términos y condiciones (texto libre, multilinea)
}

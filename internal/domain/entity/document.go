package entity

import "github.com/shopspring/decimal"

// LineItem una partida de cotización. El orden de captura es el orden de
// impresión. El subtotal nunca se almacena: se calcula como Quantity × UnitPrice.
type LineItem struct {
	Code        string
	Description string
	Quantity    int64 // ≥ 1, lo garantiza el caller
	UnitPrice   decimal.Decimal
}

// Subtotal devuelve Quantity × UnitPrice.
func (li LineItem) Subtotal() decimal.Decimal {
	return decimal.NewFromInt(li.Quantity).Mul(li.UnitPrice)
}

// Concept un cargo de comprobante de pago: descripción y monto directo,
// sin desglose cantidad/precio.
type Concept struct {
	Description string
	Amount      decimal.Decimal
}

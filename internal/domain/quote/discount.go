// Package quote contiene el cálculo puro de totales de cotización: suma de
// partidas, descuento, IVA sobre la base descontada y total. No toca el
// backend de render; eso permite probarlo con vectores exactos.
package quote

import "github.com/shopspring/decimal"

// DiscountKind discrimina las dos formas de descuento.
type DiscountKind string

const (
	// DiscountPercentage el valor es un porcentaje del subtotal, en [0, 100].
	DiscountPercentage DiscountKind = "porcentaje"
	// DiscountFixed el valor es un monto fijo en la moneda del documento.
	DiscountFixed DiscountKind = "monto"
)

// Discount especificación de descuento de una cotización. Se aplica una sola
// vez sobre la suma de subtotales de partida.
type Discount struct {
	Apply bool
	Kind  DiscountKind
	Value decimal.Decimal
}

// Amount devuelve el monto de descuento para el subtotal dado. Un descuento
// fijo mayor que el subtotal NO se recorta: el caller decide si eso es válido.
func (d Discount) Amount(subtotal decimal.Decimal) decimal.Decimal {
	if !d.Apply {
		return decimal.Zero
	}
	switch d.Kind {
	case DiscountPercentage:
		return subtotal.Mul(d.Value).Div(decimal.NewFromInt(100))
	case DiscountFixed:
		return d.Value
	default:
		return decimal.Zero
	}
}

// Label devuelve la etiqueta de la fila de descuento. Solo los descuentos
// porcentuales llevan el porcentaje; un monto fijo jamás se rotula con "%".
func (d Discount) Label() string {
	if d.Kind == DiscountPercentage {
		return "Descuento (" + d.Value.String() + "%):"
	}
	return "Descuento:"
}

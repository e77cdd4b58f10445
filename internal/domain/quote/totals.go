package quote

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Documentador-api/internal/domain/entity"
)

// Totals desglose monetario de una cotización. Siempre se recalcula desde las
// partidas al momento de renderizar; nunca se cachea ni se muta.
type Totals struct {
	Subtotal decimal.Decimal // suma de subtotales de partida, antes de descuento
	Discount decimal.Decimal // monto descontado (cero si no aplica)
	TaxBase  decimal.Decimal // Subtotal − Discount
	Tax      decimal.Decimal // TaxBase × tasa; el IVA nunca grava la base sin descontar
	Total    decimal.Decimal // TaxBase + Tax
}

// Calculate computa los totales de una cotización. Con cero partidas todo
// queda en cero; defenderse de ese caso es responsabilidad del caller.
func Calculate(items []entity.LineItem, d Discount, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Subtotal())
	}

	discount := d.Amount(subtotal)
	base := subtotal.Sub(discount)
	tax := base.Mul(taxRate)

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		TaxBase:  base,
		Tax:      tax,
		Total:    base.Add(tax),
	}
}

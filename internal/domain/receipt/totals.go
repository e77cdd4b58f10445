// Package receipt contiene el cálculo de totales de comprobantes de pago.
package receipt

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Documentador-api/internal/domain/entity"
)

// Total suma los montos de todos los conceptos. La fila de total del
// comprobante se sintetiza siempre a partir de esta suma, nunca se captura.
func Total(concepts []entity.Concept) decimal.Decimal {
	total := decimal.Zero
	for _, c := range concepts {
		total = total.Add(c.Amount)
	}
	return total
}

package quote_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Documentador-api/internal/domain/entity"
	"github.com/jhoicas/Documentador-api/internal/domain/quote"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vector de referencia calculado a mano:
//
//	items    = (10 × 1500.00) + (5 × 850.00) + (1 × 3200.00) = 22,950.00
//	desc 10% = 2,295.00 → base = 20,655.00
//	IVA 16%  = 3,304.80 → total = 23,959.80
// ──────────────────────────────────────────────────────────────────────────────

var testTaxRate = decimal.NewFromFloat(0.16)

func buildTestItems() []entity.LineItem {
	return []entity.LineItem{
		{Code: "SRV-001", Description: "Desarrollo web", Quantity: 10, UnitPrice: decimal.NewFromFloat(1500)},
		{Code: "SRV-002", Description: "Mantenimiento mensual", Quantity: 5, UnitPrice: decimal.NewFromFloat(850)},
		{Code: "SRV-003", Description: "Capacitación", Quantity: 1, UnitPrice: decimal.NewFromFloat(3200)},
	}
}

func TestCalculate_VectorExacto(t *testing.T) {
	d := quote.Discount{Apply: true, Kind: quote.DiscountPercentage, Value: decimal.NewFromInt(10)}

	tot := quote.Calculate(buildTestItems(), d, testTaxRate)

	assert.True(t, tot.Subtotal.Equal(decimal.NewFromFloat(22950)), "subtotal: %s", tot.Subtotal)
	assert.True(t, tot.Discount.Equal(decimal.NewFromFloat(2295)), "descuento: %s", tot.Discount)
	assert.True(t, tot.TaxBase.Equal(decimal.NewFromFloat(20655)), "base: %s", tot.TaxBase)
	assert.True(t, tot.Tax.Equal(decimal.NewFromFloat(3304.80)), "iva: %s", tot.Tax)
	assert.True(t, tot.Total.Equal(decimal.NewFromFloat(23959.80)), "total: %s", tot.Total)
}

// TestCalculate_SinDescuento verifica que sin descuento la base gravable es el
// subtotal completo.
func TestCalculate_SinDescuento(t *testing.T) {
	tot := quote.Calculate(buildTestItems(), quote.Discount{}, testTaxRate)

	assert.True(t, tot.Discount.IsZero())
	assert.True(t, tot.TaxBase.Equal(tot.Subtotal))
	assert.True(t, tot.Tax.Equal(decimal.NewFromFloat(3672)), "22,950 × 0.16 = 3,672: %s", tot.Tax)
}

// TestCalculate_DescuentoMontoFijo un descuento fijo de 500 sobre 1000 deja
// base 500; el IVA grava la base descontada, nunca la previa.
func TestCalculate_DescuentoMontoFijo(t *testing.T) {
	items := []entity.LineItem{
		{Code: "X", Description: "x", Quantity: 1, UnitPrice: decimal.NewFromInt(1000)},
	}
	d := quote.Discount{Apply: true, Kind: quote.DiscountFixed, Value: decimal.NewFromInt(500)}

	tot := quote.Calculate(items, d, testTaxRate)

	assert.True(t, tot.TaxBase.Equal(decimal.NewFromInt(500)))
	assert.True(t, tot.Tax.Equal(decimal.NewFromInt(80)), "500 × 0.16 = 80: %s", tot.Tax)
	assert.True(t, tot.Total.Equal(decimal.NewFromInt(580)))
}

// TestCalculate_DescuentoMayorQueSubtotal documenta la política elegida: no se
// recorta, el total puede quedar negativo y es responsabilidad del caller
// impedirlo si no lo quiere.
func TestCalculate_DescuentoMayorQueSubtotal(t *testing.T) {
	items := []entity.LineItem{
		{Code: "X", Description: "x", Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
	}
	d := quote.Discount{Apply: true, Kind: quote.DiscountFixed, Value: decimal.NewFromInt(150)}

	tot := quote.Calculate(items, d, testTaxRate)

	assert.True(t, tot.TaxBase.IsNegative())
	assert.True(t, tot.Total.IsNegative())
}

// TestCalculate_CeroPartidas todo en cero; el compositor imprime la tabla solo
// con encabezado y el caller es quien debe exigir al menos una partida.
func TestCalculate_CeroPartidas(t *testing.T) {
	tot := quote.Calculate(nil, quote.Discount{Apply: true, Kind: quote.DiscountPercentage, Value: decimal.NewFromInt(10)}, testTaxRate)

	assert.True(t, tot.Subtotal.IsZero())
	assert.True(t, tot.Discount.IsZero())
	assert.True(t, tot.Tax.IsZero())
	assert.True(t, tot.Total.IsZero())
}

// ── Etiquetas de descuento ────────────────────────────────────────────────────

func TestDiscountLabel_PorcentajeLlevaSigno(t *testing.T) {
	d := quote.Discount{Apply: true, Kind: quote.DiscountPercentage, Value: decimal.NewFromInt(10)}
	assert.Equal(t, "Descuento (10%):", d.Label())
}

func TestDiscountLabel_MontoFijoNuncaLlevaPorcentaje(t *testing.T) {
	d := quote.Discount{Apply: true, Kind: quote.DiscountFixed, Value: decimal.NewFromInt(500)}
	assert.Equal(t, "Descuento:", d.Label())
	assert.NotContains(t, d.Label(), "%")
}

func TestDiscountAmount_NoAplicaEsCero(t *testing.T) {
	d := quote.Discount{Apply: false, Kind: quote.DiscountPercentage, Value: decimal.NewFromInt(50)}
	assert.True(t, d.Amount(decimal.NewFromInt(1000)).IsZero())
}

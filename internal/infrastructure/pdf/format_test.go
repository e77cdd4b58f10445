package pdf

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestFormatMoney separador de miles, dos decimales exactos y símbolo.
func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{350.5, "$350.50"},
		{1234.56, "$1,234.56"},
		{22950, "$22,950.00"},
		{23959.8, "$23,959.80"},
		{1000000, "$1,000,000.00"},
		{999.999, "$1,000.00"}, // redondeo a dos decimales
	}
	for _, c := range cases {
		assert.Equal(t, c.want, formatMoney(decimal.NewFromFloat(c.in)), "entrada %v", c.in)
	}
}

// TestFormatMoney_Negativo el signo va antes del símbolo, como en los
// descuentos impresos.
func TestFormatMoney_Negativo(t *testing.T) {
	assert.Equal(t, "-$2,295.00", formatMoney(decimal.NewFromFloat(-2295)))
}

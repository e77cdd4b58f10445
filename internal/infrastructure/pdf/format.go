package pdf

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// formatMoney imprime un decimal como "$1,234.56": separador de miles, dos
// decimales exactos y signo antes del símbolo ("-$500.00").
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, decPart, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, intPart[i])
	}

	out := "$" + string(buf) + "." + decPart
	if neg {
		return "-" + out
	}
	return out
}

const (
	// dateLayout fecha corta dd/mm/aaaa, la de todos los documentos.
	dateLayout = "02/01/2006"
	// timestampLayout fecha + hora del pie de comprobante.
	timestampLayout = "02/01/2006 a las 15:04:05"
)

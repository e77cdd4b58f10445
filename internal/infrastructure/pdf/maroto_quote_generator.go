// Layout de la cotización (carta, 612×792 pt):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  COTIZACIÓN                          │  logo de la empresa  │
//	│  Folio / Fecha / Válida hasta                              │
//	│  DATOS DEL CLIENTE: nombre, empresa, dirección, tel, email  │
//	│  DETALLE: Código | Descripción | Cant. | $ Unit. | Subtotal │
//	│  TOTALES: Subtotal / Descuento / IVA / TOTAL                │
//	│  Términos y condiciones       │       Identidad fiscal      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Documentador-api/internal/application/documents"
	"github.com/jhoicas/Documentador-api/internal/domain/entity"
	"github.com/jhoicas/Documentador-api/internal/domain/quote"
	"github.com/jhoicas/Documentador-api/pkg/logger"
)

// MarotoQuoteGenerator implementa documents.QuotationPDFGenerator usando Maroto v2.
type MarotoQuoteGenerator struct {
	log *logger.Logger
}

// NewMarotoQuoteGenerator construye el generador.
func NewMarotoQuoteGenerator(log *logger.Logger) *MarotoQuoteGenerator {
	return &MarotoQuoteGenerator{log: log}
}

// GenerateQuotationPDF compone la cotización y devuelve sus bytes. Los totales
// se recalculan aquí desde las partidas; nunca llegan precalculados.
func (g *MarotoQuoteGenerator) GenerateQuotationPDF(
	_ context.Context,
	data documents.QuotationData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización "+data.Folio, true).
		WithAuthor(data.Company.LegalName, true).
		Build()

	m := maroto.New(cfg)

	// Encabezado: título + logo
	m.AddRows(g.headerRow(data.Company))

	// Folio, fecha de emisión y vigencia
	for _, r := range metaRows(data) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))

	// Datos del cliente
	for _, r := range clientRows(data.Client) {
		m.AddRows(r)
	}

	// Tabla de partidas
	m.AddRows(itemsHeaderRow())
	for _, r := range itemRows(data.Items) {
		m.AddRows(r)
	}

	// Totales (se recalculan desde las partidas)
	totals := quote.Calculate(data.Items, data.Discount, data.Settings.TaxRate)
	for _, r := range totalsRows(data, totals) {
		m.AddRows(r)
	}

	// Pie: términos y condiciones + identidad fiscal
	m.AddRows(line.NewRow(6))
	m.AddRows(footerRow(data.Company, data.Settings))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar cotización: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título a la izquierda, logo a la derecha. Si el logo no se puede
// cargar, la columna queda vacía y el documento se genera igual.
func (g *MarotoQuoteGenerator) headerRow(company entity.Company) core.Row {
	logoCol := col.New(5)
	if _, _, err := imageSize(company.LogoPath); err == nil {
		logoCol = image.NewFromFileCol(5, company.LogoPath, props.Rect{
			Center:  true,
			Percent: 80,
		})
	} else {
		g.log.Warn().Str("logo", company.LogoPath).Err(err).
			Msg("logo no disponible, cotización sin imagen de encabezado")
	}

	return row.New(28).Add(
		col.New(7).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 24, Top: 9,
			}),
		),
		logoCol,
	)
}

// metaRows: folio, fecha de emisión y fecha límite de vigencia.
func metaRows(data documents.QuotationData) []core.Row {
	expiry := data.IssueDate.AddDate(0, 0, data.Settings.ValidityDays)

	return []core.Row{
		row.New(6).Add(
			col.New(2).Add(text.New("Folio:", props.Text{Style: fontstyle.Bold, Top: 1})),
			col.New(10).Add(text.New(data.Folio, props.Text{Top: 1})),
		),
		row.New(6).Add(
			col.New(2).Add(text.New("Fecha:", props.Text{Style: fontstyle.Bold, Top: 1})),
			col.New(3).Add(text.New(data.IssueDate.Format(dateLayout), props.Text{Top: 1})),
			col.New(4).Add(text.New("Cotización válida hasta el:", props.Text{Style: fontstyle.Bold, Top: 1})),
			col.New(3).Add(text.New(expiry.Format(dateLayout), props.Text{Top: 1})),
		),
	}
}

// clientRows: bloque del cliente. Los campos vacíos se imprimen como celdas en
// blanco, no se omiten.
func clientRows(client entity.Client) []core.Row {
	rows := []core.Row{
		row.New(9).Add(col.New(12).Add(
			text.New("DATOS DEL CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorSlate, Top: 2,
			}),
		)),
	}

	field := func(label, value string) {
		rows = append(rows, row.New(5).Add(
			col.New(2).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Top: 0.5})),
			col.New(10).Add(text.New(value, props.Text{Size: 9, Top: 0.5})),
		))
	}
	field("Cliente:", client.Name)
	field("Empresa:", client.Company)
	field("Dirección:", client.Address)
	field("Teléfono:", client.Phone)
	field("Email:", client.Email)

	return rows
}

// itemsHeaderRow: cabecera de la tabla de partidas, fondo negro y texto blanco.
func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		}))
	}
	return row.New(7).WithStyle(&props.Cell{BackgroundColor: colorBlack}).Add(
		h("Código", 2, align.Left),
		h("Descripción", 5, align.Left),
		h("Cantidad", 1, align.Right),
		h("$ Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// itemRows: una fila por partida, con sombreado alternado para legibilidad.
// El subtotal de cada fila es cantidad × precio unitario, calculado aquí.
func itemRows(items []entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for i, it := range items {
		r := row.New(6)
		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: colorShade})
		}
		r.Add(
			col.New(2).Add(text.New(it.Code, props.Text{Size: 9, Top: 1, Left: 1})),
			col.New(5).Add(text.New(it.Description, props.Text{Size: 9, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatMoney(it.UnitPrice), props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatMoney(it.Subtotal()), props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
		)
		result = append(result, r)
	}
	return result
}

// totalsRows: subtotal, descuento (solo si el monto calculado es > 0), IVA
// sobre la base descontada y total. La etiqueta del IVA lleva la tasa como
// porcentaje entero; la del descuento solo lleva "%" cuando es porcentual.
func totalsRows(data documents.QuotationData, totals quote.Totals) []core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 10, Align: align.Right, Top: 1, Right: 1})
	}

	rows := []core.Row{
		row.New(6).Add(
			col.New(8).Add(label("Subtotal:")),
			col.New(4).Add(value(formatMoney(totals.Subtotal))),
		),
	}

	if totals.Discount.IsPositive() {
		rows = append(rows, row.New(6).Add(
			col.New(8).Add(label(data.Discount.Label())),
			col.New(4).Add(value("-"+formatMoney(totals.Discount))),
		))
	}

	taxPct := data.Settings.TaxRate.Mul(hundred).Round(0)
	rows = append(rows,
		row.New(6).Add(
			col.New(8).Add(label(fmt.Sprintf("IVA (%s%%):", taxPct))),
			col.New(4).Add(value(formatMoney(totals.Tax))),
		),
		line.NewRow(1, props.Line{Color: colorBlack, Thickness: 0.8}),
		row.New(8).Add(
			col.New(8).Add(text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1, Right: 2,
			})),
			col.New(4).Add(text.New(formatMoney(totals.Total), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1, Right: 1,
			})),
		),
	)
	return rows
}

// footerRow: términos y condiciones a la izquierda, identidad fiscal de la
// empresa alineada a la derecha.
func footerRow(company entity.Company, settings entity.Settings) core.Row {
	right := func(s string, top float64, bold bool) core.Component {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return text.New(s, props.Text{Style: style, Size: 9, Align: align.Right, Top: top})
	}

	return row.New(40).Add(
		col.New(5).Add(
			text.New("TÉRMINOS Y CONDICIONES", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}),
			text.New(settings.Terms, props.Text{Size: 8, Color: colorGray, Top: 5}),
		),
		col.New(7).Add(
			right(company.LegalName, 0, true),
			right("RFC: "+company.TaxID, 5, false),
			right(company.Address, 9, false),
			right("Tel: "+company.Phone, 13, false),
			right("Email: "+company.Email, 17, false),
		),
	)
}

package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
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
	"github.com/jhoicas/Documentador-api/internal/domain/geometry"
	"github.com/jhoicas/Documentador-api/internal/domain/receipt"
	"github.com/jhoicas/Documentador-api/pkg/logger"
)

// Caja máxima de la imagen del comprobante bancario en la segunda hoja:
// 4 × 5 pulgadas, en milímetros (unidad de trabajo de Maroto).
const (
	proofMaxWidthMM  = 101.6
	proofMaxHeightMM = 127.0
)

const receiptDisclaimer = "Este comprobante tiene validez como constancia de pago"

// MarotoReceiptGenerator implementa documents.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	log *logger.Logger
}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator(log *logger.Logger) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{log: log}
}

// GenerateReceiptPDF compone el comprobante de pago y devuelve sus bytes.
// Si hay imagen de comprobante bancario se anexa en una segunda hoja; si esa
// imagen no carga, se imprime un aviso en su lugar y el documento sale igual.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	data documents.ReceiptData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Comprobante de pago "+data.Folio, true).
		WithAuthor(data.Company.LegalName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(data.Company))
	m.AddRows(folioRow(data))

	// Cliente: esquema reducido, solo nombre y celular
	for _, r := range receiptClientRows(data.Client) {
		m.AddRows(r)
	}

	// Conceptos con fila de total sintetizada
	for _, r := range conceptRows(data.Concepts, data.Settings.Currency) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(4))
	for _, r := range companyInfoRows(data.Company) {
		m.AddRows(r)
	}

	// Hoja 2: imagen del comprobante bancario (opcional). El sello de
	// generación va al final del flujo, en la última hoja que exista.
	if data.ProofImagePath != "" {
		p := g.proofPage(data.ProofImagePath)
		p.Add(stampFooterRows(data)...)
		m.AddPages(p)
	} else {
		for _, r := range stampFooterRows(data) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: logo + título. Sin logo cargable, el título va solo; el
// comprobante jamás falla por un logo roto.
func (g *MarotoReceiptGenerator) headerRow(company entity.Company) core.Row {
	title := func(size int, top float64) core.Col {
		return col.New(size).Add(text.New("COMPROBANTE DE PAGO", props.Text{
			Style: fontstyle.Bold, Size: 20, Color: colorSlate,
			Align: align.Center, Top: top,
		}))
	}

	if _, _, err := imageSize(company.LogoPath); err != nil {
		g.log.Warn().Str("logo", company.LogoPath).Err(err).
			Msg("logo no disponible, comprobante solo con título")
		return row.New(18).Add(title(12, 5))
	}

	return row.New(26).Add(
		image.NewFromFileCol(3, company.LogoPath, props.Rect{
			Center:  true,
			Percent: 80,
		}),
		title(9, 9),
	)
}

// folioRow: folio a la izquierda, fecha del documento a la derecha.
func folioRow(data documents.ReceiptData) core.Row {
	return row.New(8).Add(
		col.New(6).Add(
			text.New("Folio: "+data.Folio, props.Text{Style: fontstyle.Bold, Top: 2}),
		),
		col.New(6).Add(
			text.New("Fecha: "+data.IssueDate.Format(dateLayout), props.Text{Align: align.Right, Top: 2}),
		),
	)
}

func receiptClientRows(client entity.ReceiptClient) []core.Row {
	field := func(label, value string) core.Row {
		return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorLight}).Add(
			col.New(4).Add(text.New(label, props.Text{Style: fontstyle.Bold, Top: 2, Left: 2})),
			col.New(8).Add(text.New(value, props.Text{Top: 2, Left: 2})),
		)
	}
	return []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New("DATOS DEL CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorSlate,
				Align: align.Center, Top: 3,
			}),
		)),
		field("Nombre completo:", client.Name),
		field("Número celular:", client.Phone),
	}
}

// conceptRows: tabla No | Concepto | Monto más la fila de TOTAL, que siempre
// se sintetiza sumando los montos; lleva la etiqueta de moneda configurada.
func conceptRows(concepts []entity.Concept, currency string) []core.Row {
	rows := []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New("CONCEPTOS", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorSlate,
				Align: align.Center, Top: 3,
			}),
		)),
		row.New(9).WithStyle(&props.Cell{BackgroundColor: colorBlue}).Add(
			col.New(1).Add(text.New("No", props.Text{Style: fontstyle.Bold, Color: colorWhite, Align: align.Center, Top: 2})),
			col.New(8).Add(text.New("Concepto", props.Text{Style: fontstyle.Bold, Color: colorWhite, Top: 2, Left: 2})),
			col.New(3).Add(text.New("Monto", props.Text{Style: fontstyle.Bold, Color: colorWhite, Align: align.Right, Top: 2, Right: 2})),
		),
	}

	for i, c := range concepts {
		rows = append(rows, row.New(8).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), props.Text{Align: align.Center, Top: 2})),
			col.New(8).Add(text.New(c.Description, props.Text{Top: 2, Left: 2})),
			col.New(3).Add(text.New(formatMoney(c.Amount), props.Text{Align: align.Right, Top: 2, Right: 2})),
		))
	}

	total := receipt.Total(concepts)
	rows = append(rows,
		line.NewRow(1, props.Line{Color: colorSlate, Thickness: 0.8}),
		row.New(10).WithStyle(&props.Cell{BackgroundColor: colorLight}).Add(
			col.New(9).Add(text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2, Right: 2,
			})),
			col.New(3).Add(text.New(formatMoney(total)+" "+currency, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2, Right: 2,
			})),
		),
	)
	return rows
}

func companyInfoRows(company entity.Company) []core.Row {
	infoLine := func(s string, bold bool) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(5).WithStyle(&props.Cell{BackgroundColor: colorShade}).Add(
			col.New(12).Add(text.New(s, props.Text{Style: style, Size: 9, Top: 0.5, Left: 2})),
		)
	}
	return []core.Row{
		infoLine("Datos de la empresa:", true),
		infoLine(company.LegalName, true),
		infoLine("RFC: "+company.TaxID, false),
		infoLine(company.Address, false),
		infoLine("Tel: "+company.Phone+" | Email: "+company.Email, false),
	}
}

// proofPage: segunda hoja con la imagen del comprobante bancario ajustada a la
// caja máxima conservando proporción, centrada.
func (g *MarotoReceiptGenerator) proofPage(path string) core.Page {
	p := page.New()
	p.Add(row.New(14).Add(col.New(12).Add(
		text.New("COMPROBANTE DE PAGO", props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorSlate,
			Align: align.Center, Top: 4,
		}),
	)))

	w, h, err := imageSize(path)
	if err != nil {
		g.log.Warn().Str("imagen", path).Err(err).
			Msg("comprobante bancario ilegible, se imprime aviso")
		p.Add(row.New(10).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Error al cargar comprobante: %v", err), props.Text{
				Style: fontstyle.Italic, Size: 10, Top: 2,
			}),
		)))
		return p
	}

	fit := geometry.FitBox(w, h, proofMaxWidthMM, proofMaxHeightMM)
	p.Add(row.New(fit.Height).Add(
		image.NewFromFileCol(12, path, props.Rect{
			Center:  true,
			Percent: 100,
		}),
	))
	return p
}

// stampFooterRows: sello de generación (fecha + hora del momento de render,
// independiente de la fecha del folio) y leyenda fija.
func stampFooterRows(data documents.ReceiptData) []core.Row {
	return []core.Row{
		line.NewRow(6),
		row.New(5).Add(col.New(12).Add(
			text.New("Documento generado el "+data.GeneratedAt.Format(timestampLayout), props.Text{
				Size: 8, Color: colorGray, Align: align.Center,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(receiptDisclaimer, props.Text{
				Size: 8, Color: colorGray, Align: align.Center,
			}),
		)),
	}
}

package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/jhoicas/Documentador-api/internal/domain/geometry"
	"github.com/jhoicas/Documentador-api/pkg/logger"
)

// Tamaño carta en puntos (8.5 × 11 pulgadas).
const (
	letterWidthPt  = 612.0
	letterHeightPt = 792.0
)

// Fecha fija para los metadatos del overlay. Sin esto gofpdf escribe la hora
// de render en el Info y el mismo membrete produce bytes distintos en cada
// llamada; el estampado debe ser reproducible insumo a insumo.
var overlayDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// OverlayBuilder produce la página única de overlay: el membrete escalado para
// cubrir toda la página conservando proporción, con la transparencia del PNG
// intacta para que al estamparlo no tape el contenido original.
type OverlayBuilder struct {
	log *logger.Logger
}

// NewOverlayBuilder construye el motor de overlay.
func NewOverlayBuilder(log *logger.Logger) *OverlayBuilder {
	return &OverlayBuilder{log: log}
}

// Build genera un PDF de una sola página del tamaño dado (en puntos) con el
// membrete dibujado según geometry.Cover: el excedente lateral se recorta
// centrado (offset negativo) y el inferior lo recorta el límite de la página.
//
// Si la imagen no se puede leer o decodificar, la página sale en blanco y el
// fallo queda en la bitácora; el estampado continúa con un overlay vacío.
func (b *OverlayBuilder) Build(imagePath string, pageW, pageH float64) ([]byte, error) {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCreationDate(overlayDate)
	doc.SetModificationDate(overlayDate)
	doc.AddPage()

	if w, h, err := imageSize(imagePath); err != nil {
		b.log.Warn().Str("membrete", imagePath).Err(err).
			Msg("membrete ilegible, se estampa un overlay en blanco")
	} else {
		fit := geometry.Cover(w, h, pageW, pageH)
		doc.ImageOptions(imagePath, fit.OffsetX, 0, fit.Width, fit.Height, false,
			gofpdf.ImageOptions{AllowNegativePosition: true}, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: overlay de membrete: %w", err)
	}
	return buf.Bytes(), nil
}

// Package pdf implementa el backend de render de documentos: compositores
// Maroto v2 para cotizaciones y comprobantes, el motor de overlay de membretes
// sobre lienzo gofpdf y el estampado/validación estructural con pdfcpu.
package pdf

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/johnfercher/maroto/v2/pkg/props"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorSlate = &props.Color{Red: 44, Green: 62, Blue: 80}
	colorGray  = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorBlack = &props.Color{Red: 0, Green: 0, Blue: 0}
	colorBlue  = &props.Color{Red: 52, Green: 152, Blue: 219}
	colorShade = &props.Color{Red: 240, Green: 240, Blue: 240}
	colorLight = &props.Color{Red: 236, Green: 240, Blue: 241}
)

// imageSize abre una imagen y devuelve sus dimensiones en píxeles. Sirve a la
// vez de prueba de carga: si falla, el compositor degrada (encabezado sin
// logo, aviso en lugar del comprobante) en vez de abortar el documento.
func imageSize(path string) (w, h float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}

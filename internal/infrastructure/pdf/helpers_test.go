package pdf_test

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Documentador-api/pkg/logger"
)

// testLogger logger silencioso para los generadores bajo prueba.
func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

// buildTestPDF fabrica un PDF carta de n páginas con algo de texto.
func buildTestPDF(t *testing.T, pages int) []byte {
	t.Helper()
	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetFont("Helvetica", "", 12)
	for i := 0; i < pages; i++ {
		doc.AddPage()
		doc.Text(72, 72, fmt.Sprintf("pagina %d", i+1))
	}
	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

// writeTestPNG fabrica un PNG con canal alfa y lo deja en un temporal del test.
func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// mitad superior opaca, mitad inferior transparente
			a := uint8(255)
			if y > h/2 {
				a = 0
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 44, G: 62, B: 80, A: a})
		}
	}

	path := filepath.Join(t.TempDir(), "membrete.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

// pageCount cuenta páginas con pdfcpu; de paso verifica que b sea PDF válido.
func pageCount(t *testing.T, b []byte) int {
	t.Helper()
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	n, err := api.PageCount(bytes.NewReader(b), conf)
	require.NoError(t, err)
	return n
}

package pdf_test

import (
	"bytes"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Documentador-api/internal/infrastructure/pdf"
)

func newTestStamper() *pdf.PdfcpuStamper {
	return pdf.NewPdfcpuStamper(pdf.NewOverlayBuilder(testLogger()))
}

// TestStamp_ConservaPaginas estampar jamás agrega ni quita páginas.
func TestStamp_ConservaPaginas(t *testing.T) {
	s := newTestStamper()
	membrete := writeTestPNG(t, 1224, 1584)

	for _, pages := range []int{1, 3} {
		src := bytes.NewReader(buildTestPDF(t, pages))

		out, err := s.Stamp(context.Background(), src, membrete)

		require.NoError(t, err)
		assert.Equal(t, pages, pageCount(t, out), "con %d páginas de entrada", pages)
	}
}

// TestStamp_MembreteIlegible con imagen ilegible el estampado continúa con un
// overlay en blanco: mismo número de páginas, salida válida.
func TestStamp_MembreteIlegible(t *testing.T) {
	s := newTestStamper()
	src := bytes.NewReader(buildTestPDF(t, 2))

	out, err := s.Stamp(context.Background(), src, "no-existe.png")

	require.NoError(t, err)
	assert.Equal(t, 2, pageCount(t, out))
}

// TestStamp_FuenteInvalida un PDF fuente que no se puede interpretar es falla
// dura, sin salida parcial.
func TestStamp_FuenteInvalida(t *testing.T) {
	s := newTestStamper()
	membrete := writeTestPNG(t, 1000, 500)
	src := bytes.NewReader([]byte("contenido que no es pdf"))

	out, err := s.Stamp(context.Background(), src, membrete)

	assert.Error(t, err)
	assert.Nil(t, out)
}

// TestStamp_SalidaReproducible estampar dos veces los mismos (fuente,
// membrete) produce exactamente los mismos bytes, y los metadatos de la
// salida no llevan la fecha de render.
func TestStamp_SalidaReproducible(t *testing.T) {
	s := newTestStamper()
	membrete := writeTestPNG(t, 1224, 1584)
	in := buildTestPDF(t, 2)

	out1, err := s.Stamp(context.Background(), bytes.NewReader(in), membrete)
	require.NoError(t, err)
	out2, err := s.Stamp(context.Background(), bytes.NewReader(in), membrete)
	require.NoError(t, err)

	assert.Equal(t, out1, out2, "mismos insumos deben dar los mismos bytes")
	assert.NotContains(t, string(out1), "D:"+time.Now().Format("20060102"),
		"la salida estampada no debe llevar la fecha de render")
	assert.Equal(t, 2, pageCount(t, out1))
}

// TestStamp_IDDependeDeLosInsumos el /ID se deriva del contenido: fuentes
// distintas conservan identificadores distintos aun con el mismo membrete.
func TestStamp_IDDependeDeLosInsumos(t *testing.T) {
	s := newTestStamper()
	membrete := writeTestPNG(t, 1224, 1584)
	idRe := regexp.MustCompile(`/ID\s*\[\s*<([0-9a-f]{32})>`)

	out1, err := s.Stamp(context.Background(), bytes.NewReader(buildTestPDF(t, 1)), membrete)
	require.NoError(t, err)
	out2, err := s.Stamp(context.Background(), bytes.NewReader(buildTestPDF(t, 2)), membrete)
	require.NoError(t, err)

	m1 := idRe.FindSubmatch(out1)
	m2 := idRe.FindSubmatch(out2)
	require.NotNil(t, m1, "la salida debe traer /ID")
	require.NotNil(t, m2, "la salida debe traer /ID")
	assert.NotEqual(t, m1[1], m2[1])
}

// TestStamp_SalidaValidaYDistinta la salida sigue siendo un PDF válido y no
// es idéntica a la entrada (el overlay quedó fusionado).
func TestStamp_SalidaValidaYDistinta(t *testing.T) {
	s := newTestStamper()
	v := pdf.NewPdfcpuValidator()
	membrete := writeTestPNG(t, 1224, 1584)
	in := buildTestPDF(t, 1)

	out, err := s.Stamp(context.Background(), bytes.NewReader(in), membrete)
	require.NoError(t, err)

	ok, msg := v.Validate(bytes.NewReader(out))
	assert.True(t, ok, "salida inválida: %s", msg)
	assert.NotEqual(t, in, out)
}

package pdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Documentador-api/internal/infrastructure/pdf"
)

func TestOverlayBuild_ConMembrete(t *testing.T) {
	b := pdf.NewOverlayBuilder(testLogger())
	membrete := writeTestPNG(t, 1000, 500)

	out, err := b.Build(membrete, 612, 792)

	require.NoError(t, err)
	assert.Equal(t, 1, pageCount(t, out), "el overlay siempre es una sola página")
}

// TestOverlayBuild_MembreteIlegible política de degradación: sin imagen
// cargable el overlay sale como página en blanco, nunca como error.
func TestOverlayBuild_MembreteIlegible(t *testing.T) {
	b := pdf.NewOverlayBuilder(testLogger())

	out, err := b.Build("no-existe.png", 612, 792)

	require.NoError(t, err)
	assert.Equal(t, 1, pageCount(t, out))
}

func TestOverlayBuild_ImagenVertical(t *testing.T) {
	b := pdf.NewOverlayBuilder(testLogger())
	membrete := writeTestPNG(t, 500, 1500)

	out, err := b.Build(membrete, 612, 792)

	require.NoError(t, err)
	assert.Equal(t, 1, pageCount(t, out))
}

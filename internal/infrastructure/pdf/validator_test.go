package pdf_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Documentador-api/internal/infrastructure/pdf"
)

func TestValidate_PDFValido(t *testing.T) {
	v := pdf.NewPdfcpuValidator()
	src := bytes.NewReader(buildTestPDF(t, 1))

	ok, msg := v.Validate(src)

	assert.True(t, ok)
	assert.Empty(t, msg)
}

// TestValidate_RegresaAlInicio el validador no consume el stream: al terminar
// la posición queda en cero y una segunda validación da lo mismo.
func TestValidate_RegresaAlInicio(t *testing.T) {
	v := pdf.NewPdfcpuValidator()
	src := bytes.NewReader(buildTestPDF(t, 2))

	ok1, _ := v.Validate(src)

	pos, err := src.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.Zero(t, pos, "la posición de lectura debe quedar al inicio")

	ok2, _ := v.Validate(src)
	assert.Equal(t, ok1, ok2, "validar dos veces el mismo stream da el mismo resultado")
	assert.True(t, ok2)
}

func TestValidate_BytesArbitrarios(t *testing.T) {
	v := pdf.NewPdfcpuValidator()
	src := bytes.NewReader([]byte("esto no es un pdf, es texto plano"))

	ok, msg := v.Validate(src)

	assert.False(t, ok)
	assert.NotEmpty(t, msg, "un PDF inválido siempre trae mensaje")
}

func TestValidate_StreamVacio(t *testing.T) {
	v := pdf.NewPdfcpuValidator()

	ok, msg := v.Validate(bytes.NewReader(nil))

	assert.False(t, ok)
	assert.NotEmpty(t, msg)
}

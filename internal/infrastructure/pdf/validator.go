package pdf

import (
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PdfcpuValidator implementa documents.Validator: verificación estructural
// barata (cabecera, xref), sin render de contenido.
type PdfcpuValidator struct {
	conf *model.Configuration
}

// NewPdfcpuValidator construye el validador.
func NewPdfcpuValidator() *PdfcpuValidator {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PdfcpuValidator{conf: conf}
}

// Validate intenta interpretar src como PDF. Siempre regresa la posición de
// lectura al inicio antes de retornar: los callers reutilizan el mismo stream
// después (y una segunda llamada da el mismo resultado).
func (v *PdfcpuValidator) Validate(src io.ReadSeeker) (bool, string) {
	err := api.Validate(src, v.conf)

	if _, serr := src.Seek(0, io.SeekStart); serr != nil {
		return false, fmt.Sprintf("Error al reposicionar el archivo: %v", serr)
	}
	if err != nil {
		return false, fmt.Sprintf("Error al leer el PDF: %v", err)
	}
	return true, ""
}

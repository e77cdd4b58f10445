package pdf

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Fecha fija para el Info del PDF estampado, misma longitud que las fechas
// que pdfcpu escribe (D: + 14 dígitos + zona horaria).
const stampDate = "D:20000101000000+00'00'"

var (
	infoDateRe = regexp.MustCompile(`(/(?:CreationDate|ModDate)\s*\()D:\d{14}[+-]\d{2}'\d{2}'\)`)
	fileIDRe   = regexp.MustCompile(`(/ID\s*\[\s*<)[0-9a-fA-F]{32}(>\s*<)[0-9a-fA-F]{32}(>\s*\])`)
)

// PdfcpuStamper implementa documents.Stamper: fusiona la página de overlay
// sobre cada página del PDF fuente. El resultado conserva el número y tamaño
// de páginas; no se agrega ni quita ninguna.
type PdfcpuStamper struct {
	overlay *OverlayBuilder
	conf    *model.Configuration
}

// NewPdfcpuStamper construye el estampador.
func NewPdfcpuStamper(overlay *OverlayBuilder) *PdfcpuStamper {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	// Sin object streams ni xref stream: el Info y el trailer quedan como
	// texto plano y normalizeMetadata puede reescribirlos en sitio.
	conf.WriteObjectStream = false
	conf.WriteXRefStream = false
	return &PdfcpuStamper{overlay: overlay, conf: conf}
}

// Stamp aplica el membrete a todas las páginas de src y devuelve el PDF nuevo.
// Si src no se puede interpretar como PDF, el error se propaga sin producir
// salida parcial. El overlay se pinta encima del contenido existente.
//
// La salida es reproducible: estampar dos veces los mismos (fuente, membrete)
// produce exactamente los mismos bytes, sin marcas de la hora de render.
func (s *PdfcpuStamper) Stamp(_ context.Context, src io.ReadSeeker, letterheadPath string) ([]byte, error) {
	srcBytes, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("pdf: leer fuente: %w", err)
	}

	overlayBytes, err := s.overlay.Build(letterheadPath, letterWidthPt, letterHeightPt)
	if err != nil {
		return nil, err
	}

	// pdfcpu relee el archivo de watermark durante el render, así que el
	// overlay pasa por un temporal.
	tmp, err := os.CreateTemp("", "membrete-overlay-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("pdf: overlay temporal: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(overlayBytes); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("pdf: escribir overlay temporal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("pdf: cerrar overlay temporal: %w", err)
	}

	wm, err := api.PDFWatermark(tmp.Name(), "pos:bl, off:0 0, scale:1 abs, rot:0", true, false, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("pdf: preparar estampado: %w", err)
	}

	var out bytes.Buffer
	if err := api.AddWatermarks(bytes.NewReader(srcBytes), &out, nil, wm, s.conf); err != nil {
		return nil, fmt.Errorf("pdf: estampar membrete: %w", err)
	}
	return normalizeMetadata(out.Bytes(), srcBytes, overlayBytes), nil
}

// normalizeMetadata fija los metadatos variables que pdfcpu escribe en cada
// render: las fechas del Info (hora de render) y el /ID del trailer (md5 que
// incluye la hora actual). Las fechas se fijan a stampDate y el /ID se deriva
// del contenido de fuente + overlay, con lo que corridas idénticas producen
// bytes idénticos y fuentes distintas conservan IDs distintos. Todos los
// reemplazos conservan la longitud, así los offsets del xref siguen válidos.
func normalizeMetadata(out, srcBytes, overlayBytes []byte) []byte {
	out = infoDateRe.ReplaceAll(out, []byte("${1}"+stampDate+")"))

	h := md5.New()
	h.Write(srcBytes)
	h.Write(overlayBytes)
	id := hex.EncodeToString(h.Sum(nil))

	return fileIDRe.ReplaceAll(out, []byte("${1}"+id+"${2}"+id+"${3}"))
}

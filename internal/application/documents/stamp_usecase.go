package documents

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Documentador-api/internal/domain"
)

// StampPDF valida que src sea un PDF, resuelve el membrete por nombre y lo
// estampa sobre todas las páginas. Devuelve los bytes del PDF resultante y el
// nombre de archivo sugerido (<base>_con_membrete.pdf).
//
// Un PDF ilegible es falla dura (domain.ErrInvalidPDF envuelto); no hay salida
// parcial. Un membrete inexistente es domain.ErrAssetNotFound.
func (s *Service) StampPDF(ctx context.Context, src io.ReadSeeker, letterheadName, originalName string) ([]byte, string, error) {
	if ok, msg := s.validator.Validate(src); !ok {
		return nil, "", fmt.Errorf("%w: %s", domain.ErrInvalidPDF, msg)
	}

	path, err := s.letterheads.Resolve(letterheadName)
	if err != nil {
		return nil, "", err
	}

	out, err := s.stamper.Stamp(ctx, src, path)
	if err != nil {
		return nil, "", fmt.Errorf("documents: estampar membrete: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	if base == "" || base == "." {
		base = "documento"
	}

	s.log.Info().
		Str("generation_id", uuid.NewString()).
		Str("membrete", letterheadName).
		Str("archivo", originalName).
		Msg("membrete aplicado")

	return out, base + "_con_membrete.pdf", nil
}

// ValidatePDF expone la validación estructural tal cual: (ok, mensaje). La
// posición de lectura de src queda al inicio al regresar.
func (s *Service) ValidatePDF(src io.ReadSeeker) (bool, string) {
	return s.validator.Validate(src)
}

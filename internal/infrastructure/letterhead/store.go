// Package letterhead expone el conjunto de membretes disponibles: archivos
// PNG dentro de una carpeta fija. Va sobre afero para poder probarse contra un
// filesystem en memoria.
package letterhead

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/jhoicas/Documentador-api/internal/domain"
)

// Store lista y resuelve membretes de una carpeta. No cachea nada: cada
// llamada relee el directorio.
type Store struct {
	fs  afero.Fs
	dir string
}

// NewStore construye el store sobre el filesystem y carpeta dados.
func NewStore(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

// List devuelve los nombres base de los membretes PNG disponibles, ordenados.
// Una carpeta inexistente o sin PNGs lista cero membretes; no es un error.
func (s *Store) List() ([]string, error) {
	exists, err := afero.DirExists(s.fs, s.dir)
	if err != nil {
		return nil, fmt.Errorf("letterhead: revisar carpeta %s: %w", s.dir, err)
	}
	if !exists {
		return nil, nil
	}

	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, fmt.Errorf("letterhead: listar %s: %w", s.dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ".png") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Resolve convierte un nombre listado en la ruta del archivo. Solo acepta
// nombres base: un nombre con separadores no puede salirse de la carpeta.
func (s *Store) Resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("letterhead: nombre %q: %w", name, domain.ErrInvalidInput)
	}

	path := filepath.Join(s.dir, name)
	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return "", fmt.Errorf("letterhead: revisar %s: %w", path, err)
	}
	if !exists {
		return "", fmt.Errorf("letterhead: %q: %w", name, domain.ErrAssetNotFound)
	}
	return path, nil
}

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrInvalidPDF     = errors.New("el archivo no es un PDF válido")
	ErrAssetNotFound  = errors.New("imagen o membrete no encontrado")
	ErrGenerateFailed = errors.New("no se pudo generar el documento")
)

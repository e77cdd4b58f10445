package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Documentador-api/pkg/config"
)

const sampleBusinessJSON = `{
  "empresas": [
    {
      "nombre": "ACME",
      "razon_social": "ACME S.A. de C.V.",
      "rfc": "ACM010101AAA",
      "direccion": "Av. Siempre Viva 742",
      "telefono": "55-1234-5678",
      "email": "ventas@acme.mx",
      "logo": "logos/acme.png"
    }
  ],
  "catalogo_productos": [
    {"codigo": "P001", "descripcion": "Servicio de instalación", "precio_unitario": 1500.0},
    {"codigo": "P002", "descripcion": "Mantenimiento anual", "precio_unitario": 8200.50}
  ],
  "configuracion": {
    "iva": 0.16,
    "moneda": "MXN",
    "validez_cotizacion_dias": 15,
    "terminos_condiciones": "Precios sujetos a cambio sin previo aviso."
  }
}`

func writeBusinessFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBusiness(t *testing.T) {
	bc, err := config.LoadBusiness(writeBusinessFile(t, sampleBusinessJSON))

	require.NoError(t, err)
	require.Len(t, bc.Empresas, 1)
	assert.Equal(t, "ACME", bc.Empresas[0].Nombre)
	assert.Equal(t, "ACM010101AAA", bc.Empresas[0].RFC)
	assert.Equal(t, "logos/acme.png", bc.Empresas[0].Logo)

	require.Len(t, bc.CatalogoProductos, 2)
	assert.Equal(t, "P002", bc.CatalogoProductos[1].Codigo)
	assert.InDelta(t, 8200.50, bc.CatalogoProductos[1].PrecioUnitario, 0.0001)

	assert.InDelta(t, 0.16, bc.Configuracion.IVA, 0.0001)
	assert.Equal(t, "MXN", bc.Configuracion.Moneda)
	assert.Equal(t, 15, bc.Configuracion.ValidezCotizacionDias)
}

func TestLoadBusiness_ArchivoInexistente(t *testing.T) {
	_, err := config.LoadBusiness(filepath.Join(t.TempDir(), "no-existe.json"))

	assert.Error(t, err)
}

func TestLoadBusiness_JSONInvalido(t *testing.T) {
	_, err := config.LoadBusiness(writeBusinessFile(t, "{esto no es json"))

	assert.Error(t, err)
}

func TestLoadBusiness_SinEmpresas(t *testing.T) {
	_, err := config.LoadBusiness(writeBusinessFile(t, `{"empresas": [], "configuracion": {"iva": 0.16}}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empresa")
}

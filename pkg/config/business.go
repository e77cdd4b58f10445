package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// BusinessConfig es el contenido de data/config.json: las empresas emisoras,
// el catálogo de productos y la configuración global de documentos.
// Se carga una sola vez al arranque y es de solo lectura durante la vida del proceso.
type BusinessConfig struct {
	Empresas          []Empresa          `mapstructure:"empresas"`
	CatalogoProductos []ProductoCatalogo `mapstructure:"catalogo_productos"`
	Configuracion     Configuracion      `mapstructure:"configuracion"`
}

// Empresa datos fiscales y de contacto de una empresa emisora.
type Empresa struct {
	Nombre      string `mapstructure:"nombre"`
	RazonSocial string `mapstructure:"razon_social"`
	RFC         string `mapstructure:"rfc"`
	Direccion   string `mapstructure:"direccion"`
	Telefono    string `mapstructure:"telefono"`
	Email       string `mapstructure:"email"`
	Logo        string `mapstructure:"logo"` // ruta a la imagen del logo
}

// ProductoCatalogo entrada del catálogo para prellenar partidas de cotización.
type ProductoCatalogo struct {
	Codigo         string  `mapstructure:"codigo"`
	Descripcion    string  `mapstructure:"descripcion"`
	PrecioUnitario float64 `mapstructure:"precio_unitario"`
}

// Configuracion parámetros globales de generación de documentos.
type Configuracion struct {
	IVA                   float64 `mapstructure:"iva"` // fracción, ej. 0.16
	Moneda                string  `mapstructure:"moneda"`
	ValidezCotizacionDias int     `mapstructure:"validez_cotizacion_dias"`
	TerminosCondiciones   string  `mapstructure:"terminos_condiciones"`
}

// LoadBusiness lee y deserializa el archivo JSON de configuración de negocio.
// A diferencia del .env, este archivo es obligatorio: sin empresas ni catálogo
// no se puede generar ningún documento.
func LoadBusiness(path string) (*BusinessConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: leer %s: %w", path, err)
	}

	var bc BusinessConfig
	if err := v.Unmarshal(&bc); err != nil {
		return nil, fmt.Errorf("config: deserializar %s: %w", path, err)
	}
	if len(bc.Empresas) == 0 {
		return nil, fmt.Errorf("config: %s no define ninguna empresa", path)
	}
	return &bc, nil
}

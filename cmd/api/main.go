package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/afero"

	"github.com/jhoicas/Documentador-api/internal/application/documents"
	"github.com/jhoicas/Documentador-api/internal/infrastructure/letterhead"
	infrapdf "github.com/jhoicas/Documentador-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Documentador-api/internal/interfaces/http"
	"github.com/jhoicas/Documentador-api/pkg/config"
	"github.com/jhoicas/Documentador-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	business, err := config.LoadBusiness(cfg.Docs.ConfigPath)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de negocio")
	}

	letterheads := letterhead.NewStore(afero.NewOsFs(), cfg.Docs.MembretesDir)
	overlay := infrapdf.NewOverlayBuilder(log.WithComponent("membretes"))

	svc := documents.NewService(business, documents.Deps{
		QuoteGen:    infrapdf.NewMarotoQuoteGenerator(log.WithComponent("cotizaciones")),
		ReceiptGen:  infrapdf.NewMarotoReceiptGenerator(log.WithComponent("comprobantes")),
		Stamper:     infrapdf.NewPdfcpuStamper(overlay),
		Validator:   infrapdf.NewPdfcpuValidator(),
		Letterheads: letterheads,
		Log:         log,
	})

	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: 25 * 1024 * 1024, // PDFs e imágenes adjuntas
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{Documents: svc})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()
	log.Info().
		Str("addr", cfg.HTTP.Addr()).
		Int("empresas", len(business.Empresas)).
		Msg("API lista")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado con errores")
	}
}

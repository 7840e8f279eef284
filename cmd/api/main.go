package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/autorevenda/gestor-api/internal/application/analytics"
	"github.com/autorevenda/gestor-api/internal/infrastructure/memory"
	httpRouter "github.com/autorevenda/gestor-api/internal/interfaces/http"
	"github.com/autorevenda/gestor-api/pkg/config"
	"github.com/autorevenda/gestor-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	// Dados em memória: a persistência real das vendas é do backend
	// gerenciado; a API só recebe o export.
	store := memory.NewStore()
	if cfg.Data.SnapshotPath != "" {
		if err := store.LoadSnapshot(cfg.Data.SnapshotPath); err != nil {
			log.Fatal().Err(err).Str("path", cfg.Data.SnapshotPath).Msg("carregar snapshot")
		}
		log.Info().Str("path", cfg.Data.SnapshotPath).Msg("snapshot carregado")
	}

	chartUC := appanalytics.NewChartUseCase(store, store.Expenses(), nil)
	dashboardUC := appanalytics.NewDashboardUseCase(store, store.Expenses(), nil)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ChartUC:     chartUC,
		DashboardUC: dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

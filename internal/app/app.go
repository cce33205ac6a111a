package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/api/handlers"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/api/middlew"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/config"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/gemini"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/server"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/service"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/pkg/logger"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/web"

	"github.com/go-chi/chi/v5/middleware"
)

type App struct {
	log        *slog.Logger
	server     *server.Server
	logFile    *os.File
	cfg        *config.Config
	rateClient gemini.RateClient
}

func NewApp() (*App, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации конфига: %w", err)
	}

	loggerWithFile := logger.NewLoggerWithFile(cfg.Log.File)
	log := loggerWithFile.Logger
	log.Info("инициализация приложения", slog.String("port", cfg.HTTPPort))

	rateClient, err := gemini.NewRateClient(cfg.Gemini, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации rate client: %w", err)
	}
	log.Info("rate client инициализирован", slog.String("model", cfg.Gemini.Model))

	srv := server.NewServer(cfg.HTTPPort)
	log.Info("сервер инициализирован", slog.String("port", cfg.HTTPPort))
	srv.Router.Use(middleware.RequestID)
	srv.Router.Use(middlew.WithLogger(log))
	srv.Router.Use(middleware.RealIP)
	srv.Router.Use(middleware.Recoverer)
	srv.RegisterSwagger()

	return &App{
		log:        log,
		server:     srv,
		logFile:    loggerWithFile.LogFile,
		cfg:        cfg,
		rateClient: rateClient,
	}, nil
}

func (a *App) BuildConverterLayer() {
	converterService := service.NewConverterService(a.rateClient, a.log)

	convertHandler := handlers.NewConvertHandler(converterService)
	currencyHandler := handlers.NewCurrencyHandler(converterService)

	a.server.Router.Post("/api/v1/convert", convertHandler.Convert)
	a.server.Router.Get("/api/v1/currencies", currencyHandler.GetCurrencies)

	a.log.Info("слой 'converter' собран и маршруты зарегистрированы")
}

func (a *App) BuildHistoryLayer() {
	historyService := service.NewHistoryService(a.rateClient, a.log)
	historyHandler := handlers.NewHistoryHandler(historyService)

	a.server.Router.Get("/api/v1/history", historyHandler.GetHistoricalRates)

	a.log.Info("слой 'history' собран и маршруты зарегистрированы")
}

func (a *App) BuildWebLayer() error {
	tmpl, err := web.Templates()
	if err != nil {
		a.log.Error("ошибка разбора шаблонов", slog.String("error", err.Error()))
		return err
	}

	static, err := web.StaticHandler()
	if err != nil {
		a.log.Error("ошибка подготовки статики", slog.String("error", err.Error()))
		return err
	}

	webHandler := handlers.NewWebHandler(tmpl)

	a.server.Router.Get("/", webHandler.Index)
	a.server.Router.Handle("/static/*", static)

	a.log.Info("слой 'web' собран и маршруты зарегистрированы")
	return nil
}

func (a *App) Run() error {
	a.log.Info("сервер запускается")

	serverErr := make(chan error, 1)
	go func() {
		if err := a.server.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("ошибка запуска сервера: %w", err)
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-shutdownChan:
		a.log.Info("получен сигнал завершения", slog.String("signal", sig.String()))
	}

	a.log.Info("приложение останавливается")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.log.Error("ошибка при остановке http сервера", slog.String("error", err.Error()))
	}

	a.log.Info("закрытие файла логов")
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			a.log.Error("ошибка при закрытии файла логов", slog.String("error", err.Error()))
		}
	}

	a.log.Info("приложение остановлено")
	return nil
}

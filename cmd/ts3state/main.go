package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/trsv-dev/ts3-state-exporter/internal/api"
	"github.com/trsv-dev/ts3-state-exporter/internal/auth"
	"github.com/trsv-dev/ts3-state-exporter/internal/collector"
	"github.com/trsv-dev/ts3-state-exporter/internal/config"
	"github.com/trsv-dev/ts3-state-exporter/internal/errs"
	"github.com/trsv-dev/ts3-state-exporter/internal/logger"
	"github.com/trsv-dev/ts3-state-exporter/internal/netutils"
	"github.com/trsv-dev/ts3-state-exporter/internal/render"
	"github.com/trsv-dev/ts3-state-exporter/internal/server"
	"github.com/trsv-dev/ts3-state-exporter/internal/webquery"
)

// ShutdownTimeout Время на завершение активных HTTP-запросов при остановке.
const ShutdownTimeout = 7 * time.Second

// "Сборка" и запуск проекта.
func main() {
	os.Exit(run())
}

func run() (code int) {
	// recover для логирования паник в main
	defer func() {
		if r := recover(); r != nil {
			log.Println("Паника в main:", fmt.Sprintf("%v", r))
			code = errs.ExitFailure
		}
	}()

	// загружаем переменные окружения из .env, если файл есть
	if errEnv := godotenv.Load(); errEnv != nil && !errors.Is(errEnv, fs.ErrNotExist) {
		log.Println("Не удалось загрузить .env:", errEnv)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Println("Ошибка конфигурации:", err)
		return errs.ExitFailure
	}

	// логи никогда не пишутся в stdout вместе с документом
	logger.InitLogger(cfg.LogLevel, cfg.LogTarget())
	defer logger.Log.(*logger.SlogAdapter).Close()

	if cfg.IssueToken != "" {
		return issueToken(cfg, os.Stdout)
	}

	if err = cfg.Validate(); err != nil {
		logger.Log.Error("Некорректная конфигурация", logger.Err(err))
		return errs.ExitFailure
	}

	client, err := webquery.NewHTTPClient(cfg.BaseURL, cfg.VirtualServerID, cfg.APIKey, cfg.Timeout)
	if err != nil {
		logger.Log.Error("Не удалось создать клиент WebQuery", logger.Err(err))
		return errs.ExitFailure
	}

	service := webquery.NewService(client)

	if cfg.Serve {
		return serve(cfg, service, client.Host(), client.Port())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = export(ctx, service, cfg, os.Stdout); err != nil {
		return errs.ExitCode(err)
	}

	return errs.ExitOK
}

// issueToken Печатает JWT-токен для доступа к HTTP API.
func issueToken(cfg *config.Config, out io.Writer) int {
	token, err := auth.NewJWTTokenBuilder().BuildJWTToken(cfg.IssueToken, cfg.JWTSecretKey)
	if err != nil {
		logger.Log.Error("Не удалось выпустить токен", logger.Err(err))
		return errs.ExitFailure
	}

	fmt.Fprintln(out, token)
	return errs.ExitOK
}

// export Однократная выгрузка: запрос трёх списков, построение дерева, сериализация и запись.
func export(ctx context.Context, wq webquery.API, cfg *config.Config, stdout io.Writer) error {
	start := time.Now()

	snapshot, err := collector.Collect(ctx, wq)
	if err != nil {
		return err
	}

	root := snapshot.Tree()

	opts := render.Options{}
	if cfg.Pretty {
		opts.Indent = "  "
	}

	data, err := render.Render(root, opts)
	if err != nil {
		logger.Log.Error("Не удалось сериализовать дерево сервера", logger.Err(err))
		return err
	}

	if err = render.Write(cfg.Output, data, stdout); err != nil {
		logger.Log.Error("Не удалось записать документ", logger.String("output", cfg.Output), logger.Err(err))
		return err
	}

	stats := root.Stats()
	logger.Log.Info("Дерево сервера выгружено",
		logger.String("server", snapshot.Server.Name),
		logger.Int("channels", stats.Channels),
		logger.Int("clients", stats.Clients),
		logger.Int("detached_channels", stats.DetachedChannels),
		logger.Int("detached_clients", stats.DetachedClients),
		logger.Int("depth", stats.Depth),
		logger.Duration("elapsed", time.Since(start)),
	)

	return nil
}

// serve Запуск HTTP API, читающего WebQuery на каждый запрос.
func serve(cfg *config.Config, wq webquery.API, host, port string) int {
	versionTimeout := cfg.Timeout
	if versionTimeout <= 0 {
		versionTimeout = ShutdownTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), versionTimeout)
	version, err := wq.Version(ctx)
	cancel()

	if err != nil {
		// сервер всё равно запускаем: /health покажет состояние WebQuery
		logger.Log.Warn("WebQuery не ответил на запрос версии", logger.Err(err))
	} else {
		logger.Log.Info("Подключение к WebQuery",
			logger.String("version", version.Version),
			logger.String("build", version.Build),
			logger.String("platform", version.Platform),
		)
	}

	if cfg.JWTSecretKey == "" {
		logger.Log.Warn("JWT_SECRET_KEY не задан, HTTP API доступно без токена")
	}

	handlersContainer := api.NewHandlersContainer(wq, netutils.NewNetworkChecker(), auth.NewJWTTokenBuilder(), cfg, host, port)

	srv, serverErrorCh := server.RunServer(cfg.RunAddress, handlersContainer)

	// канал системных сигналов
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	code := errs.ExitOK

	// блокируемся тут в ожидании одного из вариантов завершения работы сервера
	select {
	case err, ok := <-serverErrorCh:
		if !ok {
			logger.Log.Info("Канал ошибок сервера закрыт")
			return errs.ExitOK
		}
		logger.Log.Error("Ошибка сервера", logger.Err(err))
		code = errs.ExitFailure
	case sig := <-stop:
		logger.Log.Info("Получен сигнал остановки приложения", logger.String("sig", sig.String()))
	}

	serverShutdownCtx, serverShutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer serverShutdownCancel()

	if err = srv.Shutdown(serverShutdownCtx); err != nil {
		logger.Log.Error("Ошибка остановки сервера", logger.Err(err))
	} else {
		logger.Log.Info("Сервер остановлен")
	}

	return code
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/app"
	"github.com/vladislavdragonenkov/storefront/internal/version"
)

// errConfigChecked завершает процесс без запуска сервиса после -check-config.
var errConfigChecked = errors.New("config checked")

// prepare читает конфигурацию из окружения, настраивает logger и обрабатывает флаги.
func prepare(args []string, lookup func(string) (string, bool), logger *log.Logger, out io.Writer) (app.Config, error) {
	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(out)
	showVersion := fs.Bool("version", false, "print build version and exit")
	checkConfig := fs.Bool("check-config", false, "validate configuration from STOREFRONT_* variables and exit")
	if err := fs.Parse(args); err != nil {
		return app.Config{}, err
	}

	if *showVersion {
		_, _ = fmt.Fprintln(out, version.GetFullVersion())
		return app.Config{}, errConfigChecked
	}

	cfg, warnings := app.LoadConfig(lookup)
	if err := cfg.ConfigureLogger(logger); err != nil {
		return cfg, err
	}
	for _, w := range warnings {
		logger.Warn(w)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	if *checkConfig {
		_, _ = fmt.Fprintf(out, "config ok: storage=%s grpc=%s metrics=%s redis=%t kafka=%t\n",
			cfg.StorageDriver, cfg.GRPCAddr, cfg.MetricsAddr, cfg.RedisAddr != "", cfg.KafkaBrokers != "")
		return cfg, errConfigChecked
	}
	return cfg, nil
}

func main() {
	cfg, err := prepare(os.Args[1:], os.LookupEnv, log.StandardLogger(), os.Stdout)
	switch {
	case errors.Is(err, errConfigChecked), errors.Is(err, flag.ErrHelp):
		return
	case err != nil:
		log.WithError(err).Fatal("некорректная конфигурация")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(version.Fields()).WithFields(log.Fields{
		"grpc_addr":      cfg.GRPCAddr,
		"metrics_addr":   cfg.MetricsAddr,
		"storage_driver": cfg.StorageDriver,
		"redis":          cfg.RedisAddr != "",
		"kafka":          cfg.KafkaBrokers != "",
	}).Info("запускаем storefront")

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("приложение завершилось с ошибкой")
	}

	log.Info("storefront остановлен")
}

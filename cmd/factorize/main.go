package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bignum/internal/config"
	"bignum/internal/factortable"
	"bignum/internal/logger"
	zapfactory "bignum/internal/logger/zap"
)

var defaultConfigPath = "config/factorize/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	steps := flag.Int("steps", 0, "override factorizer.steps from the config file (0 keeps the config value)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load configuration from %q: %v", *configPath, err)
	}
	cfg.ApplyEnvOverrides()
	if *steps > 0 {
		cfg.Factorizer.Steps = *steps
	}
	if err := cfg.ValidateConfig(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	var lgr logger.Logger
	if cfg.Logger.Active {
		zapLog, err := zapfactory.New(cfg.Logger)
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() { _ = zapLog.Sync() }()
		lgr = zapfactory.NewZapAdapter(zapLog)
	} else {
		lgr = &logger.NopLogger{}
	}
	cfg.LogConfig(lgr)

	lgr = lgr.Named("factorize")

	table, parseErrs, err := factortable.LoadTable(cfg.Factorizer.TablePath)
	if err != nil {
		lgr.Error("failed to load factor table", logger.F("path", cfg.Factorizer.TablePath), logger.F("err", err))
		os.Exit(1)
	}
	for _, perr := range parseErrs {
		lgr.Warn("skipped malformed table line", logger.F("err", perr))
	}
	lgr.Info("loaded factor table", logger.F("entries", table.Len()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := factortable.RunDriver(ctx, table, cfg.Factorizer.TablePath, cfg.Factorizer.Steps, lgr); err != nil {
		lgr.Error("driver stopped early", logger.F("err", err))
		os.Exit(1)
	}

	max, _ := table.Max()
	lgr.Info("driver finished", logger.FNumber("largest", max), logger.F("entries", table.Len()))
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/ogurasousui/employee-pairs/internal/core/assignment"
	"github.com/ogurasousui/employee-pairs/internal/core/collaboration"
	"github.com/ogurasousui/employee-pairs/internal/platform/config"
	"github.com/ogurasousui/employee-pairs/internal/platform/logging"
	"github.com/ogurasousui/employee-pairs/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	finder, err := collaboration.NewFinder(collaboration.FinderOptions{Workers: cfg.Finder.Workers}, logger)
	if err != nil {
		logger.Fatal("failed to initialize finder", zap.Error(err))
	}

	parser := assignment.NewParser(nil, logger)
	pairSvc := collaboration.NewService(parser, finder, logger)
	grpcServer := server.New(cfg.Server.ListenAddr, pairSvc, logger)

	if err := grpcServer.Run(ctx); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
}

package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/calinovidiu96/vending-machine/internal/pkg/logging"
	"github.com/calinovidiu96/vending-machine/internal/vending/bootstrap"
)

const networkProtocol = "tcp"

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := bootstrap.LoadConfig(".env")
	if err != nil {
		logging.StdoutLogger.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	logger := logging.NewStdoutLogger(cfg.LogLevel)

	lis, err := net.Listen(networkProtocol, cfg.HttpPort)
	if err != nil {
		logger.Error("failed to listen", "error", err.Error())
		os.Exit(1)
	}

	app := bootstrap.NewVendingApp(cfg, logger)
	defer app.Shutdown()

	if err := app.Run(mainCtx, lis); err != nil {
		logger.Error("vending app stopped", "error", err.Error())
	}
}

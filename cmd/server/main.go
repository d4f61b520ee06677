package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/config"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/infra/eth"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/logging"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/numeric"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/service"
	"github.com/haisapan/ethereum-trading-mcp-server/internal/token"
	transport "github.com/haisapan/ethereum-trading-mcp-server/internal/transport/http"
)

func main() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "cfg/config.yaml"
		if _, err := os.Stat(path); err != nil {
			// Env-only configuration.
			path = ""
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config.Load: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		log.Fatalf("logging.New: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gw, err := buildGateway(cfg, logger)
	if err != nil {
		logger.Fatal("gateway init failed", zap.Error(err))
	}

	svc, err := service.New(gw, token.NewRegistry(), cfg, logger)
	if err != nil {
		logger.Fatal("service init failed", zap.Error(err))
	}

	srv, err := transport.NewServer(svc, cfg, logger)
	if err != nil {
		logger.Fatal("server init failed", zap.Error(err))
	}

	if err := srv.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func buildGateway(cfg *config.Config, logger *zap.Logger) (eth.Gateway, error) {
	if cfg.TestMode {
		balance, err := numeric.ParseDecimal(cfg.TestBalance, 18)
		if err != nil {
			return nil, err
		}
		logger.Info("test mode: canned gateway, no network access",
			zap.String("balance", cfg.TestBalance))
		return eth.NewTestGateway(balance), nil
	}

	logger.Info("connecting to RPC node",
		zap.Uint64("chain_id", cfg.ChainID))
	return eth.Dial(cfg.RPCURL, cfg.CallTimeout)
}

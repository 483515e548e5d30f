package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/takashabe/learningsuite-mcp/internal/config"
	"github.com/takashabe/learningsuite-mcp/internal/learningsuite"
	"github.com/takashabe/learningsuite-mcp/internal/logging"
	"github.com/takashabe/learningsuite-mcp/internal/server"
	"github.com/takashabe/learningsuite-mcp/internal/tools"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "learningsuite-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// .envは任意（存在しなければ環境変数のみを使う）
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return err
	}

	// LearningSuite APIクライアントとツールカタログ
	client := learningsuite.New(cfg.APIKey,
		learningsuite.WithBaseURL(cfg.BaseURL),
		learningsuite.WithLogger(logger),
	)
	registry, err := tools.NewRegistry(client)
	if err != nil {
		return fmt.Errorf("failed to build tool registry: %w", err)
	}
	dispatcher := tools.NewDispatcher(registry, logger)

	// サーバーを作成
	mcpServer, err := server.NewLearningSuiteMCPServer(server.Config{
		ServerName:    cfg.Name,
		ServerVersion: cfg.Version,
		TransportType: cfg.Transport,
		HTTPAddr:      cfg.Addr,
	}, dispatcher, logger)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	// シグナルハンドリング
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("config", cfg.String()).Msg("Starting LearningSuite MCP Server...")

	if err := mcpServer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("Server stopped")
	}

	// クリーンアップ
	if err := mcpServer.Stop(); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	logger.Info().Msg("Server shutdown complete")
	return nil
}

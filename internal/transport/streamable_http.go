package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/takashabe/learningsuite-mcp/internal/logging"
)

const shutdownTimeout = 10 * time.Second

// StreamableHTTPTransport はStreamable HTTPによるMCP通信を実装
type StreamableHTTPTransport struct {
	addr   string
	logger zerolog.Logger

	mu     sync.Mutex
	server *http.Server
}

// NewStreamableHTTPTransport は新しいStreamableHTTPTransportを作成
func NewStreamableHTTPTransport(addr string, logger zerolog.Logger) *StreamableHTTPTransport {
	return &StreamableHTTPTransport{
		addr:   addr,
		logger: logger,
	}
}

// NewRouter は /mcp と /health を公開するルーターを作成
func NewRouter(server *mcp.Server, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
	r.Handle("/mcp", otelhttp.NewHandler(mcpHandler, "mcp"))

	return r
}

// Connect はHTTPサーバーを起動し、ctxがキャンセルされるまでブロックする
func (t *StreamableHTTPTransport) Connect(ctx context.Context, server *mcp.Server) error {
	srv := &http.Server{
		Addr:              t.addr,
		Handler:           NewRouter(server, t.logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	t.mu.Lock()
	t.server = srv
	t.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		t.logger.Info().Str("addr", t.addr).Msg("HTTP server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// Close はHTTPサーバーを停止
func (t *StreamableHTTPTransport) Close() error {
	t.mu.Lock()
	srv := t.server
	t.mu.Unlock()
	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

// Type は通信方式の種類を返す
func (t *StreamableHTTPTransport) Type() string {
	return TypeStreamableHTTP
}

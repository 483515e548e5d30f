package transport

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

const (
	TypeStdio          = "stdio"
	TypeStreamableHTTP = "streamable-http"
)

// Transport はMCPサーバーの通信方式を抽象化するインターフェース
// stdio, Streamable HTTP などの異なる通信方式に対応可能
type Transport interface {
	// Connect はクライアントとの接続を確立し、セッションを開始する
	Connect(ctx context.Context, server *mcp.Server) error
	// Close は接続を閉じる
	Close() error
	// Type は通信方式の種類を返す
	Type() string
}

// New は種別に応じたトランスポートを作成
func New(transportType, httpAddr string, logger zerolog.Logger) (Transport, error) {
	switch transportType {
	case TypeStdio, "":
		return NewStdioTransport(), nil
	case TypeStreamableHTTP:
		return NewStreamableHTTPTransport(httpAddr, logger), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTransport, transportType)
	}
}

// StdioTransport はstdin/stdoutを使用したMCP通信を実装
type StdioTransport struct{}

// NewStdioTransport は新しいStdioTransportを作成
func NewStdioTransport() *StdioTransport {
	return &StdioTransport{}
}

// Connect はstdin/stdoutを使用して接続を確立
// クライアントが切断するかctxがキャンセルされるまでブロックする
func (t *StdioTransport) Connect(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

// Close は接続を閉じる（stdioの場合は特に処理なし）
func (t *StdioTransport) Close() error {
	return nil
}

// Type は通信方式の種類を返す
func (t *StdioTransport) Type() string {
	return TypeStdio
}

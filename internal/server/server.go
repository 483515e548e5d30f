package server

import (
	"cmp"
	"context"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/takashabe/learningsuite-mcp/internal/tools"
	"github.com/takashabe/learningsuite-mcp/internal/transport"
	"github.com/takashabe/learningsuite-mcp/pkg/types"
)

// LearningSuiteMCPServer はLearningSuite API用のMCPサーバー
type LearningSuiteMCPServer struct {
	server     *mcp.Server
	transport  transport.Transport
	dispatcher *tools.Dispatcher
	logger     zerolog.Logger
}

// Config はサーバーの設定
type Config struct {
	ServerName    string
	ServerVersion string
	TransportType string
	HTTPAddr      string // Streamable HTTPで使用
}

// NewLearningSuiteMCPServer は新しいサーバーインスタンスを作成
func NewLearningSuiteMCPServer(config Config, dispatcher *tools.Dispatcher, logger zerolog.Logger) (*LearningSuiteMCPServer, error) {
	// 適切なトランスポートを選択
	tp, err := transport.New(config.TransportType, config.HTTPAddr, logger)
	if err != nil {
		return nil, err
	}

	s := &LearningSuiteMCPServer{
		server:     newMCPServer(config, dispatcher),
		transport:  tp,
		dispatcher: dispatcher,
		logger:     logger,
	}
	return s, nil
}

// newMCPServer はツール登録済みのMCPサーバーを作成
func newMCPServer(config Config, dispatcher *tools.Dispatcher) *mcp.Server {
	impl := &mcp.Implementation{
		Name:    config.ServerName,
		Version: config.ServerVersion,
	}
	server := mcp.NewServer(impl, nil)

	registerTools(server, dispatcher)
	server.AddReceivingMiddleware(
		unknownToolMiddleware(dispatcher.Registry()),
		declarationOrderMiddleware(dispatcher.Registry()),
	)

	return server
}

// registerTools はカタログの全ツールを宣言順に登録
func registerTools(server *mcp.Server, dispatcher *tools.Dispatcher) {
	for _, d := range dispatcher.Registry().ListTools() {
		server.AddTool(&mcp.Tool{
			Name:        d.Name,
			Description: d.Description,
			InputSchema: d.InputSchema,
		}, createToolHandler(dispatcher))
	}
}

// createToolHandler はDispatcherに委譲するハンドラーを作成
// 引数の検証はDispatcherとLearningSuite API側で行う
func createToolHandler(dispatcher *tools.Dispatcher) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := dispatcher.Invoke(ctx, req.Params.Name, req.Params.Arguments)
		return toMCPResult(result), nil
	}
}

// unknownToolMiddleware は未登録ツールの呼び出しをJSON-RPCエラーではなく
// エラー結果として返す
func unknownToolMiddleware(registry *tools.Registry) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			if call, ok := req.(*mcp.CallToolRequest); ok && call.Params != nil {
				if _, found := registry.Lookup(call.Params.Name); !found {
					return toMCPResult(types.NewErrorResult(tools.UnknownToolError(call.Params.Name))), nil
				}
			}
			return next(ctx, method, req)
		}
	}
}

// declarationOrderMiddleware はSDKが名前順に返すtools/listの結果を
// カタログの宣言順に並べ替える
func declarationOrderMiddleware(registry *tools.Registry) mcp.Middleware {
	position := make(map[string]int)
	for i, name := range registry.Names() {
		position[name] = i
	}

	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			res, err := next(ctx, method, req)
			if err != nil {
				return res, err
			}
			if list, ok := res.(*mcp.ListToolsResult); ok {
				slices.SortStableFunc(list.Tools, func(a, b *mcp.Tool) int {
					return cmp.Compare(position[a.Name], position[b.Name])
				})
			}
			return res, nil
		}
	}
}

// toMCPResult はtypes.CallToolResultからmcp.CallToolResultに変換
func toMCPResult(result *types.CallToolResult) *mcp.CallToolResult {
	content := make([]mcp.Content, 0, len(result.Content))
	for _, c := range result.Content {
		content = append(content, &mcp.TextContent{Text: c.Text})
	}
	return &mcp.CallToolResult{
		Content: content,
		IsError: result.IsError,
	}
}

// Start はサーバーを開始
func (s *LearningSuiteMCPServer) Start(ctx context.Context) error {
	s.logger.Info().
		Str("transport", s.transport.Type()).
		Int("tools", len(s.dispatcher.Registry().ListTools())).
		Msg("Starting LearningSuite MCP Server")
	return s.transport.Connect(ctx, s.server)
}

// Stop はサーバーを停止
func (s *LearningSuiteMCPServer) Stop() error {
	return s.transport.Close()
}

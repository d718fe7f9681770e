// Package server exposes the catalog's tools over the Model Context Protocol.
//
// The single registered tool forwards its arguments to an Executor and
// returns the resulting envelope as one text content block. Gateway failures
// are part of the envelope, so tool results are never flagged as errors
// unless the arguments themselves cannot be decoded.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/shopifymcp/admin"
	"github.com/jonwraymond/shopifymcp/catalog"
)

// Implementation identity reported during the MCP handshake.
const (
	Name    = "shopify"
	Version = "0.1.0"
)

// Errors returned by New.
var (
	ErrExecutorRequired = errors.New("server: Executor is required")
	ErrInvalidArguments = errors.New("server: invalid tool arguments")
)

// Executor runs one GraphQL document. *admin.Client satisfies it.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: Execute reports every failure inside the returned Outcome.
type Executor interface {
	Execute(ctx context.Context, query string, variables map[string]any) admin.Outcome
}

// Options configures a Server.
type Options struct {
	// Executor forwards documents upstream.
	// Required.
	Executor Executor

	// Catalog supplies tool definitions.
	// Default: catalog.Default()
	Catalog *catalog.Catalog

	// Logger receives diagnostics. Optional.
	Logger admin.Logger
}

// Server is an MCP server with the Shopify tools registered.
type Server struct {
	mcp      *mcp.Server
	executor Executor
	logger   admin.Logger
}

// New builds a Server and registers every tool it serves.
func New(opts Options) (*Server, error) {
	if opts.Executor == nil {
		return nil, ErrExecutorRequired
	}
	cat := opts.Catalog
	if cat == nil {
		var err error
		if cat, err = catalog.Default(); err != nil {
			return nil, err
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = admin.NopLogger{}
	}

	s := &Server{
		mcp:      mcp.NewServer(&mcp.Implementation{Name: Name, Version: Version}, nil),
		executor: opts.Executor,
		logger:   logger,
	}

	handlers := map[string]mcp.ToolHandler{
		catalog.ExecuteGraphQLID: s.executeGraphQL,
	}
	for id, h := range handlers {
		tool, err := cat.MCPTool(id)
		if err != nil {
			return nil, err
		}
		s.mcp.AddTool(tool, h)
	}
	return s, nil
}

// MCP returns the underlying protocol server, for custom transports.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

// Run serves on t until the client disconnects or ctx is canceled.
func (s *Server) Run(ctx context.Context, t mcp.Transport) error {
	s.logger.Info("mcp server starting", "name", Name, "version", Version)
	err := s.mcp.Run(ctx, t)
	s.logger.Info("mcp server stopped", "error", err)
	return err
}

// executeArgs mirrors the tool's input schema.
type executeArgs struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

func decodeExecuteArgs(raw json.RawMessage) (executeArgs, error) {
	var args executeArgs
	if len(raw) == 0 {
		return args, fmt.Errorf("%w: query is required", ErrInvalidArguments)
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return args, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	if args.Query == "" {
		return args, fmt.Errorf("%w: query is required", ErrInvalidArguments)
	}
	return args, nil
}

func (s *Server) executeGraphQL(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var raw json.RawMessage
	if req != nil && req.Params != nil {
		raw = req.Params.Arguments
	}
	args, err := decodeExecuteArgs(raw)
	if err != nil {
		s.logger.Warn("rejected tool call", "tool", catalog.ExecuteGraphQLName, "error", err)
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		}, nil
	}

	out := s.executor.Execute(ctx, args.Query, args.Variables)
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: out.Envelope()}},
	}, nil
}

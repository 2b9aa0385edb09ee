// Package mcp exposes the orthology engine as Model Context Protocol tools.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/orthology"
	"github.com/aretw0/orthology/pkg/adapters/newick"
	"github.com/aretw0/orthology/pkg/domain"
	"github.com/aretw0/orthology/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolArgs are the arguments shared by every tool.
type ToolArgs struct {
	Newick    string   `json:"newick"`
	Separator string   `json:"separator"`
	IDFirst   bool     `json:"id_first"`
	Targets   []string `json:"targets,omitempty"`
}

// ClassifyResult is the structured output of classify_tree.
type ClassifyResult struct {
	Trees []TreeRecords `json:"trees" jsonschema_description:"One entry per tree of the input"`
}

// TreeRecords lists the relationship records of one tree.
type TreeRecords struct {
	Tree    int             `json:"tree"`
	Taxa    []string        `json:"taxa" jsonschema_description:"Leaf labels in postorder"`
	Records []domain.Record `json:"records" jsonschema_description:"Relationship of each target to every other leaf"`
}

// CompactResult is the structured output of compact_tree.
type CompactResult struct {
	Trees []TreeStatements `json:"trees" jsonschema_description:"One entry per tree of the input"`
}

// TreeStatements lists the node-level statements of one tree.
type TreeStatements struct {
	Tree       int                `json:"tree"`
	Statements []domain.Statement `json:"statements"`
}

// Server wraps the engine factory and exposes it as an MCP server.
type Server struct {
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithLifecycleHooks passes hooks to every engine the server builds.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Server) {
		s.hooks = hooks
	}
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(opts ...Option) *Server {
	s := &Server{
		logger:    slog.Default(),
		mcpServer: server.NewMCPServer("orthology-mcp", strings.TrimSpace(orthology.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on addr until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL("http://"+addr))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

// Tools returns the tool definitions the server registers.
func Tools() []mcp.Tool {
	common := []mcp.ToolOption{
		mcp.WithString("newick", mcp.Required(), mcp.Description("One or more Newick trees, each terminated by ';'")),
		mcp.WithString("separator", mcp.Required(), mcp.Description("String between species name and gene id in leaf labels")),
		mcp.WithBoolean("id_first", mcp.Description("Leaf labels put the gene id before the species name")),
	}

	classify := append([]mcp.ToolOption{
		mcp.WithDescription("Classify every pair of leaves of a gene tree as orthologous, paralogous or ambiguous."),
		mcp.WithArray("targets", mcp.Description("Leaf labels to report; all leaves when omitted"), mcp.WithStringItems()),
		mcp.WithOutputSchema[ClassifyResult](),
	}, common...)

	compact := append([]mcp.ToolOption{
		mcp.WithDescription("Summarise the relationships of a binary gene tree as one statement per internal node."),
		mcp.WithOutputSchema[CompactResult](),
	}, common...)

	return []mcp.Tool{
		mcp.NewTool("classify_tree", classify...),
		mcp.NewTool("compact_tree", compact...),
	}
}

func (s *Server) registerTools() {
	tools := Tools()
	s.mcpServer.AddTool(tools[0], mcp.NewStructuredToolHandler(s.handleClassify))
	s.mcpServer.AddTool(tools[1], mcp.NewStructuredToolHandler(s.handleCompact))
}

func (s *Server) handleClassify(ctx context.Context, _ mcp.CallToolRequest, args ToolArgs) (ClassifyResult, error) {
	eng, trees, err := s.load(ctx, args)
	if err != nil {
		return ClassifyResult{}, err
	}

	res := ClassifyResult{Trees: make([]TreeRecords, 0, len(trees))}
	for i, tree := range trees {
		table, err := eng.Classify(ctx, tree)
		if err != nil {
			return ClassifyResult{}, fmt.Errorf("classify failed: %w", err)
		}
		records, err := orthology.Records(table, args.Targets)
		if err != nil {
			return ClassifyResult{}, err
		}
		res.Trees = append(res.Trees, TreeRecords{Tree: i, Taxa: table.Taxa, Records: records})
	}
	return res, nil
}

func (s *Server) handleCompact(ctx context.Context, _ mcp.CallToolRequest, args ToolArgs) (CompactResult, error) {
	eng, trees, err := s.load(ctx, args)
	if err != nil {
		return CompactResult{}, err
	}

	res := CompactResult{Trees: make([]TreeStatements, 0, len(trees))}
	for i, tree := range trees {
		statements, err := eng.Compact(ctx, tree)
		if err != nil {
			return CompactResult{}, fmt.Errorf("compact failed: %w", err)
		}
		res.Trees = append(res.Trees, TreeStatements{Tree: i, Statements: statements})
	}
	return res, nil
}

func (s *Server) load(ctx context.Context, args ToolArgs) (*orthology.Engine, []ports.Node, error) {
	text, err := newick.Sanitize(args.Newick)
	if err != nil {
		return nil, nil, err
	}
	eng, err := orthology.New(
		orthology.WithSeparator(args.Separator),
		orthology.WithIDFirst(args.IDFirst),
		orthology.WithLifecycleHooks(s.hooks),
		orthology.WithLogger(s.logger),
	)
	if err != nil {
		return nil, nil, err
	}
	trees, err := eng.Load(ctx, strings.NewReader(text))
	if err != nil {
		s.logger.Warn("tool input rejected", "error", err)
		return nil, nil, err
	}
	return eng, trees, nil
}

package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"worldbank-dnr-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register tools with their proper schemas using mcp-go builder pattern
	toolDefinitions := map[string]mcp.Tool{
		"worldbank_search_documents": mcp.NewTool("worldbank_search_documents",
			mcp.WithDescription("Search for documents in the World Bank Documents & Reports database. Searches across title, abstract, report number, project name, and other fields."),
			mcp.WithTitleAnnotation("Search World Bank Documents"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(true),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Search query (1-500 characters). Examples: 'climate change', 'education reform', 'infrastructure development'"),
			),
			mcp.WithArray("countries",
				mcp.Description("Filter by country names (max 20). Examples: ['Kenya', 'Brazil']. Use exact country names."),
				mcp.WithStringItems(),
			),
			mcp.WithArray("document_types",
				mcp.Description("Filter by document type (max 10). Examples: ['Procurement Plan', 'Project Appraisal Document']. Use worldbank_explore_facets to see available types."),
				mcp.WithStringItems(),
			),
			mcp.WithArray("languages",
				mcp.Description("Filter by language (max 5). Examples: ['English', 'Spanish']. Use worldbank_explore_facets to see available languages."),
				mcp.WithStringItems(),
			),
			mcp.WithString("date_from",
				mcp.Description("Start date for documents (YYYY-MM-DD or MM-DD-YYYY). Example: '2020-01-01'"),
			),
			mcp.WithString("date_to",
				mcp.Description("End date for documents (YYYY-MM-DD or MM-DD-YYYY). Example: '2023-12-31'"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of results per page (1-100, default 20)"),
				mcp.DefaultNumber(20),
			),
			mcp.WithNumber("offset",
				mcp.Description("Number of results to skip for pagination (default 0)"),
				mcp.DefaultNumber(0),
			),
			mcp.WithString("sort_by",
				mcp.Description("Field to sort by: 'docdt' (document date), 'repnb' (report number), 'docty' (document type). Default 'docdt'."),
				mcp.DefaultString("docdt"),
			),
			mcp.WithString("sort_order",
				mcp.Description("Sort order: 'asc' (oldest first) or 'desc' (newest first, default)"),
				mcp.Enum("asc", "desc"),
				mcp.DefaultString("desc"),
			),
			mcp.WithString("response_format",
				mcp.Description("Output format: 'markdown' (human-readable, default) or 'json' (machine-readable)"),
				mcp.Enum("markdown", "json"),
				mcp.DefaultString("markdown"),
			),
		),
		"worldbank_get_document_details": mcp.NewTool("worldbank_get_document_details",
			mcp.WithDescription("Retrieve detailed information for a specific World Bank document by its ID or GUID."),
			mcp.WithTitleAnnotation("Get World Bank Document Details"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(true),
			mcp.WithString("document_id",
				mcp.Required(),
				mcp.Description("Unique document identifier (ID or GUID) from search results. Example: '000333037_20150825102649'"),
			),
			mcp.WithString("response_format",
				mcp.Description("Output format: 'markdown' (default) or 'json'"),
				mcp.Enum("markdown", "json"),
				mcp.DefaultString("markdown"),
			),
		),
		"worldbank_explore_facets": mcp.NewTool("worldbank_explore_facets",
			mcp.WithDescription("Explore available facet values in the World Bank Documents database. Useful for discovering valid filter values before searching."),
			mcp.WithTitleAnnotation("Explore World Bank Document Facets"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(true),
			mcp.WithArray("facets",
				mcp.Required(),
				mcp.Description("Facets to explore (1-10). Common options: 'count_exact' (countries), 'lang_exact' (languages), 'docty_exact' (document types), 'majtheme_exact' (major themes), 'topic_exact' (topics)."),
				mcp.WithStringItems(),
			),
			mcp.WithString("query",
				mcp.Description("Optional search query to filter facet values (max 500 characters)"),
			),
			mcp.WithString("response_format",
				mcp.Description("Output format: 'markdown' (default) or 'json'"),
				mcp.Enum("markdown", "json"),
				mcp.DefaultString("markdown"),
			),
		),
		"worldbank_search_by_project": mcp.NewTool("worldbank_search_by_project",
			mcp.WithDescription("Search for documents related to a specific World Bank project. Either project_id or project_name must be provided."),
			mcp.WithTitleAnnotation("Search World Bank Documents by Project"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(true),
			mcp.WithString("project_id",
				mcp.Description("World Bank project ID (max 100 characters). Example: 'P123456'"),
			),
			mcp.WithString("project_name",
				mcp.Description("Project name to search for (max 500 characters). Example: 'Rural Education Project'"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of results (1-100, default 20)"),
				mcp.DefaultNumber(20),
			),
			mcp.WithNumber("offset",
				mcp.Description("Number of results to skip for pagination (default 0)"),
				mcp.DefaultNumber(0),
			),
			mcp.WithString("response_format",
				mcp.Description("Output format: 'markdown' (default) or 'json'"),
				mcp.Enum("markdown", "json"),
				mcp.DefaultString("markdown"),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool := toolDefinitions[name]
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}

// ServeStdio runs the server over standard input/output until the stream
// closes or the process receives a termination signal.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}

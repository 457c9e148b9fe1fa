package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/worldbank-dnr-mcp/internal/config"
	"github.com/roivaz/worldbank-dnr-mcp/internal/logging"
	"github.com/roivaz/worldbank-dnr-mcp/internal/mcp/tools"
	"github.com/roivaz/worldbank-dnr-mcp/internal/wds"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

// DefaultConfig wires the WDS client and the transport's envelope parser into
// the four tool handlers. The parser is fixed here, at construction: tool
// handlers never detect envelope shapes themselves.
func DefaultConfig(transport string) Config {
	baseLogger := logging.ForLevel(config.LogLevel())

	client := wds.NewClient(wds.ClientConfig{
		BaseURL: config.APIBaseURL(),
		Timeout: config.RequestTimeout(),
		Logger:  logging.New(baseLogger.WithName("wds")),
	})
	parser := wds.ParserForTransport(transport)

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"worldbank_search_documents":     &tools.SearchDocumentsHandler{API: client, Parser: parser},
			"worldbank_get_document_details": &tools.GetDocumentDetailsHandler{API: client, Parser: parser},
			"worldbank_explore_facets":       &tools.ExploreFacetsHandler{API: client},
			"worldbank_search_by_project":    &tools.SearchByProjectHandler{API: client, Parser: parser},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
	}
}

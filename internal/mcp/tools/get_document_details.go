package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/worldbank-dnr-mcp/internal/mcp/tools/types"
	"github.com/roivaz/worldbank-dnr-mcp/internal/render"
	"github.com/roivaz/worldbank-dnr-mcp/internal/wds"
)

// GetDocumentDetailsHandler serves worldbank_get_document_details.
type GetDocumentDetailsHandler struct {
	API    Fetcher
	Parser wds.EnvelopeParser
}

func (h *GetDocumentDetailsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := &types.DocumentDetailsRequest{
		DocumentID: strings.TrimSpace(req.GetString("document_id", "")),
		Format:     req.GetString("response_format", types.FormatMarkdown),
	}
	if err := input.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// One exact-match row; the total field of the reply is irrelevant here,
	// presence of the record is authoritative.
	params := wds.BuildQueryParams(wds.SearchParams{
		Limit: 1,
		Extra: map[string]string{"id": input.DocumentID},
	})

	envelope, err := h.API.Fetch(ctx, params)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error retrieving document details: %v", err)), nil
	}

	docs, _ := h.Parser.Parse(envelope)
	if len(docs) == 0 {
		return mcp.NewToolResultText(notFoundGuidance(input.DocumentID)), nil
	}

	doc := docs[0]
	if input.Format == types.FormatJSON {
		record := render.NewDocumentRecord(doc)
		return mcp.NewToolResultText(render.Encode(record)), nil
	}
	return mcp.NewToolResultText(render.DocumentDetailsMarkdown(doc)), nil
}

func notFoundGuidance(documentID string) string {
	return fmt.Sprintf("Document with ID '%s' not found.\n\n", documentID) +
		"This could mean:\n" +
		"- The document ID is incorrect\n" +
		"- The document has been removed from the database\n" +
		"- The ID format is invalid\n\n" +
		"Try using worldbank_search_documents to find the correct document ID."
}

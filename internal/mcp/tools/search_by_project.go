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

const missingProjectGuidance = "Error: Either project_id or project_name must be provided.\n\n" +
	"Examples:\n" +
	"- project_id='P123456'\n" +
	"- project_name='Rural Education Project'\n" +
	"- Both can be provided for more specific search"

// SearchByProjectHandler serves worldbank_search_by_project.
type SearchByProjectHandler struct {
	API    Fetcher
	Parser wds.EnvelopeParser
}

func (h *SearchByProjectHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := &types.ProjectSearchRequest{
		ProjectID:   strings.TrimSpace(req.GetString("project_id", "")),
		ProjectName: strings.TrimSpace(req.GetString("project_name", "")),
		Limit:       req.GetInt("limit", types.DefaultLimit),
		Offset:      req.GetInt("offset", 0),
		Format:      req.GetString("response_format", types.FormatMarkdown),
	}
	if err := input.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// The id/name alternative is a request-handling precondition, checked
	// after field validation and before any network access.
	if input.ProjectID == "" && input.ProjectName == "" {
		return mcp.NewToolResultError(missingProjectGuidance), nil
	}

	extra := map[string]string{}
	if input.ProjectID != "" {
		extra["proid"] = input.ProjectID
	}
	if input.ProjectName != "" {
		extra["projn"] = input.ProjectName
	}
	params := wds.BuildQueryParams(wds.SearchParams{
		Limit:  input.Limit,
		Offset: input.Offset,
		Extra:  extra,
	})

	envelope, err := h.API.Fetch(ctx, params)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error searching by project: %v", err)), nil
	}

	docs, total := h.Parser.Parse(envelope)
	if total == 0 {
		return mcp.NewToolResultText(noProjectDocumentsGuidance(input)), nil
	}

	if input.Format == types.FormatJSON {
		result := &render.ProjectResult{
			ProjectID:   optionalFilter(input.ProjectID),
			ProjectName: optionalFilter(input.ProjectName),
			Total:       total,
			Count:       len(docs),
			Offset:      input.Offset,
			Limit:       input.Limit,
			HasMore:     input.Offset+len(docs) < total,
			NextOffset:  render.NextOffset(input.Offset, len(docs), total),
			Documents:   render.NewDocumentRecords(docs),
		}
		return mcp.NewToolResultText(render.EncodeCapped(result)), nil
	}

	output := render.ProjectResultsMarkdown(input.ProjectID, input.ProjectName, docs, total, input.Offset)
	return mcp.NewToolResultText(render.Truncate(output, len(docs))), nil
}

func noProjectDocumentsGuidance(input *types.ProjectSearchRequest) string {
	searchTerm := input.ProjectID
	if searchTerm == "" {
		searchTerm = input.ProjectName
	}
	return fmt.Sprintf("No documents found for project: %s\n\n", searchTerm) +
		"This could mean:\n" +
		"- The project ID or name is incorrect\n" +
		"- The project has no publicly available documents\n" +
		"- The project doesn't exist in the database\n\n" +
		"Try:\n" +
		"- Check the project ID format (usually P followed by numbers)\n" +
		"- Search for the project by name using worldbank_search_documents\n" +
		"- Use broader search terms"
}

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

const noResultsGuidance = "No documents found matching your query.\n\n" +
	"Suggestions:\n" +
	"- Try broader search terms\n" +
	"- Remove some filters\n" +
	"- Check spelling of country names or document types\n" +
	"- Use the worldbank_explore_facets tool to see available filter values"

// SearchDocumentsHandler serves worldbank_search_documents.
type SearchDocumentsHandler struct {
	API    Fetcher
	Parser wds.EnvelopeParser
}

func (h *SearchDocumentsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := parseSearchDocumentsRequest(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	params := wds.BuildQueryParams(wds.SearchParams{
		Query:         input.Query,
		Countries:     input.Countries,
		DocumentTypes: input.DocumentTypes,
		Languages:     input.Languages,
		DateFrom:      input.DateFrom,
		DateTo:        input.DateTo,
		Limit:         input.Limit,
		Offset:        input.Offset,
		SortBy:        input.SortBy,
		SortOrder:     input.SortOrder,
	})

	envelope, err := h.API.Fetch(ctx, params)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error searching World Bank documents: %v", err)), nil
	}

	docs, total := h.Parser.Parse(envelope)
	if total == 0 {
		return mcp.NewToolResultText(noResultsGuidance), nil
	}

	if input.Format == types.FormatJSON {
		result := &render.SearchResult{
			Query:      input.Query,
			Total:      total,
			Count:      len(docs),
			Offset:     input.Offset,
			Limit:      input.Limit,
			HasMore:    input.Offset+len(docs) < total,
			NextOffset: render.NextOffset(input.Offset, len(docs), total),
			Filters: render.SearchFilters{
				Countries:     input.Countries,
				DocumentTypes: input.DocumentTypes,
				Languages:     input.Languages,
				DateFrom:      optionalFilter(input.DateFrom),
				DateTo:        optionalFilter(input.DateTo),
			},
			Documents: render.NewDocumentRecords(docs),
		}
		return mcp.NewToolResultText(render.EncodeCapped(result)), nil
	}

	output := render.SearchResultsMarkdown(input.Query, activeFilters(input), docs, total, input.Offset)
	return mcp.NewToolResultText(render.Truncate(output, len(docs))), nil
}

func parseSearchDocumentsRequest(req mcp.CallToolRequest) (*types.SearchDocumentsRequest, error) {
	args := req.GetArguments()

	countries, err := stringSliceArgument(args, "countries")
	if err != nil {
		return nil, err
	}
	docTypes, err := stringSliceArgument(args, "document_types")
	if err != nil {
		return nil, err
	}
	languages, err := stringSliceArgument(args, "languages")
	if err != nil {
		return nil, err
	}

	input := &types.SearchDocumentsRequest{
		Query:         strings.TrimSpace(req.GetString("query", "")),
		Countries:     countries,
		DocumentTypes: docTypes,
		Languages:     languages,
		DateFrom:      strings.TrimSpace(req.GetString("date_from", "")),
		DateTo:        strings.TrimSpace(req.GetString("date_to", "")),
		Limit:         req.GetInt("limit", types.DefaultLimit),
		Offset:        req.GetInt("offset", 0),
		SortBy:        strings.TrimSpace(req.GetString("sort_by", types.DefaultSortBy)),
		SortOrder:     req.GetString("sort_order", types.SortDescending),
		Format:        req.GetString("response_format", types.FormatMarkdown),
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return input, nil
}

// activeFilters summarizes the filters that are actually set, for the
// markdown header line.
func activeFilters(input *types.SearchDocumentsRequest) []string {
	var filters []string
	if len(input.Countries) > 0 {
		filters = append(filters, "Countries: "+strings.Join(input.Countries, ", "))
	}
	if len(input.DocumentTypes) > 0 {
		filters = append(filters, "Types: "+strings.Join(input.DocumentTypes, ", "))
	}
	if len(input.Languages) > 0 {
		filters = append(filters, "Languages: "+strings.Join(input.Languages, ", "))
	}
	if input.DateFrom != "" || input.DateTo != "" {
		from, to := input.DateFrom, input.DateTo
		if from == "" {
			from = "any"
		}
		if to == "" {
			to = "any"
		}
		filters = append(filters, fmt.Sprintf("Dates: %s to %s", from, to))
	}
	return filters
}

func optionalFilter(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

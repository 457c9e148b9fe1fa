package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/gjson"

	"github.com/roivaz/worldbank-dnr-mcp/internal/mcp/tools/types"
	"github.com/roivaz/worldbank-dnr-mcp/internal/render"
	"github.com/roivaz/worldbank-dnr-mcp/internal/wds"
)

// markdownFacetCap bounds the per-facet listing in markdown mode; structured
// output returns the full sorted list.
const markdownFacetCap = 50

const noFacetsGuidance = "No facet data available.\n\n" +
	"This could mean:\n" +
	"- The requested facets don't exist\n" +
	"- The query returned no matching documents\n\n" +
	"Common facet names:\n" +
	"- count_exact (countries)\n" +
	"- lang_exact (languages)\n" +
	"- docty_exact (document types)\n" +
	"- majtheme_exact (major themes)\n" +
	"- topic_exact (topics)"

// ExploreFacetsHandler serves worldbank_explore_facets.
type ExploreFacetsHandler struct {
	API Fetcher
}

func (h *ExploreFacetsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	facets, err := stringSliceArgument(req.GetArguments(), "facets")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	input := &types.ExploreFacetsRequest{
		Facets: facets,
		Query:  strings.TrimSpace(req.GetString("query", "")),
		Format: req.GetString("response_format", types.FormatMarkdown),
	}
	if err := input.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Zero rows: only the aggregated facet counts are wanted.
	params := wds.BuildQueryParams(wds.SearchParams{
		Query:  input.Query,
		Facets: input.Facets,
	})
	params["rows"] = "0"

	envelope, err := h.API.Fetch(ctx, params)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error exploring facets: %v", err)), nil
	}

	facetData := wds.Facets(envelope)
	if !facetData.Exists() || len(facetData.Map()) == 0 {
		return mcp.NewToolResultText(noFacetsGuidance), nil
	}

	if input.Format == types.FormatJSON {
		return mcp.NewToolResultText(encodeFacetsJSON(input, facetData)), nil
	}
	return mcp.NewToolResultText(facetsMarkdown(input, facetData)), nil
}

// facetsMarkdown lists each requested facet in request order. A facet the API
// did not return renders as an explicit no-data marker instead of being
// dropped.
func facetsMarkdown(input *types.ExploreFacetsRequest, facetData gjson.Result) string {
	var b strings.Builder

	b.WriteString("# World Bank Document Facets\n\n")
	if input.Query != "" {
		fmt.Fprintf(&b, "**Filtered by query:** %s\n\n", input.Query)
	}

	for _, name := range input.Facets {
		values := facetData.Get(name)
		if !values.Exists() {
			fmt.Fprintf(&b, "## %s\n\n*No data available*\n\n", name)
			continue
		}

		pairs := wds.FacetPairs(values)
		fmt.Fprintf(&b, "## %s\n\n", name)
		fmt.Fprintf(&b, "Total unique values: %d\n\n", len(pairs))

		shown := pairs
		if len(shown) > markdownFacetCap {
			shown = shown[:markdownFacetCap]
		}
		for _, pair := range shown {
			fmt.Fprintf(&b, "- **%s**: %s documents\n", pair.Value, render.GroupDigits(pair.Count))
		}
		if len(pairs) > markdownFacetCap {
			fmt.Fprintf(&b, "\n*Showing top %d of %d total values*\n", markdownFacetCap, len(pairs))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// facetsResult is the structured reply: every requested facet keyed with its
// full sorted pair list, missing facets as empty lists.
type facetsResult struct {
	Facets map[string][]wds.FacetValue `json:"facets"`
	Query  string                      `json:"query,omitempty"`
}

func encodeFacetsJSON(input *types.ExploreFacetsRequest, facetData gjson.Result) string {
	result := facetsResult{Facets: make(map[string][]wds.FacetValue, len(input.Facets)), Query: input.Query}
	for _, name := range input.Facets {
		values := facetData.Get(name)
		if !values.Exists() {
			result.Facets[name] = []wds.FacetValue{}
			continue
		}
		result.Facets[name] = wds.FacetPairs(values)
	}
	return render.Encode(result)
}

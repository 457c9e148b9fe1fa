package tools

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func TestExploreFacets_JSONSortedDescending(t *testing.T) {
	fake := &fakeFetcher{envelope: `{"facets": {"count_exact": ["A", 3, "B", 7]}}`}
	handler := &ExploreFacetsHandler{API: fake}

	result, err := handler.ToolAdapter(context.Background(), callRequest("worldbank_explore_facets", map[string]any{
		"facets":          []any{"count_exact"},
		"response_format": "json",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pairs := gjson.Parse(resultText(t, result)).Get("facets.count_exact").Array()
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].Get("value").Str != "B" || pairs[0].Get("count").Int() != 7 {
		t.Fatalf("pairs not sorted by count descending: %s", pairs[0].Raw)
	}

	if fake.calls[0]["rows"] != "0" {
		t.Fatalf("facet exploration must request zero documents, got rows=%q", fake.calls[0]["rows"])
	}
	if fake.calls[0]["fct"] != "count_exact" {
		t.Fatalf("facet list not mapped, got fct=%q", fake.calls[0]["fct"])
	}
}

func TestExploreFacets_MissingFacetRendersNoDataMarker(t *testing.T) {
	fake := &fakeFetcher{envelope: `{"facets": {"count_exact": ["Kenya", 3]}}`}
	handler := &ExploreFacetsHandler{API: fake}

	result, err := handler.ToolAdapter(context.Background(), callRequest("worldbank_explore_facets", map[string]any{
		"facets": []any{"count_exact", "lang_exact"},
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := resultText(t, result)
	if !strings.Contains(output, "## lang_exact\n\n*No data available*") {
		t.Fatalf("missing facet must render an explicit marker:\n%s", output)
	}
	if !strings.Contains(output, "- **Kenya**: 3 documents") {
		t.Fatalf("present facet values missing:\n%s", output)
	}
}

func TestExploreFacets_MissingFacetEmptyListInJSON(t *testing.T) {
	fake := &fakeFetcher{envelope: `{"facets": {"count_exact": ["Kenya", 3]}}`}
	handler := &ExploreFacetsHandler{API: fake}

	result, err := handler.ToolAdapter(context.Background(), callRequest("worldbank_explore_facets", map[string]any{
		"facets":          []any{"lang_exact"},
		"response_format": "json",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	facets := gjson.Parse(resultText(t, result)).Get("facets.lang_exact")
	if !facets.Exists() || !facets.IsArray() || len(facets.Array()) != 0 {
		t.Fatalf("missing facet must be an empty list: %s", facets.Raw)
	}
}

func TestExploreFacets_MarkdownCapsAtFifty(t *testing.T) {
	var values []string
	for i := 0; i < 60; i++ {
		values = append(values, fmt.Sprintf(`"v%d", %d`, i, i))
	}
	fake := &fakeFetcher{envelope: `{"facets": {"topic_exact": [` + strings.Join(values, ", ") + `]}}`}
	handler := &ExploreFacetsHandler{API: fake}

	result, err := handler.ToolAdapter(context.Background(), callRequest("worldbank_explore_facets", map[string]any{
		"facets": []any{"topic_exact"},
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := resultText(t, result)
	if !strings.Contains(output, "*Showing top 50 of 60 total values*") {
		t.Fatalf("cap notice missing:\n%s", output)
	}
	if strings.Count(output, "- **v") != 50 {
		t.Fatalf("expected exactly 50 listed values, got %d", strings.Count(output, "- **v"))
	}

	// Structured mode returns the full sorted list uncapped.
	result, err = handler.ToolAdapter(context.Background(), callRequest("worldbank_explore_facets", map[string]any{
		"facets":          []any{"topic_exact"},
		"response_format": "json",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pairs := gjson.Parse(resultText(t, result)).Get("facets.topic_exact").Array()
	if len(pairs) != 60 {
		t.Fatalf("structured output must be uncapped, got %d pairs", len(pairs))
	}
}

func TestExploreFacets_NoFacetDataGuidance(t *testing.T) {
	fake := &fakeFetcher{envelope: `{}`}
	handler := &ExploreFacetsHandler{API: fake}

	result, err := handler.ToolAdapter(context.Background(), callRequest("worldbank_explore_facets", map[string]any{
		"facets": []any{"count_exact"},
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(resultText(t, result), "No facet data available.") {
		t.Fatalf("expected guidance block:\n%s", resultText(t, result))
	}
}

func TestExploreFacets_ValidatesFacetCount(t *testing.T) {
	fake := &fakeFetcher{}
	handler := &ExploreFacetsHandler{API: fake}

	var tooMany []any
	for i := 0; i < 11; i++ {
		tooMany = append(tooMany, fmt.Sprintf("f%d", i))
	}
	for _, facets := range []any{[]any{}, tooMany, nil} {
		args := map[string]any{}
		if facets != nil {
			args["facets"] = facets
		}
		result, err := handler.ToolAdapter(context.Background(), callRequest("worldbank_explore_facets", args))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Fatalf("facets %v must be rejected", facets)
		}
	}
	if len(fake.calls) != 0 {
		t.Fatalf("invalid input must never reach the network")
	}
}

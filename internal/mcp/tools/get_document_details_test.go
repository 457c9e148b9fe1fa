package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/roivaz/worldbank-dnr-mcp/internal/wds"
)

func TestGetDocumentDetails_Markdown(t *testing.T) {
	fake := &fakeFetcher{envelope: `{
		"documents": {
			"docs": [{"id": "d1", "display_title": "Some Report", "keywd": ["growth"]}],
			"numFound": 1
		}
	}`}
	handler := &GetDocumentDetailsHandler{API: fake, Parser: wds.ArrayEnvelopeParser{}}

	result, err := handler.ToolAdapter(context.Background(), callRequest("worldbank_get_document_details", map[string]any{
		"document_id": "d1",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := resultText(t, result)
	if !strings.HasPrefix(output, "# World Bank Document Details") {
		t.Fatalf("details header missing:\n%s", output)
	}
	if !strings.Contains(output, "**Keywords:** growth") {
		t.Fatalf("extended metadata missing:\n%s", output)
	}

	params := fake.calls[0]
	if params["rows"] != "1" {
		t.Fatalf("page size must be forced to 1, got %q", params["rows"])
	}
	if params["id"] != "d1" {
		t.Fatalf("identifier filter not injected, got %q", params["id"])
	}
}

func TestGetDocumentDetails_JSON(t *testing.T) {
	fake := &fakeFetcher{envelope: `{
		"documents": {"docs": [{"id": "d1", "display_title": "Some Report"}], "numFound": 1}
	}`}
	handler := &GetDocumentDetailsHandler{API: fake, Parser: wds.ArrayEnvelopeParser{}}

	result, err := handler.ToolAdapter(context.Background(), callRequest("worldbank_get_document_details", map[string]any{
		"document_id":     "d1",
		"response_format": "json",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	record := gjson.Parse(resultText(t, result))
	if record.Get("id").Str != "d1" || record.Get("title").Str != "Some Report" {
		t.Fatalf("record fields missing: %s", record.Raw)
	}
	if !record.Get("abstract").Exists() {
		t.Fatalf("absent scalar fields must still be present as null: %s", record.Raw)
	}
}

func TestGetDocumentDetails_NotFoundIgnoresTotal(t *testing.T) {
	// Empty document list is authoritative even when the reply claims a total.
	fake := &fakeFetcher{envelope: `{"documents": {"docs": [], "numFound": 100}}`}
	handler := &GetDocumentDetailsHandler{API: fake, Parser: wds.ArrayEnvelopeParser{}}

	result, err := handler.ToolAdapter(context.Background(), callRequest("worldbank_get_document_details", map[string]any{
		"document_id": "missing-id",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := resultText(t, result)
	if !strings.Contains(output, "Document with ID 'missing-id' not found.") {
		t.Fatalf("not-found message missing:\n%s", output)
	}
	if !strings.Contains(output, "worldbank_search_documents") {
		t.Fatalf("remediation hint missing:\n%s", output)
	}
}

func TestGetDocumentDetails_ValidatesID(t *testing.T) {
	fake := &fakeFetcher{}
	handler := &GetDocumentDetailsHandler{API: fake, Parser: wds.ArrayEnvelopeParser{}}

	for _, id := range []string{"", strings.Repeat("x", 201)} {
		result, err := handler.ToolAdapter(context.Background(), callRequest("worldbank_get_document_details", map[string]any{
			"document_id": id,
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Fatalf("document_id %q must be rejected", id)
		}
	}
	if len(fake.calls) != 0 {
		t.Fatalf("invalid input must never reach the network")
	}
}

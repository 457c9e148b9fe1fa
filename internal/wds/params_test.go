package wds

import "testing"

func TestBuildQueryParams_Defaults(t *testing.T) {
	params := BuildQueryParams(SearchParams{Limit: 20, Offset: 0})
	if params["format"] != "json" {
		t.Fatalf("expected format=json, got %q", params["format"])
	}
	if params["rows"] != "20" || params["os"] != "0" {
		t.Fatalf("unexpected pagination params: rows=%q os=%q", params["rows"], params["os"])
	}
	for _, key := range []string{"qterm", "count_exact", "docty_exact", "lang_exact", "strdate", "enddate", "srt", "order", "fct"} {
		if _, ok := params[key]; ok {
			t.Fatalf("expected %s to be absent", key)
		}
	}
}

func TestBuildQueryParams_JoinsCountriesWithCaret(t *testing.T) {
	params := BuildQueryParams(SearchParams{
		Limit:     20,
		Countries: []string{"Kenya", "Brazil"},
	})
	if params["count_exact"] != "Kenya^Brazil" {
		t.Fatalf("expected Kenya^Brazil, got %q", params["count_exact"])
	}
}

func TestBuildQueryParams_MultiValueFilters(t *testing.T) {
	params := BuildQueryParams(SearchParams{
		Limit:         10,
		DocumentTypes: []string{"Procurement Plan", "Project Appraisal Document"},
		Languages:     []string{"English"},
		Facets:        []string{"count_exact", "lang_exact"},
	})
	if params["docty_exact"] != "Procurement Plan^Project Appraisal Document" {
		t.Fatalf("unexpected docty_exact %q", params["docty_exact"])
	}
	if params["lang_exact"] != "English" {
		t.Fatalf("unexpected lang_exact %q", params["lang_exact"])
	}
	if params["fct"] != "count_exact,lang_exact" {
		t.Fatalf("expected comma-joined facets, got %q", params["fct"])
	}
}

func TestBuildQueryParams_SortOrderRequiresSortField(t *testing.T) {
	params := BuildQueryParams(SearchParams{Limit: 20, SortOrder: "desc"})
	if _, ok := params["order"]; ok {
		t.Fatalf("order must be omitted without a sort field")
	}

	params = BuildQueryParams(SearchParams{Limit: 20, SortBy: "docdt", SortOrder: "desc"})
	if params["srt"] != "docdt" || params["order"] != "desc" {
		t.Fatalf("unexpected sort params: srt=%q order=%q", params["srt"], params["order"])
	}
}

func TestBuildQueryParams_DateRange(t *testing.T) {
	params := BuildQueryParams(SearchParams{
		Limit:    20,
		DateFrom: "2020-01-01",
		DateTo:   "2023-12-31",
	})
	if params["strdate"] != "2020-01-01" || params["enddate"] != "2023-12-31" {
		t.Fatalf("unexpected date params: strdate=%q enddate=%q", params["strdate"], params["enddate"])
	}
}

func TestBuildQueryParams_ExtrasOverwriteDefaults(t *testing.T) {
	params := BuildQueryParams(SearchParams{
		Limit: 20,
		Extra: map[string]string{"rows": "0", "id": "000333037"},
	})
	if params["rows"] != "0" {
		t.Fatalf("extras must overwrite defaults, got rows=%q", params["rows"])
	}
	if params["id"] != "000333037" {
		t.Fatalf("expected injected id filter, got %q", params["id"])
	}
}

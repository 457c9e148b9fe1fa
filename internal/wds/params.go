package wds

import (
	"strconv"
	"strings"
)

// SearchParams holds the high-level search fields that map onto WDS query
// string parameters. Zero values mean "not set" and produce no key.
type SearchParams struct {
	Query         string
	Countries     []string
	DocumentTypes []string
	Languages     []string
	DateFrom      string
	DateTo        string
	Limit         int
	Offset        int
	SortBy        string
	SortOrder     string
	Facets        []string

	// Extra key/value pairs merged in last; they may overwrite defaults.
	// Used to inject exact-match filters such as id, proid or projn.
	Extra map[string]string
}

// BuildQueryParams translates SearchParams into the flat query parameter map
// the WDS API understands. Multi-value filters are joined with "^", facet
// names with ",". Absent optional fields produce absent keys.
func BuildQueryParams(p SearchParams) map[string]string {
	params := map[string]string{
		"format": "json",
		"rows":   strconv.Itoa(p.Limit),
		"os":     strconv.Itoa(p.Offset),
	}

	if p.Query != "" {
		params["qterm"] = p.Query
	}
	if len(p.Countries) > 0 {
		params["count_exact"] = strings.Join(p.Countries, "^")
	}
	if len(p.DocumentTypes) > 0 {
		params["docty_exact"] = strings.Join(p.DocumentTypes, "^")
	}
	if len(p.Languages) > 0 {
		params["lang_exact"] = strings.Join(p.Languages, "^")
	}
	if p.DateFrom != "" {
		params["strdate"] = p.DateFrom
	}
	if p.DateTo != "" {
		params["enddate"] = p.DateTo
	}
	if p.SortBy != "" {
		params["srt"] = p.SortBy
		if p.SortOrder != "" {
			params["order"] = p.SortOrder
		}
	}
	if len(p.Facets) > 0 {
		params["fct"] = strings.Join(p.Facets, ",")
	}

	for key, value := range p.Extra {
		params[key] = value
	}

	return params
}

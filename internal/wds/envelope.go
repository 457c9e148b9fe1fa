package wds

import (
	"sort"

	"github.com/tidwall/gjson"
)

// EnvelopeParser extracts the document list and total hit count from a WDS
// reply. The API emits two envelope shapes depending on the deployment the
// adapter fronts, so the parser is chosen once at construction and injected
// into every tool handler. Parsing never fails: a missing or empty document
// collection yields an empty slice and total 0.
type EnvelopeParser interface {
	Parse(envelope gjson.Result) ([]Document, int)
}

// KeyedEnvelopeParser handles replies where "documents" is an object keyed by
// document id, e.g. {documents: {d1: {...}, d2: {...}, facets: {...}}, total: 2}.
// The reserved "facets" key and non-object values are skipped; the total comes
// from the top-level "total" field.
type KeyedEnvelopeParser struct{}

func (KeyedEnvelopeParser) Parse(envelope gjson.Result) ([]Document, int) {
	var docs []Document
	envelope.Get("documents").ForEach(func(key, value gjson.Result) bool {
		if key.Str == "facets" || !value.IsObject() {
			return true
		}
		docs = append(docs, NewDocument(value))
		return true
	})
	return docs, int(envelope.Get("total").Int())
}

// ArrayEnvelopeParser handles replies where "documents" wraps an ordered
// "docs" array and a "numFound" count, e.g.
// {documents: {docs: [{...}, {...}], numFound: 57}}.
type ArrayEnvelopeParser struct{}

func (ArrayEnvelopeParser) Parse(envelope gjson.Result) ([]Document, int) {
	documents := envelope.Get("documents")
	var docs []Document
	for _, item := range documents.Get("docs").Array() {
		docs = append(docs, NewDocument(item))
	}
	return docs, int(documents.Get("numFound").Int())
}

// AutoEnvelopeParser detects the array shape by the presence of the "docs"
// key and falls back to the keyed shape. Only used when the deployment
// context is unknown.
type AutoEnvelopeParser struct{}

func (AutoEnvelopeParser) Parse(envelope gjson.Result) ([]Document, int) {
	if envelope.Get("documents.docs").Exists() {
		return ArrayEnvelopeParser{}.Parse(envelope)
	}
	return KeyedEnvelopeParser{}.Parse(envelope)
}

// ParserForTransport maps a transport name to its envelope parser: stdio
// deployments receive the keyed shape, HTTP deployments the array shape.
// Anything else gets the detecting parser.
func ParserForTransport(transport string) EnvelopeParser {
	switch transport {
	case "stdio":
		return KeyedEnvelopeParser{}
	case "http":
		return ArrayEnvelopeParser{}
	default:
		return AutoEnvelopeParser{}
	}
}

// FacetValue is one aggregated facet entry.
type FacetValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Facets returns the top-level facet mapping of the envelope; the zero
// gjson.Result when the reply carries no facet data.
func Facets(envelope gjson.Result) gjson.Result {
	return envelope.Get("facets")
}

// FacetPairs pairs up a facet's flat alternating [value, count, value, count,
// ...] sequence and sorts the pairs by count descending. A trailing value
// without a count is dropped.
func FacetPairs(values gjson.Result) []FacetValue {
	items := values.Array()
	pairs := make([]FacetValue, 0, len(items)/2)
	for i := 0; i+1 < len(items); i += 2 {
		pairs = append(pairs, FacetValue{
			Value: items[i].String(),
			Count: int(items[i+1].Int()),
		})
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Count > pairs[j].Count })
	return pairs
}

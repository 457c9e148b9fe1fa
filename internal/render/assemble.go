package render

import (
	"encoding/json"
	"fmt"
)

// SearchFilters echoes the active filters back in structured output.
type SearchFilters struct {
	Countries     []string `json:"countries"`
	DocumentTypes []string `json:"document_types"`
	Languages     []string `json:"languages"`
	DateFrom      *string  `json:"date_from"`
	DateTo        *string  `json:"date_to"`
}

// SearchResult is the fixed-shape structured reply for a document search.
type SearchResult struct {
	Query          string           `json:"query"`
	Total          int              `json:"total"`
	Count          int              `json:"count"`
	Offset         int              `json:"offset"`
	Limit          int              `json:"limit"`
	HasMore        bool             `json:"has_more"`
	NextOffset     *int             `json:"next_offset,omitempty"`
	Filters        SearchFilters    `json:"filters"`
	Documents      []DocumentRecord `json:"documents"`
	Truncated      bool             `json:"truncated,omitempty"`
	TruncationNote string           `json:"truncation_note,omitempty"`
}

// ProjectResult is the fixed-shape structured reply for a project search.
type ProjectResult struct {
	ProjectID      *string          `json:"project_id"`
	ProjectName    *string          `json:"project_name"`
	Total          int              `json:"total"`
	Count          int              `json:"count"`
	Offset         int              `json:"offset"`
	Limit          int              `json:"limit"`
	HasMore        bool             `json:"has_more"`
	NextOffset     *int             `json:"next_offset,omitempty"`
	Documents      []DocumentRecord `json:"documents"`
	Truncated      bool             `json:"truncated,omitempty"`
	TruncationNote string           `json:"truncation_note,omitempty"`
}

// NextOffset computes the pagination cursor: non-nil only when more results
// remain past the current page.
func NextOffset(offset, count, total int) *int {
	if offset+count >= total {
		return nil
	}
	next := offset + count
	return &next
}

// CappedResult is a structured reply whose document list can be shortened to
// respect the output ceiling while staying valid JSON.
type CappedResult interface {
	documentCount() int
	dropDocuments(keep, original int)
}

func (r *SearchResult) documentCount() int { return len(r.Documents) }

func (r *SearchResult) dropDocuments(keep, original int) {
	r.Documents = r.Documents[:keep]
	r.Count = len(r.Documents)
	r.Truncated = true
	r.TruncationNote = truncationNote(len(r.Documents), original)
}

func (r *ProjectResult) documentCount() int { return len(r.Documents) }

func (r *ProjectResult) dropDocuments(keep, original int) {
	r.Documents = r.Documents[:keep]
	r.Count = len(r.Documents)
	r.Truncated = true
	r.TruncationNote = truncationNote(len(r.Documents), original)
}

func truncationNote(shown, original int) string {
	return fmt.Sprintf(
		"Response exceeded %d characters; showing %d of %d returned documents. Use the 'offset' parameter, add more specific filters, or reduce 'limit'.",
		CharacterLimit, shown, original)
}

// EncodeCapped serializes a structured result, dropping trailing whole
// document records until the serialization fits under the character ceiling.
// Unlike a raw text cut this keeps the output valid JSON; the hard cut only
// remains as a guard for a result that exceeds the ceiling with no documents
// left to drop.
func EncodeCapped(result CappedResult) string {
	original := result.documentCount()
	for {
		encoded := mustMarshalIndent(result)
		if len(encoded) <= CharacterLimit {
			return encoded
		}
		keep := result.documentCount() - 1
		if keep < 0 {
			return Truncate(encoded, original)
		}
		result.dropDocuments(keep, original)
	}
}

// Encode serializes a structured result without the document-level cap. Used
// by replies that have no document list to shorten.
func Encode(result any) string {
	return mustMarshalIndent(result)
}

func mustMarshalIndent(v any) string {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(encoded)
}

package render

import "github.com/roivaz/worldbank-dnr-mcp/internal/wds"

// DocumentRecord is the machine-readable projection of a WDS document. Every
// key is always present: scalar fields are null when the source field is
// absent, list fields default to an empty list. This keeps the JSON shape
// fixed regardless of how sparse the source record is.
type DocumentRecord struct {
	ID           *string  `json:"id"`
	Title        *string  `json:"title"`
	ReportNumber *string  `json:"report_number"`
	DocumentType *string  `json:"document_type"`
	DocumentDate *string  `json:"document_date"`
	Countries    []string `json:"countries"`
	Languages    []string `json:"languages"`
	Abstract     *string  `json:"abstract"`
	MajorThemes  []string `json:"major_themes"`
	Topics       []string `json:"topics"`
	PDFURL       *string  `json:"pdf_url"`
	URL          *string  `json:"url"`
	ProjectID    *string  `json:"project_id"`
	ProjectName  *string  `json:"project_name"`
	Sectors      []string `json:"sectors"`
	Keywords     []string `json:"keywords"`
	Authors      []string `json:"authors"`
}

// NewDocumentRecord projects a document into the fixed record shape.
func NewDocumentRecord(doc wds.Document) DocumentRecord {
	return DocumentRecord{
		ID:           optional(doc.Lookup("id", "guid")),
		Title:        optional(doc.Lookup("display_title", "repnme")),
		ReportNumber: optional(doc.Lookup("repnb")),
		DocumentType: optional(doc.Lookup("docty")),
		DocumentDate: optional(doc.Lookup("docdt")),
		Countries:    orEmpty(doc.Countries()),
		Languages:    orEmpty(doc.Languages()),
		Abstract:     optionalText(doc.Abstract()),
		MajorThemes:  orEmpty(doc.MajorThemes()),
		Topics:       orEmpty(doc.Topics()),
		PDFURL:       optional(doc.Lookup("pdfurl")),
		URL:          optional(doc.Lookup("url")),
		ProjectID:    optional(doc.Lookup("proid")),
		ProjectName:  optional(doc.Lookup("projn")),
		Sectors:      orEmpty(doc.Sectors()),
		Keywords:     orEmpty(doc.Keywords()),
		Authors:      orEmpty(doc.Authors()),
	}
}

// NewDocumentRecords projects a document list, returning an empty (non-nil)
// slice for an empty input so it serializes as [] rather than null.
func NewDocumentRecords(docs []wds.Document) []DocumentRecord {
	records := make([]DocumentRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, NewDocumentRecord(doc))
	}
	return records
}

func optional(value string, ok bool) *string {
	if !ok {
		return nil
	}
	return &value
}

func optionalText(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// Package types holds the validated request shapes for the WDS tool
// operations. Requests are transient: built per call, validated before any
// network access, and discarded once the call returns.
package types

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"

	SortAscending  = "asc"
	SortDescending = "desc"

	DefaultLimit  = 20
	DefaultSortBy = "docdt"
)

// datePattern accepts YYYY-MM-DD or MM-DD-YYYY.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$|^\d{2}-\d{2}-\d{4}$`)

type SearchDocumentsRequest struct {
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
	Format        string
}

func (r *SearchDocumentsRequest) Validate() error {
	if n := utf8.RuneCountInString(r.Query); n < 1 || n > 500 {
		return fmt.Errorf("query must be between 1 and 500 characters")
	}
	if len(r.Countries) > 20 {
		return fmt.Errorf("countries accepts at most 20 entries")
	}
	if len(r.DocumentTypes) > 10 {
		return fmt.Errorf("document_types accepts at most 10 entries")
	}
	if len(r.Languages) > 5 {
		return fmt.Errorf("languages accepts at most 5 entries")
	}
	if err := validateDate("date_from", r.DateFrom); err != nil {
		return err
	}
	if err := validateDate("date_to", r.DateTo); err != nil {
		return err
	}
	if err := validatePage(r.Limit, r.Offset); err != nil {
		return err
	}
	if r.SortOrder != SortAscending && r.SortOrder != SortDescending {
		return fmt.Errorf("sort_order must be 'asc' or 'desc'")
	}
	return validateFormat(r.Format)
}

type DocumentDetailsRequest struct {
	DocumentID string
	Format     string
}

func (r *DocumentDetailsRequest) Validate() error {
	if n := utf8.RuneCountInString(r.DocumentID); n < 1 || n > 200 {
		return fmt.Errorf("document_id must be between 1 and 200 characters")
	}
	return validateFormat(r.Format)
}

type ExploreFacetsRequest struct {
	Facets []string
	Query  string
	Format string
}

func (r *ExploreFacetsRequest) Validate() error {
	if len(r.Facets) < 1 || len(r.Facets) > 10 {
		return fmt.Errorf("facets must list between 1 and 10 facet names")
	}
	if utf8.RuneCountInString(r.Query) > 500 {
		return fmt.Errorf("query must be at most 500 characters")
	}
	return validateFormat(r.Format)
}

// ProjectSearchRequest requires at least one of ProjectID/ProjectName, but
// that alternative is checked by the handler before the fetch, not here:
// field validation only bounds the individual values.
type ProjectSearchRequest struct {
	ProjectID   string
	ProjectName string
	Limit       int
	Offset      int
	Format      string
}

func (r *ProjectSearchRequest) Validate() error {
	if utf8.RuneCountInString(r.ProjectID) > 100 {
		return fmt.Errorf("project_id must be at most 100 characters")
	}
	if utf8.RuneCountInString(r.ProjectName) > 500 {
		return fmt.Errorf("project_name must be at most 500 characters")
	}
	if err := validatePage(r.Limit, r.Offset); err != nil {
		return err
	}
	return validateFormat(r.Format)
}

func validatePage(limit, offset int) error {
	if limit < 1 || limit > 100 {
		return fmt.Errorf("limit must be between 1 and 100")
	}
	if offset < 0 {
		return fmt.Errorf("offset must be zero or positive")
	}
	return nil
}

func validateDate(name, value string) error {
	if value == "" {
		return nil
	}
	if !datePattern.MatchString(value) {
		return fmt.Errorf("%s must use the YYYY-MM-DD or MM-DD-YYYY format", name)
	}
	return nil
}

func validateFormat(format string) error {
	if format != FormatMarkdown && format != FormatJSON {
		return fmt.Errorf("response_format must be 'markdown' or 'json'")
	}
	return nil
}

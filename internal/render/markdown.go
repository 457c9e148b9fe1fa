package render

import (
	"fmt"
	"strings"

	"github.com/roivaz/worldbank-dnr-mcp/internal/wds"
)

// DocumentMarkdown renders one document as a human-readable block. Optional
// fields are omitted entirely when absent or placeholder-valued.
func DocumentMarkdown(doc wds.Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "### %s\n\n", doc.Title())
	fmt.Fprintf(&b, "**Document ID:** %s\n", doc.ID())
	fmt.Fprintf(&b, "**Report Number:** %s\n", doc.ReportNumber())
	fmt.Fprintf(&b, "**Type:** %s\n", doc.DocumentType())
	fmt.Fprintf(&b, "**Date:** %s\n", doc.DocumentDate())
	fmt.Fprintf(&b, "**Countries:** %s\n", joinOrNA(doc.Countries()))

	if langs := doc.Languages(); len(langs) > 0 {
		fmt.Fprintf(&b, "**Languages:** %s\n", strings.Join(langs, ", "))
	}
	if themes := doc.MajorThemes(); len(themes) > 0 {
		fmt.Fprintf(&b, "**Major Themes:** %s\n", strings.Join(themes, ", "))
	}
	if abstract := doc.Abstract(); abstract != "" {
		fmt.Fprintf(&b, "\n**Abstract:**\n%s\n", abstract)
	}
	if url := doc.PDFURL(); url != wds.NotAvailable {
		fmt.Fprintf(&b, "\n**PDF URL:** %s\n", url)
	}

	b.WriteString("\n---\n")
	return b.String()
}

// DocumentDetailsMarkdown renders the full detail view: the standard block
// plus the metadata lines the compact search listing leaves out.
func DocumentDetailsMarkdown(doc wds.Document) string {
	var b strings.Builder

	b.WriteString("# World Bank Document Details\n\n")
	b.WriteString(DocumentMarkdown(doc))

	if keywords := doc.Keywords(); len(keywords) > 0 {
		fmt.Fprintf(&b, "\n**Keywords:** %s\n", strings.Join(keywords, ", "))
	}
	if authors := doc.Authors(); len(authors) > 0 {
		fmt.Fprintf(&b, "**Authors:** %s\n", strings.Join(authors, ", "))
	}
	if sectors := doc.Sectors(); len(sectors) > 0 {
		fmt.Fprintf(&b, "**Sectors:** %s\n", strings.Join(sectors, ", "))
	}
	if topics := doc.Topics(); len(topics) > 0 {
		fmt.Fprintf(&b, "**Topics:** %s\n", strings.Join(topics, ", "))
	}

	return b.String()
}

// SearchResultsMarkdown assembles the full search listing: header, active
// filter summary, per-document blocks and a pagination hint when more results
// remain.
func SearchResultsMarkdown(query string, filters []string, docs []wds.Document, total, offset int) string {
	var b strings.Builder

	b.WriteString("# World Bank Document Search Results\n\n")
	fmt.Fprintf(&b, "**Query:** %s\n", query)
	fmt.Fprintf(&b, "**Total Results:** %s\n", GroupDigits(total))
	fmt.Fprintf(&b, "**Showing:** %d-%d of %s\n", offset+1, offset+len(docs), GroupDigits(total))
	if len(filters) > 0 {
		fmt.Fprintf(&b, "**Filters:** %s\n", strings.Join(filters, " | "))
	}
	b.WriteString("\n---\n\n")

	writeDocumentBlocks(&b, docs, total, offset)
	return b.String()
}

// ProjectResultsMarkdown assembles the project-scoped listing.
func ProjectResultsMarkdown(projectID, projectName string, docs []wds.Document, total, offset int) string {
	var b strings.Builder

	b.WriteString("# World Bank Project Documents\n\n")
	if projectID != "" {
		fmt.Fprintf(&b, "**Project ID:** %s\n", projectID)
	}
	if projectName != "" {
		fmt.Fprintf(&b, "**Project Name:** %s\n", projectName)
	}
	fmt.Fprintf(&b, "**Total Documents:** %s\n", GroupDigits(total))
	fmt.Fprintf(&b, "**Showing:** %d-%d of %s\n", offset+1, offset+len(docs), GroupDigits(total))
	b.WriteString("\n---\n\n")

	writeDocumentBlocks(&b, docs, total, offset)
	return b.String()
}

func writeDocumentBlocks(b *strings.Builder, docs []wds.Document, total, offset int) {
	for _, doc := range docs {
		b.WriteString(DocumentMarkdown(doc))
	}
	if offset+len(docs) < total {
		fmt.Fprintf(b, "\n**More results available.** Use offset=%d to see the next page.\n", offset+len(docs))
	}
}

func joinOrNA(list []string) string {
	if len(list) == 0 {
		return wds.NotAvailable
	}
	return strings.Join(list, ", ")
}

// GroupDigits renders n with thousands separators, e.g. 1234567 -> 1,234,567.
func GroupDigits(n int) string {
	if n < 0 {
		return "-" + GroupDigits(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

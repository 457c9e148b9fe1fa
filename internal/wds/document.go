package wds

import "github.com/tidwall/gjson"

// Document wraps a single loosely-typed WDS document record. The API gives no
// guarantee that any field is present, and several fields appear under
// alternate key names or as either a scalar or a list, so every accessor
// normalizes and degrades to a placeholder instead of failing.
type Document struct {
	raw gjson.Result
}

// NewDocument wraps a raw gjson record.
func NewDocument(raw gjson.Result) Document {
	return Document{raw: raw}
}

// placeholder returned by scalar accessors when the field is absent.
const NotAvailable = "N/A"

// ID returns the document identifier, trying "id" then "guid".
func (d Document) ID() string {
	return d.firstString(NotAvailable, "id", "guid")
}

// Title returns the display title, falling back to the report name.
func (d Document) Title() string {
	return d.firstString("Untitled", "display_title", "repnme")
}

func (d Document) ReportNumber() string { return d.firstString(NotAvailable, "repnb") }
func (d Document) DocumentType() string { return d.firstString(NotAvailable, "docty") }
func (d Document) DocumentDate() string { return d.firstString(NotAvailable, "docdt") }

// PDFURL returns the document content URL, trying "pdfurl" then "url".
func (d Document) PDFURL() string { return d.firstString(NotAvailable, "pdfurl", "url") }

func (d Document) Countries() []string   { return d.stringList("count") }
func (d Document) Languages() []string   { return d.stringList("lang") }
func (d Document) MajorThemes() []string { return d.stringList("majtheme") }
func (d Document) Topics() []string      { return d.stringList("topic") }
func (d Document) Keywords() []string    { return d.stringList("keywd") }
func (d Document) Authors() []string     { return d.stringList("authr") }
func (d Document) Sectors() []string     { return d.stringList("sectr_exact") }

// Abstract returns the abstract text. The API emits it either as a plain
// string or as a nested object whose text sits under "cdata!" or "abstract".
func (d Document) Abstract() string {
	field := d.raw.Get("abstracts")
	if !field.Exists() {
		return ""
	}
	if field.IsObject() {
		for _, inner := range []string{"cdata!", "abstract"} {
			if v := field.Get(inner); v.Exists() && v.Type == gjson.String {
				return v.Str
			}
		}
		return ""
	}
	if field.Type == gjson.String {
		return field.Str
	}
	return ""
}

// Lookup returns the first present non-empty string value among the given
// keys, reporting whether any was found. Callers that need a raw absent/present
// distinction (the JSON renderer) use this instead of the placeholder
// accessors above.
func (d Document) Lookup(keys ...string) (string, bool) {
	for _, key := range keys {
		if v := d.raw.Get(key); v.Exists() && v.Type == gjson.String && v.Str != "" {
			return v.Str, true
		}
	}
	return "", false
}

// firstString returns the first present string-valued key, else the fallback.
func (d Document) firstString(fallback string, keys ...string) string {
	if value, ok := d.Lookup(keys...); ok {
		return value
	}
	return fallback
}

// stringList normalizes a field that may be absent, a single string, or a
// list of strings. Map-shaped values (the keyed envelope sometimes nests
// lists one level down) contribute their leaf string values.
func (d Document) stringList(key string) []string {
	field := d.raw.Get(key)
	if !field.Exists() {
		return nil
	}
	switch {
	case field.IsArray():
		var out []string
		for _, item := range field.Array() {
			if s := item.String(); s != "" {
				out = append(out, s)
			}
		}
		return out
	case field.IsObject():
		var out []string
		field.ForEach(func(_, value gjson.Result) bool {
			if value.Type == gjson.String && value.Str != "" {
				out = append(out, value.Str)
			}
			return true
		})
		return out
	case field.Type == gjson.String && field.Str != "":
		return []string{field.Str}
	default:
		return nil
	}
}

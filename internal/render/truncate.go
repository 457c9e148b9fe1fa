package render

import (
	"fmt"
	"unicode/utf8"
)

// CharacterLimit is the output-size ceiling for a single tool response.
const CharacterLimit = 25000

// Truncate hard-cuts content at the character ceiling and appends a notice
// with the original item count and remediation hints. Content under the
// ceiling passes through unchanged.
func Truncate(content string, itemCount int) string {
	if len(content) <= CharacterLimit {
		return content
	}

	notice := fmt.Sprintf("\n\n**TRUNCATED**: Response exceeded %d characters.\n", CharacterLimit)
	notice += fmt.Sprintf("Showing partial results. Original had %d items.\n", itemCount)
	notice += "To see more results:\n"
	notice += "- Use the 'offset' parameter for pagination\n"
	notice += "- Add more specific filters (countries, document_types, dates)\n"
	notice += "- Reduce the 'limit' parameter\n"

	// Never split a multi-byte rune at the cut.
	cut := CharacterLimit
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}

	return content[:cut] + notice
}

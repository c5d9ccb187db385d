package narrative

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/tedparse/internal/core/domain"
)

// Grammar identifies which historical narrative layout a section uses.
type Grammar int

const (
	// GrammarLegacy is the ordinal-subsection layout.
	GrammarLegacy Grammar = iota

	// GrammarModern is the "SECTION <roman>:" layout.
	GrammarModern
)

// String returns the grammar name for logs.
func (g Grammar) String() string {
	if g == GrammarModern {
		return "modern"
	}
	return "legacy"
}

var sectionMarkerPattern = regexp.MustCompile(`SECTION [IVXLCDM]+:`)

// Classify picks the grammar for a narrative section's raw text. More
// than one "SECTION <roman>:" marker selects the modern grammar; zero or
// exactly one is legacy, since a lone marker is assumed to be prose.
func Classify(text string) Grammar {
	if len(sectionMarkerPattern.FindAllStringIndex(text, -1)) > 1 {
		return GrammarModern
	}
	return GrammarLegacy
}

// Extract parses the narrative section's logical lines under whichever
// grammar the text declares. It has the section-extractor signature and is
// registered for the "TX" code by the parser.
func Extract(lines []string) domain.Fields {
	if Classify(strings.Join(lines, "\n")) == GrammarModern {
		return parseModern(lines)
	}
	return parseLegacy(lines)
}

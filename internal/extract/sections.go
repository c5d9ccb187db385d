package extract

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/tedparse/internal/core/domain"
	"github.com/custodia-labs/tedparse/internal/fields"
)

// Title lines open with a country token and a town, e.g.
// "B-Brussels: Building construction work".
var titlePattern = regexp.MustCompile(`^([A-Z]{1,2})-([^:]+): ?(.*)$`)

// Leading "label:" prefix on an address block, e.g. "Name and address:".
var labelPrefixPattern = regexp.MustCompile(`^[^:]{1,60}:\s*`)

// CodePair extracts a "<code> - <label>" section: the first line is split
// at the first hyphen, both halves trimmed.
func CodePair(codeKey, labelKey string) Func {
	return func(lines []string) domain.Fields {
		if len(lines) == 0 {
			return nil
		}
		code, label, _ := strings.Cut(lines[0], "-")
		f := domain.Fields{}
		f.Set(codeKey, strings.TrimSpace(code))
		f.Set(labelKey, strings.TrimSpace(label))
		return f
	}
}

// Title extracts the country/town/title triple from a title section.
// Later lines are wrapped title text and are appended. When the pattern
// fails the section passes through verbatim under its own code.
func Title(lines []string) domain.Fields {
	if len(lines) == 0 {
		return nil
	}
	m := titlePattern.FindStringSubmatch(lines[0])
	if m == nil {
		return domain.Fields{"TI": strings.Join(lines, "\n")}
	}
	title := m[3]
	for _, line := range lines[1:] {
		title += " " + line
	}
	f := domain.Fields{}
	f.Set("document_title_country", m[1])
	f.Set("document_title_town", m[2])
	f.Set("document_title_text", strings.TrimSpace(title))
	return f
}

// CPV extracts the classification section: the first line holds the
// primary code, all lines joined by commas form the supplementary list.
func CPV(lines []string) domain.Fields {
	if len(lines) == 0 {
		return nil
	}
	f := domain.Fields{}
	f.Set("PC", strings.TrimSpace(lines[0]))
	f.Set("PC_extra", strings.Join(lines, ", "))
	return f
}

// Journal extracts the official-journal reference: the first line splits
// on "/" into the collection and date components.
func Journal(lines []string) domain.Fields {
	if len(lines) == 0 {
		return nil
	}
	collection, date, _ := strings.Cut(lines[0], "/")
	f := domain.Fields{}
	f.Set("document_journal_collection", strings.TrimSpace(collection))
	f.Set("document_journal_date", strings.TrimSpace(date))
	return f
}

// Discard drops a section. Used for the original-language duplicate of
// text already extracted elsewhere.
func Discard([]string) domain.Fields {
	return nil
}

// AddressFields joins an operator/contractor address block into one line,
// strips a leading "label:" prefix, applies the address pattern, and emits
// the parts under keyPrefix. Pattern failure degrades to whole-text-as-name.
func AddressFields(lines []string, keyPrefix string) domain.Fields {
	text := strings.TrimSpace(strings.Join(lines, " "))
	text = labelPrefixPattern.ReplaceAllString(text, "")
	addr := fields.Address(text)
	f := domain.Fields{}
	f.Set(keyPrefix+"_name", addr.Name)
	f.Set(keyPrefix+"_address", addr.Street)
	f.Set(keyPrefix+"_postcode", addr.Postcode)
	f.Set(keyPrefix+"_town", addr.Town)
	f.Set(keyPrefix+"_country", addr.Country)
	return f
}

// AddressExtractor wraps AddressFields as a registrable section extractor.
func AddressExtractor(keyPrefix string) Func {
	return func(lines []string) domain.Fields {
		return AddressFields(lines, keyPrefix)
	}
}

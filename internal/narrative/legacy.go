package narrative

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/tedparse/internal/core/domain"
	"github.com/custodia-labs/tedparse/internal/extract"
	"github.com/custodia-labs/tedparse/internal/fields"
)

var ordinalPattern = regexp.MustCompile(`^(\d+)\.\s*`)

// legacyLabels maps a subsection's opening phrase to its sub-parser.
// Matching is a case-insensitive prefix test on the first line; order
// matters only for readability, the phrases do not overlap.
var legacyLabels = []struct {
	phrase string
	parse  func(simple string) domain.Fields
}{
	{"Number of tenders received", legacyOffers},
	{"Date of award of the contract", legacyDate("contract_award_date")},
	{"Date of dispatch of this notice", legacyDate("notice_published")},
	{"Name, address and nationality of successful tenderer", legacyTenderer},
	{"Contracting authority", legacyAuthority},
	{"Contract number and value", legacyValue},
}

// parseLegacy segments the narrative into ordinal subsections and resolves
// each against the label table. Unresolved subsections are stored raw
// under a composite "TX_<n>" key for the record mapper to rename.
func parseLegacy(lines []string) domain.Fields {
	result := domain.Fields{}
	key := ""
	maxSeen := 0
	var buf []string

	flush := func() {
		if key == "" && len(buf) == 0 {
			return
		}
		result.Merge(legacySubsection(key, buf))
		buf = nil
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		m := ordinalPattern.FindStringSubmatch(line)
		if m != nil {
			// A numeral only opens a subsection when it is the
			// expected next ordinal; anything else is prose.
			if n, err := strconv.Atoi(m[1]); err == nil && n == maxSeen+1 {
				flush()
				key = fmt.Sprintf("TX_%d", n)
				maxSeen = n
				buf = append(buf, strings.TrimPrefix(line, m[0]))
				continue
			}
		}
		buf = append(buf, line)
	}
	flush()
	return result
}

// legacySubsection resolves one subsection. key is "" for prose before
// the first ordinal, stored under the bare "TX_" key.
func legacySubsection(key string, lines []string) domain.Fields {
	if key == "" {
		return domain.Fields{"TX_": strings.Join(lines, "\n")}
	}
	if len(lines) > 0 {
		first := strings.ToLower(lines[0])
		for _, label := range legacyLabels {
			if strings.HasPrefix(first, strings.ToLower(label.phrase)) {
				return label.parse(simpleValue(lines))
			}
		}
	}
	return domain.Fields{key: strings.Join(lines, "\n")}
}

// simpleValue is a subsection's value text: everything after the first
// colon on the first line, with the remaining lines appended.
func simpleValue(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	first := lines[0]
	if _, after, ok := strings.Cut(first, ":"); ok {
		first = after
	}
	parts := append([]string{first}, lines[1:]...)
	return strings.TrimSpace(strings.Join(parts, " "))
}

func legacyOffers(simple string) domain.Fields {
	f := domain.Fields{}
	if n, ok := fields.Integer(simple); ok {
		f.Set("contract_offers_received_num", n)
	} else {
		f.Set("contract_offers_received_num", "")
	}
	return f
}

func legacyDate(key string) func(string) domain.Fields {
	return func(simple string) domain.Fields {
		f := domain.Fields{}
		// Decode failure yields an explicit empty value, never an error.
		date, _ := fields.Date(simple)
		f.Set(key, date)
		return f
	}
}

func legacyTenderer(simple string) domain.Fields {
	return extract.AddressFields([]string{simple}, "operator")
}

func legacyAuthority(simple string) domain.Fields {
	return domain.Fields{"awarding_authority": simple}
}

func legacyValue(simple string) domain.Fields {
	f := domain.Fields{}
	m, ok := fields.Money(simple)
	if !ok {
		// Lossy fallback: keep the raw text rather than dropping it.
		f.Set("contract_value", simple)
		return f
	}
	f.Set("contract_value_cost", m.Cost)
	f.Set("contract_value_currency", m.Currency)
	return f
}

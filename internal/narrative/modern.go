package narrative

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/tedparse/internal/core/domain"
	"github.com/custodia-labs/tedparse/internal/extract"
	"github.com/custodia-labs/tedparse/internal/fields"
)

var (
	groupMarkerPattern = regexp.MustCompile(`^SECTION ([IVXLCDM]+):`)
	subsectionPattern  = regexp.MustCompile(`^([IVXLCDM]+)\.(\d+)[.)]?\s*(.*)$`)
)

// handlers dispatches modern subsections by compound code. Codes with no
// entry fall back to raw storage under a composite key. Populated once at
// package initialization; never mutated afterwards.
var handlers = newModernHandlers()

func newModernHandlers() *extract.Registry {
	r := extract.NewRegistry()
	r.Register("V.1", modernAwardDate)
	r.Register("V.2", modernOffers)
	r.Register("V.3", modernOperator)
	r.Register("V.4", ContractValue)
	r.Register("V.5", modernSubcontracting)
	return r
}

// parseModern segments by "SECTION <roman>:" group markers (the group is
// a container, not itself emitted) and by "<roman>.<digit>" subsection
// markers within a group. Handler results accumulate: the same structural
// field may legitimately repeat per lot, so every key written here holds
// an ordered sequence even when a single value was found.
func parseModern(lines []string) domain.Fields {
	result := domain.Fields{}
	key := ""
	composite := ""
	var buf []string

	flush := func() {
		if key == "" {
			if len(buf) > 0 {
				result.Add("TX_", strings.Join(buf, "\n"))
			}
			buf = nil
			return
		}
		if handler, ok := handlers.Lookup(key); ok {
			result.Merge(handler(buf))
		} else {
			result.Add(composite, strings.Join(buf, "\n"))
		}
		key = ""
		buf = nil
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if groupMarkerPattern.MatchString(line) {
			flush()
			continue
		}
		if m := subsectionPattern.FindStringSubmatch(line); m != nil {
			flush()
			key = m[1] + "." + m[2]
			composite = "TX_" + m[1] + "_" + m[2]
			if m[3] != "" {
				buf = append(buf, m[3])
			}
			continue
		}
		buf = append(buf, line)
	}
	flush()
	return result
}

func modernAwardDate(lines []string) domain.Fields {
	f := domain.Fields{}
	if date, ok := fields.Date(simpleValue(lines)); ok {
		f.Add("contract_award_date", date)
	}
	return f
}

func modernOffers(lines []string) domain.Fields {
	f := domain.Fields{}
	if n, ok := fields.Integer(simpleValue(lines)); ok {
		f.Add("contract_offers_received_num", n)
	}
	return f
}

func modernSubcontracting(lines []string) domain.Fields {
	f := domain.Fields{}
	// Only the exact tokens "Yes"/"No" resolve; anything else is unknown
	// and emits nothing.
	if v, ok := fields.Boolean(simpleValue(lines)); ok {
		f.Add("contract_subcontracted", v)
	}
	return f
}

func modernOperator(lines []string) domain.Fields {
	f := domain.Fields{}
	for k, v := range extract.AddressFields([]string{simpleValue(lines)}, "operator") {
		f.Add(k, v)
	}
	return f
}

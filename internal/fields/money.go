package fields

import (
	"regexp"

	"github.com/custodia-labs/tedparse/internal/core/domain"
)

// An amount ends on a digit, followed by an optional space and a 2-3
// letter upper-case currency code, e.g. "1 000 000 EUR".
var moneyPattern = regexp.MustCompile(`(\d[\d .,]*\d|\d)\s?([A-Z]{2,3})\b`)

// Money captures an amount/currency pair from a line. Absent when the
// pattern does not match or the amount does not decode.
func Money(line string) (domain.Money, bool) {
	m := moneyPattern.FindStringSubmatch(line)
	if m == nil {
		return domain.Money{}, false
	}
	cost, ok := Amount(m[1])
	if !ok {
		return domain.Money{}, false
	}
	return domain.Money{Cost: cost, Currency: m[2]}, true
}

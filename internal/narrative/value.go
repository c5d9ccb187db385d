package narrative

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/tedparse/internal/core/domain"
	"github.com/custodia-labs/tedparse/internal/fields"
)

// Bulletin amounts report in euro; a block already priced in the
// reporting currency also writes a _cost_eur duplicate.
const reportingCurrency = "EUR"

// valueLabels are the recognized contract-value block openers, each with
// the key prefix its fields are emitted under.
var valueLabels = []struct {
	phrase string
	prefix string
}{
	{"Initial estimated total value", "contract_initial_value"},
	{"Total final value", "contract_final_value"},
}

var vatRatePattern = regexp.MustCompile(`VAT rate \(%\)`)

// valueBlock collects the lines attributed to one recognized label.
type valueBlock struct {
	prefix      string
	money       *domain.Money
	vatIncluded *bool
	vatRate     *float64
}

// ContractValue scans a modern value subsection. Once a label phrase is
// seen, subsequent money, VAT-marker and VAT-rate lines attribute to it
// until another recognized label or the end of the subsection. There is
// no explicit block terminator: adjacent blocks with no intervening
// unrecognized line keep accumulating into the last-seen label.
func ContractValue(lines []string) domain.Fields {
	result := domain.Fields{}
	var block *valueBlock

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if prefix, ok := matchValueLabel(line); ok {
			if block != nil {
				block.emit(result)
			}
			block = &valueBlock{prefix: prefix}
			continue
		}
		if block == nil {
			continue
		}
		switch {
		case strings.HasPrefix(line, "Value:"):
			if m, ok := fields.Money(line); ok {
				if block.money != nil {
					// A second value under the same label is a
					// further lot: emit and reattribute.
					block.emit(result)
					block = &valueBlock{prefix: block.prefix}
				}
				block.money = &m
			}
		case vatRatePattern.MatchString(line):
			loc := vatRatePattern.FindStringIndex(line)
			included := true
			block.vatIncluded = &included
			if rate, ok := fields.Amount(line[loc[1]:]); ok {
				block.vatRate = &rate
			}
		case strings.Contains(line, "Excluding VAT"):
			excluded := false
			block.vatIncluded = &excluded
		case strings.Contains(line, "Including VAT"):
			included := true
			block.vatIncluded = &included
		}
	}
	if block != nil {
		block.emit(result)
	}
	return result
}

func matchValueLabel(line string) (string, bool) {
	for _, label := range valueLabels {
		if strings.Contains(line, label.phrase) {
			return label.prefix, true
		}
	}
	return "", false
}

// emit appends the block's decoded fields. A label with nothing decoded
// under it emits no fields at all.
func (b *valueBlock) emit(f domain.Fields) {
	if b.money != nil {
		f.Add(b.prefix+"_currency", b.money.Currency)
		f.Add(b.prefix+"_cost", b.money.Cost)
		if b.money.Currency == reportingCurrency {
			f.Add(b.prefix+"_cost_eur", b.money.Cost)
		}
	}
	if b.vatIncluded != nil {
		f.Add(b.prefix+"_vat_included", *b.vatIncluded)
		if b.vatRate != nil {
			f.Add(b.prefix+"_vat_rate", *b.vatRate)
		}
	}
}

package parser

import (
	"fmt"

	"github.com/custodia-labs/tedparse/internal/core/domain"
)

// canonicalNames renames internal section/subsection keys to their public
// record names. Keys with no entry pass through unchanged.
var canonicalNames = map[string]string{
	"TX_11":    "contract_additional_information",
	"TX_1":     "contract_authority_address",
	"CY":       "contract_authority_country",
	"TW":       "contract_authority_town",
	"PC":       "contract_cpv_code",
	"PC_extra": "contract_cpv_codes",
	"TX_5":     "contract_offers_received_num",
	"DI":       "document_directive",
	"DS":       "document_dispatch_date",
	"HD":       "document_heading",
	"AU":       "document_authority_name",
}

// DefaultFilters keeps only contract award notices, the document type the
// reference tool extracts.
func DefaultFilters() map[string]string {
	return map[string]string{"document_document_type_code": "7"}
}

// Mapper applies the record-level inclusion predicate and the canonical
// key renaming to finalized documents.
type Mapper struct {
	filters map[string]string
}

// NewMapper creates a mapper with the given inclusion predicate. A nil or
// empty predicate keeps every document.
func NewMapper(filters map[string]string) *Mapper {
	return &Mapper{filters: filters}
}

// Apply filters and renames one finalized field mapping. ok is false when
// a required key is missing or mismatched; the record is then dropped,
// which is expected and not an error.
func (m *Mapper) Apply(f domain.Fields) (domain.Fields, bool) {
	for key, want := range m.filters {
		value, ok := f[key]
		if !ok || fmt.Sprint(value) != want {
			return nil, false
		}
	}
	mapped := make(domain.Fields, len(f))
	for key, value := range f {
		if canonical, ok := canonicalNames[key]; ok {
			key = canonical
		}
		mapped[key] = value
	}
	return mapped, true
}

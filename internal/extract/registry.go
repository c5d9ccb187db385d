package extract

import (
	"sort"

	"github.com/custodia-labs/tedparse/internal/core/domain"
)

// Func consumes the ordered logical lines of one closed section and
// returns zero or more named fields. A nil result means no fields.
type Func func(lines []string) domain.Fields

// Registry maps section (or narrative subsection) codes to extractors.
type Registry struct {
	extractors map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[string]Func),
	}
}

// Register adds an extractor for a code, replacing any previous entry.
func (r *Registry) Register(code string, fn Func) {
	r.extractors[code] = fn
}

// Lookup returns the extractor for a code, if one is registered.
func (r *Registry) Lookup(code string) (Func, bool) {
	fn, ok := r.extractors[code]
	return fn, ok
}

// Codes returns the registered codes, sorted for stable enumeration.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.extractors))
	for code := range r.extractors {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Default returns a registry populated with the standard section
// extractors. The narrative ("TX") extractor is registered separately by
// the parser to keep this package free of grammar concerns.
func Default() *Registry {
	r := NewRegistry()
	r.Register("AA", CodePair("document_authority_type_code", "document_authority_type"))
	r.Register("AC", CodePair("document_award_criteria_code", "document_award_criteria"))
	r.Register("TY", CodePair("document_bid_type_code", "document_bid_type"))
	r.Register("NC", CodePair("document_contract_nature_code", "document_contract_nature"))
	r.Register("TD", CodePair("document_document_type_code", "document_document_type"))
	r.Register("PR", CodePair("document_procedure_code", "document_procedure"))
	r.Register("RP", CodePair("document_regulation_code", "document_regulation"))
	r.Register("TI", Title)
	r.Register("PC", CPV)
	r.Register("OJ", Journal)
	r.Register("OL", Discard)
	return r
}

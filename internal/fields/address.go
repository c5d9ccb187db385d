package fields

import (
	"regexp"

	"github.com/custodia-labs/tedparse/internal/core/domain"
)

// One formatted address line: "<name>[,<street>], <country>-<postcode> <town>".
// The street keeps its original spacing; the name is everything before the
// first comma.
var addressPattern = regexp.MustCompile(`^([^,]*),(?:(.*),)? ?([A-Z]{1,2})-(\d+) (.*)$`)

// Address decodes one formatted address line. When the boundary pattern
// fails the entire input becomes the name and the rest stays empty: a
// deliberate lossy fallback, never an error.
func Address(s string) domain.Address {
	m := addressPattern.FindStringSubmatch(s)
	if m == nil {
		return domain.Address{Name: s}
	}
	return domain.Address{
		Name:     m[1],
		Street:   m[2],
		Country:  m[3],
		Postcode: m[4],
		Town:     m[5],
	}
}

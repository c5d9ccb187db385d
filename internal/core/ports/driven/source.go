package driven

import (
	"context"

	"github.com/custodia-labs/tedparse/internal/core/domain"
)

// ArchiveSource enumerates decoded archive payloads for parsing.
type ArchiveSource interface {
	// Payloads calls fn once per archive payload, in enumeration order.
	// An error from fn stops the walk and is returned unchanged.
	Payloads(ctx context.Context, fn func(domain.Payload) error) error
}

package driven

import "github.com/custodia-labs/tedparse/internal/core/domain"

// RecordSink receives finalized records in emission order.
type RecordSink interface {
	// Write serializes one record.
	Write(record domain.Fields) error

	// Close flushes and terminates the output stream.
	Close() error
}

package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/tedparse/internal/core/domain"
	"github.com/custodia-labs/tedparse/internal/core/ports/driven"
	"github.com/custodia-labs/tedparse/internal/logger"
	"github.com/custodia-labs/tedparse/internal/parser"
)

// Runner drives archive payloads through the parser into the sink.
//
// Parsing shares nothing across archives, so fan-out is per whole
// archive: each worker assembles one archive's records and appends them
// to the sink as a block. Document order within an archive is preserved;
// order across archives follows completion, which consumers accept.
type Runner struct {
	source driven.ArchiveSource
	sink   driven.RecordSink
	parser *parser.Parser
	jobs   int

	mu sync.Mutex
}

// NewRunner creates a runner. jobs below 1 is treated as 1.
func NewRunner(source driven.ArchiveSource, sink driven.RecordSink, p *parser.Parser, jobs int) *Runner {
	if jobs < 1 {
		jobs = 1
	}
	return &Runner{source: source, sink: sink, parser: p, jobs: jobs}
}

// Run processes every payload the source enumerates. A structural error
// aborts only its own archive: it is logged and the run continues.
func (r *Runner) Run(ctx context.Context) error {
	if r.jobs == 1 {
		return r.source.Payloads(ctx, func(p domain.Payload) error {
			return r.Process(p)
		})
	}

	payloads := make(chan domain.Payload)
	var wg sync.WaitGroup
	for i := 0; i < r.jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range payloads {
				if err := r.Process(p); err != nil {
					logger.Error("archive %s: %v", p.Path, err)
				}
			}
		}()
	}

	err := r.source.Payloads(ctx, func(p domain.Payload) error {
		select {
		case payloads <- p:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	close(payloads)
	wg.Wait()
	return err
}

// Process parses one payload and writes its retained records to the sink
// as one ordered block. A structural parse error aborts the rest of the
// archive and is logged; documents finalized before the error still
// emit, matching the lazy sequence contract.
func (r *Runner) Process(payload domain.Payload) error {
	var records []domain.Fields
	err := r.parser.Parse(payload.Text, func(record domain.Fields) error {
		records = append(records, record)
		return nil
	})
	if err != nil {
		logger.Error("archive %s: %v", payload.Path, err)
	} else {
		logger.Info("archive %s: %d records", payload.Path, len(records))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, record := range records {
		if err := r.sink.Write(record); err != nil {
			return err
		}
	}
	return nil
}

package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/tedparse/internal/core/domain"
	"github.com/custodia-labs/tedparse/internal/extract"
	"github.com/custodia-labs/tedparse/internal/logger"
	"github.com/custodia-labs/tedparse/internal/narrative"
)

var (
	// A document starts on "<digits>.<digits>/<digits>": format version
	// and numeric notice id.
	startDocPattern = regexp.MustCompile(`^(\d+\.\d+)/(\d+)`)

	// A section header is a two-letter code and ": "; the four header
	// characters are stripped from the section text.
	startSectionPattern = regexp.MustCompile(`^([A-Z]{2}): `)
)

// continuationIndent is the exact leading width that starts a new logical
// line inside a section. Anything narrower is a wrapped continuation of
// the previous logical line.
const continuationIndent = "    "

// EmitFunc receives one finalized, mapped record. Returning an error
// stops the parse.
type EmitFunc func(record domain.Fields) error

// Parser converts one archive payload's text into finalized records.
// The zero value is not usable; construct with New.
type Parser struct {
	registry *extract.Registry
	mapper   *Mapper
}

// New creates a parser with the default section extractors, the narrative
// extractor, and the given inclusion predicate (required key to expected
// value; nil keeps everything).
func New(filters map[string]string) *Parser {
	registry := extract.Default()
	registry.Register("TX", narrative.Extract)
	return &Parser{
		registry: registry,
		mapper:   NewMapper(filters),
	}
}

// Parse feeds the payload's lines through the state machine and calls
// emit for each retained document, in document order. A non-blank line
// outside any section while a document is open is a structural error and
// aborts the parse; everything below document level degrades silently.
func (p *Parser) Parse(text string, emit EmitFunc) error {
	run := &parseRun{parser: p, emit: emit}
	for i, line := range strings.Split(text, "\n") {
		if err := run.feed(i+1, line); err != nil {
			return err
		}
	}
	return run.finish()
}

// parseRun is the per-payload state: the open document and the section
// buffer under assembly. Discarded when the payload ends.
type parseRun struct {
	parser *Parser
	emit   EmitFunc

	doc     *domain.Document
	section string
	lines   []string
}

func (r *parseRun) feed(lineno int, line string) error {
	if m := startDocPattern.FindStringSubmatch(line); m != nil {
		r.closeSection()
		if err := r.finalizeDoc(); err != nil {
			return err
		}
		r.doc = domain.NewDocument(m[1], m[2])
		return nil
	}
	if r.doc == nil {
		// Nothing before the first document marker is meaningful.
		return nil
	}
	if strings.TrimSpace(line) == "" {
		return nil
	}
	if m := startSectionPattern.FindStringSubmatch(line); m != nil {
		r.closeSection()
		r.section = m[1]
		r.lines = append(r.lines, strings.TrimSpace(line[4:]))
		return nil
	}
	if r.section == "" {
		return fmt.Errorf("line %d: %w", lineno, domain.ErrOrphanLine)
	}
	if strings.HasPrefix(line, continuationIndent) {
		r.lines = append(r.lines, strings.TrimSpace(line[len(continuationIndent):]))
		return nil
	}
	// Narrower indent: the line is a hard-wrapped continuation of the
	// previous logical line, concatenated with no separator.
	r.lines[len(r.lines)-1] += strings.TrimSpace(line)
	return nil
}

// finish closes whatever is still open at end of input.
func (r *parseRun) finish() error {
	r.closeSection()
	return r.finalizeDoc()
}

// closeSection flushes the buffered section into the open document. With
// a registered extractor the returned fields merge into the document;
// without one the joined logical lines are stored verbatim.
func (r *parseRun) closeSection() {
	if r.section == "" {
		return
	}
	if fn, ok := r.parser.registry.Lookup(r.section); ok {
		r.doc.Fields.Merge(fn(r.lines))
	} else {
		r.doc.Fields.Set(r.section, strings.Join(r.lines, "\n"))
	}
	r.section = ""
	r.lines = nil
}

// finalizeDoc filters, renames and emits the open document, if any.
// Documents failing the inclusion predicate are dropped silently.
func (r *parseRun) finalizeDoc() error {
	if r.doc == nil {
		return nil
	}
	doc := r.doc
	r.doc = nil
	record, ok := r.parser.mapper.Apply(doc.Fields)
	if !ok {
		logger.Debug("document %s/%s filtered out", doc.Version, doc.ID)
		return nil
	}
	return r.emit(record)
}

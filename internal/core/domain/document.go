package domain

// Fields is a document's extracted field mapping: canonical field name to
// either a single value or an ordered sequence.
//
// Whether a key overwrites or accumulates is declared at the write site:
// Set replaces, Add appends. An accumulating key always holds a []any,
// even when only one value was ever added, so consumers never have to
// guess the shape from the count.
type Fields map[string]any

// Set writes a scalar field. A key written by multiple non-accumulating
// sections follows last-write-wins.
func (f Fields) Set(key string, value any) {
	f[key] = value
}

// Add appends a value to an accumulating field.
func (f Fields) Add(key string, value any) {
	seq, _ := f[key].([]any)
	f[key] = append(seq, value)
}

// Merge folds src into f. Sequence values append element-wise so that
// repeated extractor runs keep accumulating; scalars overwrite.
func (f Fields) Merge(src Fields) {
	for k, v := range src {
		if seq, ok := v.([]any); ok {
			for _, item := range seq {
				f.Add(k, item)
			}
			continue
		}
		f.Set(k, v)
	}
}

// String returns the field as a string when it holds one.
func (f Fields) String(key string) (string, bool) {
	s, ok := f[key].(string)
	return s, ok
}

// Document is one procurement notice under assembly, tagged with the
// version/id pair captured from its start marker. It is ephemeral: created
// on a document-start marker, mutated as sections close, finalized when the
// next marker (or end of input) arrives.
type Document struct {
	// Version is the format version token from the start marker.
	Version string

	// ID is the numeric notice id from the start marker.
	ID string

	// Fields accumulates the extracted fields.
	Fields Fields
}

// NewDocument opens an empty document for the given start-marker capture.
// The version/id tag is also recorded as output fields.
func NewDocument(version, id string) *Document {
	f := Fields{}
	f.Set("_doc_version", version)
	f.Set("_doc_id", id)
	return &Document{Version: version, ID: id, Fields: f}
}

// Payload is one archive's decoded text blob, ready for parsing.
type Payload struct {
	// Path is the archive the text came from.
	Path string

	// Charset is the encoding the bytes were decoded with.
	Charset string

	// Text is the full decoded text.
	Text string
}

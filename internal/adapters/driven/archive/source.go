package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/tedparse/internal/core/domain"
	"github.com/custodia-labs/tedparse/internal/core/ports/driven"
	"github.com/custodia-labs/tedparse/internal/logger"
)

// DefaultGlob matches the English-language bulletin archives.
const DefaultGlob = "EN*.ZIP"

// Ensure Source implements the interface.
var _ driven.ArchiveSource = (*Source)(nil)

// Source walks a directory tree for bulletin archives and yields their
// decoded payloads.
type Source struct {
	root    string
	glob    string
	charset string
	hints   map[string]string
}

// Option configures a Source.
type Option func(*Source)

// WithGlob overrides the case-insensitive base-name glob.
func WithGlob(glob string) Option {
	return func(s *Source) {
		if glob != "" {
			s.glob = strings.ToUpper(glob)
		}
	}
}

// WithCharset overrides the default payload charset.
func WithCharset(charset string) Option {
	return func(s *Source) {
		if charset != "" {
			s.charset = charset
		}
	}
}

// WithHints replaces the path-hint table selecting alternate charsets.
func WithHints(hints map[string]string) Option {
	return func(s *Source) {
		if hints != nil {
			s.hints = hints
		}
	}
}

// New creates a Source rooted at dir.
func New(dir string, opts ...Option) *Source {
	s := &Source{
		root:    dir,
		glob:    DefaultGlob,
		charset: DefaultCharset,
		hints:   DefaultHints(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Payloads walks the tree in lexical order and calls fn once per decoded
// archive. Archives that cannot be opened or decoded are logged and
// skipped; errors from fn stop the walk.
func (s *Source) Payloads(ctx context.Context, fn func(domain.Payload) error) error {
	return filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !s.matches(path) {
			return nil
		}
		payload, err := s.load(path)
		if err != nil {
			logger.Error("skipping archive %s: %v", path, err)
			return nil
		}
		return fn(payload)
	})
}

// Load decodes a single archive into a payload. Exposed for watch mode,
// which discovers paths one at a time.
func (s *Source) Load(path string) (domain.Payload, error) {
	return s.load(path)
}

// Matches reports whether a path names a bulletin archive.
func (s *Source) Matches(path string) bool {
	return s.matches(path)
}

func (s *Source) matches(path string) bool {
	ok, err := filepath.Match(s.glob, strings.ToUpper(filepath.Base(path)))
	return err == nil && ok
}

func (s *Source) load(path string) (domain.Payload, error) {
	job := uuid.New().String()
	base := filepath.Base(path)
	charset := charsetFor(base, s.charset, s.hints)
	logger.Debug("[%s] reading %s as %s", job, path, charset)

	raw, err := readFirstMember(path)
	if err != nil {
		return domain.Payload{}, err
	}
	text, err := decode(raw, charset)
	if err != nil {
		return domain.Payload{}, err
	}
	logger.Debug("[%s] decoded %d bytes", job, len(raw))
	return domain.Payload{Path: path, Charset: charset, Text: text}, nil
}

// readFirstMember returns the bytes of the archive's first member; each
// bulletin archive carries exactly one text file.
func readFirstMember(path string) ([]byte, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer zr.Close()

	if len(zr.File) == 0 {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrEmptyArchive)
	}
	rc, err := zr.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("open member of %s: %w", path, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

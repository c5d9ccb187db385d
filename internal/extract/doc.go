// Package extract holds the per-section field extractors and the registry
// that dispatches a closed section's logical lines to them.
//
// Dispatch is by explicit registration, never by name convention: the
// registry maps each two-letter section code to a typed extractor func,
// populated at initialization. A section with no entry is stored verbatim
// by the parser, so the extractor set stays enumerable and independently
// testable.
package extract

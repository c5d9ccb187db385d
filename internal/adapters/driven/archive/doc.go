// Package archive implements the ArchiveSource port over a filesystem
// tree of zipped bulletin archives: recursive discovery by glob, payload
// extraction from the first zip member, and charset-aware decoding with
// per-path hints.
//
// An archive that cannot be opened or decoded is logged and skipped so
// one bad file never aborts a whole run; retrying it is the caller's
// concern.
package archive

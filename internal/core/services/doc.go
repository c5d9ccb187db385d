// Package services orchestrates the parsing pipeline: it drives archive
// payloads from an ArchiveSource through the parser and into a
// RecordSink, sequentially or fanned out across workers.
package services

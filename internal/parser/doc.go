// Package parser implements the document/section extraction state machine:
// it splits an archive's decoded text into documents on the start marker,
// groups each document's lines into named sections with continuation
// folding, runs the registered extractors as sections close, and filters
// and renames the finalized records.
//
// Processing is single-threaded and strictly per-document: nothing is
// shared across documents or archives, so callers wanting throughput fan
// out whole-archive jobs and concatenate the outputs.
package parser

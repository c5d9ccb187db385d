// Package driven defines the interfaces the parsing core calls OUT to
// infrastructure: where archive payloads come from and where finalized
// records go. Adapters under internal/adapters/driven implement them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

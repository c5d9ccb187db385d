// Package domain defines the core entities of the tedparse engine.
//
// This package is the innermost layer. It has NO external dependencies
// and defines the fundamental types:
//
//   - Document: one procurement notice under assembly
//   - Fields: the notice's extracted field mapping
//   - Address, Money: structured values decoded from bulletin text
//   - Payload: one decoded archive text blob
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

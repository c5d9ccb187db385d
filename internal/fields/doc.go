// Package fields holds the stateless field normalisers: pure functions
// turning one raw captured string into a typed value (date, integer,
// boolean, amount, money, postal address).
//
// Normalisers never fail loudly. Unparsable input yields an explicit
// absent result (ok == false) or a lossy fallback, so one malformed field
// never discards an otherwise-valid record.
package fields

package domain

// Address is a postal address decoded from one formatted bulletin line.
// When the boundary pattern fails the whole input becomes Name and the
// remaining fields stay empty; that fallback is lossy but never an error.
type Address struct {
	// Name is the operator or authority name.
	Name string

	// Street is the street address part, whitespace preserved.
	Street string

	// Postcode is the postal code.
	Postcode string

	// Town is the town or city.
	Town string

	// Country is the 1-2 letter country token.
	Country string
}

// Money is a decoded amount paired with its currency code, optionally
// annotated with VAT details found on adjoining lines.
type Money struct {
	// Cost is the decoded numeric value with locale separators resolved.
	Cost float64

	// Currency is the 2-3 letter currency code.
	Currency string

	// VATIncluded reports whether a VAT annotation was present.
	VATIncluded bool

	// VATRate is the VAT percentage when a rate line was found.
	VATRate float64
}

package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "labelled with trailing dot", input: "Date: 05.03.2012.", want: "2012-03-05", ok: true},
		{name: "bare date", input: "14.02.2012", want: "2012-02-14", ok: true},
		{name: "embedded spaces", input: "Date: 05. 03. 2012", want: "2012-03-05", ok: true},
		{name: "unparsable", input: "Date: not-a-date", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Date(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInteger(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{name: "plain", input: "7", want: 7, ok: true},
		{name: "thousands separator", input: "1.234", want: 1234, ok: true},
		{name: "padded", input: "  42 ", want: 42, ok: true},
		{name: "negative", input: "-3", want: -3, ok: true},
		{name: "unparsable", input: "several", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Integer(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoolean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		value bool
		ok    bool
	}{
		{name: "yes", input: "Yes", value: true, ok: true},
		{name: "no", input: "No", value: false, ok: true},
		{name: "padded yes", input: " Yes ", value: true, ok: true},
		{name: "lowercase is unknown", input: "yes", ok: false},
		{name: "prose is unknown", input: "Yes, partially", ok: false},
		{name: "empty is unknown", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := Boolean(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{name: "space grouped with decimal comma", input: "1 234,56", want: 1234.56, ok: true},
		{name: "space grouped millions", input: "1 000 000", want: 1000000, ok: true},
		{name: "dot grouped with decimal comma", input: "1.234.567,89", want: 1234567.89, ok: true},
		{name: "comma grouping", input: "1,234", want: 1234, ok: true},
		{name: "plain decimal", input: "21.5", want: 21.5, ok: true},
		{name: "integer", input: "21", want: 21, ok: true},
		{name: "unparsable", input: "n/a", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Amount(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestMoney(t *testing.T) {
	t.Run("amount and currency", func(t *testing.T) {
		m, ok := Money("1 234,56 EUR")
		require.True(t, ok)
		assert.InDelta(t, 1234.56, m.Cost, 1e-9)
		assert.Equal(t, "EUR", m.Currency)
	})

	t.Run("embedded in a value line", func(t *testing.T) {
		m, ok := Money("Value: 1 000 000 EUR.")
		require.True(t, ok)
		assert.InDelta(t, 1000000, m.Cost, 1e-9)
		assert.Equal(t, "EUR", m.Currency)
	})

	t.Run("no space before currency", func(t *testing.T) {
		m, ok := Money("250000GBP")
		require.True(t, ok)
		assert.InDelta(t, 250000, m.Cost, 1e-9)
		assert.Equal(t, "GBP", m.Currency)
	})

	t.Run("no currency code", func(t *testing.T) {
		_, ok := Money("1 234,56")
		assert.False(t, ok)
	})

	t.Run("no amount", func(t *testing.T) {
		_, ok := Money("free of charge")
		assert.False(t, ok)
	})
}

func TestAddress(t *testing.T) {
	t.Run("full address", func(t *testing.T) {
		a := Address("Acme Ltd, 5 Main St, BE-1000 Brussels")
		assert.Equal(t, "Acme Ltd", a.Name)
		assert.Equal(t, " 5 Main St", a.Street)
		assert.Equal(t, "BE", a.Country)
		assert.Equal(t, "1000", a.Postcode)
		assert.Equal(t, "Brussels", a.Town)
	})

	t.Run("no street part", func(t *testing.T) {
		a := Address("Acme Ltd, BE-1000 Brussels")
		assert.Equal(t, "Acme Ltd", a.Name)
		assert.Empty(t, a.Street)
		assert.Equal(t, "BE", a.Country)
		assert.Equal(t, "1000", a.Postcode)
		assert.Equal(t, "Brussels", a.Town)
	})

	t.Run("single letter country", func(t *testing.T) {
		a := Address("Stadt Wien, A-1010 Wien")
		assert.Equal(t, "A", a.Country)
		assert.Equal(t, "1010", a.Postcode)
		assert.Equal(t, "Wien", a.Town)
	})

	t.Run("lossy fallback", func(t *testing.T) {
		a := Address("Ministry of Works, Freetown")
		assert.Equal(t, "Ministry of Works, Freetown", a.Name)
		assert.Empty(t, a.Street)
		assert.Empty(t, a.Country)
		assert.Empty(t, a.Postcode)
		assert.Empty(t, a.Town)
	})
}

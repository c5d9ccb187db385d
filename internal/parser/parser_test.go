package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tedparse/internal/core/domain"
)

func collect(t *testing.T, p *Parser, text string) []domain.Fields {
	t.Helper()
	var records []domain.Fields
	err := p.Parse(text, func(record domain.Fields) error {
		records = append(records, record)
		return nil
	})
	require.NoError(t, err)
	return records
}

func TestParse_DocumentMarker(t *testing.T) {
	t.Run("version and id echo the captured groups", func(t *testing.T) {
		records := collect(t, New(nil), "2.14/184331\nHD: heading text\n")
		require.Len(t, records, 1)
		assert.Equal(t, "2.14", records[0]["_doc_version"])
		assert.Equal(t, "184331", records[0]["_doc_id"])
	})

	t.Run("text before the first marker is ignored", func(t *testing.T) {
		records := collect(t, New(nil), "bulletin banner\n\n2.14/1\nHD: x\n")
		require.Len(t, records, 1)
	})

	t.Run("blank lines are ignored", func(t *testing.T) {
		records := collect(t, New(nil), "2.14/1\n\nHD: x\n\n\nCY: BE\n")
		require.Len(t, records, 1)
		assert.Equal(t, "BE", records[0]["contract_authority_country"])
	})

	t.Run("empty input yields nothing", func(t *testing.T) {
		assert.Empty(t, collect(t, New(nil), ""))
	})
}

func TestParse_SectionAssembly(t *testing.T) {
	t.Run("unregistered section stored verbatim", func(t *testing.T) {
		records := collect(t, New(nil), "2.14/1\nZZ: first logical line\n    second logical line\n")
		require.Len(t, records, 1)
		assert.Equal(t, "first logical line\nsecond logical line", records[0]["ZZ"])
	})

	t.Run("narrow indent concatenates with no separator", func(t *testing.T) {
		records := collect(t, New(nil), "2.14/1\nZZ: hyphenat\ned word\n")
		require.Len(t, records, 1)
		assert.Equal(t, "hyphenated word", records[0]["ZZ"])
	})

	t.Run("section closes on next header", func(t *testing.T) {
		records := collect(t, New(nil), "2.14/1\nZZ: one\nYY: two\n")
		require.Len(t, records, 1)
		assert.Equal(t, "one", records[0]["ZZ"])
		assert.Equal(t, "two", records[0]["YY"])
	})

	t.Run("registered extractor fields merge into the document", func(t *testing.T) {
		records := collect(t, New(nil), "2.14/1\nTD: 7 - Contract award\n")
		require.Len(t, records, 1)
		assert.Equal(t, "7", records[0]["document_document_type_code"])
		assert.Equal(t, "Contract award", records[0]["document_document_type"])
	})

	t.Run("orphan line is a structural error", func(t *testing.T) {
		p := New(nil)
		err := p.Parse("2.14/1\nno section yet\n", func(domain.Fields) error { return nil })
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrOrphanLine)
	})
}

func TestParse_Filtering(t *testing.T) {
	text := "2.14/1\nTD: 7 - Contract award\n" +
		"2.14/2\nTD: 3 - Contract notice\n" +
		"2.14/3\nTD: 7 - Contract award\n"

	t.Run("failing documents are dropped and processing continues", func(t *testing.T) {
		records := collect(t, New(DefaultFilters()), text)
		require.Len(t, records, 2)
		assert.Equal(t, "1", records[0]["_doc_id"])
		assert.Equal(t, "3", records[1]["_doc_id"])
	})

	t.Run("missing required key drops the document", func(t *testing.T) {
		records := collect(t, New(DefaultFilters()), "2.14/1\nHD: no type section\n")
		assert.Empty(t, records)
	})

	t.Run("nil predicate keeps everything", func(t *testing.T) {
		records := collect(t, New(nil), text)
		assert.Len(t, records, 3)
	})
}

func TestParse_KeyMapping(t *testing.T) {
	records := collect(t, New(nil), "2.14/1\nCY: BE\nTW: Brussels\nAU: City of Brussels\nDS: 14.02.2012\n")
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, "BE", record["contract_authority_country"])
	assert.Equal(t, "Brussels", record["contract_authority_town"])
	assert.Equal(t, "City of Brussels", record["document_authority_name"])
	assert.Equal(t, "14.02.2012", record["document_dispatch_date"])
	assert.NotContains(t, record, "CY")
	assert.NotContains(t, record, "TW")
}

func TestParse_NarrativeIntegration(t *testing.T) {
	t.Run("legacy narrative", func(t *testing.T) {
		text := "2.14/1\n" +
			"TX: 1. Contracting authority: City of Ghent\n" +
			"    2. Description: road works\n" +
			"    3. Number of tenders received: 4\n"
		records := collect(t, New(nil), text)
		require.Len(t, records, 1)

		record := records[0]
		assert.Equal(t, "City of Ghent", record["awarding_authority"])
		assert.Equal(t, "Description: road works", record["TX_2"])
		assert.Equal(t, 4, record["contract_offers_received_num"])
	})

	t.Run("modern narrative accumulates per lot", func(t *testing.T) {
		text := "2.14/1\n" +
			"TX: SECTION IV: PROCEDURE\n" +
			"    SECTION V: AWARD OF CONTRACT\n" +
			"    V.1) Date of contract award: 05.03.2012.\n" +
			"    V.1) Date of contract award: 07.03.2012.\n"
		records := collect(t, New(nil), text)
		require.Len(t, records, 1)
		assert.Equal(t, []any{"2012-03-05", "2012-03-07"}, records[0]["contract_award_date"])
	})
}

func TestMapper(t *testing.T) {
	t.Run("mismatched value drops", func(t *testing.T) {
		m := NewMapper(map[string]string{"document_document_type_code": "7"})
		_, ok := m.Apply(domain.Fields{"document_document_type_code": "3"})
		assert.False(t, ok)
	})

	t.Run("unmapped keys pass through", func(t *testing.T) {
		m := NewMapper(nil)
		mapped, ok := m.Apply(domain.Fields{"XX": "raw", "CY": "BE"})
		require.True(t, ok)
		assert.Equal(t, "raw", mapped["XX"])
		assert.Equal(t, "BE", mapped["contract_authority_country"])
	})
}

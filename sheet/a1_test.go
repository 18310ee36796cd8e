package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnLetter(t *testing.T) {
	cases := map[int]string{
		1:   "A",
		2:   "B",
		26:  "Z",
		27:  "AA",
		28:  "AB",
		52:  "AZ",
		53:  "BA",
		702: "ZZ",
		703: "AAA",
	}
	for n, want := range cases {
		assert.Equal(t, want, ColumnLetter(n), "column %d", n)
	}
}

func TestQuoteSheetName(t *testing.T) {
	assert.Equal(t, "Raw", QuoteSheetName("Raw"))
	assert.Equal(t, "'My Sheet'", QuoteSheetName("My Sheet"))
	assert.Equal(t, "'It''s'", QuoteSheetName("It's"))
	assert.Equal(t, "'A\"B'", QuoteSheetName("A\"B"))
	assert.Equal(t, "'Data!'", QuoteSheetName("Data!"))
}

func TestSheetNameFromRange(t *testing.T) {
	assert.Equal(t, "Raw", SheetNameFromRange("Raw!A1"))
	assert.Equal(t, "config", SheetNameFromRange("config!B2"))
	assert.Equal(t, "Raw", SheetNameFromRange("Raw"))
}

package syncer

import (
	"time"

	"github.com/samber/lo"
	"github.com/web3tea/pagesync/notion"
)

// fixedColumns lead every row before the mapped fields.
var fixedColumns = []string{"notion_page_id", "created_time", "last_edited_time"}

// Batch is the transformed output of one fetch: ordered rows plus the
// maximum modification timestamp seen (zero when no record carried a
// parseable one).
type Batch struct {
	Rows        [][]string
	MaxModified time.Time
	// EmptyCounts tallies, per field key, how many records produced an
	// empty cell.
	EmptyCounts map[string]int
}

// Transform maps fetched records to tabular rows in input order. A pure
// function of its inputs: no record is dropped, empty strings are valid
// cells, and records without a parseable modification time still become
// rows without influencing MaxModified.
func Transform(pages []notion.Page, fields []Field) Batch {
	batch := Batch{
		Rows:        make([][]string, 0, len(pages)),
		EmptyCounts: make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		batch.EmptyCounts[f.Key] = 0
	}

	for _, page := range pages {
		if page.LastEditedTime != "" {
			if t, err := notion.ParseTime(page.LastEditedTime); err == nil && t.After(batch.MaxModified) {
				batch.MaxModified = t
			}
		}

		row := make([]string, 0, len(fixedColumns)+len(fields))
		row = append(row, page.ID, page.CreatedTime, page.LastEditedTime)
		for _, f := range fields {
			value := notion.ExtractText(page.Properties, f.Property)
			if f.Date {
				value = NormalizeDate(value)
			}
			if value == "" {
				batch.EmptyCounts[f.Key]++
			}
			row = append(row, value)
		}
		batch.Rows = append(batch.Rows, row)
	}

	return batch
}

// headerFor builds the header row: fixed columns then the mapped
// property names in field order.
func headerFor(fields []Field) []string {
	return append(append([]string{}, fixedColumns...),
		lo.Map(fields, func(f Field, _ int) string { return f.Property })...)
}

package syncer

import (
	"context"
	"fmt"
	"strings"

	"github.com/web3tea/pagesync/pkg/log"
	"github.com/web3tea/pagesync/sheet"
)

// UpsertCounts reports how many rows were written in place vs appended.
type UpsertCounts struct {
	Updated  int
	Appended int
}

// dataSheet returns the quoted sheet name of the data sheet.
func (s *Syncer) dataSheet() string {
	return sheet.QuoteSheetName(sheet.SheetNameFromRange(s.cfg.StartRange))
}

// ensureHeader writes the header row lazily: only when row 1 is
// currently blank. Existing header content is never overwritten.
func (s *Syncer) ensureHeader(ctx context.Context, header []string) error {
	headerRange := fmt.Sprintf("%s!A1:%s1", s.dataSheet(), sheet.ColumnLetter(len(header)))

	rows, err := s.store.ReadRange(ctx, headerRange)
	if err != nil {
		return err
	}
	if len(rows) > 0 {
		for _, cell := range rows[0] {
			if strings.TrimSpace(cell) != "" {
				return nil
			}
		}
	}

	log.Info().Str("range", headerRange).Msg("writing sheet header")
	return s.store.UpdateRange(ctx, headerRange, [][]string{header})
}

// rowIndex scans the id column and maps each record id to its 1-based
// row. Data rows start at row 2; the index is rebuilt on every run.
func (s *Syncer) rowIndex(ctx context.Context) (map[string]int, error) {
	ids, err := s.store.ReadColumn(ctx, s.dataSheet()+"!A2:A")
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		index[id] = 2 + i
	}
	return index, nil
}

// upsert reconciles transformed rows against the store by id: existing
// ids are rewritten at their row, new ids are appended past the last
// known row. All writes go out as a single batched call.
func (s *Syncer) upsert(ctx context.Context, header []string, rows [][]string) (UpsertCounts, error) {
	var counts UpsertCounts

	index, err := s.rowIndex(ctx)
	if err != nil {
		return counts, err
	}

	nextRow := 2
	for _, r := range index {
		if r >= nextRow {
			nextRow = r + 1
		}
	}

	sheetName := s.dataSheet()
	lastCol := sheet.ColumnLetter(len(header))

	writes := make([]sheet.RangeWrite, 0, len(rows))
	for _, row := range rows {
		if len(row) != len(header) {
			return counts, fmt.Errorf("row width %d does not match header width %d", len(row), len(header))
		}

		id := row[0]
		r, ok := index[id]
		if ok {
			counts.Updated++
		} else {
			r = nextRow
			nextRow++
			index[id] = r
			counts.Appended++
		}

		writes = append(writes, sheet.RangeWrite{
			Range:  fmt.Sprintf("%s!A%d:%s%d", sheetName, r, lastCol, r),
			Values: [][]string{row},
		})
	}

	if len(writes) == 0 {
		return counts, nil
	}

	log.Info().
		Int("writes", len(writes)).
		Int("updated", counts.Updated).
		Int("appended", counts.Appended).
		Msg("store batch update start")

	if err := s.store.BatchUpdate(ctx, writes); err != nil {
		return UpsertCounts{}, err
	}
	return counts, nil
}

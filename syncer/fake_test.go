package syncer

import (
	"context"
	"strconv"
	"strings"

	"github.com/web3tea/pagesync/notion"
	"github.com/web3tea/pagesync/sheet"
)

// fakeStore is an in-memory tabular store. Writes are applied so a
// second run observes the first run's rows.
type fakeStore struct {
	header      []string
	rows        map[int][]string
	batchCalls  int
	updateCalls int
	lastWrites  []sheet.RangeWrite
	failBatch   error
	failRead    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[int][]string)}
}

func (f *fakeStore) maxRow() int {
	max := 0
	for r := range f.rows {
		if r > max {
			max = r
		}
	}
	return max
}

func (f *fakeStore) ReadColumn(_ context.Context, _ string) ([]string, error) {
	if f.failRead != nil {
		return nil, f.failRead
	}
	max := f.maxRow()
	if max < 2 {
		return nil, nil
	}
	out := make([]string, 0, max-1)
	for r := 2; r <= max; r++ {
		if row, ok := f.rows[r]; ok && len(row) > 0 {
			out = append(out, row[0])
		} else {
			out = append(out, "")
		}
	}
	return out, nil
}

func (f *fakeStore) ReadRange(_ context.Context, _ string) ([][]string, error) {
	if f.failRead != nil {
		return nil, f.failRead
	}
	if len(f.header) == 0 {
		return nil, nil
	}
	return [][]string{f.header}, nil
}

func (f *fakeStore) UpdateRange(_ context.Context, _ string, values [][]string) error {
	f.updateCalls++
	f.header = append([]string{}, values[0]...)
	return nil
}

func (f *fakeStore) BatchUpdate(_ context.Context, writes []sheet.RangeWrite) error {
	if f.failBatch != nil {
		return f.failBatch
	}
	f.batchCalls++
	f.lastWrites = writes
	for _, w := range writes {
		f.rows[rowOfRange(w.Range)] = append([]string{}, w.Values[0]...)
	}
	return nil
}

// rowOfRange extracts the row number from a single-row range like
// "Raw!A4:F4".
func rowOfRange(rng string) int {
	_, rest, _ := strings.Cut(rng, "!A")
	digits, _, _ := strings.Cut(rest, ":")
	n, _ := strconv.Atoi(digits)
	return n
}

type fakeSource struct {
	pages       []notion.Page
	err         error
	checkpoints []string
}

func (f *fakeSource) QueryAll(_ context.Context, _ string, checkpoint string) ([]notion.Page, error) {
	f.checkpoints = append(f.checkpoints, checkpoint)
	if f.err != nil {
		return nil, f.err
	}
	return f.pages, nil
}

type fakeCheckpoints struct {
	value  string
	writes []string
}

func (f *fakeCheckpoints) ReadCheckpoint(_ context.Context) string {
	return f.value
}

func (f *fakeCheckpoints) WriteCheckpoint(_ context.Context, value string) error {
	f.writes = append(f.writes, value)
	f.value = value
	return nil
}

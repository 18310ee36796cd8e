package syncer

import (
	"context"
	"time"

	"github.com/web3tea/pagesync/notion"
	"github.com/web3tea/pagesync/pkg/log"
	"github.com/web3tea/pagesync/sheet"
)

// Source queries the document database. Pagination is internal to the
// implementation; an empty checkpoint requests a full fetch.
type Source interface {
	QueryAll(ctx context.Context, databaseID, checkpoint string) ([]notion.Page, error)
}

// Store is the tabular backend rows are reconciled into.
type Store interface {
	ReadColumn(ctx context.Context, rng string) ([]string, error)
	ReadRange(ctx context.Context, rng string) ([][]string, error)
	UpdateRange(ctx context.Context, rng string, values [][]string) error
	BatchUpdate(ctx context.Context, writes []sheet.RangeWrite) error
}

// CheckpointStore persists the last-sync timestamp between runs. Read
// degrades to "" on a missing config area (first run).
type CheckpointStore interface {
	ReadCheckpoint(ctx context.Context) string
	WriteCheckpoint(ctx context.Context, value string) error
}

// Field maps one logical field to a source property. Date fields are
// normalized to M/D/YYYY after extraction.
type Field struct {
	Key      string
	Property string
	Date     bool
}

type Config struct {
	DatabaseID string
	// StartRange names the data sheet, e.g. "Raw!A1". The header lives
	// in row 1, data rows start at row 2.
	StartRange string
	Fields     []Field
}

type Syncer struct {
	source      Source
	store       Store
	checkpoints CheckpointStore
	cfg         Config

	now func() time.Time
}

func New(source Source, store Store, checkpoints CheckpointStore, cfg Config, options ...Option) *Syncer {
	s := &Syncer{
		source:      source,
		store:       store,
		checkpoints: checkpoints,
		cfg:         cfg,
		now:         time.Now,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Run executes one full sync: checkpoint read, delta fetch, transform,
// upsert, checkpoint advance. Fully sequential; a failure at any stage
// aborts the run before the checkpoint is touched.
func (s *Syncer) Run(ctx context.Context) (*Result, error) {
	start := s.now()

	checkpoint := s.checkpoints.ReadCheckpoint(ctx)
	log.Info().Str("last_sync", orEmpty(checkpoint)).Msg("checkpoint loaded")

	pages, err := s.source.QueryAll(ctx, s.cfg.DatabaseID, checkpoint)
	if err != nil {
		return nil, err
	}

	t0 := s.now()
	batch := Transform(pages, s.cfg.Fields)
	log.Info().
		Int64("ms", s.now().Sub(t0).Milliseconds()).
		Int("records", len(pages)).
		Interface("empty_counts", batch.EmptyCounts).
		Msg("transform done")

	header := headerFor(s.cfg.Fields)
	if err := s.ensureHeader(ctx, header); err != nil {
		return nil, err
	}

	counts, err := s.upsert(ctx, header, batch.Rows)
	if err != nil {
		return nil, err
	}

	// A no-change run still advances the checkpoint to "now" so idle
	// runs never re-scan an ever-growing window.
	var lastSync string
	if !batch.MaxModified.IsZero() {
		lastSync = notion.FormatTime(batch.MaxModified)
	} else {
		lastSync = notion.FormatTime(s.now())
	}
	if err := s.checkpoints.WriteCheckpoint(ctx, lastSync); err != nil {
		return nil, err
	}
	log.Info().Str("last_sync", lastSync).Msg("checkpoint saved")

	return &Result{
		Status:       "ok",
		DeltaRecords: len(pages),
		Updated:      counts.Updated,
		Appended:     counts.Appended,
		LastSync:     lastSync,
		DurationMs:   s.now().Sub(start).Milliseconds(),
	}, nil
}

func orEmpty(s string) string {
	if s == "" {
		return "(empty)"
	}
	return s
}

package main

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
	"github.com/web3tea/pagesync/config"
	"github.com/web3tea/pagesync/notion"
	"github.com/web3tea/pagesync/pkg/log"
	"github.com/web3tea/pagesync/report"
	"github.com/web3tea/pagesync/sheet"
	"github.com/web3tea/pagesync/syncer"
)

var runCmd = &cli.Command{
	Name:  "run",
	Usage: "Run one synchronization pass",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to a TOML or JSON config file (optional, env vars also work)",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colored summary output",
		},
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		cfg, err := config.LoadFromFile(c.String("config"))
		if err != nil {
			return err
		}

		if err := log.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
			return err
		}

		// Configuration errors abort before any I/O.
		if err := cfg.Validate(); err != nil {
			log.Error().Err(err).Msg("invalid configuration")
			return err
		}

		log.Info().
			Fields(log.RedactFields(map[string]any{
				"database_id":    cfg.Notion.DatabaseID,
				"spreadsheet_id": cfg.Sheet.SpreadsheetID,
				"start_range":    cfg.Sheet.StartRange,
			})).
			Msg("job start")

		s, err := buildSyncer(ctx, cfg)
		if err != nil {
			log.Error().Fields(log.RedactFields(map[string]any{"error": err.Error()})).Msg("job failed")
			return err
		}

		result, err := s.Run(ctx)
		if err != nil {
			log.Error().Fields(log.RedactFields(map[string]any{"error": err.Error()})).Msg("job failed")
			return err
		}

		log.Info().
			Int("delta_records", result.DeltaRecords).
			Int("updated", result.Updated).
			Int("appended", result.Appended).
			Str("last_sync", result.LastSync).
			Int64("total_ms", result.DurationMs).
			Msg("job success")

		report.NewConsoleWriter(report.WithColorOutput(!c.Bool("no-color"))).Write(result)
		return nil
	},
}

func buildSyncer(ctx context.Context, cfg *config.Config) (*syncer.Syncer, error) {
	store, err := sheet.NewClient(ctx, cfg.Sheet.SpreadsheetID, cfg.Sheet.CredentialsJSON)
	if err != nil {
		return nil, err
	}

	source := notion.NewClient(notion.Config{
		Token:    cfg.Notion.Token,
		PageSize: cfg.Sync.PageSize,
		Lookback: time.Duration(cfg.Sync.LookbackSeconds) * time.Second,
	})

	fields := lo.Map(cfg.Sync.Fields, func(f config.FieldConfig, _ int) syncer.Field {
		return syncer.Field{Key: f.Key, Property: f.Property, Date: f.Date}
	})

	return syncer.New(source, store, store, syncer.Config{
		DatabaseID: cfg.Notion.DatabaseID,
		StartRange: cfg.Sheet.StartRange,
		Fields:     fields,
	}), nil
}

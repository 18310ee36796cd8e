package sheet

import (
	"context"
	"strings"

	"github.com/web3tea/pagesync/pkg/log"
)

// CheckpointCell is the reserved cell holding the last-sync timestamp,
// on a config sheet separate from the data sheet.
const CheckpointCell = "config!B2"

// ReadCheckpoint returns the stored last-sync timestamp, trimmed, or
// "" when the cell, row, or config sheet is absent. A read failure also
// degrades to "" so a missing config area means "first run", never an
// error.
func (c *Client) ReadCheckpoint(ctx context.Context) string {
	rows, err := c.ReadRange(ctx, CheckpointCell)
	if err != nil {
		log.Warn().Err(err).Msg("checkpoint read failed, falling back to full sync")
		return ""
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ""
	}
	return strings.TrimSpace(rows[0][0])
}

// WriteCheckpoint stores the last-sync timestamp with literal
// interpretation.
func (c *Client) WriteCheckpoint(ctx context.Context, value string) error {
	return c.UpdateRange(ctx, CheckpointCell, [][]string{{value}})
}

package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/web3tea/pagesync/pkg/log"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"

	// apiVersion pins the source protocol; property shapes depend on it.
	apiVersion = "2022-06-28"

	defaultPageSize  = 100
	defaultLookback  = 5 * time.Second
	defaultPageDelay = 200 * time.Millisecond
	requestTimeout   = 30 * time.Second
)

type Config struct {
	Token    string
	BaseURL  string
	PageSize int
	// Lookback is subtracted from the checkpoint before filtering so
	// near-boundary edits are re-fetched. Upserts make the overlap safe.
	Lookback  time.Duration
	PageDelay time.Duration
}

type Client struct {
	cfg Config
	hc  *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.Lookback <= 0 {
		cfg.Lookback = defaultLookback
	}
	if cfg.PageDelay <= 0 {
		cfg.PageDelay = defaultPageDelay
	}
	return &Client{
		cfg: cfg,
		hc:  &http.Client{Timeout: requestTimeout},
	}
}

// QueryError is a non-success status from the source. The whole fetch
// fails; no partial results are returned.
type QueryError struct {
	StatusCode int
	RequestID  string
}

func (e *QueryError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("source query failed with status %d (request id %s)", e.StatusCode, e.RequestID)
	}
	return fmt.Sprintf("source query failed with status %d", e.StatusCode)
}

type timestampFilter struct {
	Timestamp      string `json:"timestamp"`
	LastEditedTime struct {
		After string `json:"after"`
	} `json:"last_edited_time"`
}

type queryRequest struct {
	PageSize    int              `json:"page_size"`
	Filter      *timestampFilter `json:"filter,omitempty"`
	StartCursor string           `json:"start_cursor,omitempty"`
}

type queryResponse struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

// QueryAll fetches every record matching the checkpoint window, in the
// order the source returns them. An empty checkpoint means full mode.
// Pagination is internal; the caller sees one logical call.
func (c *Client) QueryAll(ctx context.Context, databaseID, checkpoint string) ([]Page, error) {
	req := queryRequest{PageSize: c.cfg.PageSize}

	if checkpoint != "" {
		after := boundaryAfter(checkpoint, c.cfg.Lookback)
		filter := &timestampFilter{Timestamp: "last_edited_time"}
		filter.LastEditedTime.After = after
		req.Filter = filter
		log.Info().Str("after", after).Msg("source query mode: delta")
	} else {
		log.Info().Msg("source query mode: full")
	}

	url := fmt.Sprintf("%s/databases/%s/query", c.cfg.BaseURL, databaseID)

	var all []Page
	pageNum := 0
	for {
		pageNum++

		t0 := time.Now()
		resp, err := c.queryPage(ctx, url, &req)
		apiMs := time.Since(t0).Milliseconds()
		if err != nil {
			return nil, err
		}

		all = append(all, resp.Results...)
		log.Info().
			Int("page", pageNum).
			Int("results_in_page", len(resp.Results)).
			Int("total_results", len(all)).
			Int64("api_ms", apiMs).
			Bool("has_more", resp.HasMore).
			Msg("source query page done")

		if !resp.HasMore {
			break
		}
		req.StartCursor = resp.NextCursor
		time.Sleep(c.cfg.PageDelay)
	}

	return all, nil
}

func (c *Client) queryPage(ctx context.Context, url string, body *queryRequest) (*queryResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build query request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	httpReq.Header.Set("Notion-Version", apiVersion)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("source query request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		qerr := &QueryError{
			StatusCode: resp.StatusCode,
			RequestID:  resp.Header.Get("x-request-id"),
		}
		log.Error().
			Int("status_code", qerr.StatusCode).
			Str("request_id", qerr.RequestID).
			Str("retry_after", resp.Header.Get("retry-after")).
			Msg("source query error")
		return nil, qerr
	}

	var out queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode query response: %w", err)
	}
	return &out, nil
}

// boundaryAfter rewinds the checkpoint by the lookback margin. A
// checkpoint that fails to parse is used verbatim: degraded but never
// fatal.
func boundaryAfter(checkpoint string, lookback time.Duration) string {
	t, err := ParseTime(checkpoint)
	if err != nil {
		log.Warn().Str("checkpoint", checkpoint).Msg("unparseable checkpoint, using verbatim filter boundary")
		return checkpoint
	}
	return FormatTime(t.Add(-lookback))
}

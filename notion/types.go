package notion

import "time"

// Page is an immutable snapshot of one database record as returned by
// the query endpoint. The sync never mutates it.
type Page struct {
	ID             string              `json:"id"`
	CreatedTime    string              `json:"created_time"`
	LastEditedTime string              `json:"last_edited_time"`
	Properties     map[string]Property `json:"properties"`
}

// Property is the tagged union of property shapes the sync understands.
// Exactly one of the shape fields is populated, selected by Type;
// anything else extracts to an empty string.
type Property struct {
	Type        string     `json:"type"`
	Title       []RichText `json:"title,omitempty"`
	RichText    []RichText `json:"rich_text,omitempty"`
	Select      *Option    `json:"select,omitempty"`
	MultiSelect []Option   `json:"multi_select,omitempty"`
	Status      *Option    `json:"status,omitempty"`
	Date        *DateValue `json:"date,omitempty"`
}

type RichText struct {
	PlainText string `json:"plain_text"`
}

type Option struct {
	Name string `json:"name"`
}

type DateValue struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// ParseTime parses a source timestamp, e.g. 2025-12-26T21:20:03.675Z.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// FormatTime renders a timestamp the way the source filter expects:
// second precision, UTC, Z designator.
func FormatTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format("2006-01-02T15:04:05Z07:00")
}

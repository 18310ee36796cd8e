package syncer

// Result summarizes one successful run.
type Result struct {
	Status       string `json:"status"`
	DeltaRecords int    `json:"delta_record_count"`
	Updated      int    `json:"updated_count"`
	Appended     int    `json:"appended_count"`
	LastSync     string `json:"last_sync"`
	DurationMs   int64  `json:"total_duration_ms"`
}

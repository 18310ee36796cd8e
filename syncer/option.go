package syncer

import "time"

type Option func(*Syncer)

// WithClock overrides the wall clock used for empty-batch checkpoint
// advancement and duration tracking.
func WithClock(now func() time.Time) Option {
	return func(s *Syncer) {
		if now != nil {
			s.now = now
		}
	}
}

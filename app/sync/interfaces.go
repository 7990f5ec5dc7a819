package sync

import (
	"context"

	"github.com/rajcareers/jobsync/app/extract"
	"github.com/rajcareers/jobsync/app/feed"
)

// FetcherInterface retrieves and parses one feed endpoint per call.
type FetcherInterface interface {
	Fetch(ctx context.Context, sourceURL string) ([]feed.Item, error)
}

// ExtractorInterface resolves raw feed text into a tagged extraction result.
type ExtractorInterface interface {
	Extract(ctx context.Context, rawText string) extract.Result
}

// SyncerInterface is what the scheduler and the admin API drive.
type SyncerInterface interface {
	RunCycle(ctx context.Context) bool
	Busy() bool
}

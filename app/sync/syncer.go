package sync

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/rajcareers/jobsync/app/extract"
	"github.com/rajcareers/jobsync/app/job"
	"github.com/rajcareers/jobsync/app/source"
)

var _ SyncerInterface = (*Syncer)(nil)

// Syncer runs one complete pass over all configured sources: fetch, cheap
// dedup, extraction, merge. Cycles are mutually exclusive via the busy flag;
// a cycle arriving while one is in flight is a no-op, not queued.
type Syncer struct {
	sources           []source.Source
	fetcher           FetcherInterface
	extractor         ExtractorInterface
	store             job.StoreInterface
	log               *Log
	itemLimit         int
	logSourceFailures bool
	busy              atomic.Bool
}

func NewSyncer(sources []source.Source, fetcher FetcherInterface, extractor ExtractorInterface,
	store job.StoreInterface, log *Log, itemLimit int, logSourceFailures bool) *Syncer {
	return &Syncer{
		sources:           sources,
		fetcher:           fetcher,
		extractor:         extractor,
		store:             store,
		log:               log,
		itemLimit:         itemLimit,
		logSourceFailures: logSourceFailures,
	}
}

func (s *Syncer) Busy() bool {
	return s.busy.Load()
}

// RunCycle performs one sync cycle. Reports whether the cycle actually ran
// (false when another cycle held the busy flag). Sources are visited in
// configured order; a failing source is skipped and never stops the cycle.
func (s *Syncer) RunCycle(ctx context.Context) bool {
	if !s.busy.CompareAndSwap(false, true) {
		slog.Debug("Sync cycle already in flight, skipping")
		return false
	}
	defer s.busy.Store(false)

	defer func() {
		if r := recover(); r != nil {
			s.log.Add("auto", StatusFailed, 0, "Automation Engine: Critical connection failure to source nodes.")
			slog.Error("Sync cycle aborted", "panic", r)
		}
	}()

	s.log.Add("auto", StatusSuccess, 0, "Searching for Rajasthan & Central Jobs across configured feeds...")
	slog.Info("Sync cycle started", "sources", len(s.sources))

	totalNew := 0
	for _, src := range s.sources {
		totalNew += s.syncSource(ctx, src)
	}

	if totalNew == 0 {
		s.log.Add("auto", StatusSuccess, 0, "Automation: All Rajasthan & Central feeds are currently up to date.")
	}

	slog.Info("Sync cycle completed", "new", totalNew)
	return true
}

func (s *Syncer) syncSource(ctx context.Context, src source.Source) int {
	items, err := s.fetcher.Fetch(ctx, src.URL)
	if err != nil {
		// Failed sources are skipped without a sync-log entry; the debug
		// trace is opt-in, the default skip is silent.
		if s.logSourceFailures {
			slog.Debug("Source fetch failed, skipping", "source", src.URL, "error", err)
		}
		return 0
	}

	if len(items) > s.itemLimit {
		items = items[:s.itemLimit]
	}

	newCount := 0
	for _, item := range items {
		// Raw-stage dedup before spending an extraction call.
		if s.store.HasTitleOrLink(item.Title, item.Link) {
			continue
		}

		rawText := fmt.Sprintf("SOURCE_FEED: %s\nTITLE: %s\nDESC: %s\nLINK: %s",
			src.URL, item.Title, item.Description, item.Link)

		result := s.extractor.Extract(ctx, rawText)
		switch result.Outcome {
		case extract.OutcomeOK:
			if s.store.Merge(*result.Posting) {
				newCount++
				s.log.Add("auto", StatusSuccess, 1,
					fmt.Sprintf("Auto-Synced [%s]: %s", src.Label, result.Posting.JobTitle))
			}
		case extract.OutcomeRejected:
			// The model says this entry is not a posting. Dropped quietly.
		case extract.OutcomeMalformed:
			slog.Debug("Extraction failed for entry", "source", src.URL, "title", item.Title, "error", result.Err)
		}
	}

	return newCount
}

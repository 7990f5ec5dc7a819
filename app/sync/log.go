package sync

import (
	stdsync "sync"
	"time"

	"github.com/google/uuid"
)

const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// logCapacity bounds the operational log; oldest entries are evicted.
const logCapacity = 30

// Entry is one observational record of a sync operation. Entries are never
// consumed by pipeline logic, only displayed on the admin panel.
type Entry struct {
	ID            string    `json:"id"`
	SourceID      string    `json:"source_id"`
	Status        string    `json:"status"`
	DetectedLinks int       `json:"detected_links"`
	Message       string    `json:"message"`
	Timestamp     time.Time `json:"timestamp"`
}

// Log is a bounded, newest-first sequence of sync entries.
type Log struct {
	mu      stdsync.Mutex
	entries []Entry
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Add(sourceID, status string, detectedLinks int, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := Entry{
		ID:            uuid.NewString(),
		SourceID:      sourceID,
		Status:        status,
		DetectedLinks: detectedLinks,
		Message:       message,
		Timestamp:     time.Now(),
	}

	l.entries = append([]Entry{entry}, l.entries...)
	if len(l.entries) > logCapacity {
		l.entries = l.entries[:logCapacity]
	}
}

// Entries returns a copy of the log, newest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

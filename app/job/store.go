package job

import (
	"sync"
)

// StoreInterface defines the record store operations used by the sync pipeline
// and the HTTP handlers. The store is the single source of truth for postings
// during the process lifetime; postings are never deleted, only transitioned
// between workflow states.
type StoreInterface interface {
	Approved() []Posting
	Pending() []Posting
	All() []Posting
	Add(p Posting)
	Merge(p Posting) bool
	HasTitleOrLink(title, link string) bool
	SetStatus(id string, status Status) bool
	Count() int
}

var _ StoreInterface = (*Store)(nil)

// Store is the in-memory record store. Newest postings sit at the front.
type Store struct {
	mu       sync.RWMutex
	postings []Posting
}

func NewStore(seed []Posting) *Store {
	s := &Store{}
	s.postings = append(s.postings, seed...)
	return s
}

// Approved returns postings visible to the presentation layer, newest first.
func (s *Store) Approved() []Posting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter(func(p Posting) bool { return p.Status == StatusApproved })
}

func (s *Store) Pending() []Posting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter(func(p Posting) bool { return p.Status == StatusPending })
}

func (s *Store) All() []Posting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Posting, len(s.postings))
	copy(out, s.postings)
	return out
}

// Add prepends a posting without any duplicate check. Used for seed data and
// manually curated postings from the moderation surface.
func (s *Store) Add(p Posting) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.postings = append([]Posting{p}, s.postings...)
}

// Merge prepends an extracted posting unless one already exists with the same
// title and state (the post-extraction dedup key). Comparisons are exact,
// case-sensitive string equality. Reports whether the posting was inserted.
func (s *Store) Merge(p Posting) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.postings {
		if existing.JobTitle == p.JobTitle && existing.State == p.State {
			return false
		}
	}

	s.postings = append([]Posting{p}, s.postings...)
	return true
}

// HasTitleOrLink reports whether an approved posting matches the raw-stage
// dedup key: identical title or identical apply link. Checked before an
// extraction call is spent on a feed entry; pending and rejected postings do
// not block re-ingestion.
func (s *Store) HasTitleOrLink(title, link string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.postings {
		if p.Status != StatusApproved {
			continue
		}
		if p.JobTitle == title || p.ApplyLink == link {
			return true
		}
	}
	return false
}

// SetStatus applies a moderation transition. Reports whether the posting exists.
func (s *Store) SetStatus(id string, status Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.postings {
		if s.postings[i].ID == id {
			s.postings[i].Status = status
			return true
		}
	}
	return false
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.postings)
}

func (s *Store) filter(keep func(Posting) bool) []Posting {
	out := make([]Posting, 0, len(s.postings))
	for _, p := range s.postings {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

package job

import (
	"sort"
	"time"

	"github.com/araddon/dateparse"
)

// OrderForDisplay sorts postings the way the dashboard presents them: notices
// whose application window contains now come first, authentic-board notices
// next, then newest created first. The input slice is sorted in place and
// returned for convenience.
//
// Date fields arrive as free-text strings from extraction and may be malformed
// or "N/A"; unparseable dates simply mean the posting does not count as live.
func OrderForDisplay(postings []Posting, now time.Time) []Posting {
	sort.SliceStable(postings, func(i, j int) bool {
		a, b := postings[i], postings[j]

		aLive := isLive(a, now)
		bLive := isLive(b, now)
		if aLive != bLive {
			return aLive
		}

		if a.IsAuthenticBoard != b.IsAuthenticBoard {
			return a.IsAuthenticBoard
		}

		aCreated, aOK := parseDate(a.CreatedAt)
		bCreated, bOK := parseDate(b.CreatedAt)
		if aOK && bOK {
			return aCreated.After(bCreated)
		}
		return aOK
	})

	return postings
}

func isLive(p Posting, now time.Time) bool {
	start, ok := parseDate(p.StartDate)
	if !ok {
		return false
	}
	last, ok := parseDate(p.LastDate)
	if !ok {
		return false
	}
	// The closing day itself still counts as open.
	return !start.After(now) && !last.Before(now.Truncate(24*time.Hour))
}

func parseDate(s string) (time.Time, bool) {
	if s == "" || s == "N/A" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

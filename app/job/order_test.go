package job

import (
	"testing"
	"time"
)

func TestOrderForDisplay_LiveWindowFirst(t *testing.T) {
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)

	postings := []Posting{
		{ID: "closed", StartDate: "2025-01-01", LastDate: "2025-02-01", CreatedAt: "2025-04-10T00:00:00Z"},
		{ID: "live", StartDate: "2025-04-01", LastDate: "2025-05-30", CreatedAt: "2025-03-01T00:00:00Z"},
	}

	OrderForDisplay(postings, now)

	if postings[0].ID != "live" {
		t.Errorf("Expected live posting first, got '%s'", postings[0].ID)
	}
}

func TestOrderForDisplay_AuthenticBoardBeforeOthers(t *testing.T) {
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)

	postings := []Posting{
		{ID: "blog", IsAuthenticBoard: false, CreatedAt: "2025-04-10T00:00:00Z"},
		{ID: "board", IsAuthenticBoard: true, CreatedAt: "2025-04-01T00:00:00Z"},
	}

	OrderForDisplay(postings, now)

	if postings[0].ID != "board" {
		t.Errorf("Expected authentic board posting first, got '%s'", postings[0].ID)
	}
}

func TestOrderForDisplay_NewestCreatedFirst(t *testing.T) {
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)

	postings := []Posting{
		{ID: "old", CreatedAt: "2025-04-01T00:00:00Z"},
		{ID: "new", CreatedAt: "2025-04-10T00:00:00Z"},
	}

	OrderForDisplay(postings, now)

	if postings[0].ID != "new" {
		t.Errorf("Expected newest posting first, got '%s'", postings[0].ID)
	}
}

func TestOrderForDisplay_MalformedDatesNotLive(t *testing.T) {
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)

	postings := []Posting{
		{ID: "na", StartDate: "N/A", LastDate: "N/A", CreatedAt: "2025-04-12T00:00:00Z"},
		{ID: "garbage", StartDate: "soon", LastDate: "later", CreatedAt: "2025-04-11T00:00:00Z"},
		{ID: "live", StartDate: "2025-04-01", LastDate: "2025-05-30", CreatedAt: "2025-01-01T00:00:00Z"},
	}

	OrderForDisplay(postings, now)

	if postings[0].ID != "live" {
		t.Errorf("Expected only parseable-window posting to rank as live, got '%s' first", postings[0].ID)
	}
}

func TestIsLive_ClosingDayStillOpen(t *testing.T) {
	now := time.Date(2025, 5, 30, 18, 0, 0, 0, time.UTC)

	p := Posting{StartDate: "2025-04-01", LastDate: "2025-05-30"}
	if !isLive(p, now) {
		t.Error("Expected posting to remain live on its closing day")
	}
}

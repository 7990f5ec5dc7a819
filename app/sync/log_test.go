package sync

import (
	"fmt"
	"testing"
)

func TestLog_NewestFirst(t *testing.T) {
	log := NewLog()

	log.Add("auto", StatusSuccess, 0, "first")
	log.Add("auto", StatusSuccess, 1, "second")

	entries := log.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "second" {
		t.Errorf("Expected newest entry first, got '%s'", entries[0].Message)
	}
	if entries[0].ID == "" || entries[0].ID == entries[1].ID {
		t.Error("Entries should carry distinct generated ids")
	}
	if entries[0].Timestamp.IsZero() {
		t.Error("Entry timestamp should be set")
	}
}

func TestLog_BoundedAtThirtyEntries(t *testing.T) {
	log := NewLog()

	for i := 0; i < 45; i++ {
		log.Add("auto", StatusSuccess, 0, fmt.Sprintf("entry %d", i))
	}

	entries := log.Entries()
	if len(entries) != 30 {
		t.Fatalf("Expected log capped at 30 entries, got %d", len(entries))
	}
	if entries[0].Message != "entry 44" {
		t.Errorf("Expected newest entry retained, got '%s'", entries[0].Message)
	}
	if entries[29].Message != "entry 15" {
		t.Errorf("Expected oldest surviving entry to be 'entry 15', got '%s'", entries[29].Message)
	}
}

func TestLog_EntriesReturnsCopy(t *testing.T) {
	log := NewLog()
	log.Add("auto", StatusFailed, 0, "original")

	entries := log.Entries()
	entries[0].Message = "mutated"

	if log.Entries()[0].Message != "original" {
		t.Error("Mutating the returned slice must not affect the log")
	}
}

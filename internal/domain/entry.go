package domain

import (
	"fmt"
	"time"
)

// KnowledgeEntry is one retrievable question/answer pair extracted from
// the source document, together with the patterns derived from its label.
type KnowledgeEntry struct {
	Label    string
	Body     string
	Patterns []string
}

// NewKnowledgeEntry creates a new KnowledgeEntry instance
func NewKnowledgeEntry(label, body string, patterns []string) *KnowledgeEntry {
	return &KnowledgeEntry{
		Label:    label,
		Body:     body,
		Patterns: patterns,
	}
}

// Snapshot is one complete, immutable build of the knowledge base.
// A reload constructs a new Snapshot off to the side and swaps it in
// whole; entries are never mutated in place.
type Snapshot struct {
	Entries  []*KnowledgeEntry
	Source   string
	LoadedAt time.Time
}

// EmptySnapshot returns the zero-knowledge snapshot used before the
// first successful load.
func EmptySnapshot() *Snapshot {
	return &Snapshot{Entries: []*KnowledgeEntry{}}
}

// Len returns the number of entries in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Entries)
}

// MatchResult is the outcome of scoring a query against a snapshot.
// EntryIndex is -1 when no entry cleared the confidence threshold;
// Score is the best score seen either way.
type MatchResult struct {
	EntryIndex int
	Score      float64
}

// Matched reports whether the result points at a usable entry.
func (r MatchResult) Matched() bool {
	return r.EntryIndex >= 0
}

// ValidateEntry validates a KnowledgeEntry instance
func ValidateEntry(e *KnowledgeEntry) error {
	if e == nil {
		return fmt.Errorf("entry cannot be nil")
	}
	if e.Label == "" {
		return &DomainError{Code: ErrCodeValidation, Message: "entry label cannot be empty"}
	}
	if e.Body == "" {
		return &DomainError{Code: ErrCodeValidation, Message: "entry body cannot be empty"}
	}
	if len(e.Patterns) == 0 {
		return &DomainError{Code: ErrCodeValidation, Message: "entry must have at least one pattern"}
	}
	if e.Patterns[0] != e.Label {
		return &DomainError{Code: ErrCodeValidation, Message: "first pattern must be the entry label"}
	}
	return nil
}

package service

import (
	"testing"

	"github.com/docfaq/docfaq/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cabSnapshot(t *testing.T) *domain.Snapshot {
	t.Helper()
	entries := ParseStructured(cabDocument, DefaultPatternConfig())
	require.Len(t, entries, 2)
	return &domain.Snapshot{Entries: entries}
}

func TestScoreBounds(t *testing.T) {
	patterns := BuildPatterns("What is a CAB?", DefaultPatternConfig())

	queries := []string{
		"what is a cab",
		"tell me about the CAB",
		"banana spaceship",
		"",
		"?!?!",
	}
	for _, q := range queries {
		s := Score(q, patterns)
		assert.GreaterOrEqual(t, s, 0.0, "query %q", q)
		assert.LessOrEqual(t, s, 1.0, "query %q", q)
	}

	assert.Zero(t, Score("", patterns), "empty query scores 0")
}

func TestScoreExactQuestion(t *testing.T) {
	patterns := BuildPatterns("What is a CAB?", DefaultPatternConfig())
	assert.Equal(t, 1.0, Score("what is a cab", patterns))
	assert.Equal(t, 1.0, Score("What is a CAB?", patterns))
}

func TestScoreWordBoundary(t *testing.T) {
	// "cat" must not match inside "category".
	assert.Zero(t, Score("items in this category", []string{"cat"}))
	assert.Equal(t, 1.0, Score("the cat sat", []string{"cat"}))
}

func TestScoreEmptyPattern(t *testing.T) {
	// A pattern with no words contributes coverage 0, not a division
	// by zero.
	assert.Zero(t, Score("anything", []string{"", "  ", "?!"}))
}

func TestScoreMaxAcrossPatterns(t *testing.T) {
	patterns := []string{"minimum notice required before a change window", "lead"}
	// The single-word keyword pattern fully matches even though the
	// phrase pattern barely does.
	assert.Equal(t, 1.0, Score("what is lead time", patterns))
}

func TestBestMatchConfident(t *testing.T) {
	snap := cabSnapshot(t)

	result := BestMatch("tell me about the CAB", snap, DefaultMatchConfig())
	require.True(t, result.Matched())
	assert.Equal(t, 0, result.EntryIndex)
	assert.Greater(t, result.Score, 0.35)
	assert.Equal(t, "A Change Advisory Board reviews RFCs.", snap.Entries[result.EntryIndex].Body)
}

func TestBestMatchNoMatch(t *testing.T) {
	snap := cabSnapshot(t)

	result := BestMatch("banana spaceship", snap, DefaultMatchConfig())
	assert.False(t, result.Matched())
	assert.Equal(t, -1, result.EntryIndex)
	assert.LessOrEqual(t, result.Score, 0.35)
}

func TestBestMatchEmptySnapshot(t *testing.T) {
	result := BestMatch("anything", domain.EmptySnapshot(), DefaultMatchConfig())
	assert.False(t, result.Matched())
	assert.Zero(t, result.Score)

	result = BestMatch("anything", nil, DefaultMatchConfig())
	assert.False(t, result.Matched())
}

func TestBestMatchTieKeepsFirst(t *testing.T) {
	pc := DefaultPatternConfig()
	entries := []*domain.KnowledgeEntry{
		domain.NewKnowledgeEntry("restart the service", "first", BuildPatterns("restart the service", pc)),
		domain.NewKnowledgeEntry("restart the service", "second", BuildPatterns("restart the service", pc)),
	}
	snap := &domain.Snapshot{Entries: entries}

	result := BestMatch("how do I restart the service", snap, DefaultMatchConfig())
	require.True(t, result.Matched())
	assert.Equal(t, 0, result.EntryIndex, "ties keep the lowest index")
}

func TestBestMatchIdempotent(t *testing.T) {
	snap := cabSnapshot(t)
	cfg := DefaultMatchConfig()

	first := BestMatch("what is lead time", snap, cfg)
	second := BestMatch("what is lead time", snap, cfg)
	assert.Equal(t, first, second)
}

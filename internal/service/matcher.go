package service

import (
	"strings"

	"github.com/docfaq/docfaq/internal/domain"
)

// MatchConfig controls best-match selection.
type MatchConfig struct {
	// ScoreThreshold is the minimum best score, exclusive, for a match
	// to count as confident.
	ScoreThreshold float64
}

// DefaultMatchConfig provides the default confidence threshold.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		ScoreThreshold: 0.35,
	}
}

// Score computes the match score of query against a pattern set: for
// each pattern, the fraction of its words found as whole words in the
// normalized query, taking the maximum across patterns. A single
// strongly-matching pattern (typically the exact-question pattern) can
// carry the entry even when its keywords score lower. Always in [0,1].
func Score(query string, patterns []string) float64 {
	// Padding with spaces makes every whole-word occurrence, including
	// the first and last word, findable as " word ". This is what keeps
	// "cat" from matching inside "category".
	padded := " " + Normalize(query) + " "

	best := 0.0
	for _, p := range patterns {
		words := Tokenize(p)
		if len(words) == 0 {
			continue
		}
		hits := 0
		for _, w := range words {
			if strings.Contains(padded, " "+w+" ") {
				hits++
			}
		}
		if coverage := float64(hits) / float64(len(words)); coverage > best {
			best = coverage
		}
	}
	return best
}

// BestMatch scores query against every entry in the snapshot and
// returns the highest-scoring one, provided it clears the confidence
// threshold. Ties keep the first-seen entry; the scan order is the
// snapshot's entry order, so results are deterministic. An empty
// snapshot or empty query yields a non-match with score 0.
func BestMatch(query string, snap *domain.Snapshot, cfg MatchConfig) domain.MatchResult {
	bestIdx := -1
	bestScore := 0.0

	if snap != nil {
		for i, entry := range snap.Entries {
			if s := Score(query, entry.Patterns); s > bestScore {
				bestScore = s
				bestIdx = i
			}
		}
	}

	if bestScore <= cfg.ScoreThreshold {
		return domain.MatchResult{EntryIndex: -1, Score: bestScore}
	}
	return domain.MatchResult{EntryIndex: bestIdx, Score: bestScore}
}

package service

// PatternConfig controls keyword derivation from entry labels.
type PatternConfig struct {
	// MaxKeywords caps how many keyword patterns follow the label itself.
	MaxKeywords int
	// MinTokenLen is the minimum length of a token worth keeping.
	MinTokenLen int
}

// DefaultPatternConfig provides sane defaults for pattern derivation.
func DefaultPatternConfig() PatternConfig {
	return PatternConfig{
		MaxKeywords: 8,
		MinTokenLen: 3,
	}
}

// stopWords are common function words that carry no discriminating
// signal for matching. Closed list; tokens are already lowercased when
// checked against it.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "that": {}, "this": {},
	"from": {}, "your": {}, "have": {}, "will": {}, "into": {}, "about": {},
	"after": {}, "before": {}, "when": {}, "what": {}, "how": {}, "why": {},
	"who": {}, "are": {}, "was": {}, "were": {}, "is": {}, "a": {}, "an": {},
	"to": {}, "of": {}, "in": {}, "on": {}, "at": {}, "by": {}, "as": {},
	"it": {}, "or": {}, "be": {}, "we": {}, "you": {}, "our": {}, "their": {},
	"there": {}, "any": {}, "can": {}, "do": {}, "but": {}, "not": {},
}

// BuildPatterns derives the match patterns for a question label: the
// original label verbatim, followed by up to cfg.MaxKeywords unique
// keyword tokens in first-seen order. The label comes first so an exact
// or near-exact phrase match scores maximally; the keywords cover
// partial matches when phrasing differs.
func BuildPatterns(question string, cfg PatternConfig) []string {
	patterns := make([]string, 0, cfg.MaxKeywords+1)
	patterns = append(patterns, question)

	seen := make(map[string]struct{}, cfg.MaxKeywords)
	for _, token := range Tokenize(question) {
		if len(token) < cfg.MinTokenLen {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		patterns = append(patterns, token)
		if len(seen) >= cfg.MaxKeywords {
			break
		}
	}

	return patterns
}

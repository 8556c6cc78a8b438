package service

import (
	"regexp"
	"strings"

	"github.com/docfaq/docfaq/internal/domain"
)

// SegmentConfig controls document segmentation.
type SegmentConfig struct {
	// MaxFallbackEntries caps the number of entries produced by the
	// paragraph fallback. The structured strategy is uncapped.
	MaxFallbackEntries int
	// MaxLabelChars is the maximum label length before truncation.
	MaxLabelChars int
}

// DefaultSegmentConfig provides sane defaults for segmentation.
func DefaultSegmentConfig() SegmentConfig {
	return SegmentConfig{
		MaxFallbackEntries: 300,
		MaxLabelChars:      120,
	}
}

var (
	questionMarkers = []string{"question:", "q:"}
	answerMarkers   = []string{"answer:", "a:"}

	paragraphSplit = regexp.MustCompile(`\n{2,}`)
)

// Segment converts extracted document text into knowledge entries.
// It tries the structured Q/A strategy first and falls back to
// paragraph chunking only when the document contains no Q/A blocks.
func Segment(text string, pc PatternConfig, sc SegmentConfig) []*domain.KnowledgeEntry {
	entries := ParseStructured(text, pc)
	if len(entries) == 0 {
		entries = ParseUnstructured(text, pc, sc)
	}
	return entries
}

// markerContent reports whether line starts (after leading whitespace,
// case-insensitively) with one of the markers, returning the trimmed
// content after the marker.
func markerContent(line string, markers []string) (string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	lower := strings.ToLower(trimmed)
	for _, m := range markers {
		if strings.HasPrefix(lower, m) {
			return strings.TrimSpace(trimmed[len(m):]), true
		}
	}
	return "", false
}

// ParseStructured scans text for repeated question/answer blocks: a
// question-marker line, then an answer-marker line whose content runs
// until the next question marker or end of text. A document with zero
// blocks yields an empty slice, signalling the caller to fall back.
func ParseStructured(text string, pc PatternConfig) []*domain.KnowledgeEntry {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	entries := []*domain.KnowledgeEntry{}
	var label string
	var bodyLines []string
	haveLabel := false
	inAnswer := false

	flush := func() {
		if haveLabel && inAnswer {
			body := strings.TrimSpace(strings.Join(bodyLines, "\n"))
			if label != "" && body != "" {
				entries = append(entries, domain.NewKnowledgeEntry(label, body, BuildPatterns(label, pc)))
			}
		}
		label = ""
		bodyLines = nil
		haveLabel = false
		inAnswer = false
	}

	for _, line := range lines {
		if content, ok := markerContent(line, questionMarkers); ok {
			flush()
			label = content
			haveLabel = true
			continue
		}
		if content, ok := markerContent(line, answerMarkers); ok && haveLabel && !inAnswer {
			inAnswer = true
			bodyLines = append(bodyLines, content)
			continue
		}
		// Answer content continues across lines until the next
		// question marker; stray answer markers stay part of the body.
		if inAnswer {
			bodyLines = append(bodyLines, line)
		}
	}
	flush()

	return entries
}

// ParseUnstructured splits text into blank-line-separated paragraphs
// and turns each into an entry labelled by its first sentence, capped
// at sc.MaxFallbackEntries.
func ParseUnstructured(text string, pc PatternConfig, sc SegmentConfig) []*domain.KnowledgeEntry {
	paragraphs := paragraphSplit.Split(strings.ReplaceAll(text, "\r\n", "\n"), -1)

	entries := []*domain.KnowledgeEntry{}
	for _, p := range paragraphs {
		if sc.MaxFallbackEntries > 0 && len(entries) >= sc.MaxFallbackEntries {
			break
		}
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		label := firstSentence(p)
		label = truncateLabel(label, sc.MaxLabelChars)
		entries = append(entries, domain.NewKnowledgeEntry(label, p, BuildPatterns(label, pc)))
	}

	return entries
}

// firstSentence returns p up to and including the first sentence
// terminator that is followed by whitespace, or all of p when there is
// no such terminator.
func firstSentence(p string) string {
	for i := 0; i < len(p)-1; i++ {
		switch p[i] {
		case '.', '?', '!':
			next := p[i+1]
			if next == ' ' || next == '\t' || next == '\n' || next == '\r' {
				return p[:i+1]
			}
		}
	}
	return p
}

// truncateLabel shortens a label to maxChars, rune-safe, marking the
// cut with an ellipsis.
func truncateLabel(label string, maxChars int) string {
	if maxChars <= 3 {
		return label
	}
	runes := []rune(label)
	if len(runes) <= maxChars {
		return label
	}
	return string(runes[:maxChars-3]) + "..."
}

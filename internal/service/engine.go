package service

import (
	"context"
	"errors"
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/docfaq/docfaq/internal/domain"
	"github.com/docfaq/docfaq/internal/telemetry"
)

// TextExtractor turns raw document bytes into plain text. It is the
// only external collaborator the engine blocks on during a reload.
type TextExtractor interface {
	ExtractText(name string, data []byte) (string, error)
}

// DocumentSource supplies the raw source document bytes.
type DocumentSource interface {
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
}

// EngineConfig bundles the tunable heuristics of the engine. The
// defaults mirror the values the scoring was calibrated with; they are
// parameters rather than constants because none of them is a structural
// invariant.
type EngineConfig struct {
	Patterns PatternConfig
	Segment  SegmentConfig
	Match    MatchConfig

	// FallbackMessage is returned when no entry clears the threshold.
	FallbackMessage string
}

// DefaultEngineConfig provides sane defaults for the engine.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Patterns:        DefaultPatternConfig(),
		Segment:         DefaultSegmentConfig(),
		Match:           DefaultMatchConfig(),
		FallbackMessage: "I couldn't confidently match that question. Try rephrasing it.",
	}
}

// loadState records the outcome of the most recent reload attempt.
type loadState struct {
	attemptedAt time.Time
	err         string
}

// Engine owns the current knowledge snapshot and answers queries
// against it. Reloads build a complete new snapshot off to the side and
// swap it in with a single atomic store, so in-flight queries always
// see either the old snapshot or the new one, never a partial build.
type Engine struct {
	source    DocumentSource
	extractor TextExtractor
	cfg       EngineConfig

	snapshot atomic.Pointer[domain.Snapshot]
	last     atomic.Pointer[loadState]
}

// NewEngine creates an Engine with an empty knowledge snapshot.
func NewEngine(source DocumentSource, extractor TextExtractor, cfg EngineConfig) *Engine {
	e := &Engine{
		source:    source,
		extractor: extractor,
		cfg:       cfg,
	}
	e.snapshot.Store(domain.EmptySnapshot())
	e.last.Store(&loadState{})
	return e
}

// Snapshot returns the current knowledge snapshot. Callers must treat
// it as read-only; it may be replaced at any time by a reload.
func (e *Engine) Snapshot() *domain.Snapshot {
	return e.snapshot.Load()
}

// Reload fetches the source document, extracts its text and rebuilds
// the knowledge snapshot. On any failure, or when the document yields
// no entries, the previous snapshot stays in place and the error is
// returned for the caller to log; nothing here is fatal.
func (e *Engine) Reload(ctx context.Context) error {
	if e.source == nil {
		return e.finishReload(domain.ErrNoDocumentConfigured)
	}

	ctx, span := telemetry.StartSpan(ctx, "Engine.Reload", telemetry.SpanAttributes{
		Source:    e.source.Name(),
		Operation: "reload",
	})
	defer span.End()

	data, err := e.source.Fetch(ctx)
	if err != nil {
		err = asExtractionError(err)
		span.SetError(err)
		return e.finishReload(err)
	}

	text, err := e.extractor.ExtractText(e.source.Name(), data)
	if err != nil {
		err = asExtractionError(err)
		span.SetError(err)
		return e.finishReload(err)
	}

	entries := Segment(text, e.cfg.Patterns, e.cfg.Segment)
	if len(entries) == 0 {
		return e.finishReload(domain.ErrEmptyDocument)
	}

	snap := &domain.Snapshot{
		Entries:  entries,
		Source:   e.source.Name(),
		LoadedAt: time.Now().UTC(),
	}
	e.snapshot.Store(snap)
	log.Printf("knowledge reloaded: %d entries from %s", len(entries), snap.Source)
	return e.finishReload(nil)
}

// asExtractionError keeps domain-coded errors as-is and wraps anything
// else under the EXTRACTION_FAILED code.
func asExtractionError(err error) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return err
	}
	return domain.NewDomainErrorWithCause(domain.ErrCodeExtractionFailed, "could not extract text from document", err)
}

func (e *Engine) finishReload(err error) error {
	state := &loadState{attemptedAt: time.Now().UTC()}
	if err != nil {
		state.err = err.Error()
	}
	e.last.Store(state)
	return err
}

// Match scores query against the current snapshot.
func (e *Engine) Match(query string) domain.MatchResult {
	return BestMatch(query, e.Snapshot(), e.cfg.Match)
}

// AnswerResult is the query-model view of a match: either a confident
// answer or the fallback message, always with the confidence in
// percent.
type AnswerResult struct {
	Matched           bool
	Label             string
	Body              string
	ConfidencePercent int
	FallbackMessage   string
}

// Answer resolves query to the best entry's body, or to the configured
// fallback message when no entry clears the threshold.
func (e *Engine) Answer(query string) AnswerResult {
	snap := e.Snapshot()
	result := BestMatch(query, snap, e.cfg.Match)
	confidence := int(math.Round(result.Score * 100))

	if !result.Matched() {
		return AnswerResult{
			Matched:           false,
			ConfidencePercent: confidence,
			FallbackMessage:   e.cfg.FallbackMessage,
		}
	}

	entry := snap.Entries[result.EntryIndex]
	return AnswerResult{
		Matched:           true,
		Label:             entry.Label,
		Body:              entry.Body,
		ConfidencePercent: confidence,
	}
}

// EngineStatus describes the engine's current load state.
type EngineStatus struct {
	Source        string
	EntryCount    int
	LoadedAt      time.Time
	LastAttemptAt time.Time
	LastError     string
}

// Status reports the snapshot size and the outcome of the most recent
// reload attempt.
func (e *Engine) Status() EngineStatus {
	snap := e.Snapshot()
	last := e.last.Load()

	status := EngineStatus{
		EntryCount: snap.Len(),
		Source:     snap.Source,
		LoadedAt:   snap.LoadedAt,
	}
	if e.source != nil && status.Source == "" {
		status.Source = e.source.Name()
	}
	if last != nil {
		status.LastAttemptAt = last.attemptedAt
		status.LastError = last.err
	}
	return status
}

package jobs

import (
	"context"
	"log"
	"time"
)

// Reloader rebuilds the knowledge base from the source document.
type Reloader interface {
	Reload(ctx context.Context) error
}

// FingerprintSource reports a value that changes when the source
// document changes.
type FingerprintSource interface {
	Fingerprint(ctx context.Context) (string, error)
}

// Watcher polls the source document's fingerprint and triggers a
// reload whenever it changes. Reload failures are logged and retried
// on the next change; the engine keeps serving its previous snapshot
// in the meantime.
type Watcher struct {
	source       FingerprintSource
	reloader     Reloader
	pollInterval time.Duration
	stopChan     chan struct{}
	doneChan     chan struct{}

	lastFingerprint string
}

// NewWatcher creates a new Watcher instance
func NewWatcher(source FingerprintSource, reloader Reloader, pollInterval time.Duration) *Watcher {
	return &Watcher{
		source:       source,
		reloader:     reloader,
		pollInterval: pollInterval,
		stopChan:     make(chan struct{}),
		doneChan:     make(chan struct{}),
	}
}

// Start begins the watcher's polling loop. The caller is expected to
// have done the initial load already; Start records the current
// fingerprint as the baseline and only reacts to later changes.
func (w *Watcher) Start(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()
	defer close(w.doneChan)

	if fp, err := w.source.Fingerprint(ctx); err == nil {
		w.lastFingerprint = fp
	}

	log.Printf("document watcher started with poll interval: %v", w.pollInterval)

	for {
		select {
		case <-ctx.Done():
			log.Println("document watcher stopped: context cancelled")
			return
		case <-w.stopChan:
			log.Println("document watcher stopped: stop signal received")
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *Watcher) poll(ctx context.Context) {
	fp, err := w.source.Fingerprint(ctx)
	if err != nil {
		log.Printf("error checking source document: %v", err)
		return
	}
	if fp == w.lastFingerprint {
		return
	}

	log.Printf("source document changed, reloading knowledge base")
	if err := w.reloader.Reload(ctx); err != nil {
		log.Printf("error reloading knowledge base: %v", err)
	}
	// Record the fingerprint even when the reload failed so a broken
	// document doesn't retrigger every tick; the next change retries.
	w.lastFingerprint = fp
}

// Stop gracefully stops the watcher
func (w *Watcher) Stop() {
	close(w.stopChan)
	<-w.doneChan
	log.Println("document watcher shutdown complete")
}

package model

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/diabd/platform/pkg/common/logger"
)

// ErrModelUnavailable is returned while no classifier has been loaded.
// Callers may retry after a reload attempt.
var ErrModelUnavailable = errors.New("inference system not ready: model bundle missing or not trained")

// Loader owns the process-wide model reference. The fast path is a lock-free
// read; loading is double-checked under the mutex so at most one load runs
// at a time and readers observe either nothing or a fully-built bundle.
type Loader struct {
	modelPath string
	metaPath  string

	mu     sync.Mutex
	bundle atomic.Pointer[Bundle]
}

func NewLoader(modelPath, metaPath string) *Loader {
	return &Loader{modelPath: modelPath, metaPath: metaPath}
}

// Get returns the loaded bundle, loading it on first use.
func (l *Loader) Get() (*Bundle, error) {
	if b := l.bundle.Load(); b != nil {
		return b, nil
	}
	return l.Reload()
}

// Reload re-reads the artifact from disk and swaps it in atomically.
func (l *Loader) Reload() (*Bundle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b := l.bundle.Load(); b != nil {
		return b, nil
	}

	bundle, err := LoadBundle(l.modelPath)
	if err != nil {
		logger.Log.WithError(err).Warn("model bundle load failed")
		return nil, ErrModelUnavailable
	}

	if meta, err := LoadMetadata(l.metaPath); err == nil {
		bundle.Meta = meta
	} else {
		logger.Log.WithError(err).Warn("model metadata unavailable")
	}

	l.bundle.Store(bundle)
	logger.Log.WithField("algorithm", bundle.Algorithm).Info("Model bundle loaded")
	return bundle, nil
}

// Refresh discards the current bundle and forces the next Get to reload.
func (l *Loader) Refresh() {
	l.mu.Lock()
	l.bundle.Store(nil)
	l.mu.Unlock()
}

// Loaded reports whether a bundle is currently in memory.
func (l *Loader) Loaded() bool {
	return l.bundle.Load() != nil
}

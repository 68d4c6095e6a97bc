package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

// Options configures a Document.
type Options[T any] struct {
	Key string
	// Default builds the value used when nothing valid is persisted.
	Default func() T
	// Valid rejects decoded values that are structurally wrong. Optional.
	Valid func(T) bool
	// Clone copies a value so callers never share memory with the document.
	// Optional; values without reference fields can leave it nil.
	Clone func(T) T
}

// Document is a single persisted JSON value with load-or-default semantics.
// The value is loaded lazily on first access and every mutation is
// serialized by the document's mutex.
type Document[T any] struct {
	backend Backend
	opts    Options[T]
	log     *slog.Logger

	mu     sync.Mutex
	loaded bool
	value  T
}

// NewDocument creates a Document bound to backend.
func NewDocument[T any](backend Backend, logger *slog.Logger, opts Options[T]) *Document[T] {
	return &Document[T]{
		backend: backend,
		opts:    opts,
		log:     logger.With("document", opts.Key),
	}
}

// Get returns a copy of the current value.
func (d *Document[T]) Get(ctx context.Context) T {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.ensureLoaded(ctx)
	return d.clone(d.value)
}

// Mutate applies fn to a copy of the current value, stores the result and
// flushes it to the backend. If fn fails nothing changes. A flush failure is
// logged and the new value is kept in memory.
func (d *Document[T]) Mutate(ctx context.Context, fn func(T) (T, error)) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.ensureLoaded(ctx)

	next, err := fn(d.clone(d.value))
	if err != nil {
		var zero T
		return zero, err
	}

	d.value = next
	d.flush(ctx)

	return d.clone(next), nil
}

func (d *Document[T]) ensureLoaded(ctx context.Context) {
	if d.loaded {
		return
	}
	d.loaded = true
	d.value = d.load(ctx)
}

func (d *Document[T]) load(ctx context.Context) T {
	data, err := d.backend.Load(ctx, d.opts.Key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			d.log.WarnContext(ctx, "load failed, using default", slog.String("error", err.Error()))
		}
		return d.opts.Default()
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		d.log.WarnContext(ctx, "corrupt document, using default", slog.String("error", err.Error()))
		return d.opts.Default()
	}
	if d.opts.Valid != nil && !d.opts.Valid(v) {
		d.log.WarnContext(ctx, "invalid document, using default")
		return d.opts.Default()
	}
	return v
}

func (d *Document[T]) flush(ctx context.Context) {
	data, err := json.MarshalIndent(d.value, "", "  ")
	if err != nil {
		d.log.ErrorContext(ctx, "encode document", slog.String("error", err.Error()))
		return
	}
	if err := d.backend.Save(ctx, d.opts.Key, data); err != nil {
		d.log.ErrorContext(ctx, "save document", slog.String("error", fmt.Errorf("save %s: %w", d.opts.Key, err).Error()))
	}
}

func (d *Document[T]) clone(v T) T {
	if d.opts.Clone == nil {
		return v
	}
	return d.opts.Clone(v)
}

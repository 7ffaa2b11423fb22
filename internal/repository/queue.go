package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"meal-pickup/internal/metrics"
	"meal-pickup/internal/model"

	"github.com/rs/zerolog"
)

// ErrQueueClosed is returned by Enqueue after Close.
var ErrQueueClosed = errors.New("write queue is closed")

// Mutation changes doc in place and returns the value handed back to the caller.
// Returning an error discards the change; nothing is persisted.
type Mutation func(doc *model.Document) (any, error)

type unit struct {
	ctx    context.Context
	mutate Mutation
	reply  chan unitResult
}

type unitResult struct {
	value any
	err   error
}

// WriteQueue owns every write to a DocumentRepository. Units run one at a time in the order
// the queue accepts them, each as load, mutate, persist, so concurrent writers never lose updates.
// A failing unit does not affect the ones after it.
type WriteQueue struct {
	repo    DocumentRepository
	units   chan *unit
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
	logger  zerolog.Logger
}

// NewWriteQueue starts the queue's worker goroutine.
func NewWriteQueue(repo DocumentRepository, logger zerolog.Logger) *WriteQueue {
	q := &WriteQueue{
		repo:    repo,
		units:   make(chan *unit),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		logger:  logger.With().Str("component", "write-queue").Logger(),
	}
	go q.run()
	return q
}

// Enqueue submits mutate and waits for its result. Once accepted, the unit runs to completion
// even if ctx is cancelled afterwards; cancellation only matters while waiting to be accepted.
func (q *WriteQueue) Enqueue(ctx context.Context, mutate Mutation) (any, error) {
	u := &unit{
		ctx:    context.WithoutCancel(ctx),
		mutate: mutate,
		reply:  make(chan unitResult, 1),
	}

	select {
	case q.units <- u:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-q.done:
		return nil, ErrQueueClosed
	}

	res := <-u.reply
	return res.value, res.err
}

// Submit is a typed wrapper around Enqueue.
func Submit[T any](ctx context.Context, q *WriteQueue, fn func(doc *model.Document) (T, error)) (T, error) {
	value, err := q.Enqueue(ctx, func(doc *model.Document) (any, error) {
		return fn(doc)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	typed, _ := value.(T)
	return typed, nil
}

// Close stops accepting units and waits for the worker to exit.
func (q *WriteQueue) Close() {
	q.once.Do(func() {
		close(q.done)
	})
	<-q.stopped
}

func (q *WriteQueue) run() {
	defer close(q.stopped)

	for {
		select {
		case u := <-q.units:
			u.reply <- q.execute(u)
		case <-q.done:
			return
		}
	}
}

func (q *WriteQueue) execute(u *unit) (res unitResult) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			q.logger.Error().Interface("panic", r).Msg("mutation panicked")
			res = unitResult{err: fmt.Errorf("mutation panicked: %v", r)}
		}

		outcome := metrics.OutcomePersisted
		switch {
		case res.err == nil:
		case model.CodeOf(res.err) == model.ErrCodeValidation || model.CodeOf(res.err) == model.ErrCodeNotFound:
			outcome = metrics.OutcomeRejected
		default:
			outcome = metrics.OutcomeFailed
		}
		metrics.RecordStoreWrite(outcome, time.Since(start))
	}()

	doc, err := q.repo.Load(u.ctx)
	if err != nil {
		return unitResult{err: asStorageError("Unable to load app data", err)}
	}

	value, err := u.mutate(doc)
	if err != nil {
		return unitResult{err: err}
	}

	if err := q.repo.Persist(u.ctx, doc); err != nil {
		q.logger.Error().Err(err).Msg("failed to persist document")
		return unitResult{err: asStorageError("Unable to save app data", err)}
	}

	return unitResult{value: value}
}

func asStorageError(message string, err error) error {
	if model.CodeOf(err) != "" {
		return err
	}
	return model.NewStorageError(message, err)
}

package storage

import (
	"sync"

	"zikirmatik/internal/logger"
)

type writeOp struct {
	value  string
	delete bool
}

// WriteBehind serializes writes to a Provider on a background goroutine.
// Mutations update in-memory state synchronously in the calling store and
// trail behind here; writes to the same key coalesce last-wins, so two
// rapid mutations can never persist out of order. Flush blocks until
// everything queued so far has landed, which tests and shutdown rely on.
type WriteBehind struct {
	provider Provider

	mu       sync.Mutex
	cond     *sync.Cond
	pending  map[string]writeOp
	order    []string
	inflight bool
	closed   bool
	done     chan struct{}
}

func NewWriteBehind(provider Provider) *WriteBehind {
	w := &WriteBehind{
		provider: provider,
		pending:  make(map[string]writeOp),
		done:     make(chan struct{}),
	}
	w.cond = sync.NewCond(&w.mu)
	go w.run()
	return w
}

// Put enqueues a set for key. Returns immediately.
func (w *WriteBehind) Put(key, value string) {
	w.enqueue(key, writeOp{value: value})
}

// Remove enqueues a delete for key. Returns immediately.
func (w *WriteBehind) Remove(key string) {
	w.enqueue(key, writeOp{delete: true})
}

func (w *WriteBehind) enqueue(key string, op writeOp) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if _, queued := w.pending[key]; !queued {
		w.order = append(w.order, key)
	}
	w.pending[key] = op
	w.cond.Broadcast()
}

// Flush blocks until all writes enqueued before the call have completed.
func (w *WriteBehind) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for len(w.pending) > 0 || w.inflight {
		w.cond.Wait()
	}
}

// Close drains the queue and stops the background writer.
func (w *WriteBehind) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.cond.Broadcast()
	w.mu.Unlock()
	<-w.done
}

func (w *WriteBehind) run() {
	defer close(w.done)
	for {
		w.mu.Lock()
		for len(w.pending) == 0 && !w.closed {
			w.cond.Wait()
		}
		if len(w.pending) == 0 && w.closed {
			w.mu.Unlock()
			return
		}

		key := w.order[0]
		w.order = w.order[1:]
		op := w.pending[key]
		delete(w.pending, key)
		w.inflight = true
		w.mu.Unlock()

		// Best effort: storage failures are logged, never surfaced. The
		// in-memory state stays the effective truth for the session.
		var err error
		if op.delete {
			err = w.provider.Delete(key)
		} else {
			err = w.provider.Set(key, op.value)
		}
		if err != nil {
			logger.Warn("Persistence write failed", "key", key, "error", err)
		}

		w.mu.Lock()
		w.inflight = false
		w.cond.Broadcast()
		w.mu.Unlock()
	}
}

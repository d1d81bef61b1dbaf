package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/ledger-store/internal/metrics"
	"github.com/carson-networks/ledger-store/internal/operator/actions"
	"github.com/carson-networks/ledger-store/internal/storage"
)

// ErrStopped is returned by Process after Stop.
var ErrStopped = errors.New("operator: stopped")

// OperatorDelegator manages the queue, runs the single Operator and enqueues
// items. All writes go through one worker, so two read-modify-write cycles
// on the account file never interleave.
type OperatorDelegator struct {
	storage *storage.Storage
	queue   chan ActionItem
	wg      sync.WaitGroup

	mu       sync.RWMutex
	started  bool
	stopped  bool
	stopOnce sync.Once
}

func NewOperatorDelegator(s *storage.Storage, queueSize int) *OperatorDelegator {
	if queueSize < 1 {
		queueSize = 1
	}
	return &OperatorDelegator{
		storage: s,
		queue:   make(chan ActionItem, queueSize),
	}
}

func (d *OperatorDelegator) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.stopped {
		return
	}
	d.started = true

	d.wg.Add(1)
	op := NewOperator(d.storage, d.queue)
	go func() {
		defer d.wg.Done()
		op.Run()
	}()
}

// Stop closes the queue and waits for queued items to finish.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		close(d.queue)
		d.mu.Unlock()
		d.wg.Wait()
	})
}

// Running reports whether the worker is accepting items.
func (d *OperatorDelegator) Running() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.started && !d.stopped
}

// Process enqueues the action and waits for its result. A cancelled context
// stops the wait but not an action the worker has already taken.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		metrics.SetQueueDepth(len(d.queue))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

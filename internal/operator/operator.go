package operator

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-store/internal/metrics"
	"github.com/carson-networks/ledger-store/internal/operator/actions"
	"github.com/carson-networks/ledger-store/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage *storage.Storage
	queue   chan ActionItem
}

func NewOperator(s *storage.Storage, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		metrics.SetQueueDepth(len(o.queue))
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	start := time.Now()
	err := o.perform(item)
	metrics.ObserveOperation(item.action.Operation(), start, err)

	if err != nil {
		logrus.WithError(err).WithField("operation", item.action.Operation()).Debug("Operator.processItem.failed")
	}
	item.response <- ActionItemResponse{err: err}
}

// perform runs the action against a fresh snapshot. The caller's context is
// not consulted once the item is dequeued: an action runs to completion.
func (o *Operator) perform(item ActionItem) error {
	ctx := context.WithoutCancel(item.ctx)

	writer, err := o.storage.Write(ctx)
	if err != nil {
		return err
	}

	err = item.action.Perform(ctx, writer)
	if err != nil {
		_ = writer.Rollback()
		return err
	}

	return writer.Commit()
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}

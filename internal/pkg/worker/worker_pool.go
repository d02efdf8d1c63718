package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"spamwatch/internal/pkg/deduplicator"
	"spamwatch/internal/pkg/detection"
	"spamwatch/internal/pkg/logger"
	"spamwatch/internal/pkg/metrics"
	"spamwatch/internal/pkg/queue"
	"spamwatch/internal/pkg/reporter"
)

// Manages a pool of workers that analyze queued batches in parallel.
// Each batch's working data is local to its worker, so workers need no
// coordination beyond the queue.
type WorkerPool struct {
	numWorkers int
	queue      *queue.Queue
	engine     *detection.Engine
	deduper    deduplicator.Deduper
	reporter   *reporter.Reporter
	wg         sync.WaitGroup
}

// Creates a new worker pool with the specified number of workers
func NewWorkerPool(numWorkers int, queue *queue.Queue, engine *detection.Engine, deduper deduplicator.Deduper, reporter *reporter.Reporter) *WorkerPool {
	return &WorkerPool{
		numWorkers: numWorkers,
		queue:      queue,
		engine:     engine,
		deduper:    deduper,
		reporter:   reporter,
	}
}

// Launches the worker goroutines
func (wp *WorkerPool) Start(ctx context.Context) {
	logger.Log.Info("Starting worker pool", zap.Int("workers", wp.numWorkers))

	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.runWorker(ctx, i)
	}
}

// Blocks until all workers have finished
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// The main loop for each worker goroutine
func (wp *WorkerPool) runWorker(ctx context.Context, id int) {
	defer wp.wg.Done()

	logger.Log.Info("Worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("Worker received stop signal", zap.Int("worker_id", id))
			return
		default:
			request, err := wp.queue.Remove()
			if err != nil {
				// If queue is empty, wait a bit before trying again
				time.Sleep(200 * time.Millisecond)
				continue
			}

			signature := deduplicator.GenerateSignature(request.Comments)
			if wp.deduper.IsDuplicate(signature) {
				metrics.DuplicateBatchesSkipped.Inc()
				logger.Log.Debug("Skipping duplicate batch",
					zap.Int("worker_id", id),
					zap.String("batch_id", request.BatchID))
				continue
			}

			reports := wp.engine.GenerateReport(request)
			wp.deduper.StoreSignature(signature)

			for i := range reports {
				wp.reporter.Add(&reports[i])
			}

			logger.Log.Debug("Batch processed",
				zap.Int("worker_id", id),
				zap.String("batch_id", request.BatchID),
				zap.Int("campaigns", len(reports)))
		}
	}
}

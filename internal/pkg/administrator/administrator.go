package administrator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"spamwatch/internal/pkg/config"
	"spamwatch/internal/pkg/deduplicator"
	"spamwatch/internal/pkg/detection"
	"spamwatch/internal/pkg/logger"
	"spamwatch/internal/pkg/models"
	"spamwatch/internal/pkg/queue"
	"spamwatch/internal/pkg/reporter"
	"spamwatch/internal/pkg/worker"
)

// Administrator interface
type Administrator interface {
	EnqueueBatch(ctx context.Context, request models.AnalysisRequest) error
	StartProcessing(ctx context.Context) error
	StartService(port string)
	Stop()
	QueueDepth() int
	WorkerCount() int
	StartTime() time.Time
}

// Implementation of the Administrator interface
type administrator struct {
	reporter   *reporter.Reporter
	queue      *queue.Queue
	engine     *detection.Engine
	workerPool *worker.WorkerPool
	startTime  time.Time
	numWorkers int
}

// Creates a new instance of an Administrator with a config
func New(cfg *config.Config) Administrator {
	batchQueue, err := queue.CreateQueue(cfg.QueueCapacity)
	if err != nil {
		logger.Log.Fatal("Failed to create queue", zap.Error(err))
	}

	deduper, err := deduplicator.NewRedisDeduper(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to create deduper", zap.Error(err))
	}

	campaignReporter := reporter.NewReporter(
		cfg.BulkThreshold,
		cfg.ElasticsearchURL,
		cfg.IndexName,
		cfg.FlushInterval,
		cfg.MaxRetries,
	)

	detectionConfig := detection.DefaultConfig()
	detectionConfig.SpamScoreThreshold = cfg.SpamScoreThreshold
	detectionConfig.PassOneThreshold = cfg.PassOneThreshold
	detectionConfig.MergeThreshold = cfg.MergeThreshold
	detectionConfig.MaxFuzzyDistance = cfg.MaxFuzzyDistance
	engine := detection.NewEngine(detectionConfig)

	numWorkers := cfg.NumWorkers
	if numWorkers <= 0 {
		numWorkers = 1 // Default to 1 worker if not specified
	}

	pool := worker.NewWorkerPool(numWorkers, batchQueue, engine, deduper, campaignReporter)

	return &administrator{
		reporter:   campaignReporter,
		queue:      batchQueue,
		engine:     engine,
		workerPool: pool,
		startTime:  time.Now(),
		numWorkers: numWorkers,
	}
}

// Quickly returns so the fetcher can move on to the next comment section.
func (admin *administrator) EnqueueBatch(ctx context.Context, request models.AnalysisRequest) error {
	return admin.queue.Insert(request)
}

// Starts the worker pool with the provided context
func (admin *administrator) StartProcessing(ctx context.Context) error {
	admin.workerPool.Start(ctx)
	return nil
}

// StartService starts the HTTP analysis service at the given port
func (admin *administrator) StartService(port string) {
	logger.Log.Info("Starting HTTP analysis service", zap.String("port", port))
	startAnalysisHTTP(admin, port)
}

// Stops the worker pool and reporter gracefully
func (admin *administrator) Stop() {
	logger.Log.Info("Beginning shutdown sequence")

	logger.Log.Info("Waiting for worker pool to finish processing existing items")
	admin.workerPool.Wait()

	logger.Log.Info("Worker pool shutdown complete, stopping reporter")
	admin.reporter.Stop()

	logger.Log.Info("Administrator stopped gracefully")
}

// Returns the current queue depth for health checks
func (admin *administrator) QueueDepth() int {
	return admin.queue.Length()
}

// Returns the number of workers for health checks
func (admin *administrator) WorkerCount() int {
	return admin.numWorkers
}

// Returns when the service was started for health checks
func (admin *administrator) StartTime() time.Time {
	return admin.startTime
}

package reporter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"spamwatch/internal/pkg/circuitbreaker"
	"spamwatch/internal/pkg/logger"
	"spamwatch/internal/pkg/metrics"
	"spamwatch/internal/pkg/models"
)

// Buffers campaign reports until a threshold is reached or a flush
// interval elapses, then ships them as an NDJSON bulk request to
// Elasticsearch. Failed flushes are retried with backoff behind a circuit
// breaker.
type Reporter struct {
	mutex         sync.Mutex
	buffer        []*models.CampaignReport
	threshold     int
	flushChannel  chan struct{}
	stopChannel   chan struct{}
	elasticURL    string
	indexName     string
	flushInterval time.Duration
	maxRetries    int
	breaker       *circuitbreaker.CircuitBreaker
	wg            sync.WaitGroup
}

// Creates a new Reporter and starts its flush loop.
func NewReporter(threshold int, elasticURL, indexName string, flushIntervalSeconds, maxRetries int) *Reporter {
	reporter := &Reporter{
		buffer:        make([]*models.CampaignReport, 0, threshold),
		threshold:     threshold,
		flushChannel:  make(chan struct{}, 1),
		stopChannel:   make(chan struct{}),
		elasticURL:    elasticURL,
		indexName:     indexName,
		flushInterval: time.Duration(flushIntervalSeconds) * time.Second,
		maxRetries:    maxRetries,
		breaker:       circuitbreaker.NewCircuitBreaker("elasticsearch", 3, 30*time.Second),
	}
	reporter.wg.Add(1)
	go reporter.runFlushLoop()
	return reporter
}

// Adds a report to the buffer and signals a flush if the threshold is met.
func (r *Reporter) Add(report *models.CampaignReport) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.buffer = append(r.buffer, report)
	if len(r.buffer) >= r.threshold {
		select {
		case r.flushChannel <- struct{}{}:
		default:
			// flush already signaled
		}
	}
}

// Flushes any buffered reports and stops the flush loop.
func (r *Reporter) Stop() {
	close(r.stopChannel)
	r.wg.Wait()
}

// Flushes on signal, on interval, and once more on shutdown.
func (r *Reporter) runFlushLoop() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.flushChannel:
			r.flush()
		case <-ticker.C:
			r.flush()
		case <-r.stopChannel:
			r.flush()
			return
		}
	}
}

// Builds the NDJSON payload and sends it to Elasticsearch.
func (r *Reporter) flush() {
	r.mutex.Lock()
	if len(r.buffer) == 0 {
		r.mutex.Unlock()
		return
	}
	reports := r.buffer
	r.buffer = make([]*models.CampaignReport, 0, r.threshold)
	r.mutex.Unlock()

	var payload bytes.Buffer
	for _, report := range reports {
		meta := map[string]map[string]string{
			"index": {
				"_index": r.indexName,
			},
		}
		metaLine, err := json.Marshal(meta)
		if err != nil {
			logger.Log.Error("Failed to marshal meta line", zap.Error(err))
			continue
		}
		payload.Write(metaLine)
		payload.WriteByte('\n')

		reportLine, err := json.Marshal(report)
		if err != nil {
			logger.Log.Error("Failed to marshal campaign report", zap.Error(err))
			continue
		}
		payload.Write(reportLine)
		payload.WriteByte('\n')
	}

	logger.Log.Info("Flushing campaign reports", zap.Int("count", len(reports)))
	metrics.ReportFlushes.Inc()

	if err := r.sendWithRetries(payload.Bytes()); err != nil {
		metrics.ReportFlushFailures.Inc()
		logger.Log.Error("Giving up on report flush",
			zap.Int("count", len(reports)), zap.Error(err))
		return
	}
	metrics.ReportsIndexed.Add(float64(len(reports)))
}

// Sends the bulk payload, retrying failed attempts with linear backoff.
func (r *Reporter) sendWithRetries(payload []byte) error {
	var lastErr error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
		lastErr = r.breaker.Execute(func() error {
			return r.sendBulkRequest(payload)
		})
		if lastErr == nil {
			return nil
		}
		if errors.Is(lastErr, circuitbreaker.ErrCircuitOpen) {
			// The sink is down hard; retrying inside this flush is pointless.
			return lastErr
		}
		logger.Log.Warn("Bulk report request failed",
			zap.Int("attempt", attempt+1), zap.Error(lastErr))
	}
	return lastErr
}

func (r *Reporter) sendBulkRequest(payload []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, r.elasticURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/x-ndjson")

	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("bulk request returned status %d", response.StatusCode)
	}
	return nil
}

package administrator

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"spamwatch/internal/pkg/logger"
	"spamwatch/internal/pkg/models"
)

// Starts the HTTP analysis service: accepts comment batches for
// asynchronous analysis and provides /health and /metrics endpoints.
func startAnalysisHTTP(admin *administrator, port string) {
	http.HandleFunc("/analyze", func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodPost {
			http.Error(writer, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		var batch models.AnalysisRequest
		if err := json.NewDecoder(request.Body).Decode(&batch); err != nil {
			http.Error(writer, "failed to decode request", http.StatusBadRequest)
			logger.Log.Warn("Failed to decode incoming batch", zap.Error(err))
			return
		}

		if err := admin.EnqueueBatch(request.Context(), batch); err != nil {
			http.Error(writer, "queue is full, try again later", http.StatusServiceUnavailable)
			logger.Log.Error("Failed to enqueue batch", zap.Error(err))
			return
		}
		writer.WriteHeader(http.StatusAccepted)
		writer.Write([]byte("Batch enqueued"))
	})

	// /metrics endpoint for Prometheus
	http.Handle("/metrics", promhttp.Handler())

	// /health endpoint
	http.HandleFunc("/health", func(writer http.ResponseWriter, request *http.Request) {
		health := struct {
			Status     string    `json:"status"`
			QueueDepth int       `json:"queue_depth"`
			Workers    int       `json:"workers"`
			Uptime     string    `json:"uptime"`
			StartTime  time.Time `json:"start_time"`
		}{
			Status:     "OK",
			QueueDepth: admin.QueueDepth(),
			Workers:    admin.WorkerCount(),
			Uptime:     time.Since(admin.StartTime()).String(),
			StartTime:  admin.StartTime(),
		}

		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode(health)
	})

	logger.Log.Info("HTTP analysis service listening", zap.String("address", ":"+port))

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		logger.Log.Fatal("Failed to start analysis service", zap.Error(err))
	}
}

package administrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"spamwatch/internal/pkg/models"
)

// dummyAdmin implements the Administrator interface minimally. It only
// implements EnqueueBatch (others are no-ops) so we can verify that the
// analysis endpoint forwards the decoded batch.
type dummyAdmin struct {
	enqueued chan models.AnalysisRequest
	full     bool
}

func (da *dummyAdmin) EnqueueBatch(ctx context.Context, request models.AnalysisRequest) error {
	if da.full {
		return errors.New("queue is full")
	}
	da.enqueued <- request
	return nil
}

func (da *dummyAdmin) StartProcessing(ctx context.Context) error { return nil }

func (da *dummyAdmin) StartService(port string) {}

func (da *dummyAdmin) Stop() {}

func (da *dummyAdmin) QueueDepth() int { return 0 }

func (da *dummyAdmin) WorkerCount() int { return 0 }

func (da *dummyAdmin) StartTime() time.Time { return time.Now() }

// Builds a mux with the same handler logic as production's
// startAnalysisHTTP, bound to the given admin.
func analyzeMux(da *dummyAdmin) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodPost {
			http.Error(writer, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		var batch models.AnalysisRequest
		if err := json.NewDecoder(request.Body).Decode(&batch); err != nil {
			http.Error(writer, "failed to decode request", http.StatusBadRequest)
			return
		}
		if err := da.EnqueueBatch(request.Context(), batch); err != nil {
			http.Error(writer, "queue is full, try again later", http.StatusServiceUnavailable)
			return
		}
		writer.WriteHeader(http.StatusAccepted)
		writer.Write([]byte("Batch enqueued"))
	})
	return mux
}

func TestAnalyzeHTTP(t *testing.T) {
	da := &dummyAdmin{enqueued: make(chan models.AnalysisRequest, 1)}

	server := httptest.NewServer(analyzeMux(da))
	defer server.Close()

	testBatch := models.AnalysisRequest{
		BatchID: "batch-7",
		Comments: []models.Comment{
			{ID: "c1", Text: "Slot gacor maxwin", Author: "a"},
			{ID: "c2", Text: "Slot gacor maxwin", Author: "b"},
		},
	}
	jsonData, err := json.Marshal(testBatch)
	if err != nil {
		t.Fatalf("Failed to marshal test batch: %v", err)
	}

	response, err := http.Post(server.URL+"/analyze", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		t.Fatalf("Failed to send POST request: %v", err)
	}
	defer response.Body.Close()
	body, _ := io.ReadAll(response.Body)
	if response.StatusCode != http.StatusAccepted {
		t.Errorf("Expected status 202, got %d, body: %s", response.StatusCode, string(body))
	}

	// Verify that dummyAdmin received the batch.
	select {
	case batch := <-da.enqueued:
		if batch.BatchID != testBatch.BatchID || len(batch.Comments) != 2 {
			t.Errorf("Enqueued batch mismatch. Got %+v, expected %+v", batch, testBatch)
		}
	case <-time.After(2 * time.Second):
		t.Error("Timeout waiting for enqueued batch")
	}
}

func TestAnalyzeHTTPBadRequest(t *testing.T) {
	da := &dummyAdmin{enqueued: make(chan models.AnalysisRequest, 1)}

	server := httptest.NewServer(analyzeMux(da))
	defer server.Close()

	response, err := http.Post(server.URL+"/analyze", "application/json", bytes.NewBufferString("{not json"))
	if err != nil {
		t.Fatalf("Failed to send POST request: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", response.StatusCode)
	}
}

func TestAnalyzeHTTPQueueFull(t *testing.T) {
	da := &dummyAdmin{enqueued: make(chan models.AnalysisRequest, 1), full: true}

	server := httptest.NewServer(analyzeMux(da))
	defer server.Close()

	jsonData, _ := json.Marshal(models.AnalysisRequest{BatchID: "batch-8"})
	response, err := http.Post(server.URL+"/analyze", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		t.Fatalf("Failed to send POST request: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", response.StatusCode)
	}
}

package dispatch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shipx-dispatch-service/config"
	"shipx-dispatch-service/workers/dispatch/shipx"
)

// Runs the whole workflow against a stub provider through the real HTTP
// client, checking that every endpoint sees the bearer token and that the
// calls arrive in sequence.
func TestWorkflow_EndToEndAgainstStubProvider(t *testing.T) {
	var requests []string
	pollCount := 0

	mux := http.NewServeMux()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer sandbox-token", r.Header.Get("Authorization"))
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))
		requests = append(requests, r.Method+" "+r.URL.Path)
		mux.ServeHTTP(w, r)
	}))
	defer server.Close()

	mux.HandleFunc("POST /organizations/77/shipments", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 101, "status": "created", "sender": {"id": 88}}`))
	})
	mux.HandleFunc("GET /shipments/101", func(w http.ResponseWriter, r *http.Request) {
		pollCount++
		status := "created"
		if pollCount >= 3 {
			status = "confirmed"
		}
		_, _ = w.Write([]byte(`{"id": 101, "status": "` + status + `", "tracking_number": "PL000101", "sender": {"id": 88}}`))
	})
	mux.HandleFunc("GET /shipments/101/label", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.4 label 101"))
	})
	mux.HandleFunc("POST /organizations/77/dispatch_orders", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 202, "status": "new"}`))
	})
	mux.HandleFunc("GET /dispatch_orders/202/printout", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.4 printout 202"))
	})

	client := shipx.NewClient(&config.ShipXApiConfig{
		BaseUri:        server.URL,
		ApiToken:       "sandbox-token",
		OrganizationId: "77",
	})
	outputDir := filepath.Join(t.TempDir(), "output")
	poll := &config.PollConfig{Interval: time.Millisecond, MaxAttempts: 10}
	workflow := NewWorkflow(zap.NewNop(), client, nil, outputDir, poll)

	result, err := workflow.ProcessShipment(context.Background(), ExampleShipmentRequest())

	require.NoError(t, err)
	assert.Equal(t, []string{
		"POST /organizations/77/shipments",
		"GET /shipments/101",
		"GET /shipments/101",
		"GET /shipments/101",
		"GET /shipments/101/label",
		"POST /organizations/77/dispatch_orders",
		"GET /dispatch_orders/202/printout",
	}, requests)
	assert.Equal(t, int64(101), result.ShipmentID)
	assert.Equal(t, int64(202), result.DispatchOrderID)
	assert.Equal(t, filepath.Join(outputDir, "101_label.pdf"), result.LabelPath)
	assert.Equal(t, filepath.Join(outputDir, "202_printout.pdf"), result.PrintoutPath)
}

package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/26ideas-youngfounders/scoreboard-api/internal/scoreboard"
	"github.com/26ideas-youngfounders/scoreboard-api/internal/scores"
	"github.com/26ideas-youngfounders/scoreboard-api/internal/sheets"
)

// Retriever is the coordinator the edge delegates to.
type Retriever interface {
	Scores(ctx context.Context) (scoreboard.Result, error)
}

// Handler serves the scoreboard read endpoint.
type Handler struct {
	svc    Retriever
	maxAge time.Duration
	now    func() time.Time
}

// NewHandler creates a Handler. maxAge feeds the Cache-Control header on
// success responses and should match the cache TTL, so intermediate HTTP
// caches can answer without re-invoking the service.
func NewHandler(svc Retriever, maxAge time.Duration) *Handler {
	return &Handler{svc: svc, maxAge: maxAge, now: time.Now}
}

type successEnvelope struct {
	Success   bool            `json:"success"`
	Data      []scores.Record `json:"data"`
	Cached    bool            `json:"cached"`
	Stale     bool            `json:"stale,omitempty"`
	Timestamp string          `json:"timestamp"`
	Count     int             `json:"count"`
}

type errorEnvelope struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w.Header())

	switch r.Method {
	case http.MethodOptions:
		// CORS pre-flight: headers only, no body, no business logic.
		w.WriteHeader(http.StatusNoContent)
		return
	case http.MethodGet:
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	result, err := h.svc.Scores(r.Context())
	if err != nil {
		status := statusFor(err)
		if status == http.StatusServiceUnavailable {
			w.Header().Set("Retry-After", "30")
		}
		log.Printf("scoreboard fetch failed: %v", err)
		writeJSON(w, status, errorEnvelope{
			Error:     err.Error(),
			Timestamp: h.timestamp(),
		})
		return
	}

	data := result.Records
	if data == nil {
		data = []scores.Record{}
	}
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.maxAge.Seconds())))
	writeJSON(w, http.StatusOK, successEnvelope{
		Success:   true,
		Data:      data,
		Cached:    result.Cached,
		Stale:     result.Stale,
		Timestamp: h.timestamp(),
		Count:     len(data),
	})
}

func (h *Handler) timestamp() string {
	return h.now().UTC().Format(time.RFC3339)
}

// statusFor maps classified failures to HTTP statuses: configuration
// problems are this service's fault (500), permission and addressing
// problems sit with the upstream resource (502), and transient conditions
// are retryable (503).
func statusFor(err error) int {
	if sheets.IsConfigError(err) {
		return http.StatusInternalServerError
	}
	if ue, ok := sheets.AsUpstreamError(err); ok {
		switch ue.Kind {
		case sheets.KindForbidden, sheets.KindNotFound:
			return http.StatusBadGateway
		case sheets.KindTransient:
			return http.StatusServiceUnavailable
		}
	}
	return http.StatusInternalServerError
}

func setCORSHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
	h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("writing response: %v", err)
	}
}

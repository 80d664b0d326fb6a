package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"
)

func testClient(serverURL string) *Client {
	return &Client{
		baseURL:       serverURL,
		spreadsheetID: "sheet-id",
		sheetRange:    "Sheet1!A:D",
		apiKey:        "test-key",
		client:        &http.Client{Timeout: time.Second},
	}
}

func TestClient_FetchRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if !strings.Contains(r.URL.Path, "sheet-id") {
			t.Errorf("path %q missing spreadsheet ID", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Error("missing or wrong key query parameter")
		}
		w.Write([]byte(`{"range":"Sheet1!A1:D3","values":[["Team","Idea"],["Alpha","Idea A"]]}`))
	}))
	defer server.Close()

	rows, err := testClient(server.URL).FetchRows(context.Background())
	if err != nil {
		t.Fatalf("FetchRows error: %v", err)
	}
	want := [][]string{{"Team", "Idea"}, {"Alpha", "Idea A"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestClient_EmptyValues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"range":"Sheet1!A:D"}`))
	}))
	defer server.Close()

	rows, err := testClient(server.URL).FetchRows(context.Background())
	if err != nil {
		t.Fatalf("FetchRows error: %v", err)
	}
	if rows == nil {
		t.Fatal("rows = nil, want empty slice")
	}
	if len(rows) != 0 {
		t.Errorf("rows = %v, want empty", rows)
	}
}

func TestClient_NullCellsDecodeEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"values":[["Team","Idea"],["Alpha",null]]}`))
	}))
	defer server.Close()

	rows, err := testClient(server.URL).FetchRows(context.Background())
	if err != nil {
		t.Fatalf("FetchRows error: %v", err)
	}
	if rows[1][1] != "" {
		t.Errorf("null cell = %q, want empty string", rows[1][1])
	}
}

func TestClient_Forbidden(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403}}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).FetchRows(context.Background())
	ue, ok := AsUpstreamError(err)
	if !ok {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
	if ue.Kind != KindForbidden {
		t.Errorf("Kind = %q, want %q", ue.Kind, KindForbidden)
	}
	if !strings.Contains(ue.Message, "sharing") {
		t.Errorf("message %q should name the sharing remediation", ue.Message)
	}
}

func TestClient_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := testClient(server.URL).FetchRows(context.Background())
	ue, ok := AsUpstreamError(err)
	if !ok {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
	if ue.Kind != KindNotFound {
		t.Errorf("Kind = %q, want %q", ue.Kind, KindNotFound)
	}
}

func TestClient_OtherStatusesAreTransient(t *testing.T) {
	for _, status := range []int{429, 500, 502, 503} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := testClient(server.URL).FetchRows(context.Background())
		server.Close()

		ue, ok := AsUpstreamError(err)
		if !ok {
			t.Fatalf("status %d: error = %v, want *UpstreamError", status, err)
		}
		if ue.Kind != KindTransient {
			t.Errorf("status %d: Kind = %q, want %q", status, ue.Kind, KindTransient)
		}
		if ue.Status != status {
			t.Errorf("Status = %d, want %d", ue.Status, status)
		}
	}
}

func TestClient_SingleAttempt(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	if _, err := testClient(server.URL).FetchRows(context.Background()); err == nil {
		t.Fatal("expected error on 429")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (no internal retry)", attempts)
	}
}

func TestClient_MissingAPIKey(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	c := testClient(server.URL)
	c.apiKey = ""

	_, err := c.FetchRows(context.Background())
	if !IsConfigError(err) {
		t.Fatalf("error = %v, want *ConfigError", err)
	}
	if !strings.Contains(err.Error(), "GOOGLE_SHEETS_API_KEY") {
		t.Errorf("message %q should name the missing credential", err.Error())
	}
	if requests != 0 {
		t.Errorf("requests = %d, want 0 (no call without a credential)", requests)
	}
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	_, err := testClient(server.URL).FetchRows(context.Background())
	ue, ok := AsUpstreamError(err)
	if !ok {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
	if ue.Kind != KindTransient {
		t.Errorf("Kind = %q, want %q", ue.Kind, KindTransient)
	}
}

func TestClient_MalformedBodyIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).FetchRows(context.Background())
	ue, ok := AsUpstreamError(err)
	if !ok {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
	if ue.Kind != KindTransient {
		t.Errorf("Kind = %q, want %q", ue.Kind, KindTransient)
	}
}

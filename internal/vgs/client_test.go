package vgs

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newTestClient builds a client pointed at a test server
func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	cfg := DefaultConfig()
	cfg.ProxyURL = serverURL

	client, err := New(cfg)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	return client
}

// echoProxy returns a test server that echoes the posted JSON body unchanged,
// like a proxy whose route matched no aliasing rules
func echoProxy(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("proxy failed to read body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}))
}

// TestTokenizeRecordsBarePassthrough tests that a bare batch passes through
// unchanged when the upstream echoes it
func TestTokenizeRecordsBarePassthrough(t *testing.T) {
	server := echoProxy(t)
	defer server.Close()

	client := newTestClient(t, server.URL)

	records := []Record{
		{"email": "a@example.com", "age": float64(30)},
		{"email": "b@example.com", "age": float64(41)},
	}

	out, err := client.TokenizeRecords(records, BareShape())
	if err != nil {
		t.Fatalf("TokenizeRecords() unexpected error: %v", err)
	}

	if len(out) != len(records) {
		t.Fatalf("TokenizeRecords() returned %d records, want %d", len(out), len(records))
	}
	for i := range records {
		if out[i]["email"] != records[i]["email"] {
			t.Errorf("record %d email = %v, want %v", i, out[i]["email"], records[i]["email"])
		}
		if out[i]["age"] != records[i]["age"] {
			t.Errorf("record %d age = %v, want %v", i, out[i]["age"], records[i]["age"])
		}
	}
}

// TestTokenizeRecordsEmptyRoundTrip tests that an empty batch round-trips
// against an echoing proxy
func TestTokenizeRecordsEmptyRoundTrip(t *testing.T) {
	server := echoProxy(t)
	defer server.Close()

	client := newTestClient(t, server.URL)

	out, err := client.TokenizeRecords([]Record{}, BareShape())
	if err != nil {
		t.Fatalf("TokenizeRecords() unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("TokenizeRecords([]) returned %d records, want 0", len(out))
	}
}

// TestTokenizeRecordsKeyedMode tests request wrapping and response unwrapping
// under a batch key
func TestTokenizeRecordsKeyedMode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("proxy received non-JSON body: %v", err)
		}
		if _, ok := payload["records"]; !ok {
			t.Errorf("proxy received payload without \"records\" key: %v", payload)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	out, err := client.TokenizeRecords([]Record{{"name": "alice"}}, KeyedShape("records"))
	if err != nil {
		t.Fatalf("TokenizeRecords() unexpected error: %v", err)
	}
	if len(out) != 1 || out[0]["name"] != "alice" {
		t.Errorf("TokenizeRecords() = %v, want the echoed record", out)
	}
}

// TestTokenizeRecordsWrongKey tests that a keyed response under a different
// key fails with a shape error
func TestTokenizeRecordsWrongKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"x": [{"name": "alice"}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.TokenizeRecords([]Record{{"name": "alice"}}, KeyedShape("records"))
	if err == nil {
		t.Fatal("TokenizeRecords() expected error for wrong response key, got nil")
	}
	if !errors.Is(err, ErrShape) {
		t.Errorf("TokenizeRecords() error = %v, want ErrShape", err)
	}
}

// TestTokenizeRecordsNotAList tests that a non-array response fails with a
// shape error in bare mode
func TestTokenizeRecordsNotAList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "done"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.TokenizeRecords([]Record{{"name": "alice"}}, BareShape())
	if err == nil {
		t.Fatal("TokenizeRecords() expected error for object response, got nil")
	}
	if !errors.Is(err, ErrShape) {
		t.Errorf("TokenizeRecords() error = %v, want ErrShape", err)
	}
}

// TestTokenizeJSONInvalidResponse tests that a non-JSON body fails with a
// decode error carrying a preview of the raw body
func TestTokenizeJSONInvalidResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>gateway error page</html>"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.TokenizeJSON(map[string]any{"a": 1})
	if err == nil {
		t.Fatal("TokenizeJSON() expected error for non-JSON response, got nil")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("TokenizeJSON() error = %v, want ErrDecode", err)
	}
	if !strings.Contains(err.Error(), "<html>gateway error page") {
		t.Errorf("TokenizeJSON() error %q should contain a prefix of the raw body", err.Error())
	}
}

// TestTokenizeJSONLongBodyPreviewTruncated tests that only the first 200
// bytes of a non-JSON body end up in the error message
func TestTokenizeJSONLongBodyPreviewTruncated(t *testing.T) {
	longBody := strings.Repeat("x", 500)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(longBody))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.TokenizeJSON(nil)
	if err == nil {
		t.Fatal("TokenizeJSON() expected error, got nil")
	}
	if !strings.Contains(err.Error(), strings.Repeat("x", rawBodyPreview)) {
		t.Errorf("TokenizeJSON() error should contain the %d-byte body prefix", rawBodyPreview)
	}
	if strings.Contains(err.Error(), strings.Repeat("x", rawBodyPreview+1)) {
		t.Error("TokenizeJSON() error contains more than the body preview limit")
	}
}

// TestTokenizeJSONUpstreamStatusError tests that a non-2xx proxy status fails
// with a network error
func TestTokenizeJSONUpstreamStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "route not configured", http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.TokenizeJSON([]Record{})
	if err == nil {
		t.Fatal("TokenizeJSON() expected error for 502 response, got nil")
	}
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("TokenizeJSON() error = %v, want ErrNetwork", err)
	}
}

// TestTokenizeJSONConnectionRefused tests that an unreachable proxy fails
// with a network error
func TestTokenizeJSONConnectionRefused(t *testing.T) {
	// Server closed before use so the port refuses connections
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := newTestClient(t, url)

	_, err := client.TokenizeJSON([]Record{})
	if err == nil {
		t.Fatal("TokenizeJSON() expected error for unreachable proxy, got nil")
	}
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("TokenizeJSON() error = %v, want ErrNetwork", err)
	}
}

// TestClientSendsConfiguredHeaders tests Content-Type and extra header merging
func TestClientSendsConfiguredHeaders(t *testing.T) {
	var gotContentType, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.ProxyURL = server.URL
	cfg.Headers = map[string]string{"Authorization": "Basic dXNlcjpwYXNz"}

	client, err := New(cfg)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	if _, err := client.TokenizeRecords([]Record{}, BareShape()); err != nil {
		t.Fatalf("TokenizeRecords() unexpected error: %v", err)
	}

	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotAuth != "Basic dXNlcjpwYXNz" {
		t.Errorf("Authorization = %q, want configured header", gotAuth)
	}
}

// TestFromEnvConstructsWorkingClient tests env-driven construction end to end
func TestFromEnvConstructsWorkingClient(t *testing.T) {
	server := echoProxy(t)
	defer server.Close()

	clearEnv(t)
	t.Setenv(EnvProxyURL, server.URL)

	client, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() unexpected error: %v", err)
	}

	out, err := client.TokenizeRecords([]Record{{"ssn": "123-45-6789"}}, BareShape())
	if err != nil {
		t.Fatalf("TokenizeRecords() unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Errorf("TokenizeRecords() returned %d records, want 1", len(out))
	}
}

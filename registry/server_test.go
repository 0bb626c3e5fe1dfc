package registry

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestServeStream(t *testing.T) {
	reg := newTestRegistry(t)

	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"gridstack_float","arguments":{"val":true}}}`,
		`not json`,
		`{"jsonrpc":"2.0","id":3,"method":"resources/read","params":{"uri":"nonexistent://x"}}`,
	}, "\n")

	var out bytes.Buffer
	if err := ServeStream(context.Background(), reg, strings.NewReader(in), &out); err != nil {
		t.Fatalf("ServeStream() error = %v", err)
	}

	var responses []map[string]any
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var resp map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response line %q: %v", scanner.Text(), err)
		}
		responses = append(responses, resp)
	}

	if len(responses) != 4 {
		t.Fatalf("expected 4 responses, got %d: %s", len(responses), out.String())
	}
	if responses[0]["id"] != float64(1) {
		t.Errorf("first response id = %v", responses[0]["id"])
	}

	result := responses[1]["result"].(map[string]any)
	content := result["content"].([]any)[0].(map[string]any)
	if content["type"] != "text" || !strings.Contains(content["text"].(string), "grid.float(true);") {
		t.Errorf("unexpected tool content: %v", content)
	}

	parseErr := responses[2]["error"].(map[string]any)
	if parseErr["code"] != float64(ErrCodeParseError) {
		t.Errorf("parse error code = %v", parseErr["code"])
	}

	readErr := responses[3]["error"].(map[string]any)
	if readErr["code"] != float64(ErrCodeResourceNotFound) {
		t.Errorf("resource error code = %v", readErr["code"])
	}
}

func TestServeStream_ContextCancelled(t *testing.T) {
	reg := newTestRegistry(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := ServeStream(ctx, reg, strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n"), &out)
	if err != context.Canceled {
		t.Fatalf("ServeStream() error = %v, want context.Canceled", err)
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestServeStream_CancelWhileBlocked(t *testing.T) {
	reg := newTestRegistry(t)
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	var out bytes.Buffer
	go func() {
		done <- ServeStream(ctx, reg, pr, &out)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("ServeStream() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ServeStream did not return while blocked on input")
	}
}

func TestServeHTTP(t *testing.T) {
	reg := newTestRegistry(t)
	handler := ServeHTTP(reg)

	body := `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp struct {
		Result struct {
			Tools []map[string]any `json:"tools"`
		} `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Result.Tools) != 30 {
		t.Errorf("expected 30 tools, got %d", len(resp.Result.Tools))
	}
}

func TestServeHTTP_Notification(t *testing.T) {
	handler := ServeHTTP(newTestRegistry(t))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"jsonrpc":"2.0","method":"notifications/initialized"}`))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted || w.Body.Len() != 0 {
		t.Fatalf("status = %d, body = %q", w.Code, w.Body.String())
	}
}

func TestServeHTTP_MethodNotAllowed(t *testing.T) {
	handler := ServeHTTP(newTestRegistry(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestServeHTTP_InvalidJSON(t *testing.T) {
	handler := ServeHTTP(newTestRegistry(t))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("invalid json"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var resp MCPResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != ErrCodeParseError {
		t.Errorf("expected parse error, got %+v", resp.Error)
	}
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/yl-doc/gearadvisor/domain"
	"github.com/yl-doc/gearadvisor/gateway"
	"github.com/yl-doc/gearadvisor/intent"
	"github.com/yl-doc/gearadvisor/prompt"
	"github.com/yl-doc/gearadvisor/service"
	"github.com/yl-doc/gearadvisor/store"
)

type emptyProfiles struct{}

func (emptyProfiles) Lookup(string) map[string]string { return map[string]string{} }

func newTestServer(t *testing.T) (*echo.Echo, *store.MemoryStore) {
	t.Helper()

	engine, err := intent.NewEngine(context.Background(), intent.DefaultPolicy)
	if err != nil {
		t.Fatalf("failed to create intent engine: %v", err)
	}

	st := store.NewMemoryStore(0)
	svc := service.New(st, gateway.NewMockClient(), emptyProfiles{}, intent.NewClassifier(engine), prompt.NewSet(""), 0)

	e := echo.New()
	NewHandler(svc, st).RegisterRoutes(e)
	return e, st
}

func postChat(t *testing.T, e *echo.Echo, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// dataFrames splits an SSE body into its decoded events.
func dataFrames(t *testing.T, body string) []domain.OutputEvent {
	t.Helper()

	var events []domain.OutputEvent
	for _, line := range strings.Split(body, "\n") {
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var ev domain.OutputEvent
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev); err != nil {
			t.Fatalf("bad SSE frame %q: %v", line, err)
		}
		events = append(events, ev)
	}
	return events
}

func TestChatRejectsInvalidRequests(t *testing.T) {
	e, _ := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing user_id", `{"message":"hi"}`},
		{"blank message", `{"user_id":"u1","message":"   "}`},
		{"malformed body", `{"user_id":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postChat(t, e, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestChatStreamsTextEvent(t *testing.T) {
	e, _ := newTestServer(t)

	rec := postChat(t, e, `{"user_id":"u1","message":"今天练什么好"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("expected event stream content type, got %q", ct)
	}

	sessionID := rec.Header().Get("X-Session-Id")
	if sessionID == "" {
		t.Fatal("expected a generated session id header")
	}

	events := dataFrames(t, rec.Body.String())
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Type != domain.EventText {
		t.Fatalf("expected text event, got %q", events[0].Type)
	}
	if events[0].SessionID != sessionID {
		t.Fatalf("event session %q does not match header %q", events[0].SessionID, sessionID)
	}
}

func TestChatCompareStreamsChainedEvents(t *testing.T) {
	e, _ := newTestServer(t)

	rec := postChat(t, e, `{"user_id":"u1","message":"帮我对比一下这两双鞋","session_id":"sess-1"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("X-Session-Id"); got != "sess-1" {
		t.Fatalf("expected caller's session id echoed, got %q", got)
	}

	events := dataFrames(t, rec.Body.String())
	if len(events) != 2 {
		t.Fatalf("expected 2 chained events, got %d", len(events))
	}
	if events[0].Type != domain.EventProductCompare {
		t.Fatalf("expected product_compare first, got %q", events[0].Type)
	}
	if events[1].Type != domain.EventText {
		t.Fatalf("expected text conclusion second, got %q", events[1].Type)
	}
	for i, ev := range events {
		if ev.SessionID != "sess-1" {
			t.Fatalf("event %d has session %q", i, ev.SessionID)
		}
	}
}

func TestSessionHistoryEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	postChat(t, e, `{"user_id":"u1","message":"你好","session_id":"sess-h"}`)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/sess-h/history", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		SessionID string        `json:"session_id"`
		Turns     []domain.Turn `json:"turns"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.SessionID != "sess-h" {
		t.Fatalf("unexpected session id %q", resp.SessionID)
	}
	if len(resp.Turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(resp.Turns))
	}
	if resp.Turns[0].Role != domain.RoleUser || resp.Turns[1].Role != domain.RoleAssistant {
		t.Fatalf("unexpected roles: %q, %q", resp.Turns[0].Role, resp.Turns[1].Role)
	}
}

func TestHistoryOfUnknownSessionIsEmpty(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/never-seen/history", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"turns":[]`) {
		t.Fatalf("expected empty turn list, got %s", rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

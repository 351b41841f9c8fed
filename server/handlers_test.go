package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	agentsx "github.com/promotor-ai/promotor/agent/agents"
	cachex "github.com/promotor-ai/promotor/agent/cache"
	contractx "github.com/promotor-ai/promotor/agent/contract"
	graphx "github.com/promotor-ai/promotor/agent/graph"
	historyx "github.com/promotor-ai/promotor/agent/history"
	"github.com/promotor-ai/promotor/agent/orchestrator"
	providerx "github.com/promotor-ai/promotor/agent/provider"
	statex "github.com/promotor-ai/promotor/agent/state"
)

type staticCompleter struct {
	reply string
}

func (s staticCompleter) Complete(context.Context, string, []statex.Message) (string, error) {
	return s.reply, nil
}

func newTestServer() *Server {
	registry := agentsx.NewRegistry(agentsx.Deps{
		Full:     staticCompleter{reply: "handler test summary"},
		Provider: providerx.NewMockGateway(),
		Log:      zerolog.Nop(),
	})
	engine := graphx.NewEngine(registry, zerolog.Nop())
	svc := orchestrator.NewService(engine, cachex.NewMemoryStore(0), historyx.NewMemoryStore(), zerolog.Nop())
	return New(Config{Addr: ":0"}, svc, zerolog.Nop())
}

func TestChatEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer()
	body := `{"message":"what promotions is innisfree running on each channel","brand_id":"brand-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp contractx.ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message == "" || resp.ConversationID == "" {
		t.Fatalf("incomplete response: %+v", resp)
	}
	if len(resp.DivisionsUsed) != 1 || resp.DivisionsUsed[0] != "market_intelligence" {
		t.Fatalf("DivisionsUsed = %v", resp.DivisionsUsed)
	}
}

func TestChatEndpointRejectsBlankMessage(t *testing.T) {
	t.Parallel()

	srv := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestChatStreamEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer()
	body := `{"message":"analyze channel performance for the spring campaign period"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat/stream", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Fatalf("content type = %s", ct)
	}

	payload := rec.Body.String()
	if !strings.Contains(payload, `"type":"division_start"`) {
		t.Fatalf("missing division_start event: %s", payload)
	}
	if !strings.Contains(payload, `"type":"complete"`) {
		t.Fatalf("missing complete event: %s", payload)
	}
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	srv.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	srv.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

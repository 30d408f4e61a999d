package anthropicapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bidkiller/dce-analyzer/internal/llm"
)

func messagesReply(text string) string {
	b, _ := json.Marshal(map[string]any{
		"content": []map[string]any{{"type": "text", "text": text}},
	})
	return string(b)
}

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Model: "test-model"}, nil)
}

func chunkReq() llm.ChunkRequest {
	return llm.ChunkRequest{
		DocumentName: "cctp.pdf",
		Section:      "Page 1",
		ChunkIndex:   0,
		Text:         "Alimentation en eau froide.",
		AllowedLots:  []string{"Plomberie", "CVC"},
	}
}

func TestAnalyzeChunk_OK(t *testing.T) {
	var gotPath, gotKey, gotVersion string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		_, _ = w.Write([]byte(messagesReply("Voici le résultat :\n```json\n{\"findings\":[{\"lot\":\"Plomberie\",\"title\":\"EFS\",\"content\":\"Réseau eau froide\"}],\"summary\":\"ok\"}\n```")))
	})

	resp, raw, err := c.AnalyzeChunk(context.Background(), chunkReq())
	if err != nil {
		t.Fatalf("AnalyzeChunk: %v", err)
	}
	if gotPath != "/v1/messages" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "test-key" || gotVersion != "2023-06-01" {
		t.Errorf("auth headers = (%q, %q)", gotKey, gotVersion)
	}
	if len(resp.Findings) != 1 || resp.Findings[0].Lot != "Plomberie" {
		t.Errorf("findings = %+v", resp.Findings)
	}
	if len(raw) == 0 {
		t.Error("raw JSON not returned")
	}
}

func TestAnalyzeChunk_RateLimitIsTransient(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	_, _, err := c.AnalyzeChunk(context.Background(), chunkReq())
	if err == nil || !llm.IsTransient(err) {
		t.Fatalf("got %v, want transient error", err)
	}
}

func TestAnalyzeChunk_BadRequestIsPermanent(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	_, _, err := c.AnalyzeChunk(context.Background(), chunkReq())
	if err == nil || llm.IsTransient(err) {
		t.Fatalf("got %v, want permanent error", err)
	}
}

func TestAnalyzeChunk_SchemaViolationIsPermanent(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		// lot outside the allowed enum
		_, _ = w.Write([]byte(messagesReply(`{"findings":[{"lot":"Jardinage lunaire","title":"t","content":"c"}]}`)))
	})
	_, _, err := c.AnalyzeChunk(context.Background(), chunkReq())
	if err == nil || llm.IsTransient(err) {
		t.Fatalf("got %v, want permanent error", err)
	}
}

func TestAnalyzeChunk_ProseOnlyIsPermanent(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(messagesReply("désolé, je ne peux pas analyser ce document")))
	})
	_, _, err := c.AnalyzeChunk(context.Background(), chunkReq())
	if err == nil || llm.IsTransient(err) {
		t.Fatalf("got %v, want permanent error", err)
	}
}

func TestExtractGeneralInfo_OK(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(messagesReply(`{"project_name":"Gymnase municipal","budget_ht":350000,"deadline":"2026-10-01"}`)))
	})
	info, err := c.ExtractGeneralInfo(context.Background(), "cctp.pdf", "PROJET: Gymnase municipal")
	if err != nil {
		t.Fatalf("ExtractGeneralInfo: %v", err)
	}
	if info.ProjectName != "Gymnase municipal" || info.BudgetHT == nil || *info.BudgetHT != 350000 {
		t.Errorf("info = %+v", info)
	}
}

package anthropicapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bidkiller/dce-analyzer/internal/llm"
)

const (
	messagesPath     = "/v1/messages"
	anthropicVersion = "2023-06-01"

	// generalInfoTextCap bounds the opening-portion text sent to the
	// project-metadata pass.
	generalInfoTextCap = 150000
)

// AnalyzeChunk implements llm.Analyzer. It issues one Messages API call for
// the chunk and validates the JSON reply against the findings schema before
// accepting it.
func (c *Client) AnalyzeChunk(ctx context.Context, req llm.ChunkRequest) (llm.ChunkResponse, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.chunk.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"chunk_index", req.ChunkIndex,
		"section", req.Section,
		"text_len", len(req.Text),
		"allowed_lots", len(req.AllowedLots),
	)

	schema := llm.BuildChunkJSONSchema(req.AllowedLots)
	prompt := buildChunkPrompt(req, schema)

	text, err := c.complete(ctx, prompt)
	if err != nil {
		c.log.Error("llm.chunk.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ChunkResponse{}, nil, err
	}

	raw, err := llm.ExtractJSONBlock(text)
	if err != nil {
		c.log.Error("llm.chunk.no_json",
			"req_id", rid, "raw_bytes", len(text),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ChunkResponse{}, []byte(text), llm.NewPermanentError(0, err)
	}

	if err := llm.ValidateJSONAgainstSchema(schema, raw); err != nil {
		c.log.Error("llm.chunk.schema_validation_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ChunkResponse{}, raw, llm.NewPermanentError(0, fmt.Errorf("schema validation failed: %w", err))
	}

	var out llm.ChunkResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		c.log.Error("llm.chunk.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ChunkResponse{}, raw, llm.NewPermanentError(0, fmt.Errorf("unmarshal findings: %w", err))
	}

	c.log.Info("llm.chunk.ok",
		"req_id", rid,
		"chunk_index", req.ChunkIndex,
		"findings", len(out.Findings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, raw, nil
}

// ExtractGeneralInfo implements llm.Analyzer.
func (c *Client) ExtractGeneralInfo(ctx context.Context, documentName, text string) (llm.GeneralInfo, error) {
	rid := uuid.New().String()
	start := time.Now()

	if len(text) > generalInfoTextCap {
		text = text[:generalInfoTextCap]
	}

	schema := llm.BuildGeneralInfoJSONSchema()
	prompt := buildGeneralInfoPrompt(documentName, text, schema)

	reply, err := c.complete(ctx, prompt)
	if err != nil {
		c.log.Error("llm.general.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.GeneralInfo{}, err
	}

	raw, err := llm.ExtractJSONBlock(reply)
	if err != nil {
		return llm.GeneralInfo{}, llm.NewPermanentError(0, err)
	}
	if err := llm.ValidateJSONAgainstSchema(schema, raw); err != nil {
		return llm.GeneralInfo{}, llm.NewPermanentError(0, fmt.Errorf("schema validation failed: %w", err))
	}

	var out llm.GeneralInfo
	if err := json.Unmarshal(raw, &out); err != nil {
		return llm.GeneralInfo{}, llm.NewPermanentError(0, fmt.Errorf("unmarshal general info: %w", err))
	}

	c.log.Info("llm.general.ok",
		"req_id", rid,
		"project", out.ProjectName,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// complete sends one user message and returns the concatenated text blocks
// of the reply.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"model":       c.cfg.Model,
		"max_tokens":  c.cfg.MaxTokens,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "user", "content": prompt},
		},
	}

	raw, status, err := c.post(ctx, strings.TrimRight(c.cfg.BaseURL, "/")+messagesPath, body)
	if err != nil {
		if status > 0 {
			return "", llm.ClassifyStatus(status, err)
		}
		return "", llm.NewTransientError(0, err)
	}

	var msg struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		return "", llm.NewPermanentError(status, fmt.Errorf("decode messages response: %w", err))
	}
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", llm.NewPermanentError(status, fmt.Errorf("no text content in response"))
	}
	return b.String(), nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, int, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("x-api-key", c.cfg.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("anthropic http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.log.Warn("anthropic response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, fmt.Errorf("anthropic status %d: %s", resp.StatusCode, truncateBody(raw))
	}
	return raw, resp.StatusCode, nil
}

func truncateBody(raw []byte) string {
	const max = 512
	if len(raw) > max {
		return string(raw[:max]) + "..."
	}
	return string(raw)
}

func buildChunkPrompt(req llm.ChunkRequest, schema map[string]any) string {
	parts := []string{
		"You are a construction tender analyst reviewing a DCE (Dossier de Consultation des Entreprises).",
		"Extract every technical requirement, constraint and work-package detail from the excerpt below as structured findings.",
		"Attribute each finding to the construction lot it belongs to.",
		"Respond with ONLY JSON matching this schema:",
		mustJSON(schema),
		"",
		"Document: " + req.DocumentName,
		"Section: " + req.Section,
		"",
		"Excerpt:",
		req.Text,
	}
	return strings.Join(parts, "\n")
}

func buildGeneralInfoPrompt(documentName, text string, schema map[string]any) string {
	parts := []string{
		"You are a construction tender analyst. From the opening of this DCE, extract the project metadata:",
		"project name, client (maître d'ouvrage), budget excluding tax in euros, and submission deadline.",
		"Omit any field that is not stated. Respond with ONLY JSON matching this schema:",
		mustJSON(schema),
		"",
		"Document: " + documentName,
		"",
		"Text:",
		text,
	}
	return strings.Join(parts, "\n")
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

package llm

import (
	"context"
	"errors"
	"testing"
)

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "bare object", in: `{"findings":[]}`, want: `{"findings":[]}`},
		{name: "fenced", in: "```json\n{\"findings\":[]}\n```", want: `{"findings":[]}`},
		{name: "fence without language", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "prose around object", in: "Voici le résultat :\n{\"a\":1}\nmerci", want: `{"a":1}`},
		{name: "no object", in: "désolé, aucun résultat", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONBlock(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("got %q, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractJSONBlock: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChunkSchemaValidation(t *testing.T) {
	schema := BuildChunkJSONSchema([]string{"Gros œuvre", "Peinture"})

	valid := []byte(`{"findings":[{"lot":"Peinture","title":"Finitions","content":"Deux couches.","confidence":0.9}],"summary":"ok"}`)
	if err := ValidateJSONAgainstSchema(schema, valid); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	invalid := map[string][]byte{
		"missing findings":        []byte(`{"summary":"ok"}`),
		"lot not in enum":         []byte(`{"findings":[{"lot":"Plomberie spatiale","title":"t","content":"c"}]}`),
		"empty title":             []byte(`{"findings":[{"lot":"Peinture","title":"","content":"c"}]}`),
		"confidence out of range": []byte(`{"findings":[{"lot":"Peinture","title":"t","content":"c","confidence":1.5}]}`),
		"unknown property":        []byte(`{"findings":[],"extra":true}`),
	}
	for name, payload := range invalid {
		if err := ValidateJSONAgainstSchema(schema, payload); err == nil {
			t.Errorf("%s: accepted, want rejection", name)
		}
	}
}

func TestGeneralInfoSchemaValidation(t *testing.T) {
	schema := BuildGeneralInfoJSONSchema()
	if err := ValidateJSONAgainstSchema(schema, []byte(`{"project_name":"Gymnase municipal","budget_ht":1200000,"deadline":"2026-10-01"}`)); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
	if err := ValidateJSONAgainstSchema(schema, []byte(`{"deadline":"le 1er octobre"}`)); err == nil {
		t.Error("free-form deadline accepted, want rejection")
	}
}

func TestIsTransient(t *testing.T) {
	if !IsTransient(NewTransientError(429, errors.New("rate limited"))) {
		t.Error("429 should be transient")
	}
	if IsTransient(NewPermanentError(400, errors.New("bad request"))) {
		t.Error("400 should not be transient")
	}
	if !IsTransient(context.DeadlineExceeded) {
		t.Error("deadline expiry should be transient")
	}
	if IsTransient(errors.New("schema mismatch")) {
		t.Error("plain errors should not be transient")
	}
}

func TestClassifyStatus(t *testing.T) {
	for _, status := range []int{408, 429, 500, 503} {
		if !ClassifyStatus(status, errors.New("x")).Transient {
			t.Errorf("status %d should be transient", status)
		}
	}
	for _, status := range []int{400, 401, 403, 404, 422} {
		if ClassifyStatus(status, errors.New("x")).Transient {
			t.Errorf("status %d should be permanent", status)
		}
	}
}

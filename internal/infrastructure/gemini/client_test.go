package gemini

import (
	"context"
	"testing"

	"github.com/gdugdh24/healthlog-backend/internal/config"
	"github.com/google/generative-ai-go/genai"
)

func TestCandidateText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{name: "nil response", resp: nil, want: ""},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, want: ""},
		{
			name: "joins text parts",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Text("<p>Great "), genai.Text("week</p>")}},
			}}},
			want: "<p>Great week</p>",
		},
		{
			name: "strips html fence",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Text("```html\n<h2>Summary</h2>\n```")}},
			}}},
			want: "<h2>Summary</h2>",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := candidateText(testCase.resp); got != testCase.want {
				t.Fatalf("expected %q, got %q", testCase.want, got)
			}
		})
	}
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	if _, err := NewGeminiClient(context.Background(), &config.GeminiConfig{Model: "gemini-1.5-pro"}); err == nil {
		t.Fatal("expected error without api key")
	}
}

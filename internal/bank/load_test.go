package bank

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBank = `[
  {
    "type": "single",
    "question": "Which service provides OCR?",
    "topic": "Computer Vision",
    "options": ["Azure AI Vision", "Azure AI Language"],
    "answer": [0],
    "learn_link": "https://learn.example.com/vision"
  },
  {
    "type": "multi",
    "question": "Which are principles of responsible AI?",
    "topic": "Responsible AI",
    "options": ["Fairness", "Profitability", "Transparency"],
    "answer": [0, 2],
    "learn_link": "https://learn.example.com/responsible-ai"
  },
  {
    "type": "dragdrop",
    "question": "Match the workload to its scenario",
    "topic": "AI Workloads",
    "pairs": [
      {"left": "Anomaly detection", "right": "Flag unusual activity"},
      {"left": "Computer vision", "right": "Read scanned forms"}
    ],
    "answer": [
      {"left": "Anomaly detection", "right": "Flag unusual activity"},
      {"left": "Computer vision", "right": "Read scanned forms"}
    ],
    "learn_link": "https://learn.example.com/workloads"
  }
]`

func writeBank(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	var l Loader
	questions, err := l.Load(context.Background(), writeBank(t, validBank))
	require.NoError(t, err)
	require.Len(t, questions, 3)

	assert.Equal(t, TypeSingle, questions[0].Type)
	assert.Equal(t, []int{0}, questions[0].Answer.Indices)
	assert.Equal(t, []int{0, 2}, questions[1].Answer.Indices)
	assert.Equal(t, TypeDragDrop, questions[2].Type)
	assert.Len(t, questions[2].Answer.Pairs, 2)
	assert.Nil(t, questions[2].Answer.Indices)
}

func TestLoadFromHTTPAddsCacheBust(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("v")
		_, _ = w.Write([]byte(validBank))
	}))
	defer srv.Close()

	l := Loader{Client: srv.Client()}
	questions, err := l.Load(context.Background(), srv.URL+"/bank.json")
	require.NoError(t, err)
	assert.Len(t, questions, 3)
	assert.NotEmpty(t, gotQuery, "expected cache-defeating query parameter")
}

func TestLoadHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	var l Loader
	_, err := l.Load(context.Background(), srv.URL+"/bank.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestLoadRejectsBadShape(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not an array", `{"type":"single"}`},
		{"missing topic", `[{"type":"single","question":"q","options":["a"],"answer":[0]}]`},
		{"bad type enum", `[{"type":"essay","question":"q","topic":"t","answer":[0]}]`},
		{"invalid JSON", `[{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l Loader
			_, err := l.Load(context.Background(), writeBank(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsBrokenInvariants(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"index out of range",
			`[{"type":"single","question":"q","topic":"t","options":["a","b"],"answer":[5],"learn_link":"l"}]`,
		},
		{
			"answer pair not in pairs",
			`[{"type":"dragdrop","question":"q","topic":"t",
			   "pairs":[{"left":"a","right":"b"}],
			   "answer":[{"left":"x","right":"y"}],"learn_link":"l"}]`,
		},
		{
			"multi with empty answer",
			`[{"type":"multi","question":"q","topic":"t","options":["a"],"answer":[],"learn_link":"l"}]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l Loader
			_, err := l.Load(context.Background(), writeBank(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	var l Loader
	_, err := l.Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

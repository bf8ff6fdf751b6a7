package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidates(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		wantErr bool
	}{
		{"plain", `[{"title":"a","description":"b","confidence":70}]`, 1, false},
		{"fenced", "```json\n[{\"title\":\"a\"},{\"title\":\"b\"}]\n```", 2, false},
		{"chatter", "Sure! [{\"title\":\"a\"}] Hope that helps.", 1, false},
		{"no array", "I cannot help with that", 0, true},
		{"broken", `[{"title": }]`, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCandidates(tc.content)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tc.want)
		})
	}
}

func TestNewOpenAIClient_NoKey(t *testing.T) {
	_, err := NewOpenAIClient("", "", "")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func fakeCompletionServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Contains(t, req.Messages[1].Content, "Leaky faucet")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
				FinishReason: openai.FinishReasonStop,
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSuggest_Success(t *testing.T) {
	srv := fakeCompletionServer(t, http.StatusOK, `[{"title":"Replace washer","description":"Turn off water first.","confidence":85}]`)

	client, err := NewOpenAIClient("test-key", "test-model", srv.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	got, err := client.Suggest(ctx, "Leaky faucet", "Drips all night")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Replace washer", got[0].Title)
	assert.Equal(t, 85, got[0].Confidence)
}

func TestSuggest_HTTPError(t *testing.T) {
	srv := fakeCompletionServer(t, http.StatusInternalServerError, "")

	client, err := NewOpenAIClient("test-key", "test-model", srv.URL)
	require.NoError(t, err)

	_, err = client.Suggest(context.Background(), "Leaky faucet", "Drips")
	assert.Error(t, err)
}

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foodbridge/food-bridge/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOracleTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, OracleClient) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewOpenAIClient(config.Oracle{
		BaseURL: srv.URL,
		APIKey:  "sk-test",
		Model:   "gpt-4o-mini",
	})
	return srv, client
}

func TestOpenAIScore_Success(t *testing.T) {
	var gotBody chatCompletionRequest
	var gotAuth string

	_, client := newOracleTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, chatCompletionsPath, r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"87"}}]}`))
	})

	content, err := client.Score(context.Background(), "rate this pairing")
	require.NoError(t, err)

	assert.Equal(t, "87", content)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotBody.Model)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "user", gotBody.Messages[0].Role)
	assert.Equal(t, "rate this pairing", gotBody.Messages[0].Content)
}

func TestOpenAIScore_NoChoices(t *testing.T) {
	_, client := newOracleTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	})

	content, err := client.Score(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestOpenAIScore_HTTPError(t *testing.T) {
	_, client := newOracleTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit"}}`))
	})

	_, err := client.Score(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle http 429")
}

func TestOpenAIScore_MalformedBody(t *testing.T) {
	_, client := newOracleTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("{not valid"))
	})

	_, err := client.Score(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode oracle response")
}

func TestOpenAIScore_ConnectionError(t *testing.T) {
	srv, client := newOracleTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := client.Score(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle request")
}

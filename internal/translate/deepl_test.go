package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/translate-bot/internal/config"
)

func newTestClient(baseURL string) *DeepLClient {
	return NewDeepLClient(config.DeepLConfig{
		AuthKey:            "test-key",
		APIBaseURL:         baseURL,
		CallTimeoutSeconds: 2,
	}, zap.NewNop())
}

func TestTranslateSuccess(t *testing.T) {
	var gotForm map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/translate", r.URL.Path)
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"auth_key":    r.PostForm.Get("auth_key"),
			"text":        r.PostForm.Get("text"),
			"target_lang": r.PostForm.Get("target_lang"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"translations":[{"detected_source_language":"EN","text":"こんにちはチーム"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	got, err := client.Translate(context.Background(), "Hello team", "JA")
	require.NoError(t, err)
	assert.Equal(t, "こんにちはチーム", got)
	assert.Equal(t, "test-key", gotForm["auth_key"])
	assert.Equal(t, "Hello team", gotForm["text"])
	assert.Equal(t, "JA", gotForm["target_lang"])
}

func TestTranslateProviderErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"quota exceeded"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Translate(context.Background(), "Hello team", "JA")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestTranslateEmptyResultIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"translations":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Translate(context.Background(), "Hello team", "JA")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestTranslateConnectionErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)
	_, err := client.Translate(context.Background(), "Hello team", "JA")
	require.ErrorIs(t, err, ErrUnavailable)
}

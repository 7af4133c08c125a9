package gemini

import (
	"Agri-Assist-Backend/domain"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeminiServer(t *testing.T, status int, body string, hits *int32, seen *domain.GenerateContentRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		if seen != nil {
			_ = json.NewDecoder(r.Body).Decode(seen)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRESTCompleter_Success(t *testing.T) {
	var hits int32
	var seen domain.GenerateContentRequest
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_ = json.NewDecoder(r.Body).Decode(&seen)
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Use drip irrigation"}]}}]}`))
	}))
	defer srv.Close()

	c := NewRESTCompleter(srv.Client(), Config{APIKey: "secret", Model: "test-model", BaseURL: srv.URL + "/"})
	text, err := c.Complete(context.Background(), "How to save water")

	require.NoError(t, err)
	assert.Equal(t, "Use drip irrigation", text)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.Equal(t, "/v1beta/models/test-model:generateContent", gotPath)
	assert.Equal(t, "secret", gotKey)
	require.Len(t, seen.Contents, 1)
	require.Len(t, seen.Contents[0].Parts, 1)
	assert.Equal(t, "How to save water", seen.Contents[0].Parts[0].Text)
}

func TestRESTCompleter_MissingKeyMakesNoRequest(t *testing.T) {
	var hits int32
	srv := newGeminiServer(t, http.StatusOK, `{}`, &hits, nil)

	c := NewRESTCompleter(srv.Client(), Config{BaseURL: srv.URL})
	_, err := c.Complete(context.Background(), "anything")

	assert.ErrorIs(t, err, domain.ErrGeminiNotConfigured)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestRESTCompleter_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "forbidden", status: http.StatusForbidden, body: `{"error":{"code":403}}`, wantErr: domain.ErrGeminiBadStatus},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, wantErr: domain.ErrGeminiBadStatus},
		{name: "malformed body", status: http.StatusOK, body: `{not json`, wantErr: domain.ErrGeminiRequestFailed},
		{name: "no candidates", status: http.StatusOK, body: `{"candidates":[]}`, wantErr: domain.ErrGeminiEmptyResponse},
		{name: "no parts", status: http.StatusOK, body: `{"candidates":[{"content":{"parts":[]}}]}`, wantErr: domain.ErrGeminiEmptyResponse},
		{name: "empty text", status: http.StatusOK, body: `{"candidates":[{"content":{"parts":[{"text":""}]}}]}`, wantErr: domain.ErrGeminiEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits int32
			srv := newGeminiServer(t, tt.status, tt.body, &hits, nil)

			c := NewRESTCompleter(srv.Client(), Config{APIKey: "k", BaseURL: srv.URL})
			_, err := c.Complete(context.Background(), "prompt")

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
		})
	}
}

func TestRESTCompleter_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewRESTCompleter(nil, Config{APIKey: "k", BaseURL: url})
	_, err := c.Complete(context.Background(), "prompt")

	assert.ErrorIs(t, err, domain.ErrGeminiRequestFailed)
}

func TestRESTCompleter_DefaultsModel(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer srv.Close()

	c := NewRESTCompleter(srv.Client(), Config{APIKey: "k", BaseURL: srv.URL})
	_, err := c.Complete(context.Background(), "p")

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(gotPath, DefaultModel+":generateContent"), gotPath)
}

func TestGenAICompleter_Success(t *testing.T) {
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Sow after the first rain"}]}}]}`))
	}))
	defer srv.Close()

	c, err := NewGenAICompleter(context.Background(), srv.Client(), Config{APIKey: "secret", Model: "test-model", BaseURL: srv.URL})
	require.NoError(t, err)

	text, err := c.Complete(context.Background(), "When to sow millet")
	require.NoError(t, err)
	assert.Equal(t, "Sow after the first rain", text)
	assert.Contains(t, gotPath, "test-model:generateContent")
	assert.Equal(t, "secret", gotKey)
}

func TestGenAICompleter_BadStatus(t *testing.T) {
	var hits int32
	srv := newGeminiServer(t, http.StatusForbidden, `{"error":{"code":403,"message":"denied","status":"PERMISSION_DENIED"}}`, &hits, nil)

	c, err := NewGenAICompleter(context.Background(), srv.Client(), Config{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "p")
	assert.ErrorIs(t, err, domain.ErrGeminiBadStatus)
}

func TestGenAICompleter_NoCandidates(t *testing.T) {
	var hits int32
	srv := newGeminiServer(t, http.StatusOK, `{"candidates":[]}`, &hits, nil)

	c, err := NewGenAICompleter(context.Background(), srv.Client(), Config{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "p")
	assert.ErrorIs(t, err, domain.ErrGeminiEmptyResponse)
}

func TestGenAICompleter_MissingKey(t *testing.T) {
	var hits int32
	srv := newGeminiServer(t, http.StatusOK, `{}`, &hits, nil)

	c, err := NewGenAICompleter(context.Background(), srv.Client(), Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "p")
	assert.ErrorIs(t, err, domain.ErrGeminiNotConfigured)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

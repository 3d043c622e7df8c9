package insight

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/momentum/internal/models"
)

var now = time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC)

var testHabits = []models.Habit{
	{ID: "h1", Name: "Run", Objective: "5k", MinObjective: "1k", CreatedAt: now.AddDate(0, -1, 0)},
	{ID: "h2", Name: "Read", Objective: "20 pages", MinObjective: "2 pages", CreatedAt: now.AddDate(0, -1, 0)},
}

var testLogs = []models.HabitLog{
	{HabitID: "h1", Date: "2024-01-10", Completed: true},
	{HabitID: "h2", Date: "2024-01-04", Partial: true},
	{HabitID: "h1", Date: "2024-01-03", Completed: true}, // eight days ago
	{HabitID: "h1", Date: "2024-01-11", Completed: true}, // future
}

type recordingObserver struct {
	events []CallEvent
}

func (o *recordingObserver) OnCallComplete(e CallEvent) {
	o.events = append(o.events, e)
}

func testConfig(endpoint string) Config {
	return DefaultConfig().WithOverrides(endpoint, "test-model")
}

func reply(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"candidates": []any{
			map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": text}}}},
		},
	})
}

func TestBuildDigest(t *testing.T) {
	d := BuildDigest(testHabits, testLogs, now)

	assert.Equal(t, 2, d.TotalHabits)
	assert.Equal(t, []models.HabitLog{testLogs[0], testLogs[1]}, d.RecentActivity)
	assert.Equal(t, []HabitDefinition{{Name: "Run", Objective: "5k"}, {Name: "Read", Objective: "20 pages"}}, d.Habits)
}

func TestBuildDigestEmpty(t *testing.T) {
	d := BuildDigest(nil, nil, now)
	prompt, err := BuildPrompt(d)
	require.NoError(t, err)
	assert.Contains(t, prompt, `"recentActivity": []`)
	assert.Contains(t, prompt, `"habits": []`)
}

func TestBuildPromptOmitsMinimumObjective(t *testing.T) {
	prompt, err := BuildPrompt(BuildDigest(testHabits, testLogs, now))
	require.NoError(t, err)
	assert.Contains(t, prompt, `"totalHabits": 2`)
	assert.Contains(t, prompt, `"objective": "5k"`)
	assert.NotContains(t, prompt, "1k")
	assert.NotContains(t, prompt, "2024-01-03")
}

func TestSummarize_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, `"name": "Run"`)

		reply(w, "  Great week!  ")
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	client := NewClient(testConfig(srv.URL), obs)

	got := client.Summarize(context.Background(), "secret", testHabits, testLogs, now)
	assert.Equal(t, "Great week!", got)
	require.Len(t, obs.events, 1)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, "test-model", obs.events[0].Model)
}

func TestSummarize_MissingKeyMakesNoCall(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		reply(w, "should not happen")
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	client := NewClient(testConfig(srv.URL), obs)

	assert.Equal(t, MsgMissingKey, client.Summarize(context.Background(), "", testHabits, testLogs, now))
	assert.Equal(t, int32(0), calls.Load())
	assert.Empty(t, obs.events)
}

func TestSummarize_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		code    string
	}{
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":"bad key"}`, http.StatusUnauthorized)
			},
			code: "upstream",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
			code: "invalid_response",
		},
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"candidates":[]}`))
			},
			code: "invalid_response",
		},
		{
			name: "empty text",
			handler: func(w http.ResponseWriter, r *http.Request) {
				reply(w, "   ")
			},
			code: "invalid_response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				tt.handler(w, r)
			}))
			defer srv.Close()

			obs := &recordingObserver{}
			client := NewClient(testConfig(srv.URL), obs)

			assert.Equal(t, MsgFailed, client.Summarize(context.Background(), "secret", testHabits, testLogs, now))
			assert.Equal(t, int32(1), calls.Load(), "failures are not retried")
			require.Len(t, obs.events, 1)
			assert.False(t, obs.events[0].Success)
			assert.Equal(t, tt.code, obs.events[0].ErrorCode)
		})
	}
}

func TestSummarize_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(testConfig(url), nil)
	assert.Equal(t, MsgFailed, client.Summarize(context.Background(), "secret", testHabits, testLogs, now))
}

func TestGenerate_NoCredential(t *testing.T) {
	client := NewClient(DefaultConfig(), nil)
	_, err := client.Generate(context.Background(), "", "hello")
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestConfigOverrides(t *testing.T) {
	cfg := DefaultConfig().WithOverrides("", "")
	assert.Equal(t, DefaultConfig(), cfg)

	cfg = DefaultConfig().WithOverrides("http://localhost:1234", "other")
	assert.Equal(t, "http://localhost:1234", cfg.Endpoint)
	assert.Equal(t, "other", cfg.Model)
}

func TestNewClientUsesDefaultHTTPClient(t *testing.T) {
	c := NewClient(DefaultConfig(), nil)
	assert.Equal(t, &http.Client{}, c.http, "no custom transport or timeout")
}

package acl

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/group"
	"github.com/jsamuelsen11/quick-node-clone/internal/platform/config"
	"github.com/jsamuelsen11/quick-node-clone/internal/platform/httpclient"
)

// newTestClient creates an httpclient.Client pointing at baseURL with a
// single attempt and a breaker that opens after two failures.
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   2,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	return httpclient.New(cfg, "group-api", nil, slog.New(slog.DiscardHandler))
}

func storedNode(id string) *entity.Entity {
	e := entity.New(entity.KindNode, "article", "node-uuid", "en")
	e.SetID(id)
	return e
}

func TestGroupClient_GroupsForEntity(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/groups", r.URL.Path)
		assert.Equal(t, "node", r.URL.Query().Get("entity_type"))
		assert.Equal(t, "42", r.URL.Query().Get("entity_id"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"memberships": []map[string]any{
				{"group_id": 5, "label": "Editors", "group_type": "team", "role": "member"},
				{"group_id": 9, "label": "Newsroom", "group_type": "department"},
			},
			"count": 2,
		})
	}))
	defer ts.Close()

	client := NewGroupClient(newTestClient(t, ts.URL), slog.New(slog.DiscardHandler))
	groups, err := client.GroupsForEntity(context.Background(), storedNode("42"))
	require.NoError(t, err)

	assert.Equal(t, []group.Group{
		{ID: "5", Label: "Editors", Type: "team"},
		{ID: "9", Label: "Newsroom", Type: "department"},
	}, groups)
}

func TestGroupClient_GroupsForEntity_NewEntitySkipsLookup(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewGroupClient(newTestClient(t, ts.URL), slog.New(slog.DiscardHandler))
	groups, err := client.GroupsForEntity(context.Background(), entity.New(entity.KindNode, "article", "new", "en"))
	require.NoError(t, err)
	assert.Empty(t, groups)
	assert.NotNil(t, groups)
	assert.Zero(t, calls.Load())
}

func TestGroupClient_GroupsForEntity_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "unknown entity",
			status:  http.StatusNotFound,
			body:    `{"detail":"node 42 is not tracked"}`,
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "rejected query",
			status:  http.StatusBadRequest,
			body:    `{"errors":[{"location":"query.entity_type","message":"unsupported"}]}`,
			wantErr: domain.ErrValidation,
		},
		{
			name:    "downstream failure",
			status:  http.StatusServiceUnavailable,
			body:    `{"detail":"maintenance"}`,
			wantErr: domain.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/problem+json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			client := NewGroupClient(newTestClient(t, ts.URL), slog.New(slog.DiscardHandler))
			_, err := client.GroupsForEntity(context.Background(), storedNode("42"))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGroupClient_GroupsForEntity_MalformedBody(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"memberships": [`))
	}))
	defer ts.Close()

	client := NewGroupClient(newTestClient(t, ts.URL), slog.New(slog.DiscardHandler))
	_, err := client.GroupsForEntity(context.Background(), storedNode("42"))
	require.ErrorContains(t, err, "decoding response")
}

func TestGroupClient_Health(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewGroupClient(newTestClient(t, ts.URL), slog.New(slog.DiscardHandler))
	assert.Equal(t, "group-api", client.Name())
	require.NoError(t, client.HealthCheck(context.Background()))

	for range 2 {
		_, err := client.GroupsForEntity(context.Background(), storedNode("42"))
		require.ErrorIs(t, err, domain.ErrUnavailable)
	}

	err := client.HealthCheck(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker open")
}

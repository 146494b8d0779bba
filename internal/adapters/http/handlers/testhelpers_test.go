package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/form"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validNode() *entity.Entity {
	e := entity.New(entity.KindNode, "article", "node-1", "en")
	e.SetID("1")
	e.SetRevisionID("40")
	e.SetValue(entity.FieldTitle, "Hello")
	e.SetValue(entity.FieldStatus, true)
	return e
}

func validClone() *entity.Entity {
	e := entity.New(entity.KindNode, "article", "node-clone", "en")
	e.SetValue(entity.FieldTitle, "Copy of Hello")
	e.SetValue(entity.FieldStatus, false)
	return e
}

func validHandle() *form.Handle {
	return &form.Handle{
		ID:         "form-1",
		Definition: form.Definition{ID: "node.article.default", EntityKind: entity.KindNode, Bundle: "article", Operation: form.OperationDefault},
		Entity:     validClone(),
		State:      form.State{form.StateGroupsKey: []any{}},
		BuiltAt:    testTime,
	}
}

// fakeScratch is an in-memory ports.ScratchStore.
type fakeScratch struct {
	mu      sync.Mutex
	values  map[string]any
	cleared []string
}

func newFakeScratch() *fakeScratch {
	return &fakeScratch{values: make(map[string]any)}
}

func (s *fakeScratch) GetScratch(_ context.Context, session, key string) (any, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[session+"/"+key]
	return v, ok, nil
}

func (s *fakeScratch) SetScratch(_ context.Context, session, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[session+"/"+key] = value
	return nil
}

func (s *fakeScratch) ClearScratch(_ context.Context, session, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, session+"/"+key)
	s.cleared = append(s.cleared, session+"/"+key)
	return nil
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func ptr[T any](v T) *T { return &v }

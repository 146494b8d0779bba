package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/quick-node-clone/internal/adapters/http/dto"
	"github.com/jsamuelsen11/quick-node-clone/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/quick-node-clone/internal/app/clone"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/form"
	"github.com/jsamuelsen11/quick-node-clone/internal/ports"
	"github.com/jsamuelsen11/quick-node-clone/mocks"
)

func newNodeHandler(t *testing.T) (*handlers.NodeHandler, *mocks.MockCloneService, *fakeScratch) {
	t.Helper()
	svc := mocks.NewMockCloneService(t)
	scratch := newFakeScratch()
	return handlers.NewNodeHandler(svc, scratch), svc, scratch
}

func cloneRequest(id string, body *strings.Reader) *http.Request {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(http.MethodPost, "/api/v1/nodes/"+id+"/clone", nil)
	} else {
		req = httptest.NewRequest(http.MethodPost, "/api/v1/nodes/"+id+"/clone", body)
	}
	req.Header.Set("Content-Type", "application/json")
	return withChiParams(req, map[string]string{"id": id})
}

// --- GetNode ---

func TestGetNode_Success(t *testing.T) {
	t.Parallel()
	h, svc, _ := newNodeHandler(t)

	svc.EXPECT().GetNode(mock.Anything, "1").Return(validNode(), nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/nodes/1", nil), map[string]string{"id": "1"})
	h.GetNode(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.NodeResponse](t, rec)
	if resp.UUID != "node-1" || resp.Title != "Hello" {
		t.Errorf("node = (%q, %q), want (node-1, Hello)", resp.UUID, resp.Title)
	}
}

func TestGetNode_NotFound(t *testing.T) {
	t.Parallel()
	h, svc, _ := newNodeHandler(t)

	svc.EXPECT().GetNode(mock.Anything, "99").Return(nil, fmt.Errorf("loading node 99: %w", domain.ErrNotFound))

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/nodes/99", nil), map[string]string{"id": "99"})
	h.GetNode(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetNode_MissingID(t *testing.T) {
	t.Parallel()
	h, _, _ := newNodeHandler(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/nodes/", nil), map[string]string{"id": " "})
	h.GetNode(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- CloneNode ---

func TestCloneNode_Success(t *testing.T) {
	t.Parallel()
	h, svc, _ := newNodeHandler(t)

	svc.EXPECT().CloneByID(mock.Anything, "1", mock.MatchedBy(func(req ports.CloneRequest) bool {
		return req.ActorID == "7" && req.Operation == "edit" && req.FormState["step"] == float64(2)
	})).Return(validHandle(), nil)

	rec := httptest.NewRecorder()
	req := cloneRequest("1", strings.NewReader(`{"operation":"edit","form_state":{"step":2}}`))
	req.Header.Set(handlers.HeaderActorID, "7")
	h.CloneNode(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.FormResponse](t, rec)
	if resp.ID != "form-1" {
		t.Errorf("ID = %q, want %q", resp.ID, "form-1")
	}
	if resp.Node.Title != "Copy of Hello" {
		t.Errorf("Node.Title = %q, want %q", resp.Node.Title, "Copy of Hello")
	}
	if resp.Node.ID != "" {
		t.Errorf("Node.ID = %q, want unsaved clone", resp.Node.ID)
	}
}

func TestCloneNode_EmptyBody(t *testing.T) {
	t.Parallel()
	h, svc, _ := newNodeHandler(t)

	svc.EXPECT().CloneByID(mock.Anything, "1", mock.MatchedBy(func(req ports.CloneRequest) bool {
		return req.Operation == "" && req.FormState == nil
	})).Return(validHandle(), nil)

	rec := httptest.NewRecorder()
	req := cloneRequest("1", nil)
	req.Header.Set(handlers.HeaderActorID, "7")
	h.CloneNode(rec, req)

	requireStatus(t, rec, http.StatusCreated)
}

func TestCloneNode_ResetsSessionScratch(t *testing.T) {
	t.Parallel()
	h, svc, scratch := newNodeHandler(t)

	ctx := context.Background()
	_ = scratch.SetScratch(ctx, "sess-1", clone.AddressDeltaKey, 3)
	_ = scratch.SetScratch(ctx, "sess-2", clone.AddressDeltaKey, 5)

	svc.EXPECT().CloneByID(mock.Anything, "1", mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, req ports.CloneRequest) (*form.Handle, error) {
			req.Cleanup(ctx)
			return validHandle(), nil
		})

	rec := httptest.NewRecorder()
	req := cloneRequest("1", nil)
	req.Header.Set(handlers.HeaderActorID, "7")
	req.Header.Set(handlers.HeaderSessionID, "sess-1")
	h.CloneNode(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	if _, ok, _ := scratch.GetScratch(ctx, "sess-1", clone.AddressDeltaKey); ok {
		t.Error("scratch key of the requesting session was not cleared")
	}
	if _, ok, _ := scratch.GetScratch(ctx, "sess-2", clone.AddressDeltaKey); !ok {
		t.Error("scratch key of another session was cleared")
	}
}

func TestCloneNode_WithoutScratchStore(t *testing.T) {
	t.Parallel()
	svc := mocks.NewMockCloneService(t)
	h := handlers.NewNodeHandler(svc, nil)

	svc.EXPECT().CloneByID(mock.Anything, "1", mock.MatchedBy(func(req ports.CloneRequest) bool {
		return req.Cleanup == nil
	})).Return(validHandle(), nil)

	rec := httptest.NewRecorder()
	req := cloneRequest("1", nil)
	req.Header.Set(handlers.HeaderActorID, "7")
	h.CloneNode(rec, req)

	requireStatus(t, rec, http.StatusCreated)
}

func TestCloneNode_RequestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		actor string
		body  string
		want  string
	}{
		{name: "missing actor", body: `{}`, want: "header.X-Actor-ID"},
		{name: "malformed body", actor: "7", body: `{"operation":`, want: "body.body"},
		{name: "blank operation", actor: "7", body: `{"operation":"  "}`, want: "body.operation"},
		{name: "reserved state key", actor: "7", body: `{"form_state":{"quick_node_clone_groups_storage":[]}}`, want: "body.form_state.quick_node_clone_groups_storage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, _ := newNodeHandler(t)

			rec := httptest.NewRecorder()
			req := cloneRequest("1", strings.NewReader(tt.body))
			if tt.actor != "" {
				req.Header.Set(handlers.HeaderActorID, tt.actor)
			}
			h.CloneNode(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			if len(resp.Errors) != 1 || resp.Errors[0].Location != tt.want {
				t.Errorf("Errors = %+v, want location %q", resp.Errors, tt.want)
			}
		})
	}
}

func TestCloneNode_ServiceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"node not found", domain.ErrNotFound, http.StatusNotFound},
		{"bundle without form", fmt.Errorf("%w: no form node.page.default", domain.ErrConfiguration), http.StatusInternalServerError},
		{"store unavailable", domain.ErrUnavailable, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc, _ := newNodeHandler(t)
			svc.EXPECT().CloneByID(mock.Anything, "1", mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			req := cloneRequest("1", nil)
			req.Header.Set(handlers.HeaderActorID, "7")
			h.CloneNode(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want application/problem+json", ct)
			}
		})
	}
}

// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/form"
)

// NodeResponse represents a node in HTTP responses. Title and Published
// reflect the variant the node was loaded or bound in; Entity holds every
// variant.
type NodeResponse struct {
	ID         string          `json:"id,omitempty"`
	RevisionID string          `json:"revision_id,omitempty"`
	UUID       string          `json:"uuid"`
	Bundle     string          `json:"bundle"`
	Language   string          `json:"language"`
	Title      string          `json:"title"`
	Published  bool            `json:"published"`
	Languages  []string        `json:"languages"`
	Entity     entity.Snapshot `json:"entity"`
}

// ToNodeResponse converts a domain entity to an HTTP response DTO.
func ToNodeResponse(e *entity.Entity) NodeResponse {
	published, _ := e.Value(entity.FieldStatus)
	b, _ := published.(bool)

	return NodeResponse{
		ID:         e.ID(),
		RevisionID: e.RevisionID(),
		UUID:       e.UUID(),
		Bundle:     e.Bundle(),
		Language:   e.Language(),
		Title:      e.String(entity.FieldTitle),
		Published:  b,
		Languages:  e.Languages(),
		Entity:     e.ToSnapshot(),
	}
}

// FormResponse represents a built clone form in HTTP responses.
type FormResponse struct {
	ID        string         `json:"id"`
	FormID    string         `json:"form_id"`
	Operation string         `json:"operation"`
	State     map[string]any `json:"state,omitempty"`
	BuiltAt   string         `json:"built_at"`
	Node      NodeResponse   `json:"node"`
}

// ToFormResponse converts a form handle to an HTTP response DTO.
func ToFormResponse(h *form.Handle) FormResponse {
	resp := FormResponse{
		ID:        h.ID,
		FormID:    h.Definition.ID,
		Operation: h.Definition.Operation,
		BuiltAt:   h.BuiltAt.Format(time.RFC3339),
	}
	if len(h.State) > 0 {
		resp.State = map[string]any(h.State)
	}
	if h.Entity != nil {
		resp.Node = ToNodeResponse(h.Entity)
	}
	return resp
}

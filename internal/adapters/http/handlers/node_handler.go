package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/quick-node-clone/internal/adapters/http/dto"
	"github.com/jsamuelsen11/quick-node-clone/internal/app/clone"
	"github.com/jsamuelsen11/quick-node-clone/internal/ports"
)

// NodeHandler handles HTTP requests for reading and cloning nodes.
type NodeHandler struct {
	clones  ports.CloneService
	scratch ports.ScratchStore
}

// NewNodeHandler creates a new NodeHandler. scratch may be nil, in which
// case no session scratch is reset after a clone.
func NewNodeHandler(clones ports.CloneService, scratch ports.ScratchStore) *NodeHandler {
	return &NodeHandler{clones: clones, scratch: scratch}
}

// GetNode handles GET /api/v1/nodes/{id}.
func (h *NodeHandler) GetNode(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	node, err := h.clones.GetNode(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToNodeResponse(node))
}

// CloneNode handles POST /api/v1/nodes/{id}/clone. The response is the form
// built around the unsaved clone.
func (h *NodeHandler) CloneNode(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	actor, err := actorID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var body dto.CloneNodeRequest
	if !decodeAndValidate(w, r, &body) {
		return
	}

	req := body.ToCloneRequest(actor)
	if h.scratch != nil {
		req.Cleanup = clone.ScratchCleanup(h.scratch, r.Header.Get(HeaderSessionID))
	}

	handle, err := h.clones.CloneByID(r.Context(), id, req)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToFormResponse(handle))
}

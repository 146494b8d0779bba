package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/quick-node-clone/internal/adapters/http/dto"
	"github.com/jsamuelsen11/quick-node-clone/internal/ports"
)

// FormHandler handles HTTP requests for built clone forms.
type FormHandler struct {
	forms ports.FormService
}

// NewFormHandler creates a new FormHandler with the given form service.
func NewFormHandler(forms ports.FormService) *FormHandler {
	return &FormHandler{forms: forms}
}

// GetForm handles GET /api/v1/forms/{formId}.
func (h *FormHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	formID, err := pathParam(r, "formId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	handle, err := h.forms.Get(r.Context(), formID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFormResponse(handle))
}

// SubmitForm handles POST /api/v1/forms/{formId}/submit. It saves the clone
// and responds with the stored node.
func (h *FormHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	formID, err := pathParam(r, "formId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var body dto.SubmitFormRequest
	if !decodeAndValidate(w, r, &body) {
		return
	}

	saved, err := h.forms.Submit(r.Context(), formID, body.ToSubmitInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToNodeResponse(saved))
}

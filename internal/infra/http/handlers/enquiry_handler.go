package handlers

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/infra/http/middleware"
	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/usecase"
)

type EnquirySubmitter interface {
	Execute(ctx context.Context, input usecase.SubmitEnquiryInput) (*usecase.SubmitEnquiryOutput, error)
}

type EnquiryHandler struct {
	Submit EnquirySubmitter
}

func NewEnquiryHandler(submit EnquirySubmitter) *EnquiryHandler {
	return &EnquiryHandler{Submit: submit}
}

type submitEnquiryResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	LeadID  string `json:"leadId"`
}

func (h *EnquiryHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubmitEnquiryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data provided")
		return
	}

	input.IPAddress = getClientIP(r)

	out, err := h.Submit.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to save enquiry to database.",
			"details": err.Error(),
		})
		return
	}

	middleware.RecordLeadCaptured()

	writeJSON(w, http.StatusCreated, submitEnquiryResponse{
		Success: true,
		Message: "Enquiry submitted successfully!",
		LeadID:  out.LeadID,
	})
}

// HandleGet keeps the old route shape: the enquiry endpoint is write-only.
func (h *EnquiryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// getClientIP is best-effort: first forwarded-for hop, then X-Real-IP, then
// the direct peer. Never fails the request.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/entity"
	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/infra/http/middleware"
	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/usecase"
)

type LeadLister interface {
	Execute(ctx context.Context, input usecase.ListLeadsInput) (*usecase.ListLeadsOutput, error)
}

type LeadStatusUpdater interface {
	Execute(ctx context.Context, id, status string) (*entity.Lead, error)
}

type LeadDeleter interface {
	Execute(ctx context.Context, id string) error
}

// LeadHandler is the admin surface: list/filter, status transition, delete.
// No access control here yet; the deployment is expected to front it with
// an authorization layer.
type LeadHandler struct {
	List         LeadLister
	UpdateStatus LeadStatusUpdater
	Delete       LeadDeleter
}

func NewLeadHandler(list LeadLister, update LeadStatusUpdater, del LeadDeleter) *LeadHandler {
	return &LeadHandler{
		List:         list,
		UpdateStatus: update,
		Delete:       del,
	}
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	out, err := h.List.Execute(r.Context(), usecase.ListLeadsInput{
		Page:    page,
		Limit:   limit,
		Status:  q.Get("status"),
		Program: q.Get("program"),
		Search:  q.Get("search"),
		From:    q.Get("from"),
		To:      q.Get("to"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch leads")
		return
	}

	writeJSON(w, http.StatusOK, out)
}

type updateLeadRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (h *LeadHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id or status")
		return
	}

	lead, err := h.UpdateStatus.Execute(r.Context(), req.ID, req.Status)
	if err != nil {
		switch {
		case usecase.IsNotFound(err):
			writeError(w, http.StatusNotFound, err.Error())
		case usecase.IsDomainError(err):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "Failed to update lead")
		}
		return
	}

	middleware.RecordStatusUpdate(lead.Status)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"lead":    lead,
	})
}

type deleteLeadRequest struct {
	ID string `json:"id"`
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	var req deleteLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "ID is required")
		return
	}

	if err := h.Delete.Execute(r.Context(), req.ID); err != nil {
		switch {
		case usecase.IsNotFound(err):
			writeError(w, http.StatusNotFound, err.Error())
		case usecase.IsDomainError(err):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "Failed to delete lead")
		}
		return
	}

	middleware.RecordLeadDeleted()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Lead deleted",
	})
}

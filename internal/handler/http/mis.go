package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/mis"
	"github.com/kerjalink/jobboard-backend-go/internal/handler/http/response"
)

type MISHandler interface {
	ListCandidates(w http.ResponseWriter, r *http.Request)
	ReviewCandidate(w http.ResponseWriter, r *http.Request)
	ListCompanies(w http.ResponseWriter, r *http.Request)
	ReviewCompany(w http.ResponseWriter, r *http.Request)
}

type MISHandlerImpl struct {
	misService mis.Service
}

func NewMISHandler(misService mis.Service) MISHandler {
	return &MISHandlerImpl{misService: misService}
}

func misListQuery(r *http.Request) mis.ListQuery {
	var q mis.ListQuery
	q.Status = r.URL.Query().Get("status")
	q.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	q.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return q
}

// ListCandidates implements MISHandler.
func (h *MISHandlerImpl) ListCandidates(w http.ResponseWriter, r *http.Request) {
	q := misListQuery(r)

	candidates, total, err := h.misService.ListCandidates(r.Context(), q)
	if err != nil {
		slog.Error("ListCandidates service error", "error", err)
		response.HandleError(w, err)
		return
	}

	q.Normalize()
	response.SuccessWithMeta(w, candidates, response.NewMeta(q.Page, q.Limit, total))
}

// ReviewCandidate implements MISHandler.
func (h *MISHandlerImpl) ReviewCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID := chi.URLParam(r, "candidateID")

	var decisionReq mis.ApprovalDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&decisionReq); err != nil {
		slog.Error("ReviewCandidate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.misService.ReviewCandidate(r.Context(), candidateID, decisionReq); err != nil {
		slog.Error("ReviewCandidate service error", "candidate_id", candidateID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Candidate reviewed", "candidate_id", candidateID, "status", decisionReq.Status)
	response.SuccessWithMessage(w, "Candidate approval updated", nil)
}

// ListCompanies implements MISHandler.
func (h *MISHandlerImpl) ListCompanies(w http.ResponseWriter, r *http.Request) {
	q := misListQuery(r)

	companies, total, err := h.misService.ListCompanies(r.Context(), q)
	if err != nil {
		slog.Error("ListCompanies service error", "error", err)
		response.HandleError(w, err)
		return
	}

	q.Normalize()
	response.SuccessWithMeta(w, companies, response.NewMeta(q.Page, q.Limit, total))
}

// ReviewCompany implements MISHandler.
func (h *MISHandlerImpl) ReviewCompany(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")

	var decisionReq mis.ApprovalDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&decisionReq); err != nil {
		slog.Error("ReviewCompany decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.misService.ReviewCompany(r.Context(), companyID, decisionReq); err != nil {
		slog.Error("ReviewCompany service error", "company_id", companyID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Company reviewed", "company_id", companyID, "status", decisionReq.Status)
	response.SuccessWithMessage(w, "Company approval updated", nil)
}

package pending

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/akostin/punchpass/internal/domain"
	"github.com/akostin/punchpass/internal/dto"
	"github.com/akostin/punchpass/internal/service/memberservice"
	"github.com/akostin/punchpass/internal/service/syncservice"
	"github.com/akostin/punchpass/pkg/auth"
	"github.com/akostin/punchpass/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	ListPending(ctx context.Context, status string) ([]domain.PendingMember, error)
	ApprovePending(ctx context.Context, pendingID, operatorID int) (*domain.Member, error)
	RejectPending(ctx context.Context, pendingID, operatorID int) error
}

type SyncService interface {
	SyncPendingMembers(ctx context.Context) (*syncservice.SyncReport, error)
}

type PendingHandler struct {
	memberService Service
	syncService   SyncService
}

func New(memberService Service, syncService SyncService) *PendingHandler {
	return &PendingHandler{
		memberService: memberService,
		syncService:   syncService,
	}
}

// List godoc
//
//	@Summary		List membership applications
//	@Description	Retrieve imported applications, optionally filtered by status
//	@Tags			Pending
//	@Produce		json
//	@Param			status	query	string	false	"Filter by status"	Enums(pending, approved, rejected)
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PendingMemberResponseDTO
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/pending [get]
func (h *PendingHandler) List(w http.ResponseWriter, r *http.Request) {
	pending, err := h.memberService.ListPending(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PendingMemberResponseDTO, 0, len(pending))
	for _, p := range pending {
		response = append(response, dto.PendingMemberResponseDTO{
			ID:             p.ID,
			AirtableID:     p.AirtableID,
			Name:           p.Name,
			Email:          p.Email,
			MembershipType: p.MembershipType,
			Status:         p.Status,
			Source:         p.Source,
			CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func (h *PendingHandler) pendingCall(w http.ResponseWriter, r *http.Request) (pendingID, operatorID int, ok bool) {
	pendingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return 0, 0, false
	}
	operatorID, _ = r.Context().Value(auth.OperatorIDKey).(int)
	return pendingID, operatorID, true
}

// Approve godoc
//
//	@Summary		Approve an application
//	@Description	Create a member from a pending application and mint their QR code
//	@Tags			Pending
//	@Produce		json
//	@Param			id	path	int	true	"Application ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ApproveResponseDTO
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		409	{object}	utils.Response	"Application already processed"
//	@Failure		422	{object}	utils.Response	"Unknown membership type"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/pending/{id}/approve [post]
func (h *PendingHandler) Approve(w http.ResponseWriter, r *http.Request) {
	pendingID, operatorID, ok := h.pendingCall(w, r)
	if !ok {
		return
	}

	member, err := h.memberService.ApprovePending(r.Context(), pendingID, operatorID)
	if err != nil {
		switch {
		case errors.Is(err, memberservice.ErrPendingNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Application not found")
		case errors.Is(err, memberservice.ErrAlreadyProcessed):
			utils.RespondWithError(w, http.StatusConflict, "Application already processed")
		case errors.Is(err, memberservice.ErrUnknownMembershipType):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Unknown membership type")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ApproveResponseDTO{
		MemberID: member.ID,
		QRCode:   member.QRCode,
	})
}

// Reject godoc
//
//	@Summary		Reject an application
//	@Tags			Pending
//	@Produce		json
//	@Param			id	path	int	true	"Application ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		409	{object}	utils.Response	"Application already processed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/pending/{id}/reject [post]
func (h *PendingHandler) Reject(w http.ResponseWriter, r *http.Request) {
	pendingID, operatorID, ok := h.pendingCall(w, r)
	if !ok {
		return
	}

	if err := h.memberService.RejectPending(r.Context(), pendingID, operatorID); err != nil {
		if errors.Is(err, memberservice.ErrAlreadyProcessed) {
			utils.RespondWithError(w, http.StatusConflict, "Application already processed")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Application rejected"})
}

// Sync godoc
//
//	@Summary		Import applications from Airtable now
//	@Description	Run the reconciliation against the external source outside the schedule
//	@Tags			Pending
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SyncResponseDTO
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		502	{object}	utils.Response	"External source unavailable"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/sync [post]
func (h *PendingHandler) Sync(w http.ResponseWriter, r *http.Request) {
	report, err := h.syncService.SyncPendingMembers(r.Context())
	if err != nil {
		if errors.Is(err, syncservice.ErrExternalFetch) {
			utils.RespondWithError(w, http.StatusBadGateway, "External source unavailable")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SyncResponseDTO{
		Created: report.Created,
		Skipped: report.Skipped,
		Failed:  report.Failed,
	})
}

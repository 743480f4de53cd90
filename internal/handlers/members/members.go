package members

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/akostin/punchpass/internal/domain"
	"github.com/akostin/punchpass/internal/dto"
	"github.com/akostin/punchpass/internal/service/memberservice"
	"github.com/akostin/punchpass/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	GetMember(ctx context.Context, id int) (*domain.Member, []domain.RedeemLog, error)
	RedeemReward(ctx context.Context, memberID int) error
}

type MemberHandler struct {
	memberService Service
}

func New(memberService Service) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func memberID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// GetMember godoc
//
//	@Summary		Get a member
//	@Description	Retrieve one member with their reward history
//	@Tags			Members
//	@Produce		json
//	@Param			id	path	int	true	"Member ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MemberResponseDTO
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		404	{object}	utils.Response	"Member not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/members/{id} [get]
func (h *MemberHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	id, err := memberID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}

	member, redeems, err := h.memberService.GetMember(r.Context(), id)
	if err != nil {
		if errors.Is(err, memberservice.ErrMemberNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Member not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.MemberResponseDTO{
		ID:             member.ID,
		QRCode:         member.QRCode,
		Name:           member.Name,
		Points:         member.Points,
		TotalScans:     member.TotalScans,
		PointsToReward: member.PointsToReward,
		RewardDue:      member.RewardDue,
	}
	if member.RewardEarnedAt != nil {
		resp.RewardEarnedAt = member.RewardEarnedAt.Format(time.RFC3339)
	}
	if member.LastScanAt != nil {
		resp.LastScanAt = member.LastScanAt.Format(time.RFC3339)
	}
	for _, redeem := range redeems {
		resp.Redeems = append(resp.Redeems, dto.RedeemLogDTO{
			ID:           redeem.ID,
			RewardTypeID: redeem.RewardTypeID,
			CreatedAt:    redeem.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Redeem godoc
//
//	@Summary		Redeem a due reward
//	@Description	Mark the member's earned reward as handed over
//	@Tags			Members
//	@Produce		json
//	@Param			id	path	int	true	"Member ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		404	{object}	utils.Response	"Member not found"
//	@Failure		409	{object}	utils.Response	"No reward due"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/members/{id}/redeem [post]
func (h *MemberHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	id, err := memberID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}

	err = h.memberService.RedeemReward(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, memberservice.ErrMemberNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Member not found")
		case errors.Is(err, memberservice.ErrNoRewardDue):
			utils.RespondWithError(w, http.StatusConflict, "No reward due")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Reward redeemed"})
}

package scan

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/akostin/punchpass/internal/domain"
	"github.com/akostin/punchpass/internal/dto"
	"github.com/akostin/punchpass/internal/service/scanservice"
	"github.com/akostin/punchpass/pkg/utils"
	"github.com/akostin/punchpass/pkg/validate"
)

type Service interface {
	ProcessScan(ctx context.Context, code string) (*scanservice.ScanResult, error)
	RecentScans(ctx context.Context, window time.Duration) ([]domain.ScanLog, error)
}

type ScanHandler struct {
	scanService Service
}

func New(scanService Service) *ScanHandler {
	return &ScanHandler{
		scanService: scanService,
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Scan godoc
//
//	@Summary		Process a scanned member code
//	@Description	Resolve the code to a member, add one point and return the updated progress
//	@Tags			Scan
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ScanRequestDTO	true	"Scanned code"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ScanResultDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		404	{object}	utils.Response	"Member not found"
//	@Failure		409	{object}	utils.Response	"Concurrent update conflict"
//	@Failure		422	{object}	utils.Response	"Invalid card number"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/scan [post]
func (h *ScanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req dto.ScanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	code := strings.TrimSpace(req.Code)
	if code == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Code is required")
		return
	}

	// All-digit codes come from the keypad fallback, not the camera;
	// they carry a Luhn check digit.
	if isDigits(code) && !validate.IsCardNumber(code) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
		return
	}

	result, err := h.scanService.ProcessScan(r.Context(), code)
	if err != nil {
		var pce *scanservice.PartialCommitError
		switch {
		case errors.Is(err, scanservice.ErrMemberNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Member not found")
		case errors.Is(err, scanservice.ErrAmbiguousCode):
			utils.RespondWithError(w, http.StatusConflict, "Code matches more than one member")
		case errors.Is(err, scanservice.ErrMemberTypeNotFound):
			utils.RespondWithError(w, http.StatusInternalServerError, "Member type not found")
		case errors.As(err, &pce):
			utils.RespondWithError(w, http.StatusInternalServerError, pce.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ScanResultDTO{
		MemberType:    result.MemberTypeName,
		Member:        result.MemberName,
		Points:        result.PointsAfter,
		ScansRequired: result.ScansRequiredForReward,
		RewardDue:     result.RewardDue,
	})
}

// RecentScans godoc
//
//	@Summary		List recent scan activity
//	@Description	Return the scan log entries of the trailing window, newest first
//	@Tags			Scan
//	@Produce		json
//	@Param			hours	query	int	false	"Window size in hours"	default(24)
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ScanLogDTO
//	@Failure		400	{object}	utils.Response	"Invalid window"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/scans [get]
func (h *ScanHandler) RecentScans(w http.ResponseWriter, r *http.Request) {
	hours := 24
	if v := r.URL.Query().Get("hours"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid window")
			return
		}
		hours = parsed
	}

	logs, err := h.scanService.RecentScans(r.Context(), time.Duration(hours)*time.Hour)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ScanLogDTO, 0, len(logs))
	for _, log := range logs {
		response = append(response, dto.ScanLogDTO{
			ID:           log.ID,
			ScannedValue: log.ScannedValue,
			CreatedAt:    log.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

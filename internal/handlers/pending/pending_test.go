package pending

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akostin/punchpass/internal/domain"
	"github.com/akostin/punchpass/internal/service/memberservice"
	"github.com/akostin/punchpass/internal/service/syncservice"
	"github.com/akostin/punchpass/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*PendingHandler, *MockService, *MockSyncService) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	memberService := NewMockService(ctrl)
	syncService := NewMockSyncService(ctrl)
	handler := New(memberService, syncService)
	return handler, memberService, syncService
}

func pendingRequest(method, target string, pendingID, operatorID int) *http.Request {
	req := httptest.NewRequest(method, target, nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", fmt.Sprintf("%d", pendingID))
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, auth.OperatorIDKey, operatorID)
	return req.WithContext(ctx)
}

func TestPendingHandler_List(t *testing.T) {
	handler, memberService, _ := NewMock(t)
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Applications returned", func(t *testing.T) {
		memberService.EXPECT().ListPending(gomock.Any(), "pending").Return([]domain.PendingMember{
			{
				ID:             1,
				AirtableID:     "rec1",
				Name:           "Jane",
				Email:          "jane@example.com",
				MembershipType: "Monthly",
				Status:         domain.PendingStatusPending,
				Source:         "airtable",
				CreatedAt:      created,
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/pending?status=pending", nil)
		rr := httptest.NewRecorder()
		handler.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[{"id":1,"airtable_id":"rec1","name":"Jane","email":"jane@example.com","membership_type":"Monthly","status":"pending","source":"airtable","created_at":"2025-06-01T12:00:00Z"}]`, rr.Body.String())
	})

	t.Run("Empty list stays a JSON array", func(t *testing.T) {
		memberService.EXPECT().ListPending(gomock.Any(), "").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/pending", nil)
		rr := httptest.NewRecorder()
		handler.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Read failure", func(t *testing.T) {
		memberService.EXPECT().ListPending(gomock.Any(), "").Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/api/pending", nil)
		rr := httptest.NewRecorder()
		handler.List(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestPendingHandler_Approve(t *testing.T) {
	handler, memberService, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Approval succeeds",
			prepareMock: func() {
				memberService.EXPECT().ApprovePending(gomock.Any(), 10, 7).
					Return(&domain.Member{ID: 42, QRCode: "qr-new"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"member_id":42,"qr_code":"qr-new"}`,
		},
		{
			name: "Application not found",
			prepareMock: func() {
				memberService.EXPECT().ApprovePending(gomock.Any(), 10, 7).
					Return(nil, memberservice.ErrPendingNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"Application not found"}`,
		},
		{
			name: "Already processed",
			prepareMock: func() {
				memberService.EXPECT().ApprovePending(gomock.Any(), 10, 7).
					Return(nil, memberservice.ErrAlreadyProcessed)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"Application already processed"}`,
		},
		{
			name: "Unknown membership type",
			prepareMock: func() {
				memberService.EXPECT().ApprovePending(gomock.Any(), 10, 7).
					Return(nil, memberservice.ErrUnknownMembershipType)
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"message":"Unknown membership type"}`,
		},
		{
			name: "Internal error",
			prepareMock: func() {
				memberService.EXPECT().ApprovePending(gomock.Any(), 10, 7).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.Approve(rr, pendingRequest(http.MethodPost, "/api/pending/10/approve", 10, 7))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}

	t.Run("Invalid application id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/pending/abc/approve", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", "abc")
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		rr := httptest.NewRecorder()
		handler.Approve(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestPendingHandler_Reject(t *testing.T) {
	handler, memberService, _ := NewMock(t)

	t.Run("Rejection succeeds", func(t *testing.T) {
		memberService.EXPECT().RejectPending(gomock.Any(), 10, 7).Return(nil)

		rr := httptest.NewRecorder()
		handler.Reject(rr, pendingRequest(http.MethodPost, "/api/pending/10/reject", 10, 7))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"Application rejected"}`, rr.Body.String())
	})

	t.Run("Already processed", func(t *testing.T) {
		memberService.EXPECT().RejectPending(gomock.Any(), 10, 7).Return(memberservice.ErrAlreadyProcessed)

		rr := httptest.NewRecorder()
		handler.Reject(rr, pendingRequest(http.MethodPost, "/api/pending/10/reject", 10, 7))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestPendingHandler_Sync(t *testing.T) {
	handler, _, syncService := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Sync succeeds",
			prepareMock: func() {
				syncService.EXPECT().SyncPendingMembers(gomock.Any()).
					Return(&syncservice.SyncReport{Created: 4, Skipped: 17}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"created":4,"skipped":17,"failed":0}`,
		},
		{
			name: "External source unavailable",
			prepareMock: func() {
				syncService.EXPECT().SyncPendingMembers(gomock.Any()).
					Return(nil, fmt.Errorf("%w: status 500", syncservice.ErrExternalFetch))
			},
			expectedCode: http.StatusBadGateway,
			expectedBody: `{"message":"External source unavailable"}`,
		},
		{
			name: "Store failure",
			prepareMock: func() {
				syncService.EXPECT().SyncPendingMembers(gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/admin/sync", nil)
			rr := httptest.NewRecorder()
			handler.Sync(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

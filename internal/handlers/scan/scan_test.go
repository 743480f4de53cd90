package scan

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akostin/punchpass/internal/domain"
	"github.com/akostin/punchpass/internal/service/scanservice"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ScanHandler, *MockService) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestScanHandler_Scan(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Scan succeeds",
			body: `{"code": "qr-abc"}`,
			prepareMock: func() {
				service.EXPECT().ProcessScan(gomock.Any(), "qr-abc").Return(&scanservice.ScanResult{
					MemberTypeName:         "Monthly",
					MemberName:             "Jane",
					PointsAfter:            3,
					ScansRequiredForReward: 10,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"member_type":"Monthly","member":"Jane","points":3,"scans_required":10,"reward_due":false}`,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid request body"}`,
		},
		{
			name:         "Empty code",
			body:         `{"code": "  "}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Code is required"}`,
		},
		{
			name:         "Keypad number fails the check digit",
			body:         `{"code": "12345678901"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"message":"Invalid card number"}`,
		},
		{
			name: "Keypad number accepted",
			body: `{"code": "4561261212345467"}`,
			prepareMock: func() {
				service.EXPECT().ProcessScan(gomock.Any(), "4561261212345467").Return(&scanservice.ScanResult{
					MemberTypeName:         "Monthly",
					MemberName:             "Jane",
					PointsAfter:            1,
					ScansRequiredForReward: 10,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"member_type":"Monthly","member":"Jane","points":1,"scans_required":10,"reward_due":false}`,
		},
		{
			name: "Member not found",
			body: `{"code": "qr-abc"}`,
			prepareMock: func() {
				service.EXPECT().ProcessScan(gomock.Any(), "qr-abc").Return(nil, scanservice.ErrMemberNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"Member not found"}`,
		},
		{
			name: "Ambiguous code",
			body: `{"code": "qr-abc"}`,
			prepareMock: func() {
				service.EXPECT().ProcessScan(gomock.Any(), "qr-abc").Return(nil, scanservice.ErrAmbiguousCode)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"Code matches more than one member"}`,
		},
		{
			name: "Partial commit reported",
			body: `{"code": "qr-abc"}`,
			prepareMock: func() {
				service.EXPECT().ProcessScan(gomock.Any(), "qr-abc").Return(nil, &scanservice.PartialCommitError{
					Completed: []string{scanservice.StepMemberUpdate},
					Failed:    scanservice.StepScanLog,
					Err:       errors.New("write timeout"),
				})
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "Internal error",
			body: `{"code": "qr-abc"}`,
			prepareMock: func() {
				service.EXPECT().ProcessScan(gomock.Any(), "qr-abc").Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/scan", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.Scan(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestScanHandler_RecentScans(t *testing.T) {
	handler, service := NewMock(t)
	created := time.Date(2025, 6, 9, 16, 0, 0, 0, time.UTC)

	t.Run("Default window", func(t *testing.T) {
		service.EXPECT().RecentScans(gomock.Any(), 24*time.Hour).Return([]domain.ScanLog{
			{ID: 2, ScannedValue: "qr-abc", CreatedAt: created},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/scans", nil)
		rr := httptest.NewRecorder()
		handler.RecentScans(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[{"id":2,"scanned_value":"qr-abc","created_at":"2025-06-09T16:00:00Z"}]`, rr.Body.String())
	})

	t.Run("Explicit window", func(t *testing.T) {
		service.EXPECT().RecentScans(gomock.Any(), 48*time.Hour).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/scans?hours=48", nil)
		rr := httptest.NewRecorder()
		handler.RecentScans(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Invalid window", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/scans?hours=zero", nil)
		rr := httptest.NewRecorder()
		handler.RecentScans(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Read failure", func(t *testing.T) {
		service.EXPECT().RecentScans(gomock.Any(), 24*time.Hour).Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/api/admin/scans", nil)
		rr := httptest.NewRecorder()
		handler.RecentScans(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ChantierApp/site_ledger_app/internal/apperrors"
	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	portssvc "github.com/ChantierApp/site_ledger_app/internal/core/ports/services"
	"github.com/ChantierApp/site_ledger_app/internal/dto"
	"github.com/ChantierApp/site_ledger_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CapitalService ---
type MockCapitalService struct {
	mock.Mock
}

func (m *MockCapitalService) GetCapital(ctx context.Context) (*domain.Capital, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Capital), args.Error(1)
}

func (m *MockCapitalService) SetOrUpdateCapital(ctx context.Context, req dto.SetCapitalRequest) (*domain.Capital, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Capital), args.Error(1)
}

func (m *MockCapitalService) LockCapital(ctx context.Context) (*domain.Capital, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Capital), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.CapitalSvcFacade = (*MockCapitalService)(nil)

// --- Mock SummaryService ---
type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) GetCapitalSummary(ctx context.Context) (*domain.CapitalSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CapitalSummary), args.Error(1)
}

func (m *MockSummaryService) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.SummarySvcFacade = (*MockSummaryService)(nil)

// --- Test Suite ---
type CapitalHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockCapitalService *MockCapitalService
	mockSummaryService *MockSummaryService
}

func (suite *CapitalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockCapitalService = new(MockCapitalService)
	suite.mockSummaryService = new(MockSummaryService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterCapitalRoutes(v1, suite.mockCapitalService, suite.mockSummaryService)
}

func (suite *CapitalHandlerTestSuite) testCapital(locked bool) *domain.Capital {
	return &domain.Capital{
		CapitalID:      "CAPITAL",
		OpeningBalance: decimal.NewFromInt(100000),
		Currency:       "DZD",
		OpeningDate:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		IsLocked:       locked,
	}
}

// --- Test Cases ---

func (suite *CapitalHandlerTestSuite) TestGetCapital_Success() {
	suite.mockCapitalService.On("GetCapital", mock.Anything).Return(suite.testCapital(false), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/capital", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.CapitalResponse
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.Require().NoError(err)
	suite.Equal("CAPITAL", body.CapitalID)
	suite.True(body.OpeningBalance.Equal(decimal.NewFromInt(100000)))
	suite.False(body.IsLocked)
	suite.mockCapitalService.AssertExpectations(suite.T())
}

func (suite *CapitalHandlerTestSuite) TestGetCapital_NotSet() {
	suite.mockCapitalService.On("GetCapital", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/capital", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCapitalService.AssertExpectations(suite.T())
}

func (suite *CapitalHandlerTestSuite) TestSetCapital_Success() {
	suite.mockCapitalService.On("SetOrUpdateCapital", mock.Anything, mock.MatchedBy(func(r dto.SetCapitalRequest) bool {
		return r.OpeningBalance.Equal(decimal.NewFromInt(100000)) && r.OpeningDate == "2025-01-15"
	})).Return(suite.testCapital(false), nil).Once()

	payload := `{"openingBalance": 100000, "openingDate": "2025-01-15"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/capital", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockCapitalService.AssertExpectations(suite.T())
}

func (suite *CapitalHandlerTestSuite) TestSetCapital_InvalidDateFormat() {
	payload := `{"openingBalance": 100000, "openingDate": "15/01/2025"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/capital", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCapitalService.AssertNotCalled(suite.T(), "SetOrUpdateCapital")
}

func (suite *CapitalHandlerTestSuite) TestSetCapital_Locked() {
	suite.mockCapitalService.On("SetOrUpdateCapital", mock.Anything, mock.Anything).Return(nil, apperrors.ErrConflict).Once()

	payload := `{"openingBalance": 200000, "openingDate": "2025-02-01"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/capital", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)

	var body map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.Require().NoError(err)
	suite.Contains(body["error"], "locked")
	suite.mockCapitalService.AssertExpectations(suite.T())
}

func (suite *CapitalHandlerTestSuite) TestLockCapital_Success() {
	suite.mockCapitalService.On("LockCapital", mock.Anything).Return(suite.testCapital(true), nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/capital/lock", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.CapitalResponse
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.Require().NoError(err)
	suite.True(body.IsLocked)
	suite.mockCapitalService.AssertExpectations(suite.T())
}

func (suite *CapitalHandlerTestSuite) TestLockCapital_NotSet() {
	suite.mockCapitalService.On("LockCapital", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/capital/lock", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCapitalService.AssertExpectations(suite.T())
}

func (suite *CapitalHandlerTestSuite) TestGetCapitalSummary_Success() {
	summary := &domain.CapitalSummary{
		OpeningBalance: decimal.NewFromInt(100000),
		TotalFunding:   decimal.NewFromInt(25000),
		TotalCapital:   decimal.NewFromInt(125000),
		Currency:       "DZD",
	}
	suite.mockSummaryService.On("GetCapitalSummary", mock.Anything).Return(summary, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/capital/summary", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.CapitalSummaryResponse
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.Require().NoError(err)
	suite.True(body.TotalCapital.Equal(decimal.NewFromInt(125000)))
	suite.Equal("DZD", body.Currency)
	suite.mockSummaryService.AssertExpectations(suite.T())
	suite.mockCapitalService.AssertNotCalled(suite.T(), "GetCapital")
}

// --- Run Test Suite ---
func TestCapitalHandler(t *testing.T) {
	suite.Run(t, new(CapitalHandlerTestSuite))
}

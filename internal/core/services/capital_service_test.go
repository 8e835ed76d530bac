package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ChantierApp/site_ledger_app/internal/apperrors"
	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	portssvc "github.com/ChantierApp/site_ledger_app/internal/core/ports/services"
	"github.com/ChantierApp/site_ledger_app/internal/core/services"
	"github.com/ChantierApp/site_ledger_app/internal/dto"
	"github.com/ChantierApp/site_ledger_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CapitalRepository ---
type MockCapitalRepository struct {
	mock.Mock
}

func (m *MockCapitalRepository) FindCapital(ctx context.Context) (*domain.Capital, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Capital), args.Error(1)
}

func (m *MockCapitalRepository) UpsertCapital(ctx context.Context, openingBalance decimal.Decimal, openingDate time.Time, currency string) (*domain.Capital, error) {
	args := m.Called(ctx, openingBalance, openingDate, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Capital), args.Error(1)
}

func (m *MockCapitalRepository) LockCapital(ctx context.Context) (*domain.Capital, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Capital), args.Error(1)
}

// --- Test Suite ---
type CapitalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCapitalRepository
	service  portssvc.CapitalSvcFacade
}

func (suite *CapitalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCapitalRepository)
	suite.service = services.NewCapitalService(suite.mockRepo, "DZD")
}

// --- Test Cases ---

func (suite *CapitalServiceTestSuite) TestGetCapital_Success() {
	ctx := context.Background()
	expected := &domain.Capital{
		CapitalID:      models.CapitalSingletonID,
		OpeningBalance: decimal.NewFromInt(1000),
		Currency:       "DZD",
	}

	suite.mockRepo.On("FindCapital", ctx).Return(expected, nil).Once()

	capital, err := suite.service.GetCapital(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, capital)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CapitalServiceTestSuite) TestGetCapital_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCapital", ctx).Return(nil, apperrors.ErrNotFound).Once()

	capital, err := suite.service.GetCapital(ctx)

	suite.Require().Error(err)
	suite.Nil(capital)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CapitalServiceTestSuite) TestSetOrUpdateCapital_Success() {
	ctx := context.Background()
	req := dto.SetCapitalRequest{
		OpeningBalance: decimal.NewFromInt(1000),
		OpeningDate:    "2025-01-15",
		Currency:       "EUR",
	}
	expectedDate := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	stored := &domain.Capital{
		CapitalID:      models.CapitalSingletonID,
		OpeningBalance: req.OpeningBalance,
		Currency:       "EUR",
		OpeningDate:    expectedDate,
	}

	suite.mockRepo.On("UpsertCapital", ctx, req.OpeningBalance, expectedDate, "EUR").Return(stored, nil).Once()

	capital, err := suite.service.SetOrUpdateCapital(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(stored, capital)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CapitalServiceTestSuite) TestSetOrUpdateCapital_DefaultCurrency() {
	ctx := context.Background()
	req := dto.SetCapitalRequest{
		OpeningBalance: decimal.NewFromInt(500),
		OpeningDate:    "2025-03-01",
	}
	expectedDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	stored := &domain.Capital{OpeningBalance: req.OpeningBalance, Currency: "DZD"}

	suite.mockRepo.On("UpsertCapital", ctx, req.OpeningBalance, expectedDate, "DZD").Return(stored, nil).Once()

	capital, err := suite.service.SetOrUpdateCapital(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("DZD", capital.Currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CapitalServiceTestSuite) TestSetOrUpdateCapital_NegativeBalance() {
	ctx := context.Background()
	req := dto.SetCapitalRequest{
		OpeningBalance: decimal.NewFromInt(-10),
		OpeningDate:    "2025-01-15",
	}

	capital, err := suite.service.SetOrUpdateCapital(ctx, req)

	suite.Require().Error(err)
	suite.Nil(capital)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertCapital")
}

func (suite *CapitalServiceTestSuite) TestSetOrUpdateCapital_InvalidDate() {
	ctx := context.Background()
	req := dto.SetCapitalRequest{
		OpeningBalance: decimal.NewFromInt(10),
		OpeningDate:    "15/01/2025",
	}

	capital, err := suite.service.SetOrUpdateCapital(ctx, req)

	suite.Require().Error(err)
	suite.Nil(capital)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertCapital")
}

func (suite *CapitalServiceTestSuite) TestSetOrUpdateCapital_LockedConflict() {
	ctx := context.Background()
	req := dto.SetCapitalRequest{
		OpeningBalance: decimal.NewFromInt(2000),
		OpeningDate:    "2025-01-15",
	}
	expectedDate := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("UpsertCapital", ctx, req.OpeningBalance, expectedDate, "DZD").Return(nil, apperrors.ErrConflict).Once()

	capital, err := suite.service.SetOrUpdateCapital(ctx, req)

	suite.Require().Error(err)
	suite.Nil(capital)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CapitalServiceTestSuite) TestLockCapital_Success() {
	ctx := context.Background()
	locked := &domain.Capital{CapitalID: models.CapitalSingletonID, IsLocked: true}

	suite.mockRepo.On("LockCapital", ctx).Return(locked, nil).Once()

	capital, err := suite.service.LockCapital(ctx)

	suite.Require().NoError(err)
	suite.True(capital.IsLocked)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CapitalServiceTestSuite) TestLockCapital_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("LockCapital", ctx).Return(nil, apperrors.ErrNotFound).Once()

	capital, err := suite.service.LockCapital(ctx)

	suite.Require().Error(err)
	suite.Nil(capital)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCapitalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CapitalServiceTestSuite))
}

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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FundingRepository ---
type MockFundingRepository struct {
	mock.Mock
}

func (m *MockFundingRepository) SaveFunding(ctx context.Context, funding domain.Funding) error {
	args := m.Called(ctx, funding)
	return args.Error(0)
}

func (m *MockFundingRepository) FindFundingByID(ctx context.Context, fundingID string) (*domain.Funding, error) {
	args := m.Called(ctx, fundingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Funding), args.Error(1)
}

func (m *MockFundingRepository) ListFunding(ctx context.Context) ([]domain.Funding, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Funding), args.Error(1)
}

func (m *MockFundingRepository) UpdateFunding(ctx context.Context, funding domain.Funding) error {
	args := m.Called(ctx, funding)
	return args.Error(0)
}

func (m *MockFundingRepository) DeleteFunding(ctx context.Context, fundingID string) error {
	args := m.Called(ctx, fundingID)
	return args.Error(0)
}

// --- Test Suite ---
type FundingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockFundingRepository
	service  portssvc.FundingSvcFacade
}

func (suite *FundingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockFundingRepository)
	suite.service = services.NewFundingService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *FundingServiceTestSuite) TestCreateFunding_Success() {
	ctx := context.Background()
	req := dto.CreateFundingRequest{
		Amount:        decimal.NewFromInt(50000),
		Date:          "2025-03-10",
		PaymentMethod: "bank",
		Reference:     "VIR-2025-031",
	}
	expectedDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("SaveFunding", ctx, mock.MatchedBy(func(f domain.Funding) bool {
		return f.FundingID != "" &&
			f.Amount.Equal(decimal.NewFromInt(50000)) &&
			f.Date.Equal(expectedDate) &&
			f.PaymentMethod == domain.PaymentBank &&
			f.Reference == "VIR-2025-031"
	})).Return(nil).Once()

	funding, err := suite.service.CreateFunding(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(funding)
	suite.Equal(domain.PaymentBank, funding.PaymentMethod)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FundingServiceTestSuite) TestCreateFunding_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateFundingRequest{
		Amount:        decimal.Zero,
		Date:          "2025-03-10",
		PaymentMethod: "cash",
	}

	funding, err := suite.service.CreateFunding(ctx, req)

	suite.Require().Error(err)
	suite.Nil(funding)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveFunding")
}

func (suite *FundingServiceTestSuite) TestCreateFunding_InvalidDate() {
	ctx := context.Background()
	req := dto.CreateFundingRequest{
		Amount:        decimal.NewFromInt(100),
		Date:          "10-03-2025",
		PaymentMethod: "cash",
	}

	funding, err := suite.service.CreateFunding(ctx, req)

	suite.Require().Error(err)
	suite.Nil(funding)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FundingServiceTestSuite) TestUpdateFunding_PreservesIdentityAndCreatedAt() {
	ctx := context.Background()
	fundingID := uuid.NewString()
	createdAt := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	existing := &domain.Funding{
		FundingID:     fundingID,
		Amount:        decimal.NewFromInt(1000),
		PaymentMethod: domain.PaymentCash,
		AuditFields:   domain.AuditFields{CreatedAt: createdAt, LastUpdatedAt: createdAt},
	}
	req := dto.CreateFundingRequest{
		Amount:        decimal.NewFromInt(2500),
		Date:          "2025-03-01",
		PaymentMethod: "check",
	}

	suite.mockRepo.On("FindFundingByID", ctx, fundingID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateFunding", ctx, mock.MatchedBy(func(f domain.Funding) bool {
		return f.FundingID == fundingID &&
			f.Amount.Equal(decimal.NewFromInt(2500)) &&
			f.CreatedAt.Equal(createdAt) &&
			f.LastUpdatedAt.After(createdAt)
	})).Return(nil).Once()

	funding, err := suite.service.UpdateFunding(ctx, fundingID, req)

	suite.Require().NoError(err)
	suite.Equal(fundingID, funding.FundingID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FundingServiceTestSuite) TestUpdateFunding_NotFound() {
	ctx := context.Background()
	fundingID := uuid.NewString()
	req := dto.CreateFundingRequest{
		Amount:        decimal.NewFromInt(100),
		Date:          "2025-03-01",
		PaymentMethod: "cash",
	}

	suite.mockRepo.On("FindFundingByID", ctx, fundingID).Return(nil, apperrors.ErrNotFound).Once()

	funding, err := suite.service.UpdateFunding(ctx, fundingID, req)

	suite.Require().Error(err)
	suite.Nil(funding)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateFunding")
}

func (suite *FundingServiceTestSuite) TestListFunding_NilBecomesEmptySlice() {
	ctx := context.Background()

	suite.mockRepo.On("ListFunding", ctx).Return([]domain.Funding(nil), nil).Once()

	entries, err := suite.service.ListFunding(ctx)

	suite.Require().NoError(err)
	suite.NotNil(entries)
	suite.Empty(entries)
}

func (suite *FundingServiceTestSuite) TestDeleteFunding_RepoError() {
	ctx := context.Background()
	fundingID := uuid.NewString()

	suite.mockRepo.On("DeleteFunding", ctx, fundingID).Return(assert.AnError).Once()

	err := suite.service.DeleteFunding(ctx, fundingID)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestFundingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FundingServiceTestSuite))
}

package services_test

import (
	"context"
	"testing"

	"github.com/ChantierApp/site_ledger_app/internal/apperrors"
	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	portssvc "github.com/ChantierApp/site_ledger_app/internal/core/ports/services"
	"github.com/ChantierApp/site_ledger_app/internal/core/services"
	"github.com/ChantierApp/site_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PurchaseRepository ---
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) UpdatePurchase(ctx context.Context, purchase domain.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID string) error {
	args := m.Called(ctx, purchaseID)
	return args.Error(0)
}

// --- Mock SupplierRepository ---
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

// --- Test Suite ---
type PurchaseServiceTestSuite struct {
	suite.Suite
	mockPurchaseRepo *MockPurchaseRepository
	mockSupplierRepo *MockSupplierRepository
	service          portssvc.PurchaseSvcFacade
}

func (suite *PurchaseServiceTestSuite) SetupTest() {
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.mockSupplierRepo = new(MockSupplierRepository)
	suite.service = services.NewPurchaseService(suite.mockPurchaseRepo, suite.mockSupplierRepo)
}

func (suite *PurchaseServiceTestSuite) validRequest() dto.CreatePurchaseRequest {
	return dto.CreatePurchaseRequest{
		Date:        "2025-02-10",
		ProductName: "Cement",
		Quantity:    decimal.NewFromInt(10),
		UnitPrice:   decimal.NewFromInt(50),
		SupplierID:  uuid.NewString(),
		PaidAmount:  decimal.NewFromInt(300),
	}
}

// --- Test Cases ---

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_DerivesTotals() {
	ctx := context.Background()
	req := suite.validRequest()
	supplier := &domain.Supplier{SupplierID: req.SupplierID, Name: "Lafarge"}

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, req.SupplierID).Return(supplier, nil).Once()
	suite.mockPurchaseRepo.On("SavePurchase", ctx, mock.MatchedBy(func(p domain.Purchase) bool {
		return p.TotalPrice.Equal(decimal.NewFromInt(500)) &&
			p.RemainingAmount.Equal(decimal.NewFromInt(200)) &&
			p.SupplierName == "Lafarge" &&
			p.PurchaseID != ""
	})).Return(nil).Once()

	purchase, err := suite.service.CreatePurchase(ctx, req)

	suite.Require().NoError(err)
	suite.True(purchase.TotalPrice.Equal(decimal.NewFromInt(500)))
	suite.True(purchase.RemainingAmount.Equal(decimal.NewFromInt(200)))
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
	suite.mockSupplierRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_TotalPriceMismatch() {
	ctx := context.Background()
	req := suite.validRequest()
	wrongTotal := decimal.NewFromInt(999)
	req.TotalPrice = &wrongTotal

	purchase, err := suite.service.CreatePurchase(ctx, req)

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "SavePurchase")
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_MatchingTotalPriceAccepted() {
	ctx := context.Background()
	req := suite.validRequest()
	total := decimal.NewFromInt(500)
	req.TotalPrice = &total
	supplier := &domain.Supplier{SupplierID: req.SupplierID, Name: "Lafarge"}

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, req.SupplierID).Return(supplier, nil).Once()
	suite.mockPurchaseRepo.On("SavePurchase", ctx, mock.AnythingOfType("domain.Purchase")).Return(nil).Once()

	purchase, err := suite.service.CreatePurchase(ctx, req)

	suite.Require().NoError(err)
	suite.True(purchase.TotalPrice.Equal(total))
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_Overpayment() {
	ctx := context.Background()
	req := suite.validRequest()
	req.PaidAmount = decimal.NewFromInt(600)

	purchase, err := suite.service.CreatePurchase(ctx, req)

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "SavePurchase")
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_UnknownSupplier() {
	ctx := context.Background()
	req := suite.validRequest()

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, req.SupplierID).Return(nil, apperrors.ErrNotFound).Once()

	purchase, err := suite.service.CreatePurchase(ctx, req)

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "SavePurchase")
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_ZeroQuantity() {
	ctx := context.Background()
	req := suite.validRequest()
	req.Quantity = decimal.Zero

	purchase, err := suite.service.CreatePurchase(ctx, req)

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PurchaseServiceTestSuite) TestUpdatePurchase_NotFound() {
	ctx := context.Background()
	purchaseID := uuid.NewString()

	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, purchaseID).Return(nil, apperrors.ErrNotFound).Once()

	purchase, err := suite.service.UpdatePurchase(ctx, purchaseID, suite.validRequest())

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestListPurchases_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockPurchaseRepo.On("ListPurchases", ctx).Return([]domain.Purchase(nil), nil).Once()

	entries, err := suite.service.ListPurchases(ctx)

	suite.Require().NoError(err)
	suite.NotNil(entries)
	suite.Empty(entries)
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func TestPurchaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}

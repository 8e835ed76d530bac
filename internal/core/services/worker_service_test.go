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

// --- Mock WorkerPaymentRepository ---
type MockWorkerPaymentRepository struct {
	mock.Mock
}

func (m *MockWorkerPaymentRepository) FindWorkerPaymentByID(ctx context.Context, paymentID string) (*domain.WorkerPayment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkerPayment), args.Error(1)
}

func (m *MockWorkerPaymentRepository) ListWorkerPayments(ctx context.Context) ([]domain.WorkerPayment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkerPayment), args.Error(1)
}

func (m *MockWorkerPaymentRepository) SumPaymentsByWorker(ctx context.Context, workerID string) (decimal.Decimal, error) {
	args := m.Called(ctx, workerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type WorkerServiceTestSuite struct {
	suite.Suite
	mockWorkerRepo    *MockWorkerRepository
	mockPieceworkRepo *MockPieceworkRepository
	mockDailyWageRepo *MockDailyWageRepository
	mockPaymentRepo   *MockWorkerPaymentRepository
	service           portssvc.WorkerSvcFacade
}

func (suite *WorkerServiceTestSuite) SetupTest() {
	suite.mockWorkerRepo = new(MockWorkerRepository)
	suite.mockPieceworkRepo = new(MockPieceworkRepository)
	suite.mockDailyWageRepo = new(MockDailyWageRepository)
	suite.mockPaymentRepo = new(MockWorkerPaymentRepository)
	suite.service = services.NewWorkerService(
		suite.mockWorkerRepo,
		suite.mockPieceworkRepo,
		suite.mockDailyWageRepo,
		suite.mockPaymentRepo,
	)
}

// --- Test Cases ---

func (suite *WorkerServiceTestSuite) TestCreateWorker_Success() {
	ctx := context.Background()
	req := dto.CreateWorkerRequest{Name: "Karim", Profession: "Mason"}

	suite.mockWorkerRepo.On("SaveWorker", ctx, mock.MatchedBy(func(w domain.Worker) bool {
		return w.Name == "Karim" && w.Profession == "Mason" && w.WorkerID != ""
	})).Return(nil).Once()

	worker, err := suite.service.CreateWorker(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("Karim", worker.Name)
	suite.mockWorkerRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestGetWorkerStatement_SumsBothLedgers() {
	ctx := context.Background()
	workerID := uuid.NewString()
	worker := &domain.Worker{WorkerID: workerID, Name: "Karim"}

	piecework := []domain.Piecework{
		{TotalPrice: decimal.NewFromInt(300), PaidAmount: decimal.NewFromInt(100)},
		{TotalPrice: decimal.NewFromInt(200), PaidAmount: decimal.NewFromInt(200)},
	}
	dailyWages := []domain.DailyWage{
		{TotalPrice: decimal.NewFromInt(150), PaidAmount: decimal.NewFromInt(50)},
	}

	suite.mockWorkerRepo.On("FindWorkerByID", ctx, workerID).Return(worker, nil).Once()
	suite.mockPieceworkRepo.On("ListPieceworkByWorker", ctx, workerID).Return(piecework, nil).Once()
	suite.mockDailyWageRepo.On("ListDailyWagesByWorker", ctx, workerID).Return(dailyWages, nil).Once()
	suite.mockPaymentRepo.On("SumPaymentsByWorker", ctx, workerID).Return(decimal.NewFromInt(400), nil).Once()

	statement, err := suite.service.GetWorkerStatement(ctx, workerID)

	suite.Require().NoError(err)
	suite.True(statement.TotalEarned.Equal(decimal.NewFromInt(650)))
	suite.True(statement.PaidOnEntries.Equal(decimal.NewFromInt(350)))
	suite.True(statement.RemainingOnEntries.Equal(decimal.NewFromInt(300)))
	// The payment ledger stays an independent figure, not reconciled with
	// the per-entry paid amounts.
	suite.True(statement.TotalPayments.Equal(decimal.NewFromInt(400)))
	suite.mockWorkerRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestGetWorkerStatement_EmptyLedgers() {
	ctx := context.Background()
	workerID := uuid.NewString()
	worker := &domain.Worker{WorkerID: workerID}

	suite.mockWorkerRepo.On("FindWorkerByID", ctx, workerID).Return(worker, nil).Once()
	suite.mockPieceworkRepo.On("ListPieceworkByWorker", ctx, workerID).Return([]domain.Piecework{}, nil).Once()
	suite.mockDailyWageRepo.On("ListDailyWagesByWorker", ctx, workerID).Return([]domain.DailyWage{}, nil).Once()
	suite.mockPaymentRepo.On("SumPaymentsByWorker", ctx, workerID).Return(decimal.Zero, nil).Once()

	statement, err := suite.service.GetWorkerStatement(ctx, workerID)

	suite.Require().NoError(err)
	suite.True(statement.TotalEarned.IsZero())
	suite.True(statement.TotalPayments.IsZero())
}

func (suite *WorkerServiceTestSuite) TestGetWorkerStatement_WorkerNotFound() {
	ctx := context.Background()
	workerID := uuid.NewString()

	suite.mockWorkerRepo.On("FindWorkerByID", ctx, workerID).Return(nil, apperrors.ErrNotFound).Once()

	statement, err := suite.service.GetWorkerStatement(ctx, workerID)

	suite.Require().Error(err)
	suite.Nil(statement)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPieceworkRepo.AssertNotCalled(suite.T(), "ListPieceworkByWorker")
}

func TestWorkerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerServiceTestSuite))
}

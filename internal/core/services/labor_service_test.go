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

// --- Mock PieceworkRepository ---
type MockPieceworkRepository struct {
	mock.Mock
}

func (m *MockPieceworkRepository) SavePiecework(ctx context.Context, entry domain.Piecework) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockPieceworkRepository) FindPieceworkByID(ctx context.Context, pieceworkID string) (*domain.Piecework, error) {
	args := m.Called(ctx, pieceworkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Piecework), args.Error(1)
}

func (m *MockPieceworkRepository) ListPiecework(ctx context.Context) ([]domain.Piecework, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Piecework), args.Error(1)
}

func (m *MockPieceworkRepository) ListPieceworkByWorker(ctx context.Context, workerID string) ([]domain.Piecework, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Piecework), args.Error(1)
}

func (m *MockPieceworkRepository) UpdatePiecework(ctx context.Context, entry domain.Piecework) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockPieceworkRepository) DeletePiecework(ctx context.Context, pieceworkID string) error {
	args := m.Called(ctx, pieceworkID)
	return args.Error(0)
}

// --- Mock DailyWageRepository ---
type MockDailyWageRepository struct {
	mock.Mock
}

func (m *MockDailyWageRepository) SaveDailyWage(ctx context.Context, entry domain.DailyWage) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockDailyWageRepository) FindDailyWageByID(ctx context.Context, dailyWageID string) (*domain.DailyWage, error) {
	args := m.Called(ctx, dailyWageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyWage), args.Error(1)
}

func (m *MockDailyWageRepository) ListDailyWages(ctx context.Context) ([]domain.DailyWage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyWage), args.Error(1)
}

func (m *MockDailyWageRepository) ListDailyWagesByWorker(ctx context.Context, workerID string) ([]domain.DailyWage, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyWage), args.Error(1)
}

func (m *MockDailyWageRepository) UpdateDailyWage(ctx context.Context, entry domain.DailyWage) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockDailyWageRepository) DeleteDailyWage(ctx context.Context, dailyWageID string) error {
	args := m.Called(ctx, dailyWageID)
	return args.Error(0)
}

// --- Mock WorkerRepository ---
type MockWorkerRepository struct {
	mock.Mock
}

func (m *MockWorkerRepository) SaveWorker(ctx context.Context, worker domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}

func (m *MockWorkerRepository) FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) UpdateWorker(ctx context.Context, worker domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}

func (m *MockWorkerRepository) DeleteWorker(ctx context.Context, workerID string) error {
	args := m.Called(ctx, workerID)
	return args.Error(0)
}

// --- Test Suite ---
type LaborServiceTestSuite struct {
	suite.Suite
	mockPieceworkRepo *MockPieceworkRepository
	mockDailyWageRepo *MockDailyWageRepository
	mockWorkerRepo    *MockWorkerRepository
	pieceworkService  portssvc.PieceworkSvcFacade
	dailyWageService  portssvc.DailyWageSvcFacade
}

func (suite *LaborServiceTestSuite) SetupTest() {
	suite.mockPieceworkRepo = new(MockPieceworkRepository)
	suite.mockDailyWageRepo = new(MockDailyWageRepository)
	suite.mockWorkerRepo = new(MockWorkerRepository)
	suite.pieceworkService = services.NewPieceworkService(suite.mockPieceworkRepo, suite.mockWorkerRepo)
	suite.dailyWageService = services.NewDailyWageService(suite.mockDailyWageRepo, suite.mockWorkerRepo)
}

// --- Test Cases ---

func (suite *LaborServiceTestSuite) TestCreatePiecework_DerivesTotals() {
	ctx := context.Background()
	workerID := uuid.NewString()
	req := dto.CreatePieceworkRequest{
		Date:       "2025-04-02",
		WorkerID:   workerID,
		Quantity:   decimal.NewFromInt(20),
		UnitPrice:  decimal.NewFromInt(15),
		PaidAmount: decimal.NewFromInt(100),
	}
	worker := &domain.Worker{WorkerID: workerID, Name: "Karim"}

	suite.mockWorkerRepo.On("FindWorkerByID", ctx, workerID).Return(worker, nil).Once()
	suite.mockPieceworkRepo.On("SavePiecework", ctx, mock.MatchedBy(func(p domain.Piecework) bool {
		return p.TotalPrice.Equal(decimal.NewFromInt(300)) &&
			p.RemainingAmount.Equal(decimal.NewFromInt(200)) &&
			p.WorkerName == "Karim"
	})).Return(nil).Once()

	entry, err := suite.pieceworkService.CreatePiecework(ctx, req)

	suite.Require().NoError(err)
	suite.True(entry.TotalPrice.Equal(decimal.NewFromInt(300)))
	suite.True(entry.RemainingAmount.Equal(decimal.NewFromInt(200)))
	suite.mockPieceworkRepo.AssertExpectations(suite.T())
	suite.mockWorkerRepo.AssertExpectations(suite.T())
}

func (suite *LaborServiceTestSuite) TestCreatePiecework_Overpayment() {
	ctx := context.Background()
	req := dto.CreatePieceworkRequest{
		Date:       "2025-04-02",
		WorkerID:   uuid.NewString(),
		Quantity:   decimal.NewFromInt(2),
		UnitPrice:  decimal.NewFromInt(10),
		PaidAmount: decimal.NewFromInt(50),
	}

	entry, err := suite.pieceworkService.CreatePiecework(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPieceworkRepo.AssertNotCalled(suite.T(), "SavePiecework")
}

func (suite *LaborServiceTestSuite) TestCreatePiecework_UnknownWorker() {
	ctx := context.Background()
	workerID := uuid.NewString()
	req := dto.CreatePieceworkRequest{
		Date:      "2025-04-02",
		WorkerID:  workerID,
		Quantity:  decimal.NewFromInt(2),
		UnitPrice: decimal.NewFromInt(10),
	}

	suite.mockWorkerRepo.On("FindWorkerByID", ctx, workerID).Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.pieceworkService.CreatePiecework(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPieceworkRepo.AssertNotCalled(suite.T(), "SavePiecework")
}

func (suite *LaborServiceTestSuite) TestCreateDailyWage_DerivesTotals() {
	ctx := context.Background()
	workerID := uuid.NewString()
	req := dto.CreateDailyWageRequest{
		Date:       "2025-04-03",
		WorkerID:   workerID,
		Days:       decimal.NewFromInt(5),
		DailyRate:  decimal.NewFromInt(40),
		PaidAmount: decimal.NewFromInt(200),
	}
	worker := &domain.Worker{WorkerID: workerID, Name: "Samir"}

	suite.mockWorkerRepo.On("FindWorkerByID", ctx, workerID).Return(worker, nil).Once()
	suite.mockDailyWageRepo.On("SaveDailyWage", ctx, mock.MatchedBy(func(d domain.DailyWage) bool {
		return d.TotalPrice.Equal(decimal.NewFromInt(200)) &&
			d.RemainingAmount.IsZero() &&
			d.WorkerName == "Samir"
	})).Return(nil).Once()

	entry, err := suite.dailyWageService.CreateDailyWage(ctx, req)

	suite.Require().NoError(err)
	suite.True(entry.RemainingAmount.IsZero())
	suite.mockDailyWageRepo.AssertExpectations(suite.T())
	suite.mockWorkerRepo.AssertExpectations(suite.T())
}

func (suite *LaborServiceTestSuite) TestDeleteDailyWage_NotFound() {
	ctx := context.Background()
	dailyWageID := uuid.NewString()

	suite.mockDailyWageRepo.On("DeleteDailyWage", ctx, dailyWageID).Return(apperrors.ErrNotFound).Once()

	err := suite.dailyWageService.DeleteDailyWage(ctx, dailyWageID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockDailyWageRepo.AssertExpectations(suite.T())
}

func TestLaborServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LaborServiceTestSuite))
}

package repositories

import (
	"context"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
)

// PieceworkReader defines read operations for the piecework ledger.
type PieceworkReader interface {
	FindPieceworkByID(ctx context.Context, pieceworkID string) (*domain.Piecework, error)
	ListPiecework(ctx context.Context) ([]domain.Piecework, error)
	ListPieceworkByWorker(ctx context.Context, workerID string) ([]domain.Piecework, error)
}

// PieceworkWriter defines write operations for the piecework ledger.
type PieceworkWriter interface {
	SavePiecework(ctx context.Context, entry domain.Piecework) error
	UpdatePiecework(ctx context.Context, entry domain.Piecework) error
	DeletePiecework(ctx context.Context, pieceworkID string) error
}

// PieceworkRepositoryFacade combines all piecework repository interfaces.
type PieceworkRepositoryFacade interface {
	PieceworkReader
	PieceworkWriter
}

// DailyWageReader defines read operations for the daily-wage ledger.
type DailyWageReader interface {
	FindDailyWageByID(ctx context.Context, dailyWageID string) (*domain.DailyWage, error)
	ListDailyWages(ctx context.Context) ([]domain.DailyWage, error)
	ListDailyWagesByWorker(ctx context.Context, workerID string) ([]domain.DailyWage, error)
}

// DailyWageWriter defines write operations for the daily-wage ledger.
type DailyWageWriter interface {
	SaveDailyWage(ctx context.Context, entry domain.DailyWage) error
	UpdateDailyWage(ctx context.Context, entry domain.DailyWage) error
	DeleteDailyWage(ctx context.Context, dailyWageID string) error
}

// DailyWageRepositoryFacade combines all daily-wage repository interfaces.
type DailyWageRepositoryFacade interface {
	DailyWageReader
	DailyWageWriter
}

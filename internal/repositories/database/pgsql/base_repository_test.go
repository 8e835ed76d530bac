package pgsql

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ChantierApp/site_ledger_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyStoreErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "unique violation becomes duplicate",
			err:  &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			want: apperrors.ErrDuplicate,
		},
		{
			name: "connection exception becomes unavailable",
			err:  &pgconn.PgError{Code: "08006", Message: "connection failure"},
			want: apperrors.ErrUnavailable,
		},
		{
			name: "deadline exceeded becomes unavailable",
			err:  fmt.Errorf("query: %w", context.DeadlineExceeded),
			want: apperrors.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyStoreErr(tt.err)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestClassifyStoreErr_PassesThroughOtherErrors(t *testing.T) {
	queryBug := &pgconn.PgError{Code: "42703", Message: "column does not exist"}
	got := classifyStoreErr(queryBug)

	assert.NotErrorIs(t, got, apperrors.ErrUnavailable)
	assert.NotErrorIs(t, got, apperrors.ErrDuplicate)
	var pgErr *pgconn.PgError
	assert.True(t, errors.As(got, &pgErr))
}

func TestClassifyStoreErr_NilStaysNil(t *testing.T) {
	assert.NoError(t, classifyStoreErr(nil))
}

package database_test

import (
	"context"
	"testing"

	"github.com/ChantierApp/site_ledger_app/pkg/database"
	"github.com/stretchr/testify/assert"
)

func TestNewPgxPool_EmptyURL(t *testing.T) {
	pool, err := database.NewPgxPool(context.Background(), "", 10)

	assert.Error(t, err)
	assert.Nil(t, pool)
}

func TestNewPgxPool_MalformedURL(t *testing.T) {
	pool, err := database.NewPgxPool(context.Background(), "not-a-valid-url://%%", 10)

	assert.Error(t, err)
	assert.Nil(t, pool)
}

func TestClosePgxPool_NilPoolIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		database.ClosePgxPool(nil)
	})
}

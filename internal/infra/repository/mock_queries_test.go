//go:build unit

package repository

import (
	"context"

	sqlc "storefront-checkout/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

type MockQueries struct {
	mock.Mock
}

func (m *MockQueries) GetProductByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Products), args.Error(1)
}

func (m *MockQueries) ListActiveDiscountsForProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveDiscountsForProductParams) ([]sqlc.ListActiveDiscountsForProductRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListActiveDiscountsForProductRow), args.Error(1)
}

func (m *MockQueries) GetCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.GetCouponByCodeRow, error) {
	args := m.Called(ctx, db, code)
	return args.Get(0).(sqlc.GetCouponByCodeRow), args.Error(1)
}

func (m *MockQueries) IncrementCouponRedemption(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) InsertCouponRedemption(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCouponRedemptionParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

// sqlc.DBTX implementation so the mock can stand in for the connection too
func (m *MockQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

package services_test

import (
	"context"

	"github.com/SscSPs/fxcalc/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock RateSource ---
type MockRateSource struct {
	mock.Mock
	name string
}

func NewMockRateSource(name string) *MockRateSource {
	return &MockRateSource{name: name}
}

func (m *MockRateSource) Name() string {
	return m.name
}

func (m *MockRateSource) FetchRates(ctx context.Context) ([]domain.RateEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateEntry), args.Error(1)
}

// --- Mock ConversionRepository ---
type MockConversionRepository struct {
	mock.Mock
}

func (m *MockConversionRepository) Append(ctx context.Context, rec domain.ConversionRecord) (int64, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConversionRepository) Recent(ctx context.Context, n int) ([]domain.ConversionRecord, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConversionRecord), args.Error(1)
}

func (m *MockConversionRepository) RecentBefore(ctx context.Context, cursor domain.HistoryCursor, n int) ([]domain.ConversionRecord, error) {
	args := m.Called(ctx, cursor, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConversionRecord), args.Error(1)
}

func (m *MockConversionRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) GetRates(ctx context.Context) domain.RateTable {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateTable)
}

func (m *MockRateService) FetchLive(ctx context.Context) (domain.RateTable, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateTable), args.Error(1)
}

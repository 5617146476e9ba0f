package handlers_test

import (
	"context"

	"github.com/SscSPs/fxcalc/internal/core/domain"
	portssvc "github.com/SscSPs/fxcalc/internal/core/ports/services"
	"github.com/SscSPs/fxcalc/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock ConversionService ---
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) Convert(ctx context.Context, req dto.ConvertRequest) (*dto.ConversionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConversionResult), args.Error(1)
}

func (m *MockConversionService) ConvertWithRates(ctx context.Context, table domain.RateTable, req dto.ConvertRequest) (*dto.ConversionResult, error) {
	args := m.Called(ctx, table, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConversionResult), args.Error(1)
}

func (m *MockConversionService) ListRecent(ctx context.Context, limit int) ([]domain.ConversionRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConversionRecord), args.Error(1)
}

func (m *MockConversionService) CountConversions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConversionService) ListPage(ctx context.Context, limit int, pageToken string) ([]domain.ConversionRecord, string, error) {
	args := m.Called(ctx, limit, pageToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.ConversionRecord), args.String(1), args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.ConversionSvcFacade = (*MockConversionService)(nil)

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

// Ensure mock implements the interface
var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

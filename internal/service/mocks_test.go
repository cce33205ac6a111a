package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/models"
)

type MockRateClient struct {
	mock.Mock
}

func (m *MockRateClient) GetCurrentRate(ctx context.Context, from, to string) (float64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRateClient) GetHistoricalRates(ctx context.Context, from, to string, timeframe string) ([]models.HistoricalPoint, error) {
	args := m.Called(ctx, from, to, timeframe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HistoricalPoint), args.Error(1)
}

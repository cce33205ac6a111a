package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/custom_err"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/models"
)

func setupHistoryService(t *testing.T) (*HistoryService, *MockRateClient) {
	t.Helper()

	rateClient := new(MockRateClient)
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	return NewHistoryService(rateClient, log), rateClient
}

func TestHistoryService_HistoricalRates_Success(t *testing.T) {
	service, rateClient := setupHistoryService(t)
	ctx := context.Background()

	points := []models.HistoricalPoint{
		{Date: "2024-01-01", Rate: 1.05},
		{Date: "2024-01-02", Rate: 1.1},
	}

	rateClient.On("GetHistoricalRates", ctx, "JPY", "USD", "1 month").Return(points, nil)

	result, err := service.HistoricalRates(ctx, "JPY", "USD", models.Timeframe1M)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "JPY", result.FromCurrency)
	assert.Equal(t, "USD", result.ToCurrency)
	assert.Equal(t, models.Timeframe1M, result.Timeframe)
	assert.Equal(t, points, result.Points)
	assert.NotEmpty(t, result.Chart.Path)

	rateClient.AssertExpectations(t)
}

func TestHistoryService_HistoricalRates_SortsByDate(t *testing.T) {
	service, rateClient := setupHistoryService(t)
	ctx := context.Background()

	unsorted := []models.HistoricalPoint{
		{Date: "2024-02-01", Rate: 1.1},
		{Date: "2024-01-01", Rate: 1.05},
	}

	rateClient.On("GetHistoricalRates", ctx, "JPY", "USD", "7 days").Return(unsorted, nil)

	result, err := service.HistoricalRates(ctx, "JPY", "USD", models.Timeframe7D)

	assert.NoError(t, err)
	assert.Equal(t, []models.HistoricalPoint{
		{Date: "2024-01-01", Rate: 1.05},
		{Date: "2024-02-01", Rate: 1.1},
	}, result.Points)
}

func TestHistoryService_HistoricalRates_SortIsStable(t *testing.T) {
	service, rateClient := setupHistoryService(t)
	ctx := context.Background()

	// одинаковые даты сохраняют исходный порядок
	duplicated := []models.HistoricalPoint{
		{Date: "2024-01-02", Rate: 1.2},
		{Date: "2024-01-01", Rate: 1.0},
		{Date: "2024-01-01", Rate: 1.1},
	}

	rateClient.On("GetHistoricalRates", ctx, "JPY", "USD", "1 day").Return(duplicated, nil)

	result, err := service.HistoricalRates(ctx, "JPY", "USD", models.Timeframe1D)

	assert.NoError(t, err)
	assert.Equal(t, []models.HistoricalPoint{
		{Date: "2024-01-01", Rate: 1.0},
		{Date: "2024-01-01", Rate: 1.1},
		{Date: "2024-01-02", Rate: 1.2},
	}, result.Points)
}

func TestHistoryService_HistoricalRates_InvalidTimeframe(t *testing.T) {
	service, rateClient := setupHistoryService(t)
	ctx := context.Background()

	result, err := service.HistoricalRates(ctx, "JPY", "USD", models.Timeframe("5Y"))

	assert.ErrorIs(t, err, custom_err.ErrInvalidTimeframe)
	assert.Nil(t, result)

	rateClient.AssertNotCalled(t, "GetHistoricalRates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHistoryService_HistoricalRates_InvalidCurrency(t *testing.T) {
	service, rateClient := setupHistoryService(t)
	ctx := context.Background()

	result, err := service.HistoricalRates(ctx, "JPY", "ZZZ", models.Timeframe1M)

	assert.ErrorIs(t, err, custom_err.ErrInvalidCurrency)
	assert.Nil(t, result)

	rateClient.AssertNotCalled(t, "GetHistoricalRates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHistoryService_HistoricalRates_NoResult(t *testing.T) {
	service, rateClient := setupHistoryService(t)
	ctx := context.Background()

	rateClient.On("GetHistoricalRates", ctx, "JPY", "USD", "1 year").
		Return(nil, custom_err.ErrNoResult)

	result, err := service.HistoricalRates(ctx, "JPY", "USD", models.Timeframe1Y)

	assert.ErrorIs(t, err, custom_err.ErrNoResult)
	assert.Nil(t, result)
}

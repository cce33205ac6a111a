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

func setupConverterService(t *testing.T) (*ConverterService, *MockRateClient) {
	t.Helper()

	rateClient := new(MockRateClient)
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	return NewConverterService(rateClient, log), rateClient
}

func TestConverterService_Convert_Success(t *testing.T) {
	service, rateClient := setupConverterService(t)
	ctx := context.Background()

	rateClient.On("GetCurrentRate", ctx, "JPY", "USD").Return(0.0067, nil)

	result, err := service.Convert(ctx, models.ConvertRequest{
		FromCurrency: "JPY",
		ToCurrency:   "USD",
		Amount:       "400000.00",
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "JPY", result.FromCurrency)
	assert.Equal(t, "USD", result.ToCurrency)
	assert.Equal(t, 0.0067, result.Rate)
	assert.Equal(t, 2680.0, result.ConvertedAmount)
	assert.Equal(t, "2680.00", result.Converted)
	assert.Equal(t, "1 JPY = 0.0067 USD", result.UnitRateLine)

	rateClient.AssertExpectations(t)
}

func TestConverterService_Convert_ExactMultiplication(t *testing.T) {
	service, rateClient := setupConverterService(t)
	ctx := context.Background()

	// 0.1 * 0.2 в float64 дает 0.020000000000000004, decimal считает точно
	rateClient.On("GetCurrentRate", ctx, "USD", "EUR").Return(0.2, nil)

	result, err := service.Convert(ctx, models.ConvertRequest{
		FromCurrency: "USD",
		ToCurrency:   "EUR",
		Amount:       "0.1",
	})

	assert.NoError(t, err)
	assert.Equal(t, 0.02, result.ConvertedAmount)
	assert.Equal(t, "0.02", result.Converted)
}

func TestConverterService_Convert_InvalidAmount(t *testing.T) {
	service, rateClient := setupConverterService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		amount string
	}{
		{"empty", ""},
		{"non numeric", "abc"},
		{"zero", "0"},
		{"zero with decimals", "0.00"},
		{"negative", "-5"},
		{"two dots", "1.2.3"},
		{"lone dot", "."},
		{"spaces", " 10"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := service.Convert(ctx, models.ConvertRequest{
				FromCurrency: "JPY",
				ToCurrency:   "USD",
				Amount:       tc.amount,
			})

			assert.ErrorIs(t, err, custom_err.ErrInvalidAmount)
			assert.Nil(t, result)
		})
	}

	// при невалидной сумме запрос к источнику курсов не выполняется
	rateClient.AssertNotCalled(t, "GetCurrentRate", mock.Anything, mock.Anything, mock.Anything)
}

func TestConverterService_Convert_InvalidCurrency(t *testing.T) {
	service, rateClient := setupConverterService(t)
	ctx := context.Background()

	result, err := service.Convert(ctx, models.ConvertRequest{
		FromCurrency: "XXX",
		ToCurrency:   "USD",
		Amount:       "100",
	})

	assert.ErrorIs(t, err, custom_err.ErrInvalidCurrency)
	assert.Nil(t, result)

	rateClient.AssertNotCalled(t, "GetCurrentRate", mock.Anything, mock.Anything, mock.Anything)
}

func TestConverterService_Convert_SameCurrencyAllowed(t *testing.T) {
	service, rateClient := setupConverterService(t)
	ctx := context.Background()

	rateClient.On("GetCurrentRate", ctx, "USD", "USD").Return(1.0, nil)

	result, err := service.Convert(ctx, models.ConvertRequest{
		FromCurrency: "USD",
		ToCurrency:   "USD",
		Amount:       "50",
	})

	assert.NoError(t, err)
	assert.Equal(t, 50.0, result.ConvertedAmount)
}

func TestConverterService_Convert_NoResult(t *testing.T) {
	service, rateClient := setupConverterService(t)
	ctx := context.Background()

	rateClient.On("GetCurrentRate", ctx, "JPY", "USD").Return(0.0, custom_err.ErrNoResult)

	result, err := service.Convert(ctx, models.ConvertRequest{
		FromCurrency: "JPY",
		ToCurrency:   "USD",
		Amount:       "100",
	})

	assert.ErrorIs(t, err, custom_err.ErrNoResult)
	assert.Nil(t, result)
}

func TestConverterService_Convert_NonPositiveRate(t *testing.T) {
	service, rateClient := setupConverterService(t)
	ctx := context.Background()

	rateClient.On("GetCurrentRate", ctx, "JPY", "USD").Return(-1.5, nil)

	result, err := service.Convert(ctx, models.ConvertRequest{
		FromCurrency: "JPY",
		ToCurrency:   "USD",
		Amount:       "100",
	})

	assert.ErrorIs(t, err, custom_err.ErrNoResult)
	assert.Nil(t, result)
}

func TestConverterService_Convert_LowercaseCurrencyCodes(t *testing.T) {
	service, rateClient := setupConverterService(t)
	ctx := context.Background()

	rateClient.On("GetCurrentRate", ctx, "JPY", "USD").Return(0.0067, nil)

	result, err := service.Convert(ctx, models.ConvertRequest{
		FromCurrency: "jpy",
		ToCurrency:   "usd",
		Amount:       "100",
	})

	assert.NoError(t, err)
	assert.Equal(t, "JPY", result.FromCurrency)
	assert.Equal(t, "USD", result.ToCurrency)
}

func TestConverterService_Currencies_All(t *testing.T) {
	service, _ := setupConverterService(t)

	result := service.Currencies("")

	assert.Equal(t, len(models.Catalog()), len(result.Currencies))
	assert.Equal(t, "https://flagcdn.com/w20/us.png", result.Currencies[0].FlagURL)
}

func TestConverterService_Currencies_Filtered(t *testing.T) {
	service, _ := setupConverterService(t)

	result := service.Currencies("yen")

	assert.Len(t, result.Currencies, 1)
	assert.Equal(t, "JPY", result.Currencies[0].Code)
	assert.Equal(t, "https://flagcdn.com/w20/jp.png", result.Currencies[0].FlagURL)
}

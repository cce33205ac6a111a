package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/custom_err"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/gemini"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/models"
)

// amountPattern сумма без знака: цифры и не более одной точки
var amountPattern = regexp.MustCompile(`^\d*\.?\d*$`)

type Converter interface {
	Convert(ctx context.Context, req models.ConvertRequest) (*models.ConvertResponse, error)
	Currencies(term string) *models.CurrenciesResponse
}

type ConverterService struct {
	rateClient gemini.RateClient
	log        *slog.Logger
}

func NewConverterService(rateClient gemini.RateClient, log *slog.Logger) *ConverterService {
	return &ConverterService{
		rateClient: rateClient,
		log:        log,
	}
}

// Convert проверяет запрос, получает текущий курс и считает сумму обмена.
// Умножение выполняется точно через decimal; округление только при выводе.
func (s *ConverterService) Convert(ctx context.Context, req models.ConvertRequest) (*models.ConvertResponse, error) {
	const op = "service.Convert"

	from, ok := models.FindCurrency(req.FromCurrency)
	if !ok {
		return nil, custom_err.ErrInvalidCurrency
	}
	to, ok := models.FindCurrency(req.ToCurrency)
	if !ok {
		return nil, custom_err.ErrInvalidCurrency
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	rate, err := s.rateClient.GetCurrentRate(ctx, from.Code, to.Code)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get exchange rate: %w", op, err)
	}
	if rate <= 0 {
		s.log.Error("получен неположительный курс",
			slog.String("op", op),
			slog.String("from", from.Code),
			slog.String("to", to.Code),
			slog.Float64("rate", rate))
		return nil, fmt.Errorf("%s: %w", op, custom_err.ErrNoResult)
	}

	converted := amount.Mul(decimal.NewFromFloat(rate))

	s.log.Info("конвертация валют",
		slog.String("from", from.Code),
		slog.String("to", to.Code),
		slog.String("amount", amount.String()),
		slog.Float64("rate", rate),
		slog.String("converted", converted.String()))

	return &models.ConvertResponse{
		FromCurrency:    from.Code,
		ToCurrency:      to.Code,
		Amount:          amount.InexactFloat64(),
		Rate:            rate,
		ConvertedAmount: converted.InexactFloat64(),
		Converted:       converted.StringFixed(2),
		UnitRateLine:    fmt.Sprintf("1 %s = %s %s", from.Code, strconv.FormatFloat(rate, 'f', 4, 64), to.Code),
	}, nil
}

// Currencies возвращает каталог валют, опционально отфильтрованный по term
func (s *ConverterService) Currencies(term string) *models.CurrenciesResponse {
	filtered := models.FilterCurrencies(models.Catalog(), term)

	views := make([]models.CurrencyView, len(filtered))
	for i, c := range filtered {
		views[i] = models.CurrencyView{
			Currency: c,
			FlagURL:  c.FlagURL(),
		}
	}

	return &models.CurrenciesResponse{Currencies: views}
}

// parseAmount разбирает сумму из строки. Принимаются только строки из цифр
// с не более чем одной точкой и положительным значением.
func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" || !amountPattern.MatchString(raw) {
		return decimal.Decimal{}, custom_err.ErrInvalidAmount
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, custom_err.ErrInvalidAmount
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, custom_err.ErrInvalidAmount
	}

	return amount, nil
}

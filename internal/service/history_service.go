package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/custom_err"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/gemini"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/models"
)

type History interface {
	HistoricalRates(ctx context.Context, from, to string, timeframe models.Timeframe) (*models.HistoryResponse, error)
}

type HistoryService struct {
	rateClient gemini.RateClient
	log        *slog.Logger
}

func NewHistoryService(rateClient gemini.RateClient, log *slog.Logger) *HistoryService {
	return &HistoryService{
		rateClient: rateClient,
		log:        log,
	}
}

// HistoricalRates получает у источника дневные курсы за период и строит
// геометрию графика. Серия перед использованием сортируется по дате по
// возрастанию, даже если клиент уже вернул ее отсортированной.
func (s *HistoryService) HistoricalRates(ctx context.Context, from, to string, timeframe models.Timeframe) (*models.HistoryResponse, error) {
	const op = "service.HistoricalRates"

	fromCurrency, ok := models.FindCurrency(from)
	if !ok {
		return nil, custom_err.ErrInvalidCurrency
	}
	toCurrency, ok := models.FindCurrency(to)
	if !ok {
		return nil, custom_err.ErrInvalidCurrency
	}
	if !timeframe.IsValid() {
		return nil, custom_err.ErrInvalidTimeframe
	}

	points, err := s.rateClient.GetHistoricalRates(ctx, fromCurrency.Code, toCurrency.Code, timeframe.Phrase())
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get historical rates: %w", op, err)
	}

	sortPointsByDate(points)

	s.log.Info("получена историческая серия",
		slog.String("from", fromCurrency.Code),
		slog.String("to", toCurrency.Code),
		slog.String("timeframe", string(timeframe)),
		slog.Int("points", len(points)))

	return &models.HistoryResponse{
		FromCurrency: fromCurrency.Code,
		ToCurrency:   toCurrency.Code,
		Timeframe:    timeframe,
		Points:       points,
		Chart:        BuildChartGeometry(points),
	}, nil
}

// sortPointsByDate стабильная сортировка по возрастанию даты. Даты в формате
// YYYY-MM-DD, поэтому лексикографический порядок совпадает с хронологическим.
func sortPointsByDate(points []models.HistoricalPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
}

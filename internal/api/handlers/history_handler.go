package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/api/middlew"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/custom_err"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/models"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/service"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/pkg/response"
)

type HistoryHandler struct {
	service service.History
}

func NewHistoryHandler(service service.History) *HistoryHandler {
	return &HistoryHandler{
		service: service,
	}
}

// GetHistoricalRates godoc
// @Summary      Исторические курсы
// @Description  Возвращает дневные курсы за период вместе с геометрией графика
// @Tags         history
// @Produce      json
// @Param        from query string true "Код исходной валюты"
// @Param        to query string true "Код целевой валюты"
// @Param        timeframe query string true "Период: 1D, 7D, 1M или 1Y"
// @Success      200 {object} models.HistoryResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      502 {object} response.ErrorResponse
// @Router       /history [get]
func (h *HistoryHandler) GetHistoricalRates(w http.ResponseWriter, r *http.Request) {
	const op = "handler.GetHistoricalRates"
	log := middlew.GetLogger(r.Context())

	query := r.URL.Query()
	from := query.Get("from")
	to := query.Get("to")
	timeframe := models.Timeframe(strings.ToUpper(query.Get("timeframe")))

	if from == "" || to == "" || timeframe == "" {
		log.Warn("missing query parameters", slog.String("op", op))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_input", "Parameters from, to and timeframe are required")
		return
	}

	log.Info("запрос исторических курсов",
		slog.String("op", op),
		slog.String("from", from),
		slog.String("to", to),
		slog.String("timeframe", string(timeframe)))

	result, err := h.service.HistoricalRates(r.Context(), from, to, timeframe)
	if err != nil {
		switch {
		case errors.Is(err, custom_err.ErrInvalidCurrency):
			log.Warn("invalid currency", slog.String("op", op))
			response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_currency", "Unknown currency code")
		case errors.Is(err, custom_err.ErrInvalidTimeframe):
			log.Warn("invalid timeframe", slog.String("op", op))
			response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_timeframe", "Unknown timeframe")
		case errors.Is(err, custom_err.ErrNoResult):
			log.Warn("historical data unavailable", slog.String("op", op))
			response.WriteJSONError(w, log, http.StatusBadGateway, "history_unavailable", "Could not fetch historical data. Please try another timeframe.")
		default:
			log.Error("failed to get historical rates", slog.String("op", op), slog.String("error", err.Error()))
			response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "An internal error occurred")
		}
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, result)
}

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/api/middlew"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/custom_err"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/models"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/service"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/pkg/response"
)

type ConvertHandler struct {
	service  service.Converter
	validate *validator.Validate
}

func NewConvertHandler(service service.Converter) *ConvertHandler {
	return &ConvertHandler{
		service:  service,
		validate: validator.New(),
	}
}

// Convert godoc
// @Summary      Конвертировать сумму
// @Description  Запрашивает текущий курс у модели и считает сумму обмена
// @Tags         convert
// @Accept       json
// @Produce      json
// @Param        request body models.ConvertRequest true "Данные конвертации"
// @Success      200 {object} models.ConvertResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      502 {object} response.ErrorResponse
// @Router       /convert [post]
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	const op = "handler.Convert"
	log := middlew.GetLogger(r.Context())

	defer r.Body.Close()

	var req models.ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_json", "Invalid JSON body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Warn("invalid request", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_input", "Invalid request body")
		return
	}

	log.Info("запрос на конвертацию",
		slog.String("op", op),
		slog.String("from", req.FromCurrency),
		slog.String("to", req.ToCurrency),
		slog.String("amount", req.Amount))

	result, err := h.service.Convert(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, custom_err.ErrInvalidCurrency):
			log.Warn("invalid currency", slog.String("op", op))
			response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_currency", "Unknown currency code")
		case errors.Is(err, custom_err.ErrInvalidAmount):
			log.Warn("invalid amount", slog.String("op", op))
			response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_amount", "Please enter a valid amount.")
		case errors.Is(err, custom_err.ErrNoResult):
			log.Warn("rate unavailable", slog.String("op", op))
			response.WriteJSONError(w, log, http.StatusBadGateway, "rate_unavailable", "Could not retrieve exchange rate. Please try again.")
		default:
			log.Error("failed to convert", slog.String("op", op), slog.String("error", err.Error()))
			response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "An internal error occurred")
		}
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, result)
}

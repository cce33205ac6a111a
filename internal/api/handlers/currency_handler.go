package handlers

import (
	"net/http"

	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/api/middlew"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/service"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/pkg/response"
)

type CurrencyHandler struct {
	service service.Converter
}

func NewCurrencyHandler(service service.Converter) *CurrencyHandler {
	return &CurrencyHandler{
		service: service,
	}
}

// GetCurrencies godoc
// @Summary      Каталог валют
// @Description  Возвращает каталог валют, опционально отфильтрованный по подстроке кода или названия
// @Tags         currencies
// @Produce      json
// @Param        q query string false "Подстрока для поиска"
// @Success      200 {object} models.CurrenciesResponse
// @Router       /currencies [get]
func (h *CurrencyHandler) GetCurrencies(w http.ResponseWriter, r *http.Request) {
	log := middlew.GetLogger(r.Context())

	term := r.URL.Query().Get("q")
	result := h.service.Currencies(term)

	response.WriteJSONSuccess(w, log, http.StatusOK, result)
}

package handlers

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/api/middlew"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/models"
)

type WebHandler struct {
	tmpl *template.Template
}

func NewWebHandler(tmpl *template.Template) *WebHandler {
	return &WebHandler{
		tmpl: tmpl,
	}
}

type indexData struct {
	From             models.Currency
	To               models.Currency
	FromFlagURL      string
	ToFlagURL        string
	Amount           string
	Timeframes       []models.Timeframe
	DefaultTimeframe models.Timeframe
}

// Index отдает страницу конвертера с парой JPY/USD по умолчанию
func (h *WebHandler) Index(w http.ResponseWriter, r *http.Request) {
	const op = "handler.Index"
	log := middlew.GetLogger(r.Context())

	from, _ := models.FindCurrency("JPY")
	to, _ := models.FindCurrency("USD")

	data := indexData{
		From:             from,
		To:               to,
		FromFlagURL:      from.FlagURL(),
		ToFlagURL:        to.FlagURL(),
		Amount:           "400000.00",
		Timeframes:       models.SupportedTimeframes(),
		DefaultTimeframe: models.Timeframe1M,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Error("ошибка рендеринга страницы", slog.String("op", op), slog.String("error", err.Error()))
	}
}

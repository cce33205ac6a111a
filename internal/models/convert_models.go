package models

// ConvertRequest запрос на конвертацию. Amount приходит строкой,
// как ее набрал пользователь; разбор и проверка в сервисе.
type ConvertRequest struct {
	FromCurrency string `json:"from_currency" validate:"required,len=3"`
	ToCurrency   string `json:"to_currency" validate:"required,len=3"`
	Amount       string `json:"amount" validate:"required"`
}

// ConvertResponse ответ на конвертацию
type ConvertResponse struct {
	FromCurrency    string  `json:"from_currency"`
	ToCurrency      string  `json:"to_currency"`
	Amount          float64 `json:"amount"`
	Rate            float64 `json:"rate"`
	ConvertedAmount float64 `json:"converted_amount"`
	// Converted с округлением до двух знаков для отображения
	Converted string `json:"converted"`
	// UnitRateLine строка вида "1 JPY = 0.0067 USD"
	UnitRateLine string `json:"unit_rate_line"`
}

// CurrenciesResponse ответ со списком валют каталога
type CurrenciesResponse struct {
	Currencies []CurrencyView `json:"currencies"`
}

// CurrencyView валюта каталога вместе с адресом флага
type CurrencyView struct {
	Currency
	FlagURL string `json:"flag_url"`
}

// HistoryResponse ответ с историческими курсами и геометрией графика
type HistoryResponse struct {
	FromCurrency string            `json:"from_currency"`
	ToCurrency   string            `json:"to_currency"`
	Timeframe    Timeframe         `json:"timeframe"`
	Points       []HistoricalPoint `json:"points"`
	Chart        ChartGeometry     `json:"chart"`
}

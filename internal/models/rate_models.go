package models

import "time"

// HistoricalPoint одна точка исторического курса: дата и значение
type HistoricalPoint struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

// Time парсит дату точки в формате YYYY-MM-DD
func (p HistoricalPoint) Time() (time.Time, error) {
	return time.Parse("2006-01-02", p.Date)
}

// Timeframe период исторического графика
type Timeframe string

const (
	Timeframe1D Timeframe = "1D"
	Timeframe7D Timeframe = "7D"
	Timeframe1M Timeframe = "1M"
	Timeframe1Y Timeframe = "1Y"
)

// IsValid проверяет валидность периода
func (t Timeframe) IsValid() bool {
	switch t {
	case Timeframe1D, Timeframe7D, Timeframe1M, Timeframe1Y:
		return true
	}
	return false
}

// Phrase возвращает период в виде фразы для запроса к модели
func (t Timeframe) Phrase() string {
	switch t {
	case Timeframe1D:
		return "1 day"
	case Timeframe7D:
		return "7 days"
	case Timeframe1M:
		return "1 month"
	case Timeframe1Y:
		return "1 year"
	}
	return ""
}

// SupportedTimeframes возвращает список поддерживаемых периодов
func SupportedTimeframes() []Timeframe {
	return []Timeframe{Timeframe1D, Timeframe7D, Timeframe1M, Timeframe1Y}
}

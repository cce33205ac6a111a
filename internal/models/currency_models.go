package models

import "strings"

// Currency описывает одну валюту каталога
type Currency struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	CountryCode string `json:"country_code"`
}

// FlagURL возвращает адрес флага на публичном CDN по коду страны
func (c Currency) FlagURL() string {
	return "https://flagcdn.com/w20/" + strings.ToLower(c.CountryCode) + ".png"
}

// Catalog возвращает упорядоченный каталог валют. Каталог статичен,
// загружается один раз при старте и не изменяется.
func Catalog() []Currency {
	return catalog
}

var catalog = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$", CountryCode: "US"},
	{Code: "EUR", Name: "Euro", Symbol: "€", CountryCode: "EU"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", CountryCode: "JP"},
	{Code: "GBP", Name: "British Pound", Symbol: "£", CountryCode: "GB"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$", CountryCode: "AU"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", CountryCode: "CA"},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF", CountryCode: "CH"},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", CountryCode: "CN"},
	{Code: "HKD", Name: "Hong Kong Dollar", Symbol: "HK$", CountryCode: "HK"},
	{Code: "NZD", Name: "New Zealand Dollar", Symbol: "NZ$", CountryCode: "NZ"},
	{Code: "SEK", Name: "Swedish Krona", Symbol: "kr", CountryCode: "SE"},
	{Code: "KRW", Name: "South Korean Won", Symbol: "₩", CountryCode: "KR"},
	{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$", CountryCode: "SG"},
	{Code: "NOK", Name: "Norwegian Krone", Symbol: "kr", CountryCode: "NO"},
	{Code: "MXN", Name: "Mexican Peso", Symbol: "$", CountryCode: "MX"},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹", CountryCode: "IN"},
	{Code: "RUB", Name: "Russian Ruble", Symbol: "₽", CountryCode: "RU"},
	{Code: "ZAR", Name: "South African Rand", Symbol: "R", CountryCode: "ZA"},
	{Code: "TRY", Name: "Turkish Lira", Symbol: "₺", CountryCode: "TR"},
	{Code: "BRL", Name: "Brazilian Real", Symbol: "R$", CountryCode: "BR"},
	{Code: "TWD", Name: "New Taiwan Dollar", Symbol: "NT$", CountryCode: "TW"},
	{Code: "DKK", Name: "Danish Krone", Symbol: "kr", CountryCode: "DK"},
	{Code: "PLN", Name: "Polish Zloty", Symbol: "zł", CountryCode: "PL"},
	{Code: "THB", Name: "Thai Baht", Symbol: "฿", CountryCode: "TH"},
	{Code: "IDR", Name: "Indonesian Rupiah", Symbol: "Rp", CountryCode: "ID"},
	{Code: "HUF", Name: "Hungarian Forint", Symbol: "Ft", CountryCode: "HU"},
	{Code: "CZK", Name: "Czech Koruna", Symbol: "Kč", CountryCode: "CZ"},
	{Code: "ILS", Name: "Israeli New Shekel", Symbol: "₪", CountryCode: "IL"},
	{Code: "CLP", Name: "Chilean Peso", Symbol: "$", CountryCode: "CL"},
	{Code: "PHP", Name: "Philippine Peso", Symbol: "₱", CountryCode: "PH"},
	{Code: "AED", Name: "UAE Dirham", Symbol: "د.إ", CountryCode: "AE"},
	{Code: "SAR", Name: "Saudi Riyal", Symbol: "﷼", CountryCode: "SA"},
	{Code: "MYR", Name: "Malaysian Ringgit", Symbol: "RM", CountryCode: "MY"},
	{Code: "RON", Name: "Romanian Leu", Symbol: "lei", CountryCode: "RO"},
	{Code: "VND", Name: "Vietnamese Dong", Symbol: "₫", CountryCode: "VN"},
	{Code: "NGN", Name: "Nigerian Naira", Symbol: "₦", CountryCode: "NG"},
	{Code: "EGP", Name: "Egyptian Pound", Symbol: "£", CountryCode: "EG"},
	{Code: "KWD", Name: "Kuwaiti Dinar", Symbol: "د.ك", CountryCode: "KW"},
}

// FindCurrency ищет валюту в каталоге по коду (без учета регистра)
func FindCurrency(code string) (Currency, bool) {
	code = strings.ToUpper(code)
	for _, c := range catalog {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// FilterCurrencies возвращает валюты, у которых код или название содержит
// подстроку term (без учета регистра). Пустой term возвращает весь каталог.
// Порядок каталога сохраняется.
func FilterCurrencies(currencies []Currency, term string) []Currency {
	if term == "" {
		return currencies
	}

	term = strings.ToLower(term)
	filtered := make([]Currency, 0, len(currencies))
	for _, c := range currencies {
		if strings.Contains(strings.ToLower(c.Code), term) ||
			strings.Contains(strings.ToLower(c.Name), term) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

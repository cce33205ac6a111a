package gemini

import "fmt"

// Шаблоны запросов к модели. Ответ ограничивается responseSchema,
// поэтому в тексте не требуется инструкций про формат JSON.
const (
	currentRatePromptTemplate = "What is the current exchange rate from %s to %s?"

	historicalRatesPromptTemplate = "Provide daily historical exchange rates from %s to %s for the past %s. Give me a data point for each day."
)

func currentRatePrompt(from, to string) string {
	return fmt.Sprintf(currentRatePromptTemplate, from, to)
}

func historicalRatesPrompt(from, to, timeframe string) string {
	return fmt.Sprintf(historicalRatesPromptTemplate, from, to, timeframe)
}

// responseSchema описание допустимой формы ответа модели
// (подмножество OpenAPI-схемы, которое принимает generateContent)
type responseSchema struct {
	Type        string                     `json:"type"`
	Description string                     `json:"description,omitempty"`
	Properties  map[string]*responseSchema `json:"properties,omitempty"`
	Items       *responseSchema            `json:"items,omitempty"`
	Required    []string                   `json:"required,omitempty"`
}

func currentRateSchema(from, to string) *responseSchema {
	return &responseSchema{
		Type: "OBJECT",
		Properties: map[string]*responseSchema{
			"rate": {
				Type:        "NUMBER",
				Description: fmt.Sprintf("The exchange rate from %s to %s. Provide only the numerical value.", from, to),
			},
		},
		Required: []string{"rate"},
	}
}

func historicalRatesSchema(from, to string) *responseSchema {
	return &responseSchema{
		Type: "OBJECT",
		Properties: map[string]*responseSchema{
			"rates": {
				Type:        "ARRAY",
				Description: fmt.Sprintf("An array of historical exchange rates from %s to %s.", from, to),
				Items: &responseSchema{
					Type: "OBJECT",
					Properties: map[string]*responseSchema{
						"date": {
							Type:        "STRING",
							Description: "The date of the exchange rate in YYYY-MM-DD format.",
						},
						"rate": {
							Type:        "NUMBER",
							Description: "The exchange rate for that day.",
						},
					},
					Required: []string{"date", "rate"},
				},
			},
		},
		Required: []string{"rates"},
	}
}

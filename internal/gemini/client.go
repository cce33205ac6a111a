package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/config"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/custom_err"
	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/models"
)

// RateClient источник курсов валют. Реализация обращается к генеративной
// модели; в тестах подменяется моком.
type RateClient interface {
	GetCurrentRate(ctx context.Context, from, to string) (float64, error)
	GetHistoricalRates(ctx context.Context, from, to string, timeframe string) ([]models.HistoricalPoint, error)
}

type geminiRateClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	log        *slog.Logger
}

// NewRateClient создает клиент Gemini API по конфигурации
func NewRateClient(cfg config.GeminiConfig, log *slog.Logger) (RateClient, error) {
	const op = "gemini.NewRateClient"

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s: api key is not set", op)
	}

	return &geminiRateClient{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		timeout: cfg.Timeout,
		log:     log,
	}, nil
}

// Тела запроса и ответа generateContent

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig generationConfig  `json:"generationConfig"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string          `json:"responseMimeType"`
	ResponseSchema   *responseSchema `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type currentRateReply struct {
	Rate *float64 `json:"rate"`
}

type historicalRatesReply struct {
	Rates []struct {
		Date string   `json:"date"`
		Rate *float64 `json:"rate"`
	} `json:"rates"`
}

// GetCurrentRate запрашивает у модели текущий курс из from в to.
// Любой сбой (транспорт, не-JSON, отсутствие числового rate) возвращается
// как ErrNoResult; подробности остаются в логе.
func (c *geminiRateClient) GetCurrentRate(ctx context.Context, from, to string) (float64, error) {
	const op = "gemini.GetCurrentRate"

	callID := uuid.NewString()
	log := c.log.With(slog.String("op", op), slog.String("call_id", callID))

	log.Debug("запрос текущего курса",
		slog.String("from", from),
		slog.String("to", to))

	raw, err := c.generateContent(ctx, currentRatePrompt(from, to), currentRateSchema(from, to))
	if err != nil {
		log.Error("ошибка запроса к модели", slog.String("error", err.Error()))
		return 0, custom_err.ErrNoResult
	}

	var reply currentRateReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		log.Error("ответ модели не является JSON",
			slog.String("error", err.Error()),
			slog.String("raw", raw))
		return 0, custom_err.ErrNoResult
	}
	if reply.Rate == nil {
		log.Error("в ответе модели нет числового поля rate", slog.String("raw", raw))
		return 0, custom_err.ErrNoResult
	}

	log.Debug("получен текущий курс",
		slog.String("from", from),
		slog.String("to", to),
		slog.Float64("rate", *reply.Rate))

	return *reply.Rate, nil
}

// GetHistoricalRates запрашивает по одной точке на день за период timeframe
// (фраза вида "7 days"). Результат всегда отсортирован по дате по возрастанию,
// независимо от порядка в ответе модели; сортировка стабильная.
func (c *geminiRateClient) GetHistoricalRates(ctx context.Context, from, to string, timeframe string) ([]models.HistoricalPoint, error) {
	const op = "gemini.GetHistoricalRates"

	callID := uuid.NewString()
	log := c.log.With(slog.String("op", op), slog.String("call_id", callID))

	log.Debug("запрос исторических курсов",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("timeframe", timeframe))

	raw, err := c.generateContent(ctx, historicalRatesPrompt(from, to, timeframe), historicalRatesSchema(from, to))
	if err != nil {
		log.Error("ошибка запроса к модели", slog.String("error", err.Error()))
		return nil, custom_err.ErrNoResult
	}

	var reply historicalRatesReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		log.Error("ответ модели не является JSON",
			slog.String("error", err.Error()),
			slog.String("raw", raw))
		return nil, custom_err.ErrNoResult
	}
	if len(reply.Rates) == 0 {
		log.Error("в ответе модели нет непустого массива rates", slog.String("raw", raw))
		return nil, custom_err.ErrNoResult
	}

	type datedPoint struct {
		point models.HistoricalPoint
		time  time.Time
	}

	points := make([]datedPoint, 0, len(reply.Rates))
	for _, r := range reply.Rates {
		if r.Rate == nil {
			log.Error("точка без числового поля rate", slog.String("raw", raw))
			return nil, custom_err.ErrNoResult
		}
		p := models.HistoricalPoint{Date: r.Date, Rate: *r.Rate}
		t, err := p.Time()
		if err != nil {
			log.Error("точка с некорректной датой",
				slog.String("date", r.Date),
				slog.String("error", err.Error()))
			return nil, custom_err.ErrNoResult
		}
		points = append(points, datedPoint{point: p, time: t})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].time.Before(points[j].time)
	})

	result := make([]models.HistoricalPoint, len(points))
	for i, p := range points {
		result[i] = p.point
	}

	log.Debug("получены исторические курсы", slog.Int("points", len(result)))

	return result, nil
}

// generateContent выполняет один вызов модели и возвращает текст первого
// кандидата. Вызов одиночный: без повторов и кэширования.
func (c *geminiRateClient) generateContent(ctx context.Context, prompt string, schema *responseSchema) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()

	reqBody := generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("model returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model returned no candidates")
	}

	duration := time.Since(start)
	if duration > 10*time.Second {
		c.log.Warn("медленный запрос к модели", slog.Duration("duration", duration))
	}

	return genResp.Candidates[0].Content.Parts[0].Text, nil
}

package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/justkhutty/weather/internal/domain/report"
)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/2.5"

	// The forecast endpoint returns 3-hour slots; every 8th entry is one day.
	entriesPerDay   = 8
	maxForecastDays = 5
)

// Client fetches current conditions and forecasts from OpenWeatherMap.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// NewClient builds an API client with a circuit breaker around the upstream.
func NewClient(apiKey, baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	log := logger.With("component", "openweather.client")

	settings := gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 1,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	}

	return &Client{
		baseURL:    strings.TrimRight(base, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    gobreaker.NewCircuitBreaker(settings),
		logger:     log,
	}
}

// Current retrieves the current observation for a city, normalized to the
// domain model. Metric units are requested so no conversion happens here.
func (c *Client) Current(ctx context.Context, city string) (report.Observation, error) {
	body, err := c.fetchWithVariants(ctx, "/weather", city)
	if err != nil {
		return report.Observation{}, err
	}

	var raw currentResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return report.Observation{}, fmt.Errorf("decode weather response: %w", err)
	}
	if len(raw.Weather) == 0 {
		return report.Observation{}, fmt.Errorf("weather response missing condition data")
	}

	return report.Observation{
		City:        raw.Name,
		Country:     raw.Sys.Country,
		Temperature: raw.Main.Temp,
		FeelsLike:   raw.Main.FeelsLike,
		Condition:   titleCase(raw.Weather[0].Description),
		Humidity:    raw.Main.Humidity,
		WindSpeed:   raw.Wind.Speed,
		Pressure:    raw.Main.Pressure,
		Visibility:  raw.Visibility,
		ObservedAt:  time.Unix(raw.Dt, 0).UTC(),
	}, nil
}

// Forecast retrieves the 5-day forecast, sampled down to one entry per day.
func (c *Client) Forecast(ctx context.Context, city string) ([]report.ForecastDay, error) {
	body, err := c.fetchWithVariants(ctx, "/forecast", city)
	if err != nil {
		return nil, err
	}

	var raw forecastResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", err)
	}

	days := make([]report.ForecastDay, 0, maxForecastDays)
	for i := 0; i < len(raw.List) && len(days) < maxForecastDays; i += entriesPerDay {
		item := raw.List[i]
		condition := ""
		if len(item.Weather) > 0 {
			condition = titleCase(item.Weather[0].Description)
		}
		days = append(days, report.ForecastDay{
			Date:        time.Unix(item.Dt, 0).UTC(),
			Temperature: item.Main.Temp,
			Condition:   condition,
		})
	}
	return days, nil
}

// fetchWithVariants runs the ordered city-name fallback: the trimmed input,
// then Title Case, UPPER, and lower spellings, stopping at the first variant
// the API accepts. Exhausting the list maps to report.ErrCityNotFound; an
// open circuit breaker aborts the loop instead, so an unreachable upstream
// is never misreported as an unknown city.
func (c *Client) fetchWithVariants(ctx context.Context, path, city string) ([]byte, error) {
	for _, variant := range cityVariants(city) {
		body, err := c.get(ctx, path, variant)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return nil, fmt.Errorf("weather upstream unavailable: %w", err)
			}
			c.logger.Debug("city variant rejected", "path", path, "variant", variant, "error", err)
			continue
		}
		return body, nil
	}
	return nil, fmt.Errorf("all query variants rejected for %q: %w", city, report.ErrCityNotFound)
}

type apiResult struct {
	body   []byte
	status int
}

// get performs one upstream request. Only transport failures and 5xx
// responses count against the circuit breaker; a 4xx is a normal answer to a
// misspelled variant and must not open the breaker for other cities.
func (c *Client) get(ctx context.Context, path, city string) ([]byte, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")
	endpoint := c.baseURL + path + "?" + query.Encode()

	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("build weather request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("weather request failed: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read weather response: %w", err)
		}

		if resp.StatusCode >= 500 {
			return nil, fmt.Errorf("weather request error: status=%d body=%s", resp.StatusCode, truncate(body, 4<<10))
		}
		return apiResult{body: body, status: resp.StatusCode}, nil
	})
	if err != nil {
		return nil, err
	}

	res := result.(apiResult)
	if res.status >= 300 {
		return nil, fmt.Errorf("weather request error: status=%d body=%s", res.status, truncate(res.body, 4<<10))
	}
	return res.body, nil
}

func truncate(b []byte, limit int) string {
	if len(b) > limit {
		b = b[:limit]
	}
	return string(b)
}

func cityVariants(city string) []string {
	trimmed := strings.TrimSpace(city)
	candidates := []string{
		trimmed,
		titleCase(trimmed),
		strings.ToUpper(trimmed),
		strings.ToLower(trimmed),
	}

	variants := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if _, ok := seen[candidate]; ok {
			continue
		}
		seen[candidate] = struct{}{}
		variants = append(variants, candidate)
	}
	return variants
}

// titleCase builds a fresh caser per call; cases.Caser is not goroutine safe.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

type currentResponse struct {
	Weather []conditionEntry `json:"weather"`
	Main    struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility int   `json:"visibility"`
	Dt         int64 `json:"dt"`
	Sys        struct {
		Country string `json:"country"`
	} `json:"sys"`
	Name string `json:"name"`
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []conditionEntry `json:"weather"`
	} `json:"list"`
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
}

type conditionEntry struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

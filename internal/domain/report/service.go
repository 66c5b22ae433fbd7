package report

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/justkhutty/weather/internal/domain/advisor"
	apperrors "github.com/justkhutty/weather/pkg/errors"
	"github.com/justkhutty/weather/pkg/metrics"
)

// Service exposes the weather advisory report capabilities.
type Service interface {
	Report(ctx context.Context, req Request) (Response, error)
	Speak(ctx context.Context, req Request) (SpeechResponse, error)
}

type WeatherClient interface {
	Current(ctx context.Context, city string) (Observation, error)
	Forecast(ctx context.Context, city string) ([]ForecastDay, error)
}

type SpeechClient interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Config wires runtime tunables for the report domain.
type Config struct {
	SpeechEnabled bool
}

type service struct {
	cfg       Config
	engine    advisor.Engine
	weather   WeatherClient
	speech    SpeechClient
	collector *metrics.Collector
	logger    *slog.Logger
}

// NewService wires up the report domain.
func NewService(cfg Config, engine advisor.Engine, weather WeatherClient, speech SpeechClient, collector *metrics.Collector, logger *slog.Logger) Service {
	return &service{
		cfg:       cfg,
		engine:    engine,
		weather:   weather,
		speech:    speech,
		collector: collector,
		logger:    logger.With("component", "report.service"),
	}
}

func (s *service) Report(ctx context.Context, req Request) (Response, error) {
	obs, advice, narration, err := s.evaluateCity(ctx, req.City)
	if err != nil {
		return Response{}, err
	}

	resp := buildResponse(obs, advice, narration)

	// A missing forecast never fails the report; the original dashboard just
	// renders the current conditions without the chart.
	days, err := s.weather.Forecast(ctx, req.City)
	if err != nil {
		s.countUpstreamError("openweather_forecast")
		s.logger.Warn("forecast unavailable", "city", req.City, "error", err)
	} else {
		resp.Forecast = toForecastEntries(days)
	}

	s.countReport(advice.StayIndoor)
	s.logger.Info("report generated", "city", resp.City, "stay_indoor", advice.StayIndoor, "advice_lines", len(advice.Lines))
	return resp, nil
}

func (s *service) Speak(ctx context.Context, req Request) (SpeechResponse, error) {
	if s.speech == nil || !s.cfg.SpeechEnabled {
		return SpeechResponse{}, apperrors.Wrap("speech_error", "speech synthesis is disabled", nil)
	}

	obs, advice, narration, err := s.evaluateCity(ctx, req.City)
	if err != nil {
		return SpeechResponse{}, err
	}

	audio, err := s.speech.Synthesize(ctx, narration)
	if err != nil {
		s.countUpstreamError("speech")
		return SpeechResponse{}, apperrors.Wrap("speech_error", "failed to synthesize narration", err)
	}

	if s.collector != nil {
		s.collector.SpeechSynthesesTotal.Inc()
	}
	s.logger.Info("narration synthesized", "city", obs.City, "audio_bytes", len(audio))

	return SpeechResponse{
		City:        obs.City,
		Narration:   narration,
		StayIndoor:  advice.StayIndoor,
		AudioBase64: base64.StdEncoding.EncodeToString(audio),
		ContentType: "audio/mpeg",
	}, nil
}

func (s *service) evaluateCity(ctx context.Context, city string) (Observation, advisor.Advice, string, error) {
	trimmed := strings.TrimSpace(city)
	if trimmed == "" {
		return Observation{}, advisor.Advice{}, "", apperrors.Wrap("invalid_input", "city cannot be empty", nil)
	}

	obs, err := s.weather.Current(ctx, trimmed)
	if err != nil {
		if errors.Is(err, ErrCityNotFound) {
			return Observation{}, advisor.Advice{}, "", apperrors.Wrap("city_not_found", "city '"+trimmed+"' not found, verify the city name exists", err)
		}
		s.countUpstreamError("openweather")
		return Observation{}, advisor.Advice{}, "", apperrors.Wrap("weather_data_error", "failed to fetch weather data", err)
	}

	advice := s.engine.Evaluate(obs.Temperature, obs.Condition, obs.Humidity)
	narration := advisor.Compose(obs.City, obs.Temperature, obs.FeelsLike, obs.Condition, advice.Lines, advice.StayIndoor)
	return obs, advice, narration, nil
}

func (s *service) countReport(stayIndoor bool) {
	if s.collector == nil {
		return
	}
	s.collector.ReportsGeneratedTotal.Inc()
	if stayIndoor {
		s.collector.StayIndoorAlertsTotal.Inc()
	}
}

func (s *service) countUpstreamError(upstream string) {
	if s.collector == nil {
		return
	}
	s.collector.UpstreamErrorsTotal.WithLabelValues(upstream).Inc()
}

func buildResponse(obs Observation, advice advisor.Advice, narration string) Response {
	observedAt := ""
	if !obs.ObservedAt.IsZero() {
		observedAt = obs.ObservedAt.Format(time.RFC3339)
	}
	return Response{
		City:        obs.City,
		Country:     obs.Country,
		Temperature: obs.Temperature,
		FeelsLike:   obs.FeelsLike,
		Condition:   obs.Condition,
		Humidity:    obs.Humidity,
		WindSpeed:   obs.WindSpeed,
		Pressure:    obs.Pressure,
		Visibility:  obs.Visibility,
		Advice:      advice.Lines,
		StayIndoor:  advice.StayIndoor,
		Narration:   narration,
		ObservedAt:  observedAt,
	}
}

func toForecastEntries(days []ForecastDay) []ForecastEntry {
	entries := make([]ForecastEntry, 0, len(days))
	for _, day := range days {
		entries = append(entries, ForecastEntry{
			Date:        day.Date.Format("Mon, Jan 02"),
			Temperature: day.Temperature,
			Condition:   day.Condition,
		})
	}
	return entries
}

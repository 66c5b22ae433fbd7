package main

import (
	"log/slog"

	"github.com/justkhutty/weather/internal/domain/advisor"
	"github.com/justkhutty/weather/internal/domain/report"
	"github.com/justkhutty/weather/internal/infra/config"
	"github.com/justkhutty/weather/internal/infra/speech/gtranslate"
	"github.com/justkhutty/weather/internal/infra/weather/openweather"
	"github.com/justkhutty/weather/pkg/metrics"
)

const metricsNamespace = "weather_advisor"

func provideAdvisorEngine(cfg *config.Config) advisor.Engine {
	return advisor.NewEngine(advisor.Config{
		HighHumidity: cfg.Advisor.HighHumidity,
	})
}

func provideReportConfig(cfg *config.Config) report.Config {
	return report.Config{
		SpeechEnabled: cfg.Speech.Enabled,
	}
}

func provideWeatherClient(cfg *config.Config, logger *slog.Logger) *openweather.Client {
	return openweather.NewClient(cfg.Weather.APIKey, cfg.Weather.BaseURL, cfg.Weather.Timeout, logger)
}

func provideSpeechClient(cfg *config.Config, logger *slog.Logger) *gtranslate.Client {
	return gtranslate.NewClient(cfg.Speech.BaseURL, cfg.Speech.Language, cfg.Speech.Timeout, logger)
}

func provideMetricsCollector() *metrics.Collector {
	return metrics.NewCollector(metricsNamespace)
}

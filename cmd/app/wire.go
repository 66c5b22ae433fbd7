//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/justkhutty/weather/internal/bootstrap"
	"github.com/justkhutty/weather/internal/domain/report"
	"github.com/justkhutty/weather/internal/infra/config"
	"github.com/justkhutty/weather/internal/infra/speech/gtranslate"
	"github.com/justkhutty/weather/internal/infra/weather/openweather"
	httpiface "github.com/justkhutty/weather/internal/interface/http"
	"github.com/justkhutty/weather/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAdvisorEngine,
		provideReportConfig,
		provideWeatherClient,
		provideSpeechClient,
		provideMetricsCollector,
		report.NewService,
		wire.Bind(new(report.WeatherClient), new(*openweather.Client)),
		wire.Bind(new(report.SpeechClient), new(*gtranslate.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

package report

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/justkhutty/weather/internal/domain/advisor"
	apperrors "github.com/justkhutty/weather/pkg/errors"
)

func newTestService(weather WeatherClient, speech SpeechClient, speechEnabled bool) Service {
	return NewService(
		Config{SpeechEnabled: speechEnabled},
		advisor.NewEngine(advisor.DefaultConfig()),
		weather,
		speech,
		nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestServiceReportSuccess(t *testing.T) {
	obs := Observation{
		City:        "Paris",
		Country:     "FR",
		Temperature: 18.0,
		FeelsLike:   16.5,
		Condition:   "Light Rain",
		Humidity:    65,
		WindSpeed:   3.2,
		Pressure:    1012,
		ObservedAt:  time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
	}
	weather := &stubWeatherClient{
		obs: obs,
		forecast: []ForecastDay{
			{Date: time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC), Temperature: 17.5, Condition: "Clouds"},
			{Date: time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC), Temperature: 19.0, Condition: "Clear"},
		},
	}

	svc := newTestService(weather, nil, false)
	resp, err := svc.Report(context.Background(), Request{City: " Paris "})
	require.NoError(t, err)

	require.Equal(t, "Paris", resp.City)
	require.Equal(t, "FR", resp.Country)
	require.Equal(t, "Paris", weather.lastCity, "city should be trimmed before lookup")

	require.Len(t, resp.Advice, 2)
	require.Contains(t, resp.Advice[0], "mild")
	require.Contains(t, resp.Advice[1], "umbrella")
	require.False(t, resp.StayIndoor)

	require.Contains(t, resp.Narration, "Weather report for Paris.")
	require.Contains(t, resp.Narration, "18.0 degrees Celsius")
	require.Contains(t, resp.Narration, "16.5 degrees")

	require.Len(t, resp.Forecast, 2)
	require.Equal(t, "Sat, Mar 15", resp.Forecast[0].Date)
	require.Equal(t, "2025-03-14T09:00:00Z", resp.ObservedAt)
}

func TestServiceReportStayIndoorAlert(t *testing.T) {
	weather := &stubWeatherClient{
		obs: Observation{City: "Yakutsk", Temperature: -15, FeelsLike: -22, Condition: "Heavy Snow", Humidity: 90},
	}

	svc := newTestService(weather, nil, false)
	resp, err := svc.Report(context.Background(), Request{City: "Yakutsk"})
	require.NoError(t, err)

	require.True(t, resp.StayIndoor)
	require.Len(t, resp.Advice, 3)
	require.Contains(t, resp.Narration, "Warning! Weather conditions are extreme.")
}

func TestServiceReportEmptyCity(t *testing.T) {
	svc := newTestService(&stubWeatherClient{}, nil, false)

	_, err := svc.Report(context.Background(), Request{City: "   "})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestServiceReportCityNotFound(t *testing.T) {
	weather := &stubWeatherClient{currentErr: ErrCityNotFound}
	svc := newTestService(weather, nil, false)

	_, err := svc.Report(context.Background(), Request{City: "Atlantis"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "city_not_found"))
	require.Contains(t, err.Error(), "Atlantis")
}

func TestServiceReportUpstreamFailure(t *testing.T) {
	weather := &stubWeatherClient{currentErr: errors.New("connection refused")}
	svc := newTestService(weather, nil, false)

	_, err := svc.Report(context.Background(), Request{City: "Paris"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "weather_data_error"))
}

func TestServiceReportToleratesForecastFailure(t *testing.T) {
	weather := &stubWeatherClient{
		obs:         Observation{City: "Lagos", Temperature: 31, FeelsLike: 36, Condition: "Haze", Humidity: 70},
		forecastErr: errors.New("gateway timeout"),
	}

	svc := newTestService(weather, nil, false)
	resp, err := svc.Report(context.Background(), Request{City: "Lagos"})
	require.NoError(t, err)
	require.Empty(t, resp.Forecast)
	require.NotEmpty(t, resp.Advice)
}

func TestServiceSpeakSuccess(t *testing.T) {
	weather := &stubWeatherClient{
		obs: Observation{City: "Tokyo", Temperature: 22, FeelsLike: 21, Condition: "Clear", Humidity: 50},
	}
	speech := &stubSpeechClient{audio: []byte("mp3-bytes")}

	svc := newTestService(weather, speech, true)
	resp, err := svc.Speak(context.Background(), Request{City: "Tokyo"})
	require.NoError(t, err)

	require.Equal(t, "Tokyo", resp.City)
	require.Equal(t, "audio/mpeg", resp.ContentType)
	require.Equal(t, base64.StdEncoding.EncodeToString([]byte("mp3-bytes")), resp.AudioBase64)
	require.Equal(t, resp.Narration, speech.lastText, "synthesized text must match the narration")
	require.Contains(t, resp.Narration, "Weather report for Tokyo.")
	require.False(t, resp.StayIndoor)
}

func TestServiceSpeakDisabled(t *testing.T) {
	svc := newTestService(&stubWeatherClient{}, &stubSpeechClient{}, false)

	_, err := svc.Speak(context.Background(), Request{City: "Tokyo"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "speech_error"))
}

func TestServiceSpeakSynthesisFailure(t *testing.T) {
	weather := &stubWeatherClient{
		obs: Observation{City: "Tokyo", Temperature: 22, FeelsLike: 21, Condition: "Clear", Humidity: 50},
	}
	speech := &stubSpeechClient{err: errors.New("tts unavailable")}

	svc := newTestService(weather, speech, true)
	_, err := svc.Speak(context.Background(), Request{City: "Tokyo"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "speech_error"))
}

func TestServiceReportIdempotent(t *testing.T) {
	weather := &stubWeatherClient{
		obs: Observation{City: "Paris", Temperature: 18, FeelsLike: 16.5, Condition: "Light Rain", Humidity: 65},
	}
	svc := newTestService(weather, nil, false)

	first, err := svc.Report(context.Background(), Request{City: "Paris"})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := svc.Report(context.Background(), Request{City: "Paris"})
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

type stubWeatherClient struct {
	obs         Observation
	currentErr  error
	forecast    []ForecastDay
	forecastErr error
	lastCity    string
}

func (s *stubWeatherClient) Current(ctx context.Context, city string) (Observation, error) {
	s.lastCity = city
	if s.currentErr != nil {
		return Observation{}, s.currentErr
	}
	return s.obs, nil
}

func (s *stubWeatherClient) Forecast(ctx context.Context, city string) ([]ForecastDay, error) {
	if s.forecastErr != nil {
		return nil, s.forecastErr
	}
	return s.forecast, nil
}

type stubSpeechClient struct {
	audio    []byte
	err      error
	lastText string
}

func (s *stubSpeechClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastText = text
	return s.audio, nil
}

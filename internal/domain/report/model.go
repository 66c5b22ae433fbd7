package report

import (
	"errors"
	"time"
)

// ErrCityNotFound is returned by WeatherClient implementations once every
// query variant for a city has been rejected upstream.
var ErrCityNotFound = errors.New("city not found")

// Request captures the payload accepted by the report service.
type Request struct {
	City string `json:"city"`
}

// Observation is a current-weather snapshot normalized to metric units.
type Observation struct {
	City        string
	Country     string
	Temperature float64
	FeelsLike   float64
	Condition   string
	Humidity    int
	WindSpeed   float64
	Pressure    int
	Visibility  int
	ObservedAt  time.Time
}

// ForecastDay is one sampled day of the short-range forecast.
type ForecastDay struct {
	Date        time.Time
	Temperature float64
	Condition   string
}

// Response is serialized back to API consumers.
type Response struct {
	City        string          `json:"city"`
	Country     string          `json:"country,omitempty"`
	Temperature float64         `json:"temperature"`
	FeelsLike   float64         `json:"feelsLike"`
	Condition   string          `json:"condition"`
	Humidity    int             `json:"humidity"`
	WindSpeed   float64         `json:"windSpeed"`
	Pressure    int             `json:"pressure"`
	Visibility  int             `json:"visibility,omitempty"`
	Advice      []string        `json:"advice"`
	StayIndoor  bool            `json:"stayIndoor"`
	Narration   string          `json:"narration"`
	Forecast    []ForecastEntry `json:"forecast,omitempty"`
	ObservedAt  string          `json:"observedAt,omitempty"`
}

// ForecastEntry is the wire form of a ForecastDay.
type ForecastEntry struct {
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
}

// SpeechResponse carries the synthesized narration audio.
type SpeechResponse struct {
	City        string `json:"city"`
	Narration   string `json:"narration"`
	StayIndoor  bool   `json:"stayIndoor"`
	AudioBase64 string `json:"audioBase64"`
	ContentType string `json:"contentType"`
}

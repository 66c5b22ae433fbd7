package advisor

// WeatherReading is a normalized snapshot of current conditions for one city.
// Temperatures are degrees Celsius, humidity is a relative percentage. The
// engine treats every field as-is; out-of-range values are never rejected.
type WeatherReading struct {
	City        string
	Temperature float64
	FeelsLike   float64
	Condition   string
	Humidity    int
}

// Advice is the outcome of one evaluation. Lines keeps the emission order:
// the temperature-band line first, then the condition line when one matched,
// then the humidity line.
type Advice struct {
	Lines      []string
	StayIndoor bool
}

// Config carries the engine tunables.
type Config struct {
	// HighHumidity is the exclusive threshold above which the
	// moisture-wicking line is appended.
	HighHumidity int
}

// DefaultConfig mirrors the thresholds the service ships with.
func DefaultConfig() Config {
	return Config{HighHumidity: 80}
}

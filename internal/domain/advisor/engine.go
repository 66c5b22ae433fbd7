package advisor

import "strings"

// Engine derives clothing and safety guidance from a weather reading. It is
// stateless; a zero-allocation value copy is safe to share across goroutines.
type Engine struct {
	cfg Config
}

// NewEngine builds an engine with the given thresholds. The config is used
// as-is; callers wanting the standard thresholds pass DefaultConfig().
func NewEngine(cfg Config) Engine {
	return Engine{cfg: cfg}
}

// Evaluate maps a reading onto ordered advice lines plus the stay-indoor flag.
// It is total: any temperature, condition text, and humidity value produce a
// defined result, and identical inputs always produce identical output.
func (e Engine) Evaluate(temperature float64, condition string, humidity int) Advice {
	line, stayIndoor := bandFor(temperature)
	advice := Advice{
		Lines:      []string{line},
		StayIndoor: stayIndoor,
	}

	if condLine, alert := conditionAdvice(condition); condLine != "" {
		advice.Lines = append(advice.Lines, condLine)
		advice.StayIndoor = advice.StayIndoor || alert
	}

	if humidity > e.cfg.HighHumidity {
		advice.Lines = append(advice.Lines, "High humidity today. Wear moisture-wicking fabrics to stay comfortable.")
	}

	return advice
}

// bandFor selects the single matching temperature band. Bands are half-open
// with an inclusive lower bound, checked from coldest to hottest.
func bandFor(t float64) (string, bool) {
	switch {
	case t < -10:
		return "It's extremely cold outside. Wear heavy winter coat, thermal layers, gloves, scarf, and winter hat.", true
	case t < 0:
		return "It's freezing cold. Wear a heavy jacket, warm layers, gloves, and a hat.", false
	case t < 10:
		return "It's quite cold. Wear a warm jacket, long sleeves, and consider bringing a scarf.", false
	case t < 15:
		return "It's cool outside. A light jacket or sweater would be comfortable.", false
	case t < 20:
		return "The weather is mild. A light sweater or long sleeves should be perfect.", false
	case t < 25:
		return "It's pleasant outside. Comfortable clothing like a t-shirt and light pants works well.", false
	case t < 30:
		return "It's warm. Wear light, breathable clothing like shorts and t-shirts.", false
	case t < 35:
		return "It's hot outside. Wear minimal, light-colored, breathable clothing and stay hydrated.", false
	default:
		return "It's extremely hot! Wear very light clothing, stay hydrated, and avoid prolonged sun exposure.", true
	}
}

// conditionAdvice runs the case-insensitive substring rules in fixed
// precedence. At most one line is emitted; the first matching rule wins even
// when the description mentions several phenomena.
func conditionAdvice(condition string) (string, bool) {
	lower := strings.ToLower(condition)
	switch {
	case strings.Contains(lower, "rain") || strings.Contains(lower, "drizzle"):
		return "Don't forget your umbrella and waterproof jacket!", false
	case strings.Contains(lower, "snow"):
		return "Wear waterproof boots and be careful of slippery surfaces.", false
	case strings.Contains(lower, "storm") || strings.Contains(lower, "thunder"):
		return "There's a storm warning. It's safer to stay indoors if possible!", true
	case strings.Contains(lower, "fog") || strings.Contains(lower, "mist"):
		return "Visibility is low. Drive carefully and wear visible clothing.", false
	default:
		return "", false
	}
}

package advisor

import (
	"fmt"
	"strings"
)

// Compose renders the spoken weather report. Sentence order is fixed; only
// the extreme-conditions warning is conditional. The output is plain text
// ready for a speech synthesis call.
func Compose(city string, temperature, feelsLike float64, condition string, lines []string, stayIndoor bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weather report for %s. ", city)
	fmt.Fprintf(&b, "The current temperature is %.1f degrees Celsius, but it feels like %.1f degrees. ", temperature, feelsLike)
	fmt.Fprintf(&b, "The weather condition is %s. ", condition)

	if stayIndoor {
		b.WriteString("Warning! Weather conditions are extreme. It is strongly advised to stay indoors. ")
	}

	b.WriteString("Here's what you should wear. ")
	b.WriteString(strings.Join(lines, " "))

	return b.String()
}

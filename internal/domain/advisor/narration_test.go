package advisor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeWithoutWarning(t *testing.T) {
	lines := []string{
		"It's cool outside. A light jacket or sweater would be comfortable.",
		"Don't forget your umbrella and waterproof jacket!",
	}

	text := Compose("Paris", 18.0, 16.5, "light rain", lines, false)

	require.True(t, strings.HasPrefix(text, "Weather report for Paris. "))
	require.Contains(t, text, "The current temperature is 18.0 degrees Celsius, but it feels like 16.5 degrees.")
	require.Contains(t, text, "The weather condition is light rain.")
	require.NotContains(t, text, "Warning!")
	require.Contains(t, text, "Here's what you should wear. "+strings.Join(lines, " "))
}

func TestComposeWithWarning(t *testing.T) {
	lines := []string{"It's extremely cold outside. Wear heavy winter coat, thermal layers, gloves, scarf, and winter hat."}

	text := Compose("Oslo", -15.25, -22.0, "snow", lines, true)

	require.Contains(t, text, "The current temperature is -15.2 degrees Celsius, but it feels like -22.0 degrees.")
	require.Contains(t, text, "Warning! Weather conditions are extreme. It is strongly advised to stay indoors.")

	// Warning sits between the condition sentence and the wear section.
	warnIdx := strings.Index(text, "Warning!")
	condIdx := strings.Index(text, "The weather condition is")
	wearIdx := strings.Index(text, "Here's what you should wear.")
	require.Greater(t, warnIdx, condIdx)
	require.Greater(t, wearIdx, warnIdx)
}

func TestComposeSentenceOrderFixed(t *testing.T) {
	text := Compose("Tokyo", 22, 21, "Clear", []string{"first line.", "second line."}, false)

	parts := []string{
		"Weather report for Tokyo.",
		"The current temperature is 22.0 degrees Celsius, but it feels like 21.0 degrees.",
		"The weather condition is Clear.",
		"Here's what you should wear.",
		"first line. second line.",
	}
	last := -1
	for _, part := range parts {
		idx := strings.Index(text, part)
		require.Greater(t, idx, last, "expected %q after previous sentence", part)
		last = idx
	}
}

func TestComposeJoinsLinesInOrder(t *testing.T) {
	text := Compose("Lima", 10, 9, "mist", []string{"a", "b", "c"}, false)
	require.True(t, strings.HasSuffix(text, "Here's what you should wear. a b c"))
}

func TestComposeIdempotent(t *testing.T) {
	lines := []string{"It's warm. Wear light, breathable clothing like shorts and t-shirts."}
	first := Compose("Kuala Lumpur", 28.37, 31.92, "haze", lines, false)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Compose("Kuala Lumpur", 28.37, 31.92, "haze", lines, false))
	}
}

package domain

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestFormatAlert(t *testing.T) {
	t.Run("all fields present", func(t *testing.T) {
		got := FormatAlert(AlertFeature{
			Event:       strPtr("Winter Storm Warning"),
			AreaDesc:    strPtr("Mono; Inyo"),
			Severity:    strPtr("Severe"),
			Description: strPtr("Heavy snow expected."),
			Instruction: strPtr("Avoid travel."),
		})
		want := "Event: Winter Storm Warning\n" +
			"Area: Mono; Inyo\n" +
			"Severity: Severe\n" +
			"Description: Heavy snow expected.\n" +
			"Instructions: Avoid travel."
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("FormatAlert mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no fields present uses defaults", func(t *testing.T) {
		got := FormatAlert(AlertFeature{})
		lines := strings.Split(got, "\n")
		assert.Equal(t, []string{
			"Event: Unknown",
			"Area: Unknown",
			"Severity: Unknown",
			"Description: No description available",
			"Instructions: No specific instructions provided",
		}, lines)
	})

	t.Run("empty string is not a default", func(t *testing.T) {
		got := FormatAlert(AlertFeature{Event: strPtr("")})
		assert.True(t, strings.HasPrefix(got, "Event: \n"))
	})
}

func TestFormatPeriod(t *testing.T) {
	got := FormatPeriod(ForecastPeriod{
		Name:             "Tonight",
		Temperature:      "45",
		TemperatureUnit:  "F",
		WindSpeed:        "5 to 10 mph",
		WindDirection:    "NW",
		DetailedForecast: "Mostly clear, with a low around 45.",
	})
	want := "Tonight:\n" +
		"  Temperature: 45°F\n" +
		"  Wind: 5 to 10 mph NW\n" +
		"  Forecast: Mostly clear, with a low around 45."
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FormatPeriod mismatch (-want +got):\n%s", diff)
	}
}

func TestJoinBlocks(t *testing.T) {
	tests := []struct {
		name     string
		blocks   []string
		expected string
	}{
		{"none", nil, ""},
		{"empty slice", []string{}, ""},
		{"one block", []string{"a\nb"}, "a\nb"},
		{"two blocks", []string{"a", "b"}, "a\n---\nb"},
		{"three blocks", []string{"a", "b", "c"}, "a\n---\nb\n---\nc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JoinBlocks(tt.blocks)
			assert.Equal(t, tt.expected, got)
			if len(tt.blocks) > 0 {
				assert.Equal(t, len(tt.blocks)-1, strings.Count(got, "\n"+Separator+"\n"))
			}
		})
	}
}

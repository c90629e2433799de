package domain

import (
	"fmt"
	"strings"
)

// Separator is the line placed between formatted blocks.
const Separator = "---"

// FormatAlert renders an alert as five "Label: value" lines.
func FormatAlert(a AlertFeature) string {
	return strings.Join([]string{
		"Event: " + valueOr(a.Event, DefaultEvent),
		"Area: " + valueOr(a.AreaDesc, DefaultArea),
		"Severity: " + valueOr(a.Severity, DefaultSeverity),
		"Description: " + valueOr(a.Description, DefaultDescription),
		"Instructions: " + valueOr(a.Instruction, DefaultInstruction),
	}, "\n")
}

// FormatPeriod renders a forecast period as a header line and three indented
// detail lines.
func FormatPeriod(p ForecastPeriod) string {
	return fmt.Sprintf("%s:\n  Temperature: %s°%s\n  Wind: %s %s\n  Forecast: %s",
		p.Name,
		p.Temperature, p.TemperatureUnit,
		p.WindSpeed, p.WindDirection,
		p.DetailedForecast,
	)
}

// JoinBlocks places a Separator line between consecutive blocks.
// No blocks yields "".
func JoinBlocks(blocks []string) string {
	return strings.Join(blocks, "\n"+Separator+"\n")
}

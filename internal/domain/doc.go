// Package domain models National Weather Service (NWS) API responses and
// renders them as plain text for tool callers.
//
// # Data Source
//
// All data comes from the public NWS API at https://api.weather.gov. The API
// serves GeoJSON; the shapes used here are:
//
//	GET /alerts/active/area/{state}  ->  {"features": [{"properties": {...}}, ...]}
//	GET /points/{lat},{lon}          ->  {"properties": {"forecast": "<url>", ...}}
//	GET <forecast url>               ->  {"properties": {"periods": [{...}, ...]}}
//
// The documented shape is not guaranteed. Decoded bodies are kept as a
// [Document] and only the fields below are read from it.
//
// # Alerts
//
// Alert properties are optional. A missing or null field renders a default:
//
//	event, areaDesc, severity  ->  "Unknown"
//	description                ->  "No description available"
//	instruction                ->  "No specific instructions provided"
//
// NWS routinely sends "instruction": null for advisories, so null counts as
// missing. The "properties" object itself is required.
//
// # Forecasts
//
// A forecast takes two requests. The points response names the gridpoint
// forecast URL in properties.forecast ([ForecastURL]); that URL returns the
// periods. Period fields (name, temperature, temperatureUnit, windSpeed,
// windDirection, detailedForecast) are required. A missing one is a
// [ShapeError], not a default.
//
// Temperatures are integers in practice ("temperature": 72) but are rendered
// from the raw JSON number, so 72.5 stays 72.5.
//
// # Failures
//
// Upstream failures are a [*FetchError] with a [Reason]. Unexpected shapes on
// required fields are a [*ShapeError]. Both match with errors.Is against
// [ErrUpstream] and [ErrShape] respectively.
package domain

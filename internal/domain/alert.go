package domain

import "fmt"

// Defaults rendered for alert properties that are missing or null.
const (
	DefaultEvent       = "Unknown"
	DefaultArea        = "Unknown"
	DefaultSeverity    = "Unknown"
	DefaultDescription = "No description available"
	DefaultInstruction = "No specific instructions provided"
)

// AlertFeature is one entry of an alerts response. Every property is optional;
// nil means the upstream omitted it.
type AlertFeature struct {
	Event       *string
	AreaDesc    *string
	Severity    *string
	Description *string
	Instruction *string
}

// AlertFeatures extracts the features of an alerts response. present is false
// when the document has no "features" key at all; a null value counts as an
// empty list.
func AlertFeatures(doc Document) (features []AlertFeature, present bool, err error) {
	raw, ok := doc["features"]
	if !ok {
		return nil, false, nil
	}
	if raw == nil {
		return []AlertFeature{}, true, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, true, &ShapeError{Path: "features", Problem: fmt.Sprintf("expected array, got %T", raw)}
	}

	features = make([]AlertFeature, 0, len(items))
	for i, item := range items {
		f, err := alertFeatureOf(item, index("features", i))
		if err != nil {
			return nil, true, err
		}
		features = append(features, f)
	}
	return features, true, nil
}

func alertFeatureOf(v any, path string) (AlertFeature, error) {
	obj, err := object(v, path)
	if err != nil {
		return AlertFeature{}, err
	}
	props, err := object(obj["properties"], join(path, "properties"))
	if err != nil {
		return AlertFeature{}, err
	}

	return AlertFeature{
		Event:       optional(props, "event"),
		AreaDesc:    optional(props, "areaDesc"),
		Severity:    optional(props, "severity"),
		Description: optional(props, "description"),
		Instruction: optional(props, "instruction"),
	}, nil
}

func optional(m map[string]any, key string) *string {
	s, ok := optionalText(m, key)
	if !ok {
		return nil
	}
	return &s
}

func valueOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

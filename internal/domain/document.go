package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Document is one decoded upstream JSON object. Numbers are json.Number so
// they render exactly as the upstream wrote them.
type Document map[string]any

// Fetcher retrieves and decodes one upstream resource.
// A non-nil error is always a *FetchError.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Document, error)
}

func object(v any, path string) (map[string]any, error) {
	switch m := v.(type) {
	case map[string]any:
		return m, nil
	case Document:
		return m, nil
	case nil:
		return nil, &ShapeError{Path: path, Problem: "missing"}
	default:
		return nil, &ShapeError{Path: path, Problem: fmt.Sprintf("expected object, got %T", v)}
	}
}

func field(m map[string]any, path, key string) (any, string, error) {
	p := join(path, key)
	v, ok := m[key]
	if !ok || v == nil {
		return nil, p, &ShapeError{Path: p, Problem: "missing"}
	}
	return v, p, nil
}

// requiredText renders m[key], failing when it is absent or null.
func requiredText(m map[string]any, path, key string) (string, error) {
	v, _, err := field(m, path, key)
	if err != nil {
		return "", err
	}
	return render(v), nil
}

// optionalText renders m[key]; ok is false when it is absent or null.
func optionalText(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", false
	}
	return render(v), true
}

func render(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

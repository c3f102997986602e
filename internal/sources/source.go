// Package sources collects share links from configured places. Plugins
// register themselves by type name.
package sources

import (
	"fmt"
	"time"
)

type Source interface {
	Collect(params map[string]interface{}) ([]string, error)
}

type Factory func() Source

var registry = make(map[string]Factory)

func Register(name string, factory Factory) {
	registry[name] = factory
}

func Get(name string) (Source, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("source plugin '%s' not found", name)
	}
	return factory(), nil
}

// StringParam returns a required string param.
func StringParam(params map[string]interface{}, key string) (string, error) {
	v, ok := params[key]
	if !ok {
		return "", fmt.Errorf("missing '%s' in source params", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("param '%s' must be a non-empty string, got %v", key, v)
	}
	return s, nil
}

// DurationParam reads a duration given as a Go duration string or as whole
// seconds, falling back to def when the key is absent.
func DurationParam(params map[string]interface{}, key string, def time.Duration) (time.Duration, error) {
	v, ok := params[key]
	if !ok {
		return def, nil
	}
	switch v := v.(type) {
	case int:
		return time.Duration(v) * time.Second, nil
	case time.Duration:
		return v, nil
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("param '%s': %w", key, err)
		}
		return d, nil
	default:
		return 0, fmt.Errorf("param '%s' has unsupported type %T", key, v)
	}
}

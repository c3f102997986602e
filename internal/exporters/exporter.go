// Package exporters renders access method settings into consumable
// formats. Plugins register themselves by type name.
package exporters

import (
	"fmt"
	"io"
	"os"

	"apiaccess/internal/model"
)

type Exporter interface {
	Export(settings model.Settings, params map[string]interface{}) (string, error)
}

type Factory func() Exporter

var registry = make(map[string]Factory)

func Register(name string, factory Factory) {
	registry[name] = factory
}

func Get(name string) (Exporter, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("exporter plugin '%s' not found", name)
	}
	return factory(), nil
}

// Emit writes payload to the file named by the "output" param, or to w
// when no output is configured.
func Emit(w io.Writer, payload string, params map[string]interface{}) error {
	if path, _ := params["output"].(string); path != "" {
		if err := os.WriteFile(path, []byte(payload+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return nil
	}
	_, err := fmt.Fprintln(w, payload)
	return err
}

// Selected returns the methods an exporter should consider: enabled ones,
// or all of them when the "all" param is set.
func Selected(settings model.Settings, params map[string]interface{}) []model.AccessMethodSetting {
	all, _ := params["all"].(bool)
	var out []model.AccessMethodSetting
	for _, s := range settings.AccessMethods {
		if s.Enabled || all {
			out = append(out, s)
		}
	}
	return out
}

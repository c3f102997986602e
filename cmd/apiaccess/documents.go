package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"apiaccess/internal/convert"
	"apiaccess/internal/model"
	"apiaccess/internal/wire"
)

func loadSettings(path string) (model.Settings, error) {
	msg, err := wire.ReadSettingsFile(path)
	if err != nil {
		return model.Settings{}, err
	}
	settings, err := convert.DecodeSettings(msg)
	if err != nil {
		return model.Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return settings, nil
}

func loadUpdate(path string) (model.AccessMethodUpdate, error) {
	msg, err := wire.ReadUpdateFile(path)
	if err != nil {
		return model.AccessMethodUpdate{}, err
	}
	u, err := convert.DecodeUpdate(msg)
	if err != nil {
		return model.AccessMethodUpdate{}, fmt.Errorf("%s: %w", path, err)
	}
	return u, nil
}

// writeSettings encodes settings to output, or to w when output is empty.
func writeSettings(w io.Writer, output string, settings model.Settings) error {
	msg := convert.EncodeSettings(settings)
	if output == "" {
		return wire.WriteYAML(w, msg)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	if err := wire.WriteYAML(f, msg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// applyOverrides merges --param values into plugin params, typing
// integers and booleans the way YAML would.
func applyOverrides(params map[string]interface{}, overrides map[string]string) map[string]interface{} {
	if params == nil {
		params = make(map[string]interface{})
	}
	for k, v := range overrides {
		if intVal, err := strconv.Atoi(v); err == nil {
			params[k] = intVal
		} else if boolVal, err := strconv.ParseBool(v); err == nil {
			params[k] = boolVal
		} else {
			params[k] = v
		}
	}
	return params
}

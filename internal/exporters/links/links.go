// Package links exports custom access methods as a share-link
// subscription.
package links

import (
	"encoding/base64"
	"errors"
	"strings"

	"apiaccess/internal/exporters"
	"apiaccess/internal/link"
	"apiaccess/internal/logger"
	"apiaccess/internal/model"
)

type Exporter struct{}

func (e *Exporter) Export(settings model.Settings, params map[string]interface{}) (string, error) {
	var lines []string
	for _, s := range exporters.Selected(settings, params) {
		uri, err := link.ToURI(link.Profile{Name: s.Name, Method: s.Method})
		if errors.Is(err, link.ErrNoLink) {
			logger.Log.Debugf("Skipping %s (%s): no link form", s.Name, s.Method)
			continue
		}
		if err != nil {
			return "", err
		}
		lines = append(lines, uri)
	}

	payload := strings.Join(lines, "\n")

	if useBase64, _ := params["base64"].(bool); useBase64 {
		return base64.StdEncoding.EncodeToString([]byte(payload)), nil
	}
	return payload, nil
}

func init() {
	exporters.Register("links", func() exporters.Exporter { return &Exporter{} })
}

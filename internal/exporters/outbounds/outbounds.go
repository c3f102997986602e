// Package outbounds exports access methods as Xray outbound
// configurations.
package outbounds

import (
	"encoding/json"
	"errors"
	"fmt"

	"apiaccess/internal/exporters"
	"apiaccess/internal/logger"
	"apiaccess/internal/model"
	"apiaccess/internal/xray"

	"github.com/xtls/xray-core/infra/conf"
)

const defaultTagPrefix = "api-"

type Exporter struct{}

type document struct {
	Outbounds []*conf.OutboundDetourConfig `json:"outbounds"`
}

func (e *Exporter) Export(settings model.Settings, params map[string]interface{}) (string, error) {
	prefix, ok := params["tag_prefix"].(string)
	if !ok {
		prefix = defaultTagPrefix
	}

	doc := document{Outbounds: []*conf.OutboundDetourConfig{}}
	for _, s := range exporters.Selected(settings, params) {
		out, err := xray.ToOutbound(prefix+s.ID.String(), s.Method)
		if errors.Is(err, xray.ErrUnsupported) {
			logger.Log.Debugf("Skipping %s: %v", s.Name, err)
			continue
		}
		if err != nil {
			return "", err
		}
		if err := xray.Validate(out); err != nil {
			logger.Log.Warnf("Skipping %s: %v", s.Name, err)
			continue
		}
		doc.Outbounds = append(doc.Outbounds, out)
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode outbounds: %w", err)
	}
	return string(b), nil
}

func init() {
	exporters.Register("xray", func() exporters.Exporter { return &Exporter{} })
}

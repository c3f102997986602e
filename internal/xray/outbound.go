// Package xray maps access methods onto Xray outbound configurations.
package xray

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/netip"

	"apiaccess/internal/model"

	"github.com/xtls/xray-core/infra/conf"
)

// ErrUnsupported is returned for methods Xray has no outbound for.
var ErrUnsupported = errors.New("access method has no xray outbound")

var loopback = netip.AddrFrom4([4]byte{127, 0, 0, 1})

// ToOutbound converts an access method into an Xray outbound with the
// given tag. A local SOCKS5 relay is reached on the loopback address at its
// local port; its peer is the relay's business.
func ToOutbound(tag string, m model.AccessMethod) (*conf.OutboundDetourConfig, error) {
	var protocol string
	var settings json.RawMessage

	switch m := m.(type) {
	case model.BuiltIn:
		if m != model.Direct {
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, m)
		}
		protocol = "freedom"
		settings = jsonRaw(map[string]interface{}{})
	case model.Socks5Remote:
		protocol = "socks"
		settings = buildSocks(m.Peer())
	case model.Socks5Local:
		protocol = "socks"
		settings = buildSocks(netip.AddrPortFrom(loopback, m.LocalPort()))
	case model.Shadowsocks:
		protocol = "shadowsocks"
		settings = buildShadowsocks(m)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, m)
	}

	return &conf.OutboundDetourConfig{
		Tag:      tag,
		Protocol: protocol,
		Settings: &settings,
	}, nil
}

// Validate runs Xray's own config builder over an outbound.
func Validate(out *conf.OutboundDetourConfig) error {
	if _, err := out.Build(); err != nil {
		return fmt.Errorf("xray rejected outbound %q: %w", out.Tag, err)
	}
	return nil
}

// --- JSON Builders ---

func buildSocks(peer netip.AddrPort) json.RawMessage {
	return jsonRaw(map[string]interface{}{
		"servers": []interface{}{
			map[string]interface{}{
				"address": peer.Addr().String(),
				"port":    peer.Port(),
			},
		},
	})
}

func buildShadowsocks(m model.Shadowsocks) json.RawMessage {
	return jsonRaw(map[string]interface{}{
		"servers": []interface{}{
			map[string]interface{}{
				"address":  m.Peer().Addr().String(),
				"port":     m.Peer().Port(),
				"method":   m.Cipher(),
				"password": m.Password(),
			},
		},
	})
}

func jsonRaw(v interface{}) json.RawMessage {
	b, _ := json.Marshal(v)
	return json.RawMessage(b)
}

package convert

import (
	"math"

	"apiaccess/internal/model"
	"apiaccess/internal/wire"
)

// EncodeAccessMethod converts a domain access method to its oneof. A nil
// method, or a BuiltIn outside Direct and Bridge, yields an unset oneof.
func EncodeAccessMethod(m model.AccessMethod) *wire.AccessMethod {
	switch m := m.(type) {
	case model.BuiltIn:
		switch m {
		case model.Direct:
			return &wire.AccessMethod{Method: &wire.Direct{}}
		case model.Bridge:
			return &wire.AccessMethod{Method: &wire.Bridges{}}
		}
	case model.Socks5Local:
		return &wire.AccessMethod{Method: &wire.Socks5Local{
			IP:        m.Peer().Addr().String(),
			Port:      uint32(m.Peer().Port()),
			LocalPort: uint32(m.LocalPort()),
		}}
	case model.Socks5Remote:
		return &wire.AccessMethod{Method: &wire.Socks5Remote{
			IP:   m.Peer().Addr().String(),
			Port: uint32(m.Peer().Port()),
		}}
	case model.Shadowsocks:
		return &wire.AccessMethod{Method: &wire.Shadowsocks{
			IP:       m.Peer().Addr().String(),
			Port:     uint32(m.Peer().Port()),
			Cipher:   m.Cipher(),
			Password: m.Password(),
		}}
	}
	return &wire.AccessMethod{}
}

// DecodeAccessMethod validates a oneof and builds the matching domain
// method. Ports above 65535 are rejected, never truncated.
func DecodeAccessMethod(msg *wire.AccessMethod) (model.AccessMethod, error) {
	switch c := msg.GetMethod().(type) {
	case nil:
		return nil, invalid(nil, "access method: no access method set")

	case *wire.Direct:
		return model.Direct, nil

	case *wire.Bridges:
		return model.Bridge, nil

	case *wire.Socks5Local:
		if c == nil {
			c = &wire.Socks5Local{}
		}
		port, err := decodePort("port", c.Port)
		if err != nil {
			return nil, withContext(err, "access method: socks5 (local)")
		}
		localPort, err := decodePort("local_port", c.LocalPort)
		if err != nil {
			return nil, withContext(err, "access method: socks5 (local)")
		}
		m, err := model.Socks5LocalFromArgs(c.IP, port, localPort)
		if err != nil {
			return nil, invalid(err, "access method: socks5 (local)")
		}
		return m, nil

	case *wire.Socks5Remote:
		if c == nil {
			c = &wire.Socks5Remote{}
		}
		port, err := decodePort("port", c.Port)
		if err != nil {
			return nil, withContext(err, "access method: socks5 (remote)")
		}
		m, err := model.Socks5RemoteFromArgs(c.IP, port)
		if err != nil {
			return nil, invalid(err, "access method: socks5 (remote)")
		}
		return m, nil

	case *wire.Shadowsocks:
		if c == nil {
			c = &wire.Shadowsocks{}
		}
		port, err := decodePort("port", c.Port)
		if err != nil {
			return nil, withContext(err, "access method: shadowsocks")
		}
		m, err := model.ShadowsocksFromArgs(c.IP, port, c.Cipher, c.Password)
		if err != nil {
			return nil, invalid(err, "access method: shadowsocks")
		}
		return m, nil

	default:
		return nil, invalid(nil, "access method: unknown case %T", c)
	}
}

func decodePort(field string, v uint32) (uint16, error) {
	if v > math.MaxUint16 {
		return 0, invalid(model.ErrInvalidPort, "%s %d out of range", field, v)
	}
	return uint16(v), nil
}

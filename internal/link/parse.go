package link

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"apiaccess/internal/model"
)

// Parse turns a share link into a Profile. Hosts must be IP literals; the
// access method constructors reject anything else.
func Parse(raw string) (*Profile, error) {
	raw = FixIllegalURL(raw)
	parts := strings.SplitN(raw, "://", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid uri format")
	}

	scheme := strings.ToLower(parts[0])
	switch scheme {
	case "ss", "shadowsocks":
		return parseShadowsocks(raw, parts[1])
	case "socks", "socks5":
		return parseSocks(raw)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme)
	}
}

// --- Shadowsocks ---

func parseShadowsocks(raw, rest string) (*Profile, error) {
	// Legacy form: ss://base64(method:password@host:port)#name
	if !strings.Contains(rest, "@") {
		return parseLegacyShadowsocks(raw, rest)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}

	var method, password string
	if pass, ok := u.User.Password(); ok {
		// SIP002 with percent-encoded plain userinfo.
		method, password = u.User.Username(), pass
	} else {
		decoded, err := DecodeBase64(u.User.Username())
		if err != nil {
			return nil, fmt.Errorf("shadowsocks userinfo: %w", err)
		}
		var found bool
		method, password, found = strings.Cut(decoded, ":")
		if !found {
			return nil, fmt.Errorf("invalid shadowsocks userinfo")
		}
	}

	port, err := parsePort(u.Port())
	if err != nil {
		return nil, err
	}

	ss, err := model.ShadowsocksFromArgs(u.Hostname(), port, method, password)
	if err != nil {
		return nil, err
	}
	return &Profile{Name: u.Fragment, RawURI: raw, Method: ss}, nil
}

func parseLegacyShadowsocks(raw, rest string) (*Profile, error) {
	body, frag, _ := strings.Cut(rest, "#")
	body, _, _ = strings.Cut(body, "?")
	body = strings.TrimSuffix(body, "/")

	name, err := url.PathUnescape(frag)
	if err != nil {
		return nil, fmt.Errorf("shadowsocks name: %w", err)
	}

	decoded, err := DecodeBase64(body)
	if err != nil {
		return nil, fmt.Errorf("shadowsocks base64: %w", err)
	}

	at := strings.LastIndex(decoded, "@")
	if at < 0 {
		return nil, fmt.Errorf("invalid shadowsocks link: missing '@'")
	}
	method, password, found := strings.Cut(decoded[:at], ":")
	if !found {
		return nil, fmt.Errorf("invalid shadowsocks userinfo")
	}

	u, err := url.Parse("ss://" + decoded[at+1:])
	if err != nil {
		return nil, err
	}
	port, err := parsePort(u.Port())
	if err != nil {
		return nil, err
	}

	ss, err := model.ShadowsocksFromArgs(u.Hostname(), port, method, password)
	if err != nil {
		return nil, err
	}
	return &Profile{Name: name, RawURI: raw, Method: ss}, nil
}

// --- Socks5 ---

// parseSocks reads socks5://ip:port#name. A local_port query parameter
// makes it a local relay instead of a remote server.
func parseSocks(raw string) (*Profile, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.User != nil {
		return nil, fmt.Errorf("socks5 authentication is not supported")
	}

	port, err := parsePort(u.Port())
	if err != nil {
		return nil, err
	}

	p := &Profile{Name: u.Fragment, RawURI: raw}

	if lp := u.Query().Get("local_port"); lp != "" {
		localPort, err := parsePort(lp)
		if err != nil {
			return nil, fmt.Errorf("local_port: %w", err)
		}
		p.Method, err = model.Socks5LocalFromArgs(u.Hostname(), port, localPort)
		if err != nil {
			return nil, err
		}
		return p, nil
	}

	p.Method, err = model.Socks5RemoteFromArgs(u.Hostname(), port)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func parsePort(s string) (uint16, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: missing port", model.ErrInvalidPort)
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidPort, s)
	}
	return uint16(n), nil
}

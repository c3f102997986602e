package link

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"

	"apiaccess/internal/model"
)

// ToURI renders a custom access method as a share link. Built-in methods
// have no link form and yield ErrNoLink.
func ToURI(p Profile) (string, error) {
	switch m := p.Method.(type) {
	case model.Shadowsocks:
		return toShadowsocksURI(m, p.Name), nil
	case model.Socks5Remote:
		u := url.URL{
			Scheme:   "socks5",
			Host:     m.Peer().String(),
			Fragment: p.Name,
		}
		return u.String(), nil
	case model.Socks5Local:
		u := url.URL{
			Scheme:   "socks5",
			Host:     m.Peer().String(),
			Fragment: p.Name,
		}
		q := u.Query()
		q.Set("local_port", strconv.Itoa(int(m.LocalPort())))
		u.RawQuery = q.Encode()
		return u.String(), nil
	case nil:
		return "", fmt.Errorf("%w: no method", ErrNoLink)
	default:
		return "", fmt.Errorf("%w: %s", ErrNoLink, m)
	}
}

func toShadowsocksURI(m model.Shadowsocks, name string) string {
	userInfo := fmt.Sprintf("%s:%s", m.Cipher(), m.Password())

	// SIP002 (safe for special chars)
	safeUser := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString([]byte(userInfo))

	u := url.URL{
		Scheme:   "ss",
		User:     url.User(safeUser),
		Host:     m.Peer().String(),
		Fragment: name,
	}
	return u.String()
}

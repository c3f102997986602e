// Package link reads and writes share links (ss:// and socks5://) for
// custom access methods.
package link

import (
	"errors"

	"apiaccess/internal/model"
)

var (
	ErrUnsupportedScheme = errors.New("unsupported link scheme")
	ErrNoLink            = errors.New("access method has no link form")
)

// Profile is a parsed share link: a validated access method plus the
// display name carried in the link fragment.
type Profile struct {
	Name   string
	RawURI string
	Method model.AccessMethod
}

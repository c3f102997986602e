package model

import "errors"

var (
	ErrInvalidID          = errors.New("invalid access method id")
	ErrInvalidAddress     = errors.New("invalid ip address")
	ErrInvalidPort        = errors.New("invalid port")
	ErrInvalidCredentials = errors.New("invalid shadowsocks credentials")
	ErrNotFound           = errors.New("access method not found")
)

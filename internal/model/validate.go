package model

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var supportedCiphers = []string{
	// Stream ciphers.
	"aes-128-cfb",
	"aes-128-cfb1",
	"aes-128-cfb8",
	"aes-128-cfb128",
	"aes-256-cfb",
	"aes-256-cfb1",
	"aes-256-cfb8",
	"aes-256-cfb128",
	"rc4",
	"rc4-md5",
	"chacha20",
	"salsa20",
	"chacha20-ietf",
	// AEAD ciphers.
	"aes-128-gcm",
	"aes-256-gcm",
	"chacha20-ietf-poly1305",
	"xchacha20-ietf-poly1305",
	"aes-128-pmac-siv",
	"aes-256-pmac-siv",
}

// SupportedCiphers returns the Shadowsocks ciphers NewShadowsocks accepts.
func SupportedCiphers() []string {
	return slices.Clone(supportedCiphers)
}

type shadowsocksCredentials struct {
	Cipher   string `validate:"required,sscipher"`
	Password string `validate:"required,maxbytes=255,noctl"`
}

// validate is safe for concurrent use once the custom tags are registered.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("sscipher", func(fl validator.FieldLevel) bool {
		return slices.Contains(supportedCiphers, fl.Field().String())
	}); err != nil {
		panic("model: registering sscipher validation: " + err.Error())
	}
	// max counts runes; the password limit is in bytes.
	if err := validate.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	}); err != nil {
		panic("model: registering maxbytes validation: " + err.Error())
	}
	if err := validate.RegisterValidation("noctl", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), "\x00\r\n")
	}); err != nil {
		panic("model: registering noctl validation: " + err.Error())
	}
}

func validateCredentials(cipher, password string) error {
	err := validate.Struct(shadowsocksCredentials{Cipher: cipher, Password: password})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Field() {
		case "Cipher":
			return fmt.Errorf("%w: unsupported cipher %q", ErrInvalidCredentials, cipher)
		default:
			return fmt.Errorf("%w: password fails %q", ErrInvalidCredentials, fe.Tag())
		}
	}
	return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
}

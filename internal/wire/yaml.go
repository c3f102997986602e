package wire

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	keyDirect       = "direct"
	keyBridges      = "bridges"
	keySocks5Local  = "socks5local"
	keySocks5Remote = "socks5remote"
	keyShadowsocks  = "shadowsocks"
)

// MarshalYAML renders the oneof as a mapping with a single key naming the
// case. An unset oneof renders as an empty mapping.
func (x AccessMethod) MarshalYAML() (interface{}, error) {
	var key string
	switch x.Method.(type) {
	case nil:
		return map[string]interface{}{}, nil
	case *Direct:
		key = keyDirect
	case *Bridges:
		key = keyBridges
	case *Socks5Local:
		key = keySocks5Local
	case *Socks5Remote:
		key = keySocks5Remote
	case *Shadowsocks:
		key = keyShadowsocks
	default:
		return nil, fmt.Errorf("unknown access method case %T", x.Method)
	}
	return map[string]interface{}{key: x.Method}, nil
}

// UnmarshalYAML accepts a mapping with at most one key. An empty mapping
// leaves the oneof unset; rejecting that is up to the caller.
func (x *AccessMethod) UnmarshalYAML(node *yaml.Node) error {
	x.Method = nil
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: access method must be a mapping", node.Line)
	}
	if len(node.Content) == 0 {
		return nil
	}
	if len(node.Content) > 2 {
		return fmt.Errorf("line %d: access method sets %d cases, want one", node.Line, len(node.Content)/2)
	}

	key, value := node.Content[0], node.Content[1]
	var c AccessMethodCase
	switch key.Value {
	case keyDirect:
		c = &Direct{}
	case keyBridges:
		c = &Bridges{}
	case keySocks5Local:
		c = &Socks5Local{}
	case keySocks5Remote:
		c = &Socks5Remote{}
	case keyShadowsocks:
		c = &Shadowsocks{}
	default:
		return fmt.Errorf("line %d: unknown access method %q", key.Line, key.Value)
	}

	if err := value.Decode(c); err != nil {
		return fmt.Errorf("%s: %w", key.Value, err)
	}
	x.Method = c
	return nil
}

// ReadSettings reads an APIAccessMethodSettings document. An empty
// document yields an empty message.
func ReadSettings(r io.Reader) (*APIAccessMethodSettings, error) {
	return readDocument[APIAccessMethodSettings](r)
}

func ReadSettingsFile(path string) (*APIAccessMethodSettings, error) {
	return readFile(path, ReadSettings)
}

// ReadUpdate reads an APIAccessMethodUpdate document.
func ReadUpdate(r io.Reader) (*APIAccessMethodUpdate, error) {
	return readDocument[APIAccessMethodUpdate](r)
}

func ReadUpdateFile(path string) (*APIAccessMethodUpdate, error) {
	return readFile(path, ReadUpdate)
}

// WriteYAML writes msg as a YAML document with two-space indentation.
func WriteYAML(w io.Writer, msg interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(msg); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func readDocument[T any](r io.Reader) (*T, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	msg := new(T)
	if err := dec.Decode(msg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	return msg, nil
}

func readFile[T any](path string, read func(io.Reader) (*T, error)) (*T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return read(f)
}

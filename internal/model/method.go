package model

import (
	"fmt"
	"net/netip"
)

// Kind names the case of an AccessMethod.
type Kind int

const (
	KindUnknown Kind = iota
	KindDirect
	KindBridge
	KindSocks5Local
	KindSocks5Remote
	KindShadowsocks
)

func (k Kind) String() string {
	switch k {
	case KindDirect:
		return "direct"
	case KindBridge:
		return "bridge"
	case KindSocks5Local:
		return "socks5-local"
	case KindSocks5Remote:
		return "socks5-remote"
	case KindShadowsocks:
		return "shadowsocks"
	default:
		return "unknown"
	}
}

// AccessMethod is a way of reaching the API. The set of implementations is
// closed: BuiltIn, Socks5Local, Socks5Remote and Shadowsocks.
//
// Custom methods can only be obtained from their constructors, so a value
// held in an AccessMethod is always field-valid. The zero value of a custom
// struct is not; never build one by hand.
type AccessMethod interface {
	Kind() Kind
	IsBuiltIn() bool
	String() string

	accessMethod()
}

// BuiltIn is a method that needs no parameters.
type BuiltIn uint8

const (
	Direct BuiltIn = iota
	Bridge
)

func (b BuiltIn) Kind() Kind {
	switch b {
	case Direct:
		return KindDirect
	case Bridge:
		return KindBridge
	default:
		return KindUnknown
	}
}

func (BuiltIn) IsBuiltIn() bool { return true }

func (b BuiltIn) String() string {
	switch b {
	case Direct:
		return "Direct"
	case Bridge:
		return "Bridges"
	default:
		return fmt.Sprintf("BuiltIn(%d)", uint8(b))
	}
}

func (BuiltIn) accessMethod() {}

// Socks5Local is a SOCKS5 server running on this host, listening on
// LocalPort, which forwards traffic to Peer.
type Socks5Local struct {
	peer      netip.AddrPort
	localPort uint16
}

func NewSocks5Local(peer netip.AddrPort, localPort uint16) (Socks5Local, error) {
	if err := checkPeer(peer); err != nil {
		return Socks5Local{}, err
	}
	return Socks5Local{peer: peer, localPort: localPort}, nil
}

// Socks5LocalFromArgs builds a Socks5Local from a textual IP literal.
func Socks5LocalFromArgs(ip string, port, localPort uint16) (Socks5Local, error) {
	addr, err := parseIP(ip)
	if err != nil {
		return Socks5Local{}, err
	}
	return NewSocks5Local(netip.AddrPortFrom(addr, port), localPort)
}

func (s Socks5Local) Peer() netip.AddrPort { return s.peer }
func (s Socks5Local) LocalPort() uint16    { return s.localPort }

func (Socks5Local) Kind() Kind      { return KindSocks5Local }
func (Socks5Local) IsBuiltIn() bool { return false }
func (Socks5Local) accessMethod()   {}

func (s Socks5Local) String() string {
	return fmt.Sprintf("Socks5 (local) %s via port %d", s.peer, s.localPort)
}

// Socks5Remote is a SOCKS5 server reachable at Peer.
type Socks5Remote struct {
	peer netip.AddrPort
}

func NewSocks5Remote(peer netip.AddrPort) (Socks5Remote, error) {
	if err := checkPeer(peer); err != nil {
		return Socks5Remote{}, err
	}
	return Socks5Remote{peer: peer}, nil
}

func Socks5RemoteFromArgs(ip string, port uint16) (Socks5Remote, error) {
	addr, err := parseIP(ip)
	if err != nil {
		return Socks5Remote{}, err
	}
	return NewSocks5Remote(netip.AddrPortFrom(addr, port))
}

func (s Socks5Remote) Peer() netip.AddrPort { return s.peer }

func (Socks5Remote) Kind() Kind      { return KindSocks5Remote }
func (Socks5Remote) IsBuiltIn() bool { return false }
func (Socks5Remote) accessMethod()   {}

func (s Socks5Remote) String() string {
	return fmt.Sprintf("Socks5 (remote) %s", s.peer)
}

// Shadowsocks is a Shadowsocks server reachable at Peer. Cipher and
// password satisfy the credential policy checked by validateCredentials.
type Shadowsocks struct {
	peer     netip.AddrPort
	cipher   string
	password string
}

func NewShadowsocks(peer netip.AddrPort, cipher, password string) (Shadowsocks, error) {
	if err := checkPeer(peer); err != nil {
		return Shadowsocks{}, err
	}
	if err := validateCredentials(cipher, password); err != nil {
		return Shadowsocks{}, err
	}
	return Shadowsocks{peer: peer, cipher: cipher, password: password}, nil
}

func ShadowsocksFromArgs(ip string, port uint16, cipher, password string) (Shadowsocks, error) {
	addr, err := parseIP(ip)
	if err != nil {
		return Shadowsocks{}, err
	}
	return NewShadowsocks(netip.AddrPortFrom(addr, port), cipher, password)
}

func (s Shadowsocks) Peer() netip.AddrPort { return s.peer }
func (s Shadowsocks) Cipher() string       { return s.cipher }
func (s Shadowsocks) Password() string     { return s.password }

func (Shadowsocks) Kind() Kind      { return KindShadowsocks }
func (Shadowsocks) IsBuiltIn() bool { return false }
func (Shadowsocks) accessMethod()   {}

// String leaves the password out.
func (s Shadowsocks) String() string {
	return fmt.Sprintf("Shadowsocks %s (%s)", s.peer, s.cipher)
}

// parseIP accepts bare IPv4 and IPv6 literals. Zoned IPv6 addresses are
// rejected: a zone names an interface on this host, not on the peer.
func parseIP(ip string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidAddress, ip)
	}
	if addr.Zone() != "" {
		return netip.Addr{}, fmt.Errorf("%w: %q has a zone", ErrInvalidAddress, ip)
	}
	return addr, nil
}

func checkPeer(peer netip.AddrPort) error {
	if !peer.Addr().IsValid() {
		return fmt.Errorf("%w: missing peer address", ErrInvalidAddress)
	}
	if peer.Addr().Zone() != "" {
		return fmt.Errorf("%w: %s has a zone", ErrInvalidAddress, peer.Addr())
	}
	return nil
}

package convert

import (
	"strings"
	"testing"

	"apiaccess/internal/wire"
)

func FuzzDecodeAccessMethod(f *testing.F) {
	f.Add(uint8(2), "127.0.0.1", uint32(1080), uint32(9090), "", "")
	f.Add(uint8(3), "2001:db8::1", uint32(65535), uint32(0), "", "")
	f.Add(uint8(4), "203.0.113.5", uint32(443), uint32(0), "aes-256-gcm", "secret")
	f.Add(uint8(4), "::ffff:1.2.3.4", uint32(65536), uint32(0), "rc4-md5", "x")
	f.Add(uint8(2), "fe80::1%eth0", uint32(1080), uint32(9090), "", "")

	f.Fuzz(func(t *testing.T, kind uint8, ip string, port, localPort uint32, cipher, password string) {
		var msg *wire.AccessMethod
		switch kind % 6 {
		case 0:
			msg = &wire.AccessMethod{Method: &wire.Direct{}}
		case 1:
			msg = &wire.AccessMethod{Method: &wire.Bridges{}}
		case 2:
			msg = &wire.AccessMethod{Method: &wire.Socks5Local{IP: ip, Port: port, LocalPort: localPort}}
		case 3:
			msg = &wire.AccessMethod{Method: &wire.Socks5Remote{IP: ip, Port: port}}
		case 4:
			msg = &wire.AccessMethod{Method: &wire.Shadowsocks{IP: ip, Port: port, Cipher: cipher, Password: password}}
		default:
			msg = &wire.AccessMethod{}
		}

		m, err := DecodeAccessMethod(msg)
		if err != nil {
			if m != nil {
				t.Fatalf("partial method %v returned with error %v", m, err)
			}
			return
		}
		if strings.Contains(ip, "%") && kind%6 >= 2 && kind%6 <= 4 {
			t.Fatalf("accepted zoned address %q", ip)
		}
		switch kind % 6 {
		case 2:
			if port > 65535 || localPort > 65535 {
				t.Fatalf("accepted out of range port %d/%d", port, localPort)
			}
		case 3, 4:
			if port > 65535 {
				t.Fatalf("accepted out of range port %d", port)
			}
		}

		again, err := DecodeAccessMethod(EncodeAccessMethod(m))
		if err != nil {
			t.Fatalf("re-decoding %v: %v", m, err)
		}
		if again != m {
			t.Fatalf("round trip changed %v into %v", m, again)
		}
	})
}

func FuzzDecodeID(f *testing.F) {
	f.Add("0c4b8c3a-7b0e-4c1f-9d0a-2f8e6c1b5a90")
	f.Add("urn:uuid:0c4b8c3a-7b0e-4c1f-9d0a-2f8e6c1b5a90")
	f.Add("{0c4b8c3a-7b0e-4c1f-9d0a-2f8e6c1b5a90}")
	f.Add("")

	f.Fuzz(func(t *testing.T, s string) {
		id, err := DecodeID(&wire.UUID{Value: s})
		if err != nil {
			return
		}
		again, err := DecodeID(EncodeID(id))
		if err != nil {
			t.Fatalf("re-decoding %s: %v", id, err)
		}
		if again != id {
			t.Fatalf("round trip changed %s into %s", id, again)
		}
	})
}

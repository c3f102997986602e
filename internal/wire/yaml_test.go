package wire

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settingsDoc = `api_access_methods:
  - id:
      value: 0c4b8c3a-7b0e-4c1f-9d0a-2f8e6c1b5a90
    name: Direct
    enabled: true
    access_method:
      direct: {}
  - id:
      value: 5e1f4f1e-2a4b-4d7e-8c55-0f5b8b0e7d11
    name: Home relay
    enabled: false
    access_method:
      socks5local:
        ip: 127.0.0.1
        port: 1080
        local_port: 9090
  - id:
      value: 9b7d7a52-0d2e-4a44-9b3f-6f3c3e7e2c01
    name: Shadowsocks
    enabled: true
    access_method:
      shadowsocks:
        ip: 203.0.113.5
        port: 443
        cipher: aes-256-gcm
        password: secret
`

func TestReadSettings(t *testing.T) {
	t.Parallel()

	msg, err := ReadSettings(strings.NewReader(settingsDoc))
	require.NoError(t, err)
	require.Len(t, msg.GetAPIAccessMethods(), 3)

	first := msg.APIAccessMethods[0]
	assert.Equal(t, "0c4b8c3a-7b0e-4c1f-9d0a-2f8e6c1b5a90", first.GetID().GetValue())
	assert.Equal(t, "Direct", first.GetName())
	assert.True(t, first.GetEnabled())
	assert.NotNil(t, first.GetAccessMethod().GetDirect())
	assert.Nil(t, first.GetAccessMethod().GetBridges())

	local := msg.APIAccessMethods[1].GetAccessMethod().GetSocks5Local()
	require.NotNil(t, local)
	assert.Equal(t, Socks5Local{IP: "127.0.0.1", Port: 1080, LocalPort: 9090}, *local)

	ss := msg.APIAccessMethods[2].GetAccessMethod().GetShadowsocks()
	require.NotNil(t, ss)
	assert.Equal(t, "aes-256-gcm", ss.Cipher)
}

func TestWriteYAML_ReadBack(t *testing.T) {
	t.Parallel()

	msg, err := ReadSettings(strings.NewReader(settingsDoc))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, msg))
	assert.Contains(t, buf.String(), "direct: {}")

	again, err := ReadSettings(&buf)
	require.NoError(t, err)
	assert.Equal(t, msg, again)
}

func TestAccessMethod_UnmarshalYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		want    AccessMethodCase
		wantErr string
	}{
		{name: "bridges", doc: "access_method:\n  bridges: {}\n", want: &Bridges{}},
		{name: "bridges null body", doc: "access_method:\n  bridges:\n", want: &Bridges{}},
		{name: "remote", doc: "access_method:\n  socks5remote: {ip: 10.0.0.1, port: 70000}\n", want: &Socks5Remote{IP: "10.0.0.1", Port: 70000}},
		{name: "empty mapping leaves oneof unset", doc: "access_method: {}\n", want: nil},
		{name: "two cases", doc: "access_method:\n  direct: {}\n  bridges: {}\n", wantErr: "want one"},
		{name: "unknown case", doc: "access_method:\n  wireguard: {}\n", wantErr: "unknown access method"},
		{name: "scalar", doc: "access_method: direct\n", wantErr: "must be a mapping"},
		{name: "negative port", doc: "access_method:\n  socks5remote: {ip: 10.0.0.1, port: -1}\n", wantErr: "socks5remote"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := "id: {value: 0c4b8c3a-7b0e-4c1f-9d0a-2f8e6c1b5a90}\n" + tt.doc
			msg, err := readDocument[APIAccessMethod](strings.NewReader(doc))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, msg.AccessMethod)
			assert.Equal(t, tt.want, msg.AccessMethod.Method)
		})
	}
}

func TestReadSettings_UnknownField(t *testing.T) {
	t.Parallel()

	_, err := ReadSettings(strings.NewReader("api_access_methods:\n  - name: x\n    colour: red\n"))
	require.Error(t, err)
}

func TestReadSettings_EmptyDocument(t *testing.T) {
	t.Parallel()

	msg, err := ReadSettings(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, msg.GetAPIAccessMethods())
}

func TestReadUpdate(t *testing.T) {
	t.Parallel()

	doc := `id:
  value: 5e1f4f1e-2a4b-4d7e-8c55-0f5b8b0e7d11
access_method:
  id:
    value: 5e1f4f1e-2a4b-4d7e-8c55-0f5b8b0e7d11
  name: ""
  enabled: false
  access_method:
    socks5remote:
      ip: 198.51.100.1
      port: 1080
`
	msg, err := ReadUpdate(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "5e1f4f1e-2a4b-4d7e-8c55-0f5b8b0e7d11", msg.GetID().GetValue())
	assert.Equal(t, &Socks5Remote{IP: "198.51.100.1", Port: 1080}, msg.GetAccessMethod().GetAccessMethod().GetSocks5Remote())

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, msg))
	again, err := ReadUpdate(&buf)
	require.NoError(t, err)
	assert.Equal(t, msg, again)
}

func TestGetters_NilSafe(t *testing.T) {
	t.Parallel()

	var m *APIAccessMethod
	assert.Nil(t, m.GetID())
	assert.Empty(t, m.GetName())
	assert.False(t, m.GetEnabled())
	assert.Nil(t, m.GetAccessMethod().GetMethod())
	assert.Nil(t, m.GetAccessMethod().GetShadowsocks())

	var u *APIAccessMethodUpdate
	assert.Nil(t, u.GetID())
	assert.Nil(t, u.GetAccessMethod())
	assert.Empty(t, (*APIAccessMethods)(nil).GetAPIAccessMethods())
}

package xray

import (
	"encoding/json"
	"testing"

	"apiaccess/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settingsOf(t *testing.T, raw *json.RawMessage) map[string]interface{} {
	t.Helper()
	require.NotNil(t, raw)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(*raw, &out))
	return out
}

func firstServer(t *testing.T, settings map[string]interface{}) map[string]interface{} {
	t.Helper()
	servers, ok := settings["servers"].([]interface{})
	require.True(t, ok)
	require.Len(t, servers, 1)
	server, ok := servers[0].(map[string]interface{})
	require.True(t, ok)
	return server
}

func TestToOutbound_Direct(t *testing.T) {
	t.Parallel()

	out, err := ToOutbound("api-direct", model.Direct)
	require.NoError(t, err)
	assert.Equal(t, "freedom", out.Protocol)
	assert.Equal(t, "api-direct", out.Tag)
	assert.Empty(t, settingsOf(t, out.Settings))
}

func TestToOutbound_Bridge(t *testing.T) {
	t.Parallel()

	_, err := ToOutbound("api-bridge", model.Bridge)
	require.ErrorIs(t, err, ErrUnsupported)

	_, err = ToOutbound("api-nil", nil)
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestToOutbound_Socks5(t *testing.T) {
	t.Parallel()

	remote, err := model.Socks5RemoteFromArgs("2001:db8::1", 1080)
	require.NoError(t, err)
	out, err := ToOutbound("remote", remote)
	require.NoError(t, err)
	assert.Equal(t, "socks", out.Protocol)
	server := firstServer(t, settingsOf(t, out.Settings))
	assert.Equal(t, "2001:db8::1", server["address"])
	assert.EqualValues(t, 1080, server["port"])

	local, err := model.Socks5LocalFromArgs("198.51.100.9", 1080, 9090)
	require.NoError(t, err)
	out, err = ToOutbound("local", local)
	require.NoError(t, err)
	server = firstServer(t, settingsOf(t, out.Settings))
	assert.Equal(t, "127.0.0.1", server["address"])
	assert.EqualValues(t, 9090, server["port"])
}

func TestToOutbound_Shadowsocks(t *testing.T) {
	t.Parallel()

	ss, err := model.ShadowsocksFromArgs("203.0.113.5", 443, "aes-256-gcm", "secret")
	require.NoError(t, err)

	out, err := ToOutbound("ss", ss)
	require.NoError(t, err)
	assert.Equal(t, "shadowsocks", out.Protocol)

	server := firstServer(t, settingsOf(t, out.Settings))
	assert.Equal(t, "203.0.113.5", server["address"])
	assert.EqualValues(t, 443, server["port"])
	assert.Equal(t, "aes-256-gcm", server["method"])
	assert.Equal(t, "secret", server["password"])
}

package metrics

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"apiaccess/internal/link"
	"apiaccess/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{err: fmt.Errorf("%w: vmess", link.ErrUnsupportedScheme), want: "Unsupported scheme"},
		{err: fmt.Errorf("wrap: %w", model.ErrInvalidAddress), want: "Invalid address"},
		{err: model.ErrInvalidPort, want: "Invalid port"},
		{err: model.ErrInvalidCredentials, want: "Invalid credentials"},
		{err: errors.New("garbage"), want: "Malformed link"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classify(tt.err), tt.err.Error())
	}
}

func TestCollector_Report(t *testing.T) {
	t.Parallel()

	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.RecordImported(model.KindShadowsocks)
		}()
	}
	wg.Wait()
	c.RecordImported(model.KindSocks5Remote)
	c.RecordDuplicate()
	c.RecordFailure(model.ErrInvalidPort)
	c.RecordFailure(model.ErrInvalidPort)

	assert.Equal(t, 11, c.Imported())

	var buf bytes.Buffer
	require.NoError(t, c.PrintReport(&buf))
	out := buf.String()
	assert.Contains(t, out, "shadowsocks:")
	assert.Contains(t, out, "socks5-remote:")
	assert.Contains(t, out, "Duplicates skipped:")
	assert.Regexp(t, `Invalid port:\s+2`, out)
	assert.Regexp(t, `Total:\s+11`, out)
}

package sources

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Unknown(t *testing.T) {
	t.Parallel()

	_, err := Get("carrier-pigeon")
	require.EqualError(t, err, "source plugin 'carrier-pigeon' not found")
}

func TestStringParam(t *testing.T) {
	t.Parallel()

	got, err := StringParam(map[string]interface{}{"url": "http://x"}, "url")
	require.NoError(t, err)
	assert.Equal(t, "http://x", got)

	_, err = StringParam(nil, "url")
	require.Error(t, err)
	_, err = StringParam(map[string]interface{}{"url": 5}, "url")
	require.Error(t, err)
	_, err = StringParam(map[string]interface{}{"url": ""}, "url")
	require.Error(t, err)
}

func TestDurationParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  map[string]interface{}
		want    time.Duration
		wantErr bool
	}{
		{name: "absent", params: nil, want: time.Minute},
		{name: "seconds", params: map[string]interface{}{"timeout": 5}, want: 5 * time.Second},
		{name: "string", params: map[string]interface{}{"timeout": "250ms"}, want: 250 * time.Millisecond},
		{name: "bad string", params: map[string]interface{}{"timeout": "soon"}, wantErr: true},
		{name: "bad type", params: map[string]interface{}{"timeout": 1.5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DurationParam(tt.params, "timeout", time.Minute)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

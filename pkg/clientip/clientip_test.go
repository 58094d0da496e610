package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pagekit/pkg/clientip"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		trusted    []string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "remote addr",
			remoteAddr: "203.0.113.7:5123",
			want:       "203.0.113.7",
		},
		{
			name:       "untrusted header ignored",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.1"},
			remoteAddr: "203.0.113.7:5123",
			want:       "203.0.113.7",
		},
		{
			name:       "first valid forwarded entry",
			trusted:    []string{"X-Forwarded-For"},
			headers:    map[string]string{"X-Forwarded-For": "garbage, 198.51.100.1, 10.0.0.1"},
			remoteAddr: "10.0.0.1:80",
			want:       "198.51.100.1",
		},
		{
			name:       "header order",
			trusted:    []string{"X-Real-IP", "X-Forwarded-For"},
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.1", "X-Real-IP": "198.51.100.2"},
			remoteAddr: "10.0.0.1:80",
			want:       "198.51.100.2",
		},
		{
			name:       "ipv4 mapped ipv6 is unmapped",
			remoteAddr: "[::ffff:192.0.2.1]:443",
			want:       "192.0.2.1",
		},
		{
			name:       "ipv6",
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
		{
			name:       "bare address",
			remoteAddr: "192.0.2.9",
			want:       "192.0.2.9",
		},
		{
			name:       "nothing parses",
			remoteAddr: "pipe",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.New(tt.trusted...).Resolve(r))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.New().Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.44:1000"
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "192.0.2.44", got)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := clientip.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(clientip.WithContext(context.Background(), "192.0.2.1"))
	require.True(t, ok)
	assert.Equal(t, "client_ip", attr.Key)
	assert.Equal(t, "192.0.2.1", attr.Value.String())
}

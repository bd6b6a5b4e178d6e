package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatehealth/health-plan-backend/internal/config"
)

func TestCaptureWriterBuffersWithinLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 64}

	_, err := cw.Write([]byte(`{"plans":{}}`))
	require.NoError(t, err)

	assert.False(t, cw.overflowed())
	assert.Equal(t, `{"plans":{}}`, cw.buf.String())
	assert.Equal(t, `{"plans":{}}`, rec.Body.String())
}

func TestCaptureWriterOverLimitIsNotCacheable(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 10}

	// Two writes totalling 25 bytes against a 10 byte limit. The client
	// still receives everything; the capture is flagged as incomplete.
	_, err := cw.Write([]byte("aaaaaaa"))
	require.NoError(t, err)
	_, err = cw.Write([]byte("bbbbbbbbbbbbbbbbbb"))
	require.NoError(t, err)

	assert.True(t, cw.overflowed())
	assert.Equal(t, int64(25), cw.size)
	assert.Equal(t, 25, rec.Body.Len())
}

func TestCaptureWriterNoLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK}

	body := strings.Repeat("x", 4096)
	_, err := cw.Write([]byte(body))
	require.NoError(t, err)

	assert.False(t, cw.overflowed())
	assert.Equal(t, body, cw.buf.String())
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}}
	payload, err := encodePayload(http.StatusOK, hdr, []byte(`{"success":true}`))
	require.NoError(t, err)

	status, gotHdr, body, ok := decodePayload(payload)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
	assert.Equal(t, `{"success":true}`, string(body))
}

func TestDecodePayloadRejectsShortInput(t *testing.T) {
	_, _, _, ok := decodePayload([]byte{0, 1, 2})
	assert.False(t, ok)
}

func TestCacheKeyStrategies(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}
	e := echo.New()

	ctxFor := func(target string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath("/api/v1/plans/discover")
		return c
	}

	base := cacheKeyFrom(cfg, ctxFor("/api/v1/plans/discover"))
	withQuery := cacheKeyFrom(cfg, ctxFor("/api/v1/plans/discover?page=2"))
	assert.True(t, strings.HasPrefix(base, "cache:"))
	assert.NotEqual(t, base, withQuery)

	cfg.KeyStrategy = "route"
	assert.Equal(t,
		cacheKeyFrom(cfg, ctxFor("/api/v1/plans/discover")),
		cacheKeyFrom(cfg, ctxFor("/api/v1/plans/discover?page=2")))
}

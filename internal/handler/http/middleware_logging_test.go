package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-sign-gate/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeRequest creates a test request with a logger writing to buf in its
// context, the same way withTraceID does.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/signin",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/signin"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
				`"level":"info"`,
				`"remote_addr":"192.0.2.1:1234"`,
			},
		},
		{
			name:          "POST 302 redirect",
			method:        http.MethodPost,
			path:          "/signin",
			handlerStatus: http.StatusFound,
			checkLogContains: []string{
				`"method":"POST"`,
				`"status":302`,
				`"size":0`,
			},
		},
		{
			name:            "POST 409 conflict",
			method:          http.MethodPost,
			path:            "/signup",
			handlerStatus:   http.StatusConflict,
			handlerResponse: "Username already taken.",
			checkLogContains: []string{
				`"uri":"/signup"`,
				`"status":409`,
				`"level":"warn"`,
			},
		},
		{
			name:            "query parameters preserved in uri",
			method:          http.MethodGet,
			path:            "/signin?next=%2F",
			handlerStatus:   http.StatusOK,
			handlerResponse: "form",
			checkLogContains: []string{
				`"uri":"/signin?next=%2F"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			h := newTestHandler(t)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logBuf.String(), expected, "log should contain: %s", expected)
			}
		})
	}
}

func TestAccessLogLevel(t *testing.T) {
	tests := []struct {
		status int
		want   zerolog.Level
	}{
		{status: http.StatusOK, want: zerolog.InfoLevel},
		{status: http.StatusFound, want: zerolog.InfoLevel},
		{status: http.StatusBadRequest, want: zerolog.WarnLevel},
		{status: http.StatusUnauthorized, want: zerolog.WarnLevel},
		{status: http.StatusInternalServerError, want: zerolog.ErrorLevel},
		{status: http.StatusServiceUnavailable, want: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, accessLogLevel(tt.status))
		})
	}
}

// TestWithLogging_RouteAndTraceID serves through the full router so the
// entry carries the chi route pattern and the request's trace ID.
func TestWithLogging_RouteAndTraceID(t *testing.T) {
	var logBuf bytes.Buffer
	h := newTestHandler(t)
	h.logger = &logger.Logger{Logger: zerolog.New(&logBuf)}

	req := httptest.NewRequest(http.MethodGet, "/signup", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	h.Init().ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	for _, line := range strings.Split(strings.TrimSpace(logBuf.String()), "\n") {
		if strings.Contains(line, `"request served"`) {
			require.NoError(t, json.Unmarshal([]byte(line), &entry))
		}
	}
	require.NotNil(t, entry, "access log entry expected")
	assert.Equal(t, "/signup", entry["route"])
	assert.Equal(t, "trace-42", entry["trace_id"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
}

func TestWithLogging_ServerErrorLevel(t *testing.T) {
	var logBuf bytes.Buffer
	h := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodPost, "/signin", &logBuf))

	assert.Contains(t, logBuf.String(), `"level":"error"`)
	assert.Contains(t, logBuf.String(), `"route":""`, "no chi route outside the router")
}

func TestWithLogging_ResponseSize(t *testing.T) {
	var logBuf bytes.Buffer
	h := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1000)))
		_, _ = w.Write([]byte(strings.Repeat("b", 24)))
	})

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &logBuf))

	assert.Contains(t, logBuf.String(), `"size":1024`)
}

func TestWithLogging_NothingWrittenLogs200(t *testing.T) {
	var logBuf bytes.Buffer
	h := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/", &logBuf))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer
	h := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/panic", &logBuf))
	}, "withLogging should not recover panics")
}

package httpmw

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DonKeyHot1/eclair"
	"github.com/DonKeyHot1/eclair/pkg/levels"
)

type record struct {
	name    string
	level   eclair.Level
	message string
	cause   error
}

type captureFactory struct {
	mu      sync.Mutex
	records []record
}

func (f *captureFactory) GetFacade(name string) eclair.Facade {
	return &captureFacade{factory: f, name: name}
}

func (f *captureFactory) append(r record) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.records = append(f.records, r)
}

func (f *captureFactory) all() []record {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]record(nil), f.records...)
}

type captureFacade struct {
	factory *captureFactory
	name    string
}

func (c *captureFacade) Log(level eclair.Level, message string) {
	c.factory.append(record{name: c.name, level: level, message: message})
}

func (c *captureFacade) LogError(level eclair.Level, message string, cause error) {
	c.factory.append(record{name: c.name, level: level, message: message, cause: cause})
}

func newTestLogger(t *testing.T) (*eclair.CallLogger, *captureFactory) {
	t.Helper()

	factory := &captureFactory{}

	logger, err := eclair.New(eclair.NewConfigBuilder().
		WithFacades(factory).
		WithLevels(levels.NewStore(eclair.DebugLevel)).
		Build())
	require.NoError(t, err)

	return logger, factory
}

func TestMiddlewareLogsEntryAndExit(t *testing.T) {
	t.Parallel()

	logger, factory := newTestLogger(t)

	handler := Middleware(logger, "api.Users")(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/users", nil))

	require.Equal(t, http.StatusCreated, recorder.Code)

	records := factory.all()
	require.Len(t, records, 2)

	assert.Equal(t, record{
		name:    "api.Users",
		level:   eclair.InfoLevel,
		message: "> method=POST, path=/users",
	}, records[0])
	assert.Equal(t, record{
		name:    "api.Users",
		level:   eclair.InfoLevel,
		message: "< 201",
	}, records[1])
}

func TestMiddlewareDefaultsStatusToOK(t *testing.T) {
	t.Parallel()

	logger, factory := newTestLogger(t)

	handler := Middleware(logger, "api.Users")(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/users", nil))

	records := factory.all()
	require.Len(t, records, 2)
	assert.Equal(t, "< 200", records[1].message)
}

func TestMiddlewareLogsServerError(t *testing.T) {
	t.Parallel()

	logger, factory := newTestLogger(t)

	handler := Middleware(logger, "api.Users")(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/users", nil))

	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	records := factory.all()
	require.Len(t, records, 2)

	assert.Equal(t, record{
		name:    "api.Users",
		level:   eclair.ErrorLevel,
		message: "! Internal Server Error",
		cause:   &StatusError{Status: http.StatusInternalServerError},
	}, records[1])
}

func TestMiddlewareCustomPack(t *testing.T) {
	t.Parallel()

	logger, factory := newTestLogger(t)

	pack, err := eclair.NewPackBuilder().
		WithIn(eclair.NewInLog(eclair.DebugLevel)).
		WithParam("method").
		WithParam("path").
		Build()
	require.NoError(t, err)

	handler := Middleware(logger, "api.Users", WithPack(pack))(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	records := factory.all()
	require.Len(t, records, 1)
	assert.Equal(t, "> method=GET, path=/health", records[0].message)
	assert.Equal(t, eclair.DebugLevel, records[0].level)
}

func TestMiddlewareNilLogger(t *testing.T) {
	t.Parallel()

	called := false

	handler := Middleware(nil, "api.Users")(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			called = true

			w.WriteHeader(http.StatusOK)
		}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/users", nil))

	require.True(t, called)
	require.Equal(t, http.StatusOK, recorder.Code)
}

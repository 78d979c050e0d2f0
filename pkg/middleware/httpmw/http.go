// Package httpmw drives the method-logging engine around HTTP handlers.
// The wrapped handler gets an entry record carrying the request method and
// path, an exit record carrying the response status, and an error record
// when the handler answers with a server error.
package httpmw

import (
	"net/http"

	"github.com/DonKeyHot1/eclair"
)

// StatusError is the error synthesized for responses with a 5xx status,
// so packs can route them through error directives.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return http.StatusText(e.Status)
}

// Option configures the behaviour of the middleware.
type Option func(*options)

type options struct {
	pack *eclair.LogPack
}

// WithPack overrides the default entry/exit pack. The pack's first two
// parameters receive the request method and path; its error directives see
// a *StatusError for 5xx responses.
func WithPack(pack *eclair.LogPack) Option {
	return func(o *options) {
		if pack != nil {
			o.pack = pack
		}
	}
}

//nolint:gochecknoglobals // static known-valid pack, built once.
var entryExitPack = mustPack(eclair.NewPackBuilder().
	WithIn(eclair.NewInLog(eclair.InfoLevel)).
	WithParam("method").
	WithParam("path").
	WithOut(eclair.NewOutLog(eclair.InfoLevel)).
	WithError(eclair.NewErrorLog(eclair.ErrorLevel, eclair.MatchType[*StatusError]())).
	Build())

func mustPack(pack *eclair.LogPack, err error) *eclair.LogPack {
	if err != nil {
		panic(err)
	}

	return pack
}

// Middleware returns a handler wrapper that logs request entry and
// response exit through the engine under the given logger name. A nil
// logger disables the wrapper.
func Middleware(logger *eclair.CallLogger, name string, opts ...Option) func(http.Handler) http.Handler {
	cfg := options{pack: entryExitPack}

	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		if logger == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			inv := eclair.Invocation{
				Target:    name,
				Method:    r.Method,
				Args:      []any{r.Method, r.URL.Path},
				HasResult: true,
			}

			// The synthesized error only routes 5xx responses through the
			// pack's error directives; the response is already written.
			_, _ = logger.Invoke(inv, cfg.pack, func() (any, error) {
				next.ServeHTTP(recorder, r)

				if recorder.status >= http.StatusInternalServerError {
					return nil, &StatusError{Status: recorder.status}
				}

				return recorder.status, nil
			})
		})
	}
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

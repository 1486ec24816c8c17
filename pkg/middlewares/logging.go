package middlewares

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/jake-scott/switchbot-unlock/internal/pkg/logging"
)

const TxnIDHeader = "X-Txn-ID"

// Records the status and size of the response, optionally logging the body
type auditResponseWriter struct {
	http.ResponseWriter

	ctx              context.Context
	statusCode       int
	size             int
	logData          bool
	hasLoggedHeaders bool
}

func newAuditResponseWriter(ctx context.Context, logData bool, rw http.ResponseWriter) *auditResponseWriter {
	return &auditResponseWriter{
		ResponseWriter: rw,
		ctx:            ctx,
		statusCode:     http.StatusOK,
		logData:        logData,
	}
}

func (rw *auditResponseWriter) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *auditResponseWriter) Write(b []byte) (int, error) {
	if rw.logData && !rw.hasLoggedHeaders {
		logging.Logger(rw.ctx).Debugf("response headers: %+v", rw.ResponseWriter.Header())
		rw.hasLoggedHeaders = true
	}

	size, err := rw.ResponseWriter.Write(b)
	rw.size += size

	if err == nil && rw.logData {
		logging.Logger(rw.ctx).Debugf("wrote %d bytes: %s", size, b[:size])
	}
	return size, err
}

// Logs every read from the request body
type loggingReader struct {
	io.ReadCloser
	ctx context.Context
}

func (lr loggingReader) Read(b []byte) (int, error) {
	size, err := lr.ReadCloser.Read(b)
	if size > 0 {
		logging.Logger(lr.ctx).Debugf("read %d bytes: %s", size, b[:size])
	}

	return size, err
}

// LoggingMw assigns every request a transaction ID, stores it in the
// request context for the logger and writes one audit line per request
type LoggingMw struct {
	logRequests bool
	next        http.Handler
}

func NewLoggingMw(logRequests bool) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return NewLogging(logRequests, next)
	}
}

func NewLogging(logRequests bool, next http.Handler) *LoggingMw {
	return &LoggingMw{next: next, logRequests: logRequests}
}

func (mw *LoggingMw) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	txnID := uuid.New().String()
	startTime := time.Now()

	// Before anything writes the response body
	rw.Header().Set(TxnIDHeader, txnID)

	r = r.WithContext(logging.WithTxnID(r.Context(), txnID))

	if mw.logRequests {
		logging.Logger(r.Context()).Debugf("request headers: %+v", r.Header)
		r.Body = loggingReader{ReadCloser: r.Body, ctx: r.Context()}
	}

	arw := newAuditResponseWriter(r.Context(), mw.logRequests, rw)
	mw.next.ServeHTTP(arw, r)

	logging.Logger(nil).WithFields(
		logrus.Fields{
			"entrytype": "audit",
			"status":    arw.statusCode,
			"method":    r.Method,
			"proto":     r.Proto,
			"host":      r.Host,
			"remote":    r.RemoteAddr,
			"start":     startTime.Format(time.RFC3339Nano),
			"duration":  time.Since(startTime),
			"path":      r.URL.String(),
			"txnid":     txnID,
			"size":      arw.size,
		},
	).Info(http.StatusText(arw.statusCode))
}

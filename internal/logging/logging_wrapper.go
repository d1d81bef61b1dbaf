package logging

import (
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// begin creates the per-request LogData, tags it with a request ID and
// stores it in the request context.
func begin(loggingName string, log *logrus.Logger, w http.ResponseWriter, req *http.Request) (*LogData, *http.Request) {
	logData := NewLogData(log)

	requestID := req.Header.Get(RequestIDHeader)
	if requestID == "" {
		if id, err := uuid.NewV4(); err == nil {
			requestID = id.String()
		}
	}
	w.Header().Set(RequestIDHeader, requestID)
	logData.AddData("requestID", requestID)
	logData.AddData("method", req.Method)
	logData.AddData("path", req.URL.Path)

	log.WithField("requestID", requestID).Infof("Handler.%v.Start", loggingName)
	return logData, req.WithContext(WithLogData(req.Context(), logData))
}

func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logData, req := begin(loggingName, log, w, req)

		endTimer := logData.AddTiming("duration")
		err := handler(w, req, logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

// Middleware wraps a plain http.Handler, such as the huma API mux, so its
// handlers can reach the request's LogData through GetLogData.
func Middleware(loggingName string, log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		logData, req := begin(loggingName, log, w, req)
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		endTimer := logData.AddTiming("duration")
		next.ServeHTTP(recorder, req)
		endTimer()

		logData.AddData("status", recorder.status)
		if recorder.status >= http.StatusInternalServerError {
			logData.Log().Errorf("Handler.%v.Error", loggingName)
			return
		}
		logData.Log().Infof("Handler.%v.Complete", loggingName)
	})
}

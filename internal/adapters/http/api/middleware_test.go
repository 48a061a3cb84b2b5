package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestErrorLabels(t *testing.T) {
	Convey("Given dashboard response codes", t, func() {
		Convey("Then each maps to its error type and severity", func() {
			cases := []struct {
				code     int
				errType  string
				severity string
			}{
				{http.StatusBadRequest, "bad_filter", "medium"},
				{http.StatusNotFound, "not_found", "medium"},
				{http.StatusMethodNotAllowed, "client_error", "medium"},
				{http.StatusInternalServerError, "server_error", "high"},
				{http.StatusServiceUnavailable, "not_ready", "low"},
			}
			for _, c := range cases {
				So(getErrorType(c.code), ShouldEqual, c.errType)
				So(getErrorSeverity(c.code), ShouldEqual, c.severity)
			}
		})
	})
}

func TestMetricsMiddleware_StatusCapture(t *testing.T) {
	Convey("Given a wrapped handler that rejects its filter", t, func() {
		h := MetricsMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusBadRequest, "bad_request", nil)
		}, "summary")

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest("GET", "/api/summary?status=Ghosted", nil))

		Convey("Then the response code and body pass through", func() {
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(w.Body.String(), ShouldContainSubstring, `"code":"bad_request"`)
		})
	})
}

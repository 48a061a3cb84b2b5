package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/jobpulse/internal/adapters/http/api"
	"github.com/okian/jobpulse/internal/domain/status"
	"github.com/okian/jobpulse/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

// Mock implementations for testing
type mockDependencies struct {
	lastFilter []status.Status
	err        error
}

func (m *mockDependencies) Statuses(ctx context.Context) ([]status.Status, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []status.Status{status.Pending, status.Offered}, nil
}

func (m *mockDependencies) StatusChart(ctx context.Context, filter []status.Status) ([]types.StatusCount, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return []types.StatusCount{{Status: "Pending", Count: 3}, {Status: "Offered", Count: 1}}, nil
}

func (m *mockDependencies) Timeline(ctx context.Context, filter []status.Status) (types.Timeline, error) {
	m.lastFilter = filter
	if m.err != nil {
		return types.Timeline{}, m.err
	}
	return types.Timeline{
		Points: []types.TimelinePoint{{Date: "2024-05-01", Count: 2}},
		Ranges: []types.RangePreset{{Label: "all"}},
	}, nil
}

func (m *mockDependencies) Summary(ctx context.Context, filter []status.Status) (types.Summary, error) {
	m.lastFilter = filter
	if m.err != nil {
		return types.Summary{}, m.err
	}
	return types.Summary{
		Total:             4,
		Counts:            map[string]int{"Pending": 3, "Offered": 1},
		OfferRate:         0.25,
		OfferRateText:     "25.0%",
		InterviewRateText: "0.0%",
		Insights:          []string{"insight"},
	}, nil
}

func (m *mockDependencies) Roles(ctx context.Context, filter []status.Status) (types.RolesReport, error) {
	m.lastFilter = filter
	if m.err != nil {
		return types.RolesReport{}, m.err
	}
	return types.RolesReport{
		Available: true,
		Roles:     []types.RoleShare{{Label: "data engineer", Count: 2, Percent: 100}},
		Insights:  []string{"insight"},
	}, nil
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func serve(mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestServer_Register(t *testing.T) {
	Convey("Given a new API server", t, func() {
		deps := &mockDependencies{}
		statsProvider := &mockStatsProvider{stats: map[string]interface{}{"records": 4}}
		server := api.NewServer(deps, statsProvider)
		mux := http.NewServeMux()

		Convey("When registering routes", func() {
			server.Register(context.Background(), mux)

			Convey("And health endpoint should expose metrics", func() {
				w := serve(mux, "GET", "/healthz")
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "jobpulse_dashboard")
			})

			Convey("And stats endpoint should return the provider stats", func() {
				w := serve(mux, "GET", "/stats")
				So(w.Code, ShouldEqual, http.StatusOK)
				var got map[string]any
				So(json.Unmarshal(w.Body.Bytes(), &got), ShouldBeNil)
				So(got["records"], ShouldEqual, 4.0)
			})

			Convey("And statuses endpoint should list filter options", func() {
				w := serve(mux, "GET", "/api/statuses")
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `"statuses":["Pending","Offered"]`)
			})

			Convey("And the status chart endpoint should return counts", func() {
				w := serve(mux, "GET", "/api/charts/status")
				So(w.Code, ShouldEqual, http.StatusOK)
				var got []types.StatusCount
				So(json.Unmarshal(w.Body.Bytes(), &got), ShouldBeNil)
				So(got, ShouldHaveLength, 2)
				So(deps.lastFilter, ShouldBeEmpty)
			})

			Convey("And the timeline endpoint should return points", func() {
				w := serve(mux, "GET", "/api/charts/timeline?status=pending")
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `"date":"2024-05-01"`)
				So(deps.lastFilter, ShouldResemble, []status.Status{status.Pending})
			})

			Convey("And the summary endpoint should return rates", func() {
				w := serve(mux, "GET", "/api/summary")
				So(w.Code, ShouldEqual, http.StatusOK)
				var got types.Summary
				So(json.Unmarshal(w.Body.Bytes(), &got), ShouldBeNil)
				So(got.Total, ShouldEqual, 4)
				So(got.OfferRateText, ShouldEqual, "25.0%")
			})

			Convey("And the roles endpoint should return ranked roles", func() {
				w := serve(mux, "GET", "/api/roles")
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `"label":"data engineer"`)
			})

			Convey("And dashboard endpoint should serve the HTML page", func() {
				w := serve(mux, "GET", "/dashboard")
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
				body := w.Body.String()
				So(body, ShouldContainSubstring, `id="status-filter"`)
				So(body, ShouldContainSubstring, `id="timeline-chart"`)
				So(body, ShouldContainSubstring, "plotly")
			})

			Convey("And non-GET requests should be not found", func() {
				for _, path := range []string{"/stats", "/dashboard", "/api/statuses", "/api/summary", "/api/roles"} {
					w := serve(mux, "POST", path)
					So(w.Code, ShouldEqual, http.StatusNotFound)
				}
			})
		})
	})
}

func TestStatusFilter(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		deps := &mockDependencies{}
		mux := http.NewServeMux()
		api.NewServer(deps, &mockStatsProvider{}).Register(context.Background(), mux)

		Convey("When the filter is repeated", func() {
			w := serve(mux, "GET", "/api/summary?status=Pending&status=Rejected")

			Convey("Then every value is passed on", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.lastFilter, ShouldResemble, []status.Status{status.Pending, status.Rejected})
			})
		})

		Convey("When the filter is comma-separated", func() {
			w := serve(mux, "GET", "/api/charts/status?status=offered,%20interviewed,")

			Convey("Then values are split and trimmed", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.lastFilter, ShouldResemble, []status.Status{status.Offered, status.Interviewed})
			})
		})

		Convey("When the filter has an unknown status", func() {
			w := serve(mux, "GET", "/api/roles?status=Ghosted")

			Convey("Then the request is rejected", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				var got map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &got), ShouldBeNil)
				So(got["code"], ShouldEqual, "bad_request")
				So(got["message"], ShouldContainSubstring, "Ghosted")
			})
		})
	})
}

func TestHandlers_DependencyErrors(t *testing.T) {
	Convey("Given dependencies that fail", t, func() {
		deps := &mockDependencies{err: errors.New("boom")}
		mux := http.NewServeMux()
		api.NewServer(deps, &mockStatsProvider{}).Register(context.Background(), mux)

		Convey("Then every data endpoint reports an internal error", func() {
			for _, path := range []string{
				"/api/statuses", "/api/charts/status", "/api/charts/timeline", "/api/summary", "/api/roles",
			} {
				w := serve(mux, "GET", path)
				So(w.Code, ShouldEqual, http.StatusInternalServerError)
				So(w.Body.String(), ShouldContainSubstring, `"code":"internal_error"`)
				So(w.Body.String(), ShouldContainSubstring, "boom")
			}
		})
	})
}

func TestError(t *testing.T) {
	Convey("Given API errors", t, func() {
		cause := errors.New("cause")

		Convey("When wrapping with a kind", func() {
			err := api.WrapKind("api.op", api.ErrBadRequest, cause)

			Convey("Then both kind and cause match", func() {
				So(errors.Is(err, api.ErrBadRequest), ShouldBeTrue)
				So(errors.Is(err, cause), ShouldBeTrue)
				So(err.Error(), ShouldEqual, "api.op: bad request: cause")
			})
		})

		Convey("When wrapping without a kind", func() {
			err := api.Wrap("api.op", cause)

			Convey("Then it is an internal error", func() {
				So(errors.Is(err, api.ErrInternal), ShouldBeTrue)
				So(errors.Is(err, api.ErrBadRequest), ShouldBeFalse)
			})
		})

		Convey("When creating a bare kind", func() {
			err := api.NewKind("api.op", api.ErrBadRequest)

			Convey("Then only the kind is reported", func() {
				So(err.Error(), ShouldEqual, "api.op: bad request")
				var apiErr *api.Error
				So(errors.As(err, &apiErr), ShouldBeTrue)
				So(apiErr.Op, ShouldEqual, "api.op")
			})
		})
	})
}

type readyStatsProvider struct {
	mockStatsProvider
	ready bool
}

func (r *readyStatsProvider) Ready() bool { return r.ready }

func TestHealth_Readiness(t *testing.T) {
	Convey("Given a stats provider that reports readiness", t, func() {
		provider := &readyStatsProvider{}
		mux := http.NewServeMux()
		api.NewServer(&mockDependencies{}, provider).Register(context.Background(), mux)

		Convey("When no dataset is loaded", func() {
			w := serve(mux, "GET", "/healthz")

			Convey("Then health reports not ready", func() {
				So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
				So(w.Body.String(), ShouldContainSubstring, `"code":"not_ready"`)
			})
		})

		Convey("When the dataset is loaded", func() {
			provider.ready = true
			w := serve(mux, "GET", "/healthz")

			Convey("Then metrics are served", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
			})
		})
	})
}
